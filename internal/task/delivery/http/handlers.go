package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"checkey/internal/model"
	"checkey/internal/task"
	"checkey/pkg/response"
)

// userIDHeader identifies the caller. The REST surface trusts the gateway in
// front of it to have authenticated the value.
const userIDHeader = "X-User-ID"

func (h *handler) scope(c *gin.Context) (model.Scope, bool) {
	userID := c.GetHeader(userIDHeader)
	if userID == "" {
		response.Unauthorized(c)
		return model.Scope{}, false
	}
	return model.Scope{UserID: userID}, true
}

// Confirm persists a confirmation card.
func (h *handler) Confirm(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.scope(c)
	if !ok {
		return
	}

	var req confirmReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.ConfirmCard(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ConfirmCard: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newConfirmResp(out))
}

// ListPending returns the caller's pending tasks.
func (h *handler) ListPending(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.scope(c)
	if !ok {
		return
	}

	tasks, err := h.uc.ListPending(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListPending: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newListResp(tasks))
}

// ListSchedules returns the caller's schedules starting inside [from, to).
func (h *handler) ListSchedules(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.scope(c)
	if !ok {
		return
	}

	var req scheduleRangeReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	schedules, err := h.uc.SchedulesInRange(ctx, sc, req.From, req.To)
	if err != nil {
		h.l.Errorf(ctx, "uc.SchedulesInRange: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newScheduleListResp(schedules))
}

// Digest returns today's bucketed digest for the caller.
func (h *handler) Digest(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.scope(c)
	if !ok {
		return
	}

	d, err := h.digestUC.BuildToday(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "digestUC.BuildToday: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newDigestResp(d))
}

// Postpone moves a task's due date.
func (h *handler) Postpone(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.scope(c)
	if !ok {
		return
	}

	var req postponeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	updated, err := h.uc.Postpone(ctx, sc, task.PostponeInput{
		TaskID:     c.Param("id"),
		NewDueDate: req.NewDueDate,
	})
	if err != nil {
		h.l.Errorf(ctx, "uc.Postpone: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newTaskResp(updated))
}

// SetDone marks a task completed.
func (h *handler) SetDone(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.scope(c)
	if !ok {
		return
	}

	updated, err := h.uc.SetDone(ctx, sc, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.SetDone: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newTaskResp(updated))
}

// Remove deletes a task.
func (h *handler) Remove(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.scope(c)
	if !ok {
		return
	}

	if err := h.uc.Remove(ctx, sc, c.Param("id")); err != nil {
		h.l.Errorf(ctx, "uc.Remove: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, nil)
}

// respondError translates domain errors into HTTP responses.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, task.ErrNotAuthenticated):
		response.Unauthorized(c)
	case errors.Is(err, task.ErrTaskNotFound):
		c.JSON(http.StatusNotFound, response.Resp{ErrorCode: http.StatusNotFound, Message: err.Error()})
	case errors.Is(err, task.ErrNothingToSave):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}
