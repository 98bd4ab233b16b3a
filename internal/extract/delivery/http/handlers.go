package http

import (
	"github.com/gin-gonic/gin"

	"checkey/internal/model"
	"checkey/pkg/response"
)

// Extract runs the extraction pipeline on one utterance and returns both the
// canonical entity and its confirmation-card projection.
func (h *handler) Extract(c *gin.Context) {
	ctx := c.Request.Context()

	var req extractReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	sc := model.Scope{UserID: req.UserID}
	entity, err := h.uc.Extract(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Extract: %v", err)
		response.Error(c, err, nil)
		return
	}

	response.OK(c, h.newExtractResp(entity, h.uc.ProjectToCard(entity)))
}
