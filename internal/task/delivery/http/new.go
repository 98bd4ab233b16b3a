package http

import (
	"github.com/gin-gonic/gin"

	"checkey/internal/digest"
	"checkey/internal/task"
	"checkey/pkg/log"
)

// Handler is the public interface for the task HTTP delivery layer.
type Handler interface {
	Confirm(c *gin.Context)
	ListPending(c *gin.Context)
	ListSchedules(c *gin.Context)
	Digest(c *gin.Context)
	Postpone(c *gin.Context)
	SetDone(c *gin.Context)
	Remove(c *gin.Context)
}

type handler struct {
	l        log.Logger
	uc       task.UseCase
	digestUC digest.UseCase
}

// New creates a new HTTP handler for the task domain.
func New(l log.Logger, uc task.UseCase, digestUC digest.UseCase) *handler {
	return &handler{
		l:        l,
		uc:       uc,
		digestUC: digestUC,
	}
}
