package http

import (
	"github.com/gin-gonic/gin"

	"checkey/internal/extract"
	"checkey/pkg/log"
)

// Handler is the public interface for the extraction HTTP delivery layer.
type Handler interface {
	Extract(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc extract.UseCase
}

// New creates a new HTTP handler for the extraction domain.
func New(l log.Logger, uc extract.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
