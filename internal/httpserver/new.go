package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	extractHTTP "checkey/internal/extract/delivery/http"
	tgDelivery "checkey/internal/extract/delivery/telegram"
	taskHTTP "checkey/internal/task/delivery/http"
	"checkey/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Extraction domain
	extractHandler  extractHTTP.Handler
	telegramHandler tgDelivery.Handler

	// Task domain
	taskHandler taskHTTP.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// Extraction domain
	ExtractHandler  extractHTTP.Handler
	TelegramHandler tgDelivery.Handler

	// Task domain
	TaskHandler taskHTTP.Handler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.Default(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		extractHandler:  cfg.ExtractHandler,
		telegramHandler: cfg.TelegramHandler,
		taskHandler:     cfg.TaskHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	return nil
}
