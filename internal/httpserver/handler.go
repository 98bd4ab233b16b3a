package httpserver

import (
	"context"

	"checkey/internal/model"

	extractHTTP "checkey/internal/extract/delivery/http"
	taskHTTP "checkey/internal/task/delivery/http"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "Server mode: production")
	} else {
		srv.l.Infof(ctx, "Server mode: %s", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	api := srv.gin.Group("/api/v1")

	if srv.extractHandler != nil {
		extractHTTP.RegisterRoutes(api, srv.extractHandler)
		srv.l.Infof(ctx, "Extraction routes registered at POST /api/v1/extract")
	} else {
		srv.l.Infof(ctx, "Extract handler not configured, skipping extraction routes")
	}

	if srv.taskHandler != nil {
		taskHTTP.RegisterRoutes(api, srv.taskHandler)
		srv.l.Infof(ctx, "Task routes registered under /api/v1/tasks")
	} else {
		srv.l.Infof(ctx, "Task handler not configured, skipping task routes")
	}

	if srv.telegramHandler != nil {
		srv.gin.POST("/webhook/telegram", srv.telegramHandler.HandleWebhook)
		srv.l.Infof(ctx, "Telegram webhook route registered at POST /webhook/telegram")
	} else {
		srv.l.Infof(ctx, "Telegram handler not configured, skipping webhook route")
	}

	return nil
}
