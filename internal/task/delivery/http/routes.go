package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	tasks := rg.Group("/tasks")
	{
		tasks.POST("/confirm", h.Confirm)
		tasks.GET("", h.ListPending)
		tasks.GET("/digest", h.Digest)
		tasks.GET("/schedules", h.ListSchedules)
		tasks.POST("/:id/postpone", h.Postpone)
		tasks.POST("/:id/done", h.SetDone)
		tasks.DELETE("/:id", h.Remove)
	}
}
