package routes

import (
	"github.com/gin-gonic/gin"

	taskhandlers "certdesk/internal/interfaces/http/handlers/task"
	"certdesk/internal/interfaces/http/middleware"
	"certdesk/internal/shared/authorization"
)

type TaskRouteConfig struct {
	TaskHandler    *taskhandlers.TaskHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupTaskRoutes(engine *gin.Engine, config *TaskRouteConfig) {
	tasks := engine.Group("/tasks")
	tasks.Use(config.AuthMiddleware.RequireAuth())
	{
		// Collection operations (no ID parameter)
		tasks.POST("",
			config.TaskHandler.SubmitTask)
		tasks.GET("",
			config.TaskHandler.ListTasks)

		// Specific action endpoints (must come BEFORE /:id to avoid conflicts)
		tasks.POST("/:id/complete",
			authorization.RequireCertifier(),
			config.TaskHandler.CompleteTask)
		tasks.POST("/:id/reject",
			authorization.RequireCertifier(),
			config.TaskHandler.RejectTask)
		tasks.POST("/:id/reactivate",
			config.TaskHandler.ReactivateTask)

		// Generic parameterized routes (must come LAST)
		tasks.GET("/:id",
			config.TaskHandler.GetTask)
		tasks.PUT("/:id",
			config.TaskHandler.UpdateTask)
		tasks.DELETE("/:id",
			config.TaskHandler.DeleteTask)
	}
}
