package routes

import (
	"github.com/gin-gonic/gin"

	capacityhandlers "certdesk/internal/interfaces/http/handlers/capacity"
	"certdesk/internal/interfaces/http/middleware"
	"certdesk/internal/shared/authorization"
)

type SlotRouteConfig struct {
	SlotHandler    *capacityhandlers.SlotHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupSlotRoutes(engine *gin.Engine, config *SlotRouteConfig) {
	slots := engine.Group("/slots")
	slots.Use(config.AuthMiddleware.RequireAuth())
	{
		slots.GET("/:region",
			config.SlotHandler.GetSlotCount)

		// Manual corrections are certifier-only.
		slots.POST("/:region/increment",
			authorization.RequireCertifier(),
			config.SlotHandler.IncrementSlots)
		slots.POST("/:region/decrement",
			authorization.RequireCertifier(),
			config.SlotHandler.DecrementSlots)
	}
}
