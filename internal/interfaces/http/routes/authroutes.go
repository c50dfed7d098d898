package routes

import (
	"github.com/gin-gonic/gin"

	authhandlers "certdesk/internal/interfaces/http/handlers/auth"
	"certdesk/internal/interfaces/http/middleware"
)

type AuthRouteConfig struct {
	AuthHandler *authhandlers.AuthHandler
	RateLimiter *middleware.RateLimiter
}

func SetupAuthRoutes(engine *gin.Engine, config *AuthRouteConfig) {
	auth := engine.Group("/auth")
	{
		auth.POST("/register", config.RateLimiter.Limit(), config.AuthHandler.Register)
		auth.POST("/login", config.RateLimiter.Limit(), config.AuthHandler.Login)
		auth.POST("/refresh", config.AuthHandler.RefreshToken)
	}
}
