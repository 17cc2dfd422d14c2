package routes

import (
	"carpool/internal/config"
	"carpool/internal/handlers"
	"carpool/internal/middleware"
	"carpool/internal/services"
	"carpool/internal/utils"

	"github.com/gin-gonic/gin"
)

func registerAuthRoutes(rg *gin.RouterGroup, h *handlers.AuthHandler, cache services.CacheService, cfg *config.Config) {
	auth := rg.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", middleware.RateLimit(cache, cfg.Security.LoginRateLimit, utils.RateLimitWindow), h.Login)
	}
}
