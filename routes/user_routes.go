package routes

import (
	"carpool/internal/config"
	"carpool/internal/handlers"
	"carpool/internal/middleware"

	"github.com/gin-gonic/gin"
)

func registerUserRoutes(rg *gin.RouterGroup, h *handlers.UserHandler, cfg *config.Config) {
	users := rg.Group("/users")
	users.Use(middleware.AuthRequired(cfg.Security.JWTSecret))
	{
		users.GET("/:id", h.GetProfile)
		users.PUT("/:id", h.UpdateProfile)
	}
}
