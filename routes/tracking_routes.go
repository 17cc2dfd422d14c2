package routes

import (
	"carpool/internal/config"
	"carpool/internal/handlers"
	"carpool/internal/middleware"

	"github.com/gin-gonic/gin"
)

func registerTrackingRoutes(rg *gin.RouterGroup, h *handlers.TrackingHandler, cfg *config.Config) {
	tracking := rg.Group("/tracking")
	tracking.Use(middleware.AuthRequired(cfg.Security.JWTSecret))
	{
		tracking.POST("/update", middleware.DriverRequired(), h.Update)
		tracking.GET("/:ride_id", h.GetByRide)
	}
}
