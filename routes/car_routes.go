package routes

import (
	"carpool/internal/config"
	"carpool/internal/handlers"
	"carpool/internal/middleware"

	"github.com/gin-gonic/gin"
)

func registerCarRoutes(rg *gin.RouterGroup, h *handlers.CarHandler, cfg *config.Config) {
	cars := rg.Group("/cars")
	cars.Use(middleware.AuthRequired(cfg.Security.JWTSecret))
	{
		cars.POST("", middleware.DriverRequired(), h.Create)
		cars.GET("/my", h.List)
		cars.GET("/:id", h.GetByID)
	}
}
