package routes

import (
	"carpool/internal/config"
	"carpool/internal/handlers"
	"carpool/internal/middleware"

	"github.com/gin-gonic/gin"
)

func registerRequestRoutes(rg *gin.RouterGroup, h *handlers.RequestHandler, cfg *config.Config) {
	requests := rg.Group("/requests")
	requests.Use(middleware.AuthRequired(cfg.Security.JWTSecret))
	{
		requests.POST("", middleware.PassengerRequired(), h.Create)
		requests.GET("/my", middleware.PassengerRequired(), h.ListMine)
		requests.GET("/ride/:ride_id", middleware.DriverRequired(), h.ListByRide)
		requests.GET("/:id", h.GetByID)
		requests.PUT("/:id/accept", middleware.DriverRequired(), h.Accept)
		requests.PUT("/:id/reject", middleware.DriverRequired(), h.Reject)
		requests.DELETE("/:id", middleware.PassengerRequired(), h.Cancel)
	}
}
