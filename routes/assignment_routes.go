package routes

import (
	"carpool/internal/config"
	"carpool/internal/handlers"
	"carpool/internal/middleware"

	"github.com/gin-gonic/gin"
)

func registerAssignmentRoutes(rg *gin.RouterGroup, h *handlers.AssignmentHandler, cfg *config.Config) {
	assignments := rg.Group("/assignments")
	assignments.Use(middleware.AuthRequired(cfg.Security.JWTSecret), middleware.DriverRequired())
	{
		assignments.GET("/ride/:ride_id", h.ListForRide)
		assignments.PUT("/:id/status", h.UpdateStatus)
		assignments.PUT("/:id/route", h.UpdateRoute)
	}
}
