package routes

import (
	"carpool/internal/config"
	"carpool/internal/handlers"
	"carpool/internal/middleware"

	"github.com/gin-gonic/gin"
)

func registerRideRoutes(
	rg *gin.RouterGroup,
	rideHandler *handlers.RideHandler,
	routePointHandler *handlers.RoutePointHandler,
	cfg *config.Config,
) {
	rides := rg.Group("/rides")
	rides.Use(middleware.AuthRequired(cfg.Security.JWTSecret))
	{
		rides.POST("", middleware.DriverRequired(), rideHandler.Create)
		rides.GET("/my", middleware.DriverRequired(), rideHandler.ListMine)
		rides.GET("/active", rideHandler.ListActive)
		rides.POST("/suggestions", rideHandler.Suggestions)
		rides.POST("/search", rideHandler.Search)

		rides.GET("/:id", rideHandler.GetByID)
		rides.PUT("/:id", middleware.DriverRequired(), rideHandler.Update)
		rides.PUT("/:id/status", middleware.DriverRequired(), rideHandler.ChangeStatus)

		rides.POST("/:id/route-points", middleware.DriverRequired(), routePointHandler.Replace)
		rides.GET("/:id/route-points", routePointHandler.ListByRide)
	}
}
