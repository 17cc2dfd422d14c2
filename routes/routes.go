package routes

import (
	"net/http"
	"time"

	"carpool/internal/config"
	"carpool/internal/handlers"
	"carpool/internal/middleware"
	"carpool/internal/services"
	"carpool/internal/utils"
	"carpool/pkg/logger"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Auth       *handlers.AuthHandler
	User       *handlers.UserHandler
	Car        *handlers.CarHandler
	Ride       *handlers.RideHandler
	Request    *handlers.RequestHandler
	Assignment *handlers.AssignmentHandler
	RoutePoint *handlers.RoutePointHandler
	Tracking   *handlers.TrackingHandler
}

func Setup(cfg *config.Config, h *Handlers, cache services.CacheService, log *logger.Logger) *gin.Engine {
	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg.Security.CORSAllowedOrigins))
	router.Use(middleware.RequestLogger(log))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"name":    cfg.App.Name,
			"version": cfg.App.Version,
			"time":    time.Now().UTC(),
		})
	})

	v1 := router.Group("/api/v1")
	v1.Use(middleware.RateLimit(cache, cfg.Security.RateLimitPerMinute, utils.RateLimitWindow))

	registerAuthRoutes(v1, h.Auth, cache, cfg)
	registerUserRoutes(v1, h.User, cfg)
	registerCarRoutes(v1, h.Car, cfg)
	registerRideRoutes(v1, h.Ride, h.RoutePoint, cfg)
	registerRequestRoutes(v1, h.Request, cfg)
	registerAssignmentRoutes(v1, h.Assignment, cfg)
	registerTrackingRoutes(v1, h.Tracking, cfg)

	return router
}
