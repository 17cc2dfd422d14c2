package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"carpool/internal/config"
	"carpool/internal/handlers"
	"carpool/internal/repositories/mongodb"
	"carpool/internal/services"
	"carpool/pkg/cache"
	"carpool/pkg/database"
	"carpool/pkg/logger"
	"carpool/routes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.NewLogger(&logger.Config{
		Level:  cfg.App.LogLevel,
		Format: cfg.App.LogFormat,
		Output: "stdout",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}

	db, err := database.NewMongoDB(&database.DatabaseConfig{
		URI:            cfg.Database.URI,
		Database:       cfg.Database.Database,
		MaxPoolSize:    cfg.Database.MaxPoolSize,
		MinPoolSize:    cfg.Database.MinPoolSize,
		ConnectTimeout: cfg.Database.ConnectTimeout,
		SocketTimeout:  cfg.Database.SocketTimeout,
	})
	if err != nil {
		log.Fatalf("failed to connect to mongodb: %v", err)
	}
	defer db.Close()

	if err := database.NewMigrator(db.Database).Up(); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	redisCache, err := cache.NewRedisCache(&cache.RedisConfig{
		Host:         cfg.Redis.Host,
		Port:         cfg.Redis.Port,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
		DialTimeout:  cfg.Redis.DialTimeout,
		ReadTimeout:  cfg.Redis.ReadTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
	})
	if err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	defer redisCache.Close()

	cacheService := services.NewCacheService(redisCache)

	userRepo := mongodb.NewUserRepository(db.Database)
	carRepo := mongodb.NewCarRepository(db.Database)
	rideRepo := mongodb.NewRideRepository(db.Database, cacheService)
	requestRepo := mongodb.NewRideRequestRepository(db.Database)
	assignmentRepo := mongodb.NewAssignmentRepository(db.Database)
	routePointRepo := mongodb.NewRoutePointRepository(db.Database)
	trackingRepo := mongodb.NewTrackingRepository(db.Database)
	txManager := mongodb.NewTransactionManager(db)

	authService := services.NewAuthService(userRepo, cfg.Security.JWTSecret, log)
	userService := services.NewUserService(userRepo, log)
	carService := services.NewCarService(carRepo, log)
	rideService := services.NewRideService(rideRepo, carRepo, requestRepo, log)
	suggestionService := services.NewSuggestionService(rideRepo, log)
	requestService := services.NewRequestService(requestRepo, rideRepo, assignmentRepo, txManager, log)
	assignmentService := services.NewAssignmentService(assignmentRepo, rideRepo, log)
	routePointService := services.NewRoutePointService(routePointRepo, rideRepo, log)
	trackingService := services.NewTrackingService(trackingRepo, rideRepo, cacheService, log)

	router := routes.Setup(cfg, &routes.Handlers{
		Auth:       handlers.NewAuthHandler(authService, log),
		User:       handlers.NewUserHandler(userService, log),
		Car:        handlers.NewCarHandler(carService, log),
		Ride:       handlers.NewRideHandler(rideService, suggestionService, log),
		Request:    handlers.NewRequestHandler(requestService, log),
		Assignment: handlers.NewAssignmentHandler(assignmentService, log),
		RoutePoint: handlers.NewRoutePointHandler(routePointService, log),
		Tracking:   handlers.NewTrackingHandler(trackingService, log),
	}, cacheService, log)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.App.Host, cfg.App.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infof("server listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Errorf("forced shutdown: %v", err)
	}
}
