package services

import (
	"context"

	"carpool/internal/models"
	"carpool/internal/repositories/interfaces"
	"carpool/internal/utils"
	"carpool/internal/validators"
	"carpool/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TrackingService interface {
	// Update overwrites the ride's current location; the previous fix is not
	// kept.
	Update(ctx context.Context, driverID primitive.ObjectID, req *validators.TrackingUpdateRequest) (*models.RideTracking, error)
	GetByRide(ctx context.Context, rideID primitive.ObjectID) (*models.RideTracking, error)
}

type trackingService struct {
	trackingRepo interfaces.TrackingRepository
	rideRepo     interfaces.RideRepository
	cache        CacheService
	logger       *logger.Logger
}

func NewTrackingService(trackingRepo interfaces.TrackingRepository, rideRepo interfaces.RideRepository, cache CacheService, log *logger.Logger) TrackingService {
	return &trackingService{
		trackingRepo: trackingRepo,
		rideRepo:     rideRepo,
		cache:        cache,
		logger:       log.WithComponent("tracking_service"),
	}
}

func (s *trackingService) Update(ctx context.Context, driverID primitive.ObjectID, req *validators.TrackingUpdateRequest) (*models.RideTracking, error) {
	rideID, err := primitive.ObjectIDFromHex(req.RideID)
	if err != nil {
		return nil, ErrNotFound
	}

	ride, err := s.rideRepo.GetByID(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if ride.DriverID != driverID {
		return nil, ErrForbidden
	}
	if ride.Status != models.RideStatusActive {
		return nil, ErrRideNotActive
	}

	lat, lng := *req.Lat, *req.Lng
	if !utils.IsValidCoordinates(lat, lng) {
		return nil, ErrInvalidCoordinates
	}

	tracking := &models.RideTracking{
		RideID: rideID,
		Lat:    lat,
		Lng:    lng,
	}
	if err := s.trackingRepo.Upsert(ctx, tracking); err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, utils.CacheTrackingPrefix+rideID.Hex(), tracking, utils.TrackingCacheTTL); err != nil {
		s.logger.WithRideID(rideID).WithError(err).Warn("failed to cache tracking")
	}

	return tracking, nil
}

func (s *trackingService) GetByRide(ctx context.Context, rideID primitive.ObjectID) (*models.RideTracking, error) {
	var cached models.RideTracking
	if err := s.cache.Get(ctx, utils.CacheTrackingPrefix+rideID.Hex(), &cached); err == nil {
		return &cached, nil
	}

	tracking, err := s.trackingRepo.GetByRide(ctx, rideID)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, utils.CacheTrackingPrefix+rideID.Hex(), tracking, utils.TrackingCacheTTL); err != nil {
		s.logger.WithRideID(rideID).WithError(err).Warn("failed to cache tracking")
	}

	return tracking, nil
}
