package services

import (
	"context"

	"carpool/internal/models"
	"carpool/internal/repositories/interfaces"
	"carpool/internal/validators"
	"carpool/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RoutePointService interface {
	// Replace overwrites the ride's planned route wholesale with the given
	// ordered points.
	Replace(ctx context.Context, driverID, rideID primitive.ObjectID, req *validators.RoutePointsRequest) ([]*models.RoutePoint, error)
	ListByRide(ctx context.Context, rideID primitive.ObjectID) ([]*models.RoutePoint, error)
}

type routePointService struct {
	routePointRepo interfaces.RoutePointRepository
	rideRepo       interfaces.RideRepository
	logger         *logger.Logger
}

func NewRoutePointService(routePointRepo interfaces.RoutePointRepository, rideRepo interfaces.RideRepository, log *logger.Logger) RoutePointService {
	return &routePointService{
		routePointRepo: routePointRepo,
		rideRepo:       rideRepo,
		logger:         log.WithComponent("route_point_service"),
	}
}

func (s *routePointService) Replace(ctx context.Context, driverID, rideID primitive.ObjectID, req *validators.RoutePointsRequest) ([]*models.RoutePoint, error) {
	ride, err := s.rideRepo.GetByID(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if ride.DriverID != driverID {
		return nil, ErrForbidden
	}

	points := make([]*models.RoutePoint, 0, len(req.Points))
	for _, p := range req.Points {
		points = append(points, &models.RoutePoint{
			Lat:            p.Lat,
			Lng:            p.Lng,
			SequenceNumber: p.SequenceNumber,
			Type:           models.RoutePointType(p.Type),
		})
	}

	if err := s.routePointRepo.ReplaceForRide(ctx, rideID, points); err != nil {
		return nil, err
	}

	s.logger.WithRideID(rideID).WithField("points", len(points)).Info("route points replaced")
	return s.routePointRepo.GetByRide(ctx, rideID)
}

func (s *routePointService) ListByRide(ctx context.Context, rideID primitive.ObjectID) ([]*models.RoutePoint, error) {
	if _, err := s.rideRepo.GetByID(ctx, rideID); err != nil {
		return nil, err
	}
	return s.routePointRepo.GetByRide(ctx, rideID)
}
