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

type RideService interface {
	Create(ctx context.Context, driverID primitive.ObjectID, req *validators.RideCreateRequest) (*models.Ride, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Ride, error)
	ListByDriver(ctx context.Context, driverID primitive.ObjectID, params *utils.PaginationParams) ([]*models.Ride, int64, error)
	ListActive(ctx context.Context) ([]*models.Ride, error)
	Update(ctx context.Context, driverID, rideID primitive.ObjectID, req *validators.RideUpdateRequest) (*models.Ride, error)

	// ChangeStatus moves an offering along its lifecycle. Cancelling also
	// rejects every still-pending request of the ride.
	ChangeStatus(ctx context.Context, driverID, rideID primitive.ObjectID, status models.RideStatus) (*models.Ride, error)
}

type rideService struct {
	rideRepo    interfaces.RideRepository
	carRepo     interfaces.CarRepository
	requestRepo interfaces.RideRequestRepository
	logger      *logger.Logger
}

func NewRideService(rideRepo interfaces.RideRepository, carRepo interfaces.CarRepository, requestRepo interfaces.RideRequestRepository, log *logger.Logger) RideService {
	return &rideService{
		rideRepo:    rideRepo,
		carRepo:     carRepo,
		requestRepo: requestRepo,
		logger:      log.WithComponent("ride_service"),
	}
}

func (s *rideService) Create(ctx context.Context, driverID primitive.ObjectID, req *validators.RideCreateRequest) (*models.Ride, error) {
	carID, err := primitive.ObjectIDFromHex(req.CarID)
	if err != nil {
		return nil, ErrNotFound
	}

	car, err := s.carRepo.GetByID(ctx, carID)
	if err != nil {
		return nil, err
	}
	if car.OwnerID != driverID {
		return nil, ErrForbidden
	}

	if !utils.IsValidCoordinates(req.Start.Lat, req.Start.Lng) || !utils.IsValidCoordinates(req.Destination.Lat, req.Destination.Lng) {
		return nil, ErrInvalidCoordinates
	}

	ride := &models.Ride{
		DriverID:       driverID,
		CarID:          carID,
		RideType:       models.RideType(req.RideType),
		StartLocation:  models.NewRideLocation(req.Start.Address, req.Start.Lat, req.Start.Lng),
		Destination:    models.NewRideLocation(req.Destination.Address, req.Destination.Lat, req.Destination.Lng),
		StartTime:      req.StartTime,
		TotalSeats:     req.TotalSeats,
		AvailableSeats: req.TotalSeats,
		BaseFare:       req.BaseFare,
		DistanceKM:     utils.CalculateDistance(req.Start.Lat, req.Start.Lng, req.Destination.Lat, req.Destination.Lng),
	}

	if err := s.rideRepo.Create(ctx, ride); err != nil {
		return nil, err
	}

	s.logger.WithUserID(driverID).WithRideID(ride.ID).Info("ride offering created")
	return ride, nil
}

func (s *rideService) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Ride, error) {
	return s.rideRepo.GetByID(ctx, id)
}

func (s *rideService) ListByDriver(ctx context.Context, driverID primitive.ObjectID, params *utils.PaginationParams) ([]*models.Ride, int64, error) {
	return s.rideRepo.GetByDriver(ctx, driverID, params)
}

func (s *rideService) ListActive(ctx context.Context) ([]*models.Ride, error) {
	return s.rideRepo.GetActive(ctx)
}

func (s *rideService) Update(ctx context.Context, driverID, rideID primitive.ObjectID, req *validators.RideUpdateRequest) (*models.Ride, error) {
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

	updates := map[string]interface{}{}
	if req.CarID != nil {
		carID, err := primitive.ObjectIDFromHex(*req.CarID)
		if err != nil {
			return nil, ErrNotFound
		}
		car, err := s.carRepo.GetByID(ctx, carID)
		if err != nil {
			return nil, err
		}
		if car.OwnerID != driverID {
			return nil, ErrForbidden
		}
		updates["car_id"] = carID
	}
	if req.StartTime != nil {
		updates["start_time"] = *req.StartTime
	}
	if req.AvailableSeats != nil {
		updates["available_seats"] = *req.AvailableSeats
	}
	if req.BaseFare != nil {
		updates["base_fare"] = *req.BaseFare
	}

	if len(updates) > 0 {
		if err := s.rideRepo.Update(ctx, rideID, updates); err != nil {
			return nil, err
		}
	}

	return s.rideRepo.GetByID(ctx, rideID)
}

func (s *rideService) ChangeStatus(ctx context.Context, driverID, rideID primitive.ObjectID, status models.RideStatus) (*models.Ride, error) {
	ride, err := s.rideRepo.GetByID(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if ride.DriverID != driverID {
		return nil, ErrForbidden
	}
	if !ride.Status.CanTransitionTo(status) {
		return nil, ErrInvalidTransition
	}

	if err := s.rideRepo.UpdateStatus(ctx, rideID, status); err != nil {
		return nil, err
	}

	if status == models.RideStatusCancelled {
		rejected, err := s.requestRepo.RejectAllPending(ctx, rideID)
		if err != nil {
			s.logger.WithRideID(rideID).WithError(err).Error("failed to reject pending requests on cancel")
		} else if rejected > 0 {
			s.logger.WithRideID(rideID).WithField("rejected", rejected).Info("rejected pending requests after cancel")
		}
	}

	return s.rideRepo.GetByID(ctx, rideID)
}
