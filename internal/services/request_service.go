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

type RequestService interface {
	Create(ctx context.Context, passengerID primitive.ObjectID, req *validators.RequestCreateRequest) (*models.RideRequest, error)
	GetByID(ctx context.Context, requesterID, requestID primitive.ObjectID) (*models.RideRequest, error)
	ListByPassenger(ctx context.Context, passengerID primitive.ObjectID, params *utils.PaginationParams) ([]*models.RideRequest, int64, error)
	ListByRide(ctx context.Context, driverID, rideID primitive.ObjectID) ([]*models.RideRequest, error)

	// Accept takes a seat and books the passenger in one transaction. If the
	// last seat is gone by the time the driver accepts, nothing is written
	// and a seat conflict is returned.
	Accept(ctx context.Context, driverID, requestID primitive.ObjectID) (*models.RideAssignment, error)

	Reject(ctx context.Context, driverID, requestID primitive.ObjectID) (*models.RideRequest, error)

	// Cancel withdraws a pending request. Accepted requests cannot be
	// cancelled; the booking already holds a seat.
	Cancel(ctx context.Context, passengerID, requestID primitive.ObjectID) (*models.RideRequest, error)
}

type requestService struct {
	requestRepo    interfaces.RideRequestRepository
	rideRepo       interfaces.RideRepository
	assignmentRepo interfaces.AssignmentRepository
	txManager      interfaces.TransactionManager
	logger         *logger.Logger
}

func NewRequestService(
	requestRepo interfaces.RideRequestRepository,
	rideRepo interfaces.RideRepository,
	assignmentRepo interfaces.AssignmentRepository,
	txManager interfaces.TransactionManager,
	log *logger.Logger,
) RequestService {
	return &requestService{
		requestRepo:    requestRepo,
		rideRepo:       rideRepo,
		assignmentRepo: assignmentRepo,
		txManager:      txManager,
		logger:         log.WithComponent("request_service"),
	}
}

func (s *requestService) Create(ctx context.Context, passengerID primitive.ObjectID, req *validators.RequestCreateRequest) (*models.RideRequest, error) {
	rideID, err := primitive.ObjectIDFromHex(req.RideID)
	if err != nil {
		return nil, ErrNotFound
	}

	ride, err := s.rideRepo.GetByID(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if ride.DriverID == passengerID {
		return nil, ErrForbidden
	}
	if ride.Status != models.RideStatusActive {
		return nil, ErrRideNotActive
	}
	if ride.AvailableSeats <= 0 {
		return nil, ErrNoSeatsAvailable
	}

	pending, err := s.requestRepo.HasPending(ctx, rideID, passengerID)
	if err != nil {
		return nil, err
	}
	if pending {
		return nil, ErrDuplicateRequest
	}

	request := &models.RideRequest{
		RideID:      rideID,
		PassengerID: passengerID,
		Pickup:      models.NewRideLocation(req.Pickup.Address, req.Pickup.Lat, req.Pickup.Lng),
		Drop:        models.NewRideLocation(req.Drop.Address, req.Drop.Lat, req.Drop.Lng),
		FareOffered: req.FareOffered,
	}
	if err := s.requestRepo.Create(ctx, request); err != nil {
		return nil, err
	}

	s.logger.WithUserID(passengerID).WithRideID(rideID).Info("ride request created")
	return request, nil
}

func (s *requestService) GetByID(ctx context.Context, requesterID, requestID primitive.ObjectID) (*models.RideRequest, error) {
	request, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if request.PassengerID != requesterID {
		ride, err := s.rideRepo.GetByID(ctx, request.RideID)
		if err != nil {
			return nil, err
		}
		if ride.DriverID != requesterID {
			return nil, ErrForbidden
		}
	}

	return request, nil
}

func (s *requestService) ListByPassenger(ctx context.Context, passengerID primitive.ObjectID, params *utils.PaginationParams) ([]*models.RideRequest, int64, error) {
	return s.requestRepo.GetByPassenger(ctx, passengerID, params)
}

func (s *requestService) ListByRide(ctx context.Context, driverID, rideID primitive.ObjectID) ([]*models.RideRequest, error) {
	ride, err := s.rideRepo.GetByID(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if ride.DriverID != driverID {
		return nil, ErrForbidden
	}

	return s.requestRepo.GetByRide(ctx, rideID)
}

func (s *requestService) Accept(ctx context.Context, driverID, requestID primitive.ObjectID) (*models.RideAssignment, error) {
	request, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	ride, err := s.rideRepo.GetByID(ctx, request.RideID)
	if err != nil {
		return nil, err
	}
	if ride.DriverID != driverID {
		return nil, ErrForbidden
	}
	if request.Status != models.RequestStatusPending {
		return nil, ErrInvalidTransition
	}

	fare := ride.BaseFare
	if request.FareOffered != nil {
		fare = *request.FareOffered
	}

	assignment := &models.RideAssignment{
		RideID:      ride.ID,
		RequestID:   request.ID,
		PassengerID: request.PassengerID,
		FareFinal:   fare,
	}

	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.rideRepo.DecrementSeats(txCtx, ride.ID); err != nil {
			return err
		}
		if err := s.requestRepo.UpdateStatus(txCtx, request.ID, models.RequestStatusPending, models.RequestStatusAccepted); err != nil {
			return err
		}

		existing, err := s.assignmentRepo.GetByRideWithPassengers(txCtx, ride.ID)
		if err != nil {
			return err
		}
		assignment.PickupOrder = len(existing) + 1

		return s.assignmentRepo.Create(txCtx, assignment)
	})
	if err != nil {
		return nil, err
	}

	s.logger.WithRideID(ride.ID).WithFields(map[string]interface{}{
		"request_id":   request.ID.Hex(),
		"passenger_id": request.PassengerID.Hex(),
		"fare_final":   fare,
	}).Info("ride request accepted")

	return assignment, nil
}

func (s *requestService) Reject(ctx context.Context, driverID, requestID primitive.ObjectID) (*models.RideRequest, error) {
	request, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	ride, err := s.rideRepo.GetByID(ctx, request.RideID)
	if err != nil {
		return nil, err
	}
	if ride.DriverID != driverID {
		return nil, ErrForbidden
	}

	if err := s.requestRepo.UpdateStatus(ctx, request.ID, models.RequestStatusPending, models.RequestStatusRejected); err != nil {
		return nil, err
	}

	s.logger.WithRideID(ride.ID).WithField("request_id", request.ID.Hex()).Info("ride request rejected")
	return s.requestRepo.GetByID(ctx, requestID)
}

func (s *requestService) Cancel(ctx context.Context, passengerID, requestID primitive.ObjectID) (*models.RideRequest, error) {
	request, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if request.PassengerID != passengerID {
		return nil, ErrForbidden
	}

	if err := s.requestRepo.UpdateStatus(ctx, request.ID, models.RequestStatusPending, models.RequestStatusCancelled); err != nil {
		return nil, err
	}

	s.logger.WithUserID(passengerID).WithField("request_id", request.ID.Hex()).Info("ride request cancelled")
	return s.requestRepo.GetByID(ctx, requestID)
}
