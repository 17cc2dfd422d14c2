package services

import (
	"context"

	"carpool/internal/models"
	"carpool/internal/repositories/interfaces"
	"carpool/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AssignmentService interface {
	ListForRide(ctx context.Context, driverID, rideID primitive.ObjectID) ([]*models.AssignmentWithPassenger, error)
	UpdateStatus(ctx context.Context, driverID, assignmentID primitive.ObjectID, status models.AssignmentStatus) (*models.RideAssignment, error)
	UpdateRoute(ctx context.Context, driverID, assignmentID primitive.ObjectID, route []models.Coordinate) (*models.RideAssignment, error)
}

type assignmentService struct {
	assignmentRepo interfaces.AssignmentRepository
	rideRepo       interfaces.RideRepository
	logger         *logger.Logger
}

func NewAssignmentService(assignmentRepo interfaces.AssignmentRepository, rideRepo interfaces.RideRepository, log *logger.Logger) AssignmentService {
	return &assignmentService{
		assignmentRepo: assignmentRepo,
		rideRepo:       rideRepo,
		logger:         log.WithComponent("assignment_service"),
	}
}

func (s *assignmentService) ListForRide(ctx context.Context, driverID, rideID primitive.ObjectID) ([]*models.AssignmentWithPassenger, error) {
	ride, err := s.rideRepo.GetByID(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if ride.DriverID != driverID {
		return nil, ErrForbidden
	}

	return s.assignmentRepo.GetByRideWithPassengers(ctx, rideID)
}

func (s *assignmentService) UpdateStatus(ctx context.Context, driverID, assignmentID primitive.ObjectID, status models.AssignmentStatus) (*models.RideAssignment, error) {
	assignment, err := s.requireDriverOwned(ctx, driverID, assignmentID)
	if err != nil {
		return nil, err
	}

	if !assignment.Status.CanTransitionTo(status) {
		return nil, ErrInvalidTransition
	}

	if err := s.assignmentRepo.UpdateStatus(ctx, assignmentID, status); err != nil {
		return nil, err
	}

	s.logger.WithRideID(assignment.RideID).WithFields(map[string]interface{}{
		"assignment_id": assignmentID.Hex(),
		"status":        status,
	}).Info("assignment status updated")

	return s.assignmentRepo.GetByID(ctx, assignmentID)
}

func (s *assignmentService) UpdateRoute(ctx context.Context, driverID, assignmentID primitive.ObjectID, route []models.Coordinate) (*models.RideAssignment, error) {
	assignment, err := s.requireDriverOwned(ctx, driverID, assignmentID)
	if err != nil {
		return nil, err
	}

	if err := s.assignmentRepo.UpdateRoute(ctx, assignmentID, route); err != nil {
		return nil, err
	}

	s.logger.WithRideID(assignment.RideID).WithField("assignment_id", assignmentID.Hex()).Info("assignment route updated")
	return s.assignmentRepo.GetByID(ctx, assignmentID)
}

func (s *assignmentService) requireDriverOwned(ctx context.Context, driverID, assignmentID primitive.ObjectID) (*models.RideAssignment, error) {
	assignment, err := s.assignmentRepo.GetByID(ctx, assignmentID)
	if err != nil {
		return nil, err
	}

	ride, err := s.rideRepo.GetByID(ctx, assignment.RideID)
	if err != nil {
		return nil, err
	}
	if ride.DriverID != driverID {
		return nil, ErrForbidden
	}

	return assignment, nil
}
