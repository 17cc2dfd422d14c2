package interfaces

import (
	"context"

	"carpool/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AssignmentRepository interface {
	Create(ctx context.Context, assignment *models.RideAssignment) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.RideAssignment, error)
	GetByRideWithPassengers(ctx context.Context, rideID primitive.ObjectID) ([]*models.AssignmentWithPassenger, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.AssignmentStatus) error
	UpdateRoute(ctx context.Context, id primitive.ObjectID, route []models.Coordinate) error
}
