package interfaces

import (
	"context"

	"carpool/internal/models"
	"carpool/internal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RideRequestRepository interface {
	Create(ctx context.Context, request *models.RideRequest) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.RideRequest, error)
	GetByPassenger(ctx context.Context, passengerID primitive.ObjectID, params *utils.PaginationParams) ([]*models.RideRequest, int64, error)
	GetByRide(ctx context.Context, rideID primitive.ObjectID) ([]*models.RideRequest, error)

	// UpdateStatus performs a compare-and-set from one status to another; it
	// fails with an invalid-transition conflict when the request is no longer
	// in the expected status.
	UpdateStatus(ctx context.Context, id primitive.ObjectID, from, to models.RequestStatus) error

	HasPending(ctx context.Context, rideID, passengerID primitive.ObjectID) (bool, error)

	// RejectAllPending flips every pending request of a ride to rejected and
	// returns how many were affected.
	RejectAllPending(ctx context.Context, rideID primitive.ObjectID) (int64, error)
}
