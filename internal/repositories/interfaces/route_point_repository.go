package interfaces

import (
	"context"

	"carpool/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RoutePointRepository interface {
	// ReplaceForRide deletes every point of the ride and inserts the given
	// list wholesale.
	ReplaceForRide(ctx context.Context, rideID primitive.ObjectID, points []*models.RoutePoint) error
	GetByRide(ctx context.Context, rideID primitive.ObjectID) ([]*models.RoutePoint, error)
}
