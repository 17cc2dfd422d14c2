package interfaces

import (
	"context"

	"carpool/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TrackingRepository interface {
	Upsert(ctx context.Context, tracking *models.RideTracking) error
	GetByRide(ctx context.Context, rideID primitive.ObjectID) (*models.RideTracking, error)
}
