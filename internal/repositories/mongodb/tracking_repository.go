package mongodb

import (
	"context"
	"fmt"
	"time"

	"carpool/internal/models"
	"carpool/internal/repositories/interfaces"
	"carpool/internal/services"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type trackingRepository struct {
	collection *mongo.Collection
}

func NewTrackingRepository(db *mongo.Database) interfaces.TrackingRepository {
	return &trackingRepository{
		collection: db.Collection("ride_tracking"),
	}
}

func (r *trackingRepository) Upsert(ctx context.Context, tracking *models.RideTracking) error {
	tracking.UpdatedAt = time.Now()

	_, err := r.collection.UpdateOne(
		ctx,
		bson.M{"ride_id": tracking.RideID},
		bson.M{
			"$set": bson.M{
				"lat":        tracking.Lat,
				"lng":        tracking.Lng,
				"updated_at": tracking.UpdatedAt,
			},
			"$setOnInsert": bson.M{"_id": primitive.NewObjectID()},
		},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert tracking: %w", err)
	}

	return nil
}

func (r *trackingRepository) GetByRide(ctx context.Context, rideID primitive.ObjectID) (*models.RideTracking, error) {
	var tracking models.RideTracking
	err := r.collection.FindOne(ctx, bson.M{"ride_id": rideID}).Decode(&tracking)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, services.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get tracking: %w", err)
	}

	return &tracking, nil
}
