package mongodb

import (
	"context"
	"fmt"
	"time"

	"carpool/internal/models"
	"carpool/internal/repositories/interfaces"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type routePointRepository struct {
	collection *mongo.Collection
}

func NewRoutePointRepository(db *mongo.Database) interfaces.RoutePointRepository {
	return &routePointRepository{
		collection: db.Collection("route_points"),
	}
}

func (r *routePointRepository) ReplaceForRide(ctx context.Context, rideID primitive.ObjectID, points []*models.RoutePoint) error {
	if _, err := r.collection.DeleteMany(ctx, bson.M{"ride_id": rideID}); err != nil {
		return fmt.Errorf("failed to clear route points: %w", err)
	}

	if len(points) == 0 {
		return nil
	}

	now := time.Now()
	docs := make([]interface{}, 0, len(points))
	for _, point := range points {
		point.ID = primitive.NewObjectID()
		point.RideID = rideID
		point.CreatedAt = now
		docs = append(docs, point)
	}

	if _, err := r.collection.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to insert route points: %w", err)
	}

	return nil
}

func (r *routePointRepository) GetByRide(ctx context.Context, rideID primitive.ObjectID) ([]*models.RoutePoint, error) {
	cursor, err := r.collection.Find(
		ctx,
		bson.M{"ride_id": rideID},
		options.Find().SetSort(bson.D{{Key: "sequence_number", Value: 1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to find route points: %w", err)
	}
	defer cursor.Close(ctx)

	var points []*models.RoutePoint
	for cursor.Next(ctx) {
		var point models.RoutePoint
		if err := cursor.Decode(&point); err != nil {
			return nil, fmt.Errorf("failed to decode route point: %w", err)
		}
		points = append(points, &point)
	}

	return points, nil
}
