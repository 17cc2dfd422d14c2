package mongodb

import (
	"context"
	"fmt"
	"time"

	"carpool/internal/models"
	"carpool/internal/repositories/interfaces"
	"carpool/internal/services"
	"carpool/internal/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type rideRequestRepository struct {
	collection *mongo.Collection
}

func NewRideRequestRepository(db *mongo.Database) interfaces.RideRequestRepository {
	return &rideRequestRepository{
		collection: db.Collection("ride_requests"),
	}
}

func (r *rideRequestRepository) Create(ctx context.Context, request *models.RideRequest) error {
	request.ID = primitive.NewObjectID()
	request.Status = models.RequestStatusPending
	request.RequestedAt = time.Now()
	request.UpdatedAt = request.RequestedAt

	_, err := r.collection.InsertOne(ctx, request)
	if err != nil {
		return fmt.Errorf("failed to create ride request: %w", err)
	}

	return nil
}

func (r *rideRequestRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.RideRequest, error) {
	var request models.RideRequest
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&request)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, services.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get ride request: %w", err)
	}

	return &request, nil
}

func (r *rideRequestRepository) GetByPassenger(ctx context.Context, passengerID primitive.ObjectID, params *utils.PaginationParams) ([]*models.RideRequest, int64, error) {
	filter := bson.M{"passenger_id": passengerID}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count ride requests: %w", err)
	}

	cursor, err := r.collection.Find(ctx, filter, params.GetSortOptions())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to find ride requests: %w", err)
	}
	defer cursor.Close(ctx)

	requests, err := decodeRequests(ctx, cursor)
	if err != nil {
		return nil, 0, err
	}

	return requests, total, nil
}

func (r *rideRequestRepository) GetByRide(ctx context.Context, rideID primitive.ObjectID) ([]*models.RideRequest, error) {
	cursor, err := r.collection.Find(
		ctx,
		bson.M{"ride_id": rideID},
		options.Find().SetSort(bson.D{{Key: "requested_at", Value: 1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to find ride requests: %w", err)
	}
	defer cursor.Close(ctx)

	return decodeRequests(ctx, cursor)
}

// UpdateStatus only matches while the request still holds the expected
// status, so two drivers racing on the same request cannot both win.
func (r *rideRequestRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, from, to models.RequestStatus) error {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id, "status": from},
		bson.M{"$set": bson.M{"status": to, "updated_at": time.Now()}},
	)
	if err != nil {
		return fmt.Errorf("failed to update request status: %w", err)
	}
	if result.ModifiedCount == 0 {
		return services.ErrInvalidTransition
	}

	return nil
}

func (r *rideRequestRepository) HasPending(ctx context.Context, rideID, passengerID primitive.ObjectID) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{
		"ride_id":      rideID,
		"passenger_id": passengerID,
		"status":       models.RequestStatusPending,
	})
	if err != nil {
		return false, fmt.Errorf("failed to count pending requests: %w", err)
	}

	return count > 0, nil
}

func (r *rideRequestRepository) RejectAllPending(ctx context.Context, rideID primitive.ObjectID) (int64, error) {
	result, err := r.collection.UpdateMany(
		ctx,
		bson.M{"ride_id": rideID, "status": models.RequestStatusPending},
		bson.M{"$set": bson.M{"status": models.RequestStatusRejected, "updated_at": time.Now()}},
	)
	if err != nil {
		return 0, fmt.Errorf("failed to reject pending requests: %w", err)
	}

	return result.ModifiedCount, nil
}

func decodeRequests(ctx context.Context, cursor *mongo.Cursor) ([]*models.RideRequest, error) {
	var requests []*models.RideRequest
	for cursor.Next(ctx) {
		var request models.RideRequest
		if err := cursor.Decode(&request); err != nil {
			return nil, fmt.Errorf("failed to decode ride request: %w", err)
		}
		requests = append(requests, &request)
	}

	return requests, nil
}
