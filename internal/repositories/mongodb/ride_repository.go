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

type rideRepository struct {
	collection *mongo.Collection
	cache      services.CacheService
}

func NewRideRepository(db *mongo.Database, cache services.CacheService) interfaces.RideRepository {
	return &rideRepository{
		collection: db.Collection("rides"),
		cache:      cache,
	}
}

func (r *rideRepository) Create(ctx context.Context, ride *models.Ride) error {
	ride.ID = primitive.NewObjectID()
	ride.CreatedAt = time.Now()
	ride.UpdatedAt = ride.CreatedAt

	_, err := r.collection.InsertOne(ctx, ride)
	if err != nil {
		return fmt.Errorf("failed to create ride: %w", err)
	}

	if ride.Status == models.RideStatusActive {
		r.cacheRide(ctx, ride)
	}

	return nil
}

func (r *rideRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Ride, error) {
	if ride := r.getRideFromCache(ctx, id.Hex()); ride != nil {
		return ride, nil
	}

	var ride models.Ride
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&ride)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, services.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get ride: %w", err)
	}

	if ride.Status == models.RideStatusActive {
		r.cacheRide(ctx, &ride)
	}

	return &ride, nil
}

func (r *rideRepository) GetByDriver(ctx context.Context, driverID primitive.ObjectID, params *utils.PaginationParams) ([]*models.Ride, int64, error) {
	filter := bson.M{"driver_id": driverID}
	return r.findRidesWithFilter(ctx, filter, params)
}

func (r *rideRepository) GetActive(ctx context.Context) ([]*models.Ride, error) {
	filter := bson.M{"status": models.RideStatusActive}

	cursor, err := r.collection.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to find active rides: %w", err)
	}
	defer cursor.Close(ctx)

	return decodeRides(ctx, cursor)
}

func (r *rideRepository) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()

	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": updates},
	)
	if err != nil {
		return fmt.Errorf("failed to update ride: %w", err)
	}
	if result.MatchedCount == 0 {
		return services.ErrNotFound
	}

	r.invalidateRideCache(ctx, id.Hex())

	return nil
}

func (r *rideRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.RideStatus) error {
	return r.Update(ctx, id, map[string]interface{}{"status": status})
}

// DecrementSeats is the seat-reservation guard: the filter only matches while
// the ride is active and a seat remains, so concurrent accepts cannot drive
// available_seats below zero.
func (r *rideRepository) DecrementSeats(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{
			"_id":             id,
			"status":          models.RideStatusActive,
			"available_seats": bson.M{"$gt": 0},
		},
		bson.M{
			"$inc": bson.M{"available_seats": -1},
			"$set": bson.M{"updated_at": time.Now()},
		},
	)
	if err != nil {
		return fmt.Errorf("failed to decrement seats: %w", err)
	}
	if result.ModifiedCount == 0 {
		return services.ErrNoSeatsAvailable
	}

	r.invalidateRideCache(ctx, id.Hex())

	return nil
}

func (r *rideRepository) FindNearby(ctx context.Context, lat, lng, radiusMeters float64, limit int) ([]*models.RideWithDistance, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$geoNear", Value: bson.M{
			"near": bson.M{
				"type":        "Point",
				"coordinates": []float64{lng, lat},
			},
			"distanceField": "distance",
			"maxDistance":   radiusMeters,
			"spherical":     true,
			"key":           "start_location.geo",
			"query": bson.M{
				"status":          models.RideStatusActive,
				"available_seats": bson.M{"$gt": 0},
			},
		}}},
		{{Key: "$limit", Value: limit}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to find nearby rides: %w", err)
	}
	defer cursor.Close(ctx)

	var rides []*models.RideWithDistance
	for cursor.Next(ctx) {
		var ride models.RideWithDistance
		if err := cursor.Decode(&ride); err != nil {
			return nil, fmt.Errorf("failed to decode nearby ride: %w", err)
		}
		rides = append(rides, &ride)
	}

	return rides, nil
}

func (r *rideRepository) Search(ctx context.Context, filter *interfaces.RideSearchFilter) ([]*models.Ride, error) {
	query := bson.M{"status": models.RideStatusActive}
	if filter.Address != nil {
		query["start_location.address"] = *filter.Address
	}
	if filter.StartTime != nil {
		query["start_time"] = *filter.StartTime
	}

	cursor, err := r.collection.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "start_time", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to search rides: %w", err)
	}
	defer cursor.Close(ctx)

	return decodeRides(ctx, cursor)
}

func (r *rideRepository) findRidesWithFilter(ctx context.Context, filter bson.M, params *utils.PaginationParams) ([]*models.Ride, int64, error) {
	if params.Search != "" {
		searchFields := []string{"start_location.address", "destination.address"}
		searchFilter := params.GetSearchFilter(searchFields)
		if len(searchFilter) > 0 {
			filter = bson.M{
				"$and": []bson.M{filter, searchFilter},
			}
		}
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count rides: %w", err)
	}

	cursor, err := r.collection.Find(ctx, filter, params.GetSortOptions())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to find rides: %w", err)
	}
	defer cursor.Close(ctx)

	rides, err := decodeRides(ctx, cursor)
	if err != nil {
		return nil, 0, err
	}

	return rides, total, nil
}

func decodeRides(ctx context.Context, cursor *mongo.Cursor) ([]*models.Ride, error) {
	var rides []*models.Ride
	for cursor.Next(ctx) {
		var ride models.Ride
		if err := cursor.Decode(&ride); err != nil {
			return nil, fmt.Errorf("failed to decode ride: %w", err)
		}
		rides = append(rides, &ride)
	}

	return rides, nil
}

func (r *rideRepository) cacheRide(ctx context.Context, ride *models.Ride) {
	if r.cache != nil {
		cacheKey := utils.CacheRidePrefix + ride.ID.Hex()
		r.cache.Set(ctx, cacheKey, ride, 15*time.Minute)
	}
}

func (r *rideRepository) getRideFromCache(ctx context.Context, rideID string) *models.Ride {
	if r.cache == nil {
		return nil
	}

	var ride models.Ride
	if err := r.cache.Get(ctx, utils.CacheRidePrefix+rideID, &ride); err != nil {
		return nil
	}

	return &ride
}

func (r *rideRepository) invalidateRideCache(ctx context.Context, rideID string) {
	if r.cache != nil {
		r.cache.Delete(ctx, utils.CacheRidePrefix+rideID)
	}
}
