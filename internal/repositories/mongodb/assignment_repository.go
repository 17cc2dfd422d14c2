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
)

type assignmentRepository struct {
	collection *mongo.Collection
}

func NewAssignmentRepository(db *mongo.Database) interfaces.AssignmentRepository {
	return &assignmentRepository{
		collection: db.Collection("ride_assignments"),
	}
}

func (r *assignmentRepository) Create(ctx context.Context, assignment *models.RideAssignment) error {
	assignment.ID = primitive.NewObjectID()
	assignment.Status = models.AssignmentStatusUpcoming
	assignment.CreatedAt = time.Now()
	assignment.UpdatedAt = assignment.CreatedAt

	_, err := r.collection.InsertOne(ctx, assignment)
	if err != nil {
		return fmt.Errorf("failed to create assignment: %w", err)
	}

	return nil
}

func (r *assignmentRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.RideAssignment, error) {
	var assignment models.RideAssignment
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&assignment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, services.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get assignment: %w", err)
	}

	return &assignment, nil
}

func (r *assignmentRepository) GetByRideWithPassengers(ctx context.Context, rideID primitive.ObjectID) ([]*models.AssignmentWithPassenger, error) {
	pipeline := []bson.M{
		{"$match": bson.M{"ride_id": rideID}},
		{"$lookup": bson.M{
			"from":         "users",
			"localField":   "passenger_id",
			"foreignField": "_id",
			"as":           "passenger",
		}},
		{"$unwind": bson.M{
			"path":                       "$passenger",
			"preserveNullAndEmptyArrays": true,
		}},
		{"$sort": bson.M{"pickup_order": 1}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate assignments: %w", err)
	}
	defer cursor.Close(ctx)

	var assignments []*models.AssignmentWithPassenger
	for cursor.Next(ctx) {
		var assignment models.AssignmentWithPassenger
		if err := cursor.Decode(&assignment); err != nil {
			return nil, fmt.Errorf("failed to decode assignment: %w", err)
		}
		if assignment.Passenger != nil {
			assignment.Passenger.Password = ""
		}
		assignments = append(assignments, &assignment)
	}

	return assignments, nil
}

func (r *assignmentRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.AssignmentStatus) error {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}},
	)
	if err != nil {
		return fmt.Errorf("failed to update assignment status: %w", err)
	}
	if result.MatchedCount == 0 {
		return services.ErrNotFound
	}

	return nil
}

func (r *assignmentRepository) UpdateRoute(ctx context.Context, id primitive.ObjectID, route []models.Coordinate) error {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"updated_route": route, "updated_at": time.Now()}},
	)
	if err != nil {
		return fmt.Errorf("failed to update assignment route: %w", err)
	}
	if result.MatchedCount == 0 {
		return services.ErrNotFound
	}

	return nil
}
