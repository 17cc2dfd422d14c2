package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RideTracking is the single current-location record for a ride. Latest write
// wins; no history is kept.
type RideTracking struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	RideID    primitive.ObjectID `json:"ride_id" bson:"ride_id" validate:"required"`
	Lat       float64            `json:"lat" bson:"lat"`
	Lng       float64            `json:"lng" bson:"lng"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updated_at"`
}
