package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RoutePointType string

const (
	RoutePointTypeStart  RoutePointType = "start"
	RoutePointTypePickup RoutePointType = "pickup"
	RoutePointTypeDrop   RoutePointType = "drop"
	RoutePointTypeEnd    RoutePointType = "end"
)

type RoutePoint struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	RideID         primitive.ObjectID `json:"ride_id" bson:"ride_id" validate:"required"`
	Lat            float64            `json:"lat" bson:"lat"`
	Lng            float64            `json:"lng" bson:"lng"`
	SequenceNumber int                `json:"sequence_number" bson:"sequence_number"`
	Type           RoutePointType     `json:"type" bson:"type" validate:"required"`
	CreatedAt      time.Time          `json:"created_at" bson:"created_at"`
}
