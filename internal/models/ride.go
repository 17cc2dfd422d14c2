package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RideStatus string
type RideType string

const (
	RideStatusActive    RideStatus = "active"
	RideStatusCompleted RideStatus = "completed"
	RideStatusCancelled RideStatus = "cancelled"

	RideTypeToOffice   RideType = "to_office"
	RideTypeFromOffice RideType = "from_office"
	RideTypeCustom     RideType = "custom"
)

var rideTransitions = map[RideStatus][]RideStatus{
	RideStatusActive: {RideStatusCompleted, RideStatusCancelled},
}

func (s RideStatus) CanTransitionTo(next RideStatus) bool {
	for _, allowed := range rideTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s RideStatus) IsValid() bool {
	switch s {
	case RideStatusActive, RideStatusCompleted, RideStatusCancelled:
		return true
	}
	return false
}

type Ride struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	DriverID       primitive.ObjectID `json:"driver_id" bson:"driver_id" validate:"required"`
	CarID          primitive.ObjectID `json:"car_id" bson:"car_id" validate:"required"`
	RideType       RideType           `json:"ride_type" bson:"ride_type" validate:"required"`
	StartLocation  RideLocation       `json:"start_location" bson:"start_location" validate:"required"`
	Destination    RideLocation       `json:"destination" bson:"destination" validate:"required"`
	StartTime      string             `json:"start_time" bson:"start_time" validate:"required"`
	TotalSeats     int                `json:"total_seats" bson:"total_seats" validate:"required,min=1"`
	AvailableSeats int                `json:"available_seats" bson:"available_seats"`
	BaseFare       float64            `json:"base_fare" bson:"base_fare" validate:"required,min=0"`
	DistanceKM     float64            `json:"distance_km" bson:"distance_km"`
	Status         RideStatus         `json:"status" bson:"status"`
	CreatedAt      time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at" bson:"updated_at"`
}

// RideWithDistance is a ride decorated with the distance (meters) computed by
// the $geoNear stage of the suggestion query.
type RideWithDistance struct {
	Ride     `bson:",inline"`
	Distance float64 `json:"distance" bson:"distance"`
}
