package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "pending"
	RequestStatusAccepted  RequestStatus = "accepted"
	RequestStatusRejected  RequestStatus = "rejected"
	RequestStatusCancelled RequestStatus = "cancelled"
)

// Transitions are one-way: once a request leaves pending it is terminal.
var requestTransitions = map[RequestStatus][]RequestStatus{
	RequestStatusPending: {RequestStatusAccepted, RequestStatusRejected, RequestStatusCancelled},
}

func (s RequestStatus) CanTransitionTo(next RequestStatus) bool {
	for _, allowed := range requestTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type RideRequest struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	RideID      primitive.ObjectID `json:"ride_id" bson:"ride_id" validate:"required"`
	PassengerID primitive.ObjectID `json:"passenger_id" bson:"passenger_id" validate:"required"`
	Pickup      RideLocation       `json:"pickup" bson:"pickup" validate:"required"`
	Drop        RideLocation       `json:"drop" bson:"drop" validate:"required"`
	FareOffered *float64           `json:"fare_offered" bson:"fare_offered"`
	Status      RequestStatus      `json:"status" bson:"status"`
	RequestedAt time.Time          `json:"requested_at" bson:"requested_at"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at"`
}
