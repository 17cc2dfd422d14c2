package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AssignmentStatus string

const (
	AssignmentStatusUpcoming  AssignmentStatus = "upcoming"
	AssignmentStatusPicked    AssignmentStatus = "picked"
	AssignmentStatusDropped   AssignmentStatus = "dropped"
	AssignmentStatusCompleted AssignmentStatus = "completed"
)

var assignmentTransitions = map[AssignmentStatus][]AssignmentStatus{
	AssignmentStatusUpcoming: {AssignmentStatusPicked},
	AssignmentStatusPicked:   {AssignmentStatusDropped},
	AssignmentStatusDropped:  {AssignmentStatusCompleted},
}

func (s AssignmentStatus) CanTransitionTo(next AssignmentStatus) bool {
	for _, allowed := range assignmentTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s AssignmentStatus) IsValid() bool {
	switch s {
	case AssignmentStatusUpcoming, AssignmentStatusPicked, AssignmentStatusDropped, AssignmentStatusCompleted:
		return true
	}
	return false
}

type RideAssignment struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	RideID       primitive.ObjectID `json:"ride_id" bson:"ride_id" validate:"required"`
	RequestID    primitive.ObjectID `json:"request_id" bson:"request_id" validate:"required"`
	PassengerID  primitive.ObjectID `json:"passenger_id" bson:"passenger_id" validate:"required"`
	FareFinal    float64            `json:"fare_final" bson:"fare_final"`
	PickupOrder  int                `json:"pickup_order" bson:"pickup_order"`
	Status       AssignmentStatus   `json:"status" bson:"status"`
	UpdatedRoute []Coordinate       `json:"updated_route" bson:"updated_route"`
	CreatedAt    time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at" bson:"updated_at"`
}

// AssignmentWithPassenger is the driver's view of an assignment with the
// passenger profile joined in.
type AssignmentWithPassenger struct {
	RideAssignment `bson:",inline"`
	Passenger      *User `json:"passenger" bson:"passenger"`
}
