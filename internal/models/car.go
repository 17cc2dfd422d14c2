package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Car struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	OwnerID      primitive.ObjectID `json:"owner_id" bson:"owner_id" validate:"required"`
	Make         string             `json:"make" bson:"make" validate:"required"`
	Model        string             `json:"model" bson:"model" validate:"required"`
	Year         int                `json:"year" bson:"year" validate:"required"`
	LicensePlate string             `json:"license_plate" bson:"license_plate" validate:"required"`
	Seats        int                `json:"seats" bson:"seats" validate:"required,min=1"`
	IsActive     bool               `json:"is_active" bson:"is_active"`
	CreatedAt    time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at" bson:"updated_at"`
}
