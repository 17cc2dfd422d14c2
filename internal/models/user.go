package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserRole string

const (
	UserRoleDriver    UserRole = "driver"
	UserRolePassenger UserRole = "passenger"
	UserRoleAdmin     UserRole = "admin"
)

type User struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	FirstName    string             `json:"first_name" bson:"first_name" validate:"required,min=2,max=50"`
	LastName     string             `json:"last_name" bson:"last_name" validate:"required,min=2,max=50"`
	Email        string             `json:"email" bson:"email" validate:"required,email"`
	Password     string             `json:"-" bson:"password"`
	Phone        string             `json:"phone" bson:"phone" validate:"required"`
	Role         UserRole           `json:"role" bson:"role" validate:"required"`
	HomeAddress  *Address           `json:"home_address" bson:"home_address"`
	WorkAddress  *Address           `json:"work_address" bson:"work_address"`
	MorningTime  string             `json:"morning_time" bson:"morning_time"` // HH:MM
	EveningTime  string             `json:"evening_time" bson:"evening_time"` // HH:MM
	WorkingDays  []string           `json:"working_days" bson:"working_days"`
	LastLoginAt  *time.Time         `json:"last_login_at" bson:"last_login_at"`
	CreatedAt    time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at" bson:"updated_at"`
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
