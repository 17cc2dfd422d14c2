package validators

type AddressRequest struct {
	Text string  `json:"text" validate:"required,max=255"`
	Lat  float64 `json:"lat" validate:"min=-90,max=90"`
	Lng  float64 `json:"lng" validate:"min=-180,max=180"`
}

type RegisterRequest struct {
	FirstName   string          `json:"first_name" validate:"required,min=2,max=50"`
	LastName    string          `json:"last_name" validate:"required,min=2,max=50"`
	Email       string          `json:"email" validate:"required,email"`
	Password    string          `json:"password" validate:"required,min=8,max=128"`
	Phone       string          `json:"phone" validate:"required,min=7,max=20"`
	Role        string          `json:"role" validate:"required,oneof=driver passenger"`
	HomeAddress *AddressRequest `json:"home_address" validate:"omitempty"`
	WorkAddress *AddressRequest `json:"work_address" validate:"omitempty"`
	MorningTime string          `json:"morning_time" validate:"omitempty,clock_time"`
	EveningTime string          `json:"evening_time" validate:"omitempty,clock_time"`
	WorkingDays []string        `json:"working_days" validate:"omitempty,max=7,dive,oneof=mon tue wed thu fri sat sun"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserUpdateRequest carries the allow-listed profile fields; anything else in
// the body is ignored.
type UserUpdateRequest struct {
	FirstName   *string         `json:"first_name" validate:"omitempty,min=2,max=50"`
	LastName    *string         `json:"last_name" validate:"omitempty,min=2,max=50"`
	Phone       *string         `json:"phone" validate:"omitempty,min=7,max=20"`
	HomeAddress *AddressRequest `json:"home_address" validate:"omitempty"`
	WorkAddress *AddressRequest `json:"work_address" validate:"omitempty"`
	MorningTime *string         `json:"morning_time" validate:"omitempty,clock_time"`
	EveningTime *string         `json:"evening_time" validate:"omitempty,clock_time"`
	WorkingDays []string        `json:"working_days" validate:"omitempty,max=7,dive,oneof=mon tue wed thu fri sat sun"`
}
