package validators

type RequestCreateRequest struct {
	RideID      string          `json:"ride_id" validate:"required,object_id"`
	Pickup      LocationRequest `json:"pickup" validate:"required"`
	Drop        LocationRequest `json:"drop" validate:"required"`
	FareOffered *float64        `json:"fare_offered" validate:"omitempty,min=0"`
}
