package validators

type LocationRequest struct {
	Address string  `json:"address" validate:"required,max=255"`
	Lat     float64 `json:"lat" validate:"min=-90,max=90"`
	Lng     float64 `json:"lng" validate:"min=-180,max=180"`
}

type RideCreateRequest struct {
	CarID       string          `json:"car_id" validate:"required,object_id"`
	RideType    string          `json:"ride_type" validate:"required,oneof=to_office from_office custom"`
	Start       LocationRequest `json:"start" validate:"required"`
	Destination LocationRequest `json:"destination" validate:"required"`
	StartTime   string          `json:"start_time" validate:"required,max=50"`
	TotalSeats  int             `json:"total_seats" validate:"required,min=1,max=10"`
	BaseFare    float64         `json:"base_fare" validate:"min=0"`
}

// RideUpdateRequest carries the allow-listed mutable fields of an offering.
type RideUpdateRequest struct {
	CarID          *string  `json:"car_id" validate:"omitempty,object_id"`
	StartTime      *string  `json:"start_time" validate:"omitempty,max=50"`
	AvailableSeats *int     `json:"available_seats" validate:"omitempty,min=0,max=10"`
	BaseFare       *float64 `json:"base_fare" validate:"omitempty,min=0"`
}

type RideStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=completed cancelled"`
}

// RideSearchRequest is the exact-field discovery filter.
type RideSearchRequest struct {
	Address   *string `json:"address" validate:"omitempty,max=255"`
	StartTime *string `json:"start_time" validate:"omitempty,max=50"`
}

// SuggestionRequest is the proximity query input. Lat/Lng are pointers so a
// missing coordinate is distinguishable from 0.
type SuggestionRequest struct {
	Lat          *float64 `json:"lat" validate:"required"`
	Lng          *float64 `json:"lng" validate:"required"`
	RadiusMeters *float64 `json:"radius_meters" validate:"omitempty,min=1,max=50000"`
}
