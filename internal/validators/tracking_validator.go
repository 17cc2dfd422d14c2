package validators

type TrackingUpdateRequest struct {
	RideID string   `json:"ride_id" validate:"required,object_id"`
	Lat    *float64 `json:"lat" validate:"required"`
	Lng    *float64 `json:"lng" validate:"required"`
}
