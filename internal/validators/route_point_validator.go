package validators

type RoutePointRequest struct {
	Lat            float64 `json:"lat" validate:"min=-90,max=90"`
	Lng            float64 `json:"lng" validate:"min=-180,max=180"`
	SequenceNumber int     `json:"sequence_number" validate:"min=0"`
	Type           string  `json:"type" validate:"required,oneof=start pickup drop end"`
}

type RoutePointsRequest struct {
	Points []RoutePointRequest `json:"points" validate:"required,min=1,max=100,dive"`
}
