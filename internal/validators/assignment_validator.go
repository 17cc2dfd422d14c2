package validators

type CoordinateRequest struct {
	Lat float64 `json:"lat" validate:"min=-90,max=90"`
	Lng float64 `json:"lng" validate:"min=-180,max=180"`
}

type AssignmentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=upcoming picked dropped completed"`
}

type AssignmentRouteRequest struct {
	Route []CoordinateRequest `json:"route" validate:"required,min=1,max=100,dive"`
}
