package validators

type CarCreateRequest struct {
	Make         string `json:"make" validate:"required,max=50"`
	Model        string `json:"model" validate:"required,max=50"`
	Year         int    `json:"year" validate:"required,min=1980,max=2100"`
	LicensePlate string `json:"license_plate" validate:"required,max=20"`
	Seats        int    `json:"seats" validate:"required,min=1,max=10"`
}
