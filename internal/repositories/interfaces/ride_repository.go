package interfaces

import (
	"context"

	"carpool/internal/models"
	"carpool/internal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RideSearchFilter is the exact-field discovery filter; nil fields are not
// matched on.
type RideSearchFilter struct {
	Address   *string
	StartTime *string
}

type RideRepository interface {
	Create(ctx context.Context, ride *models.Ride) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Ride, error)
	GetByDriver(ctx context.Context, driverID primitive.ObjectID, params *utils.PaginationParams) ([]*models.Ride, int64, error)
	GetActive(ctx context.Context) ([]*models.Ride, error)
	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.RideStatus) error

	// DecrementSeats atomically decrements available_seats of an active ride
	// when it is still positive; it fails with a seat conflict otherwise.
	DecrementSeats(ctx context.Context, id primitive.ObjectID) error

	// FindNearby runs the proximity query over the start-location geo index.
	// Results carry a distance in meters and are ordered nearest-first; the
	// radius is in meters.
	FindNearby(ctx context.Context, lat, lng, radiusMeters float64, limit int) ([]*models.RideWithDistance, error)

	Search(ctx context.Context, filter *RideSearchFilter) ([]*models.Ride, error)
}
