package services

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"carpool/internal/models"
	"carpool/internal/repositories/interfaces"
	"carpool/internal/utils"
	"carpool/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newTestLogger() *logger.Logger {
	log, err := logger.NewLogger(&logger.Config{Level: "error", Format: "text", Output: "stdout"})
	if err != nil {
		panic(err)
	}
	return log
}

// In-memory repository fakes. Writes are serialized with a mutex so the
// concurrency tests exercise the same all-or-nothing seat semantics the
// database gives.

type fakeRideRepo struct {
	mu     sync.Mutex
	rides  map[primitive.ObjectID]*models.Ride
	nearby []*models.RideWithDistance
}

func newFakeRideRepo() *fakeRideRepo {
	return &fakeRideRepo{rides: map[primitive.ObjectID]*models.Ride{}}
}

func (f *fakeRideRepo) add(ride *models.Ride) *models.Ride {
	f.mu.Lock()
	defer f.mu.Unlock()
	if ride.ID.IsZero() {
		ride.ID = primitive.NewObjectID()
	}
	if ride.Status == "" {
		ride.Status = models.RideStatusActive
	}
	f.rides[ride.ID] = ride
	return ride
}

func (f *fakeRideRepo) Create(ctx context.Context, ride *models.Ride) error {
	ride.ID = primitive.NewObjectID()
	ride.Status = models.RideStatusActive
	ride.CreatedAt = time.Now()
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rides[ride.ID] = ride
	return nil
}

func (f *fakeRideRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Ride, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ride, ok := f.rides[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *ride
	return &copied, nil
}

func (f *fakeRideRepo) GetByDriver(ctx context.Context, driverID primitive.ObjectID, params *utils.PaginationParams) ([]*models.Ride, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var rides []*models.Ride
	for _, ride := range f.rides {
		if ride.DriverID == driverID {
			rides = append(rides, ride)
		}
	}
	return rides, int64(len(rides)), nil
}

func (f *fakeRideRepo) GetActive(ctx context.Context) ([]*models.Ride, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var rides []*models.Ride
	for _, ride := range f.rides {
		if ride.Status == models.RideStatusActive {
			rides = append(rides, ride)
		}
	}
	return rides, nil
}

func (f *fakeRideRepo) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	ride, ok := f.rides[id]
	if !ok {
		return ErrNotFound
	}
	if v, ok := updates["start_time"]; ok {
		ride.StartTime = v.(string)
	}
	if v, ok := updates["available_seats"]; ok {
		ride.AvailableSeats = v.(int)
	}
	if v, ok := updates["base_fare"]; ok {
		ride.BaseFare = v.(float64)
	}
	if v, ok := updates["car_id"]; ok {
		ride.CarID = v.(primitive.ObjectID)
	}
	return nil
}

func (f *fakeRideRepo) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.RideStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	ride, ok := f.rides[id]
	if !ok {
		return ErrNotFound
	}
	ride.Status = status
	return nil
}

func (f *fakeRideRepo) DecrementSeats(ctx context.Context, id primitive.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	ride, ok := f.rides[id]
	if !ok || ride.Status != models.RideStatusActive || ride.AvailableSeats <= 0 {
		return ErrNoSeatsAvailable
	}
	ride.AvailableSeats--
	return nil
}

func (f *fakeRideRepo) FindNearby(ctx context.Context, lat, lng, radiusMeters float64, limit int) ([]*models.RideWithDistance, error) {
	if limit < len(f.nearby) {
		return f.nearby[:limit], nil
	}
	return f.nearby, nil
}

func (f *fakeRideRepo) Search(ctx context.Context, filter *interfaces.RideSearchFilter) ([]*models.Ride, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var rides []*models.Ride
	for _, ride := range f.rides {
		if ride.Status != models.RideStatusActive {
			continue
		}
		if filter.Address != nil && ride.StartLocation.Address != *filter.Address {
			continue
		}
		if filter.StartTime != nil && ride.StartTime != *filter.StartTime {
			continue
		}
		rides = append(rides, ride)
	}
	return rides, nil
}

type fakeRequestRepo struct {
	mu       sync.Mutex
	requests map[primitive.ObjectID]*models.RideRequest
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{requests: map[primitive.ObjectID]*models.RideRequest{}}
}

func (f *fakeRequestRepo) add(request *models.RideRequest) *models.RideRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	if request.ID.IsZero() {
		request.ID = primitive.NewObjectID()
	}
	if request.Status == "" {
		request.Status = models.RequestStatusPending
	}
	f.requests[request.ID] = request
	return request
}

func (f *fakeRequestRepo) Create(ctx context.Context, request *models.RideRequest) error {
	request.ID = primitive.NewObjectID()
	request.Status = models.RequestStatusPending
	request.RequestedAt = time.Now()
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests[request.ID] = request
	return nil
}

func (f *fakeRequestRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.RideRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	request, ok := f.requests[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *request
	return &copied, nil
}

func (f *fakeRequestRepo) GetByPassenger(ctx context.Context, passengerID primitive.ObjectID, params *utils.PaginationParams) ([]*models.RideRequest, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var requests []*models.RideRequest
	for _, request := range f.requests {
		if request.PassengerID == passengerID {
			requests = append(requests, request)
		}
	}
	return requests, int64(len(requests)), nil
}

func (f *fakeRequestRepo) GetByRide(ctx context.Context, rideID primitive.ObjectID) ([]*models.RideRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var requests []*models.RideRequest
	for _, request := range f.requests {
		if request.RideID == rideID {
			requests = append(requests, request)
		}
	}
	return requests, nil
}

func (f *fakeRequestRepo) UpdateStatus(ctx context.Context, id primitive.ObjectID, from, to models.RequestStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	request, ok := f.requests[id]
	if !ok || request.Status != from {
		return ErrInvalidTransition
	}
	request.Status = to
	return nil
}

func (f *fakeRequestRepo) HasPending(ctx context.Context, rideID, passengerID primitive.ObjectID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, request := range f.requests {
		if request.RideID == rideID && request.PassengerID == passengerID && request.Status == models.RequestStatusPending {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRequestRepo) RejectAllPending(ctx context.Context, rideID primitive.ObjectID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var rejected int64
	for _, request := range f.requests {
		if request.RideID == rideID && request.Status == models.RequestStatusPending {
			request.Status = models.RequestStatusRejected
			rejected++
		}
	}
	return rejected, nil
}

type fakeAssignmentRepo struct {
	mu          sync.Mutex
	assignments map[primitive.ObjectID]*models.RideAssignment
}

func newFakeAssignmentRepo() *fakeAssignmentRepo {
	return &fakeAssignmentRepo{assignments: map[primitive.ObjectID]*models.RideAssignment{}}
}

func (f *fakeAssignmentRepo) add(assignment *models.RideAssignment) *models.RideAssignment {
	f.mu.Lock()
	defer f.mu.Unlock()
	if assignment.ID.IsZero() {
		assignment.ID = primitive.NewObjectID()
	}
	if assignment.Status == "" {
		assignment.Status = models.AssignmentStatusUpcoming
	}
	f.assignments[assignment.ID] = assignment
	return assignment
}

func (f *fakeAssignmentRepo) Create(ctx context.Context, assignment *models.RideAssignment) error {
	assignment.ID = primitive.NewObjectID()
	assignment.Status = models.AssignmentStatusUpcoming
	assignment.CreatedAt = time.Now()
	f.mu.Lock()
	defer f.mu.Unlock()
	f.assignments[assignment.ID] = assignment
	return nil
}

func (f *fakeAssignmentRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.RideAssignment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	assignment, ok := f.assignments[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *assignment
	return &copied, nil
}

func (f *fakeAssignmentRepo) GetByRideWithPassengers(ctx context.Context, rideID primitive.ObjectID) ([]*models.AssignmentWithPassenger, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var assignments []*models.AssignmentWithPassenger
	for _, assignment := range f.assignments {
		if assignment.RideID == rideID {
			assignments = append(assignments, &models.AssignmentWithPassenger{RideAssignment: *assignment})
		}
	}
	return assignments, nil
}

func (f *fakeAssignmentRepo) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.AssignmentStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	assignment, ok := f.assignments[id]
	if !ok {
		return ErrNotFound
	}
	assignment.Status = status
	return nil
}

func (f *fakeAssignmentRepo) UpdateRoute(ctx context.Context, id primitive.ObjectID, route []models.Coordinate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	assignment, ok := f.assignments[id]
	if !ok {
		return ErrNotFound
	}
	assignment.UpdatedRoute = route
	return nil
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[primitive.ObjectID]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[primitive.ObjectID]*models.User{}}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return ErrEmailTaken
		}
	}
	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now()
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeUserRepo) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return ErrNotFound
	}
	if v, ok := updates["first_name"]; ok {
		user.FirstName = v.(string)
	}
	if v, ok := updates["last_name"]; ok {
		user.LastName = v.(string)
	}
	if v, ok := updates["phone"]; ok {
		user.Phone = v.(string)
	}
	if v, ok := updates["morning_time"]; ok {
		user.MorningTime = v.(string)
	}
	if v, ok := updates["evening_time"]; ok {
		user.EveningTime = v.(string)
	}
	if v, ok := updates["home_address"]; ok {
		user.HomeAddress = v.(*models.Address)
	}
	if v, ok := updates["work_address"]; ok {
		user.WorkAddress = v.(*models.Address)
	}
	if v, ok := updates["working_days"]; ok {
		user.WorkingDays = v.([]string)
	}
	if v, ok := updates["last_login_at"]; ok {
		at := v.(time.Time)
		user.LastLoginAt = &at
	}
	return nil
}

type fakeCarRepo struct {
	mu   sync.Mutex
	cars map[primitive.ObjectID]*models.Car
}

func newFakeCarRepo() *fakeCarRepo {
	return &fakeCarRepo{cars: map[primitive.ObjectID]*models.Car{}}
}

func (f *fakeCarRepo) add(car *models.Car) *models.Car {
	f.mu.Lock()
	defer f.mu.Unlock()
	if car.ID.IsZero() {
		car.ID = primitive.NewObjectID()
	}
	f.cars[car.ID] = car
	return car
}

func (f *fakeCarRepo) Create(ctx context.Context, car *models.Car) error {
	car.ID = primitive.NewObjectID()
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cars[car.ID] = car
	return nil
}

func (f *fakeCarRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Car, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	car, ok := f.cars[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *car
	return &copied, nil
}

func (f *fakeCarRepo) GetByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]*models.Car, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var cars []*models.Car
	for _, car := range f.cars {
		if car.OwnerID == ownerID {
			cars = append(cars, car)
		}
	}
	return cars, nil
}

type fakeRoutePointRepo struct {
	mu     sync.Mutex
	points map[primitive.ObjectID][]*models.RoutePoint
}

func newFakeRoutePointRepo() *fakeRoutePointRepo {
	return &fakeRoutePointRepo{points: map[primitive.ObjectID][]*models.RoutePoint{}}
}

func (f *fakeRoutePointRepo) ReplaceForRide(ctx context.Context, rideID primitive.ObjectID, points []*models.RoutePoint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, point := range points {
		point.ID = primitive.NewObjectID()
		point.RideID = rideID
	}
	f.points[rideID] = points
	return nil
}

func (f *fakeRoutePointRepo) GetByRide(ctx context.Context, rideID primitive.ObjectID) ([]*models.RoutePoint, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.points[rideID], nil
}

type fakeTrackingRepo struct {
	mu       sync.Mutex
	tracking map[primitive.ObjectID]*models.RideTracking
}

func newFakeTrackingRepo() *fakeTrackingRepo {
	return &fakeTrackingRepo{tracking: map[primitive.ObjectID]*models.RideTracking{}}
}

func (f *fakeTrackingRepo) Upsert(ctx context.Context, tracking *models.RideTracking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	tracking.UpdatedAt = time.Now()
	existing, ok := f.tracking[tracking.RideID]
	if ok {
		tracking.ID = existing.ID
	} else {
		tracking.ID = primitive.NewObjectID()
	}
	copied := *tracking
	f.tracking[tracking.RideID] = &copied
	return nil
}

func (f *fakeTrackingRepo) GetByRide(ctx context.Context, rideID primitive.ObjectID) (*models.RideTracking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	tracking, ok := f.tracking[rideID]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *tracking
	return &copied, nil
}

// fakeTxManager just runs fn; the fakes' per-call mutexes stand in for the
// database's transaction isolation.
type fakeTxManager struct{}

func (fakeTxManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeCache struct {
	mu     sync.Mutex
	values map[string][]byte
}

func newFakeCache() *fakeCache {
	return &fakeCache{values: map[string][]byte{}}
}

func (f *fakeCache) Get(ctx context.Context, key string, dest interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, ok := f.values[key]
	if !ok {
		return ErrNotFound
	}
	return json.Unmarshal(data, dest)
}

func (f *fakeCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[key] = data
	return nil
}

func (f *fakeCache) Delete(ctx context.Context, keys ...string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, key := range keys {
		delete(f.values, key)
	}
	return nil
}

func (f *fakeCache) Exists(ctx context.Context, key string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.values[key]
	return ok, nil
}

func (f *fakeCache) Increment(ctx context.Context, key string) (int64, error) {
	return 1, nil
}

func (f *fakeCache) SetExpire(ctx context.Context, key string, expiration time.Duration) error {
	return nil
}
