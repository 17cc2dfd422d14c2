package services

import (
	"context"
	"errors"
	"testing"

	"carpool/internal/models"
	"carpool/internal/utils"
	"carpool/internal/validators"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func nearbyRide(startTime string, distance float64) *models.RideWithDistance {
	return &models.RideWithDistance{
		Ride: models.Ride{
			ID:             primitive.NewObjectID(),
			DriverID:       primitive.NewObjectID(),
			StartTime:      startTime,
			TotalSeats:     3,
			AvailableSeats: 2,
			Status:         models.RideStatusActive,
		},
		Distance: distance,
	}
}

func suggestionReq(lat, lng float64) *validators.SuggestionRequest {
	return &validators.SuggestionRequest{Lat: &lat, Lng: &lng}
}

func TestSuggestOrdering(t *testing.T) {
	rideRepo := newFakeRideRepo()
	rideRepo.nearby = []*models.RideWithDistance{
		nearbyRide("09:00", 1200),
		nearbyRide("08:00", 300),
		nearbyRide("07:30", 1200),
	}
	svc := NewSuggestionService(rideRepo, newTestLogger())

	rides, err := svc.Suggest(context.Background(), suggestionReq(12.97, 77.59))
	if err != nil {
		t.Fatalf("Suggest: %v", err)
	}
	if len(rides) != 3 {
		t.Fatalf("got %d rides, want 3", len(rides))
	}
	if rides[0].Distance != 300 {
		t.Errorf("first ride distance = %v, want 300", rides[0].Distance)
	}
	// Equal distances fall back to start time.
	if rides[1].StartTime != "07:30" || rides[2].StartTime != "09:00" {
		t.Errorf("tie-break order = %q, %q; want 07:30 then 09:00", rides[1].StartTime, rides[2].StartTime)
	}
}

func TestSuggestCapsResults(t *testing.T) {
	rideRepo := newFakeRideRepo()
	for i := 0; i < utils.MaxSuggestionResults+15; i++ {
		rideRepo.nearby = append(rideRepo.nearby, nearbyRide("08:00", float64(i*100)))
	}
	svc := NewSuggestionService(rideRepo, newTestLogger())

	rides, err := svc.Suggest(context.Background(), suggestionReq(12.97, 77.59))
	if err != nil {
		t.Fatalf("Suggest: %v", err)
	}
	if len(rides) != utils.MaxSuggestionResults {
		t.Errorf("got %d rides, want cap of %d", len(rides), utils.MaxSuggestionResults)
	}
}

func TestSuggestInvalidCoordinates(t *testing.T) {
	svc := NewSuggestionService(newFakeRideRepo(), newTestLogger())

	for _, tc := range []struct{ lat, lng float64 }{
		{91, 77.59},
		{-91, 77.59},
		{12.97, 181},
		{12.97, -181},
	} {
		if _, err := svc.Suggest(context.Background(), suggestionReq(tc.lat, tc.lng)); !errors.Is(err, ErrInvalidCoordinates) {
			t.Errorf("Suggest(%v, %v) err = %v, want ErrInvalidCoordinates", tc.lat, tc.lng, err)
		}
	}
}

func TestSearchExactMatch(t *testing.T) {
	rideRepo := newFakeRideRepo()
	driverID := primitive.NewObjectID()

	match := activeRide(driverID, 3, 100)
	match.StartLocation = models.NewRideLocation("market square", 12.97, 77.59)
	match.StartTime = "08:30"
	rideRepo.add(match)

	other := activeRide(driverID, 3, 100)
	other.StartLocation = models.NewRideLocation("market square", 12.97, 77.59)
	other.StartTime = "17:00"
	rideRepo.add(other)

	svc := NewSuggestionService(rideRepo, newTestLogger())

	address := "market square"
	startTime := "08:30"
	rides, err := svc.Search(context.Background(), &validators.RideSearchRequest{Address: &address, StartTime: &startTime})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(rides) != 1 {
		t.Fatalf("got %d rides, want 1", len(rides))
	}
	if rides[0].ID != match.ID {
		t.Errorf("matched %v, want %v", rides[0].ID, match.ID)
	}
}
