package services

import (
	"context"
	"errors"
	"testing"

	"carpool/internal/validators"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestReplaceRoutePoints(t *testing.T) {
	rideRepo := newFakeRideRepo()
	routePointRepo := newFakeRoutePointRepo()
	svc := NewRoutePointService(routePointRepo, rideRepo, newTestLogger())

	driverID := primitive.NewObjectID()
	ride := rideRepo.add(activeRide(driverID, 3, 100))

	first := &validators.RoutePointsRequest{Points: []validators.RoutePointRequest{
		{Lat: 12.97, Lng: 77.59, SequenceNumber: 0, Type: "start"},
		{Lat: 12.95, Lng: 77.60, SequenceNumber: 1, Type: "pickup"},
		{Lat: 12.93, Lng: 77.62, SequenceNumber: 2, Type: "end"},
	}}
	points, err := svc.Replace(context.Background(), driverID, ride.ID, first)
	if err != nil {
		t.Fatalf("Replace: %v", err)
	}
	if len(points) != 3 {
		t.Fatalf("got %d points, want 3", len(points))
	}

	// A second replace overwrites, it does not append.
	second := &validators.RoutePointsRequest{Points: []validators.RoutePointRequest{
		{Lat: 12.97, Lng: 77.59, SequenceNumber: 0, Type: "start"},
		{Lat: 12.93, Lng: 77.62, SequenceNumber: 1, Type: "end"},
	}}
	points, err = svc.Replace(context.Background(), driverID, ride.ID, second)
	if err != nil {
		t.Fatalf("second Replace: %v", err)
	}
	if len(points) != 2 {
		t.Errorf("got %d points after overwrite, want 2", len(points))
	}
}

func TestReplaceRoutePointsForeignDriver(t *testing.T) {
	rideRepo := newFakeRideRepo()
	svc := NewRoutePointService(newFakeRoutePointRepo(), rideRepo, newTestLogger())

	ride := rideRepo.add(activeRide(primitive.NewObjectID(), 3, 100))
	req := &validators.RoutePointsRequest{Points: []validators.RoutePointRequest{
		{Lat: 12.97, Lng: 77.59, SequenceNumber: 0, Type: "start"},
	}}

	_, err := svc.Replace(context.Background(), primitive.NewObjectID(), ride.ID, req)
	if !errors.Is(err, ErrForbidden) {
		t.Errorf("err = %v, want ErrForbidden", err)
	}
}
