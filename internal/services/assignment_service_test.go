package services

import (
	"context"
	"errors"
	"testing"

	"carpool/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestAssignmentStatusChain(t *testing.T) {
	rideRepo := newFakeRideRepo()
	assignmentRepo := newFakeAssignmentRepo()
	svc := NewAssignmentService(assignmentRepo, rideRepo, newTestLogger())

	driverID := primitive.NewObjectID()
	ride := rideRepo.add(activeRide(driverID, 3, 100))
	assignment := assignmentRepo.add(&models.RideAssignment{
		RideID:      ride.ID,
		RequestID:   primitive.NewObjectID(),
		PassengerID: primitive.NewObjectID(),
	})

	for _, status := range []models.AssignmentStatus{
		models.AssignmentStatusPicked,
		models.AssignmentStatusDropped,
		models.AssignmentStatusCompleted,
	} {
		updated, err := svc.UpdateStatus(context.Background(), driverID, assignment.ID, status)
		if err != nil {
			t.Fatalf("UpdateStatus(%s): %v", status, err)
		}
		if updated.Status != status {
			t.Fatalf("status = %q, want %q", updated.Status, status)
		}
	}
}

func TestAssignmentStatusSkipsForbidden(t *testing.T) {
	rideRepo := newFakeRideRepo()
	assignmentRepo := newFakeAssignmentRepo()
	svc := NewAssignmentService(assignmentRepo, rideRepo, newTestLogger())

	driverID := primitive.NewObjectID()
	ride := rideRepo.add(activeRide(driverID, 3, 100))
	assignment := assignmentRepo.add(&models.RideAssignment{
		RideID:      ride.ID,
		RequestID:   primitive.NewObjectID(),
		PassengerID: primitive.NewObjectID(),
	})

	// upcoming cannot jump straight to dropped.
	_, err := svc.UpdateStatus(context.Background(), driverID, assignment.ID, models.AssignmentStatusDropped)
	if !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("err = %v, want ErrInvalidTransition", err)
	}

	_, err = svc.UpdateStatus(context.Background(), primitive.NewObjectID(), assignment.ID, models.AssignmentStatusPicked)
	if !errors.Is(err, ErrForbidden) {
		t.Errorf("foreign driver err = %v, want ErrForbidden", err)
	}
}

func TestAssignmentRouteOverwrite(t *testing.T) {
	rideRepo := newFakeRideRepo()
	assignmentRepo := newFakeAssignmentRepo()
	svc := NewAssignmentService(assignmentRepo, rideRepo, newTestLogger())

	driverID := primitive.NewObjectID()
	ride := rideRepo.add(activeRide(driverID, 3, 100))
	assignment := assignmentRepo.add(&models.RideAssignment{
		RideID:       ride.ID,
		RequestID:    primitive.NewObjectID(),
		PassengerID:  primitive.NewObjectID(),
		UpdatedRoute: []models.Coordinate{{Lat: 1, Lng: 1}},
	})

	route := []models.Coordinate{{Lat: 12.97, Lng: 77.59}, {Lat: 12.95, Lng: 77.60}}
	updated, err := svc.UpdateRoute(context.Background(), driverID, assignment.ID, route)
	if err != nil {
		t.Fatalf("UpdateRoute: %v", err)
	}
	if len(updated.UpdatedRoute) != 2 {
		t.Fatalf("route length = %d, want 2 (old route replaced)", len(updated.UpdatedRoute))
	}
	if updated.UpdatedRoute[0].Lat != 12.97 {
		t.Errorf("route[0].Lat = %v, want 12.97", updated.UpdatedRoute[0].Lat)
	}
}
