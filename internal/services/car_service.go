package services

import (
	"context"

	"carpool/internal/models"
	"carpool/internal/repositories/interfaces"
	"carpool/internal/validators"
	"carpool/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CarService interface {
	Create(ctx context.Context, ownerID primitive.ObjectID, req *validators.CarCreateRequest) (*models.Car, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Car, error)
	ListByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]*models.Car, error)
}

type carService struct {
	carRepo interfaces.CarRepository
	logger  *logger.Logger
}

func NewCarService(carRepo interfaces.CarRepository, log *logger.Logger) CarService {
	return &carService{
		carRepo: carRepo,
		logger:  log.WithComponent("car_service"),
	}
}

func (s *carService) Create(ctx context.Context, ownerID primitive.ObjectID, req *validators.CarCreateRequest) (*models.Car, error) {
	car := &models.Car{
		OwnerID:      ownerID,
		Make:         req.Make,
		Model:        req.Model,
		Year:         req.Year,
		LicensePlate: req.LicensePlate,
		Seats:        req.Seats,
		IsActive:     true,
	}

	if err := s.carRepo.Create(ctx, car); err != nil {
		return nil, err
	}

	s.logger.WithUserID(ownerID).WithField("car_id", car.ID.Hex()).Info("car registered")
	return car, nil
}

func (s *carService) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Car, error) {
	return s.carRepo.GetByID(ctx, id)
}

func (s *carService) ListByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]*models.Car, error) {
	return s.carRepo.GetByOwner(ctx, ownerID)
}
