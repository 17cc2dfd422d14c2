package services

import (
	"context"

	"carpool/internal/models"
	"carpool/internal/repositories/interfaces"
	"carpool/internal/validators"
	"carpool/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserService interface {
	GetProfile(ctx context.Context, userID primitive.ObjectID) (*models.User, error)
	UpdateProfile(ctx context.Context, userID primitive.ObjectID, req *validators.UserUpdateRequest) (*models.User, error)
}

type userService struct {
	userRepo interfaces.UserRepository
	logger   *logger.Logger
}

func NewUserService(userRepo interfaces.UserRepository, log *logger.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		logger:   log.WithComponent("user_service"),
	}
}

func (s *userService) GetProfile(ctx context.Context, userID primitive.ObjectID) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.Password = ""
	return user, nil
}

// UpdateProfile writes only the allow-listed fields present in the request.
func (s *userService) UpdateProfile(ctx context.Context, userID primitive.ObjectID, req *validators.UserUpdateRequest) (*models.User, error) {
	updates := map[string]interface{}{}
	if req.FirstName != nil {
		updates["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		updates["last_name"] = *req.LastName
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.HomeAddress != nil {
		updates["home_address"] = &models.Address{Text: req.HomeAddress.Text, Lat: req.HomeAddress.Lat, Lng: req.HomeAddress.Lng}
	}
	if req.WorkAddress != nil {
		updates["work_address"] = &models.Address{Text: req.WorkAddress.Text, Lat: req.WorkAddress.Lat, Lng: req.WorkAddress.Lng}
	}
	if req.MorningTime != nil {
		updates["morning_time"] = *req.MorningTime
	}
	if req.EveningTime != nil {
		updates["evening_time"] = *req.EveningTime
	}
	if req.WorkingDays != nil {
		updates["working_days"] = req.WorkingDays
	}

	if len(updates) > 0 {
		if err := s.userRepo.Update(ctx, userID, updates); err != nil {
			return nil, err
		}
	}

	return s.GetProfile(ctx, userID)
}
