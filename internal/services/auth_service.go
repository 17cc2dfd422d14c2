package services

import (
	"context"
	"fmt"
	"time"

	"carpool/internal/models"
	"carpool/internal/repositories/interfaces"
	"carpool/internal/utils"
	"carpool/internal/validators"
	"carpool/pkg/logger"

	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	Register(ctx context.Context, req *validators.RegisterRequest) (*models.User, *utils.TokenPair, error)
	Login(ctx context.Context, req *validators.LoginRequest) (*models.User, *utils.TokenPair, error)
}

type authService struct {
	userRepo  interfaces.UserRepository
	jwtSecret string
	logger    *logger.Logger
}

func NewAuthService(userRepo interfaces.UserRepository, jwtSecret string, log *logger.Logger) AuthService {
	return &authService{
		userRepo:  userRepo,
		jwtSecret: jwtSecret,
		logger:    log.WithComponent("auth_service"),
	}
}

func (s *authService) Register(ctx context.Context, req *validators.RegisterRequest) (*models.User, *utils.TokenPair, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Password:    string(hashed),
		Phone:       req.Phone,
		Role:        models.UserRole(req.Role),
		MorningTime: req.MorningTime,
		EveningTime: req.EveningTime,
		WorkingDays: req.WorkingDays,
	}
	if req.HomeAddress != nil {
		user.HomeAddress = &models.Address{Text: req.HomeAddress.Text, Lat: req.HomeAddress.Lat, Lng: req.HomeAddress.Lng}
	}
	if req.WorkAddress != nil {
		user.WorkAddress = &models.Address{Text: req.WorkAddress.Text, Lat: req.WorkAddress.Lat, Lng: req.WorkAddress.Lng}
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, nil, err
	}

	tokens, err := utils.GenerateTokenPair(user.ID, string(user.Role), user.Email, s.jwtSecret)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	s.logger.WithUserID(user.ID).Info("user registered")
	user.Password = ""
	return user, tokens, nil
}

func (s *authService) Login(ctx context.Context, req *validators.LoginRequest) (*models.User, *utils.TokenPair, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if err == ErrNotFound {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	tokens, err := utils.GenerateTokenPair(user.ID, string(user.Role), user.Email, s.jwtSecret)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	now := time.Now()
	_ = s.userRepo.Update(ctx, user.ID, map[string]interface{}{"last_login_at": now})
	user.LastLoginAt = &now

	s.logger.WithUserID(user.ID).Info("user logged in")
	user.Password = ""
	return user, tokens, nil
}
