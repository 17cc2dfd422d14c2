package services

import (
	"context"
	"sort"

	"carpool/internal/models"
	"carpool/internal/repositories/interfaces"
	"carpool/internal/utils"
	"carpool/internal/validators"
	"carpool/pkg/logger"
)

type SuggestionService interface {
	// Suggest returns active rides with free seats near the given point,
	// ordered by distance then start time, capped at the suggestion limit.
	Suggest(ctx context.Context, req *validators.SuggestionRequest) ([]*models.RideWithDistance, error)

	// Search filters active rides by exact address and start time.
	Search(ctx context.Context, req *validators.RideSearchRequest) ([]*models.Ride, error)
}

type suggestionService struct {
	rideRepo interfaces.RideRepository
	logger   *logger.Logger
}

func NewSuggestionService(rideRepo interfaces.RideRepository, log *logger.Logger) SuggestionService {
	return &suggestionService{
		rideRepo: rideRepo,
		logger:   log.WithComponent("suggestion_service"),
	}
}

func (s *suggestionService) Suggest(ctx context.Context, req *validators.SuggestionRequest) ([]*models.RideWithDistance, error) {
	lat, lng := *req.Lat, *req.Lng
	if !utils.IsValidCoordinates(lat, lng) {
		return nil, ErrInvalidCoordinates
	}

	radius := utils.DefaultSearchRadiusMeters
	if req.RadiusMeters != nil {
		radius = *req.RadiusMeters
	}
	if radius > utils.MaxSearchRadiusMeters {
		radius = utils.MaxSearchRadiusMeters
	}

	rides, err := s.rideRepo.FindNearby(ctx, lat, lng, radius, utils.SuggestionScanLimit)
	if err != nil {
		return nil, err
	}

	// The geo query orders by distance only; break ties on start time so the
	// result order is deterministic.
	sort.SliceStable(rides, func(i, j int) bool {
		if rides[i].Distance != rides[j].Distance {
			return rides[i].Distance < rides[j].Distance
		}
		return rides[i].StartTime < rides[j].StartTime
	})

	if len(rides) > utils.MaxSuggestionResults {
		rides = rides[:utils.MaxSuggestionResults]
	}

	return rides, nil
}

func (s *suggestionService) Search(ctx context.Context, req *validators.RideSearchRequest) ([]*models.Ride, error) {
	filter := &interfaces.RideSearchFilter{
		Address:   req.Address,
		StartTime: req.StartTime,
	}
	return s.rideRepo.Search(ctx, filter)
}
