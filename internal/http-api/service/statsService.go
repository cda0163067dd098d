package service

import (
	"context"
	"math"

	"dimsumhub/internal/http-api/dto"
	"dimsumhub/internal/http-api/repository"
)

type StatsService interface {
	Overview(ctx context.Context) (*dto.StatsResponse, error)
}

type statsService struct {
	repo repository.ReviewRepository
}

func NewStatsService(repo repository.ReviewRepository) StatsService {
	return &statsService{repo: repo}
}

// Overview computes the aggregates over the full review set on demand.
func (s *statsService) Overview(ctx context.Context) (*dto.StatsResponse, error) {
	total, err := s.repo.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	avgRating, err := s.repo.AverageRating(ctx)
	if err != nil {
		return nil, err
	}

	avgPrice, err := s.repo.AveragePrice(ctx)
	if err != nil {
		return nil, err
	}

	winners, err := s.repo.CountWouldOrderAgain(ctx, true)
	if err != nil {
		return nil, err
	}

	losers, err := s.repo.CountWouldOrderAgain(ctx, false)
	if err != nil {
		return nil, err
	}

	restaurants, err := s.repo.CountByRestaurant(ctx)
	if err != nil {
		return nil, err
	}

	dishTypes, err := s.repo.CountByDishType(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.StatsResponse{
		TotalItems:    total,
		AverageRating: round2(avgRating),
		AveragePrice:  round2(avgPrice),
		Winners:       winners,
		Losers:        losers,
		Restaurants:   dto.FromGroupToRestaurantCounts(restaurants),
		DishTypes:     dto.FromGroupToDishTypeCounts(dishTypes),
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
