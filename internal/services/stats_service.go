package services

import (
	"context"
	"math"

	"hostel-mess/internal/apperrors"
	"hostel-mess/internal/models"
)

type StatsStore interface {
	Collect(ctx context.Context) (*models.Stats, error)
}

type StatsService struct {
	statsRepo StatsStore
}

func NewStatsService(statsRepo StatsStore) *StatsService {
	return &StatsService{statsRepo: statsRepo}
}

// GetStats summarises all feedback. The average is 0 for an empty table and
// is rounded to two decimals.
func (s *StatsService) GetStats(ctx context.Context) (*models.Stats, error) {
	stats, err := s.statsRepo.Collect(ctx)
	if err != nil {
		return nil, apperrors.Wrap("collect stats", err)
	}

	stats.AverageRating = roundTo(stats.AverageRating, 2)
	if stats.RatingDistribution == nil {
		stats.RatingDistribution = []models.RatingBucket{}
	}
	if stats.PopularMeals == nil {
		stats.PopularMeals = []models.PopularMeal{}
	}
	return stats, nil
}

func roundTo(v float64, places int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
