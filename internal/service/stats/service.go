package stats

import (
	"context"

	"creon-backend/internal/common/errors"
	"creon-backend/internal/domain"
)

type Service struct {
	repo domain.StatsRepository
}

func NewService(repo domain.StatsRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Get(ctx context.Context, userID int64) (*domain.UserStats, error) {
	st, err := s.repo.GetUserStats(ctx, userID)
	if err != nil {
		return nil, err
	}
	if st == nil {
		return nil, errors.NewNotFoundError("user stats", userID)
	}
	return st, nil
}

// Update merges patch onto the user's stats, creating the row if it is
// missing. Counters and earnings cannot go negative.
func (s *Service) Update(ctx context.Context, userID int64, patch domain.StatsPatch) (*domain.UserStats, error) {
	counters := []struct {
		field string
		value *int
	}{
		{"creationCount", patch.CreationCount},
		{"tipCount", patch.TipCount},
		{"followerCount", patch.FollowerCount},
	}
	for _, c := range counters {
		if c.value != nil && *c.value < 0 {
			return nil, domain.NewValidationError(c.field, "must not be negative")
		}
	}
	if patch.TotalEarnings != nil && patch.TotalEarnings.IsNegative() {
		return nil, domain.NewValidationError("totalEarnings", "must not be negative")
	}

	return s.repo.UpdateUserStats(ctx, userID, patch)
}
