package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"creon-backend/internal/domain"
)

const statsColumns = `id, user_id, creation_count, total_earnings, tip_count, follower_count, updated_at`

func scanStats(row rowScanner) (*domain.UserStats, error) {
	var st domain.UserStats
	if err := row.Scan(&st.ID, &st.UserID, &st.CreationCount, &st.TotalEarnings, &st.TipCount,
		&st.FollowerCount, &st.UpdatedAt); err != nil {
		return nil, err
	}
	return &st, nil
}

// GetUserStats returns the stats row for userID. Returns nil if not found.
func (s *Store) GetUserStats(ctx context.Context, userID int64) (*domain.UserStats, error) {
	const q = `SELECT ` + statsColumns + ` FROM user_stats WHERE user_id = $1`
	st, err := scanStats(s.db.QueryRowContext(ctx, q, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user stats: %w", err)
	}
	return st, nil
}

// UpdateUserStats upserts the row: missing counters start from zero, nil
// patch fields keep their current value.
func (s *Store) UpdateUserStats(ctx context.Context, userID int64, patch domain.StatsPatch) (*domain.UserStats, error) {
	const q = `
	INSERT INTO user_stats (user_id, creation_count, total_earnings, tip_count, follower_count, updated_at)
	VALUES ($1, COALESCE($2::integer, 0), COALESCE($3::numeric, 0), COALESCE($4::integer, 0), COALESCE($5::integer, 0), NOW())
	ON CONFLICT (user_id) DO UPDATE SET
		creation_count = COALESCE($2::integer, user_stats.creation_count),
		total_earnings = COALESCE($3::numeric, user_stats.total_earnings),
		tip_count = COALESCE($4::integer, user_stats.tip_count),
		follower_count = COALESCE($5::integer, user_stats.follower_count),
		updated_at = NOW()
	RETURNING ` + statsColumns

	st, err := scanStats(s.db.QueryRowContext(ctx, q, userID,
		patch.CreationCount, patch.TotalEarnings, patch.TipCount, patch.FollowerCount))
	if err != nil {
		return nil, wrapUnlessDomain(translate(err, refs{"userId": userID}), "failed to update user stats")
	}
	return st, nil
}
