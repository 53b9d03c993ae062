package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"creon-backend/internal/domain"
)

const tipColumns = `id, from_user_id, to_user_id, amount, currency, message, transaction_hash, status, created_at`

func scanTip(row rowScanner) (*domain.Tip, error) {
	var t domain.Tip
	if err := row.Scan(&t.ID, &t.FromUserID, &t.ToUserID, &t.Amount, &t.Currency, &t.Message,
		&t.TransactionHash, &t.Status, &t.CreatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}

// GetTipsByUserID returns tips received by userID.
func (s *Store) GetTipsByUserID(ctx context.Context, userID int64) ([]domain.Tip, error) {
	const q = `SELECT ` + tipColumns + ` FROM tips WHERE to_user_id = $1 ORDER BY id`
	return s.queryTips(ctx, q, userID)
}

func (s *Store) GetSentTipsByUserID(ctx context.Context, userID int64) ([]domain.Tip, error) {
	const q = `SELECT ` + tipColumns + ` FROM tips WHERE from_user_id = $1 ORDER BY id`
	return s.queryTips(ctx, q, userID)
}

func (s *Store) queryTips(ctx context.Context, q string, userID int64) ([]domain.Tip, error) {
	rows, err := s.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query tips: %w", err)
	}
	defer rows.Close()

	tips := []domain.Tip{}
	for rows.Next() {
		t, err := scanTip(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tip: %w", err)
		}
		tips = append(tips, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tips: %w", err)
	}
	return tips, nil
}

const (
	insertTipQuery = `
	INSERT INTO tips (from_user_id, to_user_id, amount, currency, message, transaction_hash, status)
	VALUES ($1, $2, $3, COALESCE(NULLIF($4, ''), 'USDC'), $5, $6, 'pending')
	RETURNING ` + tipColumns

	// The counter update is a single upsert: concurrent tips to the same
	// recipient serialise on the user_stats row lock. xmax is zero only for
	// freshly inserted rows.
	accumulateStatsQuery = `
	INSERT INTO user_stats (user_id, tip_count, total_earnings, updated_at)
	VALUES ($1, 1, $2, NOW())
	ON CONFLICT (user_id) DO UPDATE SET
		tip_count = user_stats.tip_count + 1,
		total_earnings = user_stats.total_earnings + EXCLUDED.total_earnings,
		updated_at = NOW()
	RETURNING ` + statsColumns + `, (xmax = 0) AS inserted`
)

// CreateTip stores the tip and accumulates the recipient's stats in one
// transaction.
func (s *Store) CreateTip(ctx context.Context, nt domain.NewTip) (*domain.TipReceipt, error) {
	ids := refs{"fromUserId": nt.FromUserID, "toUserId": nt.ToUserID}
	receipt := &domain.TipReceipt{}

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		tip, err := scanTip(tx.QueryRowContext(ctx, insertTipQuery, nt.FromUserID, nt.ToUserID,
			nt.Amount, nt.Currency, nt.Message, nt.TransactionHash))
		if err != nil {
			return translate(err, ids)
		}
		receipt.Tip = tip

		var st domain.UserStats
		if err := tx.QueryRowContext(ctx, accumulateStatsQuery, nt.ToUserID, nt.Amount).Scan(
			&st.ID, &st.UserID, &st.CreationCount, &st.TotalEarnings, &st.TipCount,
			&st.FollowerCount, &st.UpdatedAt, &receipt.StatsRecovered); err != nil {
			if isNumericOverflow(err) {
				return domain.NewEarningsOverflowError()
			}
			return err
		}
		receipt.Stats = &st
		return nil
	})
	if err != nil {
		return nil, wrapUnlessDomain(err, "failed to create tip")
	}
	return receipt, nil
}
