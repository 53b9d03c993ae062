package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"creon-backend/internal/domain"
)

// Store implements domain.Gateway on PostgreSQL. Multi-row writes run in a
// single transaction; counters are updated with atomic SQL expressions so
// concurrent writers serialise on the row lock.
type Store struct {
	db *sql.DB
}

var _ domain.Gateway = (*Store)(nil)

func New(db *sql.DB) *Store { return &Store{db: db} }

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// refs carries the ids a statement references so a foreign key failure can
// name the missing one.
type refs map[string]int64

var uniqueFields = map[string]string{
	"users_username_key":       "username",
	"users_email_key":          "email",
	"users_wallet_address_key": "walletAddress",
}

var foreignKeyFields = map[string]string{
	"nfts_user_id_fkey":                "userId",
	"grant_applications_user_id_fkey":  "userId",
	"grant_applications_grant_id_fkey": "grantId",
	"tips_from_user_id_fkey":           "fromUserId",
	"tips_to_user_id_fkey":             "toUserId",
	"user_stats_user_id_fkey":          "userId",
}

// translate maps constraint violations onto domain errors.
func translate(err error, ids refs) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}
	switch pqErr.Code {
	case "23505":
		if field, ok := uniqueFields[pqErr.Constraint]; ok {
			return &domain.UniqueViolationError{Field: field}
		}
	case "23503":
		if field, ok := foreignKeyFields[pqErr.Constraint]; ok {
			return &domain.ReferenceError{Field: field, ID: ids[field]}
		}
	}
	return err
}

// isNumericOverflow reports a value that does not fit its NUMERIC column.
func isNumericOverflow(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "22003"
}

// withTx runs fn in a transaction, rolling back on any error.
func (s *Store) withTx(ctx context.Context, fn func(tx *sql.Tx) error) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

func nullableJSON(raw []byte) interface{} {
	if len(raw) == 0 {
		return nil
	}
	return string(raw)
}
