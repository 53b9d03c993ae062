package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"creon-backend/internal/domain"
)

const userColumns = `id, username, email, name, title, wallet_address, wallet_type, is_verified, avatar, bio, created_at`

func scanUser(row rowScanner) (*domain.User, error) {
	var u domain.User
	if err := row.Scan(&u.ID, &u.Username, &u.Email, &u.Name, &u.Title, &u.WalletAddress,
		&u.WalletType, &u.IsVerified, &u.Avatar, &u.Bio, &u.CreatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}

// GetUser returns a user by id. Returns nil if not found.
func (s *Store) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	u, err := scanUser(s.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return u, nil
}

// GetUserByWallet returns the owner of a wallet address. Returns nil if not found.
func (s *Store) GetUserByWallet(ctx context.Context, address string) (*domain.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users WHERE wallet_address = $1`
	u, err := scanUser(s.db.QueryRowContext(ctx, q, address))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by wallet: %w", err)
	}
	return u, nil
}

const (
	insertUserQuery = `
	INSERT INTO users (username, email, name, title, wallet_address, wallet_type, is_verified, avatar, bio)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	RETURNING ` + userColumns

	insertUserIfWalletAbsentQuery = `
	INSERT INTO users (username, email, name, title, wallet_address, wallet_type, is_verified, avatar, bio)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	ON CONFLICT (wallet_address) DO NOTHING
	RETURNING ` + userColumns

	insertZeroStatsQuery = `INSERT INTO user_stats (user_id) VALUES ($1)`
)

func newUserArgs(nu domain.NewUser) []interface{} {
	return []interface{}{nu.Username, nu.Email, nu.Name, nu.Title, nu.WalletAddress, nu.WalletType, nu.IsVerified, nu.Avatar, nu.Bio}
}

// CreateUser inserts the user and its zeroed stats row in one transaction.
func (s *Store) CreateUser(ctx context.Context, nu domain.NewUser) (*domain.User, error) {
	var u *domain.User
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		u, err = scanUser(tx.QueryRowContext(ctx, insertUserQuery, newUserArgs(nu)...))
		if err != nil {
			return translate(err, nil)
		}
		_, err = tx.ExecContext(ctx, insertZeroStatsQuery, u.ID)
		return err
	})
	if err != nil {
		return nil, wrapUnlessDomain(err, "failed to create user")
	}
	return u, nil
}

// CreateUserIfWalletAbsent is a conditional insert keyed on the unique
// wallet_address constraint.
func (s *Store) CreateUserIfWalletAbsent(ctx context.Context, nu domain.NewUser) (*domain.User, bool, error) {
	var u *domain.User
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		u, err = scanUser(tx.QueryRowContext(ctx, insertUserIfWalletAbsentQuery, newUserArgs(nu)...))
		if err != nil {
			return translate(err, nil)
		}
		_, err = tx.ExecContext(ctx, insertZeroStatsQuery, u.ID)
		return err
	})

	switch {
	case err == nil:
		return u, true, nil
	case errors.Is(err, sql.ErrNoRows), errors.Is(err, domain.ErrUniqueViolation):
		// Either the wallet already existed, or a concurrent insert for the
		// same wallet won the race on another unique index first.
		if nu.WalletAddress == nil {
			return nil, false, err
		}
		existing, getErr := s.GetUserByWallet(ctx, *nu.WalletAddress)
		if getErr != nil {
			return nil, false, getErr
		}
		if existing == nil {
			return nil, false, wrapUnlessDomain(err, "failed to create user")
		}
		return existing, false, nil
	default:
		return nil, false, wrapUnlessDomain(err, "failed to create user")
	}
}

// UpdateUser merges the non-nil patch fields. Returns nil if not found.
func (s *Store) UpdateUser(ctx context.Context, id int64, patch domain.UserPatch) (*domain.User, error) {
	const q = `
	UPDATE users SET
		username = COALESCE($2, username),
		email = COALESCE($3, email),
		name = COALESCE($4, name),
		title = COALESCE($5, title),
		wallet_address = COALESCE($6, wallet_address),
		wallet_type = COALESCE($7, wallet_type),
		is_verified = COALESCE($8, is_verified),
		avatar = COALESCE($9, avatar),
		bio = COALESCE($10, bio)
	WHERE id = $1
	RETURNING ` + userColumns

	u, err := scanUser(s.db.QueryRowContext(ctx, q, id,
		patch.Username, patch.Email, patch.Name, patch.Title, patch.WalletAddress,
		patch.WalletType, patch.IsVerified, patch.Avatar, patch.Bio))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapUnlessDomain(translate(err, nil), "failed to update user")
	}
	return u, nil
}

// wrapUnlessDomain adds context to storage failures while leaving domain
// errors untouched for callers that switch on them.
func wrapUnlessDomain(err error, msg string) error {
	if errors.Is(err, domain.ErrUniqueViolation) || errors.Is(err, domain.ErrReferenceNotFound) {
		return err
	}
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return err
	}
	return fmt.Errorf("%s: %w", msg, err)
}
