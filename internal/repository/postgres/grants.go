package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"creon-backend/internal/domain"
)

const grantColumns = `id, title, description, amount, currency, organization, logo_url, deadline, status, requirements, application_count, created_at`

func scanGrant(row rowScanner) (*domain.Grant, error) {
	var g domain.Grant
	if err := row.Scan(&g.ID, &g.Title, &g.Description, &g.Amount, &g.Currency, &g.Organization,
		&g.LogoURL, &g.Deadline, &g.Status, &g.Requirements, &g.ApplicationCount, &g.CreatedAt); err != nil {
		return nil, err
	}
	return &g, nil
}

func (s *Store) ListGrants(ctx context.Context) ([]domain.Grant, error) {
	const q = `SELECT ` + grantColumns + ` FROM grants ORDER BY id`

	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to query grants: %w", err)
	}
	defer rows.Close()

	grants := []domain.Grant{}
	for rows.Next() {
		g, err := scanGrant(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan grant: %w", err)
		}
		grants = append(grants, *g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate grants: %w", err)
	}
	return grants, nil
}

// GetGrant returns a grant by id. Returns nil if not found.
func (s *Store) GetGrant(ctx context.Context, id int64) (*domain.Grant, error) {
	const q = `SELECT ` + grantColumns + ` FROM grants WHERE id = $1`
	g, err := scanGrant(s.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get grant: %w", err)
	}
	return g, nil
}

func (s *Store) CreateGrant(ctx context.Context, ng domain.NewGrant) (*domain.Grant, error) {
	const q = `
	INSERT INTO grants (title, description, amount, currency, organization, logo_url, deadline, status, requirements)
	VALUES ($1, $2, $3, COALESCE(NULLIF($4, ''), 'USD'), $5, $6, $7, COALESCE(NULLIF($8, ''), 'open'), $9)
	RETURNING ` + grantColumns

	g, err := scanGrant(s.db.QueryRowContext(ctx, q, ng.Title, ng.Description, ng.Amount, ng.Currency,
		ng.Organization, ng.LogoURL, ng.Deadline, string(ng.Status), ng.Requirements))
	if err != nil {
		return nil, fmt.Errorf("failed to create grant: %w", err)
	}
	return g, nil
}

const applicationColumns = `id, user_id, grant_id, project_title, project_description, requested_amount, portfolio, status, submitted_at`

func scanApplication(row rowScanner) (*domain.GrantApplication, error) {
	var a domain.GrantApplication
	if err := row.Scan(&a.ID, &a.UserID, &a.GrantID, &a.ProjectTitle, &a.ProjectDescription,
		&a.RequestedAmount, &a.Portfolio, &a.Status, &a.SubmittedAt); err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *Store) GetGrantApplicationsByUserID(ctx context.Context, userID int64) ([]domain.GrantApplication, error) {
	const q = `SELECT ` + applicationColumns + ` FROM grant_applications WHERE user_id = $1 ORDER BY id`

	rows, err := s.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query grant applications: %w", err)
	}
	defer rows.Close()

	apps := []domain.GrantApplication{}
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan grant application: %w", err)
		}
		apps = append(apps, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate grant applications: %w", err)
	}
	return apps, nil
}

// CreateGrantApplication bumps the grant counter first, which takes the row
// lock on the grant, then inserts the application as pending.
func (s *Store) CreateGrantApplication(ctx context.Context, na domain.NewGrantApplication) (*domain.GrantApplication, error) {
	const (
		bumpQuery   = `UPDATE grants SET application_count = application_count + 1 WHERE id = $1`
		insertQuery = `
		INSERT INTO grant_applications (user_id, grant_id, project_title, project_description, requested_amount, portfolio, status)
		VALUES ($1, $2, $3, $4, $5, $6, 'pending')
		RETURNING ` + applicationColumns
	)

	ids := refs{"userId": na.UserID, "grantId": na.GrantID}
	var app *domain.GrantApplication
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, bumpQuery, na.GrantID)
		if err != nil {
			return err
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			return &domain.ReferenceError{Field: "grantId", ID: na.GrantID}
		}

		app, err = scanApplication(tx.QueryRowContext(ctx, insertQuery, na.UserID, na.GrantID,
			na.ProjectTitle, na.ProjectDescription, na.RequestedAmount, na.Portfolio))
		if err != nil {
			return translate(err, ids)
		}
		return nil
	})
	if err != nil {
		return nil, wrapUnlessDomain(err, "failed to create grant application")
	}
	return app, nil
}
