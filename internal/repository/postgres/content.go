package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"creon-backend/internal/domain"
)

const contentColumns = `id, title, description, image_url, required_token_type, required_token_amount,
	required_contract_address, required_token_symbol, content_type, content_url, is_active, created_at`

func scanContent(row rowScanner) (*domain.TokenGatedContent, error) {
	var c domain.TokenGatedContent
	if err := row.Scan(&c.ID, &c.Title, &c.Description, &c.ImageURL, &c.RequiredTokenType,
		&c.RequiredTokenAmount, &c.RequiredContractAddress, &c.RequiredTokenSymbol,
		&c.ContentType, &c.ContentURL, &c.IsActive, &c.CreatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Store) ListActiveContent(ctx context.Context) ([]domain.TokenGatedContent, error) {
	const q = `SELECT ` + contentColumns + ` FROM token_gated_content WHERE is_active ORDER BY id`

	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to query content: %w", err)
	}
	defer rows.Close()

	items := []domain.TokenGatedContent{}
	for rows.Next() {
		c, err := scanContent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan content: %w", err)
		}
		items = append(items, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate content: %w", err)
	}
	return items, nil
}

// GetContent returns a content item by id, active or not. Returns nil if not found.
func (s *Store) GetContent(ctx context.Context, id int64) (*domain.TokenGatedContent, error) {
	const q = `SELECT ` + contentColumns + ` FROM token_gated_content WHERE id = $1`
	c, err := scanContent(s.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get content: %w", err)
	}
	return c, nil
}

func (s *Store) CreateContent(ctx context.Context, nc domain.NewTokenGatedContent) (*domain.TokenGatedContent, error) {
	const q = `
	INSERT INTO token_gated_content (title, description, image_url, required_token_type, required_token_amount,
		required_contract_address, required_token_symbol, content_type, content_url, is_active)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	RETURNING ` + contentColumns

	c, err := scanContent(s.db.QueryRowContext(ctx, q, nc.Title, nc.Description, nc.ImageURL,
		string(nc.RequiredTokenType), nc.RequiredTokenAmount, nc.RequiredContractAddress,
		nc.RequiredTokenSymbol, string(nc.ContentType), nc.ContentURL, nc.IsActive))
	if err != nil {
		return nil, fmt.Errorf("failed to create content: %w", err)
	}
	return c, nil
}
