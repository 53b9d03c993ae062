package postgres

import (
	"context"
	"fmt"

	"creon-backend/internal/domain"
)

const nftColumns = `id, user_id, token_id, contract_address, name, description, image_url, metadata, blockchain, created_at`

func scanNFT(row rowScanner) (*domain.NFT, error) {
	var (
		n        domain.NFT
		metadata []byte
	)
	if err := row.Scan(&n.ID, &n.UserID, &n.TokenID, &n.ContractAddress, &n.Name, &n.Description,
		&n.ImageURL, &metadata, &n.Blockchain, &n.CreatedAt); err != nil {
		return nil, err
	}
	if len(metadata) > 0 {
		n.Metadata = metadata
	}
	return &n, nil
}

func (s *Store) GetNFTsByUserID(ctx context.Context, userID int64) ([]domain.NFT, error) {
	const q = `SELECT ` + nftColumns + ` FROM nfts WHERE user_id = $1 ORDER BY id`

	rows, err := s.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query nfts: %w", err)
	}
	defer rows.Close()

	nfts := []domain.NFT{}
	for rows.Next() {
		n, err := scanNFT(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan nft: %w", err)
		}
		nfts = append(nfts, *n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate nfts: %w", err)
	}
	return nfts, nil
}

func (s *Store) CreateNFT(ctx context.Context, nn domain.NewNFT) (*domain.NFT, error) {
	const q = `
	INSERT INTO nfts (user_id, token_id, contract_address, name, description, image_url, metadata, blockchain)
	VALUES ($1, $2, $3, $4, $5, $6, $7, COALESCE(NULLIF($8, ''), 'ethereum'))
	RETURNING ` + nftColumns

	n, err := scanNFT(s.db.QueryRowContext(ctx, q, nn.UserID, nn.TokenID, nn.ContractAddress, nn.Name,
		nn.Description, nn.ImageURL, nullableJSON(nn.Metadata), string(nn.Blockchain)))
	if err != nil {
		return nil, wrapUnlessDomain(translate(err, refs{"userId": nn.UserID}), "failed to create nft")
	}
	return n, nil
}
