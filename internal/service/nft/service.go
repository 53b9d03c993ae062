package nft

import (
	"context"
	"encoding/json"
	"strings"

	"creon-backend/internal/common/logger"
	"creon-backend/internal/domain"
)

type Service struct {
	repo domain.NFTRepository
}

func NewService(repo domain.NFTRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListByUser(ctx context.Context, userID int64) ([]domain.NFT, error) {
	return s.repo.GetNFTsByUserID(ctx, userID)
}

// Create stores an NFT for an existing user. Blockchain defaults to ethereum.
func (s *Service) Create(ctx context.Context, n domain.NewNFT) (*domain.NFT, error) {
	required := []struct{ field, value string }{
		{"tokenId", n.TokenID},
		{"contractAddress", n.ContractAddress},
		{"name", n.Name},
		{"imageUrl", n.ImageURL},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return nil, domain.NewValidationError(r.field, "is required")
		}
	}

	if n.Blockchain == "" {
		n.Blockchain = domain.BlockchainEthereum
	}
	switch n.Blockchain {
	case domain.BlockchainEthereum, domain.BlockchainSolana, domain.BlockchainTON:
	default:
		return nil, domain.NewValidationError("blockchain", "must be one of ethereum, solana, ton")
	}
	if len(n.Metadata) > 0 && !json.Valid(n.Metadata) {
		return nil, domain.NewValidationError("metadata", "must be valid JSON")
	}

	created, err := s.repo.CreateNFT(ctx, n)
	if err != nil {
		return nil, err
	}
	logger.Info().
		Int64("nft_id", created.ID).
		Int64("user_id", created.UserID).
		Str("blockchain", string(created.Blockchain)).
		Msg("NFT created")
	return created, nil
}
