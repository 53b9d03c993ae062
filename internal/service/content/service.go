package content

import (
	"context"
	stderrors "errors"
	"strings"

	"github.com/shopspring/decimal"

	"creon-backend/internal/chain"
	"creon-backend/internal/common/errors"
	"creon-backend/internal/common/logger"
	"creon-backend/internal/domain"
)

// AccessResult is the outcome of an unlock check. Balance is set for token
// gates, Owned for NFT gates.
type AccessResult struct {
	ContentID      int64            `json:"contentId"`
	Wallet         string           `json:"wallet"`
	Granted        bool             `json:"granted"`
	RequiredAmount *int             `json:"requiredAmount,omitempty"`
	Balance        *decimal.Decimal `json:"balance,omitempty"`
	Owned          *bool            `json:"owned,omitempty"`
}

type Service struct {
	repo   domain.ContentRepository
	oracle chain.Oracle
}

func NewService(repo domain.ContentRepository, oracle chain.Oracle) *Service {
	return &Service{repo: repo, oracle: oracle}
}

func (s *Service) ListActive(ctx context.Context) ([]domain.TokenGatedContent, error) {
	return s.repo.ListActiveContent(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.TokenGatedContent, error) {
	c, err := s.repo.GetContent(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, errors.NewNotFoundError("content", id)
	}
	return c, nil
}

func (s *Service) Create(ctx context.Context, nc domain.NewTokenGatedContent) (*domain.TokenGatedContent, error) {
	required := []struct{ field, value string }{
		{"title", nc.Title},
		{"description", nc.Description},
		{"imageUrl", nc.ImageURL},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return nil, domain.NewValidationError(r.field, "is required")
		}
	}

	switch nc.ContentType {
	case domain.ContentTemplate, domain.ContentAsset, domain.ContentTool:
	default:
		return nil, domain.NewValidationError("contentType", "must be one of template, asset, tool")
	}

	switch nc.RequiredTokenType {
	case domain.TokenTypeToken:
		if empty(nc.RequiredTokenSymbol) && empty(nc.RequiredContractAddress) {
			return nil, domain.NewValidationError("requiredTokenSymbol", "token gates need a symbol or a contract address")
		}
	case domain.TokenTypeNFT:
		if empty(nc.RequiredContractAddress) {
			return nil, domain.NewValidationError("requiredContractAddress", "is required for nft gates")
		}
	default:
		return nil, domain.NewValidationError("requiredTokenType", "must be one of token, nft")
	}
	if nc.RequiredTokenAmount != nil && *nc.RequiredTokenAmount < 0 {
		return nil, domain.NewValidationError("requiredTokenAmount", "must not be negative")
	}

	c, err := s.repo.CreateContent(ctx, nc)
	if err != nil {
		return nil, err
	}
	logger.Info().Int64("content_id", c.ID).Str("content_type", string(c.ContentType)).Msg("Token-gated content created")
	return c, nil
}

// CheckAccess asks the chain oracle whether wallet satisfies the gate of an
// active content item. A token gate without an amount needs a balance of one.
func (s *Service) CheckAccess(ctx context.Context, contentID int64, wallet string) (*AccessResult, error) {
	wallet = strings.TrimSpace(wallet)
	if wallet == "" {
		return nil, domain.NewValidationError("wallet", "is required")
	}
	c, err := s.repo.GetContent(ctx, contentID)
	if err != nil {
		return nil, err
	}
	if c == nil || !c.IsActive {
		return nil, errors.NewNotFoundError("content", contentID)
	}

	res := &AccessResult{ContentID: c.ID, Wallet: wallet}
	switch c.RequiredTokenType {
	case domain.TokenTypeNFT:
		owned, err := s.oracle.CheckOwnership(ctx, wallet, deref(c.RequiredContractAddress))
		if err != nil {
			return nil, oracleError("check ownership", err)
		}
		res.Owned = &owned
		res.Granted = owned
	default:
		need := 1
		if c.RequiredTokenAmount != nil {
			need = *c.RequiredTokenAmount
		}
		balance, err := s.oracle.CheckBalance(ctx, wallet, chain.TokenRef{
			Symbol:   deref(c.RequiredTokenSymbol),
			Contract: deref(c.RequiredContractAddress),
		})
		if err != nil {
			return nil, oracleError("check balance", err)
		}
		res.RequiredAmount = &need
		res.Balance = &balance
		res.Granted = balance.GreaterThanOrEqual(decimal.NewFromInt(int64(need)))
	}

	logger.Debug().
		Int64("content_id", c.ID).
		Str("wallet", wallet).
		Bool("granted", res.Granted).
		Msg("Content access checked")
	return res, nil
}

// oracleError keeps input problems as validation failures and reports
// everything else as an upstream failure.
func oracleError(op string, err error) error {
	var ve *domain.ValidationError
	if stderrors.As(err, &ve) {
		return err
	}
	return errors.NewChainOracleError(op, err)
}

func empty(s *string) bool { return s == nil || strings.TrimSpace(*s) == "" }

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
