// Package tip records tips and keeps the recipient's earnings in step with
// them.
package tip

import (
	"context"
	"strings"

	"creon-backend/internal/chain"
	"creon-backend/internal/common/errors"
	"creon-backend/internal/common/logger"
	"creon-backend/internal/common/metrics"
	"creon-backend/internal/domain"
)

// CreateTipInput is the unvalidated request for a tip. Amount is a decimal
// string so that no binary float ever touches it. There is no transaction
// reference: the oracle always issues it.
type CreateTipInput struct {
	FromUserID int64
	ToUserID   int64
	Amount     string
	Currency   string
	Message    *string
}

type Service struct {
	tips   domain.TipRepository
	users  domain.UserRepository
	oracle chain.Oracle
}

func NewService(tips domain.TipRepository, users domain.UserRepository, oracle chain.Oracle) *Service {
	return &Service{tips: tips, users: users, oracle: oracle}
}

// Create validates the input, obtains a transaction reference and stores the
// tip together with the recipient's stats update. It is not idempotent.
func (s *Service) Create(ctx context.Context, in CreateTipInput) (*domain.Tip, error) {
	amount, err := domain.ParsePositiveAmount(in.Amount)
	if err != nil {
		return nil, domain.NewValidationError("amount", err.Error())
	}
	currency := strings.ToUpper(strings.TrimSpace(in.Currency))
	if currency == "" {
		currency = domain.DefaultCurrency
	}
	if !domain.KnownCurrency(currency) {
		return nil, domain.NewValidationError("currency", "must be one of "+strings.Join(domain.Currencies, ", "))
	}

	from, err := s.users.GetUser(ctx, in.FromUserID)
	if err != nil {
		return nil, err
	}
	if from == nil {
		return nil, &domain.ReferenceError{Field: "fromUserId", ID: in.FromUserID}
	}
	to, err := s.users.GetUser(ctx, in.ToUserID)
	if err != nil {
		return nil, err
	}
	if to == nil {
		return nil, &domain.ReferenceError{Field: "toUserId", ID: in.ToUserID}
	}

	txHash, err := s.oracle.SubmitTransaction(ctx, chain.Transfer{
		From:     deref(from.WalletAddress),
		To:       deref(to.WalletAddress),
		Amount:   amount.Decimal,
		Currency: currency,
	})
	if err != nil {
		return nil, errors.NewChainOracleError("submit transaction", err)
	}

	receipt, err := s.tips.CreateTip(ctx, domain.NewTip{
		FromUserID:      in.FromUserID,
		ToUserID:        in.ToUserID,
		Amount:          amount,
		Currency:        currency,
		Message:         in.Message,
		TransactionHash: &txHash,
	})
	if err != nil {
		return nil, err
	}

	if receipt.StatsRecovered {
		metrics.RecordStatsInvariantViolation()
		logger.Error().
			Int64("user_id", in.ToUserID).
			Int64("tip_id", receipt.Tip.ID).
			Msg("Recipient had no stats row, recreated from tip")
	}
	metrics.RecordTip(currency)

	logger.Info().
		Int64("tip_id", receipt.Tip.ID).
		Int64("from_user_id", in.FromUserID).
		Int64("to_user_id", in.ToUserID).
		Str("amount", amount.String()).
		Str("currency", currency).
		Int("tip_count", receipt.Stats.TipCount).
		Str("total_earnings", receipt.Stats.TotalEarnings.String()).
		Msg("Tip created")

	return receipt.Tip, nil
}

// ListReceived returns tips addressed to userID.
func (s *Service) ListReceived(ctx context.Context, userID int64) ([]domain.Tip, error) {
	return s.tips.GetTipsByUserID(ctx, userID)
}

// ListSent returns tips sent by userID.
func (s *Service) ListSent(ctx context.Context, userID int64) ([]domain.Tip, error) {
	return s.tips.GetSentTipsByUserID(ctx, userID)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
