package grant

import (
	"context"
	"strings"
	"time"

	"creon-backend/internal/common/errors"
	"creon-backend/internal/common/logger"
	"creon-backend/internal/domain"
)

const defaultCurrency = "USD"

type CreateGrantInput struct {
	Title        string
	Description  string
	Amount       string
	Currency     string
	Organization string
	LogoURL      *string
	Deadline     time.Time
	Status       domain.GrantStatus
	Requirements *string
}

type ApplyInput struct {
	UserID             int64
	GrantID            int64
	ProjectTitle       string
	ProjectDescription string
	RequestedAmount    string
	Portfolio          *string
}

type Service struct {
	repo domain.GrantRepository
}

func NewService(repo domain.GrantRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]domain.Grant, error) {
	return s.repo.ListGrants(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Grant, error) {
	g, err := s.repo.GetGrant(ctx, id)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, errors.NewNotFoundError("grant", id)
	}
	return g, nil
}

func (s *Service) Create(ctx context.Context, in CreateGrantInput) (*domain.Grant, error) {
	required := []struct{ field, value string }{
		{"title", in.Title},
		{"description", in.Description},
		{"organization", in.Organization},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return nil, domain.NewValidationError(r.field, "is required")
		}
	}
	amount, err := domain.ParsePositiveAmount(in.Amount)
	if err != nil {
		return nil, domain.NewValidationError("amount", err.Error())
	}
	if in.Deadline.IsZero() {
		return nil, domain.NewValidationError("deadline", "is required")
	}
	status := in.Status
	if status == "" {
		status = domain.GrantOpen
	}
	switch status {
	case domain.GrantOpen, domain.GrantClosed, domain.GrantFeatured:
	default:
		return nil, domain.NewValidationError("status", "must be one of open, closed, featured")
	}
	currency := strings.ToUpper(strings.TrimSpace(in.Currency))
	if currency == "" {
		currency = defaultCurrency
	}

	g, err := s.repo.CreateGrant(ctx, domain.NewGrant{
		Title:        in.Title,
		Description:  in.Description,
		Amount:       amount,
		Currency:     currency,
		Organization: in.Organization,
		LogoURL:      in.LogoURL,
		Deadline:     in.Deadline,
		Status:       status,
		Requirements: in.Requirements,
	})
	if err != nil {
		return nil, err
	}
	logger.Info().Int64("grant_id", g.ID).Str("organization", g.Organization).Msg("Grant created")
	return g, nil
}

// Apply submits an application. It always starts pending, whatever the
// caller asked for, and bumps the grant's application counter.
func (s *Service) Apply(ctx context.Context, in ApplyInput) (*domain.GrantApplication, error) {
	if strings.TrimSpace(in.ProjectTitle) == "" {
		return nil, domain.NewValidationError("projectTitle", "is required")
	}
	if strings.TrimSpace(in.ProjectDescription) == "" {
		return nil, domain.NewValidationError("projectDescription", "is required")
	}
	requested, err := domain.ParsePositiveAmount(in.RequestedAmount)
	if err != nil {
		return nil, domain.NewValidationError("requestedAmount", err.Error())
	}

	g, err := s.repo.GetGrant(ctx, in.GrantID)
	if err != nil {
		return nil, err
	}
	if g != nil && g.Status == domain.GrantClosed {
		return nil, domain.NewValidationError("grantId", "grant is closed")
	}

	app, err := s.repo.CreateGrantApplication(ctx, domain.NewGrantApplication{
		UserID:             in.UserID,
		GrantID:            in.GrantID,
		ProjectTitle:       in.ProjectTitle,
		ProjectDescription: in.ProjectDescription,
		RequestedAmount:    requested,
		Portfolio:          in.Portfolio,
	})
	if err != nil {
		return nil, err
	}
	logger.Info().
		Int64("application_id", app.ID).
		Int64("grant_id", app.GrantID).
		Int64("user_id", app.UserID).
		Msg("Grant application submitted")
	return app, nil
}

func (s *Service) ListApplications(ctx context.Context, userID int64) ([]domain.GrantApplication, error) {
	return s.repo.GetGrantApplicationsByUserID(ctx, userID)
}
