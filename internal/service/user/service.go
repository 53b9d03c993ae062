package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	"creon-backend/internal/chain"
	"creon-backend/internal/common/cache"
	"creon-backend/internal/common/errors"
	"creon-backend/internal/common/logger"
	"creon-backend/internal/common/metrics"
	"creon-backend/internal/common/validation"
	"creon-backend/internal/domain"
	"creon-backend/internal/platform/redis"
)

const (
	placeholderName        = "New Creator"
	placeholderEmailDomain = "creon.example"
	minSuffixLength        = 6
)

// Service orchestrates user access with repository and cache.
type Service struct {
	repo  domain.UserRepository
	cache *cache.CacheService
	ttl   time.Duration
}

// NewService builds the service. A nil cache disables caching.
func NewService(repo domain.UserRepository, c *cache.CacheService, ttl time.Duration) *Service {
	return &Service{repo: repo, cache: c, ttl: ttl}
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.User, error) {
	key := cache.UserKey(id)
	if u := s.cached(ctx, key); u != nil {
		return u, nil
	}
	u, err := s.repo.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, errors.NewUserNotFoundError(id)
	}
	s.store(ctx, key, u)
	return u, nil
}

// GetByWallet looks a user up by wallet address. Hex addresses match case
// insensitively since they are stored lower-cased.
func (s *Service) GetByWallet(ctx context.Context, address string) (*domain.User, error) {
	address = chain.CanonicalAddress(address)
	key := cache.UserWalletKey(address)
	if u := s.cached(ctx, key); u != nil {
		return u, nil
	}
	u, err := s.repo.GetUserByWallet(ctx, address)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, errors.NewNotFoundError("user", address)
	}
	s.store(ctx, key, u)
	return u, nil
}

func (s *Service) Create(ctx context.Context, nu domain.NewUser) (*domain.User, error) {
	if err := validation.ValidateUsername(nu.Username); err != nil {
		return nil, domain.NewValidationError("username", err.Error())
	}
	wallet, err := normalizeWallet(nu.WalletAddress, nu.WalletType)
	if err != nil {
		return nil, err
	}
	nu.WalletAddress = wallet

	u, err := s.repo.CreateUser(ctx, nu)
	if err != nil {
		return nil, err
	}
	logger.Info().Int64("user_id", u.ID).Str("username", u.Username).Msg("User created")
	return u, nil
}

// Update merges patch onto the user. An empty patch returns the user as is.
func (s *Service) Update(ctx context.Context, id int64, patch domain.UserPatch) (*domain.User, error) {
	current, err := s.repo.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, errors.NewUserNotFoundError(id)
	}
	if patch.Empty() {
		return current, nil
	}

	if patch.Username != nil {
		if err := validation.ValidateUsername(*patch.Username); err != nil {
			return nil, domain.NewValidationError("username", err.Error())
		}
	}
	if patch.WalletAddress != nil {
		walletType := patch.WalletType
		if walletType == nil {
			walletType = current.WalletType
		}
		if patch.WalletAddress, err = normalizeWallet(patch.WalletAddress, walletType); err != nil {
			return nil, err
		}
	} else if patch.WalletType != nil && current.WalletAddress != nil {
		if err := chain.ValidateAddress(*patch.WalletType, *current.WalletAddress); err != nil {
			return nil, err
		}
	}

	updated, err := s.repo.UpdateUser(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, errors.NewUserNotFoundError(id)
	}

	s.invalidate(ctx, id, current.WalletAddress, updated.WalletAddress)
	return updated, nil
}

// ConnectWallet returns the owner of the wallet, creating a placeholder
// profile on first sight. The boolean reports whether a user was created.
func (s *Service) ConnectWallet(ctx context.Context, address string, walletType domain.WalletType) (*domain.User, bool, error) {
	normalized, err := chain.NormalizeAddress(walletType, address)
	if err != nil {
		return nil, false, err
	}

	existing, err := s.repo.GetUserByWallet(ctx, normalized)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		metrics.RecordWalletConnection(false)
		return existing, false, nil
	}

	for n := minSuffixLength; ; n += 2 {
		suffix := walletSuffix(normalized, n)
		wt := walletType
		u, created, err := s.repo.CreateUserIfWalletAbsent(ctx, domain.NewUser{
			Username:      "user_" + suffix,
			Email:         fmt.Sprintf("%s@%s", strings.ToLower(suffix), placeholderEmailDomain),
			Name:          placeholderName,
			WalletAddress: &normalized,
			WalletType:    &wt,
		})
		if err == nil {
			metrics.RecordWalletConnection(created)
			if created {
				logger.Info().
					Int64("user_id", u.ID).
					Str("wallet_type", string(walletType)).
					Msg("User created from wallet connection")
			}
			return u, created, nil
		}

		ue, ok := domain.AsUniqueViolation(err)
		if !ok {
			return nil, false, err
		}
		if ue.Field == "walletAddress" {
			// Lost a race against another connect for the same wallet.
			u, getErr := s.repo.GetUserByWallet(ctx, normalized)
			if getErr != nil {
				return nil, false, getErr
			}
			if u != nil {
				metrics.RecordWalletConnection(false)
				return u, false, nil
			}
			return nil, false, err
		}
		if n >= len(normalized) {
			return nil, false, errors.NewConflictError("user", ue.Field)
		}
		logger.Debug().
			Str("field", ue.Field).
			Int("suffix_length", n).
			Msg("Placeholder profile collides, widening suffix")
	}
}

func walletSuffix(address string, n int) string {
	if n >= len(address) {
		return address
	}
	return address[len(address)-n:]
}

// normalizeWallet validates address against walletType. An address needs a
// type to be validated against.
func normalizeWallet(address *string, walletType *domain.WalletType) (*string, error) {
	if address == nil {
		return nil, nil
	}
	if walletType == nil {
		return nil, domain.NewValidationError("walletType", "is required when walletAddress is set")
	}
	normalized, err := chain.NormalizeAddress(*walletType, *address)
	if err != nil {
		return nil, err
	}
	return &normalized, nil
}

func (s *Service) cached(ctx context.Context, key string) *domain.User {
	if s.cache == nil {
		return nil
	}
	var u domain.User
	if err := s.cache.Get(ctx, key, &u); err != nil {
		if !redis.IsMiss(err) {
			logger.Warn().Err(err).Str("key", key).Msg("Failed to read cached user")
		}
		return nil
	}
	return &u
}

func (s *Service) store(ctx context.Context, key string, u *domain.User) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, u, s.ttl); err != nil {
		logger.Warn().Err(err).Str("key", key).Msg("Failed to cache user")
	}
}

func (s *Service) invalidate(ctx context.Context, id int64, wallets ...*string) {
	if s.cache == nil {
		return
	}
	var addrs []string
	for _, w := range wallets {
		if w != nil {
			addrs = append(addrs, *w)
		}
	}
	if err := s.cache.InvalidateUser(ctx, id, addrs...); err != nil {
		logger.Warn().Err(err).Int64("user_id", id).Msg("Failed to invalidate user cache")
	}
}
