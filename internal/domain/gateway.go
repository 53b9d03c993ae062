package domain

import "context"

// Absent rows are reported as (nil, nil). List lookups return an empty,
// non-nil slice ordered by id ascending.

type UserRepository interface {
	GetUser(ctx context.Context, id int64) (*User, error)
	GetUserByWallet(ctx context.Context, address string) (*User, error)
	// CreateUser inserts the user together with a zeroed stats row.
	CreateUser(ctx context.Context, u NewUser) (*User, error)
	// CreateUserIfWalletAbsent inserts u unless a user already owns
	// u.WalletAddress, in which case that user is returned with created=false.
	CreateUserIfWalletAbsent(ctx context.Context, u NewUser) (user *User, created bool, err error)
	UpdateUser(ctx context.Context, id int64, patch UserPatch) (*User, error)
}

type NFTRepository interface {
	GetNFTsByUserID(ctx context.Context, userID int64) ([]NFT, error)
	CreateNFT(ctx context.Context, n NewNFT) (*NFT, error)
}

type GrantRepository interface {
	ListGrants(ctx context.Context) ([]Grant, error)
	GetGrant(ctx context.Context, id int64) (*Grant, error)
	CreateGrant(ctx context.Context, g NewGrant) (*Grant, error)
	GetGrantApplicationsByUserID(ctx context.Context, userID int64) ([]GrantApplication, error)
	// CreateGrantApplication stores the application as pending and bumps the
	// grant's applicationCount in one step.
	CreateGrantApplication(ctx context.Context, a NewGrantApplication) (*GrantApplication, error)
}

type TipRepository interface {
	// GetTipsByUserID returns tips received by userID.
	GetTipsByUserID(ctx context.Context, userID int64) ([]Tip, error)
	GetSentTipsByUserID(ctx context.Context, userID int64) ([]Tip, error)
	// CreateTip stores the tip as pending and accumulates the recipient's
	// tipCount and totalEarnings in one step.
	CreateTip(ctx context.Context, t NewTip) (*TipReceipt, error)
}

type ContentRepository interface {
	ListActiveContent(ctx context.Context) ([]TokenGatedContent, error)
	GetContent(ctx context.Context, id int64) (*TokenGatedContent, error)
	CreateContent(ctx context.Context, c NewTokenGatedContent) (*TokenGatedContent, error)
}

type StatsRepository interface {
	GetUserStats(ctx context.Context, userID int64) (*UserStats, error)
	// UpdateUserStats merges patch onto the row, creating it from zero
	// defaults when missing.
	UpdateUserStats(ctx context.Context, userID int64, patch StatsPatch) (*UserStats, error)
}

// Gateway is the full persistence surface. The memory and postgres
// repositories are interchangeable implementations.
type Gateway interface {
	UserRepository
	NFTRepository
	GrantRepository
	TipRepository
	ContentRepository
	StatsRepository
	Ping(ctx context.Context) error
}
