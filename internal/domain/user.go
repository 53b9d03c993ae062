package domain

import "time"

// WalletType is the connector kind a wallet address came from.
type WalletType string

const (
	WalletMetaMask  WalletType = "metamask"
	WalletPhantom   WalletType = "phantom"
	WalletTonkeeper WalletType = "tonkeeper"
)

// WalletTypes lists every accepted connector kind.
var WalletTypes = []WalletType{WalletMetaMask, WalletPhantom, WalletTonkeeper}

// Valid reports whether t is one of the known connector kinds.
func (t WalletType) Valid() bool {
	for _, w := range WalletTypes {
		if t == w {
			return true
		}
	}
	return false
}

// User is a creator profile. WalletAddress is the natural external identity.
type User struct {
	ID            int64       `json:"id"`
	Username      string      `json:"username"`
	Email         string      `json:"email"`
	Name          string      `json:"name"`
	Title         *string     `json:"title"`
	WalletAddress *string     `json:"walletAddress"`
	WalletType    *WalletType `json:"walletType"`
	IsVerified    bool        `json:"isVerified"`
	Avatar        *string     `json:"avatar"`
	Bio           *string     `json:"bio"`
	CreatedAt     time.Time   `json:"createdAt"`
}

// NewUser carries the fields accepted on creation.
type NewUser struct {
	Username      string
	Email         string
	Name          string
	Title         *string
	WalletAddress *string
	WalletType    *WalletType
	IsVerified    bool
	Avatar        *string
	Bio           *string
}

// UserPatch enumerates the legally mutable user fields. Nil means unchanged.
type UserPatch struct {
	Username      *string
	Email         *string
	Name          *string
	Title         *string
	WalletAddress *string
	WalletType    *WalletType
	IsVerified    *bool
	Avatar        *string
	Bio           *string
}

// Empty reports whether the patch changes nothing.
func (p UserPatch) Empty() bool {
	return p.Username == nil && p.Email == nil && p.Name == nil && p.Title == nil &&
		p.WalletAddress == nil && p.WalletType == nil && p.IsVerified == nil &&
		p.Avatar == nil && p.Bio == nil
}

// Apply merges the patch onto u in place.
func (p UserPatch) Apply(u *User) {
	if p.Username != nil {
		u.Username = *p.Username
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Title != nil {
		u.Title = p.Title
	}
	if p.WalletAddress != nil {
		u.WalletAddress = p.WalletAddress
	}
	if p.WalletType != nil {
		u.WalletType = p.WalletType
	}
	if p.IsVerified != nil {
		u.IsVerified = *p.IsVerified
	}
	if p.Avatar != nil {
		u.Avatar = p.Avatar
	}
	if p.Bio != nil {
		u.Bio = p.Bio
	}
}
