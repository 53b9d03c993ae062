package domain

import "time"

// UserStats is the derived aggregate kept per user.
type UserStats struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"userId"`
	CreationCount int       `json:"creationCount"`
	TotalEarnings Amount    `json:"totalEarnings"`
	TipCount      int       `json:"tipCount"`
	FollowerCount int       `json:"followerCount"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// StatsPatch enumerates the mutable counters. Nil means unchanged.
type StatsPatch struct {
	CreationCount *int
	TotalEarnings *Amount
	TipCount      *int
	FollowerCount *int
}

// Apply merges the patch onto s in place.
func (p StatsPatch) Apply(s *UserStats) {
	if p.CreationCount != nil {
		s.CreationCount = *p.CreationCount
	}
	if p.TotalEarnings != nil {
		s.TotalEarnings = *p.TotalEarnings
	}
	if p.TipCount != nil {
		s.TipCount = *p.TipCount
	}
	if p.FollowerCount != nil {
		s.FollowerCount = *p.FollowerCount
	}
}

// ZeroStats returns a fresh stats row for userID.
func ZeroStats(userID int64) UserStats {
	return UserStats{UserID: userID, TotalEarnings: ZeroAmount()}
}
