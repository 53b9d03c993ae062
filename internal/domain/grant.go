package domain

import "time"

type GrantStatus string

const (
	GrantOpen     GrantStatus = "open"
	GrantClosed   GrantStatus = "closed"
	GrantFeatured GrantStatus = "featured"
)

type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationApproved ApplicationStatus = "approved"
	ApplicationRejected ApplicationStatus = "rejected"
)

// Grant is an organization-issued funding offer.
type Grant struct {
	ID               int64       `json:"id"`
	Title            string      `json:"title"`
	Description      string      `json:"description"`
	Amount           Amount      `json:"amount"`
	Currency         string      `json:"currency"`
	Organization     string      `json:"organization"`
	LogoURL          *string     `json:"logoUrl"`
	Deadline         time.Time   `json:"deadline"`
	Status           GrantStatus `json:"status"`
	Requirements     *string     `json:"requirements"`
	ApplicationCount int         `json:"applicationCount"`
	CreatedAt        time.Time   `json:"createdAt"`
}

type NewGrant struct {
	Title        string
	Description  string
	Amount       Amount
	Currency     string
	Organization string
	LogoURL      *string
	Deadline     time.Time
	Status       GrantStatus
	Requirements *string
}

// GrantApplication links a user to a grant. It is immutable once created.
type GrantApplication struct {
	ID                 int64             `json:"id"`
	UserID             int64             `json:"userId"`
	GrantID            int64             `json:"grantId"`
	ProjectTitle       string            `json:"projectTitle"`
	ProjectDescription string            `json:"projectDescription"`
	RequestedAmount    Amount            `json:"requestedAmount"`
	Portfolio          *string           `json:"portfolio"`
	Status             ApplicationStatus `json:"status"`
	SubmittedAt        time.Time         `json:"submittedAt"`
}

// NewGrantApplication has no status field: every application starts pending.
type NewGrantApplication struct {
	UserID             int64
	GrantID            int64
	ProjectTitle       string
	ProjectDescription string
	RequestedAmount    Amount
	Portfolio          *string
}
