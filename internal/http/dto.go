package http

import (
	"encoding/json"
	"time"

	"creon-backend/internal/domain"
	"creon-backend/internal/service/grant"
	"creon-backend/internal/service/tip"
)

// Money fields are json.Number so that both "12.50" and 12.50 bind without
// going through float64.

type createUserRequest struct {
	Username      string  `json:"username" binding:"required,username" example:"alexrivera"`
	Email         string  `json:"email" binding:"required,email" example:"alex@creon.example"`
	Name          string  `json:"name" binding:"required,max=200" example:"Alex Rivera"`
	Title         *string `json:"title" binding:"omitempty,max=200"`
	WalletAddress *string `json:"walletAddress" example:"0x1234567890abcdef1234567890abcdef12345678"`
	WalletType    *string `json:"walletType" binding:"omitempty,wallettype" enums:"metamask,phantom,tonkeeper"`
	IsVerified    bool    `json:"isVerified"`
	Avatar        *string `json:"avatar" binding:"omitempty,url"`
	Bio           *string `json:"bio" binding:"omitempty,max=2000"`
}

func (r createUserRequest) toDomain() domain.NewUser {
	return domain.NewUser{
		Username:      r.Username,
		Email:         r.Email,
		Name:          r.Name,
		Title:         r.Title,
		WalletAddress: r.WalletAddress,
		WalletType:    walletTypePtr(r.WalletType),
		IsVerified:    r.IsVerified,
		Avatar:        r.Avatar,
		Bio:           r.Bio,
	}
}

type updateUserRequest struct {
	Username      *string `json:"username" binding:"omitempty,username"`
	Email         *string `json:"email" binding:"omitempty,email"`
	Name          *string `json:"name" binding:"omitempty,min=1,max=200"`
	Title         *string `json:"title" binding:"omitempty,max=200"`
	WalletAddress *string `json:"walletAddress"`
	WalletType    *string `json:"walletType" binding:"omitempty,wallettype" enums:"metamask,phantom,tonkeeper"`
	IsVerified    *bool   `json:"isVerified"`
	Avatar        *string `json:"avatar" binding:"omitempty,url"`
	Bio           *string `json:"bio" binding:"omitempty,max=2000"`
}

func (r updateUserRequest) toDomain() domain.UserPatch {
	return domain.UserPatch{
		Username:      r.Username,
		Email:         r.Email,
		Name:          r.Name,
		Title:         r.Title,
		WalletAddress: r.WalletAddress,
		WalletType:    walletTypePtr(r.WalletType),
		IsVerified:    r.IsVerified,
		Avatar:        r.Avatar,
		Bio:           r.Bio,
	}
}

type connectWalletRequest struct {
	WalletAddress string `json:"walletAddress" binding:"required" example:"0x1234567890abcdef1234567890abcdef12345678"`
	WalletType    string `json:"walletType" binding:"required,wallettype" enums:"metamask,phantom,tonkeeper"`
}

type createNFTRequest struct {
	UserID          int64           `json:"userId" binding:"required,gt=0" example:"1"`
	TokenID         string          `json:"tokenId" binding:"required" example:"42"`
	ContractAddress string          `json:"contractAddress" binding:"required" example:"0xabcd1234"`
	Name            string          `json:"name" binding:"required,max=200"`
	Description     *string         `json:"description"`
	ImageURL        string          `json:"imageUrl" binding:"required,url"`
	Metadata        json.RawMessage `json:"metadata" swaggertype:"object"`
	Blockchain      string          `json:"blockchain" binding:"omitempty,oneof=ethereum solana ton" enums:"ethereum,solana,ton"`
}

func (r createNFTRequest) toDomain() domain.NewNFT {
	return domain.NewNFT{
		UserID:          r.UserID,
		TokenID:         r.TokenID,
		ContractAddress: r.ContractAddress,
		Name:            r.Name,
		Description:     r.Description,
		ImageURL:        r.ImageURL,
		Metadata:        r.Metadata,
		Blockchain:      domain.Blockchain(r.Blockchain),
	}
}

type createGrantRequest struct {
	Title        string      `json:"title" binding:"required,max=200"`
	Description  string      `json:"description" binding:"required"`
	Amount       json.Number `json:"amount" binding:"required,money" swaggertype:"string" example:"5000.00"`
	Currency     string      `json:"currency" binding:"omitempty,max=10" example:"USD"`
	Organization string      `json:"organization" binding:"required,max=200"`
	LogoURL      *string     `json:"logoUrl" binding:"omitempty,url"`
	Deadline     time.Time   `json:"deadline" binding:"required"`
	Status       string      `json:"status" binding:"omitempty,oneof=open closed featured" enums:"open,closed,featured"`
	Requirements *string     `json:"requirements"`
}

func (r createGrantRequest) toInput() grant.CreateGrantInput {
	return grant.CreateGrantInput{
		Title:        r.Title,
		Description:  r.Description,
		Amount:       r.Amount.String(),
		Currency:     r.Currency,
		Organization: r.Organization,
		LogoURL:      r.LogoURL,
		Deadline:     r.Deadline,
		Status:       domain.GrantStatus(r.Status),
		Requirements: r.Requirements,
	}
}

type createGrantApplicationRequest struct {
	UserID             int64       `json:"userId" binding:"required,gt=0" example:"1"`
	GrantID            int64       `json:"grantId" binding:"required,gt=0" example:"1"`
	ProjectTitle       string      `json:"projectTitle" binding:"required,max=200"`
	ProjectDescription string      `json:"projectDescription" binding:"required"`
	RequestedAmount    json.Number `json:"requestedAmount" binding:"required,money" swaggertype:"string" example:"2500.00"`
	Portfolio          *string     `json:"portfolio"`
	// Accepted for compatibility and ignored; applications start pending.
	Status *string `json:"status" swaggerignore:"true"`
}

func (r createGrantApplicationRequest) toInput() grant.ApplyInput {
	return grant.ApplyInput{
		UserID:             r.UserID,
		GrantID:            r.GrantID,
		ProjectTitle:       r.ProjectTitle,
		ProjectDescription: r.ProjectDescription,
		RequestedAmount:    r.RequestedAmount.String(),
		Portfolio:          r.Portfolio,
	}
}

type createTipRequest struct {
	FromUserID int64       `json:"fromUserId" binding:"required,gt=0" example:"2"`
	ToUserID   int64       `json:"toUserId" binding:"required,gt=0" example:"1"`
	Amount     json.Number `json:"amount" binding:"required,money" swaggertype:"string" example:"10.00"`
	Currency   string      `json:"currency" binding:"omitempty,currency" example:"USDC"`
	Message    *string     `json:"message" binding:"omitempty,max=500"`
	// Accepted for compatibility and ignored; tips start pending and the
	// transaction reference always comes from the chain oracle.
	Status          *string `json:"status" swaggerignore:"true"`
	TransactionHash *string `json:"transactionHash" swaggerignore:"true"`
}

func (r createTipRequest) toInput() tip.CreateTipInput {
	return tip.CreateTipInput{
		FromUserID: r.FromUserID,
		ToUserID:   r.ToUserID,
		Amount:     r.Amount.String(),
		Currency:   r.Currency,
		Message:    r.Message,
	}
}

type createContentRequest struct {
	Title                   string  `json:"title" binding:"required,max=200"`
	Description             string  `json:"description" binding:"required"`
	ImageURL                string  `json:"imageUrl" binding:"required,url"`
	RequiredTokenType       string  `json:"requiredTokenType" binding:"required,oneof=token nft" enums:"token,nft"`
	RequiredTokenAmount     *int    `json:"requiredTokenAmount" binding:"omitempty,gt=0"`
	RequiredContractAddress *string `json:"requiredContractAddress"`
	RequiredTokenSymbol     *string `json:"requiredTokenSymbol" binding:"omitempty,max=20"`
	ContentType             string  `json:"contentType" binding:"required,oneof=template asset tool" enums:"template,asset,tool"`
	ContentURL              *string `json:"contentUrl" binding:"omitempty,url"`
	IsActive                *bool   `json:"isActive"`
}

func (r createContentRequest) toDomain() domain.NewTokenGatedContent {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return domain.NewTokenGatedContent{
		Title:                   r.Title,
		Description:             r.Description,
		ImageURL:                r.ImageURL,
		RequiredTokenType:       domain.TokenType(r.RequiredTokenType),
		RequiredTokenAmount:     r.RequiredTokenAmount,
		RequiredContractAddress: r.RequiredContractAddress,
		RequiredTokenSymbol:     r.RequiredTokenSymbol,
		ContentType:             domain.ContentType(r.ContentType),
		ContentURL:              r.ContentURL,
		IsActive:                active,
	}
}

type updateStatsRequest struct {
	CreationCount *int         `json:"creationCount" binding:"omitempty,gte=0"`
	TotalEarnings *json.Number `json:"totalEarnings" swaggertype:"string" example:"2340.00"`
	TipCount      *int         `json:"tipCount" binding:"omitempty,gte=0"`
	FollowerCount *int         `json:"followerCount" binding:"omitempty,gte=0"`
}

func (r updateStatsRequest) toDomain() (domain.StatsPatch, error) {
	patch := domain.StatsPatch{
		CreationCount: r.CreationCount,
		TipCount:      r.TipCount,
		FollowerCount: r.FollowerCount,
	}
	if r.TotalEarnings != nil {
		a, err := domain.ParseAmount(r.TotalEarnings.String())
		if err != nil {
			return patch, domain.NewValidationError("totalEarnings", err.Error())
		}
		patch.TotalEarnings = &a
	}
	return patch, nil
}

func walletTypePtr(s *string) *domain.WalletType {
	if s == nil {
		return nil
	}
	wt := domain.WalletType(*s)
	return &wt
}
