package domain

import "time"

type TokenType string

const (
	TokenTypeToken TokenType = "token"
	TokenTypeNFT   TokenType = "nft"
)

type ContentType string

const (
	ContentTemplate ContentType = "template"
	ContentAsset    ContentType = "asset"
	ContentTool     ContentType = "tool"
)

// TokenGatedContent is a catalog entry unlocked by holding a token balance or
// an NFT from a given contract.
type TokenGatedContent struct {
	ID                      int64       `json:"id"`
	Title                   string      `json:"title"`
	Description             string      `json:"description"`
	ImageURL                string      `json:"imageUrl"`
	RequiredTokenType       TokenType   `json:"requiredTokenType"`
	RequiredTokenAmount     *int        `json:"requiredTokenAmount"`
	RequiredContractAddress *string     `json:"requiredContractAddress"`
	RequiredTokenSymbol     *string     `json:"requiredTokenSymbol"`
	ContentType             ContentType `json:"contentType"`
	ContentURL              *string     `json:"contentUrl"`
	IsActive                bool        `json:"isActive"`
	CreatedAt               time.Time   `json:"createdAt"`
}

type NewTokenGatedContent struct {
	Title                   string
	Description             string
	ImageURL                string
	RequiredTokenType       TokenType
	RequiredTokenAmount     *int
	RequiredContractAddress *string
	RequiredTokenSymbol     *string
	ContentType             ContentType
	ContentURL              *string
	IsActive                bool
}
