package domain

import (
	"encoding/json"
	"time"
)

// Blockchain tags the network an NFT lives on.
type Blockchain string

const (
	BlockchainEthereum Blockchain = "ethereum"
	BlockchainSolana   Blockchain = "solana"
	BlockchainTON      Blockchain = "ton"
)

// NFT is an on-chain asset displayed in a creator's collection. TokenID and
// ContractAddress together identify the asset.
type NFT struct {
	ID              int64           `json:"id"`
	UserID          int64           `json:"userId"`
	TokenID         string          `json:"tokenId"`
	ContractAddress string          `json:"contractAddress"`
	Name            string          `json:"name"`
	Description     *string         `json:"description"`
	ImageURL        string          `json:"imageUrl"`
	Metadata        json.RawMessage `json:"metadata"`
	Blockchain      Blockchain      `json:"blockchain"`
	CreatedAt       time.Time       `json:"createdAt"`
}

type NewNFT struct {
	UserID          int64
	TokenID         string
	ContractAddress string
	Name            string
	Description     *string
	ImageURL        string
	Metadata        json.RawMessage
	Blockchain      Blockchain
}
