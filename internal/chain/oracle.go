// Package chain answers on-chain questions: token balances, NFT ownership
// and transfer submission. Every backend is read-only except for the
// simulated submission path.
package chain

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"
)

// TokenRef names a fungible token. Contract is empty for a chain's native
// coin or when only the symbol is known.
type TokenRef struct {
	Symbol   string
	Contract string
}

// Transfer is a value movement to submit on chain.
type Transfer struct {
	From     string
	To       string
	Amount   decimal.Decimal
	Currency string
}

type Oracle interface {
	CheckBalance(ctx context.Context, wallet string, token TokenRef) (decimal.Decimal, error)
	CheckOwnership(ctx context.Context, wallet, contract string) (bool, error)
	// SubmitTransaction returns the transaction hash.
	SubmitTransaction(ctx context.Context, tr Transfer) (string, error)
}

func normalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}
