package domain

import "time"

type TipStatus string

const (
	TipPending   TipStatus = "pending"
	TipConfirmed TipStatus = "confirmed"
	TipFailed    TipStatus = "failed"
)

// DefaultCurrency is used when a tip names no currency.
const DefaultCurrency = "USDC"

// Currencies is the closed set of symbols a tip may be denominated in.
var Currencies = []string{"USDC", "USDT", "DAI", "ETH", "SOL", "TON"}

// KnownCurrency reports whether symbol is in Currencies.
func KnownCurrency(symbol string) bool {
	for _, c := range Currencies {
		if c == symbol {
			return true
		}
	}
	return false
}

// Tip is a directed micro-payment record from one user to another.
type Tip struct {
	ID              int64     `json:"id"`
	FromUserID      int64     `json:"fromUserId"`
	ToUserID        int64     `json:"toUserId"`
	Amount          Amount    `json:"amount"`
	Currency        string    `json:"currency"`
	Message         *string   `json:"message"`
	TransactionHash *string   `json:"transactionHash"`
	Status          TipStatus `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
}

type NewTip struct {
	FromUserID      int64
	ToUserID        int64
	Amount          Amount
	Currency        string
	Message         *string
	TransactionHash *string
}

// NewEarningsOverflowError rejects a tip that would push the recipient's
// total earnings past MaxAmount. Nothing is recorded in that case.
func NewEarningsOverflowError() *ValidationError {
	return NewValidationError("amount", "would push the recipient's total earnings past "+MaxAmount().String())
}

// TipReceipt is the outcome of the tip accounting write. StatsRecovered is set
// when the recipient had no stats row and one was created from this tip.
type TipReceipt struct {
	Tip            *Tip
	Stats          *UserStats
	StatsRecovered bool
}
