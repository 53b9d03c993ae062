package chain

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

// Stub fabricates plausible answers without touching a network. Fixed
// answers set through options take precedence over the random ones.
type Stub struct {
	mu  sync.Mutex
	rnd *rand.Rand

	balances  map[string]decimal.Decimal
	ownership *bool
	txHash    string
}

var _ Oracle = (*Stub)(nil)

type StubOption func(*Stub)

// WithRand replaces the random source, e.g. with a seeded one in tests.
func WithRand(r *rand.Rand) StubOption {
	return func(s *Stub) { s.rnd = r }
}

// WithBalance pins the balance reported for symbol.
func WithBalance(symbol string, amount decimal.Decimal) StubOption {
	return func(s *Stub) { s.balances[normalizeSymbol(symbol)] = amount }
}

// WithOwnership pins the answer of CheckOwnership.
func WithOwnership(owned bool) StubOption {
	return func(s *Stub) { s.ownership = &owned }
}

// WithTxHash pins the hash returned by SubmitTransaction.
func WithTxHash(hash string) StubOption {
	return func(s *Stub) { s.txHash = hash }
}

func NewStub(opts ...StubOption) *Stub {
	s := &Stub{
		rnd:      rand.New(rand.NewSource(time.Now().UnixNano())),
		balances: map[string]decimal.Decimal{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CheckBalance reports 0-9 CREATOR, 0-999 USDC and nothing of anything else.
func (s *Stub) CheckBalance(ctx context.Context, wallet string, token TokenRef) (decimal.Decimal, error) {
	if err := ctx.Err(); err != nil {
		return decimal.Zero, err
	}
	symbol := normalizeSymbol(token.Symbol)

	s.mu.Lock()
	defer s.mu.Unlock()
	if fixed, ok := s.balances[symbol]; ok {
		return fixed, nil
	}
	switch symbol {
	case "CREATOR":
		return decimal.NewFromInt(int64(s.rnd.Intn(10))), nil
	case "USDC":
		return decimal.NewFromInt(int64(s.rnd.Intn(1000))), nil
	default:
		return decimal.Zero, nil
	}
}

// CheckOwnership flips a coin unless pinned.
func (s *Stub) CheckOwnership(ctx context.Context, wallet, contract string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ownership != nil {
		return *s.ownership, nil
	}
	return s.rnd.Intn(2) == 1, nil
}

// SubmitTransaction returns a random 32-byte hex hash. Nothing is broadcast.
func (s *Stub) SubmitTransaction(ctx context.Context, tr Transfer) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.txHash != "" {
		return s.txHash, nil
	}
	var buf [common.HashLength]byte
	s.rnd.Read(buf[:])
	return common.BytesToHash(buf[:]).Hex(), nil
}
