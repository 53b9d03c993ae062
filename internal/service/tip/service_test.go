package tip

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"creon-backend/internal/chain"
	apperrors "creon-backend/internal/common/errors"
	"creon-backend/internal/domain"
	"creon-backend/internal/repository/memory"
)

type failingOracle struct{}

func (failingOracle) CheckBalance(ctx context.Context, wallet string, token chain.TokenRef) (decimal.Decimal, error) {
	return decimal.Zero, errors.New("rpc unavailable")
}

func (failingOracle) CheckOwnership(ctx context.Context, wallet, contract string) (bool, error) {
	return false, errors.New("rpc unavailable")
}

func (failingOracle) SubmitTransaction(ctx context.Context, tr chain.Transfer) (string, error) {
	return "", errors.New("rpc unavailable")
}

func setup(t *testing.T) (*Service, *memory.Store, int64, int64) {
	t.Helper()
	store := memory.New()
	ctx := context.Background()
	alice, err := store.CreateUser(ctx, domain.NewUser{Username: "alice", Email: "alice@example.com", Name: "Alice"})
	require.NoError(t, err)
	bob, err := store.CreateUser(ctx, domain.NewUser{Username: "bob", Email: "bob@example.com", Name: "Bob"})
	require.NoError(t, err)
	return NewService(store, store, chain.NewStub(chain.WithTxHash("0xhash"))), store, alice.ID, bob.ID
}

func TestCreateAccumulatesStats(t *testing.T) {
	svc, store, alice, bob := setup(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, CreateTipInput{FromUserID: alice, ToUserID: bob, Amount: "5.00"})
	require.NoError(t, err)
	assert.Equal(t, domain.TipPending, first.Status)
	assert.Equal(t, "USDC", first.Currency)
	require.NotNil(t, first.TransactionHash)
	assert.Equal(t, "0xhash", *first.TransactionHash)

	second, err := svc.Create(ctx, CreateTipInput{FromUserID: alice, ToUserID: bob, Amount: "2.5", Currency: "usdc"})
	require.NoError(t, err)
	assert.Equal(t, "0xhash", *second.TransactionHash)
	assert.Equal(t, "USDC", second.Currency)

	stats, err := store.GetUserStats(ctx, bob)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TipCount)
	assert.Equal(t, "7.50", stats.TotalEarnings.String())

	received, err := svc.ListReceived(ctx, bob)
	require.NoError(t, err)
	assert.Len(t, received, 2)
	sent, err := svc.ListSent(ctx, alice)
	require.NoError(t, err)
	assert.Len(t, sent, 2)
}

func TestCreateValidation(t *testing.T) {
	svc, store, alice, bob := setup(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		in    CreateTipInput
		field string
	}{
		{"zero", CreateTipInput{FromUserID: alice, ToUserID: bob, Amount: "0"}, "amount"},
		{"negative", CreateTipInput{FromUserID: alice, ToUserID: bob, Amount: "-1.00"}, "amount"},
		{"three decimals", CreateTipInput{FromUserID: alice, ToUserID: bob, Amount: "1.005"}, "amount"},
		{"not a number", CreateTipInput{FromUserID: alice, ToUserID: bob, Amount: "ten"}, "amount"},
		{"unknown currency", CreateTipInput{FromUserID: alice, ToUserID: bob, Amount: "1.00", Currency: "BTC"}, "currency"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tt.in)
			var ve *domain.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
		})
	}

	tips, err := store.GetTipsByUserID(ctx, bob)
	require.NoError(t, err)
	assert.Empty(t, tips)
}

func TestCreateUnknownUsers(t *testing.T) {
	svc, _, alice, _ := setup(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateTipInput{FromUserID: alice, ToUserID: 999, Amount: "1.00"})
	var refErr *domain.ReferenceError
	require.ErrorAs(t, err, &refErr)
	assert.Equal(t, "toUserId", refErr.Field)

	_, err = svc.Create(ctx, CreateTipInput{FromUserID: 999, ToUserID: alice, Amount: "1.00"})
	require.ErrorAs(t, err, &refErr)
	assert.Equal(t, "fromUserId", refErr.Field)
}

func TestCreateOracleFailureWritesNothing(t *testing.T) {
	store := memory.New()
	ctx := context.Background()
	a, _ := store.CreateUser(ctx, domain.NewUser{Username: "alice", Email: "a@example.com", Name: "A"})
	b, _ := store.CreateUser(ctx, domain.NewUser{Username: "bob", Email: "b@example.com", Name: "B"})
	svc := NewService(store, store, failingOracle{})

	_, err := svc.Create(ctx, CreateTipInput{FromUserID: a.ID, ToUserID: b.ID, Amount: "1.00"})
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeChainOracle, appErr.Code)

	stats, err := store.GetUserStats(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.TipCount)
}

func TestCreateRecoversMissingStats(t *testing.T) {
	svc, store, alice, bob := setup(t)
	ctx := context.Background()
	store.DeleteUserStats(bob)

	_, err := svc.Create(ctx, CreateTipInput{FromUserID: alice, ToUserID: bob, Amount: "3.00"})
	require.NoError(t, err)

	stats, err := store.GetUserStats(ctx, bob)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TipCount)
	assert.Equal(t, "3.00", stats.TotalEarnings.String())
}

func TestConcurrentCreates(t *testing.T) {
	svc, store, alice, bob := setup(t)
	ctx := context.Background()

	var g errgroup.Group
	for i := 0; i < 40; i++ {
		g.Go(func() error {
			_, err := svc.Create(ctx, CreateTipInput{FromUserID: alice, ToUserID: bob, Amount: "0.25"})
			return err
		})
	}
	require.NoError(t, g.Wait())

	stats, err := store.GetUserStats(ctx, bob)
	require.NoError(t, err)
	assert.Equal(t, 40, stats.TipCount)
	assert.Equal(t, "10.00", stats.TotalEarnings.String())
}
