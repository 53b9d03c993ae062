package user

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xssnick/tonutils-go/address"
	"golang.org/x/sync/errgroup"

	"creon-backend/internal/common/cache"
	apperrors "creon-backend/internal/common/errors"
	"creon-backend/internal/domain"
	"creon-backend/internal/platform/redis/redistest"
	"creon-backend/internal/repository/memory"
)

const wallet = "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"

type countingRepo struct {
	domain.UserRepository
	gets atomic.Int32
}

func (r *countingRepo) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	r.gets.Add(1)
	return r.UserRepository.GetUser(ctx, id)
}

func strPtr(s string) *string { return &s }

func TestConnectWalletCreatesOnce(t *testing.T) {
	svc := NewService(memory.New(), nil, 0)
	ctx := context.Background()

	u, created, err := svc.ConnectWallet(ctx, wallet, domain.WalletMetaMask)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "user_1beaed", u.Username)
	assert.Equal(t, "1beaed@creon.example", u.Email)
	assert.Equal(t, "New Creator", u.Name)
	assert.False(t, u.IsVerified)
	require.NotNil(t, u.WalletAddress)
	assert.Equal(t, strings.ToLower(wallet), *u.WalletAddress)
	require.NotNil(t, u.WalletType)
	assert.Equal(t, domain.WalletMetaMask, *u.WalletType)

	again, created, err := svc.ConnectWallet(ctx, strings.ToLower(wallet), domain.WalletMetaMask)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, u.ID, again.ID)
}

func TestConnectWalletTONFormsShareOneUser(t *testing.T) {
	svc := NewService(memory.New(), nil, 0)
	ctx := context.Background()

	data := bytes.Repeat([]byte{0x5c}, 32)
	acct := address.NewAddress(0, 0, data)
	bounceable := acct.Bounce(true).String()
	nonBounceable := acct.Bounce(false).String()
	raw := fmt.Sprintf("0:%x", data)

	first, created, err := svc.ConnectWallet(ctx, nonBounceable, domain.WalletTonkeeper)
	require.NoError(t, err)
	assert.True(t, created)
	require.NotNil(t, first.WalletAddress)
	assert.Equal(t, bounceable, *first.WalletAddress)

	for _, form := range []string{bounceable, raw} {
		u, created, err := svc.ConnectWallet(ctx, form, domain.WalletTonkeeper)
		require.NoError(t, err)
		assert.False(t, created, form)
		assert.Equal(t, first.ID, u.ID, form)
	}

	for _, form := range []string{bounceable, nonBounceable, raw} {
		u, err := svc.GetByWallet(ctx, form)
		require.NoError(t, err, form)
		assert.Equal(t, first.ID, u.ID, form)
	}
}

func TestConnectWalletWidensSuffix(t *testing.T) {
	store := memory.New()
	svc := NewService(store, nil, 0)
	ctx := context.Background()

	_, err := store.CreateUser(ctx, domain.NewUser{Username: "user_1beaed", Email: "someone@example.com", Name: "Squatter"})
	require.NoError(t, err)

	u, created, err := svc.ConnectWallet(ctx, wallet, domain.WalletMetaMask)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "user_ef1beaed", u.Username)
	assert.Equal(t, "ef1beaed@creon.example", u.Email)
}

func TestConnectWalletConcurrent(t *testing.T) {
	svc := NewService(memory.New(), nil, 0)
	ctx := context.Background()

	ids := make([]int64, 8)
	var createdCount atomic.Int32
	g, gctx := errgroup.WithContext(ctx)
	for i := range ids {
		i := i
		g.Go(func() error {
			u, created, err := svc.ConnectWallet(gctx, wallet, domain.WalletMetaMask)
			if err != nil {
				return err
			}
			if created {
				createdCount.Add(1)
			}
			ids[i] = u.ID
			return nil
		})
	}
	require.NoError(t, g.Wait())
	assert.Equal(t, int32(1), createdCount.Load())
	for _, id := range ids {
		assert.Equal(t, ids[0], id)
	}
}

func TestConnectWalletRejectsMalformedAddress(t *testing.T) {
	svc := NewService(memory.New(), nil, 0)

	_, _, err := svc.ConnectWallet(context.Background(), "0x1234", domain.WalletMetaMask)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeInvalidWallet, appErr.Code)

	_, _, err = svc.ConnectWallet(context.Background(), wallet, domain.WalletType("ledger"))
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "walletType", ve.Field)
}

func TestGetNotFound(t *testing.T) {
	svc := NewService(memory.New(), nil, 0)

	_, err := svc.Get(context.Background(), 99)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.True(t, appErr.IsNotFound())

	_, err = svc.GetByWallet(context.Background(), "0xnobody")
	appErr, ok = apperrors.AsAppError(err)
	require.True(t, ok)
	assert.True(t, appErr.IsNotFound())
}

func TestGetByWalletIgnoresHexCase(t *testing.T) {
	svc := NewService(memory.New(), nil, 0)
	ctx := context.Background()

	u, _, err := svc.ConnectWallet(ctx, wallet, domain.WalletMetaMask)
	require.NoError(t, err)

	got, err := svc.GetByWallet(ctx, strings.ToUpper(wallet[2:]))
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
}

func TestCreateValidates(t *testing.T) {
	svc := NewService(memory.New(), nil, 0)
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.NewUser{Username: "a b", Email: "a@example.com", Name: "A"})
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "username", ve.Field)

	_, err = svc.Create(ctx, domain.NewUser{Username: "mara", Email: "m@example.com", Name: "Mara", WalletAddress: strPtr(wallet)})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "walletType", ve.Field)

	mm := domain.WalletMetaMask
	u, err := svc.Create(ctx, domain.NewUser{Username: "mara", Email: "m@example.com", Name: "Mara", WalletAddress: strPtr(wallet), WalletType: &mm})
	require.NoError(t, err)
	assert.Equal(t, strings.ToLower(wallet), *u.WalletAddress)

	_, err = svc.Create(ctx, domain.NewUser{Username: "mara", Email: "other@example.com", Name: "Mara"})
	assert.True(t, errors.Is(err, domain.ErrUniqueViolation))
}

func TestGetFallsBackWhenCacheFails(t *testing.T) {
	store := memory.New()
	rdb := redistest.New()
	svc := NewService(store, cache.NewCacheService(rdb), time.Minute)
	ctx := context.Background()

	u, err := store.CreateUser(ctx, domain.NewUser{Username: "mara", Email: "m@example.com", Name: "Mara"})
	require.NoError(t, err)

	rdb.FailWith(errors.New("connection reset by peer"))
	got, err := svc.Get(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	updated, err := svc.Update(ctx, u.ID, domain.UserPatch{Name: strPtr("Mara Q")})
	require.NoError(t, err)
	assert.Equal(t, "Mara Q", updated.Name)

	rdb.FailWith(nil)
	assert.Equal(t, 0, rdb.Len())
}

func TestGetIsCachedAndUpdateInvalidates(t *testing.T) {
	store := memory.New()
	repo := &countingRepo{UserRepository: store}
	rdb := redistest.New()
	svc := NewService(repo, cache.NewCacheService(rdb), time.Minute)
	ctx := context.Background()

	u, err := store.CreateUser(ctx, domain.NewUser{Username: "mara", Email: "m@example.com", Name: "Mara"})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		got, err := svc.Get(ctx, u.ID)
		require.NoError(t, err)
		assert.Equal(t, "Mara", got.Name)
	}
	assert.Equal(t, int32(1), repo.gets.Load())
	assert.True(t, rdb.Has(cache.UserKey(u.ID)))

	updated, err := svc.Update(ctx, u.ID, domain.UserPatch{Name: strPtr("Mara Quinn")})
	require.NoError(t, err)
	assert.Equal(t, "Mara Quinn", updated.Name)
	assert.False(t, rdb.Has(cache.UserKey(u.ID)))

	got, err := svc.Get(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mara Quinn", got.Name)
}

func TestUpdate(t *testing.T) {
	store := memory.New()
	svc := NewService(store, nil, 0)
	ctx := context.Background()

	u, err := store.CreateUser(ctx, domain.NewUser{Username: "mara", Email: "m@example.com", Name: "Mara"})
	require.NoError(t, err)

	same, err := svc.Update(ctx, u.ID, domain.UserPatch{})
	require.NoError(t, err)
	assert.Equal(t, u.ID, same.ID)

	_, err = svc.Update(ctx, 404, domain.UserPatch{Name: strPtr("x")})
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.True(t, appErr.IsNotFound())

	_, err = svc.Update(ctx, u.ID, domain.UserPatch{WalletAddress: strPtr("nope")})
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)

	phantom := domain.WalletPhantom
	_, err = svc.Update(ctx, u.ID, domain.UserPatch{WalletAddress: strPtr("11111111111111111111111111111111"), WalletType: &phantom})
	require.NoError(t, err)
}
