package cache

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "creon-backend/internal/common/errors"
	"creon-backend/internal/platform/redis"
	"creon-backend/internal/platform/redis/redistest"
)

type cachedUser struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func TestCacheServiceRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := NewCacheService(redistest.New())

	var got cachedUser
	err := svc.Get(ctx, UserKey(1), &got)
	require.Error(t, err)
	assert.True(t, redis.IsMiss(err))

	require.NoError(t, svc.Set(ctx, UserKey(1), cachedUser{ID: 1, Name: "Alex"}, time.Minute))
	require.NoError(t, svc.Get(ctx, UserKey(1), &got))
	assert.Equal(t, cachedUser{ID: 1, Name: "Alex"}, got)

	ok, err := svc.Exists(ctx, UserKey(1))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestInvalidateUser(t *testing.T) {
	ctx := context.Background()
	fake := redistest.New()
	svc := NewCacheService(fake)

	require.NoError(t, svc.Set(ctx, UserKey(4), cachedUser{ID: 4}, time.Minute))
	require.NoError(t, svc.Set(ctx, UserWalletKey("0xabc"), cachedUser{ID: 4}, time.Minute))
	require.NoError(t, svc.Set(ctx, UserKey(5), cachedUser{ID: 5}, time.Minute))

	require.NoError(t, svc.InvalidateUser(ctx, 4, "0xabc", ""))

	assert.False(t, fake.Has(UserKey(4)))
	assert.False(t, fake.Has(UserWalletKey("0xabc")))
	assert.True(t, fake.Has(UserKey(5)))
}

func TestDeletePattern(t *testing.T) {
	ctx := context.Background()
	fake := redistest.New()
	svc := NewCacheService(fake)

	for _, k := range []string{"httpcache:GET:/a", "httpcache:GET:/b", "user:1"} {
		require.NoError(t, svc.Set(ctx, k, 1, time.Minute))
	}
	require.NoError(t, svc.DeletePattern(ctx, "httpcache:*"))
	assert.Equal(t, 1, fake.Len())
	assert.True(t, fake.Has("user:1"))
}

func TestCacheFailuresAreCacheErrors(t *testing.T) {
	ctx := context.Background()
	fake := redistest.New()
	svc := NewCacheService(fake)
	fake.FailWith(stderrors.New("connection reset by peer"))

	var got cachedUser
	err := svc.Get(ctx, UserKey(1), &got)
	require.Error(t, err)
	assert.False(t, redis.IsMiss(err))

	for _, err := range []error{
		err,
		svc.Set(ctx, UserKey(1), cachedUser{ID: 1}, time.Minute),
		svc.InvalidateUser(ctx, 1),
		svc.DeletePattern(ctx, "httpcache:*"),
	} {
		appErr, ok := apperrors.AsAppError(err)
		require.True(t, ok)
		assert.Equal(t, apperrors.ErrCodeCacheError, appErr.Code)
		assert.True(t, appErr.IsInternal())
	}

	fake.FailWith(nil)
	require.NoError(t, svc.Set(ctx, UserKey(1), cachedUser{ID: 1}, time.Minute))
}
