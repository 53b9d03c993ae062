package stats

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "creon-backend/internal/common/errors"
	"creon-backend/internal/domain"
	"creon-backend/internal/repository/memory"
)

func TestGet(t *testing.T) {
	svc := NewService(memory.New(memory.WithSampleData()))

	st, err := svc.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 127, st.CreationCount)
	assert.Equal(t, "2340.00", st.TotalEarnings.String())
	assert.Equal(t, 89, st.TipCount)
	assert.Equal(t, 1250, st.FollowerCount)

	_, err = svc.Get(context.Background(), 404)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.True(t, appErr.IsNotFound())
}

func TestUpdate(t *testing.T) {
	svc := NewService(memory.New(memory.WithSampleData()))
	followers := 1300
	earnings := domain.MustAmount("2400.10")

	st, err := svc.Update(context.Background(), 1, domain.StatsPatch{FollowerCount: &followers, TotalEarnings: &earnings})
	require.NoError(t, err)
	assert.Equal(t, 1300, st.FollowerCount)
	assert.Equal(t, "2400.10", st.TotalEarnings.String())
	assert.Equal(t, 127, st.CreationCount)
}

func TestUpdateRejectsNegative(t *testing.T) {
	svc := NewService(memory.New(memory.WithSampleData()))
	negative := -1
	debt := domain.MustAmount("-0.01")

	_, err := svc.Update(context.Background(), 1, domain.StatsPatch{TipCount: &negative})
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "tipCount", ve.Field)

	_, err = svc.Update(context.Background(), 1, domain.StatsPatch{TotalEarnings: &debt})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "totalEarnings", ve.Field)

	_, err = svc.Update(context.Background(), 404, domain.StatsPatch{})
	assert.ErrorIs(t, err, domain.ErrReferenceNotFound)
}
