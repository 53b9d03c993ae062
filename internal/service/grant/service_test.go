package grant

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "creon-backend/internal/common/errors"
	"creon-backend/internal/domain"
	"creon-backend/internal/repository/memory"
)

func TestCreateAndGet(t *testing.T) {
	svc := NewService(memory.New())
	ctx := context.Background()

	g, err := svc.Create(ctx, CreateGrantInput{
		Title:        "Open Source Tools",
		Description:  "Funding for tooling",
		Amount:       "5000",
		Organization: "Tooling DAO",
		Deadline:     time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.GrantOpen, g.Status)
	assert.Equal(t, "USD", g.Currency)
	assert.Equal(t, "5000.00", g.Amount.String())
	assert.Zero(t, g.ApplicationCount)

	got, err := svc.Get(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, g.Title, got.Title)

	_, err = svc.Get(ctx, 999)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.True(t, appErr.IsNotFound())
}

func TestCreateValidation(t *testing.T) {
	svc := NewService(memory.New())
	valid := CreateGrantInput{
		Title:        "T",
		Description:  "D",
		Amount:       "10.00",
		Organization: "O",
		Deadline:     time.Now().Add(24 * time.Hour),
	}

	tests := []struct {
		name   string
		mutate func(in *CreateGrantInput)
		field  string
	}{
		{"missing title", func(in *CreateGrantInput) { in.Title = " " }, "title"},
		{"missing organization", func(in *CreateGrantInput) { in.Organization = "" }, "organization"},
		{"bad amount", func(in *CreateGrantInput) { in.Amount = "-5" }, "amount"},
		{"no deadline", func(in *CreateGrantInput) { in.Deadline = time.Time{} }, "deadline"},
		{"bad status", func(in *CreateGrantInput) { in.Status = "archived" }, "status"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)
			_, err := svc.Create(context.Background(), in)
			var ve *domain.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}

func TestApply(t *testing.T) {
	store := memory.New(memory.WithSampleData())
	svc := NewService(store)
	ctx := context.Background()

	before, err := svc.Get(ctx, 1)
	require.NoError(t, err)

	app, err := svc.Apply(ctx, ApplyInput{
		UserID:             1,
		GrantID:            1,
		ProjectTitle:       "Mural",
		ProjectDescription: "Community mural",
		RequestedAmount:    "1200.50",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ApplicationPending, app.Status)
	assert.Equal(t, "1200.50", app.RequestedAmount.String())

	after, err := svc.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, before.ApplicationCount+1, after.ApplicationCount)

	apps, err := svc.ListApplications(ctx, 1)
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, app.ID, apps[0].ID)
}

func TestApplyRejections(t *testing.T) {
	store := memory.New(memory.WithSampleData())
	svc := NewService(store)
	ctx := context.Background()

	closed, err := svc.Create(ctx, CreateGrantInput{
		Title: "Old", Description: "Closed round", Amount: "100", Organization: "O",
		Deadline: time.Now(), Status: domain.GrantClosed,
	})
	require.NoError(t, err)

	_, err = svc.Apply(ctx, ApplyInput{UserID: 1, GrantID: closed.ID, ProjectTitle: "P", ProjectDescription: "D", RequestedAmount: "10"})
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "grantId", ve.Field)

	_, err = svc.Apply(ctx, ApplyInput{UserID: 1, GrantID: 1, ProjectTitle: "P", ProjectDescription: "D", RequestedAmount: "0"})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "requestedAmount", ve.Field)

	_, err = svc.Apply(ctx, ApplyInput{UserID: 1, GrantID: 404, ProjectTitle: "P", ProjectDescription: "D", RequestedAmount: "10"})
	var refErr *domain.ReferenceError
	require.ErrorAs(t, err, &refErr)
	assert.Equal(t, "grantId", refErr.Field)

	_, err = svc.Apply(ctx, ApplyInput{UserID: 404, GrantID: 1, ProjectTitle: "P", ProjectDescription: "D", RequestedAmount: "10"})
	require.ErrorAs(t, err, &refErr)
	assert.Equal(t, "userId", refErr.Field)
}
