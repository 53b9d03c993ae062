package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"creon-backend/internal/domain"
)

var userCols = []string{"id", "username", "email", "name", "title", "wallet_address", "wallet_type", "is_verified", "avatar", "bio", "created_at"}

func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	return New(db), mock
}

func TestCreateTipAccumulatesStats(t *testing.T) {
	s, mock := newMockStore(t)
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO tips").
		WithArgs(int64(1), int64(2), "2.50", "USDC", nil, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id", "from_user_id", "to_user_id", "amount", "currency", "message", "transaction_hash", "status", "created_at"}).
			AddRow(int64(7), int64(1), int64(2), []byte("2.50"), "USDC", nil, nil, "pending", now))
	mock.ExpectQuery("INSERT INTO user_stats").
		WithArgs(int64(2), "2.50").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "creation_count", "total_earnings", "tip_count", "follower_count", "updated_at", "inserted"}).
			AddRow(int64(3), int64(2), 0, []byte("7.50"), 2, 0, now, false))
	mock.ExpectCommit()

	receipt, err := s.CreateTip(context.Background(), domain.NewTip{
		FromUserID: 1,
		ToUserID:   2,
		Amount:     domain.MustAmount("2.50"),
		Currency:   "USDC",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), receipt.Tip.ID)
	assert.Equal(t, domain.TipPending, receipt.Tip.Status)
	assert.Equal(t, 2, receipt.Stats.TipCount)
	assert.Equal(t, "7.50", receipt.Stats.TotalEarnings.String())
	assert.False(t, receipt.StatsRecovered)
}

func TestCreateTipMissingRecipient(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO tips").
		WillReturnError(&pq.Error{Code: "23503", Constraint: "tips_to_user_id_fkey"})
	mock.ExpectRollback()

	_, err := s.CreateTip(context.Background(), domain.NewTip{
		FromUserID: 1,
		ToUserID:   99,
		Amount:     domain.MustAmount("1.00"),
	})
	require.ErrorIs(t, err, domain.ErrReferenceNotFound)

	var refErr *domain.ReferenceError
	require.True(t, errors.As(err, &refErr))
	assert.Equal(t, "toUserId", refErr.Field)
	assert.Equal(t, int64(99), refErr.ID)
}

func TestCreateTipRollsBackWhenStatsFail(t *testing.T) {
	s, mock := newMockStore(t)
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO tips").
		WillReturnRows(sqlmock.NewRows([]string{"id", "from_user_id", "to_user_id", "amount", "currency", "message", "transaction_hash", "status", "created_at"}).
			AddRow(int64(1), int64(1), int64(2), []byte("1.00"), "USDC", nil, nil, "pending", now))
	mock.ExpectQuery("INSERT INTO user_stats").WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	_, err := s.CreateTip(context.Background(), domain.NewTip{FromUserID: 1, ToUserID: 2, Amount: domain.MustAmount("1.00")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create tip")
}

func TestCreateTipEarningsOverflow(t *testing.T) {
	s, mock := newMockStore(t)
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO tips").
		WillReturnRows(sqlmock.NewRows([]string{"id", "from_user_id", "to_user_id", "amount", "currency", "message", "transaction_hash", "status", "created_at"}).
			AddRow(int64(1), int64(1), int64(2), []byte("1.00"), "USDC", nil, nil, "pending", now))
	mock.ExpectQuery("INSERT INTO user_stats").WillReturnError(&pq.Error{Code: "22003", Message: "numeric field overflow"})
	mock.ExpectRollback()

	_, err := s.CreateTip(context.Background(), domain.NewTip{FromUserID: 1, ToUserID: 2, Amount: domain.MustAmount("1.00")})
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "amount", ve.Field)
}

func TestCreateGrantApplicationUnknownGrant(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE grants SET application_count").
		WithArgs(int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, err := s.CreateGrantApplication(context.Background(), domain.NewGrantApplication{
		UserID:          1,
		GrantID:         42,
		RequestedAmount: domain.MustAmount("100.00"),
	})
	var refErr *domain.ReferenceError
	require.True(t, errors.As(err, &refErr))
	assert.Equal(t, "grantId", refErr.Field)
	assert.Equal(t, int64(42), refErr.ID)
}

func TestCreateGrantApplicationForcesPending(t *testing.T) {
	s, mock := newMockStore(t)
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE grants SET application_count").
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("INSERT INTO grant_applications").
		WithArgs(int64(5), int64(1), "Zine", "Risograph zine", "250.00", nil).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "grant_id", "project_title", "project_description", "requested_amount", "portfolio", "status", "submitted_at"}).
			AddRow(int64(10), int64(5), int64(1), "Zine", "Risograph zine", []byte("250.00"), nil, "pending", now))
	mock.ExpectCommit()

	app, err := s.CreateGrantApplication(context.Background(), domain.NewGrantApplication{
		UserID:             5,
		GrantID:            1,
		ProjectTitle:       "Zine",
		ProjectDescription: "Risograph zine",
		RequestedAmount:    domain.MustAmount("250"),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ApplicationPending, app.Status)
	assert.Nil(t, app.Portfolio)
}

func TestCreateGrantApplicationUnknownUser(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE grants SET application_count").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("INSERT INTO grant_applications").
		WillReturnError(&pq.Error{Code: "23503", Constraint: "grant_applications_user_id_fkey"})
	mock.ExpectRollback()

	_, err := s.CreateGrantApplication(context.Background(), domain.NewGrantApplication{UserID: 8, GrantID: 1})
	var refErr *domain.ReferenceError
	require.True(t, errors.As(err, &refErr))
	assert.Equal(t, "userId", refErr.Field)
	assert.Equal(t, int64(8), refErr.ID)
}

func TestCreateUserUniqueViolation(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(&pq.Error{Code: "23505", Constraint: "users_email_key"})
	mock.ExpectRollback()

	_, err := s.CreateUser(context.Background(), domain.NewUser{Username: "mara", Email: "mara@example.com", Name: "Mara"})
	ue, ok := domain.AsUniqueViolation(err)
	require.True(t, ok)
	assert.Equal(t, "email", ue.Field)
}

func TestCreateUserInsertsStats(t *testing.T) {
	s, mock := newMockStore(t)
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO users").
		WillReturnRows(sqlmock.NewRows(userCols).
			AddRow(int64(4), "mara", "mara@example.com", "Mara", nil, nil, nil, false, nil, nil, now))
	mock.ExpectExec("INSERT INTO user_stats").
		WithArgs(int64(4)).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	u, err := s.CreateUser(context.Background(), domain.NewUser{Username: "mara", Email: "mara@example.com", Name: "Mara"})
	require.NoError(t, err)
	assert.Equal(t, int64(4), u.ID)
	assert.Nil(t, u.WalletType)
}

func TestCreateUserIfWalletAbsentReturnsExisting(t *testing.T) {
	s, mock := newMockStore(t)
	now := time.Now()
	wallet := "0xabc"

	mock.ExpectBegin()
	mock.ExpectQuery("ON CONFLICT \\(wallet_address\\) DO NOTHING").
		WillReturnRows(sqlmock.NewRows(userCols))
	mock.ExpectRollback()
	mock.ExpectQuery("SELECT (.+) FROM users WHERE wallet_address").
		WithArgs(wallet).
		WillReturnRows(sqlmock.NewRows(userCols).
			AddRow(int64(2), "user_0xabc", "0xabc@wallet.local", "Wallet User", nil, wallet, "metamask", false, nil, nil, now))

	u, created, err := s.CreateUserIfWalletAbsent(context.Background(), domain.NewUser{
		Username:      "user_0xabc",
		Email:         "0xabc@wallet.local",
		Name:          "Wallet User",
		WalletAddress: &wallet,
	})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, int64(2), u.ID)
	require.NotNil(t, u.WalletType)
	assert.Equal(t, domain.WalletMetaMask, *u.WalletType)
}

func TestCreateUserIfWalletAbsentUsernameTaken(t *testing.T) {
	s, mock := newMockStore(t)
	wallet := "0xdef"

	mock.ExpectBegin()
	mock.ExpectQuery("ON CONFLICT \\(wallet_address\\) DO NOTHING").
		WillReturnError(&pq.Error{Code: "23505", Constraint: "users_username_key"})
	mock.ExpectRollback()
	mock.ExpectQuery("SELECT (.+) FROM users WHERE wallet_address").
		WithArgs(wallet).
		WillReturnRows(sqlmock.NewRows(userCols))

	_, _, err := s.CreateUserIfWalletAbsent(context.Background(), domain.NewUser{Username: "taken", WalletAddress: &wallet})
	ue, ok := domain.AsUniqueViolation(err)
	require.True(t, ok)
	assert.Equal(t, "username", ue.Field)
}

func TestGetUserNotFound(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery("SELECT (.+) FROM users WHERE id").
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows(userCols))

	u, err := s.GetUser(context.Background(), 404)
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestListGrantsEmpty(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery("SELECT (.+) FROM grants ORDER BY id").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	grants, err := s.ListGrants(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, grants)
	assert.Empty(t, grants)
}

func TestUpdateUserStatsUnknownUser(t *testing.T) {
	s, mock := newMockStore(t)
	followers := 10

	mock.ExpectQuery("INSERT INTO user_stats").
		WithArgs(int64(77), nil, nil, nil, followers).
		WillReturnError(&pq.Error{Code: "23503", Constraint: "user_stats_user_id_fkey"})

	_, err := s.UpdateUserStats(context.Background(), 77, domain.StatsPatch{FollowerCount: &followers})
	var refErr *domain.ReferenceError
	require.True(t, errors.As(err, &refErr))
	assert.Equal(t, "userId", refErr.Field)
	assert.Equal(t, int64(77), refErr.ID)
}

func TestTranslateLeavesOtherErrors(t *testing.T) {
	plain := errors.New("boom")
	assert.Same(t, plain, translate(plain, nil))

	unknown := &pq.Error{Code: "23505", Constraint: "something_else"}
	assert.Equal(t, error(unknown), translate(unknown, nil))
}
