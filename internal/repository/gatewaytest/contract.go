// Package gatewaytest holds the behavioural contract every domain.Gateway
// implementation must satisfy.
package gatewaytest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"creon-backend/internal/domain"
)

// Factory returns an empty gateway private to the calling test.
type Factory func(t *testing.T) domain.Gateway

// StatsDropper deletes a user's stats row behind the gateway's back to
// simulate a broken invariant. Nil skips the recovery cases.
type StatsDropper func(t *testing.T, g domain.Gateway, userID int64)

func Run(t *testing.T, newGateway Factory, dropStats StatsDropper) {
	cases := []struct {
		name string
		fn   func(t *testing.T, g domain.Gateway)
	}{
		{"CreateUserCreatesZeroStats", testCreateUserCreatesZeroStats},
		{"UniqueUserFields", testUniqueUserFields},
		{"AbsentRowsAreNil", testAbsentRowsAreNil},
		{"UpdateUser", testUpdateUser},
		{"CreateUserIfWalletAbsent", testCreateUserIfWalletAbsent},
		{"ConcurrentWalletUpsert", testConcurrentWalletUpsert},
		{"NFTs", testNFTs},
		{"Grants", testGrants},
		{"GrantApplicationForcesPending", testGrantApplicationForcesPending},
		{"GrantApplicationReferences", testGrantApplicationReferences},
		{"TipScenario", testTipScenario},
		{"TipDecimalExactness", testTipDecimalExactness},
		{"TipReceivedAndSent", testTipReceivedAndSent},
		{"TipReferences", testTipReferences},
		{"ConcurrentTips", testConcurrentTips},
		{"TipEarningsOverflow", testTipEarningsOverflow},
		{"Content", testContent},
		{"UpdateUserStats", testUpdateUserStats},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			tc.fn(t, newGateway(t))
		})
	}

	if dropStats == nil {
		return
	}
	t.Run("TipRecreatesMissingStats", func(t *testing.T) {
		g := newGateway(t)
		ctx := context.Background()
		from := mustUser(t, g, "sender")
		to := mustUser(t, g, "recipient")
		dropStats(t, g, to.ID)

		receipt, err := g.CreateTip(ctx, domain.NewTip{FromUserID: from.ID, ToUserID: to.ID, Amount: domain.MustAmount("4.20")})
		require.NoError(t, err)
		assert.True(t, receipt.StatsRecovered)
		assert.Equal(t, 1, receipt.Stats.TipCount)
		assert.Equal(t, "4.20", receipt.Stats.TotalEarnings.String())

		receipt, err = g.CreateTip(ctx, domain.NewTip{FromUserID: from.ID, ToUserID: to.ID, Amount: domain.MustAmount("1.00")})
		require.NoError(t, err)
		assert.False(t, receipt.StatsRecovered)
		assert.Equal(t, 2, receipt.Stats.TipCount)
	})
	t.Run("UpdateUserStatsCreatesMissingRow", func(t *testing.T) {
		g := newGateway(t)
		ctx := context.Background()
		u := mustUser(t, g, "lazy")
		dropStats(t, g, u.ID)

		st, err := g.GetUserStats(ctx, u.ID)
		require.NoError(t, err)
		assert.Nil(t, st)

		followers := 12
		st, err = g.UpdateUserStats(ctx, u.ID, domain.StatsPatch{FollowerCount: &followers})
		require.NoError(t, err)
		assert.Equal(t, 12, st.FollowerCount)
		assert.Equal(t, 0, st.TipCount)
		assert.Equal(t, "0.00", st.TotalEarnings.String())
	})
}

func strPtr(s string) *string { return &s }

func mustUser(t *testing.T, g domain.Gateway, username string) *domain.User {
	t.Helper()
	u, err := g.CreateUser(context.Background(), domain.NewUser{
		Username: username,
		Email:    username + "@creon.example",
		Name:     username,
	})
	require.NoError(t, err)
	return u
}

func mustGrant(t *testing.T, g domain.Gateway, title string) *domain.Grant {
	t.Helper()
	gr, err := g.CreateGrant(context.Background(), domain.NewGrant{
		Title:        title,
		Description:  "funding for " + title,
		Amount:       domain.MustAmount("1000.00"),
		Currency:     "USD",
		Organization: "Creon DAO",
		Deadline:     time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	return gr
}

func testCreateUserCreatesZeroStats(t *testing.T, g domain.Gateway) {
	ctx := context.Background()
	wallet := domain.WalletPhantom
	u, err := g.CreateUser(ctx, domain.NewUser{
		Username:      "u1",
		Email:         "u1@creon.example",
		Name:          "User One",
		WalletAddress: strPtr("9xQeWvG816bUx9EPjHmaT23yvVM2ZWbrrpZb9PusVFin"),
		WalletType:    &wallet,
	})
	require.NoError(t, err)
	assert.NotZero(t, u.ID)
	assert.False(t, u.IsVerified)
	assert.False(t, u.CreatedAt.IsZero())

	got, err := g.GetUser(ctx, u.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "u1", got.Username)
	require.NotNil(t, got.WalletType)
	assert.Equal(t, domain.WalletPhantom, *got.WalletType)

	st, err := g.GetUserStats(ctx, u.ID)
	require.NoError(t, err)
	require.NotNil(t, st)
	assert.Equal(t, u.ID, st.UserID)
	assert.Equal(t, 0, st.TipCount)
	assert.Equal(t, 0, st.CreationCount)
	assert.Equal(t, 0, st.FollowerCount)
	assert.Equal(t, "0.00", st.TotalEarnings.String())
}

func testUniqueUserFields(t *testing.T, g domain.Gateway) {
	ctx := context.Background()
	_, err := g.CreateUser(ctx, domain.NewUser{Username: "taken", Email: "taken@creon.example", Name: "T", WalletAddress: strPtr("0xaaaa")})
	require.NoError(t, err)

	tests := []struct {
		field string
		user  domain.NewUser
	}{
		{"username", domain.NewUser{Username: "taken", Email: "other@creon.example", Name: "T"}},
		{"email", domain.NewUser{Username: "other", Email: "taken@creon.example", Name: "T"}},
		{"walletAddress", domain.NewUser{Username: "other2", Email: "other2@creon.example", Name: "T", WalletAddress: strPtr("0xaaaa")}},
	}
	for _, tt := range tests {
		_, err := g.CreateUser(ctx, tt.user)
		require.Error(t, err, tt.field)
		assert.True(t, errors.Is(err, domain.ErrUniqueViolation), tt.field)
		ue, ok := domain.AsUniqueViolation(err)
		require.True(t, ok)
		assert.Equal(t, tt.field, ue.Field)
	}

	// a failed insert must not leave a stats row behind
	other, err := g.CreateUser(ctx, domain.NewUser{Username: "other", Email: "other@creon.example", Name: "T"})
	require.NoError(t, err)
	st, err := g.GetUserStats(ctx, other.ID)
	require.NoError(t, err)
	require.NotNil(t, st)
}

func testAbsentRowsAreNil(t *testing.T, g domain.Gateway) {
	ctx := context.Background()

	u, err := g.GetUser(ctx, 999999)
	require.NoError(t, err)
	assert.Nil(t, u)

	u, err = g.GetUserByWallet(ctx, "0xnobody")
	require.NoError(t, err)
	assert.Nil(t, u)

	gr, err := g.GetGrant(ctx, 999999)
	require.NoError(t, err)
	assert.Nil(t, gr)

	c, err := g.GetContent(ctx, 999999)
	require.NoError(t, err)
	assert.Nil(t, c)

	st, err := g.GetUserStats(ctx, 999999)
	require.NoError(t, err)
	assert.Nil(t, st)

	name := "ghost"
	u, err = g.UpdateUser(ctx, 999999, domain.UserPatch{Name: &name})
	require.NoError(t, err)
	assert.Nil(t, u)

	nfts, err := g.GetNFTsByUserID(ctx, 999999)
	require.NoError(t, err)
	assert.NotNil(t, nfts)
	assert.Empty(t, nfts)

	apps, err := g.GetGrantApplicationsByUserID(ctx, 999999)
	require.NoError(t, err)
	assert.NotNil(t, apps)
	assert.Empty(t, apps)

	tips, err := g.GetTipsByUserID(ctx, 999999)
	require.NoError(t, err)
	assert.NotNil(t, tips)
	assert.Empty(t, tips)
}

func testUpdateUser(t *testing.T, g domain.Gateway) {
	ctx := context.Background()
	u := mustUser(t, g, "patchme")
	mustUser(t, g, "neighbour")

	bio := "Painter"
	verified := true
	updated, err := g.UpdateUser(ctx, u.ID, domain.UserPatch{Bio: &bio, IsVerified: &verified})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "patchme", updated.Username)
	require.NotNil(t, updated.Bio)
	assert.Equal(t, "Painter", *updated.Bio)
	assert.True(t, updated.IsVerified)
	assert.Equal(t, u.CreatedAt.Unix(), updated.CreatedAt.Unix())

	clash := "neighbour"
	_, err = g.UpdateUser(ctx, u.ID, domain.UserPatch{Username: &clash})
	assert.True(t, errors.Is(err, domain.ErrUniqueViolation))

	got, err := g.GetUser(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "patchme", got.Username)
}

func testCreateUserIfWalletAbsent(t *testing.T, g domain.Gateway) {
	ctx := context.Background()
	wallet := domain.WalletMetaMask
	nu := domain.NewUser{
		Username:      "user_345678",
		Email:         "345678@creon.example",
		Name:          "New Creator",
		WalletAddress: strPtr("0x1111111111111111111111111111111111345678"),
		WalletType:    &wallet,
	}

	first, created, err := g.CreateUserIfWalletAbsent(ctx, nu)
	require.NoError(t, err)
	assert.True(t, created)

	second, created, err := g.CreateUserIfWalletAbsent(ctx, nu)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)

	byWallet, err := g.GetUserByWallet(ctx, *nu.WalletAddress)
	require.NoError(t, err)
	require.NotNil(t, byWallet)
	assert.Equal(t, first.ID, byWallet.ID)

	// a different wallet colliding on username is a unique violation, not a
	// silent reuse of the existing account
	other := nu
	other.WalletAddress = strPtr("0x2222222222222222222222222222222222345678")
	_, _, err = g.CreateUserIfWalletAbsent(ctx, other)
	require.Error(t, err)
	ue, ok := domain.AsUniqueViolation(err)
	require.True(t, ok)
	assert.Equal(t, "username", ue.Field)
}

func testConcurrentWalletUpsert(t *testing.T, g domain.Gateway) {
	ctx := context.Background()
	nu := domain.NewUser{
		Username:      "user_race01",
		Email:         "race01@creon.example",
		Name:          "New Creator",
		WalletAddress: strPtr("0x00000000000000000000000000000000race01"),
	}

	const n = 10
	ids := make([]int64, n)
	createdCount := make([]bool, n)
	var eg errgroup.Group
	for i := 0; i < n; i++ {
		i := i
		eg.Go(func() error {
			u, created, err := g.CreateUserIfWalletAbsent(ctx, nu)
			if err != nil {
				return err
			}
			ids[i] = u.ID
			createdCount[i] = created
			return nil
		})
	}
	require.NoError(t, eg.Wait())

	creations := 0
	for i := 0; i < n; i++ {
		assert.Equal(t, ids[0], ids[i])
		if createdCount[i] {
			creations++
		}
	}
	assert.Equal(t, 1, creations)
}

func testNFTs(t *testing.T, g domain.Gateway) {
	ctx := context.Background()
	owner := mustUser(t, g, "collector")
	other := mustUser(t, g, "bystander")

	for i := 1; i <= 3; i++ {
		_, err := g.CreateNFT(ctx, domain.NewNFT{
			UserID:          owner.ID,
			TokenID:         fmt.Sprint(i),
			ContractAddress: "0xabcd1234",
			Name:            fmt.Sprintf("Piece #%d", i),
			ImageURL:        "https://example.com/piece.png",
			Metadata:        json.RawMessage(`{"edition":1}`),
			Blockchain:      domain.BlockchainEthereum,
		})
		require.NoError(t, err)
	}

	list, err := g.GetNFTsByUserID(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "1", list[0].TokenID)
	assert.Equal(t, "3", list[2].TokenID)
	assert.JSONEq(t, `{"edition":1}`, string(list[0].Metadata))

	list, err = g.GetNFTsByUserID(ctx, other.ID)
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = g.CreateNFT(ctx, domain.NewNFT{UserID: 999999, TokenID: "9", ContractAddress: "0x1", Name: "x", ImageURL: "x", Blockchain: domain.BlockchainTON})
	assert.True(t, errors.Is(err, domain.ErrReferenceNotFound))
}

func testGrants(t *testing.T, g domain.Gateway) {
	ctx := context.Background()
	a := mustGrant(t, g, "Alpha")
	b := mustGrant(t, g, "Beta")
	assert.Equal(t, domain.GrantOpen, a.Status)
	assert.Equal(t, 0, a.ApplicationCount)

	list, err := g.ListGrants(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, a.ID, list[0].ID)
	assert.Equal(t, b.ID, list[1].ID)
	assert.Equal(t, "1000.00", list[0].Amount.String())

	got, err := g.GetGrant(ctx, b.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Beta", got.Title)
	assert.True(t, got.Deadline.Equal(time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func testGrantApplicationForcesPending(t *testing.T, g domain.Gateway) {
	ctx := context.Background()
	u := mustUser(t, g, "applicant")
	gr := mustGrant(t, g, "Gamma")

	app, err := g.CreateGrantApplication(ctx, domain.NewGrantApplication{
		UserID:             u.ID,
		GrantID:            gr.ID,
		ProjectTitle:       "Open palette",
		ProjectDescription: "Shared colour tools",
		RequestedAmount:    domain.MustAmount("750.50"),
		Portfolio:          strPtr("https://portfolio.example"),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ApplicationPending, app.Status)
	assert.Equal(t, "750.50", app.RequestedAmount.String())

	_, err = g.CreateGrantApplication(ctx, domain.NewGrantApplication{
		UserID: u.ID, GrantID: gr.ID, ProjectTitle: "Second", ProjectDescription: "again", RequestedAmount: domain.MustAmount("1"),
	})
	require.NoError(t, err)

	after, err := g.GetGrant(ctx, gr.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, after.ApplicationCount)

	apps, err := g.GetGrantApplicationsByUserID(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, apps, 2)
	assert.Equal(t, app.ID, apps[0].ID)
	for _, a := range apps {
		assert.Equal(t, domain.ApplicationPending, a.Status)
	}
}

func testGrantApplicationReferences(t *testing.T, g domain.Gateway) {
	ctx := context.Background()
	u := mustUser(t, g, "applicant2")
	gr := mustGrant(t, g, "Delta")

	_, err := g.CreateGrantApplication(ctx, domain.NewGrantApplication{
		UserID: u.ID, GrantID: 999999, ProjectTitle: "x", ProjectDescription: "y", RequestedAmount: domain.MustAmount("1"),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrReferenceNotFound))

	_, err = g.CreateGrantApplication(ctx, domain.NewGrantApplication{
		UserID: 999999, GrantID: gr.ID, ProjectTitle: "x", ProjectDescription: "y", RequestedAmount: domain.MustAmount("1"),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrReferenceNotFound))

	after, err := g.GetGrant(ctx, gr.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, after.ApplicationCount)

	apps, err := g.GetGrantApplicationsByUserID(ctx, u.ID)
	require.NoError(t, err)
	assert.Empty(t, apps)
}

func testTipScenario(t *testing.T, g domain.Gateway) {
	ctx := context.Background()
	u1 := mustUser(t, g, "u1")
	u2 := mustUser(t, g, "u2")

	receipt, err := g.CreateTip(ctx, domain.NewTip{
		FromUserID:      u1.ID,
		ToUserID:        u2.ID,
		Amount:          domain.MustAmount("5.00"),
		Message:         strPtr("great work"),
		TransactionHash: strPtr("0xfeed"),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.TipPending, receipt.Tip.Status)
	assert.Equal(t, domain.DefaultCurrency, receipt.Tip.Currency)
	assert.False(t, receipt.StatsRecovered)
	assert.Equal(t, 1, receipt.Stats.TipCount)
	assert.Equal(t, "5.00", receipt.Stats.TotalEarnings.String())

	_, err = g.CreateTip(ctx, domain.NewTip{FromUserID: u1.ID, ToUserID: u2.ID, Amount: domain.MustAmount("2.50"), Currency: "SOL"})
	require.NoError(t, err)

	st, err := g.GetUserStats(ctx, u2.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, st.TipCount)
	assert.Equal(t, "7.50", st.TotalEarnings.String())

	senderStats, err := g.GetUserStats(ctx, u1.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, senderStats.TipCount)
	assert.Equal(t, "0.00", senderStats.TotalEarnings.String())
}

func testTipDecimalExactness(t *testing.T, g domain.Gateway) {
	ctx := context.Background()
	from := mustUser(t, g, "payer")
	to := mustUser(t, g, "payee")

	for i := 0; i < 10; i++ {
		for _, amt := range []string{"0.10", "0.20"} {
			_, err := g.CreateTip(ctx, domain.NewTip{FromUserID: from.ID, ToUserID: to.ID, Amount: domain.MustAmount(amt)})
			require.NoError(t, err)
		}
	}

	st, err := g.GetUserStats(ctx, to.ID)
	require.NoError(t, err)
	assert.Equal(t, 20, st.TipCount)
	assert.Equal(t, "3.00", st.TotalEarnings.String())
	assert.True(t, st.TotalEarnings.Equal(domain.MustAmount("3")))
}

func testTipReceivedAndSent(t *testing.T, g domain.Gateway) {
	ctx := context.Background()
	a := mustUser(t, g, "a")
	b := mustUser(t, g, "b")

	_, err := g.CreateTip(ctx, domain.NewTip{FromUserID: a.ID, ToUserID: b.ID, Amount: domain.MustAmount("1.00")})
	require.NoError(t, err)
	_, err = g.CreateTip(ctx, domain.NewTip{FromUserID: b.ID, ToUserID: a.ID, Amount: domain.MustAmount("2.00")})
	require.NoError(t, err)
	_, err = g.CreateTip(ctx, domain.NewTip{FromUserID: a.ID, ToUserID: b.ID, Amount: domain.MustAmount("3.00")})
	require.NoError(t, err)

	received, err := g.GetTipsByUserID(ctx, b.ID)
	require.NoError(t, err)
	require.Len(t, received, 2)
	assert.Equal(t, "1.00", received[0].Amount.String())
	assert.Equal(t, "3.00", received[1].Amount.String())
	for _, tip := range received {
		assert.Equal(t, b.ID, tip.ToUserID)
	}

	sent, err := g.GetSentTipsByUserID(ctx, b.ID)
	require.NoError(t, err)
	require.Len(t, sent, 1)
	assert.Equal(t, a.ID, sent[0].ToUserID)
}

func testTipReferences(t *testing.T, g domain.Gateway) {
	ctx := context.Background()
	u := mustUser(t, g, "lonely")

	_, err := g.CreateTip(ctx, domain.NewTip{FromUserID: u.ID, ToUserID: 999999, Amount: domain.MustAmount("1.00")})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrReferenceNotFound))

	_, err = g.CreateTip(ctx, domain.NewTip{FromUserID: 999999, ToUserID: u.ID, Amount: domain.MustAmount("1.00")})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrReferenceNotFound))

	st, err := g.GetUserStats(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, st.TipCount)
	assert.Equal(t, "0.00", st.TotalEarnings.String())

	received, err := g.GetTipsByUserID(ctx, u.ID)
	require.NoError(t, err)
	assert.Empty(t, received)
}

func testConcurrentTips(t *testing.T, g domain.Gateway) {
	ctx := context.Background()
	to := mustUser(t, g, "popular")
	const senders = 5
	const perSender = 10

	from := make([]*domain.User, senders)
	for i := range from {
		from[i] = mustUser(t, g, fmt.Sprintf("fan%d", i))
	}

	var eg errgroup.Group
	for i := 0; i < senders; i++ {
		sender := from[i]
		for j := 0; j < perSender; j++ {
			eg.Go(func() error {
				_, err := g.CreateTip(ctx, domain.NewTip{FromUserID: sender.ID, ToUserID: to.ID, Amount: domain.MustAmount("0.10")})
				return err
			})
		}
	}
	require.NoError(t, eg.Wait())

	st, err := g.GetUserStats(ctx, to.ID)
	require.NoError(t, err)
	assert.Equal(t, senders*perSender, st.TipCount)
	assert.Equal(t, "5.00", st.TotalEarnings.String())

	received, err := g.GetTipsByUserID(ctx, to.ID)
	require.NoError(t, err)
	assert.Len(t, received, senders*perSender)
}

func testTipEarningsOverflow(t *testing.T, g domain.Gateway) {
	ctx := context.Background()
	from := mustUser(t, g, "whale")
	to := mustUser(t, g, "creator")

	nearMax := domain.MustAmount("99999999.00")
	_, err := g.UpdateUserStats(ctx, to.ID, domain.StatsPatch{TotalEarnings: &nearMax})
	require.NoError(t, err)

	receipt, err := g.CreateTip(ctx, domain.NewTip{FromUserID: from.ID, ToUserID: to.ID, Amount: domain.MustAmount("0.99")})
	require.NoError(t, err)
	assert.Equal(t, "99999999.99", receipt.Stats.TotalEarnings.String())

	_, err = g.CreateTip(ctx, domain.NewTip{FromUserID: from.ID, ToUserID: to.ID, Amount: domain.MustAmount("0.01")})
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "amount", ve.Field)

	st, err := g.GetUserStats(ctx, to.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, st.TipCount)
	assert.Equal(t, "99999999.99", st.TotalEarnings.String())

	received, err := g.GetTipsByUserID(ctx, to.ID)
	require.NoError(t, err)
	assert.Len(t, received, 1)
}

func testContent(t *testing.T, g domain.Gateway) {
	ctx := context.Background()
	amount := 5
	active, err := g.CreateContent(ctx, domain.NewTokenGatedContent{
		Title:                   "Pro Designer Pack",
		Description:             "50+ premium templates",
		ImageURL:                "https://example.com/pack.png",
		RequiredTokenType:       domain.TokenTypeToken,
		RequiredTokenAmount:     &amount,
		RequiredContractAddress: strPtr("0xtoken123"),
		RequiredTokenSymbol:     strPtr("CREATOR"),
		ContentType:             domain.ContentTemplate,
		IsActive:                true,
	})
	require.NoError(t, err)

	_, err = g.CreateContent(ctx, domain.NewTokenGatedContent{
		Title:             "Retired",
		Description:       "gone",
		ImageURL:          "https://example.com/old.png",
		RequiredTokenType: domain.TokenTypeNFT,
		ContentType:       domain.ContentAsset,
		IsActive:          false,
	})
	require.NoError(t, err)

	list, err := g.ListActiveContent(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, active.ID, list[0].ID)
	require.NotNil(t, list[0].RequiredTokenAmount)
	assert.Equal(t, 5, *list[0].RequiredTokenAmount)

	got, err := g.GetContent(ctx, active.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "CREATOR", *got.RequiredTokenSymbol)
}

func testUpdateUserStats(t *testing.T, g domain.Gateway) {
	ctx := context.Background()
	u := mustUser(t, g, "stat")

	creations := 3
	earnings := domain.MustAmount("10.05")
	st, err := g.UpdateUserStats(ctx, u.ID, domain.StatsPatch{CreationCount: &creations, TotalEarnings: &earnings})
	require.NoError(t, err)
	assert.Equal(t, 3, st.CreationCount)
	assert.Equal(t, "10.05", st.TotalEarnings.String())
	assert.Equal(t, 0, st.FollowerCount)

	followers := 40
	st, err = g.UpdateUserStats(ctx, u.ID, domain.StatsPatch{FollowerCount: &followers})
	require.NoError(t, err)
	assert.Equal(t, 3, st.CreationCount)
	assert.Equal(t, 40, st.FollowerCount)

	_, err = g.UpdateUserStats(ctx, 999999, domain.StatsPatch{FollowerCount: &followers})
	assert.True(t, errors.Is(err, domain.ErrReferenceNotFound))
}
