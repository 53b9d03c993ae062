package chain

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xssnick/tonutils-go/address"
)

func TestTONCheckBalance(t *testing.T) {
	wallet := address.NewAddress(0, 0, bytes.Repeat([]byte{1}, 32)).String()
	jettonRaw := fmt.Sprintf("0:%x", bytes.Repeat([]byte{2}, 32))
	jettonFriendly := address.NewAddress(0, 0, bytes.Repeat([]byte{2}, 32)).String()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		switch {
		case strings.HasSuffix(r.URL.Path, "/jettons"):
			fmt.Fprintf(w, `{"balances":[{"balance":"2500000","jetton":{"address":%q,"symbol":"USDT","decimals":6}}]}`, jettonRaw)
		case strings.HasPrefix(r.URL.Path, "/v2/accounts/"):
			fmt.Fprint(w, `{"balance":3000000000}`)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	o := NewTON(srv.URL, "secret", nil)
	ctx := context.Background()

	native, err := o.CheckBalance(ctx, wallet, TokenRef{Symbol: "TON"})
	require.NoError(t, err)
	assert.True(t, native.Equal(decimal.NewFromInt(3)), native.String())

	byContract, err := o.CheckBalance(ctx, wallet, TokenRef{Contract: jettonFriendly})
	require.NoError(t, err)
	assert.True(t, byContract.Equal(decimal.RequireFromString("2.5")), byContract.String())

	bySymbol, err := o.CheckBalance(ctx, wallet, TokenRef{Symbol: "usdt"})
	require.NoError(t, err)
	assert.True(t, bySymbol.Equal(decimal.RequireFromString("2.5")))

	missing, err := o.CheckBalance(ctx, wallet, TokenRef{Symbol: "CREATOR"})
	require.NoError(t, err)
	assert.True(t, missing.IsZero())
}

func TestTONCheckOwnership(t *testing.T) {
	wallet := address.NewAddress(0, 0, bytes.Repeat([]byte{1}, 32)).String()
	owned := address.NewAddress(0, 0, bytes.Repeat([]byte{3}, 32)).String()
	other := address.NewAddress(0, 0, bytes.Repeat([]byte{4}, 32)).String()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "1", r.URL.Query().Get("limit"))
		if r.URL.Query().Get("collection") == owned {
			fmt.Fprint(w, `{"nft_items":[{"address":"0:00"}]}`)
			return
		}
		fmt.Fprint(w, `{"nft_items":[]}`)
	}))
	defer srv.Close()

	o := NewTON(srv.URL, "", nil)

	yes, err := o.CheckOwnership(context.Background(), wallet, owned)
	require.NoError(t, err)
	assert.True(t, yes)

	no, err := o.CheckOwnership(context.Background(), wallet, other)
	require.NoError(t, err)
	assert.False(t, no)
}

func TestTONUpstreamError(t *testing.T) {
	wallet := address.NewAddress(0, 0, bytes.Repeat([]byte{1}, 32)).String()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := NewTON(srv.URL, "", nil).CheckBalance(context.Background(), wallet, TokenRef{Symbol: "TON"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tonapi http 429")
}
