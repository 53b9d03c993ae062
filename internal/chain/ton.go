package chain

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"creon-backend/internal/domain"
)

const (
	defaultTonAPIURL = "https://tonapi.io"
	tonDecimals      = 9
)

// TON implements balance and ownership checks via TonAPI HTTP. Submission is
// delegated to a Stub.
type TON struct {
	tonapiBase  string
	tonapiToken string
	httpClient  *http.Client
	sim         *Stub
}

var _ Oracle = (*TON)(nil)

// NewTON initializes TonAPI-based oracle.
func NewTON(baseURL, apiToken string, sim *Stub) *TON {
	if baseURL == "" {
		baseURL = defaultTonAPIURL
	}
	if sim == nil {
		sim = NewStub()
	}
	return &TON{
		tonapiBase:  strings.TrimRight(baseURL, "/"),
		tonapiToken: apiToken,
		httpClient:  &http.Client{Timeout: 8 * time.Second},
		sim:         sim,
	}
}

// CheckBalance returns the native TON balance when no contract is given and
// the symbol is TON, otherwise the matching jetton balance.
func (t *TON) CheckBalance(ctx context.Context, wallet string, token TokenRef) (decimal.Decimal, error) {
	owner, err := tonWallet(wallet)
	if err != nil {
		return decimal.Zero, err
	}
	symbol := normalizeSymbol(token.Symbol)

	if token.Contract == "" && symbol == "TON" {
		var out struct {
			Balance decimal.Decimal `json:"balance"`
		}
		if err := t.get(ctx, "/v2/accounts/"+url.PathEscape(owner), nil, &out); err != nil {
			return decimal.Zero, err
		}
		return out.Balance.Shift(-tonDecimals), nil
	}

	var out struct {
		Balances []struct {
			Balance decimal.Decimal `json:"balance"`
			Jetton  struct {
				Address  string `json:"address"`
				Symbol   string `json:"symbol"`
				Decimals int32  `json:"decimals"`
			} `json:"jetton"`
		} `json:"balances"`
	}
	if err := t.get(ctx, "/v2/accounts/"+url.PathEscape(owner)+"/jettons", nil, &out); err != nil {
		return decimal.Zero, err
	}
	for _, b := range out.Balances {
		matched := false
		if token.Contract != "" {
			matched = sameTONAddress(b.Jetton.Address, token.Contract)
		} else {
			matched = normalizeSymbol(b.Jetton.Symbol) == symbol
		}
		if matched {
			return b.Balance.Shift(-b.Jetton.Decimals), nil
		}
	}
	return decimal.Zero, nil
}

// CheckOwnership asks for at most one item of the collection held by wallet.
func (t *TON) CheckOwnership(ctx context.Context, wallet, contract string) (bool, error) {
	owner, err := tonWallet(wallet)
	if err != nil {
		return false, err
	}
	if _, err := parseTONAddress(contract); err != nil {
		return false, domain.NewValidationError("contract", "must be a TON address")
	}

	var out struct {
		Items []json.RawMessage `json:"nft_items"`
	}
	query := url.Values{"collection": {contract}, "limit": {"1"}}
	if err := t.get(ctx, "/v2/accounts/"+url.PathEscape(owner)+"/nfts", query, &out); err != nil {
		return false, err
	}
	return len(out.Items) > 0, nil
}

func (t *TON) SubmitTransaction(ctx context.Context, tr Transfer) (string, error) {
	return t.sim.SubmitTransaction(ctx, tr)
}

func (t *TON) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	u := t.tonapiBase + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if t.tonapiToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.tonapiToken)
	}
	resp, err := t.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("tonapi http %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func tonWallet(wallet string) (string, error) {
	a, err := parseTONAddress(wallet)
	if err != nil {
		return "", domain.NewValidationError("wallet", "must be a TON address")
	}
	return a.String(), nil
}

// sameTONAddress compares two addresses regardless of raw or user-friendly form.
func sameTONAddress(a, b string) bool {
	pa, errA := parseTONAddress(a)
	pb, errB := parseTONAddress(b)
	if errA != nil || errB != nil {
		return strings.EqualFold(a, b)
	}
	return pa.Workchain() == pb.Workchain() && bytes.Equal(pa.Data(), pb.Data())
}
