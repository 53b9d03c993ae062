package chain

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xssnick/tonutils-go/address"

	apperrors "creon-backend/internal/common/errors"
	"creon-backend/internal/domain"
)

func TestNormalizeAddress(t *testing.T) {
	solana := base58.Encode(bytes.Repeat([]byte{7}, 32))

	tests := []struct {
		name       string
		walletType domain.WalletType
		addr       string
		want       string
		wantErr    bool
	}{
		{"metamask lower-cased", domain.WalletMetaMask, "0xAbCdEf0123456789aBcDeF0123456789AbCdEf01", "0xabcdef0123456789abcdef0123456789abcdef01", false},
		{"metamask trimmed", domain.WalletMetaMask, "  0x00000000000000000000000000000000000000aa ", "0x00000000000000000000000000000000000000aa", false},
		{"metamask too short", domain.WalletMetaMask, "0x1234", "", true},
		{"metamask not hex", domain.WalletMetaMask, "0xzz00000000000000000000000000000000000000", "", true},
		{"phantom kept", domain.WalletPhantom, solana, solana, false},
		{"phantom wrong length", domain.WalletPhantom, base58.Encode([]byte{1, 2, 3}), "", true},
		{"phantom bad alphabet", domain.WalletPhantom, "0OIl", "", true},
		{"tonkeeper garbage", domain.WalletTonkeeper, "not-a-ton-address", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeAddress(tt.walletType, tt.addr)
			if tt.wantErr {
				appErr, ok := apperrors.AsAppError(err)
				require.True(t, ok)
				assert.Equal(t, apperrors.ErrCodeInvalidWallet, appErr.Code)
				assert.Equal(t, "walletAddress", appErr.Details["field"])
				assert.True(t, appErr.IsValidation())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("empty", func(t *testing.T) {
		_, err := NormalizeAddress(domain.WalletMetaMask, " ")
		var ve *domain.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "walletAddress", ve.Field)
	})
}

func TestNormalizeTONAddressForms(t *testing.T) {
	data := bytes.Repeat([]byte{0xab}, 32)
	base := address.NewAddress(0, 0, data)
	forms := map[string]string{
		"bounceable":     base.Bounce(true).String(),
		"non-bounceable": base.Bounce(false).String(),
		"testnet":        base.Bounce(false).Testnet(true).String(),
		"raw":            fmt.Sprintf("0:%x", data),
	}
	require.NotEqual(t, forms["bounceable"], forms["non-bounceable"])

	want := base.Bounce(true).Testnet(false).String()
	for name, form := range forms {
		t.Run(name, func(t *testing.T) {
			got, err := NormalizeAddress(domain.WalletTonkeeper, form)
			require.NoError(t, err)
			assert.Equal(t, want, got)
			assert.Equal(t, want, CanonicalAddress(form))
		})
	}
}

func TestCanonicalAddress(t *testing.T) {
	solana := base58.Encode(bytes.Repeat([]byte{7}, 32))
	assert.Equal(t, "0xabcdef0123456789abcdef0123456789abcdef01", CanonicalAddress(" 0xABCDEF0123456789ABCDEF0123456789ABCDEF01"))
	assert.Equal(t, solana, CanonicalAddress(solana))
	assert.Equal(t, "whatever", CanonicalAddress("whatever"))
}

func TestValidateAddressField(t *testing.T) {
	err := ValidateAddress(domain.WalletMetaMask, "nope")
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeInvalidWallet, appErr.Code)

	err = ValidateAddress("ledger", "nope")
	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "walletType", ve.Field)
}
