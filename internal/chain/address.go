package chain

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/mr-tron/base58"
	"github.com/xssnick/tonutils-go/address"

	"creon-backend/internal/common/errors"
	"creon-backend/internal/domain"
)

const solanaAddressLength = 32

// NormalizeAddress checks addr against the format of walletType and returns
// its canonical form: lower-case 0x-prefixed hex for metamask, the input for
// phantom, and the bounceable mainnet form for tonkeeper. A malformed address
// yields an INVALID_WALLET error.
func NormalizeAddress(walletType domain.WalletType, addr string) (string, error) {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return "", domain.NewValidationError("walletAddress", "is required")
	}

	switch walletType {
	case domain.WalletMetaMask:
		if !common.IsHexAddress(addr) {
			return "", errors.NewInvalidWalletError(string(walletType), "must be a 20-byte hex address")
		}
		return strings.ToLower(common.HexToAddress(addr).Hex()), nil
	case domain.WalletPhantom:
		raw, err := base58.Decode(addr)
		if err != nil || len(raw) != solanaAddressLength {
			return "", errors.NewInvalidWalletError(string(walletType), "must be a base58 encoded 32-byte key")
		}
		return addr, nil
	case domain.WalletTonkeeper:
		a, err := parseTONAddress(addr)
		if err != nil {
			return "", errors.NewInvalidWalletError(string(walletType), "must be a TON address")
		}
		return canonicalTON(a), nil
	default:
		return "", domain.NewValidationError("walletType", "must be one of metamask, phantom, tonkeeper")
	}
}

// ValidateAddress is NormalizeAddress without the result.
func ValidateAddress(walletType domain.WalletType, addr string) error {
	_, err := NormalizeAddress(walletType, addr)
	return err
}

// parseTONAddress accepts both the user-friendly and the raw workchain:hex form.
func parseTONAddress(addr string) (*address.Address, error) {
	if strings.Contains(addr, ":") {
		return address.ParseRawAddr(addr)
	}
	return address.ParseAddr(addr)
}

// canonicalTON drops the bounce and testnet flags, which differ between
// renderings of one account (EQ.., UQ.., kQ..).
func canonicalTON(a *address.Address) string {
	return a.Bounce(true).Testnet(false).String()
}

// CanonicalAddress returns the lookup form of an address whose wallet type is
// unknown: hex addresses are lower-cased, TON addresses take their canonical
// form, anything else is only trimmed.
func CanonicalAddress(addr string) string {
	addr = strings.TrimSpace(addr)
	if common.IsHexAddress(addr) {
		return strings.ToLower(common.HexToAddress(addr).Hex())
	}
	if a, err := parseTONAddress(addr); err == nil {
		return canonicalTON(a)
	}
	return addr
}
