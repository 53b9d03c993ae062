package chain

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/shopspring/decimal"

	"creon-backend/internal/domain"
)

// balanceOf(address) has the same selector on ERC-20 and ERC-721, so one
// ABI covers both token and NFT checks.
const erc20ABI = `[
	{"constant":true,"inputs":[{"name":"owner","type":"address"}],"name":"balanceOf","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
	{"constant":true,"inputs":[],"name":"decimals","outputs":[{"name":"","type":"uint8"}],"stateMutability":"view","type":"function"}
]`

const etherDecimals = 18

// Backend is the subset of ethclient.Client the oracle reads through.
type Backend interface {
	CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
	BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
}

// EVM answers balance and ownership questions against an Ethereum JSON-RPC
// node. Submission is delegated to a Stub.
type EVM struct {
	backend Backend
	abi     abi.ABI
	sim     *Stub
}

var _ Oracle = (*EVM)(nil)

// DialEVM connects to rpcURL.
func DialEVM(ctx context.Context, rpcURL string) (*EVM, *ethclient.Client, error) {
	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, nil, fmt.Errorf("dial rpc: %w", err)
	}
	e, err := NewEVM(client, NewStub())
	if err != nil {
		client.Close()
		return nil, nil, err
	}
	return e, client, nil
}

func NewEVM(backend Backend, sim *Stub) (*EVM, error) {
	parsed, err := abi.JSON(strings.NewReader(erc20ABI))
	if err != nil {
		return nil, fmt.Errorf("parse erc20 abi: %w", err)
	}
	if sim == nil {
		sim = NewStub()
	}
	return &EVM{backend: backend, abi: parsed, sim: sim}, nil
}

// CheckBalance reads balanceOf and decimals from token.Contract. Without a
// contract only ETH is known, read as the native balance.
func (e *EVM) CheckBalance(ctx context.Context, wallet string, token TokenRef) (decimal.Decimal, error) {
	owner, err := hexAddress("wallet", wallet)
	if err != nil {
		return decimal.Zero, err
	}

	if token.Contract == "" {
		if normalizeSymbol(token.Symbol) != "ETH" {
			return decimal.Zero, nil
		}
		wei, err := e.backend.BalanceAt(ctx, owner, nil)
		if err != nil {
			return decimal.Zero, fmt.Errorf("read native balance: %w", err)
		}
		return decimal.NewFromBigInt(wei, -etherDecimals), nil
	}

	contract, err := hexAddress("contract", token.Contract)
	if err != nil {
		return decimal.Zero, err
	}
	balance, err := e.balanceOf(ctx, contract, owner)
	if err != nil {
		return decimal.Zero, err
	}
	out, err := e.call(ctx, contract, "decimals")
	if err != nil {
		return decimal.Zero, err
	}
	decimals, ok := out[0].(uint8)
	if !ok {
		return decimal.Zero, fmt.Errorf("unexpected decimals type %T", out[0])
	}
	return decimal.NewFromBigInt(balance, -int32(decimals)), nil
}

// CheckOwnership reports whether wallet holds at least one token of the
// ERC-721 contract.
func (e *EVM) CheckOwnership(ctx context.Context, wallet, contract string) (bool, error) {
	owner, err := hexAddress("wallet", wallet)
	if err != nil {
		return false, err
	}
	collection, err := hexAddress("contract", contract)
	if err != nil {
		return false, err
	}
	balance, err := e.balanceOf(ctx, collection, owner)
	if err != nil {
		return false, err
	}
	return balance.Sign() > 0, nil
}

func (e *EVM) SubmitTransaction(ctx context.Context, tr Transfer) (string, error) {
	return e.sim.SubmitTransaction(ctx, tr)
}

func (e *EVM) balanceOf(ctx context.Context, contract, owner common.Address) (*big.Int, error) {
	out, err := e.call(ctx, contract, "balanceOf", owner)
	if err != nil {
		return nil, err
	}
	balance, ok := out[0].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("unexpected balanceOf type %T", out[0])
	}
	return balance, nil
}

func (e *EVM) call(ctx context.Context, contract common.Address, method string, args ...interface{}) ([]interface{}, error) {
	data, err := e.abi.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("pack %s: %w", method, err)
	}
	raw, err := e.backend.CallContract(ctx, ethereum.CallMsg{To: &contract, Data: data}, nil)
	if err != nil {
		return nil, fmt.Errorf("call %s on %s: %w", method, contract.Hex(), err)
	}
	out, err := e.abi.Unpack(method, raw)
	if err != nil {
		return nil, fmt.Errorf("unpack %s: %w", method, err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("empty %s result", method)
	}
	return out, nil
}

func hexAddress(field, addr string) (common.Address, error) {
	if !common.IsHexAddress(addr) {
		return common.Address{}, domain.NewValidationError(field, "must be a 20-byte hex address")
	}
	return common.HexToAddress(addr), nil
}
