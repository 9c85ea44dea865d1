// VulcanizeDB
// Copyright © 2018 Vulcanize

// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.

// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.

// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package transport

import (
	"context"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
)

// Transport reads contract state, submits transactions and looks up balances.
// Errors are returned to callers unchanged.
type Transport interface {
	Call(ctx context.Context, contract Contract, method string, args ...interface{}) ([]interface{}, error)
	Transact(ctx context.Context, contract Contract, params TxParams, method string, args ...interface{}) (common.Hash, error)
	BalanceAt(ctx context.Context, account common.Address) (*big.Int, error)
}

type Contract struct {
	Address common.Address
	ABI     abi.ABI
}

func NewContract(address common.Address, abiString string) (Contract, error) {
	parsed, err := abi.JSON(strings.NewReader(abiString))
	if err != nil {
		return Contract{}, err
	}
	return Contract{Address: address, ABI: parsed}, nil
}

// Transaction parameters; zero values are filled in by the backend
type TxParams struct {
	From     common.Address
	Value    *big.Int
	GasLimit uint64
	GasPrice *big.Int
	Nonce    *big.Int
	Signer   bind.SignerFn
}

type Backend interface {
	bind.ContractBackend
	BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
}

// EthTransport talks to an Ethereum node through go-ethereum's contract bindings
type EthTransport struct {
	backend Backend
}

func NewEthTransport(backend Backend) *EthTransport {
	return &EthTransport{backend: backend}
}

func (t *EthTransport) Call(ctx context.Context, contract Contract, method string, args ...interface{}) ([]interface{}, error) {
	var out []interface{}
	err := t.bind(contract).Call(&bind.CallOpts{Context: ctx}, &out, method, args...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (t *EthTransport) Transact(ctx context.Context, contract Contract, params TxParams, method string, args ...interface{}) (common.Hash, error) {
	opts := &bind.TransactOpts{
		From:     params.From,
		Nonce:    params.Nonce,
		Signer:   params.Signer,
		Value:    params.Value,
		GasPrice: params.GasPrice,
		GasLimit: params.GasLimit,
		Context:  ctx,
	}
	tx, err := t.bind(contract).Transact(opts, method, args...)
	if err != nil {
		return common.Hash{}, err
	}
	return tx.Hash(), nil
}

// Balance at the latest block
func (t *EthTransport) BalanceAt(ctx context.Context, account common.Address) (*big.Int, error) {
	return t.backend.BalanceAt(ctx, account, nil)
}

func (t *EthTransport) bind(contract Contract) *bind.BoundContract {
	return bind.NewBoundContract(contract.Address, contract.ABI, t.backend, t.backend, t.backend)
}
