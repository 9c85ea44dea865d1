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

package mocks

import (
	"context"
	"errors"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/vulcanize/ens_registrar/registrar/transport"
)

var ErrNoResponse = errors.New("mock transport: no response configured")

type MockCall struct {
	Address common.Address
	Method  string
	Args    []interface{}
}

type MockTransaction struct {
	Address common.Address
	Method  string
	Args    []interface{}
	Params  transport.TxParams
}

// Records every request and answers reads from canned responses keyed by
// contract address and method
type MockTransport struct {
	mu           sync.Mutex
	responses    map[string][]interface{}
	balances     map[common.Address]*big.Int
	Calls        []MockCall
	Transactions []MockTransaction
	CallErr      error
	TransactErr  error
}

func NewMockTransport() *MockTransport {
	return &MockTransport{
		responses:    map[string][]interface{}{},
		balances:     map[common.Address]*big.Int{},
		Calls:        []MockCall{},
		Transactions: []MockTransaction{},
	}
}

func (t *MockTransport) SetResponse(address common.Address, method string, out ...interface{}) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.responses[responseKey(address, method)] = out
}

func (t *MockTransport) SetBalance(address common.Address, balance *big.Int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.balances[address] = balance
}

func (t *MockTransport) Call(ctx context.Context, contract transport.Contract, method string, args ...interface{}) ([]interface{}, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.Calls = append(t.Calls, MockCall{Address: contract.Address, Method: method, Args: args})
	if t.CallErr != nil {
		return nil, t.CallErr
	}
	out, ok := t.responses[responseKey(contract.Address, method)]
	if !ok {
		return nil, ErrNoResponse
	}
	return out, nil
}

// Transact returns a hash derived from the request count so every submission gets a distinct id
func (t *MockTransport) Transact(ctx context.Context, contract transport.Contract, params transport.TxParams, method string, args ...interface{}) (common.Hash, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.Transactions = append(t.Transactions, MockTransaction{Address: contract.Address, Method: method, Args: args, Params: params})
	if t.TransactErr != nil {
		return common.Hash{}, t.TransactErr
	}
	return TxHash(len(t.Transactions)), nil
}

func (t *MockTransport) BalanceAt(ctx context.Context, account common.Address) (*big.Int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.CallErr != nil {
		return nil, t.CallErr
	}
	balance, ok := t.balances[account]
	if !ok {
		return big.NewInt(0), nil
	}
	return balance, nil
}

func (t *MockTransport) TransactionCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.Transactions)
}

// Hash the mock returns for the nth transaction
func TxHash(n int) common.Hash {
	return crypto.Keccak256Hash(big.NewInt(int64(n)).Bytes())
}

func responseKey(address common.Address, method string) string {
	return address.Hex() + "." + method
}
