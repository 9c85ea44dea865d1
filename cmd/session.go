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

package cmd

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"os"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/log"
	"github.com/ethereum/go-ethereum/params"

	"github.com/vulcanize/ens_registrar/registrar"
	"github.com/vulcanize/ens_registrar/registrar/transport"
)

const defaultGasLimit = 500000

var ErrInvalidAmount = errors.New("amount must be a non-negative number of ether with at most 18 decimals")

// Registrar client bound to the configured node
type session struct {
	client    *ethclient.Client
	registrar *registrar.Registrar
}

func openSession(ctx context.Context) (*session, error) {
	registry, err := config.Registry()
	if err != nil {
		return nil, err
	}
	client, err := ethclient.DialContext(ctx, config.Client.IPCPath)
	if err != nil {
		return nil, err
	}
	r, err := registrar.NewRegistrar(ctx, transport.NewEthTransport(client), registrar.Config{
		RegistryAddress: registry,
		TopLevelDomain:  config.Registrar.TLD,
		MinLength:       config.Registrar.MinLength,
	})
	if err != nil {
		client.Close()
		return nil, err
	}
	log.Debug("Bound to registrar", "network", config.Registrar.Network, "registry", registry, "registrar", r.Address)
	return &session{client: client, registrar: r}, nil
}

func (s *session) Close() {
	s.client.Close()
}

// txParams signs with the key decrypted from the configured keystore file
func (s *session) txParams(ctx context.Context, value *big.Int) (transport.TxParams, error) {
	if config.Account.Keystore == "" {
		return transport.TxParams{}, errors.New("no keystore file configured for signing")
	}
	keyJSON, err := os.ReadFile(config.Account.Keystore)
	if err != nil {
		return transport.TxParams{}, err
	}
	key, err := keystore.DecryptKey(keyJSON, config.Account.Passphrase)
	if err != nil {
		return transport.TxParams{}, fmt.Errorf("cannot decrypt keystore %s: %v", config.Account.Keystore, err)
	}
	chainID, err := s.client.ChainID(ctx)
	if err != nil {
		return transport.TxParams{}, err
	}
	opts, err := bind.NewKeyedTransactorWithChainID(key.PrivateKey, chainID)
	if err != nil {
		return transport.TxParams{}, err
	}
	return transport.TxParams{
		From:     opts.From,
		Value:    value,
		GasLimit: defaultGasLimit,
		Signer:   opts.Signer,
	}, nil
}

// ParseEther converts a decimal amount of ether such as "0.01" to wei
func ParseEther(amount string) (*big.Int, error) {
	r, ok := new(big.Rat).SetString(amount)
	if !ok || r.Sign() < 0 {
		return nil, ErrInvalidAmount
	}
	r.Mul(r, new(big.Rat).SetInt64(params.Ether))
	if !r.IsInt() {
		return nil, ErrInvalidAmount
	}
	return new(big.Int).Set(r.Num()), nil
}
