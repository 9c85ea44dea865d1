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

// Package registrar is a client for the ENS auction registrar. It validates
// and hashes names, builds sealed bids, submits the auction transactions and
// reads entries back with their lifecycle mode.
//
// Every operation blocks until the transport answers. Run one through Async
// to get its result on a channel instead.
package registrar

import (
	"context"
	"errors"
	"math/big"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/vulcanize/ens_registrar/registrar/commitment"
	"github.com/vulcanize/ens_registrar/registrar/constants"
	"github.com/vulcanize/ens_registrar/registrar/getter"
	"github.com/vulcanize/ens_registrar/registrar/models"
	"github.com/vulcanize/ens_registrar/registrar/names"
	"github.com/vulcanize/ens_registrar/registrar/state"
	"github.com/vulcanize/ens_registrar/registrar/transport"
	"github.com/vulcanize/ens_registrar/utils"
)

var (
	ErrTooShort          = names.ErrTooShort
	ErrInvalidCharacters = names.ErrInvalidCharacters
	ErrNoDeposit         = errors.New("you must specify a deposit amount greater than the value of your bid")
	ErrRegistrarNotFound = errors.New("no registrar is registered for the top level domain")
	ErrInvalidNodeId     = errors.New("hash must be 32 bytes of 0x prefixed hex")
)

// Zero values are replaced with defaults by NewRegistrar
type Config struct {
	RegistryAddress common.Address
	TopLevelDomain  string
	MinLength       int
	Normalizer      *names.Normalizer
	Codec           *commitment.Codec
	Clock           func() time.Time
}

type Registrar struct {
	Address        common.Address
	RootNode       common.Hash
	TopLevelDomain string
	MinLength      int
	Contract       transport.Contract
	Getter         getter.EntryGetter

	transport  transport.Transport
	normalizer *names.Normalizer
	codec      *commitment.Codec
	clock      func() time.Time
}

// NewRegistrar looks up the registrar that owns the top level domain in the
// ENS registry and binds to it
func NewRegistrar(ctx context.Context, t transport.Transport, config Config) (*Registrar, error) {
	if config.RegistryAddress == (common.Address{}) {
		config.RegistryAddress = constants.RegistryAddresses[constants.DefaultNetwork]
	}
	if config.TopLevelDomain == "" {
		config.TopLevelDomain = constants.DefaultTopLevelDomain
	}
	if config.MinLength == 0 {
		config.MinLength = constants.DefaultMinLength
	}
	if config.Normalizer == nil {
		config.Normalizer = names.NewNormalizer()
	}
	if config.Codec == nil {
		config.Codec = commitment.NewCodec(config.Normalizer)
	}
	if config.Clock == nil {
		config.Clock = time.Now
	}

	registry, err := getter.NewRegistryGetter(t, config.RegistryAddress)
	if err != nil {
		return nil, err
	}
	rootNode := utils.NameHash(config.TopLevelDomain)
	address, err := registry.GetOwner(ctx, rootNode)
	if err != nil {
		return nil, err
	}
	if address == (common.Address{}) {
		return nil, ErrRegistrarNotFound
	}
	contract, err := transport.NewContract(address, constants.RegistrarAbiString)
	if err != nil {
		return nil, err
	}

	return &Registrar{
		Address:        address,
		RootNode:       rootNode,
		TopLevelDomain: config.TopLevelDomain,
		MinLength:      config.MinLength,
		Contract:       contract,
		Getter:         getter.NewEntryGetter(t, contract),
		transport:      t,
		normalizer:     config.Normalizer,
		codec:          config.Codec,
		clock:          config.Clock,
	}, nil
}

func (r *Registrar) Normalize(name string) string {
	return r.normalizer.Normalize(name)
}

func (r *Registrar) ValidateName(name string) error {
	return names.Validate(r.normalizer, name, r.MinLength)
}

func (r *Registrar) NodeId(name string) common.Hash {
	return r.codec.NodeId(name)
}

// GetEntry returns the entry for a name, or for a label hash given as 0x
// prefixed hex. Only the hash is known in the latter case, so the entry has
// no name and the minimum length rule is not applied to its mode.
func (r *Registrar) GetEntry(ctx context.Context, input string) (*models.Entry, error) {
	var name string
	var hash common.Hash
	labelLength := r.MinLength
	if strings.HasPrefix(input, "0x") {
		b, err := hexutil.Decode(input)
		if err != nil || len(b) != common.HashLength {
			return nil, ErrInvalidNodeId
		}
		hash = common.BytesToHash(b)
	} else {
		name = r.normalizer.Normalize(input)
		hash = r.codec.NodeId(name)
		labelLength = utf8.RuneCountInString(name)
	}

	raw, err := r.Getter.GetEntry(ctx, hash)
	if err != nil {
		return nil, err
	}
	deed, err := r.Getter.GetDeed(ctx, raw.DeedAddress)
	if err != nil {
		return nil, err
	}

	registrationDate := time.Unix(raw.RegistrationDate.Int64(), 0).UTC()
	return &models.Entry{
		Name:             name,
		Hash:             hash,
		Status:           raw.Status,
		Deed:             deed,
		RegistrationDate: registrationDate,
		Value:            raw.Value,
		HighestBid:       raw.HighestBid,
		Mode:             state.DeriveMode(raw.Status, registrationDate, r.MinLength, labelLength, r.clock()),
	}, nil
}

// GetDeed returns a null deed for the zero address
func (r *Registrar) GetDeed(ctx context.Context, address common.Address) (models.Deed, error) {
	return r.Getter.GetDeed(ctx, address)
}

func hasDeposit(params transport.TxParams, min *big.Int) bool {
	if params.Value == nil || params.Value.Sign() <= 0 {
		return false
	}
	return min == nil || params.Value.Cmp(min) >= 0
}
