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

package getter

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/vulcanize/ens_registrar/registrar/constants"
	"github.com/vulcanize/ens_registrar/registrar/models"
	"github.com/vulcanize/ens_registrar/registrar/transport"
)

type EntryGetter interface {
	GetEntry(ctx context.Context, hash common.Hash) (*models.RawEntry, error)
	GetDeed(ctx context.Context, address common.Address) (models.Deed, error)
	GetSealedBid(ctx context.Context, shaBid common.Hash) (common.Address, error)
}

type entryGetter struct {
	transport transport.Transport
	registrar transport.Contract
}

func NewEntryGetter(t transport.Transport, registrar transport.Contract) *entryGetter {
	return &entryGetter{
		transport: t,
		registrar: registrar,
	}
}

// Reads the registrar's entry for a label hash
func (g *entryGetter) GetEntry(ctx context.Context, hash common.Hash) (*models.RawEntry, error) {
	out, err := g.transport.Call(ctx, g.registrar, constants.EntriesMethod.String(), [32]byte(hash))
	if err != nil {
		return nil, err
	}
	if len(out) != 5 {
		return nil, fmt.Errorf("entries: expected 5 values, got %d", len(out))
	}

	var entry models.RawEntry
	var ok bool
	if entry.Status, ok = out[0].(uint8); !ok {
		return nil, typeError("entries", 0, out[0])
	}
	if entry.DeedAddress, ok = out[1].(common.Address); !ok {
		return nil, typeError("entries", 1, out[1])
	}
	if entry.RegistrationDate, ok = out[2].(*big.Int); !ok {
		return nil, typeError("entries", 2, out[2])
	}
	if entry.Value, ok = out[3].(*big.Int); !ok {
		return nil, typeError("entries", 3, out[3])
	}
	if entry.HighestBid, ok = out[4].(*big.Int); !ok {
		return nil, typeError("entries", 4, out[4])
	}

	return &entry, nil
}

// Reads the balance, creation date and owner of a deed.
// The zero address has no deed and yields a null deed without any reads.
func (g *entryGetter) GetDeed(ctx context.Context, address common.Address) (models.Deed, error) {
	if address == (common.Address{}) {
		return models.NullDeed(address), nil
	}
	deed, err := transport.NewContract(address, constants.DeedAbiString)
	if err != nil {
		return models.Deed{}, err
	}

	balance, err := g.transport.BalanceAt(ctx, address)
	if err != nil {
		return models.Deed{}, err
	}

	out, err := g.transport.Call(ctx, deed, "creationDate")
	if err != nil {
		return models.Deed{}, err
	}
	created, err := single[*big.Int]("creationDate", out)
	if err != nil {
		return models.Deed{}, err
	}
	creationDate := time.Unix(created.Int64(), 0).UTC()

	out, err = g.transport.Call(ctx, deed, "owner")
	if err != nil {
		return models.Deed{}, err
	}
	owner, err := single[common.Address]("owner", out)
	if err != nil {
		return models.Deed{}, err
	}

	return models.Deed{
		Address:      address,
		Balance:      balance,
		CreationDate: &creationDate,
		Owner:        &owner,
	}, nil
}

// Returns the deed holding the deposit of a sealed bid, or the zero address
// if there is none
func (g *entryGetter) GetSealedBid(ctx context.Context, shaBid common.Hash) (common.Address, error) {
	out, err := g.transport.Call(ctx, g.registrar, constants.SealedBidsMethod.String(), [32]byte(shaBid))
	if err != nil {
		return common.Address{}, err
	}
	return single[common.Address]("sealedBids", out)
}

func single[T any](method string, out []interface{}) (T, error) {
	var zero T
	if len(out) != 1 {
		return zero, fmt.Errorf("%s: expected 1 value, got %d", method, len(out))
	}
	v, ok := out[0].(T)
	if !ok {
		return zero, typeError(method, 0, out[0])
	}
	return v, nil
}

func typeError(method string, i int, v interface{}) error {
	return fmt.Errorf("%s: unexpected type %T for output %d", method, v, i)
}
