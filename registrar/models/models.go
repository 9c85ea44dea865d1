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

package models

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/vulcanize/ens_registrar/registrar/constants"
)

// Snapshot of the registrar's entry for one label hash
type Entry struct {
	Name             string
	Hash             common.Hash
	Status           uint8
	Deed             Deed
	RegistrationDate time.Time
	Value            *big.Int
	HighestBid       *big.Int
	Mode             constants.Mode
}

// Deed contract holding the funds locked for a name or a sealed bid.
// Balance, CreationDate and Owner are nil for a null deed.
type Deed struct {
	Address      common.Address
	Balance      *big.Int
	CreationDate *time.Time
	Owner        *common.Address
}

// NullDeed stands in for a deed that does not exist yet
func NullDeed(address common.Address) Deed {
	return Deed{Address: address}
}

func (d Deed) IsNull() bool {
	return d.Address == (common.Address{})
}

// Values returned by the registrar's entries(bytes32) method
type RawEntry struct {
	Status           uint8
	DeedAddress      common.Address
	RegistrationDate *big.Int
	Value            *big.Int
	HighestBid       *big.Int
}

// Sealed bid and the plaintext needed to reveal it
type Bid struct {
	Label  string         `json:"label"`
	Owner  common.Address `json:"owner"`
	Value  *big.Int       `json:"value"`
	Secret string         `json:"secret"`
	ShaBid common.Hash    `json:"shaBid"`
}
