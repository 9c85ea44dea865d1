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

package constants

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// ENS registry addresses by network
var RegistryAddresses = map[string]common.Address{
	"mainnet": common.HexToAddress("0x314159265dD8dbb310642f98f50C066173C1259b"),
	"ropsten": common.HexToAddress("0x112234455C3a32FD11230C42E7Bccd4A84e02010"),
}

var DefaultNetwork = "mainnet"

var DefaultTopLevelDomain = "eth"

// Registrar rejects names of this many characters or fewer
var DefaultMinLength = 7

// Number of hashes submitted together when opening an auction
var DecoyCount = 10

// Length of the reveal window before the registration date, and of the finalize window after it
var RevealPeriod = 24 * time.Hour

var ENSAbiString = `[{"constant":true,"inputs":[{"name":"node","type":"bytes32"}],"name":"resolver","outputs":[{"name":"","type":"address"}],"payable":false,"type":"function"},{"constant":true,"inputs":[{"name":"node","type":"bytes32"}],"name":"owner","outputs":[{"name":"","type":"address"}],"payable":false,"type":"function"},{"constant":true,"inputs":[{"name":"node","type":"bytes32"}],"name":"ttl","outputs":[{"name":"","type":"uint64"}],"payable":false,"type":"function"}]`

var RegistrarAbiString = `[{"constant":false,"inputs":[{"name":"_hash","type":"bytes32"}],"name":"releaseDeed","outputs":[],"payable":false,"type":"function"},{"constant":false,"inputs":[{"name":"unhashedName","type":"string"}],"name":"invalidateName","outputs":[],"payable":false,"type":"function"},{"constant":true,"inputs":[{"name":"hash","type":"bytes32"},{"name":"owner","type":"address"},{"name":"value","type":"uint256"},{"name":"salt","type":"bytes32"}],"name":"shaBid","outputs":[{"name":"sealedBid","type":"bytes32"}],"payable":false,"type":"function"},{"constant":true,"inputs":[{"name":"_hash","type":"bytes32"}],"name":"entries","outputs":[{"name":"","type":"uint8"},{"name":"","type":"address"},{"name":"","type":"uint256"},{"name":"","type":"uint256"},{"name":"","type":"uint256"}],"payable":false,"type":"function"},{"constant":true,"inputs":[],"name":"ens","outputs":[{"name":"","type":"address"}],"payable":false,"type":"function"},{"constant":false,"inputs":[{"name":"_hash","type":"bytes32"},{"name":"_owner","type":"address"},{"name":"_value","type":"uint256"},{"name":"_salt","type":"bytes32"}],"name":"unsealBid","outputs":[],"payable":false,"type":"function"},{"constant":false,"inputs":[{"name":"_hash","type":"bytes32"}],"name":"transferRegistrars","outputs":[],"payable":false,"type":"function"},{"constant":true,"inputs":[{"name":"","type":"bytes32"}],"name":"sealedBids","outputs":[{"name":"","type":"address"}],"payable":false,"type":"function"},{"constant":false,"inputs":[{"name":"_hash","type":"bytes32"}],"name":"finalizeAuction","outputs":[],"payable":false,"type":"function"},{"constant":true,"inputs":[],"name":"rootNode","outputs":[{"name":"","type":"bytes32"}],"payable":false,"type":"function"},{"constant":false,"inputs":[{"name":"_hashes","type":"bytes32[]"}],"name":"startAuctions","outputs":[],"payable":false,"type":"function"},{"constant":false,"inputs":[{"name":"_hash","type":"bytes32"},{"name":"newOwner","type":"address"}],"name":"transfer","outputs":[],"payable":false,"type":"function"},{"constant":false,"inputs":[{"name":"sealedBid","type":"bytes32"}],"name":"newBid","outputs":[],"payable":true,"type":"function"},{"constant":false,"inputs":[{"name":"_hash","type":"bytes32"}],"name":"startAuction","outputs":[],"payable":false,"type":"function"}]`

var DeedAbiString = `[{"constant":true,"inputs":[],"name":"creationDate","outputs":[{"name":"","type":"uint256"}],"payable":false,"type":"function"},{"constant":true,"inputs":[],"name":"owner","outputs":[{"name":"","type":"address"}],"payable":false,"type":"function"},{"constant":true,"inputs":[],"name":"value","outputs":[{"name":"","type":"uint256"}],"payable":false,"type":"function"},{"constant":true,"inputs":[],"name":"registrar","outputs":[{"name":"","type":"address"}],"payable":false,"type":"function"}]`

// Entry status codes reported by the registrar
const (
	StatusOpen    uint8 = 0
	StatusAuction uint8 = 1
	StatusOwned   uint8 = 2
)

// Registrar methods
type Method int

const (
	EntriesMethod Method = iota
	SealedBidsMethod
	StartAuctionMethod
	StartAuctionsMethod
	NewBidMethod
	UnsealBidMethod
	FinalizeAuctionMethod
	TransferMethod
	ReleaseDeedMethod
	InvalidateNameMethod
	TransferRegistrarsMethod
)

func (m Method) String() string {
	strings := [...]string{
		"entries",
		"sealedBids",
		"startAuction",
		"startAuctions",
		"newBid",
		"unsealBid",
		"finalizeAuction",
		"transfer",
		"releaseDeed",
		"invalidateName",
		"transferRegistrars",
	}

	if m < EntriesMethod || m > TransferRegistrarsMethod {
		return "Unknown"
	}

	return strings[m]
}

// Lifecycle mode of an entry, derived from its status and registration date
type Mode int

const (
	Unknown Mode = iota
	Open
	Auction
	Reveal
	Finalize
	FinalizeOpen
	Owned
	Invalid
	CanInvalidate
)

func (m Mode) String() string {
	strings := [...]string{
		"unknown",
		"open",
		"auction",
		"reveal",
		"finalize",
		"finalize-open",
		"owned",
		"invalid",
		"can-invalidate",
	}

	if m < Unknown || m > CanInvalidate {
		return "unknown"
	}

	return strings[m]
}
