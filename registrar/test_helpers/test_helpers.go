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

package test_helpers

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	. "github.com/onsi/gomega"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/storage"

	"github.com/vulcanize/ens_registrar/registrar"
	"github.com/vulcanize/ens_registrar/registrar/constants"
	"github.com/vulcanize/ens_registrar/registrar/repository"
	"github.com/vulcanize/ens_registrar/registrar/test_helpers/mocks"
	"github.com/vulcanize/ens_registrar/utils"
)

var RegistryAddress = common.HexToAddress("0x112234455C3a32FD11230C42E7Bccd4A84e02010")

var RegistrarAddress = common.HexToAddress("0xc68de5b43c3d980b0c110a77a5f78d3c4c4d63b4")

var DeedAddress = common.HexToAddress("0x42032C22C510AD0698f16bE9b99640eFDEB02832")

var Owner = common.HexToAddress("0x5834eb6b2acac5b0bfff8413622704d890f80e9e")

// Fixed clock for mode derivation
var Now = time.Date(2017, time.May, 4, 12, 0, 0, 0, time.UTC)

// Transport with the .eth registrar registered in the registry
func NewRegistryTransport() *mocks.MockTransport {
	t := mocks.NewMockTransport()
	t.SetResponse(RegistryAddress, "owner", RegistrarAddress)
	return t
}

func SetupRegistrar(t *mocks.MockTransport) *registrar.Registrar {
	r, err := registrar.NewRegistrar(context.Background(), t, registrar.Config{
		RegistryAddress: RegistryAddress,
		Clock:           func() time.Time { return Now },
	})
	Expect(err).NotTo(HaveOccurred())
	Expect(r.RootNode).To(Equal(utils.NameHash("eth")))

	return r
}

// Entry of a name nobody has touched
func SetOpenEntry(t *mocks.MockTransport) {
	SetEntry(t, constants.StatusOpen, common.Address{}, time.Unix(0, 0), big.NewInt(0), big.NewInt(0))
}

func SetEntry(t *mocks.MockTransport, status uint8, deed common.Address, registrationDate time.Time, value, highestBid *big.Int) {
	t.SetResponse(RegistrarAddress, constants.EntriesMethod.String(),
		status, deed, big.NewInt(registrationDate.Unix()), value, highestBid)
}

func SetDeed(t *mocks.MockTransport, deed common.Address, balance *big.Int, created time.Time, owner common.Address) {
	t.SetBalance(deed, balance)
	t.SetResponse(deed, "creationDate", big.NewInt(created.Unix()))
	t.SetResponse(deed, "owner", owner)
}

func SetupBidRepository() (repository.BidRepository, *leveldb.DB) {
	db, err := leveldb.Open(storage.NewMemStorage(), nil)
	Expect(err).NotTo(HaveOccurred())

	return repository.NewBidRepository(db), db
}

func TearDown(db *leveldb.DB) {
	err := db.Close()
	Expect(err).NotTo(HaveOccurred())
}
