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

package repository

import (
	"encoding/json"
	"errors"

	"github.com/ethereum/go-ethereum/common"
	"github.com/hashicorp/golang-lru"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/vulcanize/ens_registrar/registrar/models"
)

var ErrBidNotFound = errors.New("no bid stored for sealed bid hash")

// Bids kept by the host between submitting and revealing them
type BidRepository interface {
	BidExists(shaBid common.Hash) (bool, error)
	CreateBid(bid models.Bid) error
	GetBid(shaBid common.Hash) (*models.Bid, error)
	DeleteBid(shaBid common.Hash) error
}

type bidRepository struct {
	db         *leveldb.DB
	cachedBids *lru.Cache
}

func NewBidRepository(db *leveldb.DB) *bidRepository {
	cache, _ := lru.New(1000)
	return &bidRepository{
		db:         db,
		cachedBids: cache,
	}
}

// Opens or creates the bid database at path
func OpenBidRepository(path string) (*bidRepository, *leveldb.DB, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, nil, err
	}
	return NewBidRepository(db), db, nil
}

func (r *bidRepository) BidExists(shaBid common.Hash) (bool, error) {
	_, ok := r.cachedBids.Get(shaBid)
	if ok {
		return true, nil
	}

	return r.db.Has(bidKey(shaBid), nil)
}

// Creates the bid, replacing one already stored under the same sealed bid hash
func (r *bidRepository) CreateBid(bid models.Bid) error {
	value, err := json.Marshal(bid)
	if err != nil {
		return err
	}

	err = r.db.Put(bidKey(bid.ShaBid), value, &opt.WriteOptions{Sync: true})
	if err != nil {
		return err
	}

	r.cachedBids.Add(bid.ShaBid, true)

	return nil
}

func (r *bidRepository) GetBid(shaBid common.Hash) (*models.Bid, error) {
	value, err := r.db.Get(bidKey(shaBid), nil)
	if err == leveldb.ErrNotFound {
		return nil, ErrBidNotFound
	}
	if err != nil {
		return nil, err
	}

	var bid models.Bid
	if err := json.Unmarshal(value, &bid); err != nil {
		return nil, err
	}

	return &bid, nil
}

func (r *bidRepository) DeleteBid(shaBid common.Hash) error {
	r.cachedBids.Remove(shaBid)
	return r.db.Delete(bidKey(shaBid), &opt.WriteOptions{Sync: true})
}

func bidKey(shaBid common.Hash) []byte {
	return append([]byte("bid-"), shaBid.Bytes()...)
}
