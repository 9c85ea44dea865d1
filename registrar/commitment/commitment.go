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

// Package commitment derives the hashes the registrar keys names and sealed
// bids by.
package commitment

import (
	"errors"
	"math/big"
	"math/rand"
	"strconv"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"

	"github.com/vulcanize/ens_registrar/registrar/models"
	"github.com/vulcanize/ens_registrar/registrar/names"
)

var ErrInvalidValue = errors.New("bid value must be a non-negative integer of at most 256 bits")

type Codec struct {
	normalizer *names.Normalizer

	mu  sync.Mutex
	rnd *rand.Rand
}

type Option func(*Codec)

// WithRand replaces the source decoy hashes and positions are drawn from
func WithRand(rnd *rand.Rand) Option {
	return func(c *Codec) {
		c.rnd = rnd
	}
}

func NewCodec(normalizer *names.Normalizer, opts ...Option) *Codec {
	c := &Codec{
		normalizer: normalizer,
		rnd:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NodeId is the keccak256 of the normalized label
func (c *Codec) NodeId(label string) common.Hash {
	return crypto.Keccak256Hash([]byte(c.normalizer.Normalize(label)))
}

func SecretHash(secret string) common.Hash {
	return crypto.Keccak256Hash([]byte(secret))
}

// SealedBidHash reproduces the registrar's shaBid:
// keccak256(nodeId, owner, uint256(value), keccak256(secret)), tightly packed.
func (c *Codec) SealedBidHash(label string, owner common.Address, value *big.Int, secret string) (common.Hash, error) {
	word, err := valueWord(value)
	if err != nil {
		return common.Hash{}, err
	}
	return crypto.Keccak256Hash(
		c.NodeId(label).Bytes(),
		owner.Bytes(),
		word[:],
		SecretHash(secret).Bytes(),
	), nil
}

func (c *Codec) NewBid(label string, owner common.Address, value *big.Int, secret string) (*models.Bid, error) {
	shaBid, err := c.SealedBidHash(label, owner, value, secret)
	if err != nil {
		return nil, err
	}
	return &models.Bid{
		Label:  label,
		Owner:  owner,
		Value:  new(big.Int).Set(value),
		Secret: secret,
		ShaBid: shaBid,
	}, nil
}

// DecoyHashes returns n distinct hashes of random numbers. They are not
// reproducible and should be used for a single submission.
func (c *Codec) DecoyHashes(n int) []common.Hash {
	c.mu.Lock()
	defer c.mu.Unlock()

	hashes := make([]common.Hash, 0, n)
	seen := make(map[common.Hash]struct{}, n)
	for len(hashes) < n {
		hash := crypto.Keccak256Hash([]byte(strconv.FormatFloat(c.rnd.Float64(), 'f', -1, 64)))
		if _, ok := seen[hash]; ok {
			continue
		}
		seen[hash] = struct{}{}
		hashes = append(hashes, hash)
	}
	return hashes
}

// Intn returns a uniform position in [0, n)
func (c *Codec) Intn(n int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rnd.Intn(n)
}

// CheckValue reports ErrInvalidValue for a value that does not fit the
// registrar's uint256 bid value
func CheckValue(value *big.Int) error {
	_, err := valueWord(value)
	return err
}

func valueWord(value *big.Int) ([32]byte, error) {
	if value == nil || value.Sign() < 0 {
		return [32]byte{}, ErrInvalidValue
	}
	word, overflow := uint256.FromBig(value)
	if overflow {
		return [32]byte{}, ErrInvalidValue
	}
	return word.Bytes32(), nil
}
