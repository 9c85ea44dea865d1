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

package registrar

import (
	"context"
	"math/big"
	"unicode/utf8"

	"github.com/ethereum/go-ethereum/common"

	"github.com/vulcanize/ens_registrar/registrar/commitment"
	"github.com/vulcanize/ens_registrar/registrar/constants"
	"github.com/vulcanize/ens_registrar/registrar/models"
	"github.com/vulcanize/ens_registrar/registrar/transport"
)

// StartAuction opens an auction on the hash of name
func (r *Registrar) StartAuction(ctx context.Context, name string, params transport.TxParams) (common.Hash, error) {
	if err := r.ValidateName(name); err != nil {
		return common.Hash{}, err
	}
	return r.transact(ctx, params, constants.StartAuctionMethod, [32]byte(r.codec.NodeId(name)))
}

// StartAuctions opens auctions for several names in one transaction.
// Nothing is submitted if any of the names is too short.
func (r *Registrar) StartAuctions(ctx context.Context, names []string, params transport.TxParams) (common.Hash, error) {
	hashes := make([][32]byte, 0, len(names))
	for _, name := range names {
		if utf8.RuneCountInString(name) < r.MinLength {
			return common.Hash{}, ErrTooShort
		}
		hashes = append(hashes, r.codec.NodeId(name))
	}
	return r.transact(ctx, params, constants.StartAuctionsMethod, hashes)
}

// OpenAuction starts an auction for name hidden among random decoy hashes,
// so observers cannot tell which of the auctions the sender wants. It
// returns the transaction hash and every label hash submitted.
func (r *Registrar) OpenAuction(ctx context.Context, name string, params transport.TxParams) (common.Hash, []common.Hash, error) {
	if err := r.ValidateName(name); err != nil {
		return common.Hash{}, nil, err
	}
	hash := r.codec.NodeId(name)

	hashes := r.decoys(hash)
	hashes[r.codec.Intn(len(hashes))] = hash

	args := make([][32]byte, len(hashes))
	for i, h := range hashes {
		args[i] = h
	}
	tx, err := r.transact(ctx, params, constants.StartAuctionsMethod, args)
	if err != nil {
		return common.Hash{}, nil, err
	}
	return tx, hashes, nil
}

// decoys never contain the real hash, so it appears exactly once after insertion
func (r *Registrar) decoys(hash common.Hash) []common.Hash {
	for {
		hashes := r.codec.DecoyHashes(constants.DecoyCount)
		clash := false
		for _, h := range hashes {
			if h == hash {
				clash = true
				break
			}
		}
		if !clash {
			return hashes
		}
	}
}

// ShaBid computes a sealed bid locally; nothing is sent to the registrar
func (r *Registrar) ShaBid(name string, owner common.Address, value *big.Int, secret string) (common.Hash, error) {
	return r.codec.SealedBidHash(name, owner, value, secret)
}

func (r *Registrar) BidFactory(name string, owner common.Address, value *big.Int, secret string) (*models.Bid, error) {
	return r.codec.NewBid(name, owner, value, secret)
}

// NewBid submits a sealed bid. params.Value is the deposit and must be set.
func (r *Registrar) NewBid(ctx context.Context, shaBid common.Hash, params transport.TxParams) (common.Hash, error) {
	if !hasDeposit(params, nil) {
		return common.Hash{}, ErrNoDeposit
	}
	return r.transact(ctx, params, constants.NewBidMethod, [32]byte(shaBid))
}

// SubmitBid submits bid with a deposit of at least its value
func (r *Registrar) SubmitBid(ctx context.Context, bid *models.Bid, params transport.TxParams) (common.Hash, error) {
	if !hasDeposit(params, bid.Value) {
		return common.Hash{}, ErrNoDeposit
	}
	return r.transact(ctx, params, constants.NewBidMethod, [32]byte(bid.ShaBid))
}

// UnsealBid reveals a bid made earlier with the same parameters. A value the
// sealed bid could not have been built from is rejected before submission.
func (r *Registrar) UnsealBid(ctx context.Context, name string, owner common.Address, value *big.Int, secret string, params transport.TxParams) (common.Hash, error) {
	if err := commitment.CheckValue(value); err != nil {
		return common.Hash{}, err
	}
	return r.transact(ctx, params, constants.UnsealBidMethod,
		[32]byte(r.codec.NodeId(name)),
		owner,
		value,
		[32]byte(commitment.SecretHash(secret)),
	)
}

func (r *Registrar) RevealBid(ctx context.Context, bid *models.Bid, params transport.TxParams) (common.Hash, error) {
	return r.UnsealBid(ctx, bid.Label, bid.Owner, bid.Value, bid.Secret, params)
}

// IsBidRevealed reports whether the sealed bid no longer holds a deposit
// deed. A bid that was never submitted reads the same way.
func (r *Registrar) IsBidRevealed(ctx context.Context, bid *models.Bid) (bool, error) {
	deed, err := r.Getter.GetSealedBid(ctx, bid.ShaBid)
	if err != nil {
		return false, err
	}
	return deed == (common.Address{}), nil
}

// FinalizeAuction assigns the name to the winner once the registration
// date has passed. Early calls are rejected by the registrar.
func (r *Registrar) FinalizeAuction(ctx context.Context, name string, params transport.TxParams) (common.Hash, error) {
	return r.transact(ctx, params, constants.FinalizeAuctionMethod, [32]byte(r.codec.NodeId(name)))
}

// Transfer hands the name and its deed to newOwner
func (r *Registrar) Transfer(ctx context.Context, name string, newOwner common.Address, params transport.TxParams) (common.Hash, error) {
	return r.transact(ctx, params, constants.TransferMethod, [32]byte(r.codec.NodeId(name)), newOwner)
}

// ReleaseDeed gives up the name and returns the deed's funds to its owner
func (r *Registrar) ReleaseDeed(ctx context.Context, name string, params transport.TxParams) (common.Hash, error) {
	return r.transact(ctx, params, constants.ReleaseDeedMethod, [32]byte(r.codec.NodeId(name)))
}

// InvalidateName reports a registered name that is too short. The
// registrar needs the plain name to check its length.
func (r *Registrar) InvalidateName(ctx context.Context, name string, params transport.TxParams) (common.Hash, error) {
	return r.transact(ctx, params, constants.InvalidateNameMethod, r.normalizer.Normalize(name))
}

// TransferRegistrars moves the deed to the registrar now owning the top level domain
func (r *Registrar) TransferRegistrars(ctx context.Context, name string, params transport.TxParams) (common.Hash, error) {
	return r.transact(ctx, params, constants.TransferRegistrarsMethod, [32]byte(r.codec.NodeId(name)))
}

func (r *Registrar) transact(ctx context.Context, params transport.TxParams, method constants.Method, args ...interface{}) (common.Hash, error) {
	return r.transport.Transact(ctx, r.Contract, params, method.String(), args...)
}
