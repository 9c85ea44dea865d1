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

package registrar_test

import (
	"context"
	"errors"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	ethparams "github.com/ethereum/go-ethereum/params"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/vulcanize/ens_registrar/registrar"
	"github.com/vulcanize/ens_registrar/registrar/commitment"
	"github.com/vulcanize/ens_registrar/registrar/constants"
	"github.com/vulcanize/ens_registrar/registrar/models"
	"github.com/vulcanize/ens_registrar/registrar/test_helpers"
	"github.com/vulcanize/ens_registrar/registrar/test_helpers/mocks"
	"github.com/vulcanize/ens_registrar/registrar/transport"
	"github.com/vulcanize/ens_registrar/utils"
)

var _ = Describe("Registrar", func() {
	var t *mocks.MockTransport
	var r *registrar.Registrar
	ctx := context.Background()
	params := transport.TxParams{From: test_helpers.Owner, GasLimit: 4700000}
	twoEther := new(big.Int).Mul(big.NewInt(2), big.NewInt(ethparams.Ether))
	expectedShaBid := common.HexToHash("0x77d4ed2ca7aae73b484e5a9a6e3306c5cbecfbca958381552b8c646250495ae3")

	BeforeEach(func() {
		t = test_helpers.NewRegistryTransport()
		r = test_helpers.SetupRegistrar(t)
	})

	AfterEach(func() {
		for _, tx := range t.Transactions {
			_, err := r.Contract.ABI.Pack(tx.Method, tx.Args...)
			Expect(err).ToNot(HaveOccurred(), "arguments of %s do not match the registrar abi", tx.Method)
		}
	})

	Describe("NewRegistrar", func() {
		It("Binds to the registrar owning the top level domain", func() {
			Expect(r.Address).To(Equal(test_helpers.RegistrarAddress))
			Expect(r.Contract.Address).To(Equal(test_helpers.RegistrarAddress))
			Expect(r.RootNode).To(Equal(common.HexToHash("0x93cdeb708b7545dc668eb9280176169d1c33cfd8ed6f04690a0bcc88a93fc4ae")))
			Expect(r.TopLevelDomain).To(Equal("eth"))
			Expect(r.MinLength).To(Equal(7))

			Expect(t.Calls).To(HaveLen(1))
			Expect(t.Calls[0].Address).To(Equal(test_helpers.RegistryAddress))
			Expect(t.Calls[0].Method).To(Equal("owner"))
			Expect(t.Calls[0].Args).To(Equal([]interface{}{[32]byte(utils.NameHash("eth"))}))
		})

		It("Uses the configured top level domain and minimum length", func() {
			custom, err := registrar.NewRegistrar(ctx, t, registrar.Config{
				RegistryAddress: test_helpers.RegistryAddress,
				TopLevelDomain:  "test",
				MinLength:       3,
			})
			Expect(err).ToNot(HaveOccurred())
			Expect(custom.RootNode).To(Equal(utils.NameHash("test")))
			Expect(custom.MinLength).To(Equal(3))
			Expect(custom.ValidateName("abcd")).To(Succeed())
		})

		It("Fails when the top level domain has no registrar", func() {
			empty := mocks.NewMockTransport()
			empty.SetResponse(test_helpers.RegistryAddress, "owner", common.Address{})
			_, err := registrar.NewRegistrar(ctx, empty, registrar.Config{RegistryAddress: test_helpers.RegistryAddress})
			Expect(err).To(MatchError(registrar.ErrRegistrarNotFound))
		})

		It("Returns registry read errors unchanged", func() {
			failing := mocks.NewMockTransport()
			callErr := errors.New("dial unix geth.ipc: connect: no such file or directory")
			failing.CallErr = callErr
			_, err := registrar.NewRegistrar(ctx, failing, registrar.Config{RegistryAddress: test_helpers.RegistryAddress})
			Expect(err).To(BeIdenticalTo(callErr))
		})
	})

	Describe("StartAuction", func() {
		It("Returns an error when the name is too short", func() {
			tx, err := r.StartAuction(ctx, "foo", params)
			Expect(err).To(MatchError(registrar.ErrTooShort))
			Expect(tx).To(Equal(common.Hash{}))
			Expect(t.TransactionCount()).To(Equal(0))
		})

		It("Returns an error when the name contains special characters", func() {
			_, err := r.StartAuction(ctx, "fooøøôôóOOOo", params)
			Expect(err).To(MatchError(registrar.ErrInvalidCharacters))
			Expect(t.TransactionCount()).To(Equal(0))
		})

		It("Starts an auction on the label hash", func() {
			tx, err := r.StartAuction(ctx, "foobarbaz", params)
			Expect(err).ToNot(HaveOccurred())
			Expect(tx).To(Equal(mocks.TxHash(1)))

			Expect(t.Transactions).To(HaveLen(1))
			submitted := t.Transactions[0]
			Expect(submitted.Address).To(Equal(test_helpers.RegistrarAddress))
			Expect(submitted.Method).To(Equal("startAuction"))
			Expect(submitted.Args).To(Equal([]interface{}{[32]byte(utils.LabelHash("foobarbaz"))}))
			Expect(submitted.Params.From).To(Equal(test_helpers.Owner))
			Expect(submitted.Params.GasLimit).To(Equal(uint64(4700000)))
		})

		It("Returns transport errors unchanged", func() {
			txErr := errors.New("VM Exception while processing transaction: invalid JUMP")
			t.TransactErr = txErr
			_, err := r.StartAuction(ctx, "foobarbaz", params)
			Expect(err).To(BeIdenticalTo(txErr))
			Expect(t.TransactionCount()).To(Equal(1))
		})
	})

	Describe("StartAuctions", func() {
		It("Submits nothing if any name is too short", func() {
			_, err := r.StartAuctions(ctx, []string{"foobarbaz", "foo", "thisnameisopen"}, params)
			Expect(err).To(MatchError(registrar.ErrTooShort))
			Expect(t.TransactionCount()).To(Equal(0))
		})

		It("Starts auctions for every name in one transaction", func() {
			_, err := r.StartAuctions(ctx, []string{"foobarbaz", "thisnameisopen"}, params)
			Expect(err).ToNot(HaveOccurred())

			Expect(t.Transactions).To(HaveLen(1))
			Expect(t.Transactions[0].Method).To(Equal("startAuctions"))
			Expect(t.Transactions[0].Args).To(Equal([]interface{}{[][32]byte{
				utils.LabelHash("foobarbaz"),
				utils.LabelHash("thisnameisopen"),
			}}))
		})
	})

	Describe("OpenAuction", func() {
		It("Returns an error when the name is too short", func() {
			_, hashes, err := r.OpenAuction(ctx, "foo", params)
			Expect(err).To(MatchError(registrar.ErrTooShort))
			Expect(hashes).To(BeNil())
			Expect(t.TransactionCount()).To(Equal(0))
		})

		It("Returns an error when the name contains special characters", func() {
			_, _, err := r.OpenAuction(ctx, "fooøøôôóOOOo", params)
			Expect(err).To(MatchError(registrar.ErrInvalidCharacters))
			Expect(t.TransactionCount()).To(Equal(0))
		})

		It("Hides the label hash among decoys in one startAuctions transaction", func() {
			hash := utils.LabelHash("foobarbaz")
			tx, hashes, err := r.OpenAuction(ctx, "foobarbaz", params)
			Expect(err).ToNot(HaveOccurred())
			Expect(tx).To(Equal(mocks.TxHash(1)))
			Expect(hashes).To(HaveLen(10))

			seen := map[common.Hash]int{}
			for _, h := range hashes {
				seen[h]++
			}
			Expect(seen).To(HaveLen(10))
			Expect(seen[hash]).To(Equal(1))

			Expect(t.Transactions).To(HaveLen(1))
			Expect(t.Transactions[0].Method).To(Equal("startAuctions"))
			submitted := t.Transactions[0].Args[0].([][32]byte)
			Expect(submitted).To(HaveLen(10))
			for i, h := range submitted {
				Expect(common.Hash(h)).To(Equal(hashes[i]))
			}
		})

		It("Places the label hash at varying positions", func() {
			hash := utils.LabelHash("foobarbaz")
			positions := map[int]bool{}
			for i := 0; i < 50; i++ {
				_, hashes, err := r.OpenAuction(ctx, "foobarbaz", params)
				Expect(err).ToNot(HaveOccurred())
				for j, h := range hashes {
					if h == hash {
						positions[j] = true
					}
				}
			}
			Expect(len(positions)).To(BeNumerically(">", 1))
		})
	})

	Describe("ShaBid", func() {
		It("Generates the correct 32 byte sealed bid without touching the transport", func() {
			shaBid, err := r.ShaBid("foobarbaz", test_helpers.Owner, twoEther, "secret")
			Expect(err).ToNot(HaveOccurred())
			Expect(shaBid).To(Equal(expectedShaBid))
			Expect(t.Calls).To(HaveLen(1))
			Expect(t.TransactionCount()).To(Equal(0))
		})

		It("Returns the same sealed bid for an identical normalized name", func() {
			shaBid, err := r.ShaBid("FOObarBAZ", test_helpers.Owner, twoEther, "secret")
			Expect(err).ToNot(HaveOccurred())
			Expect(shaBid).To(Equal(expectedShaBid))
		})
	})

	Describe("BidFactory", func() {
		It("Builds a bid with its sealed bid hash", func() {
			bid, err := r.BidFactory("FOObarBAZ", test_helpers.Owner, twoEther, "secret")
			Expect(err).ToNot(HaveOccurred())
			Expect(bid.ShaBid).To(Equal(expectedShaBid))
		})
	})

	Describe("NewBid", func() {
		It("Requires a deposit", func() {
			_, err := r.NewBid(ctx, expectedShaBid, params)
			Expect(err).To(MatchError(registrar.ErrNoDeposit))

			zero := params
			zero.Value = big.NewInt(0)
			_, err = r.NewBid(ctx, expectedShaBid, zero)
			Expect(err).To(MatchError(registrar.ErrNoDeposit))
			Expect(t.TransactionCount()).To(Equal(0))
		})

		It("Submits the sealed bid with the deposit", func() {
			deposit := params
			deposit.Value = twoEther
			_, err := r.NewBid(ctx, expectedShaBid, deposit)
			Expect(err).ToNot(HaveOccurred())

			Expect(t.Transactions).To(HaveLen(1))
			Expect(t.Transactions[0].Method).To(Equal("newBid"))
			Expect(t.Transactions[0].Args).To(Equal([]interface{}{[32]byte(expectedShaBid)}))
			Expect(t.Transactions[0].Params.Value).To(Equal(twoEther))
		})
	})

	Describe("SubmitBid", func() {
		var bid *models.Bid

		BeforeEach(func() {
			var err error
			bid, err = r.BidFactory("foobarbaz", test_helpers.Owner, twoEther, "secret")
			Expect(err).ToNot(HaveOccurred())
		})

		It("Returns an error if the deposit is less than the bid value", func() {
			low := params
			low.Value = big.NewInt(ethparams.Ether)
			_, err := r.SubmitBid(ctx, bid, low)
			Expect(err).To(MatchError(registrar.ErrNoDeposit))
			Expect(t.TransactionCount()).To(Equal(0))
		})

		It("Submits the bid when the deposit covers its value", func() {
			high := params
			high.Value = new(big.Int).Mul(big.NewInt(3), big.NewInt(ethparams.Ether))
			_, err := r.SubmitBid(ctx, bid, high)
			Expect(err).ToNot(HaveOccurred())
			Expect(t.Transactions).To(HaveLen(1))
			Expect(t.Transactions[0].Method).To(Equal("newBid"))
			Expect(t.Transactions[0].Args).To(Equal([]interface{}{[32]byte(expectedShaBid)}))
		})
	})

	Describe("UnsealBid", func() {
		It("Reveals the bid parameters with the hashed secret", func() {
			_, err := r.UnsealBid(ctx, "FOObarBAZ", test_helpers.Owner, twoEther, "secret", params)
			Expect(err).ToNot(HaveOccurred())

			Expect(t.Transactions).To(HaveLen(1))
			Expect(t.Transactions[0].Method).To(Equal("unsealBid"))
			Expect(t.Transactions[0].Args).To(Equal([]interface{}{
				[32]byte(utils.LabelHash("foobarbaz")),
				test_helpers.Owner,
				twoEther,
				[32]byte(commitment.SecretHash("secret")),
			}))
		})

		It("Reveals a bid built by BidFactory", func() {
			bid, err := r.BidFactory("foobarbaz", test_helpers.Owner, twoEther, "secret")
			Expect(err).ToNot(HaveOccurred())
			_, err = r.RevealBid(ctx, bid, params)
			Expect(err).ToNot(HaveOccurred())
			Expect(t.Transactions[0].Method).To(Equal("unsealBid"))
			Expect(t.Transactions[0].Args[0]).To(Equal([32]byte(utils.LabelHash("foobarbaz"))))
		})

		It("Rejects values no sealed bid could carry before submitting", func() {
			tooLarge := new(big.Int).Lsh(big.NewInt(1), 256)
			for _, value := range []*big.Int{nil, big.NewInt(-1), tooLarge} {
				tx, err := r.UnsealBid(ctx, "foobarbaz", test_helpers.Owner, value, "secret", params)
				Expect(err).To(MatchError(commitment.ErrInvalidValue))
				Expect(tx).To(Equal(common.Hash{}))
			}
			Expect(t.TransactionCount()).To(Equal(0))
		})

		It("Rejects a stored bid that lost its value", func() {
			bid := &models.Bid{Label: "foobarbaz", Owner: test_helpers.Owner, Secret: "secret", ShaBid: expectedShaBid}
			_, err := r.RevealBid(ctx, bid, params)
			Expect(err).To(MatchError(commitment.ErrInvalidValue))
			Expect(t.TransactionCount()).To(Equal(0))
		})
	})

	Describe("IsBidRevealed", func() {
		var bid *models.Bid

		BeforeEach(func() {
			var err error
			bid, err = r.BidFactory("foobarbaz", test_helpers.Owner, twoEther, "secret")
			Expect(err).ToNot(HaveOccurred())
		})

		It("Returns false while the sealed bid holds a deed", func() {
			t.SetResponse(test_helpers.RegistrarAddress, "sealedBids", test_helpers.DeedAddress)
			revealed, err := r.IsBidRevealed(ctx, bid)
			Expect(err).ToNot(HaveOccurred())
			Expect(revealed).To(BeFalse())
			Expect(t.Calls[1].Args).To(Equal([]interface{}{[32]byte(expectedShaBid)}))
		})

		It("Returns true once the deed is gone", func() {
			t.SetResponse(test_helpers.RegistrarAddress, "sealedBids", common.Address{})
			revealed, err := r.IsBidRevealed(ctx, bid)
			Expect(err).ToNot(HaveOccurred())
			Expect(revealed).To(BeTrue())
		})
	})

	Describe("FinalizeAuction", func() {
		It("Submits finalizeAuction for the label hash", func() {
			_, err := r.FinalizeAuction(ctx, "FOObarBAZ", params)
			Expect(err).ToNot(HaveOccurred())
			Expect(t.Transactions).To(HaveLen(1))
			Expect(t.Transactions[0].Method).To(Equal("finalizeAuction"))
			Expect(t.Transactions[0].Args).To(Equal([]interface{}{[32]byte(utils.LabelHash("foobarbaz"))}))
		})

		It("Relays the registrar's rejection", func() {
			txErr := errors.New("execution reverted")
			t.TransactErr = txErr
			_, err := r.FinalizeAuction(ctx, "foobarbaz", params)
			Expect(err).To(BeIdenticalTo(txErr))
		})
	})

	Describe("Deed management", func() {
		newOwner := common.HexToAddress("0xa54AEF7fA503E75a03b262A4Cd73037C1774735D")

		It("Transfers a name to a new owner", func() {
			_, err := r.Transfer(ctx, "foobarbaz", newOwner, params)
			Expect(err).ToNot(HaveOccurred())
			Expect(t.Transactions[0].Method).To(Equal("transfer"))
			Expect(t.Transactions[0].Args).To(Equal([]interface{}{[32]byte(utils.LabelHash("foobarbaz")), newOwner}))
		})

		It("Releases a deed", func() {
			_, err := r.ReleaseDeed(ctx, "foobarbaz", params)
			Expect(err).ToNot(HaveOccurred())
			Expect(t.Transactions[0].Method).To(Equal("releaseDeed"))
			Expect(t.Transactions[0].Args).To(Equal([]interface{}{[32]byte(utils.LabelHash("foobarbaz"))}))
		})

		It("Invalidates a short name by its plain normalized text", func() {
			_, err := r.InvalidateName(ctx, "FOO", params)
			Expect(err).ToNot(HaveOccurred())
			Expect(t.Transactions[0].Method).To(Equal("invalidateName"))
			Expect(t.Transactions[0].Args).To(Equal([]interface{}{"foo"}))
		})

		It("Transfers a deed to the current registrar", func() {
			_, err := r.TransferRegistrars(ctx, "foobarbaz", params)
			Expect(err).ToNot(HaveOccurred())
			Expect(t.Transactions[0].Method).To(Equal("transferRegistrars"))
			Expect(t.Transactions[0].Args).To(Equal([]interface{}{[32]byte(utils.LabelHash("foobarbaz"))}))
		})
	})

	Describe("Transaction encoding", func() {
		It("Packs the arguments of every transaction with the registrar abi", func() {
			newOwner := common.HexToAddress("0xa54AEF7fA503E75a03b262A4Cd73037C1774735D")
			deposit := params
			deposit.Value = twoEther

			_, err := r.StartAuction(ctx, "foobarbaz", params)
			Expect(err).ToNot(HaveOccurred())
			_, err = r.StartAuctions(ctx, []string{"foobarbaz", "thisnameisopen"}, params)
			Expect(err).ToNot(HaveOccurred())
			_, _, err = r.OpenAuction(ctx, "foobarbaz", params)
			Expect(err).ToNot(HaveOccurred())
			_, err = r.NewBid(ctx, expectedShaBid, deposit)
			Expect(err).ToNot(HaveOccurred())
			_, err = r.UnsealBid(ctx, "foobarbaz", test_helpers.Owner, twoEther, "secret", params)
			Expect(err).ToNot(HaveOccurred())
			_, err = r.FinalizeAuction(ctx, "foobarbaz", params)
			Expect(err).ToNot(HaveOccurred())
			_, err = r.Transfer(ctx, "foobarbaz", newOwner, params)
			Expect(err).ToNot(HaveOccurred())
			_, err = r.ReleaseDeed(ctx, "foobarbaz", params)
			Expect(err).ToNot(HaveOccurred())
			_, err = r.InvalidateName(ctx, "foo", params)
			Expect(err).ToNot(HaveOccurred())
			_, err = r.TransferRegistrars(ctx, "foobarbaz", params)
			Expect(err).ToNot(HaveOccurred())
			Expect(t.TransactionCount()).To(Equal(10))

			unseal := t.Transactions[4]
			input, err := r.Contract.ABI.Pack(unseal.Method, unseal.Args...)
			Expect(err).ToNot(HaveOccurred())
			Expect(input[:4]).To(Equal(r.Contract.ABI.Methods["unsealBid"].ID))
			Expect(input[4:36]).To(Equal(utils.LabelHash("foobarbaz").Bytes()))
			Expect(input[36:68]).To(Equal(common.LeftPadBytes(test_helpers.Owner.Bytes(), 32)))
			Expect(input[68:100]).To(Equal(common.LeftPadBytes(twoEther.Bytes(), 32)))
			Expect(input[100:132]).To(Equal(commitment.SecretHash("secret").Bytes()))
		})
	})

	Describe("GetEntry", func() {
		It("Returns an open entry with a null deed for a name nobody has bid on", func() {
			test_helpers.SetOpenEntry(t)

			entry, err := r.GetEntry(ctx, "thisnameisopen")
			Expect(err).ToNot(HaveOccurred())
			Expect(entry.Name).To(Equal("thisnameisopen"))
			Expect(entry.Hash).To(Equal(utils.LabelHash("thisnameisopen")))
			Expect(entry.Status).To(Equal(uint8(0)))
			Expect(entry.Mode).To(Equal(constants.Open))
			Expect(entry.RegistrationDate.Unix()).To(Equal(int64(0)))
			Expect(entry.Value.Int64()).To(Equal(int64(0)))
			Expect(entry.HighestBid.Int64()).To(Equal(int64(0)))

			Expect(entry.Deed.IsNull()).To(BeTrue())
			Expect(entry.Deed.Address).To(Equal(common.Address{}))
			Expect(entry.Deed.Balance).To(BeNil())
			Expect(entry.Deed.CreationDate).To(BeNil())
			Expect(entry.Deed.Owner).To(BeNil())
		})

		It("Returns the same entry regardless of capitalization", func() {
			test_helpers.SetOpenEntry(t)

			lower, err := r.GetEntry(ctx, "foobarbaz")
			Expect(err).ToNot(HaveOccurred())
			upper, err := r.GetEntry(ctx, "FOOBarbaz")
			Expect(err).ToNot(HaveOccurred())
			Expect(upper.Hash).To(Equal(lower.Hash))
			Expect(upper.Name).To(Equal("foobarbaz"))
		})

		It("Resolves the deed and derives the mode of an auctioned name", func() {
			registrationDate := test_helpers.Now.Add(12 * time.Hour)
			created := test_helpers.Now.Add(-3 * 24 * time.Hour)
			test_helpers.SetEntry(t, constants.StatusAuction, test_helpers.DeedAddress, registrationDate, twoEther, twoEther)
			test_helpers.SetDeed(t, test_helpers.DeedAddress, twoEther, created, test_helpers.Owner)

			entry, err := r.GetEntry(ctx, "foobarbaz")
			Expect(err).ToNot(HaveOccurred())
			Expect(entry.Status).To(Equal(uint8(1)))
			Expect(entry.Mode).To(Equal(constants.Reveal))
			Expect(entry.RegistrationDate).To(BeTemporally("==", registrationDate))
			Expect(entry.HighestBid).To(Equal(twoEther))

			Expect(entry.Deed.IsNull()).To(BeFalse())
			Expect(entry.Deed.Address).To(Equal(test_helpers.DeedAddress))
			Expect(entry.Deed.Balance).To(Equal(twoEther))
			Expect(*entry.Deed.CreationDate).To(BeTemporally("==", created))
			Expect(*entry.Deed.Owner).To(Equal(test_helpers.Owner))
		})

		It("Marks names that are too short", func() {
			test_helpers.SetOpenEntry(t)
			entry, err := r.GetEntry(ctx, "foo")
			Expect(err).ToNot(HaveOccurred())
			Expect(entry.Mode).To(Equal(constants.Invalid))

			test_helpers.SetEntry(t, constants.StatusOwned, common.Address{}, test_helpers.Now.Add(-72*time.Hour), twoEther, twoEther)
			entry, err = r.GetEntry(ctx, "foo")
			Expect(err).ToNot(HaveOccurred())
			Expect(entry.Mode).To(Equal(constants.CanInvalidate))
		})

		It("Accepts a label hash in place of a name", func() {
			test_helpers.SetEntry(t, constants.StatusOwned, common.Address{}, test_helpers.Now.Add(-72*time.Hour), twoEther, twoEther)
			hash := utils.LabelHash("foo")

			entry, err := r.GetEntry(ctx, hash.Hex())
			Expect(err).ToNot(HaveOccurred())
			Expect(entry.Name).To(Equal(""))
			Expect(entry.Hash).To(Equal(hash))
			Expect(entry.Mode).To(Equal(constants.Owned))

			Expect(t.Calls[1].Method).To(Equal("entries"))
			Expect(t.Calls[1].Args).To(Equal([]interface{}{[32]byte(hash)}))
		})

		It("Rejects malformed hashes", func() {
			_, err := r.GetEntry(ctx, "0x1234")
			Expect(err).To(MatchError(registrar.ErrInvalidNodeId))
			_, err = r.GetEntry(ctx, "0xnothex")
			Expect(err).To(MatchError(registrar.ErrInvalidNodeId))
			Expect(t.Calls).To(HaveLen(1))
		})

		It("Returns transport errors unchanged", func() {
			callErr := errors.New("request timed out")
			t.CallErr = callErr
			entry, err := r.GetEntry(ctx, "foobarbaz")
			Expect(err).To(BeIdenticalTo(callErr))
			Expect(entry).To(BeNil())
		})
	})

	Describe("GetDeed", func() {
		It("Returns a null deed for the zero address without reading the ledger", func() {
			deed, err := r.GetDeed(ctx, common.Address{})
			Expect(err).ToNot(HaveOccurred())
			Expect(deed).To(Equal(models.NullDeed(common.Address{})))
			Expect(t.Calls).To(HaveLen(1))
		})
	})

	Describe("Async", func() {
		It("Delivers the entry once", func() {
			test_helpers.SetOpenEntry(t)
			results := registrar.Async(func() (*models.Entry, error) {
				return r.GetEntry(ctx, "thisnameisopen")
			})

			var res registrar.Result[*models.Entry]
			Eventually(results).Should(Receive(&res))
			Expect(res.Err).ToNot(HaveOccurred())
			Expect(res.Value.Name).To(Equal("thisnameisopen"))
			Expect(res.Value.Status).To(Equal(uint8(0)))
			Consistently(results).ShouldNot(Receive())
		})

		It("Delivers the error with no value", func() {
			results := registrar.Async(func() (common.Hash, error) {
				return r.StartAuction(ctx, "foo", params)
			})

			var res registrar.Result[common.Hash]
			Eventually(results).Should(Receive(&res))
			Expect(res.Err).To(MatchError(registrar.ErrTooShort))
			Expect(res.Value).To(Equal(common.Hash{}))
		})
	})
})
