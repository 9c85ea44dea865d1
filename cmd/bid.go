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
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/log"
	"github.com/spf13/cobra"

	"github.com/vulcanize/ens_registrar/registrar/commitment"
	"github.com/vulcanize/ens_registrar/registrar/names"
	"github.com/vulcanize/ens_registrar/registrar/repository"
)

var (
	bidValue   string
	bidDeposit string
	bidSecret  string
	bidOwner   string
)

var bidCmd = &cobra.Command{
	Use:   "bid <name>",
	Short: "Place a sealed bid on a name",
	Long: `Builds a sealed bid, stores it in the local bid database and submits
it with the deposit. The deposit defaults to the bid value and may be larger
to hide the real bid.

./ens_registrar bid foobarbaz --value 0.01 --deposit 0.05 --secret "correct horse" --config registrar.toml

The stored bid is needed to reveal it later with the reveal command.
`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if bidSecret == "" {
			return errors.New("a secret is required to seal the bid")
		}
		value, err := ParseEther(bidValue)
		if err != nil {
			return err
		}
		deposit := value
		if bidDeposit != "" {
			if deposit, err = ParseEther(bidDeposit); err != nil {
				return err
			}
		}

		s, err := openSession(ctx)
		if err != nil {
			return err
		}
		defer s.Close()

		params, err := s.txParams(ctx, deposit)
		if err != nil {
			return err
		}
		owner := params.From
		if bidOwner != "" {
			if owner, err = parseAddress(bidOwner); err != nil {
				return err
			}
		}

		bid, err := s.registrar.BidFactory(args[0], owner, value, bidSecret)
		if err != nil {
			return err
		}

		bids, db, err := repository.OpenBidRepository(config.Bids.Path)
		if err != nil {
			return err
		}
		defer db.Close()
		if err := bids.CreateBid(*bid); err != nil {
			return err
		}

		tx, err := s.registrar.SubmitBid(ctx, bid, params)
		if err != nil {
			return err
		}
		log.Info("Submitted bid", "name", bid.Label, "shaBid", bid.ShaBid, "tx", tx)
		fmt.Fprintln(cmd.OutOrStdout(), bid.ShaBid.Hex())
		return nil
	},
}

var revealCmd = &cobra.Command{
	Use:   "reveal <shaBid>",
	Short: "Reveal a stored bid",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		shaBid, err := parseHash(args[0])
		if err != nil {
			return err
		}

		bids, db, err := repository.OpenBidRepository(config.Bids.Path)
		if err != nil {
			return err
		}
		defer db.Close()
		bid, err := bids.GetBid(shaBid)
		if err != nil {
			return err
		}

		s, err := openSession(ctx)
		if err != nil {
			return err
		}
		defer s.Close()

		params, err := s.txParams(ctx, nil)
		if err != nil {
			return err
		}
		tx, err := s.registrar.RevealBid(ctx, bid, params)
		if err != nil {
			return err
		}
		log.Info("Revealed bid", "name", bid.Label, "shaBid", bid.ShaBid, "tx", tx)
		fmt.Fprintln(cmd.OutOrStdout(), tx.Hex())
		return nil
	},
}

var forgetBidCmd = &cobra.Command{
	Use:   "forgetBid <shaBid>",
	Short: "Remove a revealed bid from the bid database",
	Long: `Removes a stored bid once the registrar no longer holds a deposit
for it. Bids still awaiting reveal are kept.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		shaBid, err := parseHash(args[0])
		if err != nil {
			return err
		}

		bids, db, err := repository.OpenBidRepository(config.Bids.Path)
		if err != nil {
			return err
		}
		defer db.Close()
		bid, err := bids.GetBid(shaBid)
		if err != nil {
			return err
		}

		s, err := openSession(ctx)
		if err != nil {
			return err
		}
		defer s.Close()

		revealed, err := s.registrar.IsBidRevealed(ctx, bid)
		if err != nil {
			return err
		}
		if !revealed {
			return fmt.Errorf("bid %s has not been revealed", shaBid.Hex())
		}
		if err := bids.DeleteBid(shaBid); err != nil {
			return err
		}
		log.Info("Removed bid", "name", bid.Label, "shaBid", shaBid)
		return nil
	},
}

var shaBidCmd = &cobra.Command{
	Use:   "shaBid <name>",
	Short: "Compute a sealed bid hash without submitting anything",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		owner, err := parseAddress(bidOwner)
		if err != nil {
			return err
		}
		value, err := ParseEther(bidValue)
		if err != nil {
			return err
		}
		codec := commitment.NewCodec(names.NewNormalizer())
		shaBid, err := codec.SealedBidHash(args[0], owner, value, bidSecret)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), shaBid.Hex())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(bidCmd)
	rootCmd.AddCommand(revealCmd)
	rootCmd.AddCommand(forgetBidCmd)
	rootCmd.AddCommand(shaBidCmd)

	bidCmd.Flags().StringVar(&bidValue, "value", "", "bid value in ether")
	bidCmd.Flags().StringVar(&bidDeposit, "deposit", "", "deposit in ether; defaults to the bid value")
	bidCmd.Flags().StringVar(&bidSecret, "secret", "", "secret sealing the bid")
	bidCmd.Flags().StringVar(&bidOwner, "owner", "", "owner of the bid; defaults to the signing account")
	bidCmd.MarkFlagRequired("value")

	shaBidCmd.Flags().StringVar(&bidValue, "value", "", "bid value in ether")
	shaBidCmd.Flags().StringVar(&bidSecret, "secret", "", "secret sealing the bid")
	shaBidCmd.Flags().StringVar(&bidOwner, "owner", "", "owner of the bid")
	shaBidCmd.MarkFlagRequired("value")
	shaBidCmd.MarkFlagRequired("secret")
	shaBidCmd.MarkFlagRequired("owner")
}

func parseAddress(s string) (common.Address, error) {
	if !common.IsHexAddress(s) {
		return common.Address{}, fmt.Errorf("invalid address %q", s)
	}
	return common.HexToAddress(s), nil
}

func parseHash(s string) (common.Hash, error) {
	b, err := hexutil.Decode(s)
	if err != nil || len(b) != common.HashLength {
		return common.Hash{}, fmt.Errorf("invalid hash %q", s)
	}
	return common.BytesToHash(b), nil
}
