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
	"fmt"

	"github.com/ethereum/go-ethereum/log"
	"github.com/spf13/cobra"
)

var startAuctionCmd = &cobra.Command{
	Use:   "startAuction <name>",
	Short: "Start an auction for a name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		s, err := openSession(ctx)
		if err != nil {
			return err
		}
		defer s.Close()

		params, err := s.txParams(ctx, nil)
		if err != nil {
			return err
		}
		tx, err := s.registrar.StartAuction(ctx, args[0], params)
		if err != nil {
			return err
		}
		log.Info("Submitted auction", "name", s.registrar.Normalize(args[0]), "tx", tx)
		fmt.Fprintln(cmd.OutOrStdout(), tx.Hex())
		return nil
	},
}

var startAuctionsCmd = &cobra.Command{
	Use:   "startAuctions <name>...",
	Short: "Start auctions for several names in one transaction",
	Long: `Starts auctions for every name in one transaction. Nothing is
submitted if any of the names is too short.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		s, err := openSession(ctx)
		if err != nil {
			return err
		}
		defer s.Close()

		params, err := s.txParams(ctx, nil)
		if err != nil {
			return err
		}
		tx, err := s.registrar.StartAuctions(ctx, args, params)
		if err != nil {
			return err
		}
		log.Info("Submitted auctions", "count", len(args), "tx", tx)
		fmt.Fprintln(cmd.OutOrStdout(), tx.Hex())
		return nil
	},
}

var openAuctionCmd = &cobra.Command{
	Use:   "openAuction <name>",
	Short: "Start an auction for a name hidden among decoys",
	Long: `Starts an auction for the name together with auctions for random
decoy hashes, so observers cannot tell which name is wanted.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		s, err := openSession(ctx)
		if err != nil {
			return err
		}
		defer s.Close()

		params, err := s.txParams(ctx, nil)
		if err != nil {
			return err
		}
		tx, hashes, err := s.registrar.OpenAuction(ctx, args[0], params)
		if err != nil {
			return err
		}
		log.Info("Submitted auctions", "name", s.registrar.Normalize(args[0]), "hash", s.registrar.NodeId(args[0]), "decoys", len(hashes)-1, "tx", tx)
		fmt.Fprintln(cmd.OutOrStdout(), tx.Hex())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(startAuctionCmd)
	rootCmd.AddCommand(startAuctionsCmd)
	rootCmd.AddCommand(openAuctionCmd)
}
