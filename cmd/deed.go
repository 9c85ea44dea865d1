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
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/log"
	"github.com/spf13/cobra"

	"github.com/vulcanize/ens_registrar/registrar"
	"github.com/vulcanize/ens_registrar/registrar/transport"
)

// Submits a transaction that needs nothing but the name
type nameTransaction func(r *registrar.Registrar, ctx context.Context, name string, params transport.TxParams) (common.Hash, error)

func nameTransactionCmd(use, short, event string, submit nameTransaction) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <name>",
		Short: short,
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
			tx, err := submit(s.registrar, ctx, args[0], params)
			if err != nil {
				return err
			}
			log.Info(event, "name", s.registrar.Normalize(args[0]), "tx", tx)
			fmt.Fprintln(cmd.OutOrStdout(), tx.Hex())
			return nil
		},
	}
}

var transferCmd = &cobra.Command{
	Use:   "transfer <name> <newOwner>",
	Short: "Transfer a name and its deed to a new owner",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		newOwner, err := parseAddress(args[1])
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
		tx, err := s.registrar.Transfer(ctx, args[0], newOwner, params)
		if err != nil {
			return err
		}
		log.Info("Submitted transfer", "name", s.registrar.Normalize(args[0]), "newOwner", newOwner, "tx", tx)
		fmt.Fprintln(cmd.OutOrStdout(), tx.Hex())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(nameTransactionCmd("finalize", "Finalize the auction of a name", "Submitted finalization", (*registrar.Registrar).FinalizeAuction))
	rootCmd.AddCommand(nameTransactionCmd("releaseDeed", "Release the deed of a name and refund its owner", "Submitted release", (*registrar.Registrar).ReleaseDeed))
	rootCmd.AddCommand(nameTransactionCmd("invalidateName", "Invalidate a registered name that is too short", "Submitted invalidation", (*registrar.Registrar).InvalidateName))
	rootCmd.AddCommand(nameTransactionCmd("transferRegistrars", "Move the deed of a name to the current registrar", "Submitted registrar transfer", (*registrar.Registrar).TransferRegistrars))
	rootCmd.AddCommand(transferCmd)
}
