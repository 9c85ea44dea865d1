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
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/vulcanize/ens_registrar/registrar"
	"github.com/vulcanize/ens_registrar/registrar/models"
)

var entryCmd = &cobra.Command{
	Use:   "entry <name|0xhash>...",
	Short: "Show registrar entries",
	Long: `Reads the registrar entry of each name, or of a label hash given as
0x prefixed hex, along with its deed and auction mode.

./ens_registrar entry foobarbaz thisnameisopen --config registrar.toml
`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		s, err := openSession(ctx)
		if err != nil {
			return err
		}
		defer s.Close()

		results := make([]<-chan registrar.Result[*models.Entry], len(args))
		for i, input := range args {
			input := input
			results[i] = registrar.Async(func() (*models.Entry, error) {
				return s.registrar.GetEntry(ctx, input)
			})
		}
		for i, ch := range results {
			res := <-ch
			if res.Err != nil {
				return fmt.Errorf("%s: %v", args[i], res.Err)
			}
			printEntry(cmd.OutOrStdout(), res.Value)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(entryCmd)
}

func printEntry(w io.Writer, entry *models.Entry) {
	name := entry.Name
	if name == "" {
		name = "(unknown)"
	}
	fmt.Fprintf(w, "name:              %s\n", name)
	fmt.Fprintf(w, "hash:              %s\n", entry.Hash.Hex())
	fmt.Fprintf(w, "mode:              %s\n", entry.Mode)
	fmt.Fprintf(w, "status:            %d\n", entry.Status)
	fmt.Fprintf(w, "registration date: %s\n", entry.RegistrationDate.Format(time.RFC3339))
	fmt.Fprintf(w, "value:             %s\n", entry.Value)
	fmt.Fprintf(w, "highest bid:       %s\n", entry.HighestBid)
	if entry.Deed.IsNull() {
		fmt.Fprintf(w, "deed:              none\n\n")
		return
	}
	fmt.Fprintf(w, "deed:              %s\n", entry.Deed.Address.Hex())
	fmt.Fprintf(w, "  balance:         %s\n", entry.Deed.Balance)
	fmt.Fprintf(w, "  created:         %s\n", entry.Deed.CreationDate.Format(time.RFC3339))
	fmt.Fprintf(w, "  owner:           %s\n\n", entry.Deed.Owner.Hex())
}
