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
	"os"
	"os/signal"

	"github.com/ethereum/go-ethereum/log"
	"github.com/spf13/cobra"
)

var (
	cfgFile   string
	network   string
	verbosity int
	config    *Config
)

var rootCmd = &cobra.Command{
	Use:   "ens_registrar",
	Short: "Client for the ENS auction registrar",
	Long: `Starts auctions, places and reveals sealed bids and reads entries
of the ENS auction registrar.

Expects an ethereum node to be running and a .toml config:
  [client]
  ipcPath = "/Users/user/Library/Ethereum/geth.ipc"
  [registrar]
  network = "ropsten"
  [account]
  keystore = "/Users/user/Library/Ethereum/keystore/UTC--2017-05-04T12-00-00.000000000Z--5834eb6b2acac5b0bfff8413622704d890f80e9e"
  passphrase = "password"
  [bids]
  path = "bids"

The default network is mainnet which uses ENS-registry 0x314159265dD8dbb310642f98f50C066173C1259b
To run on ropsten using ENS-registry 0x112234455C3a32FD11230C42E7Bccd4A84e02010, run
./ens_registrar entry foobarbaz --network ropsten --config registrar.toml
`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogging(verbosity)
		var err error
		config, err = LoadConfig(cfgFile)
		if err != nil {
			return err
		}
		if network != "" {
			config.Registrar.Network = network
		}
		return nil
	},
}

// Execute runs the root command until it completes or the process is interrupted
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file location")
	rootCmd.PersistentFlags().StringVarP(&network, "network", "n", "", "default is mainnet; set to ropsten to run on testnet")
	rootCmd.PersistentFlags().IntVarP(&verbosity, "verbosity", "v", 3, "log level: 1=error, 2=warn, 3=info, 4=debug, 5=trace")
}

func setupLogging(verbosity int) {
	log.SetDefault(log.NewLogger(log.NewTerminalHandlerWithLevel(os.Stderr, log.FromLegacyLevel(verbosity), true)))
}
