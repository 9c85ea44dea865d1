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

	"github.com/BurntSushi/toml"
	"github.com/ethereum/go-ethereum/common"

	"github.com/vulcanize/ens_registrar/registrar/constants"
)

const DefaultBidsPath = "bids"

type Config struct {
	Client    ClientConfig    `toml:"client"`
	Registrar RegistrarConfig `toml:"registrar"`
	Account   AccountConfig   `toml:"account"`
	Bids      BidsConfig      `toml:"bids"`
}

type ClientConfig struct {
	IPCPath string `toml:"ipcPath"`
}

type RegistrarConfig struct {
	Network         string `toml:"network"`
	RegistryAddress string `toml:"registryAddress"`
	TLD             string `toml:"tld"`
	MinLength       int    `toml:"minLength"`
}

type AccountConfig struct {
	Keystore   string `toml:"keystore"`
	Passphrase string `toml:"passphrase"`
}

type BidsConfig struct {
	Path string `toml:"path"`
}

// LoadConfig decodes the TOML file at path and fills in defaults for any
// missing values. An empty path yields the defaults alone.
func LoadConfig(path string) (*Config, error) {
	var conf Config
	if path != "" {
		if _, err := toml.DecodeFile(path, &conf); err != nil {
			return nil, fmt.Errorf("cannot load config file %s: %v", path, err)
		}
	}

	if conf.Registrar.Network == "" {
		conf.Registrar.Network = constants.DefaultNetwork
	}
	if conf.Registrar.TLD == "" {
		conf.Registrar.TLD = constants.DefaultTopLevelDomain
	}
	if conf.Registrar.MinLength == 0 {
		conf.Registrar.MinLength = constants.DefaultMinLength
	}
	if conf.Bids.Path == "" {
		conf.Bids.Path = DefaultBidsPath
	}
	return &conf, nil
}

// Registry returns the configured registry address, or the known address
// for the configured network
func (c *Config) Registry() (common.Address, error) {
	if c.Registrar.RegistryAddress != "" {
		if !common.IsHexAddress(c.Registrar.RegistryAddress) {
			return common.Address{}, fmt.Errorf("invalid registry address %q", c.Registrar.RegistryAddress)
		}
		return common.HexToAddress(c.Registrar.RegistryAddress), nil
	}
	address, ok := constants.RegistryAddresses[c.Registrar.Network]
	if !ok {
		return common.Address{}, fmt.Errorf("no ENS registry known for network %q", c.Registrar.Network)
	}
	return address, nil
}
