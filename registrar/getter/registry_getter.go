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

package getter

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	"github.com/vulcanize/ens_registrar/registrar/constants"
	"github.com/vulcanize/ens_registrar/registrar/transport"
)

type RegistryGetter interface {
	GetOwner(ctx context.Context, node common.Hash) (common.Address, error)
}

type registryGetter struct {
	transport transport.Transport
	registry  transport.Contract
}

func NewRegistryGetter(t transport.Transport, registryAddress common.Address) (*registryGetter, error) {
	registry, err := transport.NewContract(registryAddress, constants.ENSAbiString)
	if err != nil {
		return nil, err
	}
	return &registryGetter{
		transport: t,
		registry:  registry,
	}, nil
}

// Owner of a node in the ENS registry; for a top level domain this is its registrar
func (g *registryGetter) GetOwner(ctx context.Context, node common.Hash) (common.Address, error) {
	out, err := g.transport.Call(ctx, g.registry, "owner", [32]byte(node))
	if err != nil {
		return common.Address{}, err
	}
	return single[common.Address]("owner", out)
}
