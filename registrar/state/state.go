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

package state

import (
	"time"

	"github.com/vulcanize/ens_registrar/registrar/constants"
)

// DeriveMode maps an entry's status and registration date onto its auction
// lifecycle mode as of now. Names shorter than minLength can never be
// auctioned; if one is owned anyway it can be invalidated.
func DeriveMode(status uint8, registrationDate time.Time, minLength, labelLength int, now time.Time) constants.Mode {
	if labelLength < minLength {
		if status == constants.StatusOpen {
			return constants.Invalid
		}
		return constants.CanInvalidate
	}

	switch status {
	case constants.StatusOpen:
		return constants.Open
	case constants.StatusAuction:
		return auctionMode(registrationDate, now)
	case constants.StatusOwned:
		return constants.Owned
	default:
		return constants.Unknown
	}
}

func auctionMode(registrationDate, now time.Time) constants.Mode {
	remaining := registrationDate.Sub(now)
	switch {
	case remaining > constants.RevealPeriod:
		return constants.Auction
	case now.Before(registrationDate) && remaining <= constants.RevealPeriod:
		return constants.Reveal
	case now.After(registrationDate) && now.Sub(registrationDate) <= constants.RevealPeriod:
		return constants.Finalize
	default:
		// finalizable, and the auction could be started over
		return constants.FinalizeOpen
	}
}
