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

package names

import (
	"errors"
	"unicode/utf8"
)

var (
	ErrTooShort          = errors.New("name is too short")
	ErrInvalidCharacters = errors.New("name cannot contain special characters other than a-z, 0-9, '-' and '_'")
)

// Validate checks that label can be auctioned. A label of exactly minLength
// characters is too short. Length is counted in characters, as the
// registrar's strlen does. Labels must already be in normalized form.
func Validate(n *Normalizer, label string, minLength int) error {
	if utf8.RuneCountInString(label) <= minLength {
		return ErrTooShort
	}
	if label != n.Normalize(label) {
		return ErrInvalidCharacters
	}
	return nil
}
