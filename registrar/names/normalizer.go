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

// Package names canonicalizes and validates labels before they are hashed
// or submitted to the registrar.
package names

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Accented letters folded onto their base letter, applied after nameprep
var confusables = map[rune]string{
	'a': "áăǎâäȧạȁàảȃāąᶏẚåḁⱥã",
	'e': "èéêëēěĕȅȩḙėẹẻęẽ",
	'i': "íĭǐîïịȉìỉȋīįᶖɨĩḭ",
	'o': "óŏǒôöȯọőȍòỏơȏꝋꝍⱺōǫøõ",
	'u': "úŭǔûṷüṳụűȕùủưȗūųᶙůũṵ",
	'c': "çćčĉċ",
	's': "śšşŝșṡṣʂᵴꞩᶊȿ",
}

// Normalizer maps a label onto the exact string the registrar hashes.
// It is safe for concurrent use.
type Normalizer struct {
	replacer *strings.Replacer
}

func NewNormalizer() *Normalizer {
	var pairs []string
	for base, accented := range confusables {
		for _, r := range accented {
			pairs = append(pairs, string(r), string(base))
		}
	}
	return &Normalizer{replacer: strings.NewReplacer(pairs...)}
}

// Normalize case folds and NFKC normalizes the label, folds accented
// letters and then drops everything outside [a-z0-9-_].
// Normalize(Normalize(x)) == Normalize(x) for every x.
func (n *Normalizer) Normalize(label string) string {
	// cases.Caser keeps state between calls, so each call gets its own
	prepared := norm.NFKC.String(cases.Fold().String(label))
	folded := n.replacer.Replace(prepared)

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		if allowed(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func allowed(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' || r == '_'
}
