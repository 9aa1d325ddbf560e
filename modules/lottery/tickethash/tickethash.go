// Package tickethash derives the stable fingerprints that identify tickets
// and draw results. The fingerprint doubles as a tamper check: recomputing it
// from a stored record must reproduce the stored value.
package tickethash

import (
	"fmt"
	"strconv"

	"github.com/solotto/draw-engine/modules/lottery/numberset"
)

// Hasher fingerprints a number selection together with an identity string
// (buyer wallet for tickets, entropy seed for draw results) and a millisecond
// timestamp. Implementations must be pure: identical inputs always produce
// identical output, and permutations of the same numbers must collide.
type Hasher interface {
	Fingerprint(numbers numberset.NumberSet, identity string, timestampMs int64) string
}

// Rolling is the production Hasher: a rolling 31-multiplier hash over the
// canonical rendition of the inputs, reduced to a hex string.
//
// It is deliberately not cryptographic. Collision probability is low across
// the expected ticket volume, the output is short enough to show in UIs, and
// published draws stay reproducible by anyone with the algorithm. Swapping in
// a cryptographic hash only requires a new Hasher implementation.
type Rolling struct{}

var _ Hasher = Rolling{}

func New() Rolling {
	return Rolling{}
}

func (Rolling) Fingerprint(numbers numberset.NumberSet, identity string, timestampMs int64) string {
	data := fmt.Sprintf("%s-%s-%d", numbers.CanonicalString(), identity, timestampMs)

	var h int32
	for i := 0; i < len(data); i++ {
		h = (h << 5) - h + int32(data[i])
	}

	v := int64(h)
	if v < 0 {
		v = -v
	}
	return strconv.FormatInt(v, 16)
}
