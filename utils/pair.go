package utils

import "github.com/google/uuid"

// PairKey identifies an unordered pair of profiles.
type PairKey struct {
	Low  uuid.UUID
	High uuid.UUID
}

// CanonicalPair orders a and b by their string form so (a, b) and (b, a)
// produce the same key.
func CanonicalPair(a, b uuid.UUID) PairKey {
	if a.String() > b.String() {
		a, b = b, a
	}
	return PairKey{Low: a, High: b}
}
