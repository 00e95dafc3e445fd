package opensimplex

import "errors"

// PermSize is the number of entries in a permutation table. Only the first 256
// entries are reached by the gradient lookups; the rest keep the shuffle
// identical to reference tables of this size.
const PermSize = 2048

const (
	lcgMultiplier = 6364136223846793005
	lcgIncrement  = 1442695040888963407
)

// ErrInvalidPerm is returned when a table is not a permutation of [0, PermSize).
var ErrInvalidPerm = errors.New("opensimplex: table is not a permutation of [0, 2047]")

// PermTable maps lattice hashes to pseudo-random indices.
type PermTable [PermSize]int64

// GeneratePerm shuffles [0, PermSize) with a linear congruential chain seeded
// from seed. The chain state carries across iterations, so the table is fully
// determined by the seed.
func GeneratePerm(seed int64) PermTable {
	var perm, source PermTable
	for i := range source {
		source[i] = int64(i)
	}

	state := seed
	for i := int64(PermSize - 1); i >= 0; i-- {
		state = state*lcgMultiplier + lcgIncrement
		r := shuffleIndex(state, i+1)
		perm[i] = source[r]
		source[r] = source[i]
	}

	return perm
}

// shuffleIndex returns (state + 31) mod n in [0, n). The offset is folded in
// after reducing state so the addition cannot overflow.
func shuffleIndex(state, n int64) int64 {
	r := (state%n + 31) % n
	if r < 0 {
		r += n
	}
	return r
}

// Valid reports whether p holds every value in [0, PermSize) exactly once.
func (p *PermTable) Valid() bool {
	var seen [PermSize]bool
	for _, v := range p {
		if v < 0 || v >= PermSize || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}
