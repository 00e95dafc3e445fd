// Package opensimplex implements Kurt Spencer's OpenSimplex noise in 2, 3 and
// 4 dimensions.
//
// A Noise is built once from a seed and is read-only afterwards, so a single
// instance can be shared by any number of goroutines. Evaluation never fails:
// finite inputs give values in roughly [-1, 1] and NaN or infinite inputs
// give NaN.
package opensimplex

import (
	"errors"
	"fmt"
)

// DefaultSeed is used by New.
const DefaultSeed int64 = 0

// ErrDimension is returned by Eval for coordinate counts other than 2, 3 or 4.
var ErrDimension = errors.New("opensimplex: only 2, 3 and 4 dimensions are supported")

// Noise is a seeded OpenSimplex generator. Instances built from the same seed
// produce identical output everywhere.
type Noise struct {
	seed int64
	perm PermTable
}

// New returns a Noise seeded with DefaultSeed.
func New() *Noise {
	return NewWithSeed(DefaultSeed)
}

// NewWithSeed returns a Noise whose permutation table is derived from seed.
// Every int64, including zero and negative values, is a valid seed.
func NewWithSeed(seed int64) *Noise {
	return &Noise{seed: seed, perm: GeneratePerm(seed)}
}

// NewWithPerm returns a Noise that uses perm directly. perm must be a
// permutation of [0, PermSize); the seed of the result reports 0.
func NewWithPerm(perm PermTable) (*Noise, error) {
	if !perm.Valid() {
		return nil, ErrInvalidPerm
	}
	return &Noise{perm: perm}, nil
}

// Seed returns the seed the table was generated from.
func (n *Noise) Seed() int64 { return n.seed }

// Perm returns a copy of the permutation table.
func (n *Noise) Perm() PermTable { return n.perm }

// Eval2D returns the noise value at (x, y).
func (n *Noise) Eval2D(x, y float64) float64 {
	return eval2D(&n.perm, x, y)
}

// Eval3D returns the noise value at (x, y, z).
func (n *Noise) Eval3D(x, y, z float64) float64 {
	return eval3D(&n.perm, x, y, z)
}

// Eval4D returns the noise value at (x, y, z, w).
func (n *Noise) Eval4D(x, y, z, w float64) float64 {
	return eval4D(&n.perm, x, y, z, w)
}

// Eval dispatches on the number of coordinates.
func (n *Noise) Eval(coords ...float64) (float64, error) {
	switch len(coords) {
	case 2:
		return n.Eval2D(coords[0], coords[1]), nil
	case 3:
		return n.Eval3D(coords[0], coords[1], coords[2]), nil
	case 4:
		return n.Eval4D(coords[0], coords[1], coords[2], coords[3]), nil
	}
	return 0, fmt.Errorf("%w: got %d coordinates", ErrDimension, len(coords))
}
