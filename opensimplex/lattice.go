package opensimplex

import "OpenSimplex/internal/vector"

// lattice holds everything that differs between the 2D, 3D and 4D evaluators.
// The skew transform and the contribution kernel are shared.
type lattice[V vector.Vector[V]] struct {
	stretch   V // (1/sqrt(n+1) - 1) / n on every axis
	squish    V // (sqrt(n+1) - 1) / n on every axis
	norm      float64
	gradients []V
	gradIndex func(perm *PermTable, cell V) int
}

// cell is one evaluation's view of the lattice: the skewed grid cell that
// contains the input point and the point's offset from that cell's origin.
type cell[V vector.Vector[V]] struct {
	lat    *lattice[V]
	perm   *PermTable
	grid   V // stretched-space cell origin, integer valued
	origin V // input minus the cell origin mapped back to input space
	ins    V // fractional position inside the stretched cell
}

func (l *lattice[V]) locate(input V, perm *PermTable) cell[V] {
	stretched := input.Add(l.stretch.Scale(input.Sum()))
	grid := stretched.Floor()
	squashed := grid.Add(l.squish.Scale(grid.Sum()))

	return cell[V]{
		lat:    l,
		perm:   perm,
		grid:   grid,
		origin: input.Sub(squashed),
		ins:    stretched.Sub(grid),
	}
}

// contribute returns the attenuated gradient contribution of the lattice
// vertex at grid+delta. Vertices outside the kernel radius contribute 0.
func (c *cell[V]) contribute(delta V) float64 {
	shifted := c.origin.Sub(delta).Sub(c.lat.squish.Scale(delta.Sum()))
	attn := 2 - shifted.Attenuation()
	if attn <= 0 {
		return 0
	}
	attn *= attn
	return attn * attn * c.extrapolate(c.grid.Add(delta), shifted)
}

func (c *cell[V]) extrapolate(vertex, delta V) float64 {
	return c.lat.gradients[c.lat.gradIndex(c.perm, vertex)].Dot(delta)
}

// sum adds the contributions of every vertex in deltas.
func (c *cell[V]) sum(deltas ...V) float64 {
	value := 0.0
	for _, d := range deltas {
		value += c.contribute(d)
	}
	return value
}

// hash reduces a lattice coordinate to a perm index. Negative coordinates wrap
// the same way two's-complement masking does.
func hash(coord float64) int64 {
	return int64(coord) & 0xFF
}
