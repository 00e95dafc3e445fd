package opensimplex

import "OpenSimplex/internal/vector"

const (
	stretch2D = -0.211324865405187 // (1/sqrt(2+1) - 1) / 2
	squish2D  = 0.366025403784439  // (sqrt(2+1) - 1) / 2
	norm2D    = 47.0
)

// Gradients for 2D. They approximate the directions to the vertices of an
// octagon from the center.
var gradients2D = []vector.Vec2{
	{5, 2}, {2, 5}, {-5, 2}, {-2, 5},
	{5, -2}, {2, -5}, {-5, -2}, {-2, -5},
}

var lattice2D = &lattice[vector.Vec2]{
	stretch:   vector.Splat2(stretch2D),
	squish:    vector.Splat2(squish2D),
	norm:      norm2D,
	gradients: gradients2D,
	gradIndex: func(perm *PermTable, v vector.Vec2) int {
		i := (perm[hash(v[0])] + int64(v[1])) & 0xFF
		return int((perm[i] & 0x0E) >> 1)
	},
}

func eval2D(perm *PermTable, x, y float64) float64 {
	c := lattice2D.locate(vector.Vec2{x, y}, perm)
	ins := c.ins

	value := c.sum(vector.Vec2{1, 0}, vector.Vec2{0, 1})

	inSum := ins.Sum()
	if inSum <= 1 {
		// Inside the triangle at (0,0).
		zins := 1 - inSum
		if zins > ins[0] || zins > ins[1] {
			// (0,0) is one of the closest two triangular vertices.
			if ins[0] > ins[1] {
				value += c.contribute(vector.Vec2{1, -1})
			} else {
				value += c.contribute(vector.Vec2{-1, 1})
			}
		} else {
			// (1,0) and (0,1) are the closest two vertices.
			value += c.contribute(vector.Vec2{1, 1})
		}
		value += c.contribute(vector.Vec2{0, 0})
	} else {
		// Inside the triangle at (1,1).
		zins := 2 - inSum
		if zins < ins[0] || zins < ins[1] {
			// (1,1) is one of the closest two triangular vertices.
			if ins[0] > ins[1] {
				value += c.contribute(vector.Vec2{2, 0})
			} else {
				value += c.contribute(vector.Vec2{0, 2})
			}
		} else {
			value += c.contribute(vector.Vec2{0, 0})
		}
		value += c.contribute(vector.Vec2{1, 1})
	}

	return value / lattice2D.norm
}
