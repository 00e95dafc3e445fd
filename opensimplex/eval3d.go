package opensimplex

import "OpenSimplex/internal/vector"

const (
	stretch3D = -1.0 / 6 // (1/sqrt(3+1) - 1) / 3
	squish3D  = 1.0 / 3  // (sqrt(3+1) - 1) / 3
	norm3D    = 103.0
)

// Gradients for 3D. They approximate the directions to the vertices of a
// rhombicuboctahedron from the center, skewed so that the triangular and
// square facets can be inscribed inside circles of the same radius.
var gradients3D = []vector.Vec3{
	{-11, 4, 4}, {-4, 11, 4}, {-4, 4, 11},
	{11, 4, 4}, {4, 11, 4}, {4, 4, 11},
	{-11, -4, 4}, {-4, -11, 4}, {-4, -4, 11},
	{11, -4, 4}, {4, -11, 4}, {4, -4, 11},
	{-11, 4, -4}, {-4, 11, -4}, {-4, 4, -11},
	{11, 4, -4}, {4, 11, -4}, {4, 4, -11},
	{-11, -4, -4}, {-4, -11, -4}, {-4, -4, -11},
	{11, -4, -4}, {4, -11, -4}, {4, -4, -11},
}

var lattice3D = &lattice[vector.Vec3]{
	stretch:   vector.Splat3(stretch3D),
	squish:    vector.Splat3(squish3D),
	norm:      norm3D,
	gradients: gradients3D,
	gradIndex: func(perm *PermTable, v vector.Vec3) int {
		i := (perm[hash(v[0])] + int64(v[1])) & 0xFF
		i = (perm[i] + int64(v[2])) & 0xFF
		return int(perm[i] % int64(len(gradients3D)))
	},
}

// Extra vertices for the tetrahedron at (0,0,0) when (0,0,0) is one of the
// two closest vertices, keyed by the other one.
var tetraLowSingle = [8][]vector.Vec3{
	axisX: {{1, -1, 0}, {1, 0, -1}},
	axisY: {{-1, 1, 0}, {0, 1, -1}},
	axisZ: {{-1, 0, 1}, {0, -1, 1}},
}

// Extra vertices for the tetrahedron at (0,0,0) keyed by the union of the two
// closest unit vertices.
var tetraLowPair = [8][]vector.Vec3{
	axesXY: {{1, 1, 0}, {1, 1, -1}},
	axesXZ: {{1, 0, 1}, {1, -1, 1}},
	axesYZ: {{0, 1, 1}, {-1, 1, 1}},
}

// Extra vertices for the tetrahedron at (1,1,1) when (1,1,1) is one of the
// two closest vertices, keyed by the other one.
var tetraHighSingle = [8][]vector.Vec3{
	axesXY: {{2, 1, 0}, {1, 2, 0}},
	axesXZ: {{2, 0, 1}, {1, 0, 2}},
	axesYZ: {{0, 2, 1}, {0, 1, 2}},
}

// Extra vertices for the tetrahedron at (1,1,1) keyed by the axis shared by
// the two closest vertices.
var tetraHighPair = [8][]vector.Vec3{
	axisX: {{1, 0, 0}, {2, 0, 0}},
	axisY: {{0, 1, 0}, {0, 2, 0}},
	axisZ: {{0, 0, 1}, {0, 0, 2}},
}

// doubled3D is the unit vertex on an axis pushed out to 2.
var doubled3D = [8]vector.Vec3{
	axisX: {2, 0, 0},
	axisY: {0, 2, 0},
	axisZ: {0, 0, 2},
}

// negated3D is the two-axis vertex with -1 on its missing axis.
var negated3D = [8]vector.Vec3{
	axesXY: {1, 1, -1},
	axesXZ: {1, -1, 1},
	axesYZ: {-1, 1, 1},
}

func eval3D(perm *PermTable, x, y, z float64) float64 {
	c := lattice3D.locate(vector.Vec3{x, y, z}, perm)
	ins := c.ins

	var value float64
	inSum := ins.Sum()
	switch {
	case inSum <= 1:
		value = tetrahedronLow(&c, inSum)
	case inSum >= 2:
		value = tetrahedronHigh(&c, inSum)
	default:
		value = octahedron(&c)
	}

	return value / lattice3D.norm
}

// tetrahedronLow evaluates the tetrahedron anchored at (0,0,0).
func tetrahedronLow(c *cell[vector.Vec3], inSum float64) float64 {
	ins := c.ins

	// Determine which two of (0,0,1), (0,1,0), (1,0,0) are closest.
	k := closest{aScore: ins[0], aPoint: axisX, bScore: ins[1], bPoint: axisY}
	k.offerMax(ins[2], axisZ)

	var value float64
	wins := 1 - inSum
	if wins > k.aScore || wins > k.bScore {
		// (0,0,0) is one of the closest two vertices; the other is the
		// better of a and b.
		point := k.aPoint
		if k.bScore > k.aScore {
			point = k.bPoint
		}
		value = c.sum(tetraLowSingle[point]...)
	} else {
		value = c.sum(tetraLowPair[k.aPoint|k.bPoint]...)
	}

	return value + c.sum(
		vector.Vec3{0, 0, 0},
		vector.Vec3{1, 0, 0},
		vector.Vec3{0, 1, 0},
		vector.Vec3{0, 0, 1},
	)
}

// tetrahedronHigh evaluates the tetrahedron anchored at (1,1,1).
func tetrahedronHigh(c *cell[vector.Vec3], inSum float64) float64 {
	ins := c.ins

	// Determine which two of (1,1,0), (1,0,1), (0,1,1) are closest.
	k := closest{aScore: ins[0], aPoint: axesYZ, bScore: ins[1], bPoint: axesXZ}
	k.offerMin(ins[2], axesXY)

	var value float64
	wins := 3 - inSum
	if wins < k.aScore || wins < k.bScore {
		point := k.aPoint
		if k.bScore < k.aScore {
			point = k.bPoint
		}
		value = c.sum(tetraHighSingle[point]...)
	} else {
		value = c.sum(tetraHighPair[k.aPoint&k.bPoint]...)
	}

	return value + c.sum(
		vector.Vec3{1, 1, 0},
		vector.Vec3{1, 0, 1},
		vector.Vec3{0, 1, 1},
		vector.Vec3{1, 1, 1},
	)
}

// octahedron evaluates the rectified tetrahedron between the two anchored
// tetrahedra.
func octahedron(c *cell[vector.Vec3]) float64 {
	ins := c.ins
	var k closest

	// Decide between (0,0,1) and (1,1,0).
	if p := ins[0] + ins[1]; p > 1 {
		k.aScore, k.aPoint, k.aBig = p-1, axesXY, true
	} else {
		k.aScore, k.aPoint, k.aBig = 1-p, axisZ, false
	}

	// Decide between (0,1,0) and (1,0,1).
	if p := ins[0] + ins[2]; p > 1 {
		k.bScore, k.bPoint, k.bBig = p-1, axesXZ, true
	} else {
		k.bScore, k.bPoint, k.bBig = 1-p, axisY, false
	}

	// The closer of (1,0,0) and (0,1,1) replaces the further of a and b, if
	// closer still.
	p := ins[1] + ins[2]
	score, point, big := 1-p, axisX, false
	if p > 1 {
		score, point, big = p-1, axesYZ, true
	}
	if k.aScore <= k.bScore && k.aScore < score {
		k.aScore, k.aPoint, k.aBig = score, point, big
	} else if k.aScore > k.bScore && k.bScore < score {
		k.bScore, k.bPoint, k.bBig = score, point, big
	}

	var value float64
	switch {
	case k.aBig && k.bBig:
		// Both closest points on the (1,1,1) side.
		value = c.contribute(vector.Vec3{1, 1, 1}) +
			c.contribute(doubled3D[k.aPoint&k.bPoint])
	case !k.aBig && !k.bBig:
		// Both closest points on the (0,0,0) side.
		value = c.contribute(vector.Vec3{0, 0, 0}) +
			c.contribute(negated3D[k.aPoint|k.bPoint])
	default:
		// One point on each side.
		far, near := k.aPoint, k.bPoint
		if k.bBig {
			far, near = k.bPoint, k.aPoint
		}
		value = c.contribute(negated3D[far]) + c.contribute(doubled3D[near])
	}

	return value + c.sum(
		vector.Vec3{1, 0, 0},
		vector.Vec3{0, 1, 0},
		vector.Vec3{0, 0, 1},
		vector.Vec3{1, 1, 0},
		vector.Vec3{1, 0, 1},
		vector.Vec3{0, 1, 1},
	)
}
