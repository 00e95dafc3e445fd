package opensimplex

import "OpenSimplex/internal/vector"

const (
	stretch4D = -0.138196601125011 // (1/sqrt(4+1) - 1) / 4
	squish4D  = 0.309016994374947  // (sqrt(4+1) - 1) / 4
	norm4D    = 30.0
)

// Gradients for 4D. They approximate the directions to the vertices of a
// disprismatotesseractihexadecachoron from the center, skewed so that the
// tetrahedral and cubic facets can be inscribed inside spheres of the same
// radius.
var gradients4D = []vector.Vec4{
	{3, 1, 1, 1}, {1, 3, 1, 1}, {1, 1, 3, 1}, {1, 1, 1, 3},
	{-3, 1, 1, 1}, {-1, 3, 1, 1}, {-1, 1, 3, 1}, {-1, 1, 1, 3},
	{3, -1, 1, 1}, {1, -3, 1, 1}, {1, -1, 3, 1}, {1, -1, 1, 3},
	{-3, -1, 1, 1}, {-1, -3, 1, 1}, {-1, -1, 3, 1}, {-1, -1, 1, 3},
	{3, 1, -1, 1}, {1, 3, -1, 1}, {1, 1, -3, 1}, {1, 1, -1, 3},
	{-3, 1, -1, 1}, {-1, 3, -1, 1}, {-1, 1, -3, 1}, {-1, 1, -1, 3},
	{3, -1, -1, 1}, {1, -3, -1, 1}, {1, -1, -3, 1}, {1, -1, -1, 3},
	{-3, -1, -1, 1}, {-1, -3, -1, 1}, {-1, -1, -3, 1}, {-1, -1, -1, 3},
	{3, 1, 1, -1}, {1, 3, 1, -1}, {1, 1, 3, -1}, {1, 1, 1, -3},
	{-3, 1, 1, -1}, {-1, 3, 1, -1}, {-1, 1, 3, -1}, {-1, 1, 1, -3},
	{3, -1, 1, -1}, {1, -3, 1, -1}, {1, -1, 3, -1}, {1, -1, 1, -3},
	{-3, -1, 1, -1}, {-1, -3, 1, -1}, {-1, -1, 3, -1}, {-1, -1, 1, -3},
	{3, 1, -1, -1}, {1, 3, -1, -1}, {1, 1, -3, -1}, {1, 1, -1, -3},
	{-3, 1, -1, -1}, {-1, 3, -1, -1}, {-1, 1, -3, -1}, {-1, 1, -1, -3},
	{3, -1, -1, -1}, {1, -3, -1, -1}, {1, -1, -3, -1}, {1, -1, -1, -3},
	{-3, -1, -1, -1}, {-1, -3, -1, -1}, {-1, -1, -3, -1}, {-1, -1, -1, -3},
}

var lattice4D = &lattice[vector.Vec4]{
	stretch:   vector.Splat4(stretch4D),
	squish:    vector.Splat4(squish4D),
	norm:      norm4D,
	gradients: gradients4D,
	gradIndex: func(perm *PermTable, v vector.Vec4) int {
		i := (perm[hash(v[0])] + int64(v[1])) & 0xFF
		i = (perm[i] + int64(v[2])) & 0xFF
		i = (perm[i] + int64(v[3])) & 0xFF
		return int((perm[i] & 0xFC) >> 2)
	},
}

// Pentachoron at (0,0,0,0), (0,0,0,0) among the closest two: keyed by the
// other closest vertex.
var pentaLowSingle = [16][]vector.Vec4{
	axisX: {{1, -1, 0, 0}, {1, 0, -1, 0}, {1, 0, 0, -1}},
	axisY: {{-1, 1, 0, 0}, {0, 1, -1, 0}, {0, 1, 0, -1}},
	axisZ: {{-1, 0, 1, 0}, {0, -1, 1, 0}, {0, 0, 1, -1}},
	axisW: {{-1, 0, 0, 1}, {0, -1, 0, 1}, {0, 0, -1, 1}},
}

// Pentachoron at (0,0,0,0), keyed by the union of the two closest vertices.
var pentaLowPair = [16][]vector.Vec4{
	axesXY: {{1, 1, 0, 0}, {1, 1, -1, 0}, {1, 1, 0, -1}},
	axesXZ: {{1, 0, 1, 0}, {1, -1, 1, 0}, {1, 0, 1, -1}},
	axesYZ: {{0, 1, 1, 0}, {-1, 1, 1, 0}, {0, 1, 1, -1}},
	axesXW: {{1, 0, 0, 1}, {1, -1, 0, 1}, {1, 0, -1, 1}},
	axesYW: {{0, 1, 0, 1}, {-1, 1, 0, 1}, {0, 1, -1, 1}},
	axesZW: {{0, 0, 1, 1}, {-1, 0, 1, 1}, {0, -1, 1, 1}},
}

// Pentachoron at (1,1,1,1), (1,1,1,1) among the closest two: keyed by the
// other closest vertex.
var pentaHighSingle = [16][]vector.Vec4{
	axesXYZ: {{2, 1, 1, 0}, {1, 2, 1, 0}, {1, 1, 2, 0}},
	axesXYW: {{2, 1, 0, 1}, {1, 2, 0, 1}, {1, 1, 0, 2}},
	axesXZW: {{2, 0, 1, 1}, {1, 0, 2, 1}, {1, 0, 1, 2}},
	axesYZW: {{0, 2, 1, 1}, {0, 1, 2, 1}, {0, 1, 1, 2}},
}

// Pentachoron at (1,1,1,1), keyed by the axes the two closest share.
var pentaHighPair = [16][]vector.Vec4{
	axesXY: {{1, 1, 0, 0}, {2, 1, 0, 0}, {1, 2, 0, 0}},
	axesXZ: {{1, 0, 1, 0}, {2, 0, 1, 0}, {1, 0, 2, 0}},
	axesYZ: {{0, 1, 1, 0}, {0, 2, 1, 0}, {0, 1, 2, 0}},
	axesXW: {{1, 0, 0, 1}, {2, 0, 0, 1}, {1, 0, 0, 2}},
	axesYW: {{0, 1, 0, 1}, {0, 2, 0, 1}, {0, 1, 0, 2}},
	axesZW: {{0, 0, 1, 1}, {0, 0, 2, 1}, {0, 0, 1, 2}},
}

// A three-axis vertex and the same vertex with its missing axis at -1.
var tripleSpread = [16][]vector.Vec4{
	axesXYZ: {{1, 1, 1, 0}, {1, 1, 1, -1}},
	axesXYW: {{1, 1, 0, 1}, {1, 1, -1, 1}},
	axesXZW: {{1, 0, 1, 1}, {1, -1, 1, 1}},
	axesYZW: {{0, 1, 1, 1}, {-1, 1, 1, 1}},
}

// A two-axis vertex with each of its zeros in turn replaced by -1.
var pairNegated = [16][]vector.Vec4{
	axesXY: {{1, 1, -1, 0}, {1, 1, 0, -1}},
	axesXZ: {{1, -1, 1, 0}, {1, 0, 1, -1}},
	axesYZ: {{-1, 1, 1, 0}, {0, 1, 1, -1}},
	axesXW: {{1, -1, 0, 1}, {1, 0, -1, 1}},
	axesYW: {{-1, 1, 0, 1}, {0, 1, -1, 1}},
	axesZW: {{-1, 0, 1, 1}, {0, -1, 1, 1}},
}

// A two-axis vertex with each of its ones in turn replaced by 2.
var pairDoubled = [16][]vector.Vec4{
	axesXY: {{2, 1, 0, 0}, {1, 2, 0, 0}},
	axesXZ: {{2, 0, 1, 0}, {1, 0, 2, 0}},
	axesYZ: {{0, 2, 1, 0}, {0, 1, 2, 0}},
	axesXW: {{2, 0, 0, 1}, {1, 0, 0, 2}},
	axesYW: {{0, 2, 0, 1}, {0, 1, 0, 2}},
	axesZW: {{0, 0, 2, 1}, {0, 0, 1, 2}},
}

// The unit vertex on an axis and the same vertex pushed out to 2.
var unitStretched = [16][]vector.Vec4{
	axisX: {{1, 0, 0, 0}, {2, 0, 0, 0}},
	axisY: {{0, 1, 0, 0}, {0, 2, 0, 0}},
	axisZ: {{0, 0, 1, 0}, {0, 0, 2, 0}},
	axisW: {{0, 0, 0, 1}, {0, 0, 0, 2}},
}

// doubled4D is the unit vertex on an axis pushed out to 2.
var doubled4D = [16]vector.Vec4{
	axisX: {2, 0, 0, 0},
	axisY: {0, 2, 0, 0},
	axisZ: {0, 0, 2, 0},
	axisW: {0, 0, 0, 2},
}

// negated4D is the three-axis vertex with -1 on its missing axis.
var negated4D = [16]vector.Vec4{
	axesXYZ: {1, 1, 1, -1},
	axesXYW: {1, 1, -1, 1},
	axesXZW: {1, -1, 1, 1},
	axesYZW: {-1, 1, 1, 1},
}

func eval4D(perm *PermTable, x, y, z, w float64) float64 {
	c := lattice4D.locate(vector.Vec4{x, y, z, w}, perm)

	var value float64
	inSum := c.ins.Sum()
	switch {
	case inSum <= 1:
		value = pentachoronLow(&c, inSum)
	case inSum >= 3:
		value = pentachoronHigh(&c, inSum)
	case inSum <= 2:
		value = dispentachoronLow(&c, inSum)
	default:
		value = dispentachoronHigh(&c, inSum)
	}

	return value / lattice4D.norm
}

// pentachoronLow evaluates the 4-simplex anchored at (0,0,0,0).
func pentachoronLow(c *cell[vector.Vec4], inSum float64) float64 {
	ins := c.ins

	// Determine which two of (0,0,0,1), (0,0,1,0), (0,1,0,0), (1,0,0,0) are
	// closest.
	k := closest{aScore: ins[0], aPoint: axisX, bScore: ins[1], bPoint: axisY}
	k.offerMax(ins[2], axisZ)
	k.offerMax(ins[3], axisW)

	var value float64
	uins := 1 - inSum
	if uins > k.aScore || uins > k.bScore {
		point := k.aPoint
		if k.bScore > k.aScore {
			point = k.bPoint
		}
		value = c.sum(pentaLowSingle[point]...)
	} else {
		value = c.sum(pentaLowPair[k.aPoint|k.bPoint]...)
	}

	return value + c.sum(
		vector.Vec4{0, 0, 0, 0},
		vector.Vec4{1, 0, 0, 0},
		vector.Vec4{0, 1, 0, 0},
		vector.Vec4{0, 0, 1, 0},
		vector.Vec4{0, 0, 0, 1},
	)
}

// pentachoronHigh evaluates the 4-simplex anchored at (1,1,1,1).
func pentachoronHigh(c *cell[vector.Vec4], inSum float64) float64 {
	ins := c.ins

	// Determine which two of (1,1,1,0), (1,1,0,1), (1,0,1,1), (0,1,1,1) are
	// closest.
	k := closest{aScore: ins[0], aPoint: axesYZW, bScore: ins[1], bPoint: axesXZW}
	k.offerMin(ins[2], axesXYW)
	k.offerMin(ins[3], axesXYZ)

	var value float64
	uins := 4 - inSum
	if uins < k.aScore || uins < k.bScore {
		point := k.aPoint
		if k.bScore < k.aScore {
			point = k.bPoint
		}
		value = c.sum(pentaHighSingle[point]...)
	} else {
		value = c.sum(pentaHighPair[k.aPoint&k.bPoint]...)
	}

	return value + c.sum(
		vector.Vec4{1, 1, 1, 0},
		vector.Vec4{1, 1, 0, 1},
		vector.Vec4{1, 0, 1, 1},
		vector.Vec4{0, 1, 1, 1},
		vector.Vec4{1, 1, 1, 1},
	)
}

// dispentachoronLow evaluates the first rectified 4-simplex, 1 < sum <= 2.
func dispentachoronLow(c *cell[vector.Vec4], inSum float64) float64 {
	ins := c.ins
	k := closest{aBig: true, bBig: true}

	// Decide between (1,1,0,0) and (0,0,1,1).
	if ins[0]+ins[1] > ins[2]+ins[3] {
		k.aScore, k.aPoint = ins[0]+ins[1], axesXY
	} else {
		k.aScore, k.aPoint = ins[2]+ins[3], axesZW
	}

	// Decide between (1,0,1,0) and (0,1,0,1).
	if ins[0]+ins[2] > ins[1]+ins[3] {
		k.bScore, k.bPoint = ins[0]+ins[2], axesXZ
	} else {
		k.bScore, k.bPoint = ins[1]+ins[3], axesYW
	}

	// The closer of (1,0,0,1) and (0,1,1,0) replaces the further of a and b,
	// if closer still.
	if ins[0]+ins[3] > ins[1]+ins[2] {
		k.offerMax(ins[0]+ins[3], axesXW)
	} else {
		k.offerMax(ins[1]+ins[2], axesYZ)
	}

	// Then each unit vertex gets a chance.
	k.offerMaxSide(2-inSum+ins[0], axisX, false)
	k.offerMaxSide(2-inSum+ins[1], axisY, false)
	k.offerMaxSide(2-inSum+ins[2], axisZ, false)
	k.offerMaxSide(2-inSum+ins[3], axisW, false)

	var value float64
	switch {
	case k.aBig && k.bBig:
		// Both closest points on the bigger side.
		value = c.sum(tripleSpread[k.aPoint|k.bPoint]...) +
			c.contribute(doubled4D[k.aPoint&k.bPoint])
	case !k.aBig && !k.bBig:
		// Both closest points on the smaller side.
		value = c.contribute(vector.Vec4{0, 0, 0, 0}) +
			c.sum(pairNegated[k.aPoint|k.bPoint]...)
	default:
		// One point on each side.
		big, small := k.aPoint, k.bPoint
		if k.bBig {
			big, small = k.bPoint, k.aPoint
		}
		value = c.sum(pairNegated[big]...) + c.contribute(doubled4D[small])
	}

	return value + c.sum(
		vector.Vec4{1, 0, 0, 0},
		vector.Vec4{0, 1, 0, 0},
		vector.Vec4{0, 0, 1, 0},
		vector.Vec4{0, 0, 0, 1},
		vector.Vec4{1, 1, 0, 0},
		vector.Vec4{1, 0, 1, 0},
		vector.Vec4{1, 0, 0, 1},
		vector.Vec4{0, 1, 1, 0},
		vector.Vec4{0, 1, 0, 1},
		vector.Vec4{0, 0, 1, 1},
	)
}

// dispentachoronHigh evaluates the second rectified 4-simplex, 2 < sum < 3.
func dispentachoronHigh(c *cell[vector.Vec4], inSum float64) float64 {
	ins := c.ins
	k := closest{aBig: true, bBig: true}

	// Decide between (0,0,1,1) and (1,1,0,0).
	if ins[0]+ins[1] < ins[2]+ins[3] {
		k.aScore, k.aPoint = ins[0]+ins[1], axesZW
	} else {
		k.aScore, k.aPoint = ins[2]+ins[3], axesXY
	}

	// Decide between (0,1,0,1) and (1,0,1,0).
	if ins[0]+ins[2] < ins[1]+ins[3] {
		k.bScore, k.bPoint = ins[0]+ins[2], axesYW
	} else {
		k.bScore, k.bPoint = ins[1]+ins[3], axesXZ
	}

	// The closer of (0,1,1,0) and (1,0,0,1) replaces the further of a and b,
	// if closer still.
	if ins[0]+ins[3] < ins[1]+ins[2] {
		k.offerMin(ins[0]+ins[3], axesYZ)
	} else {
		k.offerMin(ins[1]+ins[2], axesXW)
	}

	k.offerMinSide(3-inSum+ins[0], axesYZW, false)
	k.offerMinSide(3-inSum+ins[1], axesXZW, false)
	k.offerMinSide(3-inSum+ins[2], axesXYW, false)
	k.offerMinSide(3-inSum+ins[3], axesXYZ, false)

	var value float64
	switch {
	case k.aBig && k.bBig:
		// Both closest points on the bigger side.
		value = c.sum(unitStretched[k.aPoint&k.bPoint]...) +
			c.contribute(negated4D[k.aPoint|k.bPoint])
	case !k.aBig && !k.bBig:
		// Both closest points on the smaller side.
		value = c.contribute(vector.Vec4{1, 1, 1, 1}) +
			c.sum(pairDoubled[k.aPoint&k.bPoint]...)
	default:
		big, small := k.aPoint, k.bPoint
		if k.bBig {
			big, small = k.bPoint, k.aPoint
		}
		value = c.sum(pairDoubled[big]...) + c.contribute(negated4D[small])
	}

	return value + c.sum(
		vector.Vec4{1, 1, 1, 0},
		vector.Vec4{1, 1, 0, 1},
		vector.Vec4{1, 0, 1, 1},
		vector.Vec4{0, 1, 1, 1},
		vector.Vec4{1, 1, 0, 0},
		vector.Vec4{1, 0, 1, 0},
		vector.Vec4{1, 0, 0, 1},
		vector.Vec4{0, 1, 1, 0},
		vector.Vec4{0, 1, 0, 1},
		vector.Vec4{0, 0, 1, 1},
	)
}
