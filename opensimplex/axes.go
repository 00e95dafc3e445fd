package opensimplex

// axes is a set of lattice axes. A vertex of the unit hypercube is named by
// the axes on which its coordinate is 1, so (1,0,1) is axisX|axisZ.
type axes uint8

const (
	axisX axes = 1 << iota
	axisY
	axisZ
	axisW
)

const (
	axesXY   = axisX | axisY
	axesXZ   = axisX | axisZ
	axesYZ   = axisY | axisZ
	axesXW   = axisX | axisW
	axesYW   = axisY | axisW
	axesZW   = axisZ | axisW
	axesXYZ  = axisX | axisY | axisZ
	axesXYW  = axisX | axisY | axisW
	axesXZW  = axisX | axisZ | axisW
	axesYZW  = axisY | axisZ | axisW
	axesXYZW = axisX | axisY | axisZ | axisW
)

// closest tracks the two best-scoring candidate vertices while a region is
// being classified. Which score counts as better depends on the region.
type closest struct {
	aScore, bScore float64
	aPoint, bPoint axes
	aBig, bBig     bool
}

// offerMax replaces the weaker of a and b with point when score beats it.
// Ties keep a and b in place.
func (c *closest) offerMax(score float64, point axes) {
	if c.aScore >= c.bScore && score > c.bScore {
		c.bScore, c.bPoint = score, point
	} else if c.aScore < c.bScore && score > c.aScore {
		c.aScore, c.aPoint = score, point
	}
}

// offerMin is offerMax for regions where a smaller score is closer.
func (c *closest) offerMin(score float64, point axes) {
	if c.aScore <= c.bScore && score < c.bScore {
		c.bScore, c.bPoint = score, point
	} else if c.aScore > c.bScore && score < c.aScore {
		c.aScore, c.aPoint = score, point
	}
}

// offerMaxSide is offerMax that also records which side of the rectified
// region the new point lies on.
func (c *closest) offerMaxSide(score float64, point axes, big bool) {
	if c.aScore >= c.bScore && score > c.bScore {
		c.bScore, c.bPoint, c.bBig = score, point, big
	} else if c.aScore < c.bScore && score > c.aScore {
		c.aScore, c.aPoint, c.aBig = score, point, big
	}
}

func (c *closest) offerMinSide(score float64, point axes, big bool) {
	if c.aScore <= c.bScore && score < c.bScore {
		c.bScore, c.bPoint, c.bBig = score, point, big
	} else if c.aScore > c.bScore && score < c.aScore {
		c.aScore, c.aPoint, c.aBig = score, point, big
	}
}
