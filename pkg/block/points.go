package block

import "github.com/somesortofme/gmsh-scripts/pkg/geometry"

// cornerSigns is the half-extent sign pattern (sx, sy, sz) of each of
// the 8 corners in canonical order.
var cornerSigns = [8][3]float64{
	{1, 1, -1}, {-1, 1, -1}, {-1, -1, -1}, {1, -1, -1},
	{1, 1, 1}, {-1, 1, 1}, {-1, -1, 1}, {1, -1, 1},
}

// DefaultPoints returns the corners of the canonical cube with side 2,
// corners at ±1 on each axis.
func DefaultPoints() []*geometry.Point {
	return CubePoints(2)
}

// CubePoints returns the 8 corners of an origin-centred cube with the
// given side length.
func CubePoints(side float64) []*geometry.Point {
	return BoxPoints(side, side, side)
}

// BoxPoints returns the 8 corners of an origin-centred box with the
// given side lengths, in canonical corner order.
func BoxPoints(lx, ly, lz float64) []*geometry.Point {
	a, b, c := 0.5*lx, 0.5*ly, 0.5*lz
	ps := make([]*geometry.Point, 8)
	for i, s := range cornerSigns {
		ps[i] = geometry.NewPoint(s[0]*a, s[1]*b, s[2]*c)
	}
	return ps
}

// PointsFromCoordinates builds corner points from 8 explicit coordinate
// triples in canonical order.
func PointsFromCoordinates(coords [8]geometry.Vec3) []*geometry.Point {
	ps := make([]*geometry.Point, 8)
	for i, c := range coords {
		ps[i] = geometry.NewPoint(c.X, c.Y, c.Z)
	}
	return ps
}
