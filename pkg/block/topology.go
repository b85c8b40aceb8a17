package block

// Canonical block topology. Independent of any instance.
//
// Axes:
//	Y
//	Z X
// NX, NY and NZ are the negative X, Y and Z directions.
//
// Corner points:
//	NZ plane:    Z plane:
//	P1 P0        P5 P4
//	P2 P3        P6 P7
//
// Curves run from the first corner to the second by the right-hand rule,
// 4 per axis: C0-C3 along X, C4-C7 along Y, C8-C11 along Z.
//
// Surfaces are indexed NX, X, NY, Y, NZ, Z. Each is bounded by 4 curves
// with fixed orientation signs; the sign table is canonical and cannot
// be derived from the curve table at runtime.

// Face indices.
const (
	FaceNX = iota
	FaceX
	FaceNY
	FaceY
	FaceNZ
	FaceZ
)

// curvePoints maps each curve index to its (start, end) corner indices.
var curvePoints = [12][2]int{
	{1, 0}, {5, 4}, {6, 7}, {2, 3}, // X1..X4
	{3, 0}, {2, 1}, {6, 5}, {7, 4}, // Y1..Y4
	{0, 4}, {1, 5}, {2, 6}, {3, 7}, // Z1..Z4
}

// surfaceCurves maps each face to the 4 curve indices bounding it.
var surfaceCurves = [6][4]int{
	{5, 9, 6, 10},  // NX
	{4, 11, 7, 8},  // X
	{10, 2, 11, 3}, // NY
	{0, 8, 1, 9},   // Y
	{0, 5, 3, 4},   // NZ
	{7, 2, 6, 1},   // Z
}

// surfaceCurveSigns holds the orientation sign of each curve within its
// face loop.
var surfaceCurveSigns = [6][4]int{
	{1, 1, -1, -1},  // NX
	{-1, 1, 1, -1},  // X
	{1, 1, -1, -1},  // NY
	{1, 1, -1, -1},  // Y
	{-1, -1, 1, 1},  // NZ
	{-1, -1, 1, 1},  // Z
}

// surfacePoints maps each face to the 4 corner indices forming its
// parametric quad for structured meshing. Fixed for all structure types.
var surfacePoints = [6][4]int{
	{1, 5, 6, 2}, // NX
	{0, 3, 7, 4}, // X
	{3, 2, 6, 7}, // NY
	{0, 4, 5, 1}, // Y
	{0, 1, 2, 3}, // NZ
	{4, 7, 6, 5}, // Z
}

// CurvePoints returns the (start, end) corner indices of curve i.
func CurvePoints(i int) [2]int { return curvePoints[i] }

// SurfaceCurves returns the 4 curve indices bounding face i.
func SurfaceCurves(i int) [4]int { return surfaceCurves[i] }

// SurfaceCurveSigns returns the orientation signs for face i.
func SurfaceCurveSigns(i int) [4]int { return surfaceCurveSigns[i] }

// SurfacePoints returns the 4 parametric corner indices of face i.
func SurfacePoints(i int) [4]int { return surfacePoints[i] }
