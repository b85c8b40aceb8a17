package geometry

// Arrangement selects the diagonal orientation used when a structured
// surface mesh is derived from a triangulation. AlternateLeft and
// AlternateRight exist in mesh kernels but are incompatible with
// structured volumes, so only Left and Right are representable here.
type Arrangement string

const (
	Left  Arrangement = "Left"
	Right Arrangement = "Right"
)

// Structure is a structured-mesh directive. For curves, NPoints,
// MeshType and Coef prescribe the node distribution along the curve.
// For surfaces and volumes, CornerTags and (surfaces only) Arrangement
// are resolved by the owning block from its structure type before the
// directive is handed to the kernel.
type Structure struct {
	Name        string // "curve", "surface" or "volume"
	NPoints     int
	MeshType    string // e.g. "progression", "bump"
	Coef        float64
	CornerTags  []int
	Arrangement Arrangement
}

// CurveStructure creates a structured-mesh directive for a curve.
func CurveStructure(nPoints int, meshType string, coef float64) *Structure {
	return &Structure{Name: "curve", NPoints: nPoints, MeshType: meshType, Coef: coef}
}

// SurfaceStructure creates an unresolved structured-mesh directive for
// a surface.
func SurfaceStructure() *Structure {
	return &Structure{Name: "surface"}
}

// VolumeStructure creates an unresolved structured-mesh directive for
// a volume.
func VolumeStructure() *Structure {
	return &Structure{Name: "volume"}
}

// Quadrate is a recombination directive: triangles to quadrangles on a
// surface, tetrahedra to hexahedra in a volume.
type Quadrate struct {
	Name string // "surface" or "volume"
}

// SurfaceQuadrate creates a recombination directive for a surface.
func SurfaceQuadrate() *Quadrate {
	return &Quadrate{Name: "surface"}
}
