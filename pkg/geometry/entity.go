// Package geometry defines the entity data model shared by the block
// hierarchy and the geometry kernel: points, curves, curve loops,
// surfaces, surface loops and volumes. Entities start out as local
// placeholders (Tag == 0) and are promoted to kernel-backed entities
// carrying an opaque positive tag during registration.
package geometry

// Point is a 3D point with an optional mesh-size hint and an associated
// coordinate system. A nil CoordinateSystem means Cartesian.
type Point struct {
	Coordinates Vec3
	MeshSize    float64
	System      CoordinateSystem
	Tag         int
}

// NewPoint creates an unregistered Cartesian point.
func NewPoint(x, y, z float64) *Point {
	return &Point{Coordinates: Vec3{x, y, z}, System: Cartesian{}}
}

// Registered reports whether the point carries a kernel tag.
func (p *Point) Registered() bool { return p.Tag != 0 }

// Curve is an edge of a block: a named curve type ("line", "spline", ...)
// with interior control points. The two boundary points are spliced in
// from the owning block's corners during registration, after which
// Points holds start + interior + end.
type Curve struct {
	Name   string
	Points []*Point
	Tag    int
}

// NewCurve creates an unregistered curve of the given type.
func NewCurve(name string) *Curve {
	return &Curve{Name: name}
}

// Registered reports whether the curve carries a kernel tag.
func (c *Curve) Registered() bool { return c.Tag != 0 }

// CurveLoop is an ordered list of 4 curves with per-curve orientation
// signs (+1 or -1), bounding one surface.
type CurveLoop struct {
	Curves []*Curve
	Signs  []int
	Tag    int
}

// Registered reports whether the loop carries a kernel tag.
func (l *CurveLoop) Registered() bool { return l.Tag != 0 }

// Surface is a face bounded by exactly one curve loop. Name selects the
// fill style ("fill" by default).
type Surface struct {
	Name       string
	CurveLoops []*CurveLoop
	Zone       string
	Tag        int
}

// NewSurface creates an unregistered surface with the given fill style.
func NewSurface(name string) *Surface {
	return &Surface{Name: name}
}

// Registered reports whether the surface carries a kernel tag.
func (s *Surface) Registered() bool { return s.Tag != 0 }

// SurfaceLoop is an ordered set of surfaces bounding a closed shell.
// The first loop of a volume is its outer boundary; any further loops
// are internal cavities.
type SurfaceLoop struct {
	Surfaces []*Surface
	Tag      int
}

// Registered reports whether the loop carries a kernel tag.
func (l *SurfaceLoop) Registered() bool { return l.Tag != 0 }

// Volume references one outer surface loop plus zero or more internal
// cavity loops, and carries a zone name.
type Volume struct {
	SurfaceLoops []*SurfaceLoop
	Zone         string
	Tag          int
}

// Registered reports whether the volume carries a kernel tag.
func (v *Volume) Registered() bool { return v.Tag != 0 }
