package geometry

import "fmt"

// CoordinateSystem describes how a point's raw coordinates are interpreted.
// Cartesian coordinates are used as-is; other systems are resolved to
// Cartesian during transform reduction.
type CoordinateSystem interface {
	coordinateSystem() // marker method restricting implementations to this package
	String() string
}

// Cartesian is the default coordinate system: coordinates are (x, y, z).
type Cartesian struct{}

func (Cartesian) coordinateSystem() {}
func (Cartesian) String() string    { return "cartesian" }

// Cylindrical interprets coordinates as (radius, azimuth, height).
// The azimuth is stored in radians.
type Cylindrical struct{}

func (Cylindrical) coordinateSystem() {}
func (Cylindrical) String() string    { return "cylindrical" }

// BlockRelative interprets coordinates as local (u, v, w) in [-1, 1]
// resolved against a parent block's 8 corner points by trilinear
// interpolation. The corner coordinates are filled in by the owning
// block during transform propagation; a point in this system without a
// parent block is a configuration error.
type BlockRelative struct {
	Corners [8]Vec3
}

func (*BlockRelative) coordinateSystem() {}
func (*BlockRelative) String() string    { return "block" }

// ParseCoordinateSystem maps a coordinate system name to its instance.
func ParseCoordinateSystem(name string) (CoordinateSystem, error) {
	switch name {
	case "", "cartesian":
		return Cartesian{}, nil
	case "cylindrical":
		return Cylindrical{}, nil
	case "block":
		return &BlockRelative{}, nil
	default:
		return nil, fmt.Errorf("unknown coordinate system %q", name)
	}
}
