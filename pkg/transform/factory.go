package transform

import (
	"fmt"

	"github.com/somesortofme/gmsh-scripts/pkg/geometry"
)

// Spec is the declarative description of a transform, as it appears in
// plain-data block definitions.
type Spec struct {
	Name      string    `json:"name" yaml:"name"`
	Delta     []float64 `json:"delta,omitempty" yaml:"delta,omitempty"`
	Origin    []float64 `json:"origin,omitempty" yaml:"origin,omitempty"`
	Direction []float64 `json:"direction,omitempty" yaml:"direction,omitempty"`
	Angle     float64   `json:"angle,omitempty" yaml:"angle,omitempty"` // degrees
}

// FromSpec constructs a transform from its declarative description.
// parentCorners supplies the 8 anchor points required by the block
// coordinate-system change; it may be nil for every other transform.
func FromSpec(s Spec, parentCorners []geometry.Vec3) (Transform, error) {
	switch s.Name {
	case "translate":
		d, err := vec3(s.Delta, "delta")
		if err != nil {
			return nil, fmt.Errorf("translate: %w", err)
		}
		return Translate{Delta: d}, nil
	case "rotate":
		origin := geometry.Vec3{}
		if len(s.Origin) != 0 {
			o, err := vec3(s.Origin, "origin")
			if err != nil {
				return nil, fmt.Errorf("rotate: %w", err)
			}
			origin = o
		}
		dir, err := vec3(s.Direction, "direction")
		if err != nil {
			return nil, fmt.Errorf("rotate: %w", err)
		}
		return NewRotate(origin, dir, s.Angle), nil
	case "cylindrical_to_cartesian":
		return CylindricalToCartesian{}, nil
	case "block_to_cartesian":
		if len(parentCorners) != 8 {
			return nil, fmt.Errorf("block_to_cartesian: parent with 8 corner points required, got %d", len(parentCorners))
		}
		var t BlockToCartesian
		copy(t.Corners[:], parentCorners)
		return t, nil
	default:
		return nil, fmt.Errorf("unknown transform %q", s.Name)
	}
}

func vec3(xs []float64, field string) (geometry.Vec3, error) {
	if len(xs) != 3 {
		return geometry.Vec3{}, fmt.Errorf("%s must have 3 components, got %v", field, xs)
	}
	return geometry.Vec3{X: xs[0], Y: xs[1], Z: xs[2]}, nil
}
