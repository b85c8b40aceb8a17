// Package transform provides the reversible geometric operations applied
// to block points: translation, rotation about an arbitrary axis, and
// coordinate-system changes. Ordered transform lists are reduced to a
// single equivalent operation per point where algebra allows.
package transform

import (
	"fmt"
	"math"

	"github.com/somesortofme/gmsh-scripts/pkg/geometry"
)

// Transform mutates a point's coordinates in place. Implementations that
// are affine additionally expose their matrix form for reduction.
type Transform interface {
	Apply(p *geometry.Point) error
}

// affineTransform is implemented by transforms reducible to a single
// linear map plus translation.
type affineTransform interface {
	Transform
	affine() affine
}

// Translate shifts a point by a constant delta.
type Translate struct {
	Delta geometry.Vec3
}

func (t Translate) Apply(p *geometry.Point) error {
	p.Coordinates = p.Coordinates.Add(t.Delta)
	return nil
}

func (t Translate) affine() affine {
	a := identity()
	a.t = t.Delta
	return a
}

// Rotate turns a point about an axis through Origin along Direction by
// Angle radians, following the right-hand rule.
type Rotate struct {
	Origin    geometry.Vec3
	Direction geometry.Vec3
	Angle     float64
}

// NewRotate builds a rotation from an angle given in degrees, the form
// used by declarative input.
func NewRotate(origin, direction geometry.Vec3, angleDeg float64) Rotate {
	return Rotate{Origin: origin, Direction: direction, Angle: angleDeg * math.Pi / 180}
}

func (r Rotate) Apply(p *geometry.Point) error {
	p.Coordinates = r.affine().apply(p.Coordinates)
	return nil
}

// affine returns the Rodrigues rotation matrix about the axis, with the
// translation part shifting the rotation center to Origin.
func (r Rotate) affine() affine {
	k := r.Direction.Normalize()
	c, s := math.Cos(r.Angle), math.Sin(r.Angle)
	ic := 1 - c
	a := affine{m: [3][3]float64{
		{c + k.X*k.X*ic, k.X*k.Y*ic - k.Z*s, k.X*k.Z*ic + k.Y*s},
		{k.Y*k.X*ic + k.Z*s, c + k.Y*k.Y*ic, k.Y*k.Z*ic - k.X*s},
		{k.Z*k.X*ic - k.Y*s, k.Z*k.Y*ic + k.X*s, c + k.Z*k.Z*ic},
	}}
	a.t = r.Origin.Sub(a.apply(r.Origin))
	return a
}

// CylindricalToCartesian resolves a point in cylindrical coordinates
// (radius, azimuth, height) to Cartesian. Points already in Cartesian
// pass through unchanged.
type CylindricalToCartesian struct{}

func (CylindricalToCartesian) Apply(p *geometry.Point) error {
	if _, ok := p.System.(geometry.Cylindrical); !ok {
		return nil
	}
	c := p.Coordinates
	p.Coordinates = geometry.Vec3{
		X: c.X * math.Cos(c.Y),
		Y: c.X * math.Sin(c.Y),
		Z: c.Z,
	}
	p.System = geometry.Cartesian{}
	return nil
}

// BlockToCartesian resolves a block-relative point (u, v, w in [-1, 1])
// to Cartesian by trilinear interpolation over 8 corner points. Corners
// attached to the point's own system take precedence over the
// transform's, matching re-anchoring against the parent's current
// corners.
type BlockToCartesian struct {
	Corners [8]geometry.Vec3
}

// cornerSigns is the (su, sv, sw) half-extent sign pattern per corner.
var cornerSigns = [8][3]float64{
	{1, 1, -1}, {-1, 1, -1}, {-1, -1, -1}, {1, -1, -1},
	{1, 1, 1}, {-1, 1, 1}, {-1, -1, 1}, {1, -1, 1},
}

func (t BlockToCartesian) Apply(p *geometry.Point) error {
	rel, ok := p.System.(*geometry.BlockRelative)
	if !ok {
		return nil
	}
	corners := t.Corners
	if rel.Corners != ([8]geometry.Vec3{}) {
		corners = rel.Corners
	}
	u, v, w := p.Coordinates.X, p.Coordinates.Y, p.Coordinates.Z
	var out geometry.Vec3
	for i, s := range cornerSigns {
		weight := (1 + s[0]*u) * (1 + s[1]*v) * (1 + s[2]*w) / 8
		out = out.Add(corners[i].Scale(weight))
	}
	p.Coordinates = out
	p.System = geometry.Cartesian{}
	return nil
}

// Reduce applies an ordered transform list to a point, first resolving
// the point's own coordinate system to Cartesian, then folding runs of
// adjacent affine transforms into a single map so each point is touched
// the minimum number of times.
func Reduce(ts []Transform, p *geometry.Point) error {
	if err := resolveSystem(p); err != nil {
		return err
	}
	pending := identity()
	hasPending := false
	flush := func() {
		if hasPending {
			p.Coordinates = pending.apply(p.Coordinates)
			pending = identity()
			hasPending = false
		}
	}
	for _, t := range ts {
		if at, ok := t.(affineTransform); ok {
			pending = compose(at.affine(), pending)
			hasPending = true
			continue
		}
		flush()
		if err := t.Apply(p); err != nil {
			return err
		}
	}
	flush()
	return nil
}

// resolveSystem converts a point's coordinates to Cartesian according to
// its own coordinate system.
func resolveSystem(p *geometry.Point) error {
	switch s := p.System.(type) {
	case nil, geometry.Cartesian:
		return nil
	case geometry.Cylindrical:
		return CylindricalToCartesian{}.Apply(p)
	case *geometry.BlockRelative:
		if s.Corners == ([8]geometry.Vec3{}) {
			return fmt.Errorf("block-relative point %v has no anchor corners", p.Coordinates)
		}
		return BlockToCartesian{}.Apply(p)
	default:
		return fmt.Errorf("unsupported coordinate system %q", p.System)
	}
}
