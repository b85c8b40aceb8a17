package transform

import (
	"math"
	"testing"

	"github.com/somesortofme/gmsh-scripts/pkg/geometry"
)

func almostEqual(a, b geometry.Vec3) bool {
	const eps = 1e-9
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps && math.Abs(a.Z-b.Z) < eps
}

func TestTranslate(t *testing.T) {
	p := geometry.NewPoint(1, 2, 3)
	tr := Translate{Delta: geometry.Vec3{X: 1, Y: -1, Z: 0.5}}
	if err := tr.Apply(p); err != nil {
		t.Fatal(err)
	}
	if !almostEqual(p.Coordinates, geometry.Vec3{X: 2, Y: 1, Z: 3.5}) {
		t.Errorf("translated to %v", p.Coordinates)
	}
}

func TestRotateAboutZ(t *testing.T) {
	p := geometry.NewPoint(1, 0, 0)
	r := NewRotate(geometry.Vec3{}, geometry.Vec3{Z: 1}, 90)
	if err := r.Apply(p); err != nil {
		t.Fatal(err)
	}
	if !almostEqual(p.Coordinates, geometry.Vec3{Y: 1}) {
		t.Errorf("rotated to %v, want (0, 1, 0)", p.Coordinates)
	}
}

func TestRotateAboutShiftedOrigin(t *testing.T) {
	// Rotating the origin point 180 degrees about the axis through
	// (1, 0, 0) lands at (2, 0, 0).
	p := geometry.NewPoint(0, 0, 0)
	r := NewRotate(geometry.Vec3{X: 1}, geometry.Vec3{Z: 1}, 180)
	if err := r.Apply(p); err != nil {
		t.Fatal(err)
	}
	if !almostEqual(p.Coordinates, geometry.Vec3{X: 2}) {
		t.Errorf("rotated to %v, want (2, 0, 0)", p.Coordinates)
	}
}

func TestCylindricalToCartesian(t *testing.T) {
	p := geometry.NewPoint(2, math.Pi/2, 3)
	p.System = geometry.Cylindrical{}
	if err := (CylindricalToCartesian{}).Apply(p); err != nil {
		t.Fatal(err)
	}
	if !almostEqual(p.Coordinates, geometry.Vec3{Y: 2, Z: 3}) {
		t.Errorf("resolved to %v, want (0, 2, 3)", p.Coordinates)
	}
	if _, ok := p.System.(geometry.Cartesian); !ok {
		t.Errorf("system after resolution is %T", p.System)
	}

	// Cartesian points pass through unchanged.
	q := geometry.NewPoint(1, 2, 3)
	if err := (CylindricalToCartesian{}).Apply(q); err != nil {
		t.Fatal(err)
	}
	if !almostEqual(q.Coordinates, geometry.Vec3{X: 1, Y: 2, Z: 3}) {
		t.Errorf("cartesian point changed to %v", q.Coordinates)
	}
}

// unitCubeCorners follows the canonical corner ordering with the given
// half extent.
func unitCubeCorners(h float64) [8]geometry.Vec3 {
	return [8]geometry.Vec3{
		{X: h, Y: h, Z: -h}, {X: -h, Y: h, Z: -h}, {X: -h, Y: -h, Z: -h}, {X: h, Y: -h, Z: -h},
		{X: h, Y: h, Z: h}, {X: -h, Y: h, Z: h}, {X: -h, Y: -h, Z: h}, {X: h, Y: -h, Z: h},
	}
}

func TestBlockToCartesian(t *testing.T) {
	bc := BlockToCartesian{Corners: unitCubeCorners(2)}

	tests := []struct {
		local geometry.Vec3
		want  geometry.Vec3
	}{
		{geometry.Vec3{}, geometry.Vec3{}},
		{geometry.Vec3{X: 1, Y: 1, Z: 1}, geometry.Vec3{X: 2, Y: 2, Z: 2}},
		{geometry.Vec3{X: -1, Y: -1, Z: -1}, geometry.Vec3{X: -2, Y: -2, Z: -2}},
		{geometry.Vec3{X: 0.5}, geometry.Vec3{X: 1}},
	}
	for _, tt := range tests {
		p := geometry.NewPoint(tt.local.X, tt.local.Y, tt.local.Z)
		p.System = &geometry.BlockRelative{}
		if err := bc.Apply(p); err != nil {
			t.Fatal(err)
		}
		if !almostEqual(p.Coordinates, tt.want) {
			t.Errorf("local %v resolved to %v, want %v", tt.local, p.Coordinates, tt.want)
		}
	}
}

func TestBlockToCartesianOwnCornersPrecede(t *testing.T) {
	own := unitCubeCorners(1)
	p := geometry.NewPoint(1, 1, 1)
	p.System = &geometry.BlockRelative{Corners: own}
	bc := BlockToCartesian{Corners: unitCubeCorners(10)}
	if err := bc.Apply(p); err != nil {
		t.Fatal(err)
	}
	if !almostEqual(p.Coordinates, geometry.Vec3{X: 1, Y: 1, Z: 1}) {
		t.Errorf("resolved to %v, want own-corner anchor", p.Coordinates)
	}
}

func TestReduceMatchesSequentialApply(t *testing.T) {
	ts := []Transform{
		Translate{Delta: geometry.Vec3{X: 1}},
		NewRotate(geometry.Vec3{}, geometry.Vec3{Z: 1}, 90),
		Translate{Delta: geometry.Vec3{Y: -2}},
	}

	reduced := geometry.NewPoint(0.3, -0.7, 1.1)
	if err := Reduce(ts, reduced); err != nil {
		t.Fatal(err)
	}

	sequential := geometry.NewPoint(0.3, -0.7, 1.1)
	for _, tr := range ts {
		if err := tr.Apply(sequential); err != nil {
			t.Fatal(err)
		}
	}

	if !almostEqual(reduced.Coordinates, sequential.Coordinates) {
		t.Errorf("reduced %v != sequential %v", reduced.Coordinates, sequential.Coordinates)
	}
}

func TestReduceResolvesSystemFirst(t *testing.T) {
	p := geometry.NewPoint(2, math.Pi, 0)
	p.System = geometry.Cylindrical{}
	if err := Reduce([]Transform{Translate{Delta: geometry.Vec3{Z: 1}}}, p); err != nil {
		t.Fatal(err)
	}
	if !almostEqual(p.Coordinates, geometry.Vec3{X: -2, Z: 1}) {
		t.Errorf("resolved to %v, want (-2, 0, 1)", p.Coordinates)
	}
}

func TestReduceRejectsUnanchoredBlockRelative(t *testing.T) {
	p := geometry.NewPoint(0, 0, 0)
	p.System = &geometry.BlockRelative{}
	if err := Reduce(nil, p); err == nil {
		t.Error("expected error for block-relative point without corners")
	}
}

func TestFromSpec(t *testing.T) {
	tr, err := FromSpec(Spec{Name: "translate", Delta: []float64{1, 2, 3}}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := tr.(Translate); !ok {
		t.Errorf("got %T, want Translate", tr)
	}

	tr, err = FromSpec(Spec{
		Name: "rotate", Origin: []float64{0, 0, 0},
		Direction: []float64{0, 0, 1}, Angle: 90,
	}, nil)
	if err != nil {
		t.Fatal(err)
	}
	r, ok := tr.(Rotate)
	if !ok {
		t.Fatalf("got %T, want Rotate", tr)
	}
	if math.Abs(r.Angle-math.Pi/2) > 1e-12 {
		t.Errorf("angle %v not converted to radians", r.Angle)
	}

	if _, err := FromSpec(Spec{Name: "block_to_cartesian"}, nil); err == nil {
		t.Error("expected error without parent corners")
	}
	if _, err := FromSpec(Spec{Name: "warp"}, nil); err == nil {
		t.Error("expected error for unknown transform name")
	}
}
