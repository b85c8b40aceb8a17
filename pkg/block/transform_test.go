package block

import (
	"math"
	"testing"

	"github.com/somesortofme/gmsh-scripts/pkg/geometry"
	"github.com/somesortofme/gmsh-scripts/pkg/transform"
)

func almostEqual(a, b geometry.Vec3) bool {
	const eps = 1e-9
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps && math.Abs(a.Z-b.Z) < eps
}

func TestTransformAppliesOwnList(t *testing.T) {
	b, err := New(WithCubeSize(2), WithTransforms(
		transform.Translate{Delta: geometry.Vec3{X: 1}},
	))
	if err != nil {
		t.Fatal(err)
	}
	if err := b.Transform(); err != nil {
		t.Fatal(err)
	}
	want := geometry.Vec3{X: 2, Y: 1, Z: -1}
	if !almostEqual(b.Points[0].Coordinates, want) {
		t.Errorf("corner 0 = %v, want %v", b.Points[0].Coordinates, want)
	}
}

func TestTransformComposesDownTheTree(t *testing.T) {
	child, err := New(WithCubeSize(2))
	if err != nil {
		t.Fatal(err)
	}
	parent, err := New(WithCubeSize(2), WithTransforms(
		transform.Translate{Delta: geometry.Vec3{X: 1}},
	))
	if err != nil {
		t.Fatal(err)
	}
	parent.AddChild(child, transform.Translate{Delta: geometry.Vec3{Y: 5}})

	if err := parent.Transform(); err != nil {
		t.Fatal(err)
	}
	// Child gets its per-child transform, then the parent's own list.
	want := geometry.Vec3{X: 2, Y: 6, Z: -1}
	if !almostEqual(child.Points[0].Coordinates, want) {
		t.Errorf("child corner 0 = %v, want %v", child.Points[0].Coordinates, want)
	}
	want = geometry.Vec3{X: 2, Y: 1, Z: -1}
	if !almostEqual(parent.Points[0].Coordinates, want) {
		t.Errorf("parent corner 0 = %v, want %v", parent.Points[0].Coordinates, want)
	}
}

func TestTransformCurveInteriorPoints(t *testing.T) {
	curves := make([]*geometry.Curve, 12)
	for i := range curves {
		curves[i] = geometry.NewCurve("line")
	}
	curves[0] = geometry.NewCurve("polyline")
	curves[0].Points = []*geometry.Point{geometry.NewPoint(0, 1, -1)}

	b, err := New(WithCubeSize(2), WithCurves(curves), WithTransforms(
		transform.Translate{Delta: geometry.Vec3{Z: 10}},
	))
	if err != nil {
		t.Fatal(err)
	}
	if err := b.Transform(); err != nil {
		t.Fatal(err)
	}
	want := geometry.Vec3{Y: 1, Z: 9}
	if !almostEqual(b.Curves[0].Points[0].Coordinates, want) {
		t.Errorf("interior point = %v, want %v", b.Curves[0].Points[0].Coordinates, want)
	}
}

func TestTransformReanchorsBlockRelativeChild(t *testing.T) {
	child, err := New(WithCubeSize(1), WithCoordinateSystem("block"))
	if err != nil {
		t.Fatal(err)
	}
	parent, err := New(WithCubeSize(4), WithChildren([]*Block{child}, nil))
	if err != nil {
		t.Fatal(err)
	}
	if err := parent.Transform(); err != nil {
		t.Fatal(err)
	}
	// Local (±0.5)³ interpolated over the parent's (±2)³ corners lands
	// on (±1)³.
	for i, p := range child.Points {
		want := geometry.Vec3{X: cornerSigns[i][0], Y: cornerSigns[i][1], Z: cornerSigns[i][2]}
		if !almostEqual(p.Coordinates, want) {
			t.Errorf("child corner %d = %v, want %v", i, p.Coordinates, want)
		}
	}
}

func TestTransformBlockRelativeWithoutParent(t *testing.T) {
	b, err := New(WithCoordinateSystem("block"))
	if err != nil {
		t.Fatal(err)
	}
	if err := b.Transform(); err == nil {
		t.Error("expected error for block-relative points without a parent")
	}
}
