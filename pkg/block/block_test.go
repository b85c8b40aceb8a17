package block

import (
	"testing"

	"github.com/somesortofme/gmsh-scripts/pkg/geometry"
)

func TestNewDefaults(t *testing.T) {
	b, err := New()
	if err != nil {
		t.Fatal(err)
	}
	if len(b.Points) != 8 || len(b.Curves) != 12 || len(b.Surfaces) != 6 || len(b.Volumes) != 1 {
		t.Fatalf("entity counts: %d points, %d curves, %d surfaces, %d volumes",
			len(b.Points), len(b.Curves), len(b.Surfaces), len(b.Volumes))
	}
	if b.Volumes[0].Zone != "V" {
		t.Errorf("default volume zone = %q", b.Volumes[0].Zone)
	}
	if !b.DoRegister || !b.DoRegisterChildren {
		t.Error("registration flags default off")
	}
	if b.DoUnregister {
		t.Error("DoUnregister defaults on")
	}
	for _, c := range b.Curves {
		if c.Name != "line" {
			t.Errorf("default curve name = %q", c.Name)
		}
	}
	for _, s := range b.Surfaces {
		if s.Name != "fill" {
			t.Errorf("default surface name = %q", s.Name)
		}
	}
}

func TestCubeCorners(t *testing.T) {
	b, err := New(WithCubeSize(2))
	if err != nil {
		t.Fatal(err)
	}
	for i, p := range b.Points {
		want := geometry.Vec3{X: cornerSigns[i][0], Y: cornerSigns[i][1], Z: cornerSigns[i][2]}
		if p.Coordinates != want {
			t.Errorf("corner %d = %v, want %v", i, p.Coordinates, want)
		}
	}
}

func TestBoxCorners(t *testing.T) {
	b, err := New(WithBoxSize(2, 4, 6))
	if err != nil {
		t.Fatal(err)
	}
	want := geometry.Vec3{X: 1, Y: 2, Z: -3}
	if b.Points[0].Coordinates != want {
		t.Errorf("corner 0 = %v, want %v", b.Points[0].Coordinates, want)
	}
}

func TestNewValidatesCounts(t *testing.T) {
	if _, err := New(WithPoints(DefaultPoints()[:7])); err == nil {
		t.Error("expected error for 7 corner points")
	}
	if _, err := New(WithVolumes([]*geometry.Volume{{}, {}})); err == nil {
		t.Error("expected error for 2 volumes")
	}
}

func TestNewRejectsBadStructureType(t *testing.T) {
	if _, err := New(WithStructureType("RRR")); err == nil {
		t.Error("expected error for unimplemented structure type")
	}
}

func TestWithStructureAll(t *testing.T) {
	b, err := New(WithStructureAll(5, "progression", 1.2))
	if err != nil {
		t.Fatal(err)
	}
	for i, st := range b.CurveStructures {
		if st == nil {
			t.Fatalf("curve %d unstructured", i)
		}
		if st.NPoints != 5 || st.MeshType != "progression" || st.Coef != 1.2 {
			t.Errorf("curve %d structure = %+v", i, st)
		}
	}
	for i, st := range b.SurfaceStructures {
		if st == nil {
			t.Errorf("surface %d unstructured", i)
		}
	}
	if b.VolumeStructures[0] == nil {
		t.Error("volume unstructured")
	}
}

func TestWithStructureXYZ(t *testing.T) {
	b, err := New(WithStructureXYZ(nil, geometry.CurveStructure(3, "bump", 2), nil))
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 12; i++ {
		st := b.CurveStructures[i]
		if i >= 4 && i < 8 {
			if st == nil || st.NPoints != 3 {
				t.Errorf("Y curve %d = %+v", i, st)
			}
		} else if st != nil {
			t.Errorf("curve %d structured unexpectedly", i)
		}
	}
	if b.VolumeStructures[0] == nil {
		t.Error("any structured axis must mark the volume")
	}
}

func TestWithZones(t *testing.T) {
	b, err := New(WithZone("core"))
	if err != nil {
		t.Fatal(err)
	}
	if b.Volumes[0].Zone != "core" {
		t.Errorf("volume zone = %q", b.Volumes[0].Zone)
	}

	b, err = New(WithZones([]string{"v"}, nil, nil, nil))
	if err != nil {
		t.Fatal(err)
	}
	if len(b.SurfaceZones) != 6 {
		t.Error("nil surface list must keep defaults")
	}
}

func TestWithChildrenSetsParent(t *testing.T) {
	child, err := New()
	if err != nil {
		t.Fatal(err)
	}
	parent, err := New(WithChildren([]*Block{child}, nil))
	if err != nil {
		t.Fatal(err)
	}
	if child.Parent != parent {
		t.Error("child parent back-reference not set")
	}
	if len(parent.ChildrenTransforms) != 1 {
		t.Errorf("children transform lists = %d, want 1", len(parent.ChildrenTransforms))
	}
}

func TestDefaultZoneLists(t *testing.T) {
	b, err := New()
	if err != nil {
		t.Fatal(err)
	}
	if b.SurfaceZones[FaceNX] != "NX" || b.SurfaceZones[FaceZ] != "Z" {
		t.Errorf("surface zones = %v", b.SurfaceZones)
	}
	if len(b.PointZones) != 8 || len(b.CurveZones) != 12 {
		t.Errorf("zone list lengths: %d points, %d curves", len(b.PointZones), len(b.CurveZones))
	}
}
