package config

import (
	"fmt"

	"github.com/somesortofme/gmsh-scripts/pkg/block"
	"github.com/somesortofme/gmsh-scripts/pkg/geometry"
	"github.com/somesortofme/gmsh-scripts/pkg/transform"
)

// parseCurves accepts nil (12 lines) or a list of 12 entries, each a
// curve type name, or a map {name, points} with interior control points.
func parseCurves(v any) ([]*geometry.Curve, error) {
	if v == nil {
		return nil, nil
	}
	l, ok := asList(v)
	if !ok {
		return nil, fmt.Errorf("curves: unrecognized shape %v", v)
	}
	out := make([]*geometry.Curve, len(l))
	for i, e := range l {
		switch c := e.(type) {
		case nil:
			out[i] = geometry.NewCurve("line")
		case string:
			out[i] = geometry.NewCurve(c)
		case map[string]any:
			name := "line"
			if s, ok := asString(c["name"]); ok {
				name = s
			}
			curve := geometry.NewCurve(name)
			if c["points"] != nil {
				pts, ok := asList(c["points"])
				if !ok {
					return nil, fmt.Errorf("curves[%d]: points must be a list, got %v", i, c["points"])
				}
				for j, pe := range pts {
					coord, ok := asFloatList(pe)
					if !ok || len(coord) < 3 {
						return nil, fmt.Errorf("curves[%d].points[%d]: unrecognized coordinate %v", i, j, pe)
					}
					p := geometry.NewPoint(coord[0], coord[1], coord[2])
					if len(coord) > 3 {
						p.MeshSize = coord[3]
					}
					curve.Points = append(curve.Points, p)
				}
			}
			out[i] = curve
		default:
			return nil, fmt.Errorf("curves[%d]: unrecognized shape %v", i, e)
		}
	}
	return out, nil
}

// parseSurfaces accepts nil (6 fill surfaces) or a list of 6 maps with
// optional name and zone.
func parseSurfaces(v any) ([]*geometry.Surface, error) {
	if v == nil {
		return nil, nil
	}
	l, ok := asList(v)
	if !ok {
		return nil, fmt.Errorf("surfaces: unrecognized shape %v", v)
	}
	out := make([]*geometry.Surface, len(l))
	for i, e := range l {
		m, ok := asMap(e)
		if !ok {
			return nil, fmt.Errorf("surfaces[%d]: unrecognized shape %v", i, e)
		}
		name := "fill"
		if s, ok := asString(m["name"]); ok {
			name = s
		}
		surf := geometry.NewSurface(name)
		if z, ok := asString(m["zone"]); ok {
			surf.Zone = z
		}
		out[i] = surf
	}
	return out, nil
}

// parseVolumes accepts nil (1 volume), a single map, or a list of maps
// with an optional zone.
func parseVolumes(v any) ([]*geometry.Volume, error) {
	if v == nil {
		return nil, nil
	}
	if m, ok := asMap(v); ok {
		return []*geometry.Volume{volumeFromMap(m)}, nil
	}
	l, ok := asList(v)
	if !ok {
		return nil, fmt.Errorf("volumes: unrecognized shape %v", v)
	}
	out := make([]*geometry.Volume, len(l))
	for i, e := range l {
		m, ok := asMap(e)
		if !ok {
			return nil, fmt.Errorf("volumes[%d]: unrecognized shape %v", i, e)
		}
		out[i] = volumeFromMap(m)
	}
	return out, nil
}

func volumeFromMap(m map[string]any) *geometry.Volume {
	v := &geometry.Volume{}
	if z, ok := asString(m["zone"]); ok {
		v.Zone = z
	}
	return v
}

// parseZoneOption maps the zone field to a block option: a string
// overrides the volume zone only, a list overrides volume, surface,
// curve and point zone lists in that order.
func parseZoneOption(v any) (block.Option, error) {
	if v == nil {
		return nil, nil
	}
	if s, ok := asString(v); ok {
		return block.WithZone(s), nil
	}
	l, ok := asList(v)
	if !ok {
		return nil, fmt.Errorf("zone: unrecognized shape %v", v)
	}
	lists := make([][]string, 4)
	for i, e := range l {
		if i >= 4 {
			return nil, fmt.Errorf("zone: at most 4 name lists allowed, got %d", len(l))
		}
		el, ok := asList(e)
		if !ok {
			return nil, fmt.Errorf("zone[%d]: expected a name list, got %v", i, e)
		}
		names := make([]string, len(el))
		for j, n := range el {
			s, ok := asString(n)
			if !ok {
				return nil, fmt.Errorf("zone[%d][%d]: expected a name, got %v", i, j, n)
			}
			names[j] = s
		}
		lists[i] = names
	}
	return block.WithZones(lists[0], lists[1], lists[2], lists[3]), nil
}

// parseStructureOption maps the structure field to a block option:
// a single [nPoints, meshType, coef] triple structures all directions,
// a 3-element list gives per-axis triples with null disabling an axis.
func parseStructureOption(v any) (block.Option, error) {
	if v == nil {
		return nil, nil
	}
	l, ok := asList(v)
	if !ok {
		return nil, fmt.Errorf("structure: unrecognized shape %v", v)
	}
	switch len(l) {
	case 1:
		st, err := parseCurveDistribution(l[0])
		if err != nil {
			return nil, fmt.Errorf("structure: %w", err)
		}
		return block.WithStructureAll(st.NPoints, st.MeshType, st.Coef), nil
	case 3:
		dirs := make([]*geometry.Structure, 3)
		for i, e := range l {
			if e == nil {
				continue
			}
			st, err := parseCurveDistribution(e)
			if err != nil {
				return nil, fmt.Errorf("structure[%d]: %w", i, err)
			}
			dirs[i] = st
		}
		return block.WithStructureXYZ(dirs[0], dirs[1], dirs[2]), nil
	default:
		return nil, fmt.Errorf("structure: expected 1 or 3 directives, got %d", len(l))
	}
}

func parseCurveDistribution(v any) (*geometry.Structure, error) {
	l, ok := asList(v)
	if !ok || len(l) != 3 {
		return nil, fmt.Errorf("expected [nPoints, meshType, coef], got %v", v)
	}
	n, okN := asInt(l[0])
	mt, okS := asString(l[1])
	coef, okC := asFloat(l[2])
	if !okN || !okS || !okC {
		return nil, fmt.Errorf("expected [nPoints, meshType, coef], got %v", v)
	}
	return geometry.CurveStructure(n, mt, coef), nil
}

// parseTransforms accepts a list of transform descriptions:
// a name string, [dx, dy, dz] (translate), [ax, ay, az, angle] (rotate
// about the origin), [ox, oy, oz, ax, ay, az, angle] (rotate about a
// point), or a map with an explicit name and arguments.
func parseTransforms(v any, parent *block.Block) ([]transform.Transform, error) {
	if v == nil {
		return nil, nil
	}
	l, ok := asList(v)
	if !ok {
		return nil, fmt.Errorf("transforms: unrecognized shape %v", v)
	}
	var parentCorners []geometry.Vec3
	if parent != nil {
		for _, p := range parent.Points {
			parentCorners = append(parentCorners, p.Coordinates)
		}
	}
	out := make([]transform.Transform, 0, len(l))
	for i, e := range l {
		spec, err := transformSpec(e)
		if err != nil {
			return nil, fmt.Errorf("transforms[%d]: %w", i, err)
		}
		t, err := transform.FromSpec(spec, parentCorners)
		if err != nil {
			return nil, fmt.Errorf("transforms[%d]: %w", i, err)
		}
		out = append(out, t)
	}
	return out, nil
}

func transformSpec(e any) (transform.Spec, error) {
	if s, ok := asString(e); ok {
		return transform.Spec{Name: s}, nil
	}
	if xs, ok := asFloatList(e); ok {
		switch len(xs) {
		case 3:
			return transform.Spec{Name: "translate", Delta: xs}, nil
		case 4:
			return transform.Spec{
				Name: "rotate", Origin: []float64{0, 0, 0},
				Direction: xs[:3], Angle: xs[3],
			}, nil
		case 7:
			return transform.Spec{
				Name: "rotate", Origin: xs[:3],
				Direction: xs[3:6], Angle: xs[6],
			}, nil
		default:
			return transform.Spec{}, fmt.Errorf("expected 3, 4 or 7 numbers, got %v", e)
		}
	}
	if m, ok := asMap(e); ok {
		name, ok := asString(m["name"])
		if !ok {
			return transform.Spec{}, fmt.Errorf("transform map needs a name, got %v", e)
		}
		spec := transform.Spec{Name: name}
		if m["delta"] != nil {
			d, ok := asFloatList(m["delta"])
			if !ok {
				return transform.Spec{}, fmt.Errorf("delta must be numbers, got %v", m["delta"])
			}
			spec.Delta = d
		}
		if m["origin"] != nil {
			o, ok := asFloatList(m["origin"])
			if !ok {
				return transform.Spec{}, fmt.Errorf("origin must be numbers, got %v", m["origin"])
			}
			spec.Origin = o
		}
		if m["direction"] != nil {
			d, ok := asFloatList(m["direction"])
			if !ok {
				return transform.Spec{}, fmt.Errorf("direction must be numbers, got %v", m["direction"])
			}
			spec.Direction = d
		}
		if m["angle"] != nil {
			a, ok := asFloat(m["angle"])
			if !ok {
				return transform.Spec{}, fmt.Errorf("angle must be a number, got %v", m["angle"])
			}
			spec.Angle = a
		}
		return spec, nil
	}
	return transform.Spec{}, fmt.Errorf("unrecognized transform %v", e)
}
