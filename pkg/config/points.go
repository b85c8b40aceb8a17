package config

import (
	"fmt"
	"math"

	"github.com/somesortofme/gmsh-scripts/pkg/block"
	"github.com/somesortofme/gmsh-scripts/pkg/geometry"
)

// parsePoints normalizes every accepted point shape to the canonical
// 8-corner list:
//
//	nil                         canonical ±1 cube
//	l                           cube with side l
//	[l, cs]                     cube in the named coordinate system
//	[lx, ly, lz]                box
//	[lx, ly, lz, cs]            box in the named coordinate system
//	[lx, ly, lz, ms]            box with mesh-size hint
//	[8 coordinate triples, ...] explicit corners, optionally followed by
//	                            a coordinate system name or mesh size
//
// Azimuth components of cylindrical coordinates are given in degrees
// and converted to radians here.
func parsePoints(v any) ([]*geometry.Point, error) {
	if v == nil {
		return block.DefaultPoints(), nil
	}
	if side, ok := asFloat(v); ok {
		return block.CubePoints(side), nil
	}
	l, ok := asList(v)
	if !ok {
		return nil, fmt.Errorf("points: unrecognized shape %v", v)
	}
	if len(l) == 0 {
		return block.DefaultPoints(), nil
	}
	// [l, cs]
	if len(l) == 2 {
		side, okN := asFloat(l[0])
		csName, okS := asString(l[1])
		if okN && okS {
			return withSystem(block.CubePoints(side), csName)
		}
	}
	// [lx, ly, lz]
	if len(l) == 3 {
		if xs, ok := asFloatList(v); ok {
			return block.BoxPoints(xs[0], xs[1], xs[2]), nil
		}
	}
	if len(l) == 4 {
		// [lx, ly, lz, cs]
		if csName, ok := asString(l[3]); ok {
			xs, okN := asFloatList(l[:3])
			if !okN {
				return nil, fmt.Errorf("points: expected 3 extents before coordinate system, got %v", l)
			}
			return withSystem(block.BoxPoints(xs[0], xs[1], xs[2]), csName)
		}
		// [lx, ly, lz, mesh_size]
		if xs, ok := asFloatList(v); ok {
			ps := block.BoxPoints(xs[0], xs[1], xs[2])
			for _, p := range ps {
				p.MeshSize = xs[3]
			}
			return ps, nil
		}
	}
	// Explicit corner list with optional trailing cs name or mesh size.
	return parseExplicitPoints(l)
}

func parseExplicitPoints(l []any) ([]*geometry.Point, error) {
	var coords [][]float64
	csName := ""
	meshSize := 0.0
	for i, e := range l {
		if c, ok := asFloatList(e); ok {
			if len(c) != 3 && len(c) != 4 {
				return nil, fmt.Errorf("points[%d]: coordinate needs 3 components (plus optional mesh size), got %v", i, e)
			}
			coords = append(coords, c)
			continue
		}
		if s, ok := asString(e); ok {
			csName = s
			continue
		}
		if f, ok := asFloat(e); ok {
			meshSize = f
			continue
		}
		return nil, fmt.Errorf("points[%d]: unrecognized element %v", i, e)
	}
	if len(coords) != 8 {
		return nil, fmt.Errorf("points: expected 8 corners, got %d", len(coords))
	}
	cs, err := geometry.ParseCoordinateSystem(csName)
	if err != nil {
		return nil, fmt.Errorf("points: %w", err)
	}
	ps := make([]*geometry.Point, 8)
	for i, c := range coords {
		p := geometry.NewPoint(c[0], c[1], c[2])
		if len(c) == 4 {
			p.MeshSize = c[3]
		} else {
			p.MeshSize = meshSize
		}
		p.System = cs
		if _, cyl := cs.(geometry.Cylindrical); cyl {
			p.Coordinates.Y *= math.Pi / 180
		}
		ps[i] = p
	}
	return ps, nil
}

func withSystem(ps []*geometry.Point, csName string) ([]*geometry.Point, error) {
	cs, err := geometry.ParseCoordinateSystem(csName)
	if err != nil {
		return nil, fmt.Errorf("points: %w", err)
	}
	for _, p := range ps {
		p.System = cs
		if _, cyl := cs.(geometry.Cylindrical); cyl {
			p.Coordinates.Y *= math.Pi / 180
		}
	}
	return ps, nil
}
