package config

import (
	"fmt"

	"github.com/somesortofme/gmsh-scripts/pkg/block"
	"github.com/somesortofme/gmsh-scripts/pkg/geometry"
)

// fromMatrix expands a matrix definition into a non-registering parent
// block with one child per grid cell. The matrix value is a list of
// three coordinate rows (X, Y, Z boundary values, start first),
// optionally followed by a coordinate system name. A row may begin with
// "value" (absolute boundaries, the default) or "increment" (deltas
// from the previous boundary).
//
// Per-cell fields (do_register_map, zone_map, structure_map,
// quadrate_map, boolean_level_map) take either a single value applied
// to every cell or a list with one entry per cell. Cells are indexed
// X fastest, then Y, then Z.
func fromMatrix(m map[string]any, parent *block.Block) (*block.Block, error) {
	rows, ok := asList(m["matrix"])
	if !ok {
		return nil, fmt.Errorf("matrix: expected a list of coordinate rows, got %v", m["matrix"])
	}
	csName := ""
	if len(rows) > 3 {
		if s, ok := asString(rows[3]); ok {
			csName = s
			rows = rows[:3]
		}
	}
	if len(rows) != 3 {
		return nil, fmt.Errorf("matrix: expected 3 coordinate rows, got %d", len(rows))
	}
	var grid [3][]float64
	for i, axis := range [3]string{"x", "y", "z"} {
		cs, err := parseCoordinateRow(rows[i])
		if err != nil {
			return nil, fmt.Errorf("matrix: %s row: %w", axis, err)
		}
		grid[i] = cs
	}
	xs, ys, zs := grid[0], grid[1], grid[2]
	nx, ny, nz := len(xs)-1, len(ys)-1, len(zs)-1
	nCells := nx * ny * nz

	registerMap, err := cellValues(m["do_register_map"], nCells)
	if err != nil {
		return nil, fmt.Errorf("do_register_map: %w", err)
	}
	zoneMap, err := cellValues(m["zone_map"], nCells)
	if err != nil {
		return nil, fmt.Errorf("zone_map: %w", err)
	}
	structureMap, err := cellValues(m["structure_map"], nCells)
	if err != nil {
		return nil, fmt.Errorf("structure_map: %w", err)
	}
	quadrateMap, err := cellValues(m["quadrate_map"], nCells)
	if err != nil {
		return nil, fmt.Errorf("quadrate_map: %w", err)
	}
	levelMap, err := cellValues(m["boolean_level_map"], nCells)
	if err != nil {
		return nil, fmt.Errorf("boolean_level_map: %w", err)
	}

	transforms, err := parseTransforms(m["transforms"], parent)
	if err != nil {
		return nil, err
	}
	opts := []block.Option{block.WithDoRegister(false)}
	if transforms != nil {
		opts = append(opts, block.WithTransforms(transforms...))
	}
	if parent != nil {
		opts = append(opts, block.WithParent(parent))
	}
	root, err := block.New(opts...)
	if err != nil {
		return nil, err
	}
	if err := applyFlags(root, m); err != nil {
		return nil, err
	}
	root.DoRegister = false

	for zi := 1; zi <= nz; zi++ {
		z, prevZ := zs[zi], zs[zi-1]
		for yi := 1; yi <= ny; yi++ {
			y, prevY := ys[yi], ys[yi-1]
			for xi := 1; xi <= nx; xi++ {
				x, prevX := xs[xi], xs[xi-1]
				gi := (zi-1)*ny*nx + (yi-1)*nx + (xi-1)
				corners := [8]geometry.Vec3{
					{X: x, Y: y, Z: prevZ},
					{X: prevX, Y: y, Z: prevZ},
					{X: prevX, Y: prevY, Z: prevZ},
					{X: x, Y: prevY, Z: prevZ},
					{X: x, Y: y, Z: z},
					{X: prevX, Y: y, Z: z},
					{X: prevX, Y: prevY, Z: z},
					{X: x, Y: prevY, Z: z},
				}
				points := block.PointsFromCoordinates(corners)
				if csName != "" {
					points, err = withSystem(points, csName)
					if err != nil {
						return nil, fmt.Errorf("matrix: %w", err)
					}
				}
				child, err := cellBlock(points, gi, registerMap, zoneMap, structureMap, quadrateMap, levelMap)
				if err != nil {
					return nil, fmt.Errorf("matrix cell %d: %w", gi, err)
				}
				child.UseOwnTag = root.UseOwnTag
				root.AddChild(child)
			}
		}
	}
	return root, nil
}

func cellBlock(points []*geometry.Point, gi int,
	registerMap, zoneMap, structureMap, quadrateMap, levelMap []any) (*block.Block, error) {
	opts := []block.Option{block.WithPoints(points)}
	if v := registerMap[gi]; v != nil {
		reg, ok := asBool(v)
		if !ok {
			return nil, fmt.Errorf("do_register_map: expected a boolean, got %v", v)
		}
		opts = append(opts, block.WithDoRegister(reg))
	}
	if v := zoneMap[gi]; v != nil {
		z, ok := asString(v)
		if !ok {
			return nil, fmt.Errorf("zone_map: expected a name, got %v", v)
		}
		opts = append(opts, block.WithZone(z))
	}
	if v := structureMap[gi]; v != nil {
		st, err := parseCurveDistribution(v)
		if err != nil {
			return nil, fmt.Errorf("structure_map: %w", err)
		}
		opts = append(opts, block.WithStructureAll(st.NPoints, st.MeshType, st.Coef))
	}
	if v := quadrateMap[gi]; v != nil {
		q, ok := asBool(v)
		if !ok {
			return nil, fmt.Errorf("quadrate_map: expected a boolean, got %v", v)
		}
		if q {
			opts = append(opts, block.WithQuadrate())
		}
	}
	if v := levelMap[gi]; v != nil {
		lvl, ok := asInt(v)
		if !ok {
			return nil, fmt.Errorf("boolean_level_map: expected an integer, got %v", v)
		}
		opts = append(opts, block.WithBooleanLevel(lvl))
	}
	return block.New(opts...)
}

// parseCoordinateRow evaluates a row of grid boundaries. An "increment"
// row accumulates deltas starting from its first value.
func parseCoordinateRow(v any) ([]float64, error) {
	l, ok := asList(v)
	if !ok {
		return nil, fmt.Errorf("expected a list of boundaries, got %v", v)
	}
	mode := "value"
	if len(l) > 0 {
		if s, ok := asString(l[0]); ok {
			if s != "value" && s != "increment" {
				return nil, fmt.Errorf("unknown row mode %q", s)
			}
			mode = s
			l = l[1:]
		}
	}
	cs, ok := asFloatList(l)
	if !ok {
		return nil, fmt.Errorf("boundaries must be numbers, got %v", l)
	}
	if len(cs) < 2 {
		return nil, fmt.Errorf("need at least 2 boundaries, got %d", len(cs))
	}
	if mode == "increment" {
		for i := 1; i < len(cs); i++ {
			cs[i] += cs[i-1]
		}
	}
	return cs, nil
}

// cellValues normalizes a per-cell field: nil yields all-nil, a scalar
// repeats for every cell, a list must match the cell count.
func cellValues(v any, n int) ([]any, error) {
	out := make([]any, n)
	if v == nil {
		return out, nil
	}
	if l, ok := asList(v); ok {
		if len(l) != n {
			return nil, fmt.Errorf("expected %d entries, got %d", n, len(l))
		}
		return l, nil
	}
	for i := range out {
		out[i] = v
	}
	return out, nil
}
