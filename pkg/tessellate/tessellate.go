// Package tessellate walks a block tree and produces preview triangle
// meshes using an SDF representation of each cell. One mesh is produced
// per registered block.
package tessellate

import (
	"fmt"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/somesortofme/gmsh-scripts/pkg/block"
	"github.com/somesortofme/gmsh-scripts/pkg/geometry"
)

// defaultMeshCells controls marching cubes tessellation resolution.
const defaultMeshCells = 64

// Options tune the tessellator.
type Options struct {
	// Cells is the marching cubes resolution along the longest axis.
	Cells int
}

// Tessellate walks the block tree and produces one triangle mesh per
// registered block. The tessellator is read-only and never mutates the
// tree. Blocks must be transformed before tessellation; corner
// coordinates are taken as-is.
func Tessellate(root *block.Block, opts Options) ([]*Mesh, error) {
	if root == nil {
		return nil, nil
	}
	cells := opts.Cells
	if cells <= 0 {
		cells = defaultMeshCells
	}

	var meshes []*Mesh
	for b := range root.All() {
		if !b.IsRegistered {
			continue
		}
		m, err := cellMesh(b, cells)
		if err != nil {
			return nil, fmt.Errorf("tessellate: block zone %q: %w", b.Volumes[0].Zone, err)
		}
		meshes = append(meshes, m)
	}
	return meshes, nil
}

func cellMesh(b *block.Block, cells int) (*Mesh, error) {
	var corners [8]geometry.Vec3
	for i, p := range b.Points {
		corners[i] = p.Coordinates
	}
	solid, err := hexSolid(corners)
	if err != nil {
		return nil, err
	}

	renderer := render.NewMarchingCubesUniform(cells)
	triangles := render.ToTriangles(solid, renderer)

	numVerts := len(triangles) * 3
	vertices := make([]float32, 0, numVerts*3)
	normals := make([]float32, 0, numVerts*3)
	indices := make([]uint32, 0, numVerts)

	for i, tri := range triangles {
		n := tri.Normal()
		nx, ny, nz := float32(n.X), float32(n.Y), float32(n.Z)
		for j := 0; j < 3; j++ {
			v := tri[j]
			vertices = append(vertices, float32(v.X), float32(v.Y), float32(v.Z))
			normals = append(normals, nx, ny, nz)
			indices = append(indices, uint32(i*3+j))
		}
	}

	return &Mesh{
		Vertices: vertices,
		Normals:  normals,
		Indices:  indices,
		Zone:     b.Volumes[0].Zone,
	}, nil
}

// hexSolid builds an SDF for a hexahedral cell: the corner bounding box
// cut down by the six face planes. Faces are treated as planar through
// their centroid, which is exact for affine cells and a close preview
// otherwise.
func hexSolid(corners [8]geometry.Vec3) (sdf.SDF3, error) {
	min, max := corners[0], corners[0]
	for _, c := range corners[1:] {
		if c.X < min.X {
			min.X = c.X
		}
		if c.Y < min.Y {
			min.Y = c.Y
		}
		if c.Z < min.Z {
			min.Z = c.Z
		}
		if c.X > max.X {
			max.X = c.X
		}
		if c.Y > max.Y {
			max.Y = c.Y
		}
		if c.Z > max.Z {
			max.Z = c.Z
		}
	}
	size := max.Sub(min)
	if size.X <= 0 || size.Y <= 0 || size.Z <= 0 {
		return nil, fmt.Errorf("degenerate cell: extents %v", size)
	}
	box, err := sdf.Box3D(v3.Vec{X: size.X, Y: size.Y, Z: size.Z}, 0)
	if err != nil {
		return nil, fmt.Errorf("sdfx.Box3D: %w", err)
	}
	center := min.Add(size.Scale(0.5))
	solid := sdf.Transform3D(box, sdf.Translate3d(v3.Vec{X: center.X, Y: center.Y, Z: center.Z}))

	var cellCenter geometry.Vec3
	for _, c := range corners {
		cellCenter = cellCenter.Add(c)
	}
	cellCenter = cellCenter.Scale(1.0 / 8)

	for face := 0; face < 6; face++ {
		idx := block.SurfacePoints(face)
		p0 := corners[idx[0]]
		p1 := corners[idx[1]]
		p2 := corners[idx[2]]
		p3 := corners[idx[3]]
		centroid := p0.Add(p1).Add(p2).Add(p3).Scale(0.25)
		normal := p2.Sub(p0).Cross(p3.Sub(p1))
		if normal.Norm() == 0 {
			return nil, fmt.Errorf("degenerate face %d", face)
		}
		// Keep the side the cell center lies on.
		if normal.Dot(cellCenter.Sub(centroid)) < 0 {
			normal = normal.Scale(-1)
		}
		normal = normal.Normalize()
		solid = sdf.Cut3D(solid,
			v3.Vec{X: centroid.X, Y: centroid.Y, Z: centroid.Z},
			v3.Vec{X: normal.X, Y: normal.Y, Z: normal.Z})
	}
	return solid, nil
}
