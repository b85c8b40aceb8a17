package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/somesortofme/gmsh-scripts/pkg/geometry"
	"github.com/somesortofme/gmsh-scripts/pkg/kernel/memory"
)

func TestMatrixExpansion(t *testing.T) {
	doc := []byte(`
matrix:
  - [0, 1, 2]
  - [0, 1]
  - [0, 1]
`)
	b, err := ParseYAML(doc)
	require.NoError(t, err)
	assert.False(t, b.DoRegister)
	require.Len(t, b.Children, 2)

	// First cell spans x in [0, 1]; corner 0 is (x, y, prev_z).
	c0 := b.Children[0]
	assert.Equal(t, geometry.Vec3{X: 1, Y: 1, Z: 0}, c0.Points[0].Coordinates)
	assert.Equal(t, geometry.Vec3{X: 0, Y: 0, Z: 0}, c0.Points[2].Coordinates)
	assert.Equal(t, geometry.Vec3{X: 1, Y: 1, Z: 1}, c0.Points[4].Coordinates)

	// Second cell spans x in [1, 2].
	c1 := b.Children[1]
	assert.Equal(t, geometry.Vec3{X: 2, Y: 1, Z: 0}, c1.Points[0].Coordinates)
	assert.Equal(t, geometry.Vec3{X: 1, Y: 0, Z: 0}, c1.Points[2].Coordinates)
}

func TestMatrixCellOrderIsXThenYThenZ(t *testing.T) {
	doc := []byte(`
matrix:
  - [0, 1, 2]
  - [0, 1, 2]
  - [0, 1]
zone_map: [c00, c10, c01, c11]
`)
	b, err := ParseYAML(doc)
	require.NoError(t, err)
	require.Len(t, b.Children, 4)
	// gi = zi*ny*nx + yi*nx + xi: x varies fastest.
	assert.Equal(t, "c00", b.Children[0].Volumes[0].Zone)
	assert.Equal(t, "c10", b.Children[1].Volumes[0].Zone)
	assert.Equal(t, geometry.Vec3{X: 1, Y: 0, Z: 0}, b.Children[1].Points[2].Coordinates)
	assert.Equal(t, "c01", b.Children[2].Volumes[0].Zone)
	assert.Equal(t, geometry.Vec3{X: 0, Y: 1, Z: 0}, b.Children[2].Points[2].Coordinates)
}

func TestMatrixIncrementRows(t *testing.T) {
	doc := []byte(`
matrix:
  - [increment, 0, 1, 1]
  - [0, 1]
  - [0, 1]
`)
	b, err := ParseYAML(doc)
	require.NoError(t, err)
	require.Len(t, b.Children, 2)
	assert.Equal(t, 2.0, b.Children[1].Points[0].Coordinates.X)
}

func TestMatrixScalarMaps(t *testing.T) {
	doc := []byte(`
matrix:
  - [0, 1, 2]
  - [0, 1]
  - [0, 1]
do_register_map: false
boolean_level_map: 1
quadrate_map: true
`)
	b, err := ParseYAML(doc)
	require.NoError(t, err)
	for _, c := range b.Children {
		assert.False(t, c.DoRegister)
		require.NotNil(t, c.BooleanLevel)
		assert.Equal(t, 1, *c.BooleanLevel)
		assert.NotNil(t, c.SurfaceQuadrates[0])
	}
}

func TestMatrixPerCellStructureMap(t *testing.T) {
	doc := []byte(`
matrix:
  - [0, 1, 2]
  - [0, 1]
  - [0, 1]
structure_map:
  - [3, progression, 1.0]
  - null
`)
	b, err := ParseYAML(doc)
	require.NoError(t, err)
	assert.NotNil(t, b.Children[0].CurveStructures[0])
	assert.Nil(t, b.Children[1].CurveStructures[0])
}

func TestMatrixRegistersSharedBoundary(t *testing.T) {
	doc := []byte(`
matrix:
  - [0, 1, 2]
  - [0, 1]
  - [0, 1]
`)
	b, err := ParseYAML(doc)
	require.NoError(t, err)
	k := memory.New()
	require.NoError(t, b.Register(k))
	// 2 cells share the x=1 face corners: 12 distinct points, not 16.
	assert.Equal(t, 12, k.NumPoints())
	assert.Equal(t, 2, k.NumVolumes())
}

func TestMatrixMapLengthMismatch(t *testing.T) {
	doc := []byte(`
matrix:
  - [0, 1, 2]
  - [0, 1]
  - [0, 1]
zone_map: [only_one]
`)
	_, err := ParseYAML(doc)
	assert.Error(t, err)
}

func TestMatrixNeedsThreeRows(t *testing.T) {
	doc := []byte(`
matrix:
  - [0, 1]
  - [0, 1]
`)
	_, err := ParseYAML(doc)
	assert.Error(t, err)
}

func TestMatrixCylindrical(t *testing.T) {
	doc := []byte(`
matrix:
  - [1, 2]
  - [0, 90]
  - [0, 1]
  - cylindrical
`)
	b, err := ParseYAML(doc)
	require.NoError(t, err)
	require.Len(t, b.Children, 1)
	p := b.Children[0].Points[0]
	assert.Equal(t, "cylindrical", p.System.String())
}
