package transform

import "github.com/somesortofme/gmsh-scripts/pkg/geometry"

// affine is a linear map plus translation: v -> m*v + t.
type affine struct {
	m [3][3]float64
	t geometry.Vec3
}

func identity() affine {
	return affine{m: [3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}}
}

func (a affine) apply(v geometry.Vec3) geometry.Vec3 {
	return geometry.Vec3{
		X: a.m[0][0]*v.X + a.m[0][1]*v.Y + a.m[0][2]*v.Z + a.t.X,
		Y: a.m[1][0]*v.X + a.m[1][1]*v.Y + a.m[1][2]*v.Z + a.t.Y,
		Z: a.m[2][0]*v.X + a.m[2][1]*v.Y + a.m[2][2]*v.Z + a.t.Z,
	}
}

// compose returns the map "b after a": v -> b(a(v)).
func compose(b, a affine) affine {
	var c affine
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				c.m[i][j] += b.m[i][k] * a.m[k][j]
			}
		}
	}
	c.t = b.apply(a.t)
	return c
}
