// Package kernel defines the abstract geometry kernel session interface.
// A kernel session owns the tag space: every registered entity receives
// an opaque positive integer tag valid only within that session.
// Implementations (in-memory, gmsh bindings) provide entity creation and
// removal behind this interface so the block hierarchy never depends on
// a concrete kernel.
package kernel

import "github.com/somesortofme/gmsh-scripts/pkg/geometry"

// Kernel is one geometry kernel session. All calls are synchronous and
// mutate session state; callers must not interleave registration of
// unrelated trees against the same session.
//
// useOwnTag selects the tag authority: when true the session issues and
// tracks tags itself, when false it defers to kernel-issued tags. The
// returned entity is the input promoted to a registered entity.
type Kernel interface {
	RegisterPoint(p *geometry.Point, useOwnTag bool) (*geometry.Point, error)
	RegisterCurve(c *geometry.Curve, useOwnTag bool) (*geometry.Curve, error)
	RegisterCurveLoop(l *geometry.CurveLoop, useOwnTag bool) (*geometry.CurveLoop, error)
	RegisterSurface(s *geometry.Surface, useOwnTag bool) (*geometry.Surface, error)
	RegisterSurfaceLoop(l *geometry.SurfaceLoop, useOwnTag bool) (*geometry.SurfaceLoop, error)
	RegisterVolume(v *geometry.Volume, useOwnTag bool) (*geometry.Volume, error)

	// UnregisterVolume removes a volume from the session. The entity is
	// returned with its tag cleared.
	UnregisterVolume(v *geometry.Volume, useOwnTag bool) (*geometry.Volume, error)

	// Structured-mesh and recombination directives. The point slices
	// carry the registered corner points the directive refers to.
	RegisterCurveStructure(points []*geometry.Point, st *geometry.Structure) error
	RegisterSurfaceStructure(points []*geometry.Point, st *geometry.Structure) error
	RegisterVolumeStructure(points []*geometry.Point, st *geometry.Structure) error
	RegisterSurfaceQuadrate(points []*geometry.Point, q *geometry.Quadrate) error
}
