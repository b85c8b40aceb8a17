// Package memory implements kernel.Kernel as a pure in-memory session.
// It assigns sequential tags per entity dimension and records every
// structured-mesh and recombination directive, which makes it the
// reference session for tests and dry runs.
package memory

import (
	"fmt"

	"github.com/somesortofme/gmsh-scripts/pkg/geometry"
	"github.com/somesortofme/gmsh-scripts/pkg/kernel"
)

// Compile-time interface check.
var _ kernel.Kernel = (*Kernel)(nil)

// Directive is one recorded structured-mesh or recombination call.
type Directive struct {
	PointTags []int
	Structure *geometry.Structure
	Quadrate  *geometry.Quadrate
}

// Kernel is an in-memory kernel session.
type Kernel struct {
	points       map[int]*geometry.Point
	curves       map[int]*geometry.Curve
	curveLoops   map[int]*geometry.CurveLoop
	surfaces     map[int]*geometry.Surface
	surfaceLoops map[int]*geometry.SurfaceLoop
	volumes      map[int]*geometry.Volume

	pointByCoord map[geometry.Vec3]int // coordinate dedup for shared corners

	nextTag [6]int // per dimension: point, curve, curve loop, surface, surface loop, volume

	CurveStructures   []Directive
	SurfaceStructures []Directive
	VolumeStructures  []Directive
	SurfaceQuadrates  []Directive
}

// New creates an empty in-memory session.
func New() *Kernel {
	return &Kernel{
		points:       make(map[int]*geometry.Point),
		curves:       make(map[int]*geometry.Curve),
		curveLoops:   make(map[int]*geometry.CurveLoop),
		surfaces:     make(map[int]*geometry.Surface),
		surfaceLoops: make(map[int]*geometry.SurfaceLoop),
		volumes:      make(map[int]*geometry.Volume),
		pointByCoord: make(map[geometry.Vec3]int),
	}
}

func (k *Kernel) issue(dim int) int {
	k.nextTag[dim]++
	return k.nextTag[dim]
}

// RegisterPoint assigns a tag to the point, reusing the tag of a point
// already registered at the same coordinates.
func (k *Kernel) RegisterPoint(p *geometry.Point, useOwnTag bool) (*geometry.Point, error) {
	if p.Registered() {
		return p, nil
	}
	if tag, ok := k.pointByCoord[p.Coordinates]; ok {
		p.Tag = tag
		return p, nil
	}
	p.Tag = k.issue(0)
	k.points[p.Tag] = p
	k.pointByCoord[p.Coordinates] = p.Tag
	return p, nil
}

func (k *Kernel) RegisterCurve(c *geometry.Curve, useOwnTag bool) (*geometry.Curve, error) {
	if c.Registered() {
		return c, nil
	}
	for _, p := range c.Points {
		if !p.Registered() {
			return nil, fmt.Errorf("curve references unregistered point %v", p.Coordinates)
		}
	}
	c.Tag = k.issue(1)
	k.curves[c.Tag] = c
	return c, nil
}

func (k *Kernel) RegisterCurveLoop(l *geometry.CurveLoop, useOwnTag bool) (*geometry.CurveLoop, error) {
	if l.Registered() {
		return l, nil
	}
	if len(l.Curves) != len(l.Signs) {
		return nil, fmt.Errorf("curve loop has %d curves but %d signs", len(l.Curves), len(l.Signs))
	}
	l.Tag = k.issue(2)
	k.curveLoops[l.Tag] = l
	return l, nil
}

func (k *Kernel) RegisterSurface(s *geometry.Surface, useOwnTag bool) (*geometry.Surface, error) {
	if s.Registered() {
		return s, nil
	}
	s.Tag = k.issue(3)
	k.surfaces[s.Tag] = s
	return s, nil
}

func (k *Kernel) RegisterSurfaceLoop(l *geometry.SurfaceLoop, useOwnTag bool) (*geometry.SurfaceLoop, error) {
	if l.Registered() {
		return l, nil
	}
	l.Tag = k.issue(4)
	k.surfaceLoops[l.Tag] = l
	return l, nil
}

func (k *Kernel) RegisterVolume(v *geometry.Volume, useOwnTag bool) (*geometry.Volume, error) {
	if v.Registered() {
		return v, nil
	}
	v.Tag = k.issue(5)
	k.volumes[v.Tag] = v
	return v, nil
}

// UnregisterVolume removes the volume from the session and clears its tag.
func (k *Kernel) UnregisterVolume(v *geometry.Volume, useOwnTag bool) (*geometry.Volume, error) {
	if !v.Registered() {
		return v, nil
	}
	if _, ok := k.volumes[v.Tag]; !ok {
		return nil, fmt.Errorf("volume tag %d is not registered in this session", v.Tag)
	}
	delete(k.volumes, v.Tag)
	v.Tag = 0
	return v, nil
}

func (k *Kernel) RegisterCurveStructure(points []*geometry.Point, st *geometry.Structure) error {
	k.CurveStructures = append(k.CurveStructures, record(points, st, nil))
	return nil
}

func (k *Kernel) RegisterSurfaceStructure(points []*geometry.Point, st *geometry.Structure) error {
	k.SurfaceStructures = append(k.SurfaceStructures, record(points, st, nil))
	return nil
}

func (k *Kernel) RegisterVolumeStructure(points []*geometry.Point, st *geometry.Structure) error {
	k.VolumeStructures = append(k.VolumeStructures, record(points, st, nil))
	return nil
}

func (k *Kernel) RegisterSurfaceQuadrate(points []*geometry.Point, q *geometry.Quadrate) error {
	k.SurfaceQuadrates = append(k.SurfaceQuadrates, record(points, nil, q))
	return nil
}

func record(points []*geometry.Point, st *geometry.Structure, q *geometry.Quadrate) Directive {
	tags := make([]int, len(points))
	for i, p := range points {
		tags[i] = p.Tag
	}
	return Directive{PointTags: tags, Structure: st, Quadrate: q}
}

// NumPoints returns the number of live points in the session.
func (k *Kernel) NumPoints() int { return len(k.points) }

// NumCurves returns the number of live curves in the session.
func (k *Kernel) NumCurves() int { return len(k.curves) }

// NumCurveLoops returns the number of live curve loops in the session.
func (k *Kernel) NumCurveLoops() int { return len(k.curveLoops) }

// NumSurfaces returns the number of live surfaces in the session.
func (k *Kernel) NumSurfaces() int { return len(k.surfaces) }

// NumSurfaceLoops returns the number of live surface loops in the session.
func (k *Kernel) NumSurfaceLoops() int { return len(k.surfaceLoops) }

// NumVolumes returns the number of live volumes in the session.
func (k *Kernel) NumVolumes() int { return len(k.volumes) }

// Volume returns the registered volume with the given tag, or nil.
func (k *Kernel) Volume(tag int) *geometry.Volume { return k.volumes[tag] }
