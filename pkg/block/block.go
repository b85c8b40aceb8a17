// Package block implements the hierarchical hexahedral mesh block: a
// cuboid with 8 corner points, 12 curves, 6 surfaces and 1 volume,
// composable into trees via transforms and boolean-merge levels, and
// realized as kernel entities through the registration lifecycle.
package block

import (
	"fmt"

	"github.com/somesortofme/gmsh-scripts/pkg/geometry"
	"github.com/somesortofme/gmsh-scripts/pkg/transform"
)

// Block is the aggregate root of the model. It owns its points, curves,
// surfaces and volume; the parent pointer is a non-owning back-reference
// used for relative-coordinate resolution and traversal.
type Block struct {
	Points   []*geometry.Point   // 8 corners in canonical order
	Curves   []*geometry.Curve   // 12 edges, 4 per axis
	Surfaces []*geometry.Surface // 6 faces: NX, X, NY, Y, NZ, Z
	Volumes  []*geometry.Volume  // 1 volume

	Transforms []transform.Transform

	// Structure and quadrate directives, indexed like their entities.
	// A nil entry means no directive.
	CurveStructures   []*geometry.Structure // 12
	SurfaceStructures []*geometry.Structure // 6
	VolumeStructures  []*geometry.Structure // 1
	SurfaceQuadrates  []*geometry.Quadrate  // 6

	// Zone name lists per entity class.
	PointZones   []string
	CurveZones   []string
	SurfaceZones []string
	VolumeZones  []string

	Parent             *Block
	Children           []*Block
	ChildrenTransforms [][]transform.Transform

	// BooleanLevel is the boolean-merge priority; nil disables boolean
	// merging, in which case registered children's boundaries become
	// cavities of this block's volume.
	BooleanLevel *int

	// Lifecycle flags.
	DoRegister                  bool
	DoUnregister                bool
	DoRegisterChildren          bool
	DoUnregisterChildren        bool
	DoUnregisterBoolean         bool
	DoUnregisterBooleanChildren bool
	UseOwnTag                   bool

	StructureType string

	// Resolved from StructureType.
	surfaceArrangements [6]geometry.Arrangement
	volumePointOrder    [8]int

	// Support entities built during registration.
	curveLoops   []*geometry.CurveLoop
	surfaceLoops []*geometry.SurfaceLoop

	IsRegistered bool
}

// Option configures a Block under construction.
type Option func(*Block) error

// New creates a Block. Without options it is the canonical ±1 cube with
// 12 line curves, 6 fill surfaces, 1 volume, default zones and structure
// type LLL, registered with children on Register.
func New(opts ...Option) (*Block, error) {
	b := &Block{
		Points:                      DefaultPoints(),
		DoRegister:                  true,
		DoRegisterChildren:          true,
		DoUnregisterChildren:        true,
		DoUnregisterBooleanChildren: true,
		StructureType:               "LLL",
		CurveStructures:             make([]*geometry.Structure, 12),
		SurfaceStructures:           make([]*geometry.Structure, 6),
		VolumeStructures:            make([]*geometry.Structure, 1),
		SurfaceQuadrates:            make([]*geometry.Quadrate, 6),
		PointZones:                  DefaultPointZones(),
		CurveZones:                  DefaultCurveZones(),
		SurfaceZones:                DefaultSurfaceZones(),
		VolumeZones:                 DefaultVolumeZones(),
	}
	for _, opt := range opts {
		if err := opt(b); err != nil {
			return nil, err
		}
	}
	if b.Curves == nil {
		b.Curves = make([]*geometry.Curve, 12)
		for i := range b.Curves {
			b.Curves[i] = geometry.NewCurve("line")
		}
	}
	if b.Surfaces == nil {
		b.Surfaces = make([]*geometry.Surface, 6)
		for i := range b.Surfaces {
			b.Surfaces[i] = geometry.NewSurface("fill")
		}
	}
	if b.Volumes == nil {
		b.Volumes = []*geometry.Volume{{}}
	}
	if err := b.validate(); err != nil {
		return nil, err
	}
	arrangement, order, err := ParseStructureType(b.StructureType)
	if err != nil {
		return nil, err
	}
	b.surfaceArrangements = arrangement
	b.volumePointOrder = order
	for _, v := range b.Volumes {
		if v.Zone == "" {
			v.Zone = b.VolumeZones[0]
		}
	}
	if b.ChildrenTransforms == nil {
		b.ChildrenTransforms = make([][]transform.Transform, len(b.Children))
	}
	for _, c := range b.Children {
		c.Parent = b
	}
	b.curveLoops = make([]*geometry.CurveLoop, 6)
	for i := range b.curveLoops {
		b.curveLoops[i] = &geometry.CurveLoop{}
	}
	b.surfaceLoops = []*geometry.SurfaceLoop{{}}
	return b, nil
}

func (b *Block) validate() error {
	if len(b.Points) != 8 {
		return fmt.Errorf("block needs 8 corner points, got %d", len(b.Points))
	}
	if len(b.Curves) != 12 {
		return fmt.Errorf("block needs 12 curves, got %d", len(b.Curves))
	}
	if len(b.Surfaces) != 6 {
		return fmt.Errorf("block needs 6 surfaces, got %d", len(b.Surfaces))
	}
	if len(b.Volumes) != 1 {
		return fmt.Errorf("block needs 1 volume, got %d", len(b.Volumes))
	}
	if len(b.ChildrenTransforms) != 0 && len(b.ChildrenTransforms) != len(b.Children) {
		return fmt.Errorf("%d children but %d child transform lists",
			len(b.Children), len(b.ChildrenTransforms))
	}
	if len(b.PointZones) < 8 || len(b.CurveZones) < 12 ||
		len(b.SurfaceZones) < 6 || len(b.VolumeZones) < 1 {
		return fmt.Errorf("zone lists too short: %d points, %d curves, %d surfaces, %d volumes",
			len(b.PointZones), len(b.CurveZones), len(b.SurfaceZones), len(b.VolumeZones))
	}
	return nil
}

// WithPoints sets explicit corner points (8, canonical order).
func WithPoints(ps []*geometry.Point) Option {
	return func(b *Block) error {
		b.Points = ps
		return nil
	}
}

// WithCubeSize sets the corners to an origin-centred cube.
func WithCubeSize(side float64) Option {
	return func(b *Block) error {
		b.Points = CubePoints(side)
		return nil
	}
}

// WithBoxSize sets the corners to an origin-centred box.
func WithBoxSize(lx, ly, lz float64) Option {
	return func(b *Block) error {
		b.Points = BoxPoints(lx, ly, lz)
		return nil
	}
}

// WithCoordinateSystem assigns a named coordinate system to every corner
// point.
func WithCoordinateSystem(name string) Option {
	return func(b *Block) error {
		cs, err := geometry.ParseCoordinateSystem(name)
		if err != nil {
			return err
		}
		for _, p := range b.Points {
			p.System = cs
		}
		return nil
	}
}

// WithMeshSize sets the mesh-size hint on every corner point.
func WithMeshSize(h float64) Option {
	return func(b *Block) error {
		for _, p := range b.Points {
			p.MeshSize = h
		}
		return nil
	}
}

// WithCurves sets explicit curves (12, canonical order).
func WithCurves(cs []*geometry.Curve) Option {
	return func(b *Block) error {
		b.Curves = cs
		return nil
	}
}

// WithSurfaces sets explicit surfaces (6, canonical order).
func WithSurfaces(ss []*geometry.Surface) Option {
	return func(b *Block) error {
		b.Surfaces = ss
		return nil
	}
}

// WithVolumes sets explicit volumes.
func WithVolumes(vs []*geometry.Volume) Option {
	return func(b *Block) error {
		b.Volumes = vs
		return nil
	}
}

// WithTransforms sets the block's own transform list.
func WithTransforms(ts ...transform.Transform) Option {
	return func(b *Block) error {
		b.Transforms = ts
		return nil
	}
}

// WithZone overrides the volume zone name only.
func WithZone(name string) Option {
	return func(b *Block) error {
		b.VolumeZones = []string{name}
		return nil
	}
}

// WithZones overrides zone name lists per entity class; a nil slice
// keeps the defaults for that class.
func WithZones(volumes, surfaces, curves, points []string) Option {
	return func(b *Block) error {
		if volumes != nil {
			b.VolumeZones = volumes
		}
		if surfaces != nil {
			b.SurfaceZones = surfaces
		}
		if curves != nil {
			b.CurveZones = curves
		}
		if points != nil {
			b.PointZones = points
		}
		return nil
	}
}

// WithStructureAll applies one curve distribution to all 12 curves and
// marks all surfaces and the volume structured.
func WithStructureAll(nPoints int, meshType string, coef float64) Option {
	return func(b *Block) error {
		for i := range b.CurveStructures {
			b.CurveStructures[i] = geometry.CurveStructure(nPoints, meshType, coef)
		}
		b.markStructured()
		return nil
	}
}

// WithStructureXYZ applies per-axis curve distributions to the 4 curves
// of each direction; a nil entry leaves that direction unstructured.
// Any non-nil entry marks all surfaces and the volume structured.
func WithStructureXYZ(x, y, z *geometry.Structure) Option {
	return func(b *Block) error {
		for axis, st := range []*geometry.Structure{x, y, z} {
			if st == nil {
				continue
			}
			for i := 0; i < 4; i++ {
				c := *st // per-curve copy, corner tags are resolved per entity
				b.CurveStructures[axis*4+i] = &c
			}
		}
		if x != nil || y != nil || z != nil {
			b.markStructured()
		}
		return nil
	}
}

func (b *Block) markStructured() {
	for i := range b.SurfaceStructures {
		b.SurfaceStructures[i] = geometry.SurfaceStructure()
	}
	b.VolumeStructures[0] = geometry.VolumeStructure()
}

// WithQuadrate requests triangle-to-quadrangle recombination on all 6
// surfaces.
func WithQuadrate() Option {
	return func(b *Block) error {
		for i := range b.SurfaceQuadrates {
			b.SurfaceQuadrates[i] = geometry.SurfaceQuadrate()
		}
		return nil
	}
}

// WithParent sets the non-owning parent back-reference. Needed when a
// block's points use the block-relative coordinate system but the block
// is not attached via WithChildren/AddChild.
func WithParent(p *Block) Option {
	return func(b *Block) error {
		b.Parent = p
		return nil
	}
}

// WithChildren attaches child blocks with optional per-child transform
// lists (may be nil for none).
func WithChildren(children []*Block, transforms [][]transform.Transform) Option {
	return func(b *Block) error {
		b.Children = children
		b.ChildrenTransforms = transforms
		return nil
	}
}

// WithBooleanLevel enables boolean merging at the given priority.
func WithBooleanLevel(level int) Option {
	return func(b *Block) error {
		b.BooleanLevel = &level
		return nil
	}
}

// WithStructureType selects the structured-mesh orientation permutation
// (LLL, RRL, LRR or RLR).
func WithStructureType(code string) Option {
	return func(b *Block) error {
		b.StructureType = code
		return nil
	}
}

// WithDoRegister controls whether Register touches this block itself.
func WithDoRegister(v bool) Option {
	return func(b *Block) error {
		b.DoRegister = v
		return nil
	}
}

// WithDoUnregister enables the simple unregistration pass for this block.
func WithDoUnregister(v bool) Option {
	return func(b *Block) error {
		b.DoUnregister = v
		return nil
	}
}

// WithDoUnregisterBoolean enables the boolean unregistration pass.
func WithDoUnregisterBoolean(v bool) Option {
	return func(b *Block) error {
		b.DoUnregisterBoolean = v
		return nil
	}
}

// WithOwnTags makes the kernel session use caller-tracked tags instead
// of kernel-issued ones.
func WithOwnTags(v bool) Option {
	return func(b *Block) error {
		b.UseOwnTag = v
		return nil
	}
}

// SurfaceArrangements returns the per-face triangle arrangement resolved
// from the structure type (order: NX, X, NY, Y, NZ, Z).
func (b *Block) SurfaceArrangements() [6]geometry.Arrangement { return b.surfaceArrangements }

// VolumePointOrder returns the corner permutation resolved from the
// structure type.
func (b *Block) VolumePointOrder() [8]int { return b.volumePointOrder }

// OuterSurfaceLoop returns the block's outer boundary loop. It holds the
// 6 faces only after registration.
func (b *Block) OuterSurfaceLoop() *geometry.SurfaceLoop { return b.surfaceLoops[0] }

// SurfaceLoops returns all loops of the block's volume: the outer
// boundary first, then any internal cavity loops.
func (b *Block) SurfaceLoops() []*geometry.SurfaceLoop { return b.surfaceLoops }

// CurveLoops returns the 6 face loops.
func (b *Block) CurveLoops() []*geometry.CurveLoop { return b.curveLoops }
