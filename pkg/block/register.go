package block

import (
	"fmt"
	"strings"

	"github.com/somesortofme/gmsh-scripts/pkg/boolean"
	"github.com/somesortofme/gmsh-scripts/pkg/geometry"
	"github.com/somesortofme/gmsh-scripts/pkg/kernel"
)

// Register realizes the block subtree in the kernel session. Children
// are registered first (post-order) because a parent's cavity loops
// depend on its children's already-registered boundary surfaces. A block
// whose DoRegister is false, or that is already registered, is skipped;
// re-registration is a no-op. A failure leaves the tree partially
// registered; kernel-side entities of the failed step are not rolled
// back.
func (b *Block) Register(k kernel.Kernel) error {
	if b.DoRegisterChildren {
		for _, c := range b.Children {
			if err := c.Register(k); err != nil {
				return err
			}
		}
	}
	if !b.DoRegister || b.IsRegistered {
		return nil
	}
	steps := []struct {
		name string
		run  func(kernel.Kernel) error
	}{
		{"points", b.registerPoints},
		{"curve points", b.registerCurvePoints},
		{"curves", b.registerCurves},
		{"curve loops", b.registerCurveLoops},
		{"surfaces", b.registerSurfaces},
		{"surface loops", b.registerSurfaceLoops},
		{"volumes", b.registerVolumes},
		{"structure", b.registerStructure},
		{"quadrate", b.registerQuadrate},
	}
	for _, s := range steps {
		if err := s.run(k); err != nil {
			return fmt.Errorf("register %s: %w", s.name, err)
		}
		log.WithField("step", s.name).Debug("registered")
	}
	return nil
}

func (b *Block) registerPoints(k kernel.Kernel) error {
	for i, p := range b.Points {
		rp, err := k.RegisterPoint(p, b.UseOwnTag)
		if err != nil {
			return err
		}
		b.Points[i] = rp
	}
	return nil
}

// registerCurvePoints registers each curve's interior points and splices
// the boundary points in from the block's own registered corners.
func (b *Block) registerCurvePoints(k kernel.Kernel) error {
	for i, c := range b.Curves {
		for j, p := range c.Points {
			rp, err := k.RegisterPoint(p, b.UseOwnTag)
			if err != nil {
				return err
			}
			c.Points[j] = rp
		}
		start := b.Points[curvePoints[i][0]]
		end := b.Points[curvePoints[i][1]]
		c.Points = append(append([]*geometry.Point{start}, c.Points...), end)
	}
	return nil
}

func (b *Block) registerCurves(k kernel.Kernel) error {
	for i, c := range b.Curves {
		rc, err := k.RegisterCurve(c, b.UseOwnTag)
		if err != nil {
			return err
		}
		b.Curves[i] = rc
	}
	return nil
}

// registerCurveLoops builds each face's loop from the canonical
// face-to-curve table with orientation signs.
func (b *Block) registerCurveLoops(k kernel.Kernel) error {
	for i, l := range b.curveLoops {
		l.Curves = make([]*geometry.Curve, 4)
		l.Signs = make([]int, 4)
		for j, ci := range surfaceCurves[i] {
			l.Curves[j] = b.Curves[ci]
			l.Signs[j] = surfaceCurveSigns[i][j]
		}
		rl, err := k.RegisterCurveLoop(l, b.UseOwnTag)
		if err != nil {
			return err
		}
		b.curveLoops[i] = rl
	}
	return nil
}

func (b *Block) registerSurfaces(k kernel.Kernel) error {
	for i, s := range b.Surfaces {
		s.CurveLoops = []*geometry.CurveLoop{b.curveLoops[i]}
		rs, err := k.RegisterSurface(s, b.UseOwnTag)
		if err != nil {
			return err
		}
		b.Surfaces[i] = rs
	}
	return nil
}

// registerSurfaceLoops registers the outer boundary (all 6 faces) and,
// when boolean merging is disabled, partitions registered children's
// boundary surfaces into connected groups, each becoming one internal
// cavity loop.
func (b *Block) registerSurfaceLoops(k kernel.Kernel) error {
	b.surfaceLoops[0].Surfaces = b.Surfaces
	outer, err := k.RegisterSurfaceLoop(b.surfaceLoops[0], b.UseOwnTag)
	if err != nil {
		return err
	}
	b.surfaceLoops[0] = outer
	if b.BooleanLevel != nil {
		return nil
	}
	var childSurfaces [][]int
	for _, c := range b.Children {
		if !c.DoRegister {
			continue
		}
		if !c.IsRegistered {
			return fmt.Errorf("child with zone %q must be registered before its parent", c.Volumes[0].Zone)
		}
		for _, v := range c.Volumes {
			tags := make([]int, 0, len(v.SurfaceLoops[0].Surfaces))
			for _, s := range v.SurfaceLoops[0].Surfaces {
				tags = append(tags, s.Tag)
			}
			childSurfaces = append(childSurfaces, tags)
		}
	}
	for _, g := range boolean.Group(childSurfaces) {
		sl := &geometry.SurfaceLoop{}
		for _, tag := range g {
			sl.Surfaces = append(sl.Surfaces, &geometry.Surface{Tag: tag})
		}
		rl, err := k.RegisterSurfaceLoop(sl, b.UseOwnTag)
		if err != nil {
			return err
		}
		b.surfaceLoops = append(b.surfaceLoops, rl)
	}
	return nil
}

func (b *Block) registerVolumes(k kernel.Kernel) error {
	v := b.Volumes[0]
	v.SurfaceLoops = b.surfaceLoops
	rv, err := k.RegisterVolume(v, b.UseOwnTag)
	if err != nil {
		return err
	}
	b.Volumes[0] = rv
	b.IsRegistered = true
	return nil
}

// registerStructure applies structured-mesh directives, resolving corner
// tags and arrangements from the structure-type permutation.
func (b *Block) registerStructure(k kernel.Kernel) error {
	for i, c := range b.Curves {
		st := b.CurveStructures[i]
		if st == nil {
			continue
		}
		if err := k.RegisterCurveStructure(c.Points, st); err != nil {
			return err
		}
	}
	for i := range b.Surfaces {
		st := b.SurfaceStructures[i]
		if st == nil {
			continue
		}
		ps := make([]*geometry.Point, 4)
		st.CornerTags = make([]int, 4)
		for j, pi := range surfacePoints[i] {
			ps[j] = b.Points[pi]
			st.CornerTags[j] = b.Points[pi].Tag
		}
		st.Arrangement = b.surfaceArrangements[i]
		if err := k.RegisterSurfaceStructure(ps, st); err != nil {
			return err
		}
	}
	for i := range b.Volumes {
		if i >= len(b.VolumeStructures) {
			break
		}
		st := b.VolumeStructures[i]
		if st == nil {
			continue
		}
		st.CornerTags = make([]int, 8)
		for j, pi := range b.volumePointOrder {
			st.CornerTags[j] = b.Points[pi].Tag
		}
		if err := k.RegisterVolumeStructure(b.Points, st); err != nil {
			return err
		}
	}
	return nil
}

func (b *Block) registerQuadrate(k kernel.Kernel) error {
	for i := range b.Surfaces {
		q := b.SurfaceQuadrates[i]
		if q == nil {
			continue
		}
		ps := make([]*geometry.Point, 4)
		for j, pi := range surfacePoints[i] {
			ps[j] = b.Points[pi]
		}
		if err := k.RegisterSurfaceQuadrate(ps, q); err != nil {
			return err
		}
	}
	return nil
}

// Unregister removes simple (declared, non-boolean-derived) volumes of
// the subtree from the kernel session: children first, then, if this
// block was registered with unregistration enabled, every volume whose
// zone does not contain the separator.
func (b *Block) Unregister(k kernel.Kernel) error {
	if b.DoUnregisterChildren {
		for _, c := range b.Children {
			if err := c.Unregister(k); err != nil {
				return err
			}
		}
	}
	if !b.DoUnregister || !b.IsRegistered {
		return nil
	}
	for i, v := range b.Volumes {
		if v.Zone == "" || strings.Contains(v.Zone, ZoneSeparator) {
			continue
		}
		uv, err := k.UnregisterVolume(v, b.UseOwnTag)
		if err != nil {
			return fmt.Errorf("unregister volume zone %q: %w", v.Zone, err)
		}
		b.Volumes[i] = uv
		log.WithField("zone", uv.Zone).Debug("volume unregistered")
	}
	return nil
}

// UnregisterBoolean removes boolean-derived volumes: only meaningful on
// blocks with a boolean level, and only for zones containing the
// separator. Together with Unregister this lets a caller first discard
// declared volumes consumed by a boolean step and later discard the
// boolean byproducts, independently.
func (b *Block) UnregisterBoolean(k kernel.Kernel) error {
	if b.DoUnregisterBooleanChildren {
		for _, c := range b.Children {
			if err := c.UnregisterBoolean(k); err != nil {
				return err
			}
		}
	}
	if !b.IsRegistered || !b.DoUnregisterBoolean {
		return nil
	}
	if b.BooleanLevel == nil {
		return nil
	}
	for i, v := range b.Volumes {
		if !strings.Contains(v.Zone, ZoneSeparator) {
			continue
		}
		uv, err := k.UnregisterVolume(v, b.UseOwnTag)
		if err != nil {
			return fmt.Errorf("unregister boolean volume zone %q: %w", v.Zone, err)
		}
		b.Volumes[i] = uv
		log.WithField("zone", uv.Zone).Debug("boolean volume unregistered")
	}
	return nil
}
