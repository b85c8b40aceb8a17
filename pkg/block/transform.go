package block

import (
	"fmt"

	"github.com/somesortofme/gmsh-scripts/pkg/geometry"
	"github.com/somesortofme/gmsh-scripts/pkg/transform"
)

// Transform propagates and applies transforms over the subtree. For each
// child, the child's declared per-child transforms and then this block's
// own transforms are appended to the child's list (parent transforms
// apply after child-local ones) before recursing. Afterwards the block's
// own corner points and curve interior points are re-anchored (for
// block-relative coordinates) and run through the reduced transform
// list. A block-relative point without a parent is a fatal configuration
// error.
func (b *Block) Transform() error {
	for i, c := range b.Children {
		if i < len(b.ChildrenTransforms) {
			c.Transforms = append(c.Transforms, b.ChildrenTransforms[i]...)
		}
		c.Transforms = append(c.Transforms, b.Transforms...)
		if err := c.Transform(); err != nil {
			return err
		}
	}
	for _, p := range b.Points {
		if err := b.transformPoint(p); err != nil {
			return err
		}
	}
	for _, c := range b.Curves {
		for _, p := range c.Points {
			if err := b.transformPoint(p); err != nil {
				return err
			}
		}
	}
	log.WithField("transforms", len(b.Transforms)).Debug("block transformed")
	return nil
}

func (b *Block) transformPoint(p *geometry.Point) error {
	if rel, ok := p.System.(*geometry.BlockRelative); ok {
		if b.Parent == nil {
			return fmt.Errorf("point %v uses the block coordinate system but the block has no parent", p.Coordinates)
		}
		for i, pp := range b.Parent.Points {
			rel.Corners[i] = pp.Coordinates
		}
	}
	return transform.Reduce(b.Transforms, p)
}
