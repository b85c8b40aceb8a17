package block

import (
	"iter"

	"github.com/sirupsen/logrus"
	"github.com/somesortofme/gmsh-scripts/pkg/transform"
)

// All returns a restartable pre-order traversal of the subtree: the
// block itself, then each child's full subtree in order.
func (b *Block) All() iter.Seq[*Block] {
	return func(yield func(*Block) bool) {
		b.walk(yield)
	}
}

func (b *Block) walk(yield func(*Block) bool) bool {
	if !yield(b) {
		return false
	}
	for _, c := range b.Children {
		if !c.walk(yield) {
			return false
		}
	}
	return true
}

// Size returns the number of blocks in the subtree, including the root.
func (b *Block) Size() int {
	n := 0
	for range b.All() {
		n++
	}
	return n
}

// AddChild attaches a child with its per-child transform list. The
// child's parent back-reference is updated.
func (b *Block) AddChild(child *Block, transforms ...transform.Transform) {
	child.Parent = b
	b.Children = append(b.Children, child)
	b.ChildrenTransforms = append(b.ChildrenTransforms, transforms)
}

// MakeTree groups every block in the subtree under its direct parent.
// Blocks without a parent appear under the nil key.
func (b *Block) MakeTree() map[*Block][]*Block {
	tree := make(map[*Block][]*Block)
	for n := range b.All() {
		tree[n.Parent] = append(tree[n.Parent], n)
	}
	return tree
}

// LogTree logs a summary of the subtree: node count, nodes per depth and
// maximum depth.
func (b *Block) LogTree() {
	depth := map[*Block]int{}
	perDepth := map[int]int{}
	count, maxDepth := 0, 0
	for n := range b.All() {
		d := 0
		if n != b {
			d = depth[n.Parent] + 1
		}
		depth[n] = d
		perDepth[d]++
		if d > maxDepth {
			maxDepth = d
		}
		count++
	}
	log.WithFields(logrus.Fields{
		"nodes":     count,
		"max_depth": maxDepth,
		"by_depth":  perDepth,
	}).Info("block tree")
}
