package block

import (
	"testing"
)

func buildTree(t *testing.T) (*Block, *Block, *Block, *Block) {
	t.Helper()
	grandchild, err := New(WithZone("gc"))
	if err != nil {
		t.Fatal(err)
	}
	left, err := New(WithZone("left"), WithChildren([]*Block{grandchild}, nil))
	if err != nil {
		t.Fatal(err)
	}
	right, err := New(WithZone("right"))
	if err != nil {
		t.Fatal(err)
	}
	root, err := New(WithZone("root"), WithChildren([]*Block{left, right}, nil))
	if err != nil {
		t.Fatal(err)
	}
	return root, left, right, grandchild
}

func TestAllIsPreOrder(t *testing.T) {
	root, left, right, grandchild := buildTree(t)
	var got []string
	for b := range root.All() {
		got = append(got, b.Volumes[0].Zone)
	}
	want := []string{"root", "left", "gc", "right"}
	if len(got) != len(want) {
		t.Fatalf("visited %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("visited %v, want %v", got, want)
		}
	}
	_ = left
	_ = right
	_ = grandchild
}

func TestAllIsRestartable(t *testing.T) {
	root, _, _, _ := buildTree(t)
	first, second := 0, 0
	for range root.All() {
		first++
	}
	for range root.All() {
		second++
	}
	if first != 4 || second != 4 {
		t.Errorf("traversal counts %d, %d, want 4 each", first, second)
	}
}

func TestAllStopsEarly(t *testing.T) {
	root, _, _, _ := buildTree(t)
	n := 0
	for range root.All() {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Errorf("early stop visited %d", n)
	}
}

func TestSize(t *testing.T) {
	root, _, _, _ := buildTree(t)
	if got := root.Size(); got != 4 {
		t.Errorf("Size = %d, want 4", got)
	}
}

func TestMakeTree(t *testing.T) {
	root, left, _, grandchild := buildTree(t)
	tree := root.MakeTree()
	if len(tree[nil]) != 1 || tree[nil][0] != root {
		t.Error("root not under the nil key")
	}
	if len(tree[root]) != 2 {
		t.Errorf("root has %d children in the map, want 2", len(tree[root]))
	}
	if len(tree[left]) != 1 || tree[left][0] != grandchild {
		t.Error("grandchild not grouped under its parent")
	}
}

func TestAddChild(t *testing.T) {
	parent, err := New()
	if err != nil {
		t.Fatal(err)
	}
	child, err := New()
	if err != nil {
		t.Fatal(err)
	}
	parent.AddChild(child)
	if child.Parent != parent {
		t.Error("AddChild must set the parent back-reference")
	}
	if len(parent.Children) != 1 || len(parent.ChildrenTransforms) != 1 {
		t.Errorf("children %d, transform lists %d", len(parent.Children), len(parent.ChildrenTransforms))
	}
}

func TestLogTree(t *testing.T) {
	root, _, _, _ := buildTree(t)
	// Smoke test: must walk the tree without panicking.
	root.LogTree()
}
