package arena

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestNewTreeHasRoot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bintree")
	defer teardown()
	//
	tree := New("root")
	if tree.Len() != 1 {
		t.Fatalf("expected new tree to have 1 node, has %d", tree.Len())
	}
	root := tree.Root()
	if root.Value() != "root" {
		t.Errorf("expected root value 'root', is %q", root.Value())
	}
	if root.HasChildren() {
		t.Errorf("expected fresh root to have no children")
	}
	if _, ok := root.Parent(); ok {
		t.Errorf("root must not have a parent")
	}
	if err := tree.Check(); err != nil {
		t.Fatalf("expected new tree to validate, got %v", err)
	}
}

func TestAppendKeepsChildOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bintree")
	defer teardown()
	//
	tree := New(0)
	root := tree.RootMut()
	root.Append(1)
	root.Append(2)
	root.Append(3).Append(31)
	if err := tree.Check(); err != nil {
		t.Fatalf("tree does not validate: %v", err)
	}
	var values []int
	for c := range tree.Root().Children() {
		values = append(values, c.Value())
	}
	if len(values) != 3 || values[0] != 1 || values[1] != 2 || values[2] != 3 {
		t.Fatalf("unexpected children %v", values)
	}
	first, _ := tree.Root().FirstChild()
	last, _ := tree.Root().LastChild()
	if first.Value() != 1 || last.Value() != 3 {
		t.Errorf("expected first=1, last=3; got %d, %d", first.Value(), last.Value())
	}
	mid, ok := first.NextSibling()
	if !ok || mid.Value() != 2 {
		t.Fatalf("expected sibling 2 after first child")
	}
	if p, ok := mid.PrevSibling(); !ok || p.ID() != first.ID() {
		t.Errorf("expected previous sibling of 2 to be 1")
	}
	if _, ok := last.NextSibling(); ok {
		t.Errorf("last child must not have a next sibling")
	}
	grand, ok := last.FirstChild()
	if !ok || grand.Value() != 31 {
		t.Fatalf("expected grandchild 31")
	}
	if p, ok := grand.Parent(); !ok || p.ID() != last.ID() {
		t.Errorf("expected parent of 31 to be node 3")
	}
	if tree.Len() != 5 {
		t.Errorf("expected 5 nodes, have %d", tree.Len())
	}
}

func TestNodeIdentityIsStable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bintree")
	defer teardown()
	//
	tree := New("a")
	root := tree.RootMut()
	b := root.Append("b")
	id := b.ID()
	*b.Value() = "B"
	for range 100 {
		root.Append("x")
	}
	n, ok := tree.Get(id)
	if !ok {
		t.Fatalf("node %d vanished", id)
	}
	if n.Value() != "B" {
		t.Errorf("expected value 'B' at node %d, is %q", id, n.Value())
	}
	if _, ok := tree.Get(NodeID(tree.Len())); ok {
		t.Errorf("expected Get of unknown id to fail")
	}
}

func TestValuePointerSurvivesGrowth(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bintree")
	defer teardown()
	//
	tree := New(1)
	root := tree.RootMut()
	v := root.Value()
	for i := range 64 {
		root.Append(i)
	}
	*v = 42 // pointer still addresses the root cell
	if tree.Root().Value() != 42 {
		t.Errorf("expected root value 42, is %d", tree.Root().Value())
	}
}

func TestCheckDetectsBrokenLinks(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bintree")
	defer teardown()
	//
	tree := New(0)
	root := tree.RootMut()
	root.Append(1)
	root.Append(2)
	tree.nodes[2].parent = 1
	err := tree.Check()
	if !errors.Is(err, ErrBrokenInvariant) {
		t.Fatalf("expected ErrBrokenInvariant, got %v", err)
	}
	tree.nodes[2].parent = 0
	tree.nodes[0].last = 1
	if err := tree.Check(); !errors.Is(err, ErrBrokenInvariant) {
		t.Fatalf("expected ErrBrokenInvariant for wrong last child, got %v", err)
	}
}
