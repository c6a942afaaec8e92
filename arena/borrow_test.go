package arena

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// expectBorrowPanic runs fn and fails t unless fn panics with a *BorrowError.
func expectBorrowPanic(t *testing.T, what string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Errorf("%s: expected borrow violation, got none", what)
			return
		}
		err, ok := r.(error)
		if !ok {
			t.Errorf("%s: expected error panic, got %v", what, r)
			return
		}
		var berr *BorrowError
		if !errors.As(err, &berr) || !errors.Is(err, ErrBorrowed) {
			t.Errorf("%s: expected *BorrowError, got %v", what, err)
		}
	}()
	fn()
}

func TestSharedViewsAlias(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bintree")
	defer teardown()
	//
	tree := New("r")
	tree.RootMut().Append("c")
	a, b := tree.Root(), tree.Root()
	ca, _ := a.FirstChild()
	cb, _ := b.FirstChild()
	if ca.Value() != cb.Value() || a.Value() != "r" {
		t.Errorf("expected aliasing shared views to agree")
	}
}

func TestRootMutEndsSharedViews(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bintree")
	defer teardown()
	//
	tree := New("r")
	shared := tree.Root()
	_ = tree.RootMut()
	expectBorrowPanic(t, "stale shared view", func() {
		_ = shared.Value()
	})
	fresh := tree.Root()
	if fresh.Value() != "r" {
		t.Errorf("expected fresh shared view to work")
	}
}

func TestRootEndsExclusiveViews(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bintree")
	defer teardown()
	//
	tree := New("r")
	m := tree.RootMut()
	_ = tree.Root()
	expectBorrowPanic(t, "stale exclusive view", func() {
		m.Append("x")
	})
}

func TestReborrowStack(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bintree")
	defer teardown()
	//
	tree := New(0)
	root := tree.RootMut()
	left := root.Append(1)
	grand := left.Append(11)
	*grand.Value() = 12 // top of stack: fine
	*left.Value() = 2   // ends grand
	expectBorrowPanic(t, "grandchild after parent use", func() {
		_ = grand.Value()
	})
	right := root.Append(3) // ends left
	expectBorrowPanic(t, "left after root use", func() {
		left.Append(13)
	})
	*right.Value() = 4
	if err := tree.Check(); err != nil {
		t.Fatalf("tree does not validate: %v", err)
	}
	r := tree.Root()
	l, _ := r.FirstChild()
	g, _ := l.FirstChild()
	rr, _ := r.LastChild()
	if l.Value() != 2 || g.Value() != 12 || rr.Value() != 4 {
		t.Errorf("unexpected values %d, %d, %d", l.Value(), g.Value(), rr.Value())
	}
}

func TestUpdateScopeForbidsOtherViews(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bintree")
	defer teardown()
	//
	tree := New("r")
	var escaped *NodeMut[string]
	tree.Update(func(root *NodeMut[string]) {
		escaped = root.Append("c")
		expectBorrowPanic(t, "Root inside Update", func() { tree.Root() })
		expectBorrowPanic(t, "RootMut inside Update", func() { tree.RootMut() })
		expectBorrowPanic(t, "View inside Update", func() {
			tree.View(func(NodeRef[string]) {})
		})
		expectBorrowPanic(t, "Update inside Update", func() {
			tree.Update(func(*NodeMut[string]) {})
		})
		*escaped.Value() = "child"
	})
	expectBorrowPanic(t, "view escaped from Update", func() {
		_ = escaped.Value()
	})
	c, ok := tree.Root().FirstChild()
	if !ok || c.Value() != "child" {
		t.Errorf("expected child written inside Update")
	}
}

func TestViewScopeForbidsExclusiveViews(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bintree")
	defer teardown()
	//
	tree := New("r")
	tree.View(func(root NodeRef[string]) {
		tree.View(func(inner NodeRef[string]) {
			if inner.Value() != root.Value() {
				t.Errorf("expected nested views to agree")
			}
		})
		_ = tree.Root()
		expectBorrowPanic(t, "RootMut inside View", func() { tree.RootMut() })
		expectBorrowPanic(t, "Update inside View", func() {
			tree.Update(func(*NodeMut[string]) {})
		})
		if root.Value() != "r" {
			t.Errorf("expected root view to survive")
		}
	})
	tree.RootMut().Append("ok")
	if tree.Len() != 2 {
		t.Errorf("expected exclusive access after View returned")
	}
}
