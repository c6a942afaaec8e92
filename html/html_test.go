package html

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/bintree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestRenderNestedList(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bintree")
	defer teardown()
	//
	tree := bintree.MustBuild("root",
		bintree.Left("a<b"),
		bintree.Right("right", bintree.Right("rr")))
	var buf bytes.Buffer
	if err := Render(&buf, tree); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	t.Logf("%s", out)
	for _, want := range []string{
		`<ul class="bintree"><li><span class="node">root</span><ul>`,
		`<li class="left"><span class="node">a&lt;b</span></li>`,
		`<li class="left placeholder"></li>`,
		`<li class="right"><span class="node">rr</span></li>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q", want)
		}
	}
}

func TestLabelsRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bintree")
	defer teardown()
	//
	tree := bintree.MustBuild(1,
		bintree.Left(2, bintree.Left(4)),
		bintree.Right(3))
	var buf bytes.Buffer
	if err := Render(&buf, tree); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	labels, err := LabelsFromHTML(&buf)
	if err != nil {
		t.Fatalf("cannot parse rendered HTML: %v", err)
	}
	if strings.Join(labels, " ") != "1 2 4 3" {
		t.Errorf("expected labels in pre-order, have %v", labels)
	}
	if got := Labels(Fragment(tree)); strings.Join(got, " ") != "1 2 4 3" {
		t.Errorf("expected labels from fragment in pre-order, have %v", got)
	}
}
