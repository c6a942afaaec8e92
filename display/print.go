package display

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/npillmayer/bintree"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"github.com/xlab/treeprint"
	"golang.org/x/term"
)

// Options controls the console rendering of a tree.
type Options struct {
	Color        bool           // colorize slot markers and placeholders
	Width        int            // maximum label width in cells; values < 1 mean unlimited
	Placeholders bool           // print empty slots of inner nodes
	Context      *uax11.Context // context for measuring label widths; nil means Latin
}

// Palette holds the colors used for colorized output.
type Palette struct {
	Left, Right, Placeholder *color.Color
}

// DefaultPalette is the palette used by Print.
var DefaultPalette = Palette{
	Left:        color.New(color.FgBlue),
	Right:       color.New(color.FgMagenta),
	Placeholder: color.New(color.Faint),
}

// PlaceholderLabel is printed for empty slots.
const PlaceholderLabel = "∅"

const ellipsis = "…"

var setupGraphemes sync.Once

// OptionsFromTerminal is a simple helper for creating Options.
// It checks whether stdout is a terminal, and if so, it enables colors and
// reads the terminal's width to limit label widths accordingly.
func OptionsFromTerminal() *Options {
	opts := &Options{
		Context: uax11.ContextFromEnvironment(),
	}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		opts.Color = true
		w, _, err := term.GetSize(fd)
		if err != nil {
			opts.Width = 40
		} else if w > 30 {
			opts.Width = w / 2
		} else {
			opts.Width = 15
		}
	}
	tracer().P("display", "console").Infof("setting label width to %d en", opts.Width)
	return opts
}

// Print outputs a tree to w. If opts is nil, options are derived from the
// terminal stdout is connected to.
func Print[T any](w io.Writer, t *bintree.BinaryTree[T], opts *Options) error {
	_, err := io.WriteString(w, Sprint(t, opts))
	return err
}

// Sprint renders a tree as a string. If opts is nil, options are derived from
// the terminal stdout is connected to.
func Sprint[T any](t *bintree.BinaryTree[T], opts *Options) string {
	if opts == nil {
		opts = OptionsFromTerminal()
	}
	p := &printer{
		opts: opts,
		palette: Palette{
			Left:        colorFor(DefaultPalette.Left, opts.Color),
			Right:       colorFor(DefaultPalette.Right, opts.Color),
			Placeholder: colorFor(DefaultPalette.Placeholder, opts.Color),
		},
	}
	root := t.Root()
	tree := treeprint.NewWithRoot(p.label(fmt.Sprint(root.Value())))
	addChildren(p, tree, root)
	return tree.String()
}

// colorFor copies c with colors forced on or off, independent of the
// global color.NoColor setting.
func colorFor(c *color.Color, enabled bool) *color.Color {
	cc := *c
	if enabled {
		cc.EnableColor()
	} else {
		cc.DisableColor()
	}
	return &cc
}

type printer struct {
	opts    *Options
	palette Palette
}

func addChildren[T any](p *printer, tree treeprint.Tree, n bintree.NodeRef[T]) {
	if n.IsLeaf() {
		return
	}
	slots := []struct {
		marker *color.Color
		step   bintree.Step
	}{
		{p.palette.Left, bintree.StepLeft},
		{p.palette.Right, bintree.StepRight},
	}
	for _, slot := range slots {
		meta := slot.marker.Sprint(slot.step.String())
		child, ok := n.At(bintree.Path{slot.step})
		switch {
		case !ok && p.opts.Placeholders:
			tree.AddMetaNode(meta, p.palette.Placeholder.Sprint(PlaceholderLabel))
		case !ok:
		case child.IsLeaf():
			tree.AddMetaNode(meta, p.label(fmt.Sprint(child.Value())))
		default:
			branch := tree.AddMetaBranch(meta, p.label(fmt.Sprint(child.Value())))
			addChildren(p, branch, child)
		}
	}
}

// label prepares a value's text for a single output line, truncated to the
// configured width.
func (p *printer) label(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if p.opts.Width < 1 {
		return s
	}
	ctx := p.opts.Context
	if ctx == nil {
		ctx = uax11.LatinContext
	}
	if width(s, ctx) <= p.opts.Width {
		return s
	}
	limit := p.opts.Width - width(ellipsis, ctx)
	var sb strings.Builder
	for _, r := range s {
		if width(sb.String()+string(r), ctx) > limit {
			break
		}
		sb.WriteRune(r)
	}
	tracer().Debugf("display: truncated label %q to %d cells", s, p.opts.Width)
	return sb.String() + ellipsis
}

func width(s string, ctx *uax11.Context) int {
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	return uax11.StringWidth(grapheme.StringFromString(s), ctx)
}
