package treefile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/bintree"
	"gopkg.in/yaml.v3"
)

// ErrNotATreeFile is flagged for input which does not hold a tree literal.
var ErrNotATreeFile = errors.New("treefile: not a tree literal")

// Keys of a node mapping.
const (
	keyValue = "value"
	keyLeft  = "left"
	keyRight = "right"
)

// Load reads a file, which must be a YAML tree literal, and builds a tree
// from it.
func Load(name string) (*bintree.BinaryTree[string], error) {
	f, err := openFile(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	tree, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return tree, nil
}

// openFile opens an OS file, checking for error conditions.
func openFile(name string) (*os.File, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s is not a regular file", ErrNotATreeFile, name)
	}
	tracer().Debugf("treefile: loading %s (%d bytes)", name, fi.Size())
	return os.Open(name) // just open for read access
}

// Parse reads a YAML tree literal from r and builds a tree from it.
func Parse(r io.Reader) (*bintree.BinaryTree[string], error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty input", ErrNotATreeFile)
		}
		return nil, fmt.Errorf("%w: %w", ErrNotATreeFile, err)
	}
	top := &doc
	if top.Kind == yaml.DocumentNode && len(top.Content) == 1 {
		top = top.Content[0]
	}
	value, branches, err := literal(top)
	if err != nil {
		return nil, err
	}
	tree, err := bintree.Build(value, branches...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotATreeFile, err)
	}
	tracer().Debugf("treefile: built tree with %d nodes", tree.Len())
	return tree, nil
}

// literal reads the value and the child branches of a node literal.
func literal(n *yaml.Node) (string, []bintree.Branch[string], error) {
	switch n.Kind {
	case yaml.ScalarNode:
		return n.Value, nil, nil
	case yaml.MappingNode:
	default:
		return "", nil, malformed(n, "expected scalar or mapping")
	}
	var value string
	var hasValue bool
	var branches []bintree.Branch[string]
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, child := n.Content[i], n.Content[i+1]
		switch key.Value {
		case keyValue:
			if hasValue {
				return "", nil, malformed(key, "duplicate key 'value'")
			}
			if child.Kind != yaml.ScalarNode {
				return "", nil, malformed(child, "node value must be a scalar")
			}
			value, hasValue = child.Value, true
		case keyLeft, keyRight:
			v, sub, err := literal(child)
			if err != nil {
				return "", nil, err
			}
			if key.Value == keyLeft {
				branches = append(branches, bintree.Left(v, sub...))
			} else {
				branches = append(branches, bintree.Right(v, sub...))
			}
		default:
			return "", nil, malformed(key, fmt.Sprintf("unknown key %q", key.Value))
		}
	}
	if !hasValue {
		return "", nil, malformed(n, "node without 'value'")
	}
	return value, branches, nil
}

func malformed(n *yaml.Node, msg string) error {
	return fmt.Errorf("%w: line %d, column %d: %s", ErrNotATreeFile, n.Line, n.Column, msg)
}
