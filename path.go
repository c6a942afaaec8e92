package bintree

import (
	"fmt"
	"strings"
)

// Step is one edge on a path from a node downwards.
type Step uint8

// Steps to the left and right child slot.
const (
	StepLeft Step = iota
	StepRight
)

func (s Step) String() string {
	if s == StepLeft {
		return "L"
	}
	return "R"
}

// Path addresses a node relative to another node, usually the root. The empty
// path addresses the node itself.
//
// Paths print as strings of 'L' and 'R', e.g. "LRR".
type Path []Step

// Child returns a new path extending p by step s. p is not modified.
func (p Path) Child(s Step) Path {
	c := make(Path, len(p)+1)
	copy(c, p)
	c[len(p)] = s
	return c
}

func (p Path) String() string {
	var sb strings.Builder
	for _, s := range p {
		sb.WriteString(s.String())
	}
	return sb.String()
}

// ParsePath reads a path from a string of 'L' and 'R' characters
// (case-insensitive). The empty string is the empty path.
func ParsePath(s string) (Path, error) {
	p := make(Path, 0, len(s))
	for i, c := range s {
		switch c {
		case 'L', 'l':
			p = append(p, StepLeft)
		case 'R', 'r':
			p = append(p, StepRight)
		default:
			return nil, fmt.Errorf("%w: unexpected %q at position %d", ErrIllegalPath, c, i)
		}
	}
	return p, nil
}
