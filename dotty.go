package bintree

import (
	"fmt"
	"io"
	"strings"
)

// ToDot outputs the structure of a tree in Graphviz DOT format
// (for debugging purposes). Populated nodes are labeled with their values,
// formatted with fmt.Sprint; placeholder slots are drawn as small empty circles.
func ToDot[T any](t *BinaryTree[T], w io.Writer) error {
	var nodelist, edgelist strings.Builder
	var emit func(n NodeRef[T], path Path)
	emit = func(n NodeRef[T], path Path) {
		ID := nodeID(path)
		nodelist.WriteString(fmt.Sprintf("\"%s\" [label=\"%s\"%s];\n",
			ID, dotEscape(fmt.Sprint(n.Value())), nodeDotStyles(n.IsLeaf())))
		for _, step := range []Step{StepLeft, StepRight} {
			childpath := path.Child(step)
			childID := nodeID(childpath)
			child, ok := n.At(Path{step})
			if ok {
				emit(child, childpath)
			} else {
				nodelist.WriteString(fmt.Sprintf("\"%s\" %s;\n", childID, emptyNode()))
			}
			edgelist.WriteString(fmt.Sprintf("\"%s\" -> \"%s\" [label=%s];\n", ID, childID, step))
		}
	}
	emit(t.Root(), Path{})
	_, err := io.WriteString(w, "strict digraph {\n"+
		"\tnode [fontname=Arial,fontsize=12];\n"+
		nodelist.String()+
		edgelist.String()+
		"}\n")
	return err
}

func nodeID(path Path) string {
	return "n" + path.String()
}

func dotEscape(s string) string {
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`).Replace(s)
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.2]"
}

func nodeDotStyles(isleaf bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
		s += ",shape=circle"
	}
	return s
}
