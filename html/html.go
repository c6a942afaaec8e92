package html

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/bintree"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Fragment creates an HTML element node for a tree, suitable for embedding
// into a document. Node labels are the values formatted with fmt.Sprint.
func Fragment[T any](t *bintree.BinaryTree[T]) *html.Node {
	list := element(atom.Ul, "bintree")
	list.AppendChild(item(t.Root(), ""))
	return list
}

// Render writes the HTML fragment for a tree to w.
func Render[T any](w io.Writer, t *bintree.BinaryTree[T]) error {
	return html.Render(w, Fragment(t))
}

func item[T any](n bintree.NodeRef[T], class string) *html.Node {
	li := element(atom.Li, class)
	span := element(atom.Span, "node")
	span.AppendChild(&html.Node{Type: html.TextNode, Data: fmt.Sprint(n.Value())})
	li.AppendChild(span)
	if n.IsLeaf() {
		return li
	}
	children := element(atom.Ul, "")
	if l, ok := n.Left(); ok {
		children.AppendChild(item(l, "left"))
	} else {
		children.AppendChild(element(atom.Li, "left placeholder"))
	}
	if r, ok := n.Right(); ok {
		children.AppendChild(item(r, "right"))
	} else {
		children.AppendChild(element(atom.Li, "right placeholder"))
	}
	li.AppendChild(children)
	return li
}

func element(a atom.Atom, class string) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	if class != "" {
		n.Attr = []html.Attribute{{Key: "class", Val: class}}
	}
	return n
}

// Labels collects the labels of all node spans below an HTML node in
// document order, which is pre-order for rendered trees.
func Labels(n *html.Node) []string {
	var labels []string
	collectLabels(n, &labels)
	return labels
}

// LabelsFromHTML parses an HTML fragment and returns the node labels found
// in it.
func LabelsFromHTML(input io.Reader) ([]string, error) {
	nodes, err := html.ParseFragment(input, &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	})
	if err != nil {
		return nil, err
	}
	var labels []string
	for _, n := range nodes {
		collectLabels(n, &labels)
	}
	tracer().Debugf("html: found %d node labels", len(labels))
	return labels, nil
}

func collectLabels(n *html.Node, labels *[]string) {
	if n.Type == html.ElementNode && n.DataAtom == atom.Span && hasClass(n, "node") {
		*labels = append(*labels, innerText(n))
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectLabels(c, labels)
	}
}

func innerText(n *html.Node) string {
	var sb strings.Builder
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(n)
	return sb.String()
}

func hasClass(n *html.Node, class string) bool {
	for _, a := range n.Attr {
		if a.Key == "class" {
			for _, c := range strings.Fields(a.Val) {
				if c == class {
					return true
				}
			}
		}
	}
	return false
}
