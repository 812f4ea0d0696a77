package util

import (
	"errors"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var ErrNilNode = errors.New("HTML node is nil")

// blocks are the elements whose text becomes one line of TextBlocks.
var blocks = map[atom.Atom]bool{
	atom.Button:     true,
	atom.H1:         true,
	atom.H2:         true,
	atom.H3:         true,
	atom.H4:         true,
	atom.Li:         true,
	atom.P:          true,
	atom.Figcaption: true,
}

// TextBlocks parses an HTML document and returns the text of its block elements in document order.
// Whitespace is collapsed, inline markup is dropped.
func TextBlocks(input io.Reader) ([]string, error) {

	doc, err := html.Parse(input)
	if err != nil {
		return nil, err
	}

	var result = []string{}

	err = ForEachDomNode(doc, func(node *html.Node) (bool, error) {
		if node.Type != html.ElementNode {
			return true, nil
		}
		switch {
		case node.DataAtom == atom.Head || node.DataAtom == atom.Script || node.DataAtom == atom.Style:
			return false, nil
		case blocks[node.DataAtom]:
			if text := InnerText(node); text != "" {
				result = append(result, text)
			}
			return false, nil
		default:
			return true, nil
		}
	})

	return result, err
}

// InnerText concatenates all text nodes below root and collapses whitespace.
func InnerText(root *html.Node) string {

	var sb = &strings.Builder{}

	_ = ForEachDomNode(root, func(node *html.Node) (bool, error) {
		if node.Type == html.TextNode {
			sb.WriteString(node.Data)
		}
		return true, nil
	})

	return strings.Join(strings.Fields(sb.String()), " ")
}

// ForEachDomNode calls a task func for each node, including root.
// It recurses (pre-order) if and only if the task returns true.
//
// The task might replace the node, so its NextSibling might change.
func ForEachDomNode(root *html.Node, task func(*html.Node) (bool, error)) error {

	if root == nil {
		return ErrNilNode
	}

	recurse, err := task(root)
	if err != nil {
		return err
	}
	if !recurse {
		return nil
	}

	for child := root.FirstChild; child != nil; {

		nextSiblingBackup := child.NextSibling // backup because the task might modify child.NextSibling

		err = ForEachDomNode(child, task)
		if err != nil {
			return err
		}

		child = nextSiblingBackup
	}

	return nil
}
