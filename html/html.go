/*
Package html creates position arrays from the textual content of HTML.

Every text node becomes an item of the position array. Offsets refer to the
concatenated text of all text nodes, i.e. to the coordinate space of the
element's inner text. Cutting this text at arbitrary points, e.g. at line
breaks, is then a matter of calling parray.Splits; the resulting items still
belong to exactly one text node each.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package html

import (
	"errors"
	"io"

	"github.com/npillmayer/parray"
	"golang.org/x/net/html"
)

// ErrNoNode is returned for a nil HTML node.
var ErrNoNode = errors.New("html: node is nil")

// InnerText creates a position array for the textual content of an HTML
// element and all its descendents, one item per text node. Its text resembles
// the text produced by
//
//	document.getElementById("myNode").innerText
//
// in JavaScript (except that html.InnerText cannot respect CSS styling suppressing
// the visibility of the node's descendents).
func InnerText(n *html.Node) ([]parray.Item[string], error) {
	if n == nil {
		return nil, ErrNoNode
	}
	return parray.Make(collectText(n, []string{})), nil
}

func collectText(n *html.Node, texts []string) []string {
	if n.Type == html.TextNode && n.Data != "" {
		texts = append(texts, n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		texts = collectText(c, texts)
	}
	return texts
}

// TextItems creates a position array from the textual content of an HTML fragment.
// It does no interpretation of layout and styling, but extracts the pure text.
func TextItems(input io.Reader) ([]parray.Item[string], error) {
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		return nil, err
	}
	texts := []string{}
	for _, n := range nodes {
		texts = collectText(n, texts)
	}
	return parray.Make(texts), nil
}
