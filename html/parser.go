// Package html builds document trees from markup, using
// golang.org/x/net/html as the underlying parser implementation.
package html

import (
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/seabird-web/seabird/dom"
)

// Parse reads HTML markup and materializes it as a tree under a new live
// document. The tree is built through the public mutation API, so
// observers registered on the document before parsing see every insertion.
func Parse(r io.Reader) (*dom.Document, error) {
	src, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	doc := dom.NewDocument()
	for child := src.FirstChild; child != nil; child = child.NextSibling {
		if err := buildSubtree(doc, doc.AsNode(), child); err != nil {
			return nil, err
		}
	}
	return doc, nil
}

// ParseString parses HTML markup from a string.
func ParseString(markup string) (*dom.Document, error) {
	return Parse(strings.NewReader(markup))
}

// ParseFragment parses markup the way it would appear inside a body
// element and returns it as a detached document fragment.
func ParseFragment(r io.Reader) (*dom.DocumentFragment, error) {
	context := &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	}
	nodes, err := html.ParseFragment(r, context)
	if err != nil {
		return nil, err
	}

	doc := dom.NewDocument()
	frag := dom.NewDocumentFragment()
	for _, src := range nodes {
		if err := buildSubtree(doc, frag.AsNode(), src); err != nil {
			return nil, err
		}
	}
	return frag, nil
}

// buildSubtree converts one parsed node and its descendants, attaching the
// result under parent.
func buildSubtree(doc *dom.Document, parent *dom.Node, src *html.Node) error {
	var node *dom.Node

	switch src.Type {
	case html.ElementNode:
		el := doc.CreateElement(src.Data)
		for _, attr := range src.Attr {
			el.SetAttribute(attr.Key, attr.Val)
		}
		node = el.AsNode()
	case html.TextNode:
		node = doc.CreateTextNode(src.Data).AsNode()
	case html.CommentNode:
		node = doc.CreateComment(src.Data).AsNode()
	case html.DoctypeNode:
		publicID, systemID := doctypeIdentifiers(src)
		node = doc.CreateDocumentType(src.Data, publicID, systemID).AsNode()
	default:
		return nil
	}

	if _, err := parent.AppendChildWithError(node); err != nil {
		return err
	}
	for child := src.FirstChild; child != nil; child = child.NextSibling {
		if err := buildSubtree(doc, node, child); err != nil {
			return err
		}
	}
	return nil
}

// doctypeIdentifiers extracts the public and system identifiers the parser
// stores as attributes on a doctype node.
func doctypeIdentifiers(src *html.Node) (publicID, systemID string) {
	for _, attr := range src.Attr {
		switch attr.Key {
		case "public":
			publicID = attr.Val
		case "system":
			systemID = attr.Val
		}
	}
	return publicID, systemID
}
