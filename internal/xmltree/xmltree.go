// Package xmltree parses an XML document into a generic element tree
// and offers tolerant, namespace-blind lookups by local element name.
//
// Feeds in the wild declare the Atom namespace inconsistently (default
// namespace, prefixed, or not at all), so matching is done on local
// names only, the way lenient feed readers do.
package xmltree

import (
	"encoding/xml"
	"io"
	"strings"
)

// Attr is a single attribute, namespace prefix stripped.
type Attr struct {
	Name  string
	Value string
}

// Element is one node of the parsed document.
type Element struct {
	Name     string // local name, without namespace or prefix
	Attrs    []Attr
	Children []*Element

	// nodes interleaves child elements and text chunks in document
	// order, so mixed content reads back in the order it was written
	nodes []any // *Element or string
}

// Parse reads an XML document and returns its root element.
// Character data, CDATA and attributes are kept; processing
// instructions, comments and directives are discarded.
func Parse(r io.Reader) (*Element, error) {
	dec := xml.NewDecoder(r)

	var root *Element
	var stack []*Element

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			e := &Element{Name: t.Name.Local}
			for _, a := range t.Attr {
				if a.Name.Space == "xmlns" || a.Name.Local == "xmlns" {
					continue
				}
				e.Attrs = append(e.Attrs, Attr{Name: a.Name.Local, Value: a.Value})
			}
			if len(stack) == 0 {
				if root != nil {
					// the decoder reports trailing content itself,
					// but guard against a second root anyway
					continue
				}
				root = e
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, e)
				parent.nodes = append(parent.nodes, e)
			}
			stack = append(stack, e)
		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		case xml.CharData:
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.nodes = append(parent.nodes, string(t))
			}
		}
	}
	if root == nil {
		return nil, io.ErrUnexpectedEOF
	}
	return root, nil
}

// Attr returns the value of the named attribute, matched on its local
// name, and whether it is present.
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Text returns all character data in the element's subtree,
// concatenated in document order.
func (e *Element) Text() string {
	var sb strings.Builder
	e.writeText(&sb)
	return sb.String()
}

func (e *Element) writeText(sb *strings.Builder) {
	for _, n := range e.nodes {
		switch n := n.(type) {
		case string:
			sb.WriteString(n)
		case *Element:
			n.writeText(sb)
		}
	}
}

// First returns the first descendant with the given local name, in
// document order, or nil. The receiver itself is never considered, so
// a feed missing its own title will pick up the first entry title,
// matching the leniency of the readers this package imitates.
func (e *Element) First(name string) *Element {
	return e.Find(func(d *Element) bool { return d.Name == name })
}

// All returns every descendant with the given local name, in document
// order.
func (e *Element) All(name string) []*Element {
	var out []*Element
	e.walk(func(d *Element) bool {
		if d.Name == name {
			out = append(out, d)
		}
		return false
	})
	return out
}

// Find returns the first descendant, in document order, for which
// match reports true, or nil.
func (e *Element) Find(match func(*Element) bool) *Element {
	var found *Element
	e.walk(func(d *Element) bool {
		if match(d) {
			found = d
			return true
		}
		return false
	})
	return found
}

// walk visits descendants depth-first in document order until visit
// returns true.
func (e *Element) walk(visit func(*Element) bool) bool {
	for _, c := range e.Children {
		if visit(c) {
			return true
		}
		if c.walk(visit) {
			return true
		}
	}
	return false
}
