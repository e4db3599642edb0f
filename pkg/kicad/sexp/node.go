// Package sexp provides the S-expression document tree used to emit
// KiCad files. A document is built as ordered nodes and rendered in a
// separate pass, so what gets emitted is decoupled from how it is
// formatted and the tree itself can be inspected in tests.
package sexp

import "strconv"

// Node is one element of an S-expression document: an Atom, a quoted
// Str, or a *List.
type Node interface {
	isNode()
}

// Atom is a bare symbol or number, rendered without quotes.
type Atom string

func (Atom) isNode() {}

// Str is a string value, rendered wrapped in double quotes. Content is
// emitted verbatim; callers own the validity of what they put in.
type Str string

func (Str) isNode() {}

// List is a tagged expression. Items share the opening line with the
// tag; Children each render on their own indented line, and their
// presence decides whether the list closes inline or on a line of its
// own.
type List struct {
	Tag      string
	Items    []Node
	Children []*List
}

func (*List) isNode() {}

// NewList builds a list with the given tag and opening-line items.
func NewList(tag string, items ...Node) *List {
	return &List{Tag: tag, Items: items}
}

// Append adds child lists, each rendered on its own line.
func (l *List) Append(children ...*List) *List {
	l.Children = append(l.Children, children...)
	return l
}

// Float renders a float with the canonical rule shared by the whole
// document: shortest decimal form, no exponent, no trailing zeros, no
// locale dependence. "1.0" comes out as "1", "-0.95" stays "-0.95".
func Float(v float64) Atom {
	return Atom(strconv.FormatFloat(v, 'f', -1, 64))
}

// Int renders an integer atom.
func Int(v int) Atom {
	return Atom(strconv.Itoa(v))
}
