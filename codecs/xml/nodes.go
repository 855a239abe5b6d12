// Package xml builds and writes small XML documents. It covers only
// what the script exporters need: elements, attributes, text, comments
// and the document prolog.
package xml

import (
	"bytes"
	"io"
	"slices"
)

const SupportedVersion = "1.0"

type Node interface {
	Tag() string
	Leaf() bool
}

type Attribute struct {
	Name  string
	Value string
}

func NewAttribute(name, value string) Attribute {
	return Attribute{
		Name:  name,
		Value: value,
	}
}

type Element struct {
	Name  string
	Attrs []Attribute
	Nodes []Node
}

func NewElement(name string) *Element {
	return &Element{
		Name: name,
	}
}

func (e *Element) Tag() string {
	return e.Name
}

func (e *Element) Leaf() bool {
	return len(e.Nodes) == 0
}

func (e *Element) Append(node Node) {
	e.Nodes = append(e.Nodes, node)
}

func (e *Element) Len() int {
	return len(e.Nodes)
}

func (e *Element) SetAttribute(attr Attribute) {
	ix := slices.IndexFunc(e.Attrs, func(a Attribute) bool {
		return a.Name == attr.Name
	})
	if ix < 0 {
		e.Attrs = append(e.Attrs, attr)
	} else {
		e.Attrs[ix] = attr
	}
}

type Text struct {
	Content string
}

func NewText(text string) *Text {
	return &Text{
		Content: text,
	}
}

func (t *Text) Tag() string {
	return "text"
}

func (t *Text) Leaf() bool {
	return true
}

type Comment struct {
	Content string
}

func NewComment(comment string) *Comment {
	return &Comment{
		Content: comment,
	}
}

func (c *Comment) Tag() string {
	return "comment"
}

func (c *Comment) Leaf() bool {
	return true
}

type Document struct {
	root Node
}

func NewDocument(root Node) *Document {
	return &Document{
		root: root,
	}
}

func (d *Document) Root() Node {
	return d.root
}

func (d *Document) Write(w io.Writer) error {
	return NewWriter(w).Write(d)
}

func (d *Document) WriteString() (string, error) {
	var (
		buf bytes.Buffer
		err = d.Write(&buf)
	)
	return buf.String(), err
}
