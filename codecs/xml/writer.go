package xml

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const (
	langle   = '<'
	rangle   = '>'
	quote    = '"'
	slash    = '/'
	question = '?'
	bang     = '!'
	equal    = '='
	dash     = '-'
)

type Writer struct {
	writer *bufio.Writer

	Compact  bool
	Indent   string
	NoProlog bool
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{
		writer: bufio.NewWriter(w),
		Indent: "  ",
	}
}

func (w *Writer) Write(doc *Document) error {
	if w.Compact {
		w.Indent = ""
	}
	if err := w.writeProlog(); err != nil {
		return err
	}
	if err := w.writeNode(doc.root, 0); err != nil {
		return err
	}
	w.writeNL()
	return w.writer.Flush()
}

func (w *Writer) writeNode(node Node, depth int) error {
	switch node := node.(type) {
	case *Element:
		return w.writeElement(node, depth)
	case *Text:
		return w.writeText(node)
	case *Comment:
		return w.writeComment(node, depth)
	default:
		return fmt.Errorf("node: unknown type %T", node)
	}
}

func (w *Writer) writeElement(node *Element, depth int) error {
	w.writeNL()
	prefix := strings.Repeat(w.Indent, depth)
	w.writer.WriteString(prefix)
	w.writer.WriteRune(langle)
	w.writer.WriteString(node.Name)
	w.writeAttributes(node.Attrs)
	if node.Leaf() {
		w.writer.WriteRune(slash)
		w.writer.WriteRune(rangle)
		return nil
	}
	w.writer.WriteRune(rangle)
	textOnly := true
	for _, n := range node.Nodes {
		if _, ok := n.(*Text); !ok {
			textOnly = false
		}
		if err := w.writeNode(n, depth+1); err != nil {
			return err
		}
	}
	if !textOnly {
		w.writeNL()
		w.writer.WriteString(prefix)
	}
	w.writer.WriteRune(langle)
	w.writer.WriteRune(slash)
	w.writer.WriteString(node.Name)
	w.writer.WriteRune(rangle)
	return nil
}

func (w *Writer) writeText(node *Text) error {
	_, err := w.writer.WriteString(escapeText(node.Content))
	return err
}

func (w *Writer) writeComment(node *Comment, depth int) error {
	w.writeNL()
	w.writer.WriteString(strings.Repeat(w.Indent, depth))
	w.writer.WriteRune(langle)
	w.writer.WriteRune(bang)
	w.writer.WriteRune(dash)
	w.writer.WriteRune(dash)
	w.writer.WriteString(node.Content)
	w.writer.WriteRune(dash)
	w.writer.WriteRune(dash)
	w.writer.WriteRune(rangle)
	return nil
}

func (w *Writer) writeProlog() error {
	if w.NoProlog {
		return nil
	}
	w.writer.WriteRune(langle)
	w.writer.WriteRune(question)
	w.writer.WriteString("xml")
	w.writeAttributes([]Attribute{
		{Name: "version", Value: SupportedVersion},
		{Name: "encoding", Value: "UTF-8"},
	})
	w.writer.WriteRune(question)
	w.writer.WriteRune(rangle)
	return nil
}

func (w *Writer) writeAttributes(attrs []Attribute) {
	for _, a := range attrs {
		w.writer.WriteRune(' ')
		w.writer.WriteString(a.Name)
		w.writer.WriteRune(equal)
		w.writer.WriteRune(quote)
		w.writer.WriteString(escapeAttr(a.Value))
		w.writer.WriteRune(quote)
	}
}

func (w *Writer) writeNL() {
	if w.Compact {
		return
	}
	w.writer.WriteRune('\n')
}

var (
	textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	attrEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
)

func escapeText(s string) string {
	return textEscaper.Replace(s)
}

func escapeAttr(s string) string {
	return attrEscaper.Replace(s)
}
