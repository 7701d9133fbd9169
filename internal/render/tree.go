// Package render turns a document snapshot into a visual tree under one of
// three interchangeable template variants, and serializes that tree to HTML
// for preview and PDF capture.
package render

import (
	"html"
	"sort"
	"strings"
)

// Node is one element of the rendered visual tree. Children keep the order
// they were appended in; that order is the display order.
type Node struct {
	Tag   string
	Class string
	Attrs map[string]string
	Text  string
	Kids  []*Node
}

func el(tag, class string, kids ...*Node) *Node {
	return &Node{Tag: tag, Class: class, Kids: kids}
}

func text(tag, class, s string) *Node {
	return &Node{Tag: tag, Class: class, Text: s}
}

// WithAttr sets an attribute and returns the node for chaining.
func (n *Node) WithAttr(key, value string) *Node {
	if n.Attrs == nil {
		n.Attrs = map[string]string{}
	}
	n.Attrs[key] = value
	return n
}

// Append adds children and returns the node.
func (n *Node) Append(kids ...*Node) *Node {
	n.Kids = append(n.Kids, kids...)
	return n
}

// Equal reports structural equality: same tags, classes, attributes, text
// and child order throughout.
func (n *Node) Equal(o *Node) bool {
	if n == nil || o == nil {
		return n == o
	}
	if n.Tag != o.Tag || n.Class != o.Class || n.Text != o.Text {
		return false
	}
	if len(n.Attrs) != len(o.Attrs) {
		return false
	}
	for k, v := range n.Attrs {
		if ov, ok := o.Attrs[k]; !ok || ov != v {
			return false
		}
	}
	if len(n.Kids) != len(o.Kids) {
		return false
	}
	for i := range n.Kids {
		if !n.Kids[i].Equal(o.Kids[i]) {
			return false
		}
	}
	return true
}

// HTML serializes the tree. Attributes are emitted in sorted key order so
// identical trees always produce identical markup.
func (n *Node) HTML() string {
	var b strings.Builder
	n.writeTo(&b)
	return b.String()
}

func (n *Node) writeTo(b *strings.Builder) {
	if n == nil {
		return
	}
	b.WriteByte('<')
	b.WriteString(n.Tag)
	if n.Class != "" {
		b.WriteString(` class="`)
		b.WriteString(html.EscapeString(n.Class))
		b.WriteByte('"')
	}
	if len(n.Attrs) > 0 {
		keys := make([]string, 0, len(n.Attrs))
		for k := range n.Attrs {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			b.WriteByte(' ')
			b.WriteString(k)
			b.WriteString(`="`)
			b.WriteString(html.EscapeString(n.Attrs[k]))
			b.WriteByte('"')
		}
	}
	b.WriteByte('>')
	if n.Text != "" {
		b.WriteString(html.EscapeString(n.Text))
	}
	for _, kid := range n.Kids {
		kid.writeTo(b)
	}
	b.WriteString("</")
	b.WriteString(n.Tag)
	b.WriteByte('>')
}
