package render

import (
	"fmt"
	"html"
	"io"
	"sort"
	"strings"
)

// Element is one node of the materialized render tree. A nil *Element
// means "renders nothing": absence, not an empty box.
type Element struct {
	Tag      string            `json:"tag"`
	Attrs    map[string]string `json:"attrs,omitempty"`
	Style    map[string]string `json:"style,omitempty"`
	Text     string            `json:"text,omitempty"`
	Children []*Element        `json:"children,omitempty"`
}

// NewElement creates an element with the given tag.
func NewElement(tag string) *Element {
	return &Element{Tag: tag}
}

// SetAttr sets an attribute, allocating the map lazily.
func (e *Element) SetAttr(key, value string) *Element {
	if e.Attrs == nil {
		e.Attrs = map[string]string{}
	}
	e.Attrs[key] = value
	return e
}

// SetStyle sets an inline style property, allocating the map lazily.
func (e *Element) SetStyle(key, value string) *Element {
	if e.Style == nil {
		e.Style = map[string]string{}
	}
	e.Style[key] = value
	return e
}

// Append adds children, skipping nils so invisible nodes leave no gap.
func (e *Element) Append(children ...*Element) *Element {
	for _, c := range children {
		if c != nil {
			e.Children = append(e.Children, c)
		}
	}
	return e
}

// Attr returns an attribute value, or "" when unset.
func (e *Element) Attr(key string) string {
	return e.Attrs[key]
}

// Find returns the first element in the tree (preorder, self included)
// matching the predicate, or nil.
func (e *Element) Find(match func(*Element) bool) *Element {
	if e == nil {
		return nil
	}
	if match(e) {
		return e
	}
	for _, c := range e.Children {
		if found := c.Find(match); found != nil {
			return found
		}
	}
	return nil
}

// TextContent concatenates the text of the tree in document order.
func (e *Element) TextContent() string {
	if e == nil {
		return ""
	}
	var b strings.Builder
	e.writeText(&b)
	return b.String()
}

func (e *Element) writeText(b *strings.Builder) {
	b.WriteString(e.Text)
	for _, c := range e.Children {
		c.writeText(b)
	}
}

// voidTags have no closing tag in HTML.
var voidTags = map[string]bool{
	"br": true, "hr": true, "img": true, "input": true, "meta": true, "link": true,
}

// WriteHTML serializes the tree as HTML with two-space indentation.
// Attribute and style keys are emitted in sorted order so output is
// deterministic and suitable for golden comparison.
func (e *Element) WriteHTML(w io.Writer) error {
	if e == nil {
		return nil
	}
	return e.writeHTML(w, 0)
}

// HTML returns the serialized tree as a string.
func (e *Element) HTML() string {
	var b strings.Builder
	_ = e.WriteHTML(&b)
	return b.String()
}

func (e *Element) writeHTML(w io.Writer, depth int) error {
	indent := strings.Repeat("  ", depth)

	var attrs strings.Builder
	for _, k := range sortedKeys(e.Attrs) {
		fmt.Fprintf(&attrs, ` %s="%s"`, k, html.EscapeString(e.Attrs[k]))
	}
	if len(e.Style) > 0 {
		var style strings.Builder
		for i, k := range sortedKeys(e.Style) {
			if i > 0 {
				style.WriteString("; ")
			}
			style.WriteString(k)
			style.WriteString(": ")
			style.WriteString(e.Style[k])
		}
		fmt.Fprintf(&attrs, ` style="%s"`, html.EscapeString(style.String()))
	}

	if voidTags[e.Tag] {
		_, err := fmt.Fprintf(w, "%s<%s%s>\n", indent, e.Tag, attrs.String())
		return err
	}

	if len(e.Children) == 0 {
		_, err := fmt.Fprintf(w, "%s<%s%s>%s</%s>\n", indent, e.Tag, attrs.String(), html.EscapeString(e.Text), e.Tag)
		return err
	}

	if _, err := fmt.Fprintf(w, "%s<%s%s>\n", indent, e.Tag, attrs.String()); err != nil {
		return err
	}
	if e.Text != "" {
		if _, err := fmt.Fprintf(w, "%s  %s\n", indent, html.EscapeString(e.Text)); err != nil {
			return err
		}
	}
	for _, c := range e.Children {
		if err := c.writeHTML(w, depth+1); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%s</%s>\n", indent, e.Tag)
	return err
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
