// Package htmltag builds small HTML fragments from a tag name, pre-rendered
// content and an ordered set of inline CSS declarations.
package htmltag

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Declaration is a single inline CSS property.
type Declaration struct {
	Property string
	Value    string
}

// Styles is an ordered list of CSS declarations. Order is preserved on output.
type Styles []Declaration

// Set returns s with property set to value. An existing declaration for the
// same property is replaced in place.
func (s Styles) Set(property, value string) Styles {
	for i := range s {
		if s[i].Property == property {
			s[i].Value = value
			return s
		}
	}
	return append(s, Declaration{Property: property, Value: value})
}

// Get returns the value of property, if declared.
func (s Styles) Get(property string) (string, bool) {
	for _, d := range s {
		if d.Property == property {
			return d.Value, true
		}
	}
	return "", false
}

// String serializes the declarations as a style attribute value,
// e.g. "font-size: 12pt; color: #FF0000".
func (s Styles) String() string {
	parts := make([]string, 0, len(s))
	for _, d := range s {
		parts = append(parts, d.Property+": "+d.Value)
	}
	return strings.Join(parts, "; ")
}

// Attr is a convenience constructor for an extra tag attribute.
func Attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

// Build renders <tag style="...">content</tag>. Content is inserted verbatim
// and must already be valid HTML; attribute values are escaped. The style
// attribute is omitted when styles is empty and always precedes attrs.
func Build(tag, content string, styles Styles, attrs ...html.Attribute) string {
	n := Element(tag, styles, attrs...)
	if content != "" {
		n.AppendChild(Raw(content))
	}
	return Render(n)
}

// Element returns an element node for tag carrying styles and attrs.
func Element(tag string, styles Styles, attrs ...html.Attribute) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
	if len(styles) > 0 {
		n.Attr = append(n.Attr, html.Attribute{Key: "style", Val: styles.String()})
	}
	n.Attr = append(n.Attr, attrs...)
	return n
}

// Text returns an escaped text node.
func Text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// Raw returns a node whose data is written without escaping.
func Raw(s string) *html.Node {
	return &html.Node{Type: html.RawNode, Data: s}
}

// Render serializes n. html.Render only fails on a malformed tree, such as
// a void element with children, which is a bug in the caller, so Render
// panics rather than return truncated markup.
func Render(n *html.Node) string {
	var b strings.Builder
	if err := html.Render(&b, n); err != nil {
		panic(fmt.Sprintf("htmltag: rendering <%s>: %v", n.Data, err))
	}
	return b.String()
}

// Page wraps body in a complete UTF-8 HTML document with the given title.
func Page(title, body string) string {
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	root := Element("html", nil)
	head := Element("head", nil)
	head.AppendChild(Element("meta", nil, Attr("charset", "utf-8")))
	titleNode := Element("title", nil)
	titleNode.AppendChild(Text(title))
	head.AppendChild(titleNode)
	root.AppendChild(head)

	bodyNode := Element("body", nil)
	if body != "" {
		bodyNode.AppendChild(Raw(body))
	}
	root.AppendChild(bodyNode)
	doc.AppendChild(root)

	return Render(doc)
}
