package docx

import (
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"golang.org/x/net/html"

	"github.com/tsawler/docxhtml/internal/htmltag"
)

// TextRun is one w:r element: a span of uniformly formatted text.
type TextRun struct {
	el    *etree.Element
	props *Properties
}

// NewTextRun wraps an existing w:r element.
func NewTextRun(el *etree.Element, props *Properties) *TextRun {
	if props == nil {
		props = NewProperties(0)
	}
	return &TextRun{el: el, props: props}
}

// newRunWithin appends an empty w:r to parent and wraps it.
func newRunWithin(parent *etree.Element, props *Properties) *TextRun {
	return NewTextRun(parent.CreateElement(tagRun), props)
}

// Element returns the backing w:r element.
func (r *TextRun) Element() *etree.Element {
	return r.el
}

// Text returns the run's text. Tabs and breaks become "\t" and "\n".
func (r *TextRun) Text() string {
	var b strings.Builder
	for _, child := range r.el.ChildElements() {
		switch child.FullTag() {
		case tagText:
			b.WriteString(child.Text())
		case tagTab:
			b.WriteByte('\t')
		case tagBreak, tagCarriage:
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// String implements fmt.Stringer.
func (r *TextRun) String() string {
	return r.Text()
}

// SetText replaces the run's content with s. The run properties (w:rPr)
// are kept; every other text, tab and break element is dropped and a single
// w:t carries the new text.
func (r *TextRun) SetText(s string) {
	var t *etree.Element
	for _, child := range r.el.ChildElements() {
		switch child.FullTag() {
		case tagText:
			if t == nil {
				t = child
				continue
			}
			r.el.RemoveChild(child)
		case tagTab, tagBreak, tagCarriage:
			r.el.RemoveChild(child)
		}
	}
	if t == nil {
		t = r.el.CreateElement(tagText)
	}

	t.SetText(s)
	t.RemoveAttr("xml:space")
	if s != strings.TrimSpace(s) {
		t.CreateAttr("xml:space", "preserve")
	}
}

// Bold reports whether w:rPr/w:b is switched on.
func (r *TextRun) Bold() bool {
	return toggle(r.el, pathRunBold)
}

// Italic reports whether w:rPr/w:i is switched on.
func (r *TextRun) Italic() bool {
	return toggle(r.el, pathRunItalic)
}

// Underlined reports whether the run has an underline other than "none".
func (r *TextRun) Underlined() bool {
	u := r.el.FindElement(pathRunUnderline)
	if u == nil {
		return false
	}
	return u.SelectAttrValue(attrVal, "single") != "none"
}

// FontSize returns the run's own size in points, or the document default
// when the run does not set one.
func (r *TextRun) FontSize() (int, bool, error) {
	size, ok, err := halfPoints(r.el, pathRunSize)
	if err != nil {
		return 0, false, err
	}
	if ok {
		return size, true, nil
	}
	return r.props.FontSize, r.props.FontSize > 0, nil
}

// HTML renders the run. Text is escaped; italics wrap in <em>, bold in
// <strong>, and underline or a size that differs from the document default
// add a <span> with inline styles.
func (r *TextRun) HTML() (string, error) {
	size, ok, err := r.FontSize()
	if err != nil {
		return "", err
	}

	nodes := r.textNodes()
	if r.Italic() {
		nodes = []*html.Node{wrap("em", nil, nodes)}
	}
	if r.Bold() {
		nodes = []*html.Node{wrap("strong", nil, nodes)}
	}

	var styles htmltag.Styles
	if r.Underlined() {
		styles = styles.Set("text-decoration", "underline")
	}
	if ok && size != r.props.FontSize {
		styles = styles.Set("font-size", strconv.Itoa(size)+"pt")
	}
	if len(styles) > 0 {
		nodes = []*html.Node{wrap("span", styles, nodes)}
	}

	var b strings.Builder
	for _, n := range nodes {
		b.WriteString(htmltag.Render(n))
	}
	return b.String(), nil
}

// textNodes converts the run content to HTML nodes, turning breaks into <br>.
func (r *TextRun) textNodes() []*html.Node {
	var nodes []*html.Node
	for _, child := range r.el.ChildElements() {
		switch child.FullTag() {
		case tagText:
			nodes = append(nodes, htmltag.Text(child.Text()))
		case tagTab:
			nodes = append(nodes, htmltag.Text("\t"))
		case tagBreak, tagCarriage:
			nodes = append(nodes, htmltag.Element("br", nil))
		}
	}
	return nodes
}

func wrap(tag string, styles htmltag.Styles, children []*html.Node) *html.Node {
	n := htmltag.Element(tag, styles)
	for _, c := range children {
		n.AppendChild(c)
	}
	return n
}
