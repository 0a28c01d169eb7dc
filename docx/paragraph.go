package docx

import (
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/tsawler/docxhtml/internal/htmltag"
)

// listStyles is applied to the <ol> wrapping each numbered paragraph.
var listStyles = htmltag.Styles{{Property: "margin", Value: "2px"}}

// Paragraph is a w:p element together with the document configuration it
// renders against. Every query re-reads the element; nothing is cached.
type Paragraph struct {
	el              *etree.Element
	props           *Properties
	defaultFontSize int
}

// NewParagraph wraps a w:p element. The document default font size is
// copied from props now; later changes to props.FontSize do not affect it.
// The counter table in props stays shared.
func NewParagraph(el *etree.Element, props *Properties) *Paragraph {
	if props == nil {
		props = NewProperties(0)
	}
	return &Paragraph{
		el:              el,
		props:           props,
		defaultFontSize: props.FontSize,
	}
}

// Element returns the backing w:p element.
func (p *Paragraph) Element() *etree.Element {
	return p.el
}

// Properties returns the shared document configuration.
func (p *Paragraph) Properties() *Properties {
	return p.props
}

// Runs returns the paragraph's runs in reading order, including runs
// wrapped in w:hyperlink and w:ins.
func (p *Paragraph) Runs() []*TextRun {
	return collectRuns(p.el, p.props)
}

// Text returns the concatenated text of all runs.
func (p *Paragraph) Text() string {
	return containerText(p)
}

// String implements fmt.Stringer.
func (p *Paragraph) String() string {
	return p.Text()
}

// SetText replaces the paragraph's text.
//
// With exactly one run, that run keeps its formatting and only its text
// changes. With no runs, a new run is appended. With two or more runs,
// every run is removed from the tree and replaced by one new, unformatted
// run: per-run formatting is collapsed.
func (p *Paragraph) SetText(content string) {
	runs := p.Runs()
	switch len(runs) {
	case 1:
		runs[0].SetText(content)
		return
	case 0:
	default:
		for _, r := range runs {
			if parent := r.el.Parent(); parent != nil {
				parent.RemoveChild(r.el)
			}
		}
	}
	newRunWithin(p.el, p.props).SetText(content)
}

// Remove detaches the paragraph from its parent element.
func (p *Paragraph) Remove() {
	if parent := p.el.Parent(); parent != nil {
		parent.RemoveChild(p.el)
	}
}

// Alignment returns the justification value (left, center, right, both,
// ...). ok is false when the paragraph has none, which means left.
func (p *Paragraph) Alignment() (string, bool, error) {
	return justification(p.el)
}

// AlignedLeft reports whether the paragraph is left aligned, either
// explicitly or by default.
func (p *Paragraph) AlignedLeft() (bool, error) {
	a, ok, err := p.Alignment()
	if err != nil {
		return false, err
	}
	return !ok || a == "left", nil
}

// AlignedRight reports whether the paragraph is right aligned.
func (p *Paragraph) AlignedRight() (bool, error) {
	a, _, err := p.Alignment()
	return a == "right", err
}

// AlignedCenter reports whether the paragraph is centered.
func (p *Paragraph) AlignedCenter() (bool, error) {
	a, _, err := p.Alignment()
	return a == "center", err
}

// FontSize returns the paragraph font size in points: the w:pPr size if
// set, otherwise the document default captured at construction. ok is
// false when neither exists.
func (p *Paragraph) FontSize() (int, bool, error) {
	return paragraphFontSize(p.el, p.defaultFontSize)
}

// ListID returns the numbering id the paragraph belongs to, if any.
func (p *Paragraph) ListID() (string, bool, error) {
	return numberingID(p.el)
}

// Color returns the paragraph text color as a hex string without '#'.
func (p *Paragraph) Color() (string, bool, error) {
	return paragraphColor(p.el)
}

// HTML renders the paragraph.
//
// A paragraph that belongs to a list renders as a one-item ordered list,
// <ol style="margin: 2px" start="N"><li style="...">...</li></ol>, where N
// comes from the shared counter table; rendering it advances that counter.
// Consecutive items of one list are not merged into a single <ol>, the
// start attribute keeps the numbering continuous. Any other paragraph
// renders as <p style="...">...</p>.
//
// Formatting is fully resolved before the counter is touched, so a
// malformed paragraph never consumes an ordinal.
func (p *Paragraph) HTML() (string, error) {
	var body strings.Builder
	for _, r := range p.Runs() {
		h, err := r.HTML()
		if err != nil {
			return "", err
		}
		body.WriteString(h)
	}

	styles, err := p.styles()
	if err != nil {
		return "", err
	}

	listID, isList, err := p.ListID()
	if err != nil {
		return "", err
	}
	if !isList {
		return htmltag.Build("p", body.String(), styles), nil
	}

	start := p.props.lists().Next(listID)
	item := htmltag.Build("li", body.String(), styles)
	return htmltag.Build("ol", item, listStyles, htmltag.Attr("start", strconv.Itoa(start))), nil
}

// styles builds the inline CSS for the paragraph: font-size always,
// text-align and color only when the paragraph sets them.
func (p *Paragraph) styles() (htmltag.Styles, error) {
	size, ok, err := p.FontSize()
	if err != nil {
		return nil, err
	}
	if !ok {
		size = FallbackFontSize
	}
	styles := htmltag.Styles{{Property: "font-size", Value: strconv.Itoa(size) + "pt"}}

	align, ok, err := p.Alignment()
	if err != nil {
		return nil, err
	}
	if ok {
		styles = styles.Set("text-align", align)
	}

	color, ok, err := p.Color()
	if err != nil {
		return nil, err
	}
	if ok {
		styles = styles.Set("color", "#"+color)
	}
	return styles, nil
}
