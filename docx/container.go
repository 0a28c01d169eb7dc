package docx

import (
	"strings"

	"github.com/beevik/etree"
)

// Container is implemented by block elements that own text runs and a
// properties subtree. Paragraph is the only implementation today; table
// cells would be the next.
type Container interface {
	// Element returns the backing element. The element is owned by the
	// document tree, not by the container.
	Element() *etree.Element

	// Properties returns the shared document configuration.
	Properties() *Properties

	// Runs returns the container's text runs in document order.
	Runs() []*TextRun
}

// collectRuns scans the direct children of e once, in order. w:r children
// are taken as they are; hyperlink and tracked-insertion wrappers contribute
// their own direct w:r children at the wrapper's position.
func collectRuns(e *etree.Element, props *Properties) []*TextRun {
	var runs []*TextRun
	for _, child := range e.ChildElements() {
		switch child.FullTag() {
		case tagRun:
			runs = append(runs, NewTextRun(child, props))
		case tagHyperlink, tagInsertion:
			for _, inner := range child.ChildElements() {
				if isTag(inner, tagRun) {
					runs = append(runs, NewTextRun(inner, props))
				}
			}
		}
	}
	return runs
}

// containerText concatenates the text of every run in c.
func containerText(c Container) string {
	var b strings.Builder
	for _, r := range c.Runs() {
		b.WriteString(r.Text())
	}
	return b.String()
}
