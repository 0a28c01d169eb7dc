package docx

import "github.com/beevik/etree"

// XML namespace of the main WordprocessingML part.
const nsW = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

// Element tags, qualified with the conventional "w" prefix. Matching is by
// prefix, so another prefix bound to nsW is not recognised.
const (
	tagBody      = "w:body"
	tagParagraph = "w:p"
	tagRun       = "w:r"
	tagText      = "w:t"
	tagTab       = "w:tab"
	tagBreak     = "w:br"
	tagCarriage  = "w:cr"
	tagHyperlink = "w:hyperlink"
	tagInsertion = "w:ins"
)

// Property paths, relative to the paragraph or run that owns them.
//
// Justification is matched anywhere beneath the paragraph, so a w:jc inside
// a run or a nested structure also counts. Size, numbering and color are
// only read from the paragraph properties.
const (
	pathJustification = ".//w:jc"
	pathParagraphSize = "w:pPr//w:sz"
	pathNumberingID   = "w:pPr//w:numPr//w:numId"
	pathColor         = "w:pPr//w:color"

	pathRunSize      = "w:rPr//w:sz"
	pathRunBold      = "w:rPr/w:b"
	pathRunItalic    = "w:rPr/w:i"
	pathRunUnderline = "w:rPr/w:u"
)

// attrVal is the attribute carrying a property marker's value.
const attrVal = "val"

// isTag reports whether e is the element named by a prefixed tag such as "w:r".
func isTag(e *etree.Element, tag string) bool {
	return e != nil && e.FullTag() == tag
}
