package docx

import (
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

// Property resolution. Each query scans the subtree afresh; nothing is
// cached, so results always reflect the current state of the element.
//
// A marker that is absent is reported with ok == false and a nil error.
// A marker that is present without a usable value is a *MarkupError.

// markerValue returns the val attribute of the first element matching path
// beneath e.
func markerValue(e *etree.Element, path string) (string, bool, error) {
	marker := e.FindElement(path)
	if marker == nil {
		return "", false, nil
	}
	attr := marker.SelectAttr(attrVal)
	if attr == nil {
		return "", false, &MarkupError{Element: marker.FullTag(), Attr: attrVal}
	}
	return attr.Value, true, nil
}

// halfPoints resolves a w:sz style marker, stored in half-points, to whole
// points using integer division.
func halfPoints(e *etree.Element, path string) (int, bool, error) {
	raw, ok, err := markerValue(e, path)
	if err != nil || !ok {
		return 0, false, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, false, &MarkupError{Element: "w:sz", Attr: attrVal, Value: raw}
	}
	return n / 2, true, nil
}

// justification returns the first w:jc value anywhere beneath the paragraph.
func justification(p *etree.Element) (string, bool, error) {
	return markerValue(p, pathJustification)
}

// paragraphFontSize returns the size set in the paragraph properties, or def
// when there is none. def <= 0 means no default, and ok is false.
func paragraphFontSize(p *etree.Element, def int) (int, bool, error) {
	size, ok, err := halfPoints(p, pathParagraphSize)
	if err != nil {
		return 0, false, err
	}
	if ok {
		return size, true, nil
	}
	return def, def > 0, nil
}

// numberingID returns the list id from w:pPr/w:numPr/w:numId.
func numberingID(p *etree.Element) (string, bool, error) {
	return markerValue(p, pathNumberingID)
}

// paragraphColor returns the hex color from the paragraph properties,
// without a leading '#'.
func paragraphColor(p *etree.Element) (string, bool, error) {
	return markerValue(p, pathColor)
}

// toggle reports whether a boolean run property such as w:b is switched on.
// The element alone means on; val="false", "0" or "off" switches it off.
func toggle(r *etree.Element, path string) bool {
	marker := r.FindElement(path)
	if marker == nil {
		return false
	}
	switch strings.ToLower(marker.SelectAttrValue(attrVal, "true")) {
	case "false", "0", "off":
		return false
	}
	return true
}
