package docx

import (
	"bytes"
	"encoding/xml"
	"strconv"
	"strings"
)

// stylesXML represents the parts of word/styles.xml the renderer reads.
// Named style definitions are not resolved; only document defaults are.
type stylesXML struct {
	XMLName     xml.Name       `xml:"styles"`
	DocDefaults docDefaultsXML `xml:"docDefaults"`
}

// docDefaultsXML represents document default styles.
type docDefaultsXML struct {
	RPrDefault rPrDefaultXML `xml:"rPrDefault"`
}

// rPrDefaultXML represents default run properties.
type rPrDefaultXML struct {
	RPr runPropsXML `xml:"rPr"`
}

// runPropsXML represents run properties (<w:rPr>).
type runPropsXML struct {
	FontSize sizeXML `xml:"sz"`
}

// sizeXML represents font size (in half-points).
type sizeXML struct {
	Val string `xml:"val,attr"`
}

// parseStylesXML decodes styles.xml, honouring non-UTF-8 encodings.
func parseStylesXML(data []byte) (*stylesXML, error) {
	styles := &stylesXML{}
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.CharsetReader = charsetReader
	if err := dec.Decode(styles); err != nil {
		return nil, err
	}
	return styles, nil
}

// defaultFontSize returns the document default font size in points, or 0
// if styles.xml does not define one.
func (s *stylesXML) defaultFontSize() int {
	if s == nil {
		return 0
	}
	return parseHalfPoints(s.DocDefaults.RPrDefault.RPr.FontSize.Val)
}

// parseHalfPoints parses a size in half-points to whole points.
// Unparseable or empty values yield 0.
func parseHalfPoints(s string) int {
	val, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || val < 0 {
		return 0
	}
	return val / 2
}
