package docx

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedMarkup is matched by every *MarkupError. A property marker
	// was found but does not carry a usable value.
	ErrMalformedMarkup = errors.New("docx: malformed markup")

	// ErrNoBody is returned when word/document.xml has no w:body element.
	ErrNoBody = errors.New("docx: document has no body")
)

// MarkupError describes a property marker whose value attribute is missing
// or unparseable.
type MarkupError struct {
	Element string // qualified tag of the marker, e.g. "w:sz"
	Attr    string // attribute that was expected
	Value   string // offending value; empty when the attribute is missing
}

func (e *MarkupError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("docx: <%s> is missing its %s attribute", e.Element, e.Attr)
	}
	return fmt.Sprintf("docx: <%s> has invalid %s %q", e.Element, e.Attr, e.Value)
}

// Is reports whether target is ErrMalformedMarkup.
func (e *MarkupError) Is(target error) bool {
	return target == ErrMalformedMarkup
}
