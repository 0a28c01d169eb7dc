package docx

// FallbackFontSize is the paragraph font size, in points, used when neither
// the paragraph nor the document defines one. It matches Word's built-in
// default for the Normal style.
const FallbackFontSize = 11

// Properties is the document-wide configuration shared by every paragraph
// and run of one document. It is owned by the Document; paragraphs keep a
// pointer to it.
type Properties struct {
	// FontSize is the document default font size in points. Zero means the
	// document does not define one.
	FontSize int

	// Lists holds the running ordinals of numbered lists. It is mutated by
	// every list paragraph that is rendered.
	Lists *ListCounters
}

// NewProperties returns configuration with the given default font size and
// an empty counter table.
func NewProperties(fontSize int) *Properties {
	return &Properties{
		FontSize: fontSize,
		Lists:    NewListCounters(),
	}
}

// lists returns the counter table, allocating one if the caller built
// Properties by hand without it.
func (p *Properties) lists() *ListCounters {
	if p.Lists == nil {
		p.Lists = NewListCounters()
	}
	return p.Lists
}
