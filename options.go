package docxhtml

// ConvertOptions holds configuration for a conversion.
type ConvertOptions struct {
	// fontSize overrides the document default font size (points); 0 keeps
	// the value from styles.xml.
	fontSize int

	// Output shaping
	standalone bool   // wrap the fragment in a complete HTML page
	title      string // <title> of the standalone page
}

// defaultOptions returns the default conversion options.
func defaultOptions() ConvertOptions {
	return ConvertOptions{
		fontSize:   0,
		standalone: false,
		title:      "",
	}
}

// clone creates a copy of ConvertOptions.
func (o ConvertOptions) clone() ConvertOptions {
	return ConvertOptions{
		fontSize:   o.fontSize,
		standalone: o.standalone,
		title:      o.title,
	}
}
