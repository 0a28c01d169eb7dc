// Package docxhtml provides a fluent API for converting DOCX documents to
// HTML.
//
// Basic usage:
//
//	html, err := docxhtml.Open("report.docx").HTML()
//	if err != nil {
//	    // handle error
//	}
//
// With options:
//
//	page, err := docxhtml.Open("report.docx").
//	    FontSize(12).
//	    Standalone("Quarterly report").
//	    HTML()
//
// For paragraph-level access and editing, use the docx package directly.
package docxhtml

import (
	"github.com/tsawler/docxhtml/docx"
)

// Open returns a Converter for the named file. The file is opened lazily by
// the first terminal operation (HTML, Text, Paragraphs), which also closes
// it.
//
// Example:
//
//	html, err := docxhtml.Open("document.docx").HTML()
func Open(filename string) *Converter {
	return &Converter{
		filename: filename,
		options:  defaultOptions(),
		logger:   nopLogger(),
	}
}

// FromDocument creates a Converter for an already-opened document.
// The caller remains responsible for closing it. A FontSize override is
// applied only for the duration of each terminal operation; the document's
// own default is restored afterwards.
//
// Example:
//
//	d, err := docx.Open("document.docx")
//	if err != nil {
//	    // handle error
//	}
//	defer d.Close()
//	html, err := docxhtml.FromDocument(d).HTML()
func FromDocument(d *docx.Document) *Converter {
	return &Converter{
		doc:       d,
		ownsDoc:   false,
		docOpened: true,
		options:   defaultOptions(),
		logger:    nopLogger(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	html := docxhtml.Must(docxhtml.Open("document.docx").HTML())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
