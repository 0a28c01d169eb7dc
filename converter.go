package docxhtml

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/tsawler/docxhtml/docx"
	"github.com/tsawler/docxhtml/format"
	"github.com/tsawler/docxhtml/internal/htmltag"
)

// ErrUnsupportedFormat is returned when the input is not a DOCX document.
var ErrUnsupportedFormat = errors.New("docxhtml: unsupported file format")

// Converter provides a fluent interface for converting a DOCX document.
// Each configuration method returns a new Converter instance, so a
// configured Converter can be reused as a template.
type Converter struct {
	// Source
	filename string

	// Document
	doc       *docx.Document
	ownsDoc   bool // true if we opened the document and should close it
	docOpened bool

	// Configuration
	options ConvertOptions
	logger  zerolog.Logger

	// Font size of a caller-owned document before FontSize was applied
	savedFontSize   int
	restoreFontSize bool

	// Accumulated error (fail-fast)
	err error
}

func nopLogger() zerolog.Logger {
	return zerolog.Nop()
}

// clone creates a shallow copy of the Converter with a copy of options.
func (c *Converter) clone() *Converter {
	return &Converter{
		filename:  c.filename,
		doc:       c.doc,
		ownsDoc:   c.ownsDoc,
		docOpened: c.docOpened,
		options:   c.options.clone(),
		logger:    c.logger,
		err:       c.err,
	}
}

// ensureDocument opens the document if not already open. The file must be
// a DOCX both by name (or have no telling extension) and by content.
func (c *Converter) ensureDocument() error {
	if c.docOpened {
		return nil
	}
	if c.filename == "" {
		return fmt.Errorf("no filename specified")
	}

	if f := format.Detect(c.filename); f != format.DOCX && f != format.Unknown {
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, f)
	}
	f, err := detectFile(c.filename)
	if err != nil {
		return err
	}
	if f != format.DOCX {
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, f)
	}

	d, err := docx.Open(c.filename)
	if err != nil {
		return fmt.Errorf("failed to open DOCX: %w", err)
	}
	c.doc = d
	c.ownsDoc = true
	c.docOpened = true

	c.logger.Debug().
		Str("file", c.filename).
		Int("default_font_size", d.FontSize()).
		Msg("opened document")
	return nil
}

// detectFile sniffs the content of filename.
func detectFile(filename string) (format.Format, error) {
	f, err := os.Open(filename)
	if err != nil {
		return format.Unknown, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return format.Unknown, fmt.Errorf("reading file info: %w", err)
	}
	return format.DetectFromReader(f, info.Size())
}

// Close releases resources associated with the Converter.
// It is safe to call Close multiple times.
func (c *Converter) Close() error {
	if c.ownsDoc && c.doc != nil {
		err := c.doc.Close()
		c.doc = nil
		c.ownsDoc = false
		c.docOpened = false
		return err
	}
	return nil
}

// ============================================================================
// Configuration Methods (return new Converter instance)
// ============================================================================

// FontSize overrides the document default font size, in points.
// Paragraphs that set their own size are unaffected.
//
// Example:
//
//	html, err := docxhtml.Open("doc.docx").FontSize(12).HTML()
func (c *Converter) FontSize(points int) *Converter {
	newConv := c.clone()
	if points <= 0 {
		newConv.err = fmt.Errorf("invalid font size %d", points)
		return newConv
	}
	newConv.options.fontSize = points
	return newConv
}

// Standalone wraps the output of HTML in a complete HTML page with the
// given title.
//
// Example:
//
//	page, err := docxhtml.Open("doc.docx").Standalone("Minutes").HTML()
func (c *Converter) Standalone(title string) *Converter {
	newConv := c.clone()
	newConv.options.standalone = true
	newConv.options.title = title
	return newConv
}

// Logger sets the logger used for diagnostics. The default discards
// everything.
func (c *Converter) Logger(logger zerolog.Logger) *Converter {
	newConv := c.clone()
	newConv.logger = logger
	return newConv
}

// ============================================================================
// Terminal Methods
// ============================================================================

// prepare opens the document and applies configuration to it.
func (c *Converter) prepare() error {
	if c.err != nil {
		return c.err
	}
	if err := c.ensureDocument(); err != nil {
		return err
	}
	if c.options.fontSize > 0 {
		if !c.ownsDoc {
			c.savedFontSize = c.doc.FontSize()
			c.restoreFontSize = true
		}
		c.doc.SetFontSize(c.options.fontSize)
	}
	return nil
}

// finish undoes the font size override on a caller-owned document and
// closes a document the Converter opened itself.
func (c *Converter) finish() {
	if c.restoreFontSize && c.doc != nil {
		c.doc.SetFontSize(c.savedFontSize)
		c.restoreFontSize = false
	}
	c.Close()
}

// HTML renders every paragraph of the document. With Standalone the
// result is a complete page, otherwise a fragment with one block element
// per line.
func (c *Converter) HTML() (string, error) {
	if err := c.prepare(); err != nil {
		return "", err
	}
	defer c.finish()

	body, err := c.doc.HTML()
	if err != nil {
		return "", err
	}

	counters := c.doc.Properties().Lists
	c.logger.Debug().
		Int("paragraphs", len(c.doc.Paragraphs())).
		Int("lists", counters.Len()).
		Msg("rendered document")

	if c.options.standalone {
		return htmltag.Page(c.options.title, body), nil
	}
	return body, nil
}

// Text returns the document text, one paragraph per line.
func (c *Converter) Text() (string, error) {
	if err := c.prepare(); err != nil {
		return "", err
	}
	defer c.finish()

	return c.doc.Text(), nil
}

// Paragraphs returns the document's paragraphs. They stay usable after the
// underlying file is closed because they are backed by the parsed tree.
// On a FromDocument converter the document default size is restored
// afterwards; run-level size comparisons then use the restored value.
func (c *Converter) Paragraphs() ([]*docx.Paragraph, error) {
	if err := c.prepare(); err != nil {
		return nil, err
	}
	defer c.finish()

	return c.doc.Paragraphs(), nil
}
