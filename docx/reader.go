// Package docx reads the paragraphs of a DOCX (Office Open XML) document and
// renders them to HTML.
//
// Paragraphs are backed by the live XML tree of word/document.xml, so
// formatting queries always reflect the current tree and edits made through
// Paragraph.SetText are written back by Document.Save.
//
// Elements are matched by the conventional "w" prefix, not by namespace
// URI. A part that binds the WordprocessingML namespace to another prefix
// parses, but its paragraphs and properties are not recognised and render
// without formatting. Word and the common generators always use "w".
package docx

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/beevik/etree"
)

const (
	partDocument     = "word/document.xml"
	partStyles       = "word/styles.xml"
	partContentTypes = "[Content_Types].xml"
)

// Document is an opened DOCX file.
type Document struct {
	zipReader *zip.Reader
	closer    io.Closer
	tree      *etree.Document
	styles    *stylesXML
	props     *Properties
}

// Open opens a DOCX file for reading.
func Open(filename string) (*Document, error) {
	zr, err := zip.OpenReader(filename)
	if err != nil {
		return nil, fmt.Errorf("opening ZIP archive: %w", err)
	}

	d, err := newDocument(&zr.Reader)
	if err != nil {
		zr.Close()
		return nil, err
	}
	d.closer = zr
	return d, nil
}

// OpenReader reads a DOCX archive of the given size from r.
func OpenReader(r io.ReaderAt, size int64) (*Document, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("opening ZIP archive: %w", err)
	}
	return newDocument(zr)
}

func newDocument(zr *zip.Reader) (*Document, error) {
	d := &Document{zipReader: zr}

	// Validate required files exist
	if err := d.validate(); err != nil {
		return nil, err
	}

	if err := d.parseDocument(); err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}

	// Styles are optional; without them there is no default font size.
	if err := d.parseStyles(); err != nil {
		d.styles = nil
	}

	d.props = NewProperties(d.styles.defaultFontSize())
	return d, nil
}

// Close releases resources associated with the Document.
func (d *Document) Close() error {
	if d.closer != nil {
		err := d.closer.Close()
		d.closer = nil
		return err
	}
	return nil
}

// validate checks that required DOCX files exist.
func (d *Document) validate() error {
	required := []string{
		partContentTypes,
		partDocument,
	}

	fileMap := make(map[string]bool)
	for _, f := range d.zipReader.File {
		fileMap[f.Name] = true
	}

	for _, name := range required {
		if !fileMap[name] {
			return fmt.Errorf("missing required file: %s", name)
		}
	}

	return nil
}

// getFileContent reads the content of a file from the ZIP archive.
func (d *Document) getFileContent(name string) ([]byte, error) {
	for _, f := range d.zipReader.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, fmt.Errorf("file not found: %s", name)
}

// parseDocument parses word/document.xml into a mutable tree.
func (d *Document) parseDocument() error {
	data, err := d.getFileContent(partDocument)
	if err != nil {
		return err
	}

	tree := etree.NewDocument()
	tree.ReadSettings.CharsetReader = charsetReader
	if err := tree.ReadFromBytes(data); err != nil {
		return fmt.Errorf("unmarshaling document.xml: %w", err)
	}
	if tree.Root() == nil || tree.Root().SelectElement(tagBody) == nil {
		return ErrNoBody
	}

	d.tree = tree
	return nil
}

// parseStyles parses the styles definition file.
func (d *Document) parseStyles() error {
	data, err := d.getFileContent(partStyles)
	if err != nil {
		return err
	}

	styles, err := parseStylesXML(data)
	if err != nil {
		return err
	}
	d.styles = styles
	return nil
}

// Properties returns the configuration shared by every paragraph of the
// document.
func (d *Document) Properties() *Properties {
	return d.props
}

// FontSize returns the document default font size in points, 0 if unset.
func (d *Document) FontSize() int {
	return d.props.FontSize
}

// SetFontSize overrides the document default font size. Paragraphs copy
// the default when they are created, so this affects paragraphs obtained
// afterwards.
func (d *Document) SetFontSize(points int) {
	d.props.FontSize = points
}

// body returns the w:body element.
func (d *Document) body() *etree.Element {
	return d.tree.Root().SelectElement(tagBody)
}

// Paragraphs returns the body-level paragraphs in document order. Each
// call wraps the current tree, so removed paragraphs disappear and new ones
// pick up the current default font size.
func (d *Document) Paragraphs() []*Paragraph {
	var paragraphs []*Paragraph
	for _, el := range d.body().ChildElements() {
		if isTag(el, tagParagraph) {
			paragraphs = append(paragraphs, NewParagraph(el, d.props))
		}
	}
	return paragraphs
}

// HTML renders every paragraph as one pass. List counters are reset first,
// so repeated calls produce the same numbering. The first paragraph that
// fails to render aborts the pass.
func (d *Document) HTML() (string, error) {
	d.props.lists().Reset()

	paragraphs := d.Paragraphs()
	parts := make([]string, 0, len(paragraphs))
	for i, p := range paragraphs {
		h, err := p.HTML()
		if err != nil {
			return "", fmt.Errorf("paragraph %d: %w", i, err)
		}
		parts = append(parts, h)
	}
	return strings.Join(parts, "\n"), nil
}

// Text returns the text of every paragraph, one per line.
func (d *Document) Text() string {
	paragraphs := d.Paragraphs()
	lines := make([]string, 0, len(paragraphs))
	for _, p := range paragraphs {
		lines = append(lines, p.Text())
	}
	return strings.Join(lines, "\n")
}

// Write writes the archive to w. Every part is copied unchanged except
// word/document.xml, which is serialized from the current tree.
func (d *Document) Write(w io.Writer) error {
	data, err := d.tree.WriteToBytes()
	if err != nil {
		return fmt.Errorf("serializing document.xml: %w", err)
	}

	zw := zip.NewWriter(w)
	for _, f := range d.zipReader.File {
		if f.Name != partDocument {
			if err := zw.Copy(f); err != nil {
				return fmt.Errorf("copying %s: %w", f.Name, err)
			}
			continue
		}

		fw, err := zw.CreateHeader(&zip.FileHeader{
			Name:     partDocument,
			Method:   zip.Deflate,
			Modified: f.Modified,
		})
		if err != nil {
			return fmt.Errorf("writing %s: %w", partDocument, err)
		}
		if _, err := fw.Write(data); err != nil {
			return fmt.Errorf("writing %s: %w", partDocument, err)
		}
	}
	return zw.Close()
}

// Save writes the archive to filename. Saving over the file the document
// was opened from is not supported while it is open.
func (d *Document) Save(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating %s: %w", filename, err)
	}
	if err := d.Write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
