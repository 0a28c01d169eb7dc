// Package format identifies word-processing files before they are opened.
package format

import (
	"archive/zip"
	"bytes"
	"io"
	"path/filepath"
	"strings"
)

// Format represents a word-processing file format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// DOCX indicates an Office Open XML word-processing document.
	DOCX
	// DOC indicates a legacy binary Word document (OLE compound file).
	DOC
	// ODT indicates an OpenDocument Text document.
	ODT
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case DOCX:
		return "DOCX"
	case DOC:
		return "DOC"
	case ODT:
		return "ODT"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case DOCX:
		return ".docx"
	case DOC:
		return ".doc"
	case ODT:
		return ".odt"
	default:
		return ""
	}
}

// Detect determines file format from filename extension. Macro-enabled
// documents and templates share the DOCX package layout.
func Detect(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".docx", ".docm", ".dotx", ".dotm":
		return DOCX
	case ".doc":
		return DOC
	case ".odt":
		return ODT
	default:
		return Unknown
	}
}

var (
	zipMagic = []byte{0x50, 0x4B, 0x03, 0x04}
	oleMagic = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}
)

// DetectFromMagic checks file magic bytes to determine format.
// ZIP archives return Unknown; use DetectFromReader to look inside them.
func DetectFromMagic(data []byte) Format {
	if bytes.HasPrefix(data, oleMagic) {
		return DOC
	}
	return Unknown
}

// DetectFromReader inspects the content to determine format. It
// distinguishes DOCX from other ZIP-based formats by the parts it contains.
func DetectFromReader(r io.ReaderAt, size int64) (Format, error) {
	magic := make([]byte, len(oleMagic))
	n, err := r.ReadAt(magic, 0)
	if err != nil && err != io.EOF {
		return Unknown, err
	}
	magic = magic[:n]

	if bytes.HasPrefix(magic, zipMagic) {
		return detectZIPFormat(r, size)
	}
	return DetectFromMagic(magic), nil
}

// detectZIPFormat inspects a ZIP archive to tell DOCX from ODT.
func detectZIPFormat(r io.ReaderAt, size int64) (Format, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return Unknown, err
	}

	for _, f := range zr.File {
		switch f.Name {
		case "mimetype":
			if isODTMimetype(f) {
				return ODT, nil
			}
		case "word/document.xml":
			return DOCX, nil
		}
	}
	return Unknown, nil
}

func isODTMimetype(f *zip.File) bool {
	rc, err := f.Open()
	if err != nil {
		return false
	}
	defer rc.Close()

	data := make([]byte, 256)
	n, _ := io.ReadFull(rc, data)
	return strings.Contains(string(data[:n]), "application/vnd.oasis.opendocument.text")
}
