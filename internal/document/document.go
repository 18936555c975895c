// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package document opens a PDF and exposes its pages as raw text spans
// with font metadata. It is a thin layer over ledongthuc/pdf; all layout
// interpretation happens downstream.
package document

import (
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Span is a positioned run of text with its font metadata. Coordinates
// use the PDF convention: origin at the bottom-left of the page, Y
// increasing upward.
type Span struct {
	Text     string
	Font     string
	FontSize float64
	X        float64
	Y        float64
	Width    float64
}

// Right returns the X coordinate of the span's right edge.
func (s Span) Right() float64 {
	return s.X + s.Width
}

// File is an open PDF document.
type File struct {
	path   string
	file   *os.File
	reader *pdf.Reader
}

// Open opens the PDF at path. The returned File must be closed.
func Open(path string) (*File, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening PDF %s: %w", path, err)
	}
	return &File{path: path, file: f, reader: r}, nil
}

// Close releases the underlying file handle.
func (d *File) Close() error {
	return d.file.Close()
}

// Path returns the source path the document was opened from.
func (d *File) Path() string {
	return d.path
}

// PageCount returns the number of pages in the document.
func (d *File) PageCount() int {
	return d.reader.NumPage()
}

// Spans returns the text spans of page n (1-based) in extraction order.
// Empty and whitespace-only spans are dropped. A missing or null page
// yields no spans rather than an error; malformed pages do occur in the
// wild and the pipeline treats them as blank.
func (d *File) Spans(n int) []Span {
	if n < 1 || n > d.reader.NumPage() {
		return nil
	}
	page := d.reader.Page(n)
	if page.V.IsNull() {
		return nil
	}

	content := page.Content()
	spans := make([]Span, 0, len(content.Text))
	for _, t := range content.Text {
		if strings.TrimSpace(t.S) == "" {
			continue
		}
		spans = append(spans, Span{
			Text:     t.S,
			Font:     t.Font,
			FontSize: t.FontSize,
			X:        t.X,
			Y:        t.Y,
			Width:    t.W,
		})
	}
	return spans
}
