// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the shared data model for pdfstruct: the structured
// document produced by a parse and the configuration blocks consumed by
// the pipeline stages.
package types

import "time"

// ContentType categorizes a content record within a page.
type ContentType string

const (
	// ContentParagraph is a text block. Heading blocks are also emitted as
	// paragraph records; their classification manifests through the
	// section and sub_section context fields.
	ContentParagraph ContentType = "paragraph"

	// ContentTable is a detected table carried as a row/column grid.
	ContentTable ContentType = "table"

	// ContentChart is an embedded image or chart placeholder.
	ContentChart ContentType = "chart"
)

// ContentItem is one record in a page's ordered content list. Section and
// SubSection carry the heading context active at the point the record was
// emitted; they are nil before the first heading is seen.
type ContentItem struct {
	Type       ContentType `json:"type" yaml:"type"`
	Section    *string     `json:"section" yaml:"section"`
	SubSection *string     `json:"sub_section" yaml:"sub_section"`

	// Text is set on paragraph records only.
	Text string `json:"text,omitempty" yaml:"text,omitempty"`

	// TableData is set on table records: the first row is the header row.
	TableData [][]string `json:"table_data,omitempty" yaml:"table_data,omitempty"`

	// Description is set on chart records, e.g. "Image/Chart 2 on page 4".
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// PageContent holds the ordered content of a single page. Pages with no
// extractable content still appear with an empty content list.
type PageContent struct {
	PageNumber int           `json:"page_number" yaml:"page_number"`
	Content    []ContentItem `json:"content" yaml:"content"`
}

// Document is the root of the structured output.
type Document struct {
	Source    string        `json:"source,omitempty" yaml:"source,omitempty"`
	PageCount int           `json:"page_count,omitempty" yaml:"page_count,omitempty"`
	Pages     []PageContent `json:"pages" yaml:"pages"`
}

// Summary holds per-class record counts from a parse run.
type Summary struct {
	Pages       int `json:"pages" yaml:"pages"`
	Paragraphs  int `json:"paragraphs" yaml:"paragraphs"`
	Sections    int `json:"sections" yaml:"sections"`
	SubSections int `json:"sub_sections" yaml:"sub_sections"`
	Tables      int `json:"tables" yaml:"tables"`
	Charts      int `json:"charts" yaml:"charts"`
}

// Run records one catalogued parse run.
type Run struct {
	// ID is derived from the source path and its modification time,
	// stable across re-parses of an unchanged file.
	ID string `json:"id" yaml:"id"`

	Source     string    `json:"source" yaml:"source"`
	OutputPath string    `json:"output_path" yaml:"output_path"`
	Format     string    `json:"format" yaml:"format"`
	Summary    Summary   `json:"summary" yaml:"summary"`
	CreatedAt  time.Time `json:"created_at" yaml:"created_at"`
}
