// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package structure

import (
	"testing"

	"github.com/pdiddy/pdfstruct/internal/document"
	"github.com/pdiddy/pdfstruct/internal/images"
	"github.com/pdiddy/pdfstruct/internal/layout"
	"github.com/pdiddy/pdfstruct/internal/tables"
	"github.com/pdiddy/pdfstruct/pkg/types"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain text", "plain text"},
		{"  leading and trailing  ", "leading and trailing"},
		{"line\nbreaks  \n become\nspaces", "line breaks become spaces"},
		{"tabs\tand\t\tspaces", "tabs and spaces"},
		{"   \n\t ", ""},
	}
	for _, tt := range tests {
		if got := cleanText(tt.in); got != tt.want {
			t.Errorf("cleanText(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// textBlock builds a single-line block at the given vertical position.
func textBlock(text, font string, size, y float64) layout.Block {
	return layout.Block{Lines: []layout.Line{{Spans: []document.Span{
		{Text: text, Font: font, FontSize: size, X: 72, Y: y, Width: 100},
	}}}}
}

func TestWalkerSectionTracking(t *testing.T) {
	w := &walker{classifier: types.DefaultClassifierConfig()}

	content := w.page([]layout.Block{
		textBlock("Introduction", "Helvetica-Bold", 16, 700),
		textBlock("Opening paragraph.", "Helvetica", 10, 650),
		textBlock("Motivation", "Helvetica-Bold", 12, 600),
		textBlock("Why this matters.", "Helvetica", 10, 550),
	}, nil, nil)

	if len(content) != 4 {
		t.Fatalf("expected 4 records, got %d", len(content))
	}

	// Every text record is a paragraph; headings show up as context.
	for i, item := range content {
		if item.Type != types.ContentParagraph {
			t.Errorf("record %d type = %q, want paragraph", i, item.Type)
		}
	}

	// The heading's own record already carries it as section.
	if content[0].Section == nil || *content[0].Section != "Introduction" {
		t.Errorf("heading record section = %v, want Introduction", content[0].Section)
	}
	if content[0].SubSection != nil {
		t.Errorf("heading record sub_section = %v, want nil", *content[0].SubSection)
	}
	if content[1].Section == nil || *content[1].Section != "Introduction" {
		t.Errorf("paragraph section = %v, want Introduction", content[1].Section)
	}
	if content[3].SubSection == nil || *content[3].SubSection != "Motivation" {
		t.Errorf("paragraph sub_section = %v, want Motivation", content[3].SubSection)
	}

	if w.summary.Sections != 1 || w.summary.SubSections != 1 || w.summary.Paragraphs != 4 {
		t.Errorf("summary = %+v", w.summary)
	}
}

func TestWalkerNewSectionResetsSubSection(t *testing.T) {
	w := &walker{classifier: types.DefaultClassifierConfig()}

	content := w.page([]layout.Block{
		textBlock("Methods", "Helvetica-Bold", 16, 700),
		textBlock("Sampling", "Helvetica-Bold", 12, 650),
		textBlock("Results", "Helvetica-Bold", 16, 600),
		textBlock("Body.", "Helvetica", 10, 550),
	}, nil, nil)

	last := content[len(content)-1]
	if last.Section == nil || *last.Section != "Results" {
		t.Errorf("section = %v, want Results", last.Section)
	}
	if last.SubSection != nil {
		t.Errorf("sub_section = %q, want nil after new section", *last.SubSection)
	}
}

func TestWalkerStatePersistsAcrossPages(t *testing.T) {
	w := &walker{classifier: types.DefaultClassifierConfig()}

	w.page([]layout.Block{
		textBlock("Discussion", "Helvetica-Bold", 16, 700),
	}, nil, nil)

	content := w.page([]layout.Block{
		textBlock("Continued on the next page.", "Helvetica", 10, 700),
	}, nil, nil)

	if content[0].Section == nil || *content[0].Section != "Discussion" {
		t.Errorf("section = %v, want Discussion carried from previous page", content[0].Section)
	}
}

func TestWalkerOrdersTablesByPosition(t *testing.T) {
	w := &walker{classifier: types.DefaultClassifierConfig()}

	table := tables.Table{
		Grid: [][]string{{"A", "B"}, {"1", "2"}},
		Top:  600,
	}

	content := w.page([]layout.Block{
		textBlock("Above the table.", "Helvetica", 10, 700),
		textBlock("Below the table.", "Helvetica", 10, 500),
	}, []tables.Table{table}, nil)

	if len(content) != 3 {
		t.Fatalf("expected 3 records, got %d", len(content))
	}
	if content[0].Type != types.ContentParagraph || content[1].Type != types.ContentTable || content[2].Type != types.ContentParagraph {
		t.Errorf("record order = %v %v %v", content[0].Type, content[1].Type, content[2].Type)
	}
	if len(content[1].TableData) != 2 {
		t.Errorf("table data rows = %d, want 2", len(content[1].TableData))
	}
	if content[1].Text != "" {
		t.Errorf("table record text = %q, want empty", content[1].Text)
	}
}

func TestWalkerAppendsCharts(t *testing.T) {
	w := &walker{classifier: types.DefaultClassifierConfig()}

	content := w.page(
		[]layout.Block{
			textBlock("Figures", "Helvetica-Bold", 16, 700),
		},
		nil,
		[]images.Image{
			{Page: 1, Index: 1, Description: "Image/Chart 1 on page 1"},
			{Page: 1, Index: 2, Description: "Image/Chart 2 on page 1"},
		},
	)

	if len(content) != 3 {
		t.Fatalf("expected 3 records, got %d", len(content))
	}
	chart := content[1]
	if chart.Type != types.ContentChart {
		t.Errorf("type = %q, want chart", chart.Type)
	}
	if chart.Description != "Image/Chart 1 on page 1" {
		t.Errorf("description = %q", chart.Description)
	}
	if chart.Section == nil || *chart.Section != "Figures" {
		t.Errorf("chart section = %v, want Figures", chart.Section)
	}
	if chart.TableData != nil {
		t.Errorf("chart table data = %v, want nil", chart.TableData)
	}
	if w.summary.Charts != 2 {
		t.Errorf("summary charts = %d, want 2", w.summary.Charts)
	}
}

func TestWalkerDropsBlankBlocks(t *testing.T) {
	w := &walker{classifier: types.DefaultClassifierConfig()}

	content := w.page([]layout.Block{
		textBlock("   ", "Helvetica", 10, 700),
		textBlock("Real text.", "Helvetica", 10, 650),
	}, nil, nil)

	if len(content) != 1 {
		t.Fatalf("expected 1 record, got %d", len(content))
	}
	if content[0].Text != "Real text." {
		t.Errorf("text = %q", content[0].Text)
	}
}
