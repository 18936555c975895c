// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import (
	"strings"
	"testing"

	"github.com/pdiddy/pdfstruct/internal/document"
	"github.com/pdiddy/pdfstruct/internal/layout"
	"github.com/pdiddy/pdfstruct/pkg/types"
)

// block builds a single-line block from one span.
func block(text, font string, size float64) layout.Block {
	return layout.Block{Lines: []layout.Line{{Spans: []document.Span{
		{Text: text, Font: font, FontSize: size, X: 72, Y: 700, Width: float64(len(text)) * size * 0.5},
	}}}}
}

func TestIsBold(t *testing.T) {
	tests := []struct {
		font string
		want bool
	}{
		{"Helvetica-Bold", true},
		{"TimesNewRomanPS-BoldMT", true},
		{"Arial-BOLDITALIC", true},
		{"Helvetica", false},
		{"Times-Italic", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsBold(tt.font); got != tt.want {
			t.Errorf("IsBold(%q) = %v, want %v", tt.font, got, tt.want)
		}
	}
}

func TestClassify(t *testing.T) {
	cfg := types.DefaultClassifierConfig()

	tests := []struct {
		name  string
		block layout.Block
		want  Class
	}{
		{
			name:  "large bold text is a section",
			block: block("1. Introduction", "Helvetica-Bold", 16),
			want:  ClassSection,
		},
		{
			name:  "medium bold text is a sub-section",
			block: block("1.1 Background", "Helvetica-Bold", 12),
			want:  ClassSubSection,
		},
		{
			name:  "short bold line at body size is a sub-section",
			block: block("Key findings", "Helvetica-Bold", 10),
			want:  ClassSubSection,
		},
		{
			name:  "long bold line at body size is a paragraph",
			block: block(strings.Repeat("word ", 12), "Helvetica-Bold", 10),
			want:  ClassParagraph,
		},
		{
			name:  "large text without bold is a paragraph",
			block: block("Pull quote in display type", "Helvetica", 18),
			want:  ClassParagraph,
		},
		{
			name:  "body text is a paragraph",
			block: block("Plain running text continues here.", "Helvetica", 10),
			want:  ClassParagraph,
		},
		{
			name:  "threshold is exclusive",
			block: block("Heading", "Helvetica-Bold", 14), // == 14.0, not above it
			want:  ClassSubSection,
		},
		{
			name:  "empty block defaults to paragraph",
			block: layout.Block{},
			want:  ClassParagraph,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.block, cfg); got != tt.want {
				t.Errorf("Classify() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClassifyCustomThresholds(t *testing.T) {
	cfg := types.ClassifierConfig{
		HeadingFontSize:    20.0,
		SubheadingFontSize: 16.0,
		HeadingWordCount:   3,
	}

	// 18pt bold is a section under defaults but only a sub-section here.
	if got := Classify(block("Chapter One", "Helvetica-Bold", 18), cfg); got != ClassSubSection {
		t.Errorf("Classify() = %q, want %q", got, ClassSubSection)
	}
	// Three bold words no longer qualify as a short heading.
	if got := Classify(block("one two three", "Helvetica-Bold", 10), cfg); got != ClassParagraph {
		t.Errorf("Classify() = %q, want %q", got, ClassParagraph)
	}
}
