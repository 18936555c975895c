// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package classify maps text blocks to a content class using font-size
// and boldness heuristics.
package classify

import (
	"strings"

	"github.com/pdiddy/pdfstruct/internal/layout"
	"github.com/pdiddy/pdfstruct/pkg/types"
)

// Class is the structural role assigned to a text block.
type Class string

const (
	ClassSection    Class = "section"
	ClassSubSection Class = "sub_section"
	ClassParagraph  Class = "paragraph"
)

// IsBold reports whether a font name denotes a bold face. PDF font names
// embed the style (e.g. "Helvetica-Bold", "TimesNewRomanPS-BoldMT").
func IsBold(font string) bool {
	return strings.Contains(strings.ToLower(font), "bold")
}

// Classify assigns a class to a block from its first span: large bold
// text is a section, medium bold text a sub-section, and short bold
// lines are sub-sections regardless of size. Everything else, including
// empty blocks, is a paragraph.
func Classify(b layout.Block, cfg types.ClassifierConfig) Class {
	first, ok := b.First()
	if !ok {
		return ClassParagraph
	}

	bold := IsBold(first.Font)
	if bold && first.FontSize > cfg.HeadingFontSize {
		return ClassSection
	}
	if bold && first.FontSize > cfg.SubheadingFontSize {
		return ClassSubSection
	}

	words := len(strings.Fields(strings.TrimSpace(b.FirstLineText())))
	if bold && words < cfg.HeadingWordCount {
		return ClassSubSection
	}

	return ClassParagraph
}
