// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package layout assembles raw text spans into lines and blocks in
// reading order. PDF coordinates grow upward, so reading order is
// descending Y, then ascending X within a line.
package layout

import (
	"sort"
	"strings"

	"github.com/pdiddy/pdfstruct/internal/document"
)

const (
	// rowTolerance is the Y distance in points within which spans are
	// considered part of the same line.
	rowTolerance = 3.0

	// blockGapFactor scales the preceding line's font size to the
	// vertical gap that splits two blocks.
	blockGapFactor = 1.6

	// wordSpaceFactor scales a span's font size to the horizontal gap
	// treated as a word boundary when joining spans.
	wordSpaceFactor = 0.3

	// fallbackFontSize stands in for spans reporting a zero font size.
	fallbackFontSize = 12.0
)

// Line is a horizontal run of spans sharing a baseline.
type Line struct {
	Spans []document.Span
}

// Y returns the line's baseline, taken from its first span.
func (l Line) Y() float64 {
	if len(l.Spans) == 0 {
		return 0
	}
	return l.Spans[0].Y
}

// Text joins the line's spans left to right, inserting spaces at word
// boundaries. Character-level PDFs emit one span per glyph, so adjacent
// spans are concatenated unless the horizontal gap exceeds a fraction of
// the font size.
func (l Line) Text() string {
	var b strings.Builder
	for i, s := range l.Spans {
		if i > 0 {
			prev := l.Spans[i-1]
			size := prev.FontSize
			if size <= 0 {
				size = fallbackFontSize
			}
			if s.X-prev.Right() > size*wordSpaceFactor {
				b.WriteByte(' ')
			}
		}
		b.WriteString(s.Text)
	}
	return b.String()
}

// maxFontSize returns the largest font size on the line.
func (l Line) maxFontSize() float64 {
	max := 0.0
	for _, s := range l.Spans {
		if s.FontSize > max {
			max = s.FontSize
		}
	}
	if max <= 0 {
		max = fallbackFontSize
	}
	return max
}

// Block is a group of consecutive lines separated from its neighbors by
// a vertical gap, the unit the classifier operates on.
type Block struct {
	Lines []Line
}

// Top returns the Y coordinate of the block's first line.
func (b Block) Top() float64 {
	if len(b.Lines) == 0 {
		return 0
	}
	return b.Lines[0].Y()
}

// First returns the block's first span, the one classification keys off.
func (b Block) First() (document.Span, bool) {
	if len(b.Lines) == 0 || len(b.Lines[0].Spans) == 0 {
		return document.Span{}, false
	}
	return b.Lines[0].Spans[0], true
}

// FirstLineText returns the joined text of the block's first line.
func (b Block) FirstLineText() string {
	if len(b.Lines) == 0 {
		return ""
	}
	return b.Lines[0].Text()
}

// Text joins all lines of the block with single spaces.
func (b Block) Text() string {
	parts := make([]string, 0, len(b.Lines))
	for _, l := range b.Lines {
		parts = append(parts, l.Text())
	}
	return strings.Join(parts, " ")
}

// Lines groups spans into lines by Y proximity. Lines come back in
// reading order (top of page first), spans within a line left to right.
func Lines(spans []document.Span) []Line {
	if len(spans) == 0 {
		return nil
	}

	sorted := make([]document.Span, len(spans))
	copy(sorted, spans)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Y > sorted[j].Y
	})

	var lines []Line
	current := Line{Spans: []document.Span{sorted[0]}}
	baseline := sorted[0].Y

	for _, s := range sorted[1:] {
		if baseline-s.Y <= rowTolerance {
			current.Spans = append(current.Spans, s)
			continue
		}
		lines = append(lines, current)
		current = Line{Spans: []document.Span{s}}
		baseline = s.Y
	}
	lines = append(lines, current)

	for i := range lines {
		spans := lines[i].Spans
		sort.SliceStable(spans, func(a, b int) bool {
			return spans[a].X < spans[b].X
		})
	}
	return lines
}

// Blocks groups spans into blocks: lines are split into a new block
// whenever the vertical gap to the previous line exceeds a multiple of
// that line's font size.
func Blocks(spans []document.Span) []Block {
	lines := Lines(spans)
	if len(lines) == 0 {
		return nil
	}

	var blocks []Block
	current := Block{Lines: []Line{lines[0]}}

	for _, line := range lines[1:] {
		prev := current.Lines[len(current.Lines)-1]
		gap := prev.Y() - line.Y()
		if gap > prev.maxFontSize()*blockGapFactor {
			blocks = append(blocks, current)
			current = Block{Lines: []Line{line}}
			continue
		}
		current.Lines = append(current.Lines, line)
	}
	blocks = append(blocks, current)
	return blocks
}
