// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package tables detects tabular structures in a page's text spans and
// returns them as row/column grids. Detection is geometric: spans are
// clustered into vertically contiguous regions, grouped into rows, and a
// region is accepted as a table when enough rows share the same column
// structure.
package tables

import (
	"sort"
	"strings"

	"github.com/pdiddy/pdfstruct/internal/document"
	"github.com/pdiddy/pdfstruct/pkg/types"
)

const (
	// cellGapFactor scales a span's font size to the horizontal gap that
	// separates two cells within a row.
	cellGapFactor = 1.0

	// wordSpaceFactor scales a span's font size to the gap treated as a
	// word boundary when joining spans inside one cell.
	wordSpaceFactor = 0.3

	// minCellGap floors the cell separator for tiny font sizes.
	minCellGap = 6.0
)

// Table is a detected grid with its bounding box. The first row of Grid
// is the header row.
type Table struct {
	Grid       [][]string
	Confidence float64
	Top        float64
	Bottom     float64
	Left       float64
	Right      float64
}

// row is a horizontal band of spans sharing a baseline.
type row struct {
	spans []document.Span
	y     float64
}

// Detect finds tables among the given spans. It returns the accepted
// tables and the spans not consumed by any table, which remain available
// for paragraph extraction.
func Detect(spans []document.Span, cfg types.TableConfig) ([]Table, []document.Span) {
	if len(spans) < cfg.MinRows*cfg.MinCols {
		return nil, spans
	}

	sorted := make([]document.Span, len(spans))
	copy(sorted, spans)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Y > sorted[j].Y
	})

	var found []Table
	var rest []document.Span

	for _, cluster := range clusterByGap(sorted, cfg.ClusterGap) {
		table, leftover := analyzeCluster(cluster, cfg)
		if table != nil {
			found = append(found, *table)
		}
		rest = append(rest, leftover...)
	}

	if len(found) == 0 {
		return nil, spans
	}
	return found, rest
}

// clusterByGap splits Y-sorted spans into vertically contiguous regions.
// A gap wider than maxGap between consecutive rows starts a new region.
func clusterByGap(sorted []document.Span, maxGap float64) [][]document.Span {
	var clusters [][]document.Span
	current := []document.Span{sorted[0]}

	for _, s := range sorted[1:] {
		prev := current[len(current)-1]
		if prev.Y-s.Y > maxGap {
			clusters = append(clusters, current)
			current = []document.Span{s}
			continue
		}
		current = append(current, s)
	}
	return append(clusters, current)
}

// analyzeCluster decides whether a region is a table. It returns the
// table (or nil) and every span not consumed by it.
func analyzeCluster(cluster []document.Span, cfg types.TableConfig) (*Table, []document.Span) {
	rows := groupRows(cluster, cfg.RowTolerance)
	if len(rows) < cfg.MinRows {
		return nil, cluster
	}

	// Count cells per row and find the dominant column count.
	cells := make([][][]document.Span, len(rows))
	colCounts := make(map[int]int)
	for i, r := range rows {
		cells[i] = splitCells(r.spans)
		colCounts[len(cells[i])]++
	}

	dominant, freq := 0, 0
	for count, n := range colCounts {
		if n > freq || (n == freq && count > dominant) {
			dominant, freq = count, n
		}
	}
	confidence := float64(freq) / float64(len(rows))

	if dominant < cfg.MinCols || freq < cfg.MinRows || confidence < cfg.MinConfidence {
		return nil, cluster
	}

	// Matching rows become the grid; the rest stay as free text.
	table := &Table{Confidence: confidence}
	var leftover []document.Span
	first := true

	for i, r := range rows {
		if len(cells[i]) != dominant {
			leftover = append(leftover, r.spans...)
			continue
		}

		gridRow := make([]string, dominant)
		for c, cell := range cells[i] {
			gridRow[c] = cellText(cell)
		}
		table.Grid = append(table.Grid, gridRow)

		for _, s := range r.spans {
			if first || s.Y > table.Top {
				table.Top = s.Y
			}
			if first || s.Y < table.Bottom {
				table.Bottom = s.Y
			}
			if first || s.X < table.Left {
				table.Left = s.X
			}
			if first || s.Right() > table.Right {
				table.Right = s.Right()
			}
			first = false
		}
	}

	return table, leftover
}

// groupRows buckets Y-sorted spans into rows within the given tolerance,
// spans within a row ordered left to right.
func groupRows(sorted []document.Span, tolerance float64) []row {
	var rows []row
	current := row{spans: []document.Span{sorted[0]}, y: sorted[0].Y}

	for _, s := range sorted[1:] {
		if current.y-s.Y <= tolerance {
			current.spans = append(current.spans, s)
			continue
		}
		rows = append(rows, current)
		current = row{spans: []document.Span{s}, y: s.Y}
	}
	rows = append(rows, current)

	for i := range rows {
		spans := rows[i].spans
		sort.SliceStable(spans, func(a, b int) bool {
			return spans[a].X < spans[b].X
		})
	}
	return rows
}

// splitCells partitions a row's spans into cells at horizontal gaps
// wider than the cell separator for the local font size.
func splitCells(spans []document.Span) [][]document.Span {
	var cells [][]document.Span
	current := []document.Span{spans[0]}

	for _, s := range spans[1:] {
		prev := current[len(current)-1]
		sep := prev.FontSize * cellGapFactor
		if sep < minCellGap {
			sep = minCellGap
		}
		if s.X-prev.Right() > sep {
			cells = append(cells, current)
			current = []document.Span{s}
			continue
		}
		current = append(current, s)
	}
	return append(cells, current)
}

// cellText joins a cell's spans, inserting spaces at word boundaries.
func cellText(spans []document.Span) string {
	var b strings.Builder
	for i, s := range spans {
		if i > 0 {
			prev := spans[i-1]
			size := prev.FontSize
			if size <= 0 {
				size = minCellGap
			}
			if s.X-prev.Right() > size*wordSpaceFactor {
				b.WriteByte(' ')
			}
		}
		b.WriteString(s.Text)
	}
	return strings.TrimSpace(b.String())
}
