// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package structure runs the parse pipeline: it walks a document's pages,
// classifies text blocks, folds in detected tables and cataloged images,
// and produces the ordered per-page content list with section context.
package structure

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/pdiddy/pdfstruct/internal/classify"
	"github.com/pdiddy/pdfstruct/internal/document"
	"github.com/pdiddy/pdfstruct/internal/images"
	"github.com/pdiddy/pdfstruct/internal/layout"
	"github.com/pdiddy/pdfstruct/internal/tables"
	"github.com/pdiddy/pdfstruct/pkg/types"
)

// Options configures a parse run. Zero-valued configs fall back to the
// package defaults.
type Options struct {
	// Pages selects the 1-based pages to process; nil means all pages.
	Pages []int

	Classifier types.ClassifierConfig
	Tables     types.TableConfig

	// ImageDir, when set, receives the embedded images as files.
	ImageDir string

	Logger logrus.FieldLogger
}

// whitespace collapses newline and space runs when cleaning block text.
var whitespace = regexp.MustCompile(`\s+`)

// cleanText collapses all whitespace runs to single spaces and trims.
func cleanText(s string) string {
	return strings.TrimSpace(whitespace.ReplaceAllString(s, " "))
}

// element is a positioned page item awaiting aggregation. Text blocks
// and tables carry real coordinates; images do not and are appended
// after the positioned content.
type element struct {
	top   float64
	block *layout.Block
	table *tables.Table
}

// walker folds classified blocks, tables, and images into content
// records while tracking the active section and sub-section. The state
// lives on the walker so it persists across pages.
type walker struct {
	classifier types.ClassifierConfig
	section    *string
	subSection *string
	summary    types.Summary
}

// page aggregates one page's elements into its ordered content list.
func (w *walker) page(blocks []layout.Block, pageTables []tables.Table, imgs []images.Image) []types.ContentItem {
	elements := make([]element, 0, len(blocks)+len(pageTables))
	for i := range blocks {
		elements = append(elements, element{top: blocks[i].Top(), block: &blocks[i]})
	}
	for i := range pageTables {
		elements = append(elements, element{top: pageTables[i].Top, table: &pageTables[i]})
	}
	// Reading order: top of page first (descending Y).
	sort.SliceStable(elements, func(i, j int) bool {
		return elements[i].top > elements[j].top
	})

	content := []types.ContentItem{}

	for _, el := range elements {
		if el.table != nil {
			content = append(content, types.ContentItem{
				Type:       types.ContentTable,
				Section:    w.section,
				SubSection: w.subSection,
				TableData:  el.table.Grid,
			})
			w.summary.Tables++
			continue
		}

		text := cleanText(el.block.Text())
		if text == "" {
			continue
		}

		// State updates precede the record, so a heading's own record
		// already carries it as context.
		switch classify.Classify(*el.block, w.classifier) {
		case classify.ClassSection:
			t := text
			w.section = &t
			w.subSection = nil
			w.summary.Sections++
		case classify.ClassSubSection:
			t := text
			w.subSection = &t
			w.summary.SubSections++
		}

		content = append(content, types.ContentItem{
			Type:       types.ContentParagraph,
			Section:    w.section,
			SubSection: w.subSection,
			Text:       text,
		})
		w.summary.Paragraphs++
	}

	for _, img := range imgs {
		content = append(content, types.ContentItem{
			Type:        types.ContentChart,
			Section:     w.section,
			SubSection:  w.subSection,
			Description: img.Description,
		})
		w.summary.Charts++
	}

	return content
}

// Parse converts the PDF at path into a structured document. Section and
// sub-section context persists across page boundaries. Table detection
// and image cataloging failures degrade to warnings; only an unreadable
// document is an error.
func Parse(path string, opts Options) (*types.Document, types.Summary, error) {
	if opts.Classifier == (types.ClassifierConfig{}) {
		opts.Classifier = types.DefaultClassifierConfig()
	}
	if opts.Tables == (types.TableConfig{}) {
		opts.Tables = types.DefaultTableConfig()
	}
	log := opts.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	doc, err := document.Open(path)
	if err != nil {
		return nil, types.Summary{}, err
	}
	defer doc.Close()

	// The image catalog is best-effort: a PDF that ledongthuc reads but
	// pdfcpu rejects still parses, just without chart records.
	catalog, err := images.Open(path)
	if err != nil {
		log.WithError(err).Warn("image catalog unavailable, continuing without images")
		catalog = nil
	} else {
		defer catalog.Close()
	}

	pageNums := opts.Pages
	if len(pageNums) == 0 {
		for n := 1; n <= doc.PageCount(); n++ {
			pageNums = append(pageNums, n)
		}
	}

	out := &types.Document{
		Source:    path,
		PageCount: doc.PageCount(),
	}
	w := &walker{classifier: opts.Classifier}

	for _, n := range pageNums {
		if n < 1 || n > doc.PageCount() {
			return nil, types.Summary{}, fmt.Errorf("page %d out of range (document has %d pages)", n, doc.PageCount())
		}
		log.WithField("page", n).Info("processing page")

		spans := doc.Spans(n)
		pageTables, rest := detectTables(spans, opts.Tables, log, n)
		blocks := layout.Blocks(rest)

		var imgs []images.Image
		if catalog != nil {
			imgs = catalog.Page(n)
		}

		out.Pages = append(out.Pages, types.PageContent{
			PageNumber: n,
			Content:    w.page(blocks, pageTables, imgs),
		})
		w.summary.Pages++
	}

	if opts.ImageDir != "" {
		if err := images.Dump(path, opts.ImageDir, opts.Pages); err != nil {
			log.WithError(err).Warn("image extraction failed")
		}
	}

	return out, w.summary, nil
}

// detectTables wraps table detection in a recover guard: a malformed
// page degrades to zero tables for that page only.
func detectTables(spans []document.Span, cfg types.TableConfig, log logrus.FieldLogger, page int) (found []tables.Table, rest []document.Span) {
	defer func() {
		if r := recover(); r != nil {
			log.WithField("page", page).Warnf("could not read tables: %v", r)
			found = nil
			rest = spans
		}
	}()
	if len(spans) == 0 {
		return nil, nil
	}
	found, rest = tables.Detect(spans, cfg)
	return found, rest
}
