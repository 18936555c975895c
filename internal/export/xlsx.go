// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export writes the table records of a structured document to an
// XLSX workbook, one sheet per page that has tables.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/pdiddy/pdfstruct/pkg/types"
)

const defaultSheet = "Sheet1"

// Tables writes every table record of doc to an XLSX workbook at outPath.
// Tables on the same page share a sheet, separated by a blank row. It
// returns the number of tables written; zero tables is an error since the
// resulting workbook would be empty.
func Tables(doc *types.Document, outPath string) (int, error) {
	f := excelize.NewFile()
	defer f.Close()

	written := 0
	firstSheet := true

	for _, page := range doc.Pages {
		row := 1
		var sheet string

		for _, item := range page.Content {
			if item.Type != types.ContentTable || len(item.TableData) == 0 {
				continue
			}

			if sheet == "" {
				sheet = fmt.Sprintf("Page %d", page.PageNumber)
				if firstSheet {
					if err := f.SetSheetName(defaultSheet, sheet); err != nil {
						return 0, fmt.Errorf("naming sheet %s: %w", sheet, err)
					}
					firstSheet = false
				} else if _, err := f.NewSheet(sheet); err != nil {
					return 0, fmt.Errorf("creating sheet %s: %w", sheet, err)
				}
			}

			for _, gridRow := range item.TableData {
				for col, val := range gridRow {
					cell, err := excelize.CoordinatesToCellName(col+1, row)
					if err != nil {
						return 0, fmt.Errorf("cell coordinates: %w", err)
					}
					if err := f.SetCellValue(sheet, cell, val); err != nil {
						return 0, fmt.Errorf("writing cell %s!%s: %w", sheet, cell, err)
					}
				}
				row++
			}
			row++ // blank separator between tables on the same page
			written++
		}
	}

	if written == 0 {
		return 0, fmt.Errorf("document contains no tables")
	}

	if err := f.SaveAs(outPath); err != nil {
		return 0, fmt.Errorf("saving workbook %s: %w", outPath, err)
	}
	return written, nil
}
