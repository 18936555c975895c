// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/pdiddy/pdfstruct/pkg/types"
)

func tableItem(grid [][]string) types.ContentItem {
	return types.ContentItem{Type: types.ContentTable, TableData: grid}
}

func TestTables(t *testing.T) {
	doc := &types.Document{
		Pages: []types.PageContent{
			{
				PageNumber: 1,
				Content: []types.ContentItem{
					{Type: types.ContentParagraph, Text: "no table here"},
				},
			},
			{
				PageNumber: 2,
				Content: []types.ContentItem{
					tableItem([][]string{{"Name", "Qty"}, {"Bolt", "12"}}),
					tableItem([][]string{{"X", "Y"}}),
				},
			},
		},
	}

	out := filepath.Join(t.TempDir(), "tables.xlsx")
	n, err := Tables(doc, out)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	f, err := excelize.OpenFile(out)
	require.NoError(t, err)
	defer f.Close()

	// Only the page with tables gets a sheet.
	assert.Equal(t, []string{"Page 2"}, f.GetSheetList())

	for cell, want := range map[string]string{
		"A1": "Name",
		"B1": "Qty",
		"A2": "Bolt",
		"B2": "12",
		"A4": "X", // second table starts after a blank separator row
		"B4": "Y",
	} {
		got, err := f.GetCellValue("Page 2", cell)
		require.NoError(t, err)
		assert.Equal(t, want, got, "cell %s", cell)
	}
}

func TestTablesEmptyDocument(t *testing.T) {
	doc := &types.Document{
		Pages: []types.PageContent{
			{PageNumber: 1, Content: []types.ContentItem{
				{Type: types.ContentParagraph, Text: "prose only"},
			}},
		},
	}

	out := filepath.Join(t.TempDir(), "tables.xlsx")
	_, err := Tables(doc, out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no tables")
}
