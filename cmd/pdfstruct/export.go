// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pdfstruct/internal/export"
	"github.com/pdiddy/pdfstruct/internal/structure"
)

var exportCmd = &cobra.Command{
	Use:   "export <document> <tables.xlsx>",
	Short: "Export a parsed document's tables to an XLSX workbook",
	Long: `Export reads a document previously produced by parse (JSON or YAML,
detected from the extension) and writes its table records to an XLSX
workbook, one sheet per page that has tables.`,
	Args: cobra.ExactArgs(2),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	docPath, outPath := args[0], args[1]

	format := structure.FormatJSON
	switch strings.ToLower(filepath.Ext(docPath)) {
	case ".yaml", ".yml":
		format = structure.FormatYAML
	}

	f, err := os.Open(docPath)
	if err != nil {
		return fmt.Errorf("opening document: %w", err)
	}
	defer f.Close()

	doc, err := structure.Decode(f, format)
	if err != nil {
		return err
	}

	n, err := export.Tables(doc, outPath)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "exported: %d table(s) to %s\n", n, outPath)
	return nil
}
