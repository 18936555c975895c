// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/pdiddy/pdfstruct/internal/catalog"
	"github.com/pdiddy/pdfstruct/internal/structure"
	"github.com/pdiddy/pdfstruct/pkg/types"
)

var parseCmd = &cobra.Command{
	Use:   "parse <input.pdf> [output]",
	Short: "Parse a PDF into structured JSON or YAML",
	Long: `Parse converts a PDF into a structured document: one entry per page,
each holding an ordered content list of paragraph, table, and chart
records that carry the active section and sub-section context.

The output path defaults to the input name with the format's extension.
An existing output file is left alone unless --overwrite is given.
Successful runs are recorded in the catalog unless --no-catalog is set.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().String("format", "json", "output format: json or yaml")
	parseCmd.Flags().String("pages", "", "pages to process, e.g. \"1,3-5\" (default: all)")
	parseCmd.Flags().String("image-dir", "", "also extract embedded images into this directory")
	parseCmd.Flags().Bool("stdout", false, "write the document to stdout instead of a file")
	parseCmd.Flags().Bool("overwrite", false, "replace an existing output file")
	parseCmd.Flags().Bool("no-catalog", false, "do not record this run in the catalog")

	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	input := args[0]

	formatName, _ := cmd.Flags().GetString("format")
	format, err := structure.ParseFormat(formatName)
	if err != nil {
		return err
	}

	pagesSpec, _ := cmd.Flags().GetString("pages")
	pages, err := parsePageSpec(pagesSpec)
	if err != nil {
		return err
	}

	toStdout, _ := cmd.Flags().GetBool("stdout")
	overwrite, _ := cmd.Flags().GetBool("overwrite")
	noCatalog, _ := cmd.Flags().GetBool("no-catalog")
	imageDir, _ := cmd.Flags().GetString("image-dir")

	output := ""
	if !toStdout {
		if len(args) == 2 {
			output = args[1]
		} else {
			output = strings.TrimSuffix(input, filepath.Ext(input)) + "." + string(format)
		}
		if _, err := os.Stat(output); err == nil && !overwrite {
			fmt.Fprintf(os.Stderr, "skipped: %s (already exists, use --overwrite)\n", output)
			return nil
		}
	}

	cfg := pipelineConfig()

	doc, summary, err := structure.Parse(input, structure.Options{
		Pages:      pages,
		Classifier: cfg.Classifier,
		Tables:     cfg.Tables,
		ImageDir:   imageDir,
		Logger:     logrus.StandardLogger(),
	})
	if err != nil {
		return err
	}

	if toStdout {
		if err := structure.Encode(os.Stdout, doc, format); err != nil {
			return err
		}
	} else {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		if err := structure.Encode(f, doc, format); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("closing output file: %w", err)
		}
	}

	if !noCatalog {
		if err := recordRun(cfg.Catalog, input, output, string(format), summary); err != nil {
			logrus.WithError(err).Warn("could not record run in catalog")
		}
	}

	fmt.Fprintf(os.Stderr, "parsed: %s (%d pages, %d paragraphs, %d tables, %d charts)\n",
		input, summary.Pages, summary.Paragraphs, summary.Tables, summary.Charts)
	return nil
}

// recordRun stores the outcome of a parse in the catalog.
func recordRun(cfg types.CatalogConfig, input, output, format string, summary types.Summary) error {
	info, err := os.Stat(input)
	if err != nil {
		return fmt.Errorf("stat %s: %w", input, err)
	}

	store, err := catalog.NewStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	return store.Record(types.Run{
		ID:         catalog.RunID(input, info.ModTime()),
		Source:     input,
		OutputPath: output,
		Format:     format,
		Summary:    summary,
		CreatedAt:  time.Now().UTC(),
	})
}

// parsePageSpec expands a page selection like "1,3-5" into page numbers.
// An empty spec selects all pages.
func parsePageSpec(spec string) ([]int, error) {
	if strings.TrimSpace(spec) == "" {
		return nil, nil
	}

	var pages []int
	seen := map[int]bool{}

	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		if lo, hi, ok := strings.Cut(part, "-"); ok {
			start, err := strconv.Atoi(strings.TrimSpace(lo))
			if err != nil {
				return nil, fmt.Errorf("invalid page range %q", part)
			}
			end, err := strconv.Atoi(strings.TrimSpace(hi))
			if err != nil {
				return nil, fmt.Errorf("invalid page range %q", part)
			}
			if start < 1 || end < start {
				return nil, fmt.Errorf("invalid page range %q", part)
			}
			for p := start; p <= end; p++ {
				if !seen[p] {
					pages = append(pages, p)
					seen[p] = true
				}
			}
			continue
		}

		p, err := strconv.Atoi(part)
		if err != nil || p < 1 {
			return nil, fmt.Errorf("invalid page number %q", part)
		}
		if !seen[p] {
			pages = append(pages, p)
			seen[p] = true
		}
	}
	return pages, nil
}
