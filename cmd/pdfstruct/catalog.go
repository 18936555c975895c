// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pdfstruct/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the catalog of past parse runs",
	Long: `Catalog manages the local SQLite database that records parse runs.
Use subcommands to list recent runs, show one run in detail, or purge
the catalog.`,
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent parse runs, newest first",
	RunE:  runCatalogList,
}

func runCatalogList(cmd *cobra.Command, args []string) error {
	store, err := catalog.NewStore(pipelineConfig().Catalog)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No runs recorded.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-12s  %-40s  %-6s  %-6s  %-7s  %s\n",
		"ID", "Source", "Pages", "Tables", "Charts", "Created")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 95))

	for _, r := range runs {
		source := r.Source
		if len(source) > 40 {
			source = "..." + source[len(source)-37:]
		}
		fmt.Fprintf(os.Stdout, "%-12s  %-40s  %-6d  %-6d  %-7d  %s\n",
			r.ID, source, r.Summary.Pages, r.Summary.Tables, r.Summary.Charts,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

var catalogShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one parse run as YAML",
	Args:  cobra.ExactArgs(1),
	RunE:  runCatalogShow,
}

func runCatalogShow(cmd *cobra.Command, args []string) error {
	store, err := catalog.NewStore(pipelineConfig().Catalog)
	if err != nil {
		return err
	}
	defer store.Close()

	run, err := store.Get(args[0])
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(&run)
	if err != nil {
		return fmt.Errorf("marshaling run: %w", err)
	}
	fmt.Print(string(data))
	return nil
}

var catalogPurgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Delete all recorded runs",
	RunE:  runCatalogPurge,
}

func runCatalogPurge(cmd *cobra.Command, args []string) error {
	store, err := catalog.NewStore(pipelineConfig().Catalog)
	if err != nil {
		return err
	}
	defer store.Close()

	n, err := store.Purge()
	if err != nil {
		return err
	}
	fmt.Printf("Purged %d run(s).\n", n)
	return nil
}

func init() {
	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogShowCmd)
	catalogCmd.AddCommand(catalogPurgeCmd)
	rootCmd.AddCommand(catalogCmd)
}
