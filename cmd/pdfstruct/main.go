// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pdfstruct CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pdfstruct/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the pdfstruct CLI.
var rootCmd = &cobra.Command{
	Use:   "pdfstruct",
	Short: "Convert PDF documents into structured JSON",
	Long: `pdfstruct converts a PDF document into a structured JSON or YAML
representation. Text blocks are classified into sections, sub-sections,
and paragraphs using font-size and boldness heuristics; tables are
detected as row/column grids; embedded images are cataloged per page.

Parse runs are recorded in a local SQLite catalog so past conversions
can be listed and inspected.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		levelName := viper.GetString("log_level")
		if flag, _ := cmd.Flags().GetString("log-level"); flag != "" {
			levelName = flag
		}
		level, err := logrus.ParseLevel(levelName)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", levelName, err)
		}
		logrus.SetLevel(level)
		logrus.SetOutput(os.Stderr)
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pdfstruct.yaml or ~/.config/pdfstruct/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, or error")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pdfstruct")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pdfstruct"))
		}
	}

	viper.SetEnvPrefix("PDFSTRUCT")
	viper.AutomaticEnv()

	viper.SetDefault("log_level", "info")

	classifier := types.DefaultClassifierConfig()
	viper.SetDefault("classifier.heading_font_size", classifier.HeadingFontSize)
	viper.SetDefault("classifier.subheading_font_size", classifier.SubheadingFontSize)
	viper.SetDefault("classifier.heading_word_count", classifier.HeadingWordCount)

	tables := types.DefaultTableConfig()
	viper.SetDefault("tables.row_tolerance", tables.RowTolerance)
	viper.SetDefault("tables.cluster_gap", tables.ClusterGap)
	viper.SetDefault("tables.min_confidence", tables.MinConfidence)
	viper.SetDefault("tables.min_rows", tables.MinRows)
	viper.SetDefault("tables.min_cols", tables.MinCols)

	viper.SetDefault("catalog.dir", "catalog")
	viper.SetDefault("catalog.max_results", 20)

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// pipelineConfig assembles the stage configurations from viper.
func pipelineConfig() types.PipelineConfig {
	return types.PipelineConfig{
		Classifier: types.ClassifierConfig{
			HeadingFontSize:    viper.GetFloat64("classifier.heading_font_size"),
			SubheadingFontSize: viper.GetFloat64("classifier.subheading_font_size"),
			HeadingWordCount:   viper.GetInt("classifier.heading_word_count"),
		},
		Tables: types.TableConfig{
			RowTolerance:  viper.GetFloat64("tables.row_tolerance"),
			ClusterGap:    viper.GetFloat64("tables.cluster_gap"),
			MinConfidence: viper.GetFloat64("tables.min_confidence"),
			MinRows:       viper.GetInt("tables.min_rows"),
			MinCols:       viper.GetInt("tables.min_cols"),
		},
		Catalog: types.CatalogConfig{
			Dir:        viper.GetString("catalog.dir"),
			MaxResults: viper.GetInt("catalog.max_results"),
		},
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
