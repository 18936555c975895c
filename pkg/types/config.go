// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ClassifierConfig holds the thresholds used to classify text blocks.
// The defaults suit report-style documents; documents with unusual
// typography may need tuning through the config file.
type ClassifierConfig struct {
	// HeadingFontSize is the font size above which a bold block is a section.
	HeadingFontSize float64 `json:"heading_font_size" yaml:"heading_font_size"`

	// SubheadingFontSize is the font size above which a bold block is a
	// sub-section.
	SubheadingFontSize float64 `json:"subheading_font_size" yaml:"subheading_font_size"`

	// HeadingWordCount is the word count below which a short bold first
	// line is treated as a sub-section regardless of font size.
	HeadingWordCount int `json:"heading_word_count" yaml:"heading_word_count"`
}

// DefaultClassifierConfig returns the stock classification thresholds.
func DefaultClassifierConfig() ClassifierConfig {
	return ClassifierConfig{
		HeadingFontSize:    14.0,
		SubheadingFontSize: 11.5,
		HeadingWordCount:   10,
	}
}

// TableConfig holds the geometric tolerances for table detection.
type TableConfig struct {
	// RowTolerance is the Y distance in points within which spans belong
	// to the same row.
	RowTolerance float64 `json:"row_tolerance" yaml:"row_tolerance"`

	// ClusterGap is the vertical gap in points that separates candidate
	// table regions.
	ClusterGap float64 `json:"cluster_gap" yaml:"cluster_gap"`

	// MinConfidence is the minimum share of rows that must match the
	// dominant column count for a region to be accepted as a table.
	MinConfidence float64 `json:"min_confidence" yaml:"min_confidence"`

	// MinRows and MinCols bound the smallest grid accepted as a table.
	MinRows int `json:"min_rows" yaml:"min_rows"`
	MinCols int `json:"min_cols" yaml:"min_cols"`
}

// DefaultTableConfig returns the stock table detection tolerances.
func DefaultTableConfig() TableConfig {
	return TableConfig{
		RowTolerance:  5.0,
		ClusterGap:    50.0,
		MinConfidence: 0.7,
		MinRows:       2,
		MinCols:       2,
	}
}

// CatalogConfig holds settings for the run catalog.
type CatalogConfig struct {
	// Dir is the directory holding the catalog database (contains pdfstruct.db).
	Dir string `json:"dir" yaml:"dir"`

	// MaxResults is the maximum number of runs returned by a list query
	// (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// PipelineConfig groups all stage configurations for the parse pipeline.
type PipelineConfig struct {
	Classifier ClassifierConfig `json:"classifier" yaml:"classifier"`
	Tables     TableConfig      `json:"tables" yaml:"tables"`
	Catalog    CatalogConfig    `json:"catalog" yaml:"catalog"`
}
