// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package structure

import (
	"encoding/json"
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pdfstruct/pkg/types"
)

// Format selects the serialization of the structured document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a format name from a flag or config value.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatJSON, FormatYAML:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unknown output format %q (want json or yaml)", s)
	}
}

// Encode writes the document to w in the given format.
func Encode(w io.Writer, doc *types.Document, format Format) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encoding YAML: %w", err)
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encoding JSON: %w", err)
		}
		return nil
	}
}

// Decode reads a previously serialized document, for commands that
// post-process parse output (e.g. table export).
func Decode(r io.Reader, format Format) (*types.Document, error) {
	var doc types.Document
	switch format {
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
			return nil, fmt.Errorf("decoding YAML document: %w", err)
		}
	default:
		if err := json.NewDecoder(r).Decode(&doc); err != nil {
			return nil, fmt.Errorf("decoding JSON document: %w", err)
		}
	}
	return &doc, nil
}
