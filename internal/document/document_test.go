// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package document

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.pdf"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestOpenNotAPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not-a-pdf.pdf")
	if err := os.WriteFile(path, []byte("this is plain text"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Open(path); err == nil {
		t.Fatal("expected error for non-PDF content")
	}
}

func TestSpanRight(t *testing.T) {
	s := Span{X: 72, Width: 40}
	if got := s.Right(); got != 112 {
		t.Errorf("Right() = %v, want 112", got)
	}
}
