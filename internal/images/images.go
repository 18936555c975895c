// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package images catalogs the embedded images of a PDF using pdfcpu.
// Placed bounding boxes are not available from the object catalog, so
// records carry a positional description placeholder instead.
package images

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Image is one embedded image on a page.
type Image struct {
	Page      int
	ObjNr     int
	Index     int
	// Description is the human-readable placeholder emitted into the
	// structured output, e.g. "Image/Chart 2 on page 4".
	Description string
}

// Catalog lists the images of an open PDF.
type Catalog struct {
	file *os.File
	ctx  *model.Context
}

// Open reads, validates and optimizes the PDF at path. Optimization is
// what populates the per-page image object index.
func Open(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening PDF %s: %w", path, err)
	}

	conf := model.NewDefaultConfiguration()
	ctx, err := api.ReadValidateAndOptimize(f, conf)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("reading PDF %s with pdfcpu: %w", path, err)
	}

	return &Catalog{file: f, ctx: ctx}, nil
}

// Close releases the underlying file handle.
func (c *Catalog) Close() error {
	return c.file.Close()
}

// PageCount returns the page count as seen by pdfcpu.
func (c *Catalog) PageCount() int {
	return c.ctx.PageCount
}

// Page returns the images embedded on page n (1-based), in object order.
func (c *Catalog) Page(n int) []Image {
	if c.ctx.Optimize == nil {
		return nil
	}

	objNrs := pdfcpu.ImageObjNrs(c.ctx, n)
	imgs := make([]Image, 0, len(objNrs))
	for i, objNr := range objNrs {
		imgs = append(imgs, Image{
			Page:        n,
			ObjNr:       objNr,
			Index:       i + 1,
			Description: fmt.Sprintf("Image/Chart %d on page %d", i+1, n),
		})
	}
	return imgs
}

// Dump extracts the images of the selected pages (all pages when nil)
// into outDir as files.
func Dump(pdfPath, outDir string, pages []int) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating image directory: %w", err)
	}

	var selected []string
	for _, p := range pages {
		selected = append(selected, strconv.Itoa(p))
	}

	conf := model.NewDefaultConfiguration()
	if err := api.ExtractImagesFile(pdfPath, outDir, selected, conf); err != nil {
		return fmt.Errorf("extracting images from %s: %w", pdfPath, err)
	}
	return nil
}
