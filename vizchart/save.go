// Copyright 2024 The Benchviz Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vizchart

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"
)

// SaveOptions controls where and how Save writes a plot.
type SaveOptions struct {
	// Dir is the output directory. It must exist, or its parent
	// must exist when DateDir creates a dated subdirectory below
	// it: directory creation is deliberately non-recursive.
	Dir string

	// Name is an fmt template for the file name, with up to two
	// string slots: %[1]s is replaced by Date and %[2]s by the
	// extension. For example "speedup_%[1]s.%[2]s", or
	// "speedup.%[2]s" for undated names.
	Name string

	// Date is an opaque date string substituted into Name.
	Date string

	// DateDir writes into the subdirectory Dir/Date, creating it
	// if needed.
	DateDir bool

	// Extensions lists the formats to write, one file each. It
	// defaults to pdf and png. Supported: pdf, png, svg, jpg,
	// jpeg, tif, tiff.
	Extensions []string

	// DPI is the raster resolution. Zero means 300.
	DPI int

	// Width and Height give the canvas size. Zero means 8 by 6
	// inches.
	Width, Height vg.Length
}

// Save writes p once per extension into the resolved directory,
// overwriting existing files of the same name. A failure partway
// leaves the files written so far in place.
func Save(p *plot.Plot, opts SaveOptions) error {
	dir := opts.Dir
	if opts.DateDir && opts.Date != "" {
		dir = filepath.Join(dir, opts.Date)
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		// Non-recursive: a missing parent is the caller's error.
		if err := os.Mkdir(dir, 0o777); err != nil {
			return err
		}
	}

	dpi := opts.DPI
	if dpi == 0 {
		dpi = 300
	}
	w, h := opts.Width, opts.Height
	if w == 0 {
		w = 8 * vg.Inch
	}
	if h == 0 {
		h = 6 * vg.Inch
	}
	exts := opts.Extensions
	if len(exts) == 0 {
		exts = []string{"pdf", "png"}
	}

	for _, ext := range exts {
		var can vg.CanvasWriterTo
		switch ext {
		case "png":
			can = vgimg.PngCanvas{Canvas: rasterCanvas(w, h, dpi)}
		case "jpg", "jpeg":
			can = vgimg.JpegCanvas{Canvas: rasterCanvas(w, h, dpi)}
		case "tif", "tiff":
			can = vgimg.TiffCanvas{Canvas: rasterCanvas(w, h, dpi)}
		case "pdf":
			can = vgpdf.New(w, h)
		case "svg":
			can = vgsvg.New(w, h)
		default:
			return fmt.Errorf("unsupported extension %q", ext)
		}

		p.Draw(draw.New(can))

		f, err := os.Create(filepath.Join(dir, fileName(opts.Name, opts.Date, ext)))
		if err != nil {
			return err
		}
		if _, err := can.WriteTo(f); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
	}
	return nil
}

func rasterCanvas(w, h vg.Length, dpi int) *vgimg.Canvas {
	return vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(dpi),
		vgimg.UseBackgroundColor(color.White))
}

// fileName resolves the name template. Both slots are always
// supplied; templates that use explicit argument indexes may consume
// either or both.
func fileName(tmpl, date, ext string) string {
	return fmt.Sprintf(tmpl, date, ext)
}
