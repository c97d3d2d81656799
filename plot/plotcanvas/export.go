// Copyright (c) 2026, The Smile Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotcanvas

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"codeberg.org/go-pdf/fpdf"
	"cogentcore.org/core/base/iox/imagex"
	"cogentcore.org/core/core"
	"github.com/anthonynsimon/bild/transform"
)

// SaveImage saves the rendered plot to the given image file, with the
// format determined by the file extension (.png, .jpg, etc). The image is
// resampled by the ExportScale setting when it is not 1. Failures are
// reported in an error dialog as well as returned.
func (cv *Canvas) SaveImage(filename core.Filename) error { //types:add
	if cv.pc == nil {
		err := fmt.Errorf("plotcanvas: nothing has been rendered yet")
		core.ErrorDialog(cv, err, "Save failed")
		return err
	}
	img := image.Image(cv.pc.Image)
	if sc := Current.ExportScale; sc != 1 {
		sz := cv.pc.Image.Rect.Size()
		img = transform.Resize(img, int(float32(sz.X)*sc), int(float32(sz.Y)*sc), transform.Linear)
	}
	if err := imagex.Save(img, string(filename)); err != nil {
		core.ErrorDialog(cv, err, "Save failed")
		return err
	}
	return nil
}

// Print renders the plot onto a single PDF page, scaled down to fit the
// printable area with its aspect ratio preserved, and opens the file with
// the system handler to print or view.
func (cv *Canvas) Print() error {
	if cv.pc == nil {
		return fmt.Errorf("plotcanvas: nothing has been rendered yet")
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, cv.pc.Image); err != nil {
		return err
	}

	sz := cv.pc.Image.Rect.Size()
	orient := "P"
	if sz.X > sz.Y {
		orient = "L"
	}
	pdf := fpdf.New(orient, "mm", "A4", "")
	pdf.AddPage()
	opt := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("plot", opt, &buf)

	pw, ph := pdf.GetPageSize()
	ml, mt, mr, mb := pdf.GetMargins()
	aw, ah := pw-ml-mr, ph-mt-mb
	s := min(aw/float64(sz.X), ah/float64(sz.Y))
	w, h := float64(sz.X)*s, float64(sz.Y)*s
	pdf.ImageOptions("plot", ml+(aw-w)/2, mt+(ah-h)/2, w, h, false, opt, 0, "")
	if pdf.Err() {
		return fmt.Errorf("plotcanvas: composing print page: %w", pdf.Error())
	}

	fn := filepath.Join(os.TempDir(), "plot-print.pdf")
	if err := pdf.OutputFileAndClose(fn); err != nil {
		return err
	}
	core.TheApp.OpenURL("file://" + fn)
	return nil
}
