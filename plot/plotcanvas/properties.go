// Copyright (c) 2026, The Smile Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotcanvas

import (
	"image/color"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/core"
	"cogentcore.org/core/events"
	"cogentcore.org/core/math32/minmax"
)

// canvasProperties is the editable property set of a 2D canvas.
type canvasProperties struct {

	// Title is shown centered above the plot area.
	Title string

	// TitleColor is the color of the title text.
	TitleColor color.RGBA

	// XAxisLabel is the label of the X axis.
	XAxisLabel string

	// XAxisRange is the visible range of the X axis.
	XAxisRange minmax.F32 `display:"inline"`

	// YAxisLabel is the label of the Y axis.
	YAxisLabel string

	// YAxisRange is the visible range of the Y axis.
	YAxisRange minmax.F32 `display:"inline"`
}

// canvasProperties3D adds the third axis for 3D canvases.
type canvasProperties3D struct {
	canvasProperties

	// ZAxisLabel is the label of the Z axis.
	ZAxisLabel string

	// ZAxisRange is the visible range of the Z axis.
	ZAxisRange minmax.F32 `display:"inline"`
}

// properties captures the current canvas state for editing.
func (cv *Canvas) properties() canvasProperties3D {
	var p canvasProperties3D
	p.Title = cv.Title
	if cv.TitleStyle.Color != nil {
		p.TitleColor = colors.ToUniform(cv.TitleStyle.Color)
	}
	labels := cv.grid.Labels()
	p.XAxisLabel = labels[0]
	p.XAxisRange.Set(cv.base.Lower[0], cv.base.Upper[0])
	p.YAxisLabel = labels[1]
	p.YAxisRange.Set(cv.base.Lower[1], cv.base.Upper[1])
	if cv.base.Dimension() == 3 {
		p.ZAxisLabel = labels[2]
		p.ZAxisRange.Set(cv.base.Lower[2], cv.base.Upper[2])
	}
	return p
}

// applyProperties applies edited properties back to the canvas. Axis ranges
// are validated before anything is changed, so a rejected edit leaves the
// canvas as it was.
func (cv *Canvas) applyProperties(p *canvasProperties3D) error {
	labels := []string{p.XAxisLabel, p.YAxisLabel}
	ranges := []minmax.F32{p.XAxisRange, p.YAxisRange}
	if cv.base.Dimension() == 3 {
		labels = append(labels, p.ZAxisLabel)
		ranges = append(ranges, p.ZAxisRange)
	}
	backup, backupUp := cv.base.CopyBounds()
	for i, r := range ranges {
		if err := cv.base.SetRange(i, r.Min, r.Max); err != nil {
			for j := range backup {
				cv.base.SetRange(j, backup[j], backupUp[j])
			}
			return err
		}
	}
	cv.Title = p.Title
	cv.TitleStyle.Color = colors.Uniform(p.TitleColor)
	cv.grid.SetLabels(labels...)
	cv.grid.Update()
	cv.updatePlot()
	return nil
}

// PropertiesDialog opens a modal dialog editing the title, axis labels, and
// axis ranges. OK applies the edits and re-renders; Cancel discards them.
func (cv *Canvas) PropertiesDialog() {
	if cv.base == nil {
		return
	}
	p := cv.properties()
	d := core.NewBody("Plot properties")
	if cv.base.Dimension() == 3 {
		core.NewForm(d).SetStruct(&p)
	} else {
		core.NewForm(d).SetStruct(&p.canvasProperties)
	}
	d.AddBottomBar(func(bar *core.Frame) {
		d.AddCancel(bar)
		d.AddOK(bar).OnClick(func(e events.Event) {
			if err := cv.applyProperties(&p); err != nil {
				core.ErrorDialog(cv, err, "Invalid properties")
			}
		})
	})
	d.RunDialog(cv)
}
