// Copyright (c) 2026, The Smile Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"fmt"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/styles"
)

// tickLength is the length of axis tick marks in dots.
const tickLength = 4

// Grid renders the coordinate frame for a [Base]: the axis frame (a
// rectangle in 2D, cube edges in 3D), tick marks with labels, axis labels,
// and optional interior grid lines.
type Grid struct {

	// Line is the style of the interior grid lines.
	Line LineStyle

	// Frame is the style of the axis frame and tick marks.
	Frame LineStyle

	// TickText is the style of the tick labels.
	TickText TextStyle

	// LabelText is the style of the axis labels.
	LabelText TextStyle

	// ShowGrid draws interior grid lines at each tick. On by default in 2D.
	ShowGrid bool

	base *Base
	axes []*Axis
}

// NewGrid returns a grid for the given base, with the given axis labels
// (default "X", "Y", "Z").
func NewGrid(b *Base, labels ...string) *Grid {
	gr := &Grid{base: b}
	gr.Line.Defaults()
	gr.Line.Color = colors.Uniform(colors.Lightgray)
	gr.Frame.Defaults()
	gr.TickText.Defaults()
	gr.LabelText.Defaults()
	gr.ShowGrid = b.Dimension() == 2
	def := []string{"X", "Y", "Z"}
	gr.axes = make([]*Axis, b.Dimension())
	for i := range gr.axes {
		l := def[i]
		if i < len(labels) {
			l = labels[i]
		}
		gr.axes[i] = newAxis(i, l)
	}
	gr.Update()
	return gr
}

// Axis returns the i-th axis.
func (gr *Grid) Axis(i int) *Axis { return gr.axes[i] }

// Labels returns the axis labels.
func (gr *Grid) Labels() []string {
	ls := make([]string, len(gr.axes))
	for i, ax := range gr.axes {
		ls[i] = ax.Label
	}
	return ls
}

// SetLabels sets the axis labels; at most one per dimension.
func (gr *Grid) SetLabels(labels ...string) error {
	if len(labels) > len(gr.axes) {
		return fmt.Errorf("plot.Grid.SetLabels: %d labels for %d axes", len(labels), len(gr.axes))
	}
	for i, l := range labels {
		gr.axes[i].Label = l
	}
	return nil
}

// Update regenerates the axis ticks from the current base bounds.
// Call after any operation that changes the bounds.
func (gr *Grid) Update() {
	for _, ax := range gr.axes {
		ax.update(gr.base)
	}
}

// Paint draws the frame, ticks, grid lines, and axis labels.
func (gr *Grid) Paint(g *Graphics) {
	if gr.base.Dimension() == 2 {
		gr.paint2D(g)
	} else {
		gr.paint3D(g)
	}
}

// drawText renders s with its center at pos plus the given pixel offset.
func (gr *Grid) drawText(g *Graphics, st *TextStyle, s string, pos, off math32.Vector2) {
	tx := Text{Text: s, Style: *st}
	tx.Config(g)
	sz := tx.Size()
	tx.Draw(g, math32.Vec2(pos.X-0.5*sz.X+off.X, pos.Y-0.5*sz.Y+off.Y))
}

func (gr *Grid) paint2D(g *Graphics) {
	b := gr.base
	lo := math32.Vec3(b.Lower[0], b.Lower[1], 0)
	hi := math32.Vec3(b.Upper[0], b.Upper[1], 0)
	plo := g.Project(lo)
	phi := g.Project(hi)

	// interior grid lines first, so the frame and data draw over them
	if gr.ShowGrid && gr.Line.SetStroke(g) {
		for _, t := range gr.axes[0].Ticks() {
			if t.Value <= b.Lower[0] || t.Value >= b.Upper[0] {
				continue
			}
			g.DrawSegment(math32.Vec3(t.Value, b.Lower[1], 0), math32.Vec3(t.Value, b.Upper[1], 0))
		}
		for _, t := range gr.axes[1].Ticks() {
			if t.Value <= b.Lower[1] || t.Value >= b.Upper[1] {
				continue
			}
			g.DrawSegment(math32.Vec3(b.Lower[0], t.Value, 0), math32.Vec3(b.Upper[0], t.Value, 0))
		}
	}

	if gr.Frame.SetStroke(g) {
		g.PC.DrawRectangle(plo.X, phi.Y, phi.X-plo.X, plo.Y-phi.Y)
		g.PC.Stroke()

		for _, t := range gr.axes[0].Ticks() {
			if t.Value < b.Lower[0] || t.Value > b.Upper[0] {
				continue
			}
			p := g.Project(math32.Vec3(t.Value, b.Lower[1], 0))
			g.PC.DrawLine(p.X, p.Y, p.X, p.Y+tickLength)
			g.PC.Stroke()
		}
		for _, t := range gr.axes[1].Ticks() {
			if t.Value < b.Lower[1] || t.Value > b.Upper[1] {
				continue
			}
			p := g.Project(math32.Vec3(b.Lower[0], t.Value, 0))
			g.PC.DrawLine(p.X, p.Y, p.X-tickLength, p.Y)
			g.PC.Stroke()
		}
	}

	for _, t := range gr.axes[0].Ticks() {
		if t.Value < b.Lower[0] || t.Value > b.Upper[0] {
			continue
		}
		p := g.Project(math32.Vec3(t.Value, b.Lower[1], 0))
		gr.drawText(g, &gr.TickText, t.Label, p, math32.Vec2(0, 14))
	}
	for _, t := range gr.axes[1].Ticks() {
		if t.Value < b.Lower[1] || t.Value > b.Upper[1] {
			continue
		}
		p := g.Project(math32.Vec3(b.Lower[0], t.Value, 0))
		tx := Text{Text: t.Label, Style: gr.TickText}
		tx.Config(g)
		sz := tx.Size()
		tx.Draw(g, math32.Vec2(p.X-sz.X-2*tickLength, p.Y-0.5*sz.Y))
	}

	// axis labels: X centered below the tick labels, Y rotated at the left
	xmid := g.Project(math32.Vec3(b.Center(0), b.Lower[1], 0))
	gr.drawText(g, &gr.LabelText, gr.axes[0].Label, xmid, math32.Vec2(0, 36))

	ymid := g.Project(math32.Vec3(b.Lower[0], b.Center(1), 0))
	yst := gr.LabelText
	yst.Rotation = -90
	yst.Align = styles.Center
	gr.drawText(g, &yst, gr.axes[1].Label, math32.Vec2(math32.Max(ymid.X-48, 8), ymid.Y), math32.Vector2{})
}

// cubeEdges returns the 12 edges of the 3D bounds box as point pairs.
func (gr *Grid) cubeEdges() [][2]math32.Vector3 {
	b := gr.base
	lo := math32.Vec3(b.Lower[0], b.Lower[1], b.Lower[2])
	hi := math32.Vec3(b.Upper[0], b.Upper[1], b.Upper[2])
	c := func(x, y, z bool) math32.Vector3 {
		v := lo
		if x {
			v.X = hi.X
		}
		if y {
			v.Y = hi.Y
		}
		if z {
			v.Z = hi.Z
		}
		return v
	}
	return [][2]math32.Vector3{
		{c(false, false, false), c(true, false, false)},
		{c(false, true, false), c(true, true, false)},
		{c(false, false, true), c(true, false, true)},
		{c(false, true, true), c(true, true, true)},
		{c(false, false, false), c(false, true, false)},
		{c(true, false, false), c(true, true, false)},
		{c(false, false, true), c(false, true, true)},
		{c(true, false, true), c(true, true, true)},
		{c(false, false, false), c(false, false, true)},
		{c(true, false, false), c(true, false, true)},
		{c(false, true, false), c(false, true, true)},
		{c(true, true, false), c(true, true, true)},
	}
}

func (gr *Grid) paint3D(g *Graphics) {
	b := gr.base
	if gr.Frame.SetStroke(g) {
		for _, e := range gr.cubeEdges() {
			g.DrawSegment(e[0], e[1])
		}
	}

	// tick labels along the three edges meeting at the lower corner
	for _, t := range gr.axes[0].Ticks() {
		if t.Value < b.Lower[0] || t.Value > b.Upper[0] {
			continue
		}
		p := g.Project(math32.Vec3(t.Value, b.Lower[1], b.Lower[2]))
		gr.drawText(g, &gr.TickText, t.Label, p, math32.Vec2(0, 12))
	}
	for _, t := range gr.axes[1].Ticks() {
		if t.Value < b.Lower[1] || t.Value > b.Upper[1] {
			continue
		}
		p := g.Project(math32.Vec3(b.Upper[0], t.Value, b.Lower[2]))
		gr.drawText(g, &gr.TickText, t.Label, p, math32.Vec2(16, 8))
	}
	for _, t := range gr.axes[2].Ticks() {
		if t.Value < b.Lower[2] || t.Value > b.Upper[2] {
			continue
		}
		p := g.Project(math32.Vec3(b.Lower[0], b.Lower[1], t.Value))
		gr.drawText(g, &gr.TickText, t.Label, p, math32.Vec2(-18, 0))
	}

	xmid := g.Project(math32.Vec3(b.Center(0), b.Lower[1], b.Lower[2]))
	gr.drawText(g, &gr.LabelText, gr.axes[0].Label, xmid, math32.Vec2(0, 32))
	ymid := g.Project(math32.Vec3(b.Upper[0], b.Center(1), b.Lower[2]))
	gr.drawText(g, &gr.LabelText, gr.axes[1].Label, ymid, math32.Vec2(40, 16))
	zmid := g.Project(math32.Vec3(b.Lower[0], b.Lower[1], b.Center(2)))
	gr.drawText(g, &gr.LabelText, gr.axes[2].Label, zmid, math32.Vec2(-44, 0))
}
