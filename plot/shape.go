// Copyright (c) 2026, The Smile Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"fmt"
	"image"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/styles/units"
)

// Shape is a drawable item on a plot canvas: a plot series, a label, the
// coordinate grid, etc. Shapes are painted in the order they were added.
type Shape interface {

	// Paint draws the shape through the given graphics context.
	Paint(g *Graphics)
}

// Plot is a [Shape] bound to a data set. Plots report their data extent so
// the canvas can grow its bounds when they are added, and can answer
// tooltip queries for points near the cursor.
type Plot interface {
	Shape

	// Name returns the name shown in the legend; empty for an unnamed plot.
	Name() string

	// LegendColor returns the color for the legend swatch.
	LegendColor() image.Image

	// Bounds returns the per-dimension lower and upper bounds of the data.
	Bounds() (lower, upper []float32)

	// Tooltip returns a description of a data point within tol of the given
	// 2D data-space position, and whether there is one.
	Tooltip(at, tol math32.Vector2) (string, bool)
}

// LineStyle has style properties for stroking lines.
type LineStyle struct {

	// Color of the line. Use nil to disable stroking.
	Color image.Image

	// Width is the line width, with a default of 1dp.
	Width units.Value
}

func (ls *LineStyle) Defaults() {
	ls.Color = colors.Uniform(colors.Black)
	ls.Width.Dp(1)
}

// SetStroke sets the stroke style in the graphics context, returning false
// if the line is effectively off and should not be drawn.
func (ls *LineStyle) SetStroke(g *Graphics) bool {
	if ls.Color == nil {
		return false
	}
	if ls.Width.ToDots(&g.PC.UnitContext) <= 0 {
		return false
	}
	g.PC.StrokeStyle.Color = ls.Color
	g.PC.StrokeStyle.Width = ls.Width
	return true
}

// PointStyle has style properties for drawing data point glyphs.
type PointStyle struct {

	// Color of the glyph outline. Use nil to disable points.
	Color image.Image

	// Fill color for filled glyph shapes; defaults to Color.
	Fill image.Image

	// Size of the glyph, with a default of 4dp.
	Size units.Value

	// Shape of the glyph.
	Shape PointShapes
}

func (ps *PointStyle) Defaults() {
	ps.Color = colors.Uniform(colors.Black)
	ps.Size.Dp(4)
}

// SetStroke sets the glyph stroke and fill in the graphics context,
// returning false if points are effectively off.
func (ps *PointStyle) SetStroke(g *Graphics) bool {
	if ps.Color == nil {
		return false
	}
	if ps.Size.ToDots(&g.PC.UnitContext) <= 0 {
		return false
	}
	g.PC.StrokeStyle.Color = ps.Color
	g.PC.StrokeStyle.Width.Dp(1)
	g.PC.FillStyle.Color = ps.Fill
	if ps.Fill == nil {
		g.PC.FillStyle.Color = ps.Color
	}
	return true
}

// PointShapes are the glyph shapes available for data points.
type PointShapes int32 //enums:enum

const (
	// Ring is the outline of a circle.
	Ring PointShapes = iota

	// Circle is a solid circle.
	Circle

	// Square is the outline of a square.
	Square

	// Box is a filled square.
	Box

	// Plus is a plus sign.
	Plus

	// Cross is a big X.
	Cross
)

// Draw draws the glyph at the given pixel position with the given size in
// dots. The stroke and fill styles must already be set.
func (s PointShapes) Draw(g *Graphics, pos math32.Vector2, size float32) {
	pc := g.PC
	x := size * 0.9
	switch s {
	case Ring:
		pc.DrawCircle(pos.X, pos.Y, size)
		pc.Stroke()
	case Circle:
		pc.DrawCircle(pos.X, pos.Y, size)
		pc.FillStrokeClear()
	case Square, Box:
		pc.MoveTo(pos.X-x, pos.Y-x)
		pc.LineTo(pos.X+x, pos.Y-x)
		pc.LineTo(pos.X+x, pos.Y+x)
		pc.LineTo(pos.X-x, pos.Y+x)
		pc.ClosePath()
		if s == Box {
			pc.FillStrokeClear()
		} else {
			pc.Stroke()
		}
	case Plus:
		x = size * 1.05
		pc.MoveTo(pos.X-x, pos.Y)
		pc.LineTo(pos.X+x, pos.Y)
		pc.MoveTo(pos.X, pos.Y-x)
		pc.LineTo(pos.X, pos.Y+x)
		pc.ClosePath()
		pc.Stroke()
	case Cross:
		pc.MoveTo(pos.X-x, pos.Y-x)
		pc.LineTo(pos.X+x, pos.Y+x)
		pc.MoveTo(pos.X+x, pos.Y-x)
		pc.LineTo(pos.X-x, pos.Y+x)
		pc.ClosePath()
		pc.Stroke()
	}
}

// checkData validates a data matrix: non-empty, with every row of the same
// width, either 2 or 3. It returns the dimension.
func checkData(data [][]float32) (int, error) {
	if len(data) == 0 {
		return 0, fmt.Errorf("plot: empty data")
	}
	dim := len(data[0])
	if dim != 2 && dim != 3 {
		return 0, fmt.Errorf("plot: invalid data dimension: %d", dim)
	}
	for i, row := range data {
		if len(row) != dim {
			return 0, fmt.Errorf("plot: row %d has %d values, want %d", i, len(row), dim)
		}
	}
	return dim, nil
}

// dataBounds returns the per-dimension min and max of a data matrix.
func dataBounds(data [][]float32) (lower, upper []float32) {
	dim := len(data[0])
	lower = make([]float32, dim)
	upper = make([]float32, dim)
	copy(lower, data[0])
	copy(upper, data[0])
	for _, row := range data[1:] {
		for i, v := range row {
			lower[i] = math32.Min(lower[i], v)
			upper[i] = math32.Max(upper[i], v)
		}
	}
	return lower, upper
}

// rowVector returns the data row as a Vector3, with Z zero for 2D rows.
func rowVector(row []float32) math32.Vector3 {
	v := math32.Vec3(row[0], row[1], 0)
	if len(row) > 2 {
		v.Z = row[2]
	}
	return v
}

// nearestPoint returns the index of the data point nearest to the 2D
// position at, if one lies within tol; otherwise -1. Only the first two
// dimensions are compared.
func nearestPoint(data [][]float32, at, tol math32.Vector2) int {
	best := -1
	bestd := float32(math32.Infinity)
	for i, row := range data {
		dx := math32.Abs(row[0]-at.X) / tol.X
		dy := math32.Abs(row[1]-at.Y) / tol.Y
		if dx > 1 || dy > 1 {
			continue
		}
		if d := dx*dx + dy*dy; d < bestd {
			bestd = d
			best = i
		}
	}
	return best
}
