// Copyright (c) 2026, The Smile Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"fmt"
	"image"

	"cogentcore.org/core/math32"
)

// Line is a line plot through a sequence of 2D or 3D data points,
// optionally drawing a glyph at each point.
type Line struct {

	// Line is the style of the connecting line. Set Color to nil to draw
	// points only.
	Line LineStyle

	// Point is the style of the per-point glyphs. Points are off unless
	// Point.Color is set.
	Point PointStyle

	name string
	data [][]float32
	dim  int
}

// NewLine returns a line plot through the given data points, one row per
// point with 2 or 3 columns.
func NewLine(data [][]float32) (*Line, error) {
	dim, err := checkData(data)
	if err != nil {
		return nil, err
	}
	ln := &Line{data: data, dim: dim}
	ln.Line.Defaults()
	ln.Point.Defaults()
	ln.Point.Color = nil
	return ln, nil
}

// SetName sets the name shown in the legend.
func (ln *Line) SetName(name string) *Line {
	ln.name = name
	return ln
}

func (ln *Line) Name() string { return ln.name }

func (ln *Line) LegendColor() image.Image { return ln.Line.Color }

// Bounds returns the per-dimension data bounds.
func (ln *Line) Bounds() (lower, upper []float32) {
	return dataBounds(ln.data)
}

// Paint draws the connecting line and then the point glyphs.
func (ln *Line) Paint(g *Graphics) {
	if ln.Line.SetStroke(g) {
		pts := make([]math32.Vector3, len(ln.data))
		for i := range ln.data {
			pts[i] = rowVector(ln.data[i])
		}
		g.DrawPolyline(pts)
	}
	if ln.Point.Color != nil && ln.Point.SetStroke(g) {
		sz := ln.Point.Size.Dots
		for i := range ln.data {
			ln.Point.Shape.Draw(g, g.Project(rowVector(ln.data[i])), sz)
		}
	}
}

// Tooltip returns the coordinates of the data point within tol of at.
func (ln *Line) Tooltip(at, tol math32.Vector2) (string, bool) {
	i := nearestPoint(ln.data, at, tol)
	if i < 0 {
		return "", false
	}
	return pointTooltip(ln.name, ln.data[i]), true
}

// pointTooltip formats a tooltip for the given data row.
func pointTooltip(name string, row []float32) string {
	s := ""
	if name != "" {
		s = name + ": "
	}
	s += fmt.Sprintf("(%g, %g", row[0], row[1])
	if len(row) > 2 {
		s += fmt.Sprintf(", %g", row[2])
	}
	return s + ")"
}
