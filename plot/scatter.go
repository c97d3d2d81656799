// Copyright (c) 2026, The Smile Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"image"

	"cogentcore.org/core/math32"
)

// Scatter draws a glyph at each 2D or 3D data point.
type Scatter struct {

	// Point is the style of the glyphs.
	Point PointStyle

	name string
	data [][]float32
	dim  int
}

// NewScatter returns a scatter plot of the given data points, one row per
// point with 2 or 3 columns.
func NewScatter(data [][]float32) (*Scatter, error) {
	dim, err := checkData(data)
	if err != nil {
		return nil, err
	}
	sc := &Scatter{data: data, dim: dim}
	sc.Point.Defaults()
	return sc, nil
}

// SetName sets the name shown in the legend.
func (sc *Scatter) SetName(name string) *Scatter {
	sc.name = name
	return sc
}

func (sc *Scatter) Name() string { return sc.name }

func (sc *Scatter) LegendColor() image.Image { return sc.Point.Color }

// Bounds returns the per-dimension data bounds.
func (sc *Scatter) Bounds() (lower, upper []float32) {
	return dataBounds(sc.data)
}

// Paint draws the point glyphs.
func (sc *Scatter) Paint(g *Graphics) {
	if !sc.Point.SetStroke(g) {
		return
	}
	sz := sc.Point.Size.Dots
	for i := range sc.data {
		sc.Point.Shape.Draw(g, g.Project(rowVector(sc.data[i])), sz)
	}
}

// Tooltip returns the coordinates of the data point within tol of at.
func (sc *Scatter) Tooltip(at, tol math32.Vector2) (string, bool) {
	i := nearestPoint(sc.data, at, tol)
	if i < 0 {
		return "", false
	}
	return pointTooltip(sc.name, sc.data[i]), true
}
