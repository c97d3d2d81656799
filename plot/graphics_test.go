// Copyright (c) 2026, The Smile Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"testing"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/paint"
	"github.com/stretchr/testify/assert"
)

func newTestGraphics(t *testing.T, b *Base) *Graphics {
	pc := paint.NewContext(100, 100)
	pc.PushBounds(pc.Image.Rect)
	var pj Projection
	if b.Dimension() == 2 {
		pj = NewProjection2D(b)
	} else {
		pj = NewProjection3D(b)
	}
	g := NewGraphics(pc, b, pj, 0.1)
	assert.Equal(t, math32.Vec2(100, 100), g.Size())
	return g
}

// paintedPixels counts pixels touched by drawing.
func paintedPixels(g *Graphics) int {
	n := 0
	img := g.PC.Image
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0 {
			n++
		}
	}
	return n
}

func TestGraphicsDrawSegment(t *testing.T) {
	b, _ := NewBase([]float32{0, 0}, []float32{10, 10}, false)
	g := newTestGraphics(t, b)

	g.SetStroke(colors.Uniform(colors.Black), 2)
	g.DrawSegment(math32.Vec3(0, 0, 0), math32.Vec3(10, 10, 0))
	assert.Greater(t, paintedPixels(g), 0)
}

func TestGraphicsDrawPolyline(t *testing.T) {
	b, _ := NewBase([]float32{0, 0}, []float32{10, 10}, false)
	g := newTestGraphics(t, b)

	g.SetStroke(colors.Uniform(colors.Black), 1)
	g.DrawPolyline([]math32.Vector3{{X: 1, Y: 1}, {X: 5, Y: 9}, {X: 9, Y: 2}})
	assert.Greater(t, paintedPixels(g), 0)

	// fewer than two points draws nothing
	g2 := newTestGraphics(t, b)
	g2.SetStroke(colors.Uniform(colors.Black), 1)
	g2.DrawPolyline([]math32.Vector3{{X: 5, Y: 5}})
	assert.Equal(t, 0, paintedPixels(g2))
}

func TestLinePaint(t *testing.T) {
	b, _ := NewBase([]float32{0, 0}, []float32{10, 10}, false)
	g := newTestGraphics(t, b)

	ln, err := NewLine([][]float32{{1, 1}, {5, 8}, {9, 3}})
	assert.NoError(t, err)
	ln.Paint(g)
	assert.Greater(t, paintedPixels(g), 0)
}

func TestScatterPaint(t *testing.T) {
	b, _ := NewBase([]float32{0, 0}, []float32{10, 10}, false)
	g := newTestGraphics(t, b)

	sc, err := NewScatter([][]float32{{2, 2}, {8, 8}})
	assert.NoError(t, err)
	sc.Point.Shape = Circle
	sc.Paint(g)
	assert.Greater(t, paintedPixels(g), 0)
}

func TestClipPlotArea(t *testing.T) {
	b, _ := NewBase([]float32{0, 0}, []float32{10, 10}, false)
	g := newTestGraphics(t, b)

	pa := g.PlotArea()
	assert.Equal(t, math32.Vec2(10, 10), pa.Min)
	assert.Equal(t, math32.Vec2(90, 90), pa.Max)

	// a segment stroked entirely outside the bounds is clipped away
	g.ClipPlotArea()
	g.SetStroke(colors.Uniform(colors.Black), 2)
	g.PC.DrawLine(0, 2, 100, 2)
	g.PC.Stroke()
	g.ClearClip()
	assert.Equal(t, 0, paintedPixels(g))
}
