// Copyright (c) 2026, The Smile Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotcanvas

import (
	"testing"

	"cogentcore.org/core/core"
	"cogentcore.org/core/math32/minmax"
	"github.com/stretchr/testify/assert"

	"github.com/paulk-asert/smile/plot"
)

func newTestCanvas(t *testing.T) (*core.Body, *Canvas) {
	b := core.NewBody()
	cv := NewCanvas(b)
	assert.NoError(t, cv.SetBase([]float32{0, 0}, []float32{10, 10}, false))
	return b, cv
}

func TestCanvasRender(t *testing.T) {
	b, cv := newTestCanvas(t)
	cv.Title = "Gaussian mixture"

	sc, err := plot.NewScatter([][]float32{{1, 2}, {3, 5}, {7, 4}, {8, 8}})
	assert.NoError(t, err)
	cv.AddShape(sc.SetName("samples"))

	b.AddAppBar(cv.MakeToolbar)
	b.AssertRender(t, "canvas")
}

func TestCanvasMargin(t *testing.T) {
	_, cv := newTestCanvas(t)
	assert.Error(t, cv.SetMargin(-0.1))
	assert.Error(t, cv.SetMargin(0.3))
	assert.Error(t, cv.SetMargin(0.5))
	assert.NoError(t, cv.SetMargin(0))
	assert.NoError(t, cv.SetMargin(0.25))
	assert.Equal(t, float32(0.25), cv.Margin())
}

func TestCanvasShapes(t *testing.T) {
	_, cv := newTestCanvas(t)
	sc, _ := plot.NewScatter([][]float32{{2, 2}, {14, 3}})
	ln, _ := plot.NewLine([][]float32{{0, 0}, {5, 5}})

	cv.AddShape(sc)
	// bounds extend to cover the new data
	assert.Equal(t, float32(14), cv.Base().Upper[0])

	cv.AddShape(ln)
	assert.Equal(t, 2, len(cv.Shapes()))

	cv.RemoveShape(ln)
	assert.Equal(t, []plot.Shape{sc}, cv.Shapes())

	cv.ClearShapes()
	assert.Empty(t, cv.Shapes())
}

func TestCanvasAddPlot(t *testing.T) {
	b := core.NewBody()
	cv := NewCanvas(b)
	sc, _ := plot.NewScatter([][]float32{{1, 1}, {9.3, 8.7}})
	assert.NoError(t, cv.AddPlot(sc))
	// base created from the data, rounded outward
	assert.NotNil(t, cv.Base())
	assert.LessOrEqual(t, cv.Base().Lower[0], float32(1))
	assert.GreaterOrEqual(t, cv.Base().Upper[0], float32(9.3))
}

func TestCanvasZoomInvertible(t *testing.T) {
	_, cv := newTestCanvas(t)
	lo, up := cv.Base().CopyBounds()
	cv.ZoomIn()
	cv.ZoomOut()
	for i := range lo {
		assert.InDelta(t, lo[i], cv.Base().Lower[i], 1e-5)
		assert.InDelta(t, up[i], cv.Base().Upper[i], 1e-5)
	}
}

func TestCanvasResetView(t *testing.T) {
	_, cv := newTestCanvas(t)
	cv.ZoomIn()
	cv.Base().Pan(0, 2)
	cv.ResetView()
	assert.Equal(t, []float32{0, 0}, cv.Base().Lower)
	assert.Equal(t, []float32{10, 10}, cv.Base().Upper)
}

func TestCanvasAxisLabels(t *testing.T) {
	_, cv := newTestCanvas(t)
	assert.Equal(t, []string{"X", "Y"}, cv.AxisLabels())
	assert.NoError(t, cv.SetAxisLabels("sepal length", "sepal width"))
	assert.Equal(t, []string{"sepal length", "sepal width"}, cv.AxisLabels())
	assert.Error(t, cv.SetAxisLabels("a", "b", "c"))
}

func TestApplyProperties(t *testing.T) {
	_, cv := newTestCanvas(t)
	p := cv.properties()
	assert.Equal(t, float32(0), p.XAxisRange.Min)
	assert.Equal(t, float32(10), p.XAxisRange.Max)

	p.Title = "Iris"
	p.XAxisLabel = "petal length"
	p.XAxisRange = minmax.F32{Min: 2, Max: 8}
	assert.NoError(t, cv.applyProperties(&p))
	assert.Equal(t, "Iris", cv.Title)
	assert.Equal(t, "petal length", cv.AxisLabels()[0])
	assert.Equal(t, float32(2), cv.Base().Lower[0])
	assert.Equal(t, float32(8), cv.Base().Upper[0])

	// invalid range is rejected and nothing changes
	p.YAxisRange = minmax.F32{Min: 5, Max: 5}
	assert.Error(t, cv.applyProperties(&p))
	assert.Equal(t, float32(2), cv.Base().Lower[0])
	assert.Equal(t, float32(10), cv.Base().Upper[1])
}

func TestCanvas3D(t *testing.T) {
	b := core.NewBody()
	cv := NewCanvas(b)
	assert.NoError(t, cv.SetBase([]float32{0, 0, 0}, []float32{1, 1, 1}, false))
	assert.Equal(t, []string{"X", "Y", "Z"}, cv.AxisLabels())

	p := cv.properties()
	assert.Equal(t, float32(1), p.ZAxisRange.Max)
	p.ZAxisRange = minmax.F32{Min: -1, Max: 2}
	assert.NoError(t, cv.applyProperties(&p))
	assert.Equal(t, float32(-1), cv.Base().Lower[2])
}

func TestSetBaseErrors(t *testing.T) {
	b := core.NewBody()
	cv := NewCanvas(b)
	assert.Error(t, cv.SetBase([]float32{0}, []float32{1}, false))
	assert.Error(t, cv.SetBase([]float32{0, 2}, []float32{1, 1}, false))
	assert.Nil(t, cv.Base())
}
