// Copyright (c) 2026, The Smile Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
)

func TestNewBase(t *testing.T) {
	_, err := NewBase([]float32{0}, []float32{1}, false)
	assert.Error(t, err)

	_, err = NewBase([]float32{0, 0}, []float32{1}, false)
	assert.Error(t, err)

	_, err = NewBase([]float32{0, 2}, []float32{1, 1}, false)
	assert.Error(t, err)

	b, err := NewBase([]float32{0, 0, 0}, []float32{1, 2, 3}, false)
	assert.NoError(t, err)
	assert.Equal(t, 3, b.Dimension())
	assert.Equal(t, float32(2), b.Range(1))
	assert.Equal(t, float32(1.5), b.Center(2))
}

func TestBaseRounded(t *testing.T) {
	b, err := NewBase([]float32{0.23, 0.17}, []float32{9.77, 9.93}, true)
	assert.NoError(t, err)
	// precision unit is 0.1 for a range near 10
	assert.InDelta(t, 0.2, b.Lower[0], 1e-5)
	assert.InDelta(t, 9.8, b.Upper[0], 1e-5)
	assert.InDelta(t, 0.1, b.Lower[1], 1e-5)
	assert.InDelta(t, 10.0, b.Upper[1], 1e-5)
}

func TestZoomInverse(t *testing.T) {
	b, _ := NewBase([]float32{-3, 2}, []float32{5, 11}, false)
	lo, up := b.CopyBounds()

	b.Zoom(0.8)
	assert.Less(t, b.Range(0), up[0]-lo[0])
	b.Zoom(1 / 0.8)

	for i := range lo {
		assert.InDelta(t, lo[i], b.Lower[i], 1e-5)
		assert.InDelta(t, up[i], b.Upper[i], 1e-5)
	}
}

func TestZoomKeepsCenter(t *testing.T) {
	b, _ := NewBase([]float32{0, 0}, []float32{10, 4}, false)
	b.Zoom(2)
	assert.InDelta(t, 5, b.Center(0), 1e-6)
	assert.InDelta(t, 2, b.Center(1), 1e-6)
	assert.InDelta(t, 20, b.Range(0), 1e-5)
}

func TestPanAndReset(t *testing.T) {
	b, _ := NewBase([]float32{0, 0}, []float32{10, 10}, false)
	b.Pan(0, 3)
	b.Pan(1, -1.5)
	assert.Equal(t, float32(3), b.Lower[0])
	assert.Equal(t, float32(13), b.Upper[0])
	assert.Equal(t, float32(-1.5), b.Lower[1])

	b.Zoom(0.5)
	b.Reset()
	assert.Equal(t, []float32{0, 0}, b.Lower)
	assert.Equal(t, []float32{10, 10}, b.Upper)
}

func TestSetRange(t *testing.T) {
	b, _ := NewBase([]float32{0, 0}, []float32{10, 10}, false)
	assert.Error(t, b.SetRange(0, 5, 5))
	assert.Error(t, b.SetRange(0, 7, 2))
	assert.NoError(t, b.SetRange(0, 2, 7))
	assert.Equal(t, float32(2), b.Lower[0])
	assert.Equal(t, float32(7), b.Upper[0])
	// other dimension untouched
	assert.Equal(t, float32(10), b.Upper[1])
}

func TestZoomBox(t *testing.T) {
	b, _ := NewBase([]float32{0, 0}, []float32{10, 10}, false)

	// fully outside: rejected, bounds unchanged
	ok := b.ZoomBox(math32.Vec2(20, 20), math32.Vec2(30, 25))
	assert.False(t, ok)
	assert.Equal(t, float32(10), b.Upper[0])

	// degenerate rectangles inside the window: rejected, so a dimension can
	// never collapse to lower == upper
	assert.False(t, b.ZoomBox(math32.Vec2(5, 3), math32.Vec2(5, 7)))
	assert.False(t, b.ZoomBox(math32.Vec2(3, 5), math32.Vec2(7, 5)))
	assert.False(t, b.ZoomBox(math32.Vec2(5, 5), math32.Vec2(5, 5)))
	assert.Equal(t, []float32{0, 0}, b.Lower)
	assert.Equal(t, []float32{10, 10}, b.Upper)

	// straddling: clipped to the current window
	ok = b.ZoomBox(math32.Vec2(-5, 2), math32.Vec2(4, 20))
	assert.True(t, ok)
	assert.Equal(t, float32(0), b.Lower[0])
	assert.Equal(t, float32(4), b.Upper[0])
	assert.Equal(t, float32(2), b.Lower[1])
	assert.Equal(t, float32(10), b.Upper[1])

	for i := range b.Lower {
		assert.Less(t, b.Lower[i], b.Upper[i])
	}
}

func TestExtendBound(t *testing.T) {
	b, _ := NewBase([]float32{0, 0}, []float32{10, 10}, false)
	b.ExtendBound([]float32{2, -3}, []float32{8, 12})
	// extension only grows the window
	assert.Equal(t, float32(0), b.Lower[0])
	assert.Equal(t, float32(10), b.Upper[0])
	assert.Equal(t, float32(-3), b.Lower[1])
	assert.Equal(t, float32(12), b.Upper[1])
}

func TestContains(t *testing.T) {
	b, _ := NewBase([]float32{0, 0}, []float32{10, 10}, false)
	assert.True(t, b.Contains([]float32{5, 5}))
	assert.False(t, b.Contains([]float32{5, 11}))
}
