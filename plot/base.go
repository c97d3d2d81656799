// Copyright (c) 2026, The Smile Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plot provides the view-state model and projection math for
// interactive 2D and 3D mathematical plots: the coordinate [Base] holding
// the visible data window, [Axis] tick generation, [Projection2D] and
// [Projection3D] data-to-pixel mapping, and drawable [Shape]s such as
// [Line], [Scatter], and [Label]. It is independent of any widget; see
// [github.com/paulk-asert/smile/plot/plotcanvas] for the interactive
// Cogent Core widget built on top of it.
package plot

//go:generate core generate

import (
	"fmt"
	"slices"

	"cogentcore.org/core/math32"
)

// Base is the coordinate base of a plot: the per-dimension [lower, upper]
// data-space window currently visible. A Base has either 2 or 3 dimensions.
// All operations preserve the invariant Lower[i] < Upper[i].
type Base struct {

	// Lower is the lower bound of the visible window, per dimension.
	Lower []float32

	// Upper is the upper bound of the visible window, per dimension.
	Upper []float32

	// originally constructed bounds, restored by [Base.Reset].
	origLower, origUpper []float32

	// precision is the tick precision unit per dimension, kept in sync
	// with the current range.
	precision []float32

	// rounded bounds are rounded outward to the precision unit whenever
	// they are extended.
	rounded bool
}

// NewBase returns a new coordinate base with the given per-dimension lower
// and upper bounds. Only 2 and 3 dimensional bases are supported. If rounded
// is true, the bounds are rounded outward to the precision unit, at
// construction and whenever they are extended.
func NewBase(lower, upper []float32, rounded bool) (*Base, error) {
	if len(lower) != len(upper) {
		return nil, fmt.Errorf("plot.NewBase: mismatched bound lengths: %d != %d", len(lower), len(upper))
	}
	if len(lower) != 2 && len(lower) != 3 {
		return nil, fmt.Errorf("plot.NewBase: invalid dimension: %d", len(lower))
	}
	for i := range lower {
		if lower[i] >= upper[i] {
			return nil, fmt.Errorf("plot.NewBase: invalid bounds for dimension %d: [%g, %g]", i, lower[i], upper[i])
		}
	}
	b := &Base{
		Lower:     slices.Clone(lower),
		Upper:     slices.Clone(upper),
		precision: make([]float32, len(lower)),
		rounded:   rounded,
	}
	for i := range b.Lower {
		b.setPrecision(i)
		if rounded {
			b.roundBound(i)
		}
	}
	b.origLower = slices.Clone(b.Lower)
	b.origUpper = slices.Clone(b.Upper)
	return b, nil
}

// Dimension returns the number of dimensions, 2 or 3.
func (b *Base) Dimension() int { return len(b.Lower) }

// Range returns the extent Upper - Lower of the given dimension.
func (b *Base) Range(dim int) float32 { return b.Upper[dim] - b.Lower[dim] }

// Center returns the midpoint of the given dimension.
func (b *Base) Center(dim int) float32 { return 0.5 * (b.Lower[dim] + b.Upper[dim]) }

// Precision returns the tick precision unit of the given dimension.
func (b *Base) Precision(dim int) float32 { return b.precision[dim] }

// setPrecision recomputes the precision unit of dim from the current range.
func (b *Base) setPrecision(dim int) {
	r := b.Range(dim)
	if r <= 0 {
		b.precision[dim] = 0.1
		return
	}
	b.precision[dim] = math32.Pow(10, math32.Floor(math32.Log10(r))-1)
}

// roundBound rounds the bounds of dim outward to the precision unit.
func (b *Base) roundBound(dim int) {
	p := b.precision[dim]
	b.Lower[dim] = p * math32.Floor(b.Lower[dim]/p)
	b.Upper[dim] = p * math32.Ceil(b.Upper[dim]/p)
}

// SetRange sets the bounds of one dimension, rejecting an empty or inverted
// range.
func (b *Base) SetRange(dim int, lower, upper float32) error {
	if lower >= upper {
		return fmt.Errorf("plot.Base.SetRange: invalid range for dimension %d: [%g, %g]", dim, lower, upper)
	}
	b.Lower[dim] = lower
	b.Upper[dim] = upper
	b.setPrecision(dim)
	return nil
}

// Scale scales the range of one dimension about its center by the given
// factor: < 1 zooms in, > 1 zooms out. Scaling by f and then by 1/f restores
// the bounds exactly, up to floating point rounding.
func (b *Base) Scale(dim int, factor float32) {
	c := b.Center(dim)
	h := 0.5 * b.Range(dim) * factor
	b.Lower[dim] = c - h
	b.Upper[dim] = c + h
	b.setPrecision(dim)
}

// Zoom scales all dimensions about their centers by the given factor.
func (b *Base) Zoom(factor float32) {
	for i := range b.Lower {
		b.Scale(i, factor)
	}
}

// Pan shifts the bounds of one dimension by delta data units.
func (b *Base) Pan(dim int, delta float32) {
	b.Lower[dim] += delta
	b.Upper[dim] += delta
}

// ZoomBox rescales the first two dimensions to the rectangle spanned by the
// two given data-space corners, clipped to the current bounds. It reports
// whether the rectangle was accepted; degenerate rectangles and rectangles
// that do not intersect the current window are rejected with the bounds
// unchanged, preserving lower < upper.
func (b *Base) ZoomBox(p0, p1 math32.Vector2) bool {
	lo := math32.Vec2(math32.Min(p0.X, p1.X), math32.Min(p0.Y, p1.Y))
	hi := math32.Vec2(math32.Max(p0.X, p1.X), math32.Max(p0.Y, p1.Y))
	if lo.X >= hi.X || lo.Y >= hi.Y {
		return false
	}
	if lo.X >= b.Upper[0] || hi.X <= b.Lower[0] || lo.Y >= b.Upper[1] || hi.Y <= b.Lower[1] {
		return false
	}
	b.Lower[0] = math32.Max(b.Lower[0], lo.X)
	b.Upper[0] = math32.Min(b.Upper[0], hi.X)
	b.Lower[1] = math32.Max(b.Lower[1], lo.Y)
	b.Upper[1] = math32.Min(b.Upper[1], hi.Y)
	b.setPrecision(0)
	b.setPrecision(1)
	return true
}

// ExtendLowerBound extends the lower bounds downward to include the given
// point, leaving dimensions where the point is already inside untouched.
func (b *Base) ExtendLowerBound(bound []float32) {
	n := min(len(bound), len(b.Lower))
	for i := 0; i < n; i++ {
		if bound[i] < b.Lower[i] {
			b.Lower[i] = bound[i]
			b.setPrecision(i)
			if b.rounded {
				b.roundBound(i)
			}
		}
	}
}

// ExtendUpperBound extends the upper bounds upward to include the given
// point, leaving dimensions where the point is already inside untouched.
func (b *Base) ExtendUpperBound(bound []float32) {
	n := min(len(bound), len(b.Upper))
	for i := 0; i < n; i++ {
		if bound[i] > b.Upper[i] {
			b.Upper[i] = bound[i]
			b.setPrecision(i)
			if b.rounded {
				b.roundBound(i)
			}
		}
	}
}

// ExtendBound extends the bounds in both directions to include the given
// lower and upper points.
func (b *Base) ExtendBound(lower, upper []float32) {
	b.ExtendLowerBound(lower)
	b.ExtendUpperBound(upper)
}

// Reset restores the bounds to the originally constructed values.
func (b *Base) Reset() {
	copy(b.Lower, b.origLower)
	copy(b.Upper, b.origUpper)
	for i := range b.Lower {
		b.setPrecision(i)
	}
}

// CopyBounds returns an independent snapshot of the current bounds,
// used as the backup reference while panning.
func (b *Base) CopyBounds() (lower, upper []float32) {
	return slices.Clone(b.Lower), slices.Clone(b.Upper)
}

// Contains reports whether the given data-space point is inside the
// visible window in every dimension it provides.
func (b *Base) Contains(p []float32) bool {
	n := min(len(p), len(b.Lower))
	for i := 0; i < n; i++ {
		if p[i] < b.Lower[i] || p[i] > b.Upper[i] {
			return false
		}
	}
	return true
}
