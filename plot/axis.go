// Copyright (c) 2026, The Smile Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"fmt"
	"strconv"

	"cogentcore.org/core/math32"
)

// Tick is a single tick mark on an axis: a data-space value and the label
// drawn next to it.
type Tick struct {

	// Value is the data-space coordinate of the tick along its axis.
	Value float32

	// Label is the text drawn at the tick.
	Label string
}

// Axis is one dimension of a plot [Grid]: an optional label plus the tick
// marks generated from the current [Base] bounds. User-supplied tick labels
// set with [Axis.AddLabels] take precedence over the generated ones.
type Axis struct {

	// Label is the axis label (legend), drawn along the axis.
	Label string

	// dim is the Base dimension this axis represents.
	dim int

	// ticks are the generated tick marks, updated from the base bounds.
	ticks []Tick

	// userTicks are explicit tick labels that override the generated ones.
	userTicks []Tick
}

func newAxis(dim int, label string) *Axis {
	return &Axis{Label: label, dim: dim}
}

// tickUnit returns the spacing between ticks for the given range, chosen so
// that between 2 and 10 ticks fit: a power of ten, scaled down by 2 or 5
// when too few multiples fit.
func tickUnit(r float32) float32 {
	u := math32.Pow(10, math32.Floor(math32.Log10(r)))
	switch n := r / u; {
	case n < 2:
		u /= 5
	case n < 5:
		u /= 2
	}
	return u
}

// update regenerates the tick marks from the given base bounds.
func (ax *Axis) update(b *Base) {
	lo, hi := b.Lower[ax.dim], b.Upper[ax.dim]
	r := hi - lo
	if r <= 0 {
		ax.ticks = nil
		return
	}
	u := tickUnit(r)
	decimals := 0
	if e := -math32.Floor(math32.Log10(u)); e > 0 {
		decimals = int(e)
	}
	ax.ticks = ax.ticks[:0]
	for v := u * math32.Ceil(lo/u); v <= hi+u*1e-4; v += u {
		if math32.Abs(v) < u*1e-4 {
			v = 0 // avoid -0 and epsilon noise at the origin
		}
		ax.ticks = append(ax.ticks, Tick{
			Value: v,
			Label: strconv.FormatFloat(float64(v), 'f', decimals, 32),
		})
	}
}

// Slices returns the number of tick intervals the current range is divided
// into, always at least 1.
func (ax *Axis) Slices() int {
	if len(ax.ticks) > 1 {
		return len(ax.ticks) - 1
	}
	return 1
}

// Ticks returns the current tick marks: the user-supplied labels when set,
// otherwise the generated ones.
func (ax *Axis) Ticks() []Tick {
	if len(ax.userTicks) > 0 {
		return ax.userTicks
	}
	return ax.ticks
}

// AddLabels sets explicit tick labels at the given data-space values,
// replacing the generated tick marks for this axis.
func (ax *Axis) AddLabels(labels []string, values []float32) error {
	if len(labels) != len(values) {
		return fmt.Errorf("plot.Axis.AddLabels: %d labels for %d values", len(labels), len(values))
	}
	ax.userTicks = make([]Tick, len(labels))
	for i, l := range labels {
		ax.userTicks[i] = Tick{Value: values[i], Label: l}
	}
	return nil
}
