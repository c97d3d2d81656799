// Copyright (c) 2026, The Smile Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"fmt"

	"cogentcore.org/core/math32"
)

// Label is a text annotation anchored at a data-space position.
type Label struct {

	// Text is the label text and its style.
	Text Text

	// At is the data-space anchor position, with 2 or 3 coordinates.
	At []float32
}

// NewLabel returns a text label centered at the given data-space position,
// which must have 2 or 3 coordinates.
func NewLabel(text string, at ...float32) (*Label, error) {
	if len(at) != 2 && len(at) != 3 {
		return nil, fmt.Errorf("plot.NewLabel: invalid anchor dimension: %d", len(at))
	}
	lb := &Label{At: at}
	lb.Text.Text = text
	lb.Text.Defaults()
	return lb, nil
}

// Paint draws the label centered on its anchor.
func (lb *Label) Paint(g *Graphics) {
	lb.Text.Config(g)
	pos := g.Project(rowVector(lb.At))
	sz := lb.Text.Size()
	lb.Text.Draw(g, math32.Vec2(pos.X-0.5*sz.X, pos.Y-0.5*sz.Y))
}
