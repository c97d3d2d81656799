// Copyright (c) 2026, The Smile Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/core/paint"
	"cogentcore.org/core/styles"
)

// DefaultFontFamily specifies a default font for plotting.
// If not set, the standard Cogent Core default font is used.
var DefaultFontFamily = ""

// TextStyle specifies styling parameters for text elements.
type TextStyle struct {
	styles.FontRender

	// Align specifies how to align the text along the relevant dimension.
	Align styles.Aligns

	// Rotation of the text, in degrees.
	Rotation float32
}

func (ts *TextStyle) Defaults() {
	ts.FontRender.Defaults()
	if DefaultFontFamily != "" {
		ts.FontRender.Family = DefaultFontFamily
	}
}

// Text is a single text element: a string plus its styling and layout state.
type Text struct {

	// Text is the string to render; it can use HTML formatting.
	Text string

	// Style is the styling for this text element.
	Style TextStyle

	// paintText is the layout and render state.
	paintText paint.Text
}

func (tx *Text) Defaults() {
	tx.Style.Defaults()
}

// Config lays the text out for the given graphics context.
// It must be called before Draw or Size.
func (tx *Text) Config(g *Graphics) {
	fs := &tx.Style.FontRender
	txln := float32(len(tx.Text))
	fht := float32(16)
	hsz := float32(12) * txln
	if fs.Face != nil {
		fht = fs.Face.Metrics.Height
		hsz = 0.75 * fht * txln
	}
	txs := &g.StdTextStyle
	txs.OrientationHoriz = tx.Style.Rotation
	txs.Align = tx.Style.Align

	tx.paintText.SetHTML(tx.Text, fs, txs, &g.PC.UnitContext, nil)
	tx.paintText.Layout(txs, fs, &g.PC.UnitContext, math32.Vec2(hsz, fht))
}

// Size returns the laid-out size of the text. Valid after Config.
func (tx *Text) Size() math32.Vector2 {
	return tx.paintText.BBox.Size()
}

// Draw renders the text with its upper left corner at the given pixel
// position. Config must have been called.
func (tx *Text) Draw(g *Graphics, pos math32.Vector2) {
	tx.paintText.Render(g.PC, pos)
}
