// Copyright (c) 2026, The Smile Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"image"

	"cogentcore.org/core/math32"
	"cogentcore.org/core/paint"
	"cogentcore.org/core/styles"
)

// Graphics is the rendering context passed to shapes: a [paint.Context]
// plus the active [Projection] mapping data space onto it. Shapes draw
// through the projection with the data-space helpers here, or directly on
// PC in pixel space.
type Graphics struct {

	// PC is the underlying paint context; its image is the render target.
	PC *paint.Context

	// Proj is the active projection for the current render pass.
	Proj Projection

	// Base is the coordinate base being rendered.
	Base *Base

	// StdTextStyle is the base text layout style used by [Text.Config].
	StdTextStyle styles.Text

	size   math32.Vector2
	margin float32
}

// NewGraphics returns a Graphics rendering through proj onto pc,
// with the given fractional margin.
func NewGraphics(pc *paint.Context, b *Base, proj Projection, margin float32) *Graphics {
	g := &Graphics{PC: pc, Base: b, Proj: proj, margin: margin}
	sz := pc.Image.Rect.Size()
	g.size = math32.Vec2(float32(sz.X), float32(sz.Y))
	g.StdTextStyle.Defaults()
	g.StdTextStyle.WhiteSpace = styles.WhiteSpaceNowrap
	proj.Resize(g.size, margin)
	return g
}

// Size returns the pixel size of the render target.
func (g *Graphics) Size() math32.Vector2 { return g.size }

// Margin returns the fractional margin inset.
func (g *Graphics) Margin() float32 { return g.margin }

// PlotArea returns the pixel rectangle inside the margins.
func (g *Graphics) PlotArea() math32.Box2 {
	return math32.Box2{
		Min: g.size.MulScalar(g.margin),
		Max: g.size.MulScalar(1 - g.margin),
	}
}

// Project maps a data-space point to pixel coordinates.
func (g *Graphics) Project(p math32.Vector3) math32.Vector2 {
	return g.Proj.Project(p)
}

// SetStroke sets the stroke color and width (in dots) for following draws.
func (g *Graphics) SetStroke(clr image.Image, width float32) {
	g.PC.StrokeStyle.Color = clr
	g.PC.StrokeStyle.Width.Dot(width)
}

// DrawSegment strokes a straight line between two data-space points.
func (g *Graphics) DrawSegment(a, b math32.Vector3) {
	pa, pb := g.Project(a), g.Project(b)
	g.PC.MoveTo(pa.X, pa.Y)
	g.PC.LineTo(pb.X, pb.Y)
	g.PC.Stroke()
}

// DrawPolyline strokes a connected line through the data-space points.
func (g *Graphics) DrawPolyline(points []math32.Vector3) {
	if len(points) < 2 {
		return
	}
	p0 := g.Project(points[0])
	g.PC.MoveTo(p0.X, p0.Y)
	for _, p := range points[1:] {
		pp := g.Project(p)
		g.PC.LineTo(pp.X, pp.Y)
	}
	g.PC.Stroke()
}

// ClipPlotArea clips subsequent drawing to the plot area inside the margins,
// so shapes do not spill into the axis region. Pair with ClearClip.
func (g *Graphics) ClipPlotArea() {
	pa := g.PlotArea()
	sz := pa.Size()
	g.PC.DrawRectangle(pa.Min.X, pa.Min.Y, sz.X, sz.Y)
	g.PC.Clip()
}

// ClearClip removes the plot-area clip.
func (g *Graphics) ClearClip() {
	g.PC.ResetClip()
}
