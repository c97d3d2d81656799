// Copyright (c) 2026, The Smile Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plotcanvas provides an interactive Cogent Core widget for
// mathematical plots: 2D and 3D scatter and line plots with pan, zoom,
// rotation, tooltips, a toolbar and context menu, image export, printing,
// and an editable property dialog.
package plotcanvas

//go:generate core generate

import (
	"fmt"
	"image"
	"image/draw"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/core"
	"cogentcore.org/core/cursors"
	"cogentcore.org/core/events"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/paint"
	"cogentcore.org/core/styles"
	"cogentcore.org/core/styles/abilities"
	"cogentcore.org/core/styles/states"
	"cogentcore.org/core/styles/units"
	"cogentcore.org/core/tree"

	"github.com/paulk-asert/smile/plot"
)

// zoomStep is the bounds scale factor for one zoom-out step (wheel notch or
// toolbar click); a zoom-in step uses its reciprocal, so the two are exact
// inverses.
const zoomStep = 1.25

// sizeStep is the width or height increment for the resize actions, in dp.
const sizeStep = 100

// minCanvasSize is the smallest the resize actions will shrink the canvas
// to, in dp.
const minCanvasSize = 200

// Canvas is a widget that renders an interactive mathematical plot: a
// coordinate [plot.Base] with its [plot.Grid], plus an ordered list of
// [plot.Shape] items drawn over it. The user can zoom with the mouse wheel,
// drag a rectangle to zoom into it (2D), drag to rotate the view (3D), and
// pan after a double click. A right click opens the context menu with the
// same actions as [Canvas.MakeToolbar].
type Canvas struct {
	core.WidgetBase

	// Title is shown centered above the plot area; empty for no title.
	Title string

	// TitleStyle is the font styling of the title.
	TitleStyle plot.TextStyle

	grid   *plot.Grid
	base   *plot.Base
	proj   plot.Projection
	shapes []plot.Shape
	margin float32

	// minSize is the styled minimum widget size in dp, adjusted by the
	// resize actions.
	minSize math32.Vector2

	// pc renders the plot image that Render blits to the scene.
	pc *paint.Context

	// rubber-band selection state (2D drag)
	selecting              bool
	selectStart, selectEnd math32.Vector2

	// pan state after a double click (2D)
	panning            bool
	panAnchor          math32.Vector2
	panLower, panUpper []float32
}

// NewCanvas returns a new [Canvas] with the given optional parent.
func NewCanvas(parent ...tree.Node) *Canvas {
	return tree.New[Canvas](parent...)
}

func (cv *Canvas) Init() {
	cv.WidgetBase.Init()
	cv.margin = Current.Margin
	cv.TitleStyle.Defaults()
	cv.TitleStyle.Size.Dp(20)
	cv.minSize = math32.Vec2(600, 600)

	cv.Styler(func(s *styles.Style) {
		s.Min.Set(units.Dp(cv.minSize.X), units.Dp(cv.minSize.Y))
		ro := cv.IsReadOnly()
		s.SetAbilities(!ro, abilities.Slideable, abilities.Activatable, abilities.Scrollable)
		if !ro {
			if s.Is(states.Active) {
				s.Cursor = cursors.Grabbing
				s.StateLayer = 0
			} else {
				s.Cursor = cursors.Grab
			}
		}
	})
	cv.AddContextMenu(cv.contextMenu)

	cv.On(events.SlideStart, func(e events.Event) {
		if cv.base == nil {
			return
		}
		e.SetHandled()
		cv.panning = false
		if cv.base.Dimension() == 2 {
			p := cv.localPos(e.Pos())
			cv.selecting = true
			cv.selectStart = p
			cv.selectEnd = p
		}
	})
	cv.On(events.SlideMove, func(e events.Event) {
		if cv.base == nil {
			return
		}
		e.SetHandled()
		if pj, ok := cv.proj.(*plot.Projection3D); ok {
			del := e.PrevDelta()
			pj.Rotate(float32(del.X), -float32(del.Y))
			cv.updatePlot()
			return
		}
		if cv.selecting {
			cv.selectEnd = cv.localPos(e.Pos())
			cv.updatePlot()
		}
	})
	cv.On(events.SlideStop, func(e events.Event) {
		if !cv.selecting {
			return
		}
		e.SetHandled()
		cv.selecting = false
		d := cv.selectEnd.Sub(cv.selectStart)
		th := float32(Current.DragThreshold)
		if math32.Abs(d.X) < th || math32.Abs(d.Y) < th {
			cv.updatePlot()
			return
		}
		pj := cv.proj.(*plot.Projection2D)
		p0 := pj.Inverse(cv.selectStart.X, cv.selectStart.Y)
		p1 := pj.Inverse(cv.selectEnd.X, cv.selectEnd.Y)
		if cv.base.ZoomBox(p0, p1) {
			cv.grid.Update()
		}
		cv.updatePlot()
	})
	cv.On(events.Scroll, func(e events.Event) {
		if cv.base == nil {
			return
		}
		e.SetHandled()
		se := e.(*events.MouseScroll)
		if se.Delta.Y > 0 {
			cv.ZoomIn()
		} else if se.Delta.Y < 0 {
			cv.ZoomOut()
		}
	})
	cv.On(events.DoubleClick, func(e events.Event) {
		if cv.base == nil || cv.base.Dimension() != 2 {
			return
		}
		e.SetHandled()
		cv.panning = true
		cv.panAnchor = cv.localPos(e.Pos())
		cv.panLower, cv.panUpper = cv.base.CopyBounds()
	})
	cv.On(events.MouseMove, func(e events.Event) {
		if !cv.panning {
			return
		}
		e.SetHandled()
		cv.panTo(cv.localPos(e.Pos()))
	})
	cv.On(events.Click, func(e events.Event) {
		if cv.panning {
			e.SetHandled()
			cv.panning = false
		}
	})
}

// localPos converts a window event position to widget-local pixels.
func (cv *Canvas) localPos(pos image.Point) math32.Vector2 {
	p := pos.Sub(cv.Geom.ContentBBox.Min)
	return math32.Vec2(float32(p.X), float32(p.Y))
}

// panTo shifts the bounds so the point under the pan anchor at double-click
// time follows the mouse. The bounds captured at double-click are the
// reference, so panning does not accumulate drift.
func (cv *Canvas) panTo(p math32.Vector2) {
	for i := 0; i < cv.base.Dimension(); i++ {
		cv.base.SetRange(i, cv.panLower[i], cv.panUpper[i])
	}
	pj := cv.proj.(*plot.Projection2D)
	d0 := pj.Inverse(cv.panAnchor.X, cv.panAnchor.Y)
	d1 := pj.Inverse(p.X, p.Y)
	cv.base.Pan(0, d0.X-d1.X)
	cv.base.Pan(1, d0.Y-d1.Y)
	cv.grid.Update()
	cv.updatePlot()
}

// SetBase sets the coordinate bounds of the canvas: one lower and upper
// value per dimension, with 2 or 3 dimensions. If rounded, the bounds are
// rounded outward to the axis precision unit. Any existing shapes are kept.
func (cv *Canvas) SetBase(lower, upper []float32, rounded bool) error {
	b, err := plot.NewBase(lower, upper, rounded)
	if err != nil {
		return err
	}
	cv.base = b
	if b.Dimension() == 2 {
		cv.proj = plot.NewProjection2D(b)
	} else {
		cv.proj = plot.NewProjection3D(b)
	}
	cv.grid = plot.NewGrid(b)
	cv.updatePlot()
	return nil
}

// Base returns the coordinate base, or nil if not set.
func (cv *Canvas) Base() *plot.Base { return cv.base }

// Grid returns the axis grid, or nil if the base is not set.
func (cv *Canvas) Grid() *plot.Grid { return cv.grid }

// AddShape appends a shape to the canvas. If it is a [plot.Plot], the
// bounds are extended to cover its data.
func (cv *Canvas) AddShape(s plot.Shape) {
	cv.shapes = append(cv.shapes, s)
	if p, ok := s.(plot.Plot); ok && cv.base != nil {
		lo, up := p.Bounds()
		if len(lo) == cv.base.Dimension() {
			cv.base.ExtendBound(lo, up)
			cv.grid.Update()
		}
	}
	cv.updatePlot()
}

// AddPlot appends a data plot. If no base is set yet, one is created from
// the plot's data bounds, rounded to the axis precision.
func (cv *Canvas) AddPlot(p plot.Plot) error {
	if cv.base == nil {
		lo, up := p.Bounds()
		if err := cv.SetBase(lo, up, true); err != nil {
			return err
		}
	}
	cv.AddShape(p)
	return nil
}

// RemoveShape removes the given shape, if present.
func (cv *Canvas) RemoveShape(s plot.Shape) {
	for i, sh := range cv.shapes {
		if sh == s {
			cv.shapes = append(cv.shapes[:i], cv.shapes[i+1:]...)
			cv.updatePlot()
			return
		}
	}
}

// ClearShapes removes all shapes.
func (cv *Canvas) ClearShapes() {
	cv.shapes = nil
	cv.updatePlot()
}

// Shapes returns the current shape list, in paint order.
func (cv *Canvas) Shapes() []plot.Shape { return cv.shapes }

// Margin returns the fractional margin around the plot area.
func (cv *Canvas) Margin() float32 { return cv.margin }

// SetMargin sets the fractional margin around the plot area,
// which must be in [0, 0.3).
func (cv *Canvas) SetMargin(m float32) error {
	if m < 0 || m >= 0.3 {
		return fmt.Errorf("plotcanvas: margin %g out of range [0, 0.3)", m)
	}
	cv.margin = m
	cv.updatePlot()
	return nil
}

// ZoomIn scales the bounds down about their center by one zoom step.
func (cv *Canvas) ZoomIn() { //types:add
	if cv.base == nil {
		return
	}
	cv.base.Zoom(1 / zoomStep)
	cv.grid.Update()
	cv.updatePlot()
}

// ZoomOut scales the bounds up about their center by one zoom step.
func (cv *Canvas) ZoomOut() { //types:add
	if cv.base == nil {
		return
	}
	cv.base.Zoom(zoomStep)
	cv.grid.Update()
	cv.updatePlot()
}

// ResetView restores the original bounds and, in 3D, the default view angle.
func (cv *Canvas) ResetView() { //types:add
	if cv.base == nil {
		return
	}
	cv.base.Reset()
	if pj, ok := cv.proj.(*plot.Projection3D); ok {
		pj.DefaultView()
	}
	cv.grid.Update()
	cv.updatePlot()
}

// EnlargePlotArea grows the plot area by shrinking the margin one step.
func (cv *Canvas) EnlargePlotArea() { //types:add
	cv.margin = math32.Max(cv.margin-0.05, 0)
	cv.updatePlot()
}

// ShrinkPlotArea shrinks the plot area by growing the margin one step.
func (cv *Canvas) ShrinkPlotArea() { //types:add
	if cv.margin+0.05 < 0.3 {
		cv.margin += 0.05
		cv.updatePlot()
	}
}

// IncreaseWidth makes the canvas one step wider.
func (cv *Canvas) IncreaseWidth() { //types:add
	cv.minSize.X += sizeStep
	cv.Restyle()
	cv.NeedsLayout()
}

// DecreaseWidth makes the canvas one step narrower.
func (cv *Canvas) DecreaseWidth() { //types:add
	if cv.minSize.X-sizeStep >= minCanvasSize {
		cv.minSize.X -= sizeStep
		cv.Restyle()
		cv.NeedsLayout()
	}
}

// IncreaseHeight makes the canvas one step taller.
func (cv *Canvas) IncreaseHeight() { //types:add
	cv.minSize.Y += sizeStep
	cv.Restyle()
	cv.NeedsLayout()
}

// DecreaseHeight makes the canvas one step shorter.
func (cv *Canvas) DecreaseHeight() { //types:add
	if cv.minSize.Y-sizeStep >= minCanvasSize {
		cv.minSize.Y -= sizeStep
		cv.Restyle()
		cv.NeedsLayout()
	}
}

// AxisLabels returns the axis labels, one per dimension.
func (cv *Canvas) AxisLabels() []string {
	if cv.grid == nil {
		return nil
	}
	return cv.grid.Labels()
}

// SetAxisLabels sets the axis labels, at most one per dimension.
func (cv *Canvas) SetAxisLabels(labels ...string) error {
	if cv.grid == nil {
		return fmt.Errorf("plotcanvas: no base set")
	}
	err := cv.grid.SetLabels(labels...)
	cv.updatePlot()
	return err
}

func (cv *Canvas) WidgetTooltip(pos image.Point) (string, image.Point) {
	if pos == image.Pt(-1, -1) {
		return "_", image.Point{}
	}
	pj, ok := cv.proj.(*plot.Projection2D)
	if !ok || cv.base == nil {
		return cv.Tooltip, cv.DefaultTooltipPos()
	}
	wpos := cv.localPos(pos)
	at := pj.Inverse(wpos.X, wpos.Y)
	edge := pj.Inverse(wpos.X+10, wpos.Y-10)
	tol := math32.Vec2(math32.Abs(edge.X-at.X), math32.Abs(edge.Y-at.Y))
	for i := len(cv.shapes) - 1; i >= 0; i-- {
		p, ok := cv.shapes[i].(plot.Plot)
		if !ok {
			continue
		}
		if tip, ok := p.Tooltip(at, tol); ok {
			return tip, pos
		}
	}
	return cv.Tooltip, cv.DefaultTooltipPos()
}

// updatePlot redraws the plot image at the current widget size and triggers
// a render.
func (cv *Canvas) updatePlot() {
	if cv.base == nil {
		cv.NeedsRender()
		return
	}
	sz := cv.Geom.Size.Actual.Content.ToPoint()
	if sz == (image.Point{}) {
		return
	}
	if cv.pc == nil || cv.pc.Image.Rect.Size() != sz {
		cv.pc = paint.NewContext(sz.X, sz.Y)
	}
	cv.pc.UnitContext = cv.Styles.UnitContext
	cv.renderPlot()
	cv.NeedsRender()
}

// renderPlot draws the full plot into the paint context: background, grid,
// clipped shapes, legend, title, and the rubber-band rectangle during a
// drag selection.
func (cv *Canvas) renderPlot() {
	pc := cv.pc
	pc.PushBounds(pc.Image.Rect)
	defer pc.PopBounds()

	sz := math32.Vector2FromPoint(pc.Image.Rect.Size())
	pc.BlitBox(math32.Vector2{}, sz, colors.Scheme.Surface)

	g := plot.NewGraphics(pc, cv.base, cv.proj, cv.margin)
	cv.grid.Paint(g)

	g.ClipPlotArea()
	for i := range cv.shapes {
		cv.shapes[i].Paint(g)
	}
	g.ClearClip()

	cv.drawLegend(g)
	cv.drawTitle(g)

	if cv.selecting {
		g.SetStroke(colors.Uniform(colors.Gray), 1)
		min := cv.selectStart.Min(cv.selectEnd)
		d := cv.selectStart.Max(cv.selectEnd).Sub(min)
		pc.DrawRectangle(min.X, min.Y, d.X, d.Y)
		pc.Stroke()
	}
}

// drawTitle renders the title centered above the plot area.
func (cv *Canvas) drawTitle(g *plot.Graphics) {
	if cv.Title == "" {
		return
	}
	tx := plot.Text{Text: cv.Title, Style: cv.TitleStyle}
	tx.Config(g)
	tsz := tx.Size()
	pa := g.PlotArea()
	y := math32.Max(0.5*(pa.Min.Y-tsz.Y), 2)
	tx.Draw(g, math32.Vec2(0.5*(g.Size().X-tsz.X), y))
}

// drawLegend renders a legend in the top-right corner of the plot area when
// more than one named plot is present.
func (cv *Canvas) drawLegend(g *plot.Graphics) {
	var named []plot.Plot
	for _, s := range cv.shapes {
		if p, ok := s.(plot.Plot); ok && p.Name() != "" {
			named = append(named, p)
		}
	}
	if len(named) < 2 {
		return
	}
	pa := g.PlotArea()
	x := pa.Max.X - 120
	y := pa.Min.Y + 16
	for _, p := range named {
		g.SetStroke(p.LegendColor(), 2)
		g.PC.DrawLine(x, y, x+24, y)
		g.PC.Stroke()
		tx := plot.Text{Text: p.Name()}
		tx.Defaults()
		tx.Config(g)
		tx.Draw(g, math32.Vec2(x+30, y-0.5*tx.Size().Y))
		y += 18
	}
}

func (cv *Canvas) SizeFinal() {
	cv.WidgetBase.SizeFinal()
	cv.updatePlot()
}

func (cv *Canvas) Render() {
	cv.WidgetBase.Render()

	r := cv.Geom.ContentBBox
	sp := cv.Geom.ScrollOffset()
	if cv.pc == nil {
		draw.Draw(cv.Scene.Pixels, r, colors.Scheme.Surface, sp, draw.Src)
		return
	}
	draw.Draw(cv.Scene.Pixels, r, cv.pc.Image, sp, draw.Src)
}
