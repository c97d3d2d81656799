// Copyright (c) 2026, The Smile Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotcanvas

import (
	"cogentcore.org/core/core"
	"cogentcore.org/core/events"
	"cogentcore.org/core/icons"
	"cogentcore.org/core/tree"
)

// MakeToolbar adds the canvas actions to a toolbar plan. Use with
// [core.Toolbar.Maker] or [core.Body.AddTopBar].
func (cv *Canvas) MakeToolbar(p *tree.Plan) {
	tree.Add(p, func(w *core.FuncButton) {
		w.SetFunc(cv.SaveImage).SetText("Save").SetIcon(icons.Save)
	})
	tree.Add(p, func(w *core.Button) {
		w.SetText("Print").SetIcon(icons.Print).
			SetTooltip("print the plot, scaled to a single page").
			OnClick(func(e events.Event) {
				if err := cv.Print(); err != nil {
					core.ErrorDialog(cv, err, "Print failed")
				}
			})
	})
	tree.Add(p, func(w *core.Separator) {})

	tree.Add(p, func(w *core.Button) {
		w.SetIcon(icons.ZoomIn).SetTooltip("zoom in").
			OnClick(func(e events.Event) { cv.ZoomIn() })
	})
	tree.Add(p, func(w *core.Button) {
		w.SetIcon(icons.ZoomOut).SetTooltip("zoom out").
			OnClick(func(e events.Event) { cv.ZoomOut() })
	})
	tree.Add(p, func(w *core.Button) {
		w.SetIcon(icons.RestartAlt).SetTooltip("reset the view to the original bounds").
			OnClick(func(e events.Event) { cv.ResetView() })
	})
	tree.Add(p, func(w *core.Separator) {})

	tree.Add(p, func(w *core.Button) {
		w.SetIcon(icons.OpenInFull).SetTooltip("enlarge the plot area").
			OnClick(func(e events.Event) { cv.EnlargePlotArea() })
	})
	tree.Add(p, func(w *core.Button) {
		w.SetIcon(icons.CloseFullscreen).SetTooltip("shrink the plot area").
			OnClick(func(e events.Event) { cv.ShrinkPlotArea() })
	})
	tree.Add(p, func(w *core.Button) {
		w.SetIcon(icons.KeyboardDoubleArrowRight).SetTooltip("increase the canvas width").
			OnClick(func(e events.Event) { cv.IncreaseWidth() })
	})
	tree.Add(p, func(w *core.Button) {
		w.SetIcon(icons.KeyboardDoubleArrowLeft).SetTooltip("decrease the canvas width").
			OnClick(func(e events.Event) { cv.DecreaseWidth() })
	})
	tree.Add(p, func(w *core.Button) {
		w.SetIcon(icons.KeyboardDoubleArrowDown).SetTooltip("increase the canvas height").
			OnClick(func(e events.Event) { cv.IncreaseHeight() })
	})
	tree.Add(p, func(w *core.Button) {
		w.SetIcon(icons.KeyboardDoubleArrowUp).SetTooltip("decrease the canvas height").
			OnClick(func(e events.Event) { cv.DecreaseHeight() })
	})
	tree.Add(p, func(w *core.Separator) {})

	tree.Add(p, func(w *core.Button) {
		w.SetText("Properties").SetIcon(icons.Settings).
			SetTooltip("edit the title, axis labels, and axis ranges").
			OnClick(func(e events.Event) { cv.PropertiesDialog() })
	})
}

// contextMenu adds the canvas actions to the right-click context menu.
func (cv *Canvas) contextMenu(m *core.Scene) {
	core.NewFuncButton(m).SetFunc(cv.SaveImage).SetText("Save").SetIcon(icons.Save)
	core.NewButton(m).SetText("Print").SetIcon(icons.Print).
		OnClick(func(e events.Event) {
			if err := cv.Print(); err != nil {
				core.ErrorDialog(cv, err, "Print failed")
			}
		})
	core.NewSeparator(m)
	core.NewButton(m).SetText("Zoom in").SetIcon(icons.ZoomIn).
		OnClick(func(e events.Event) { cv.ZoomIn() })
	core.NewButton(m).SetText("Zoom out").SetIcon(icons.ZoomOut).
		OnClick(func(e events.Event) { cv.ZoomOut() })
	core.NewButton(m).SetText("Reset").SetIcon(icons.RestartAlt).
		OnClick(func(e events.Event) { cv.ResetView() })
	core.NewSeparator(m)
	core.NewButton(m).SetText("Enlarge").SetIcon(icons.OpenInFull).
		OnClick(func(e events.Event) { cv.EnlargePlotArea() })
	core.NewButton(m).SetText("Shrink").SetIcon(icons.CloseFullscreen).
		OnClick(func(e events.Event) { cv.ShrinkPlotArea() })
	core.NewSeparator(m)
	core.NewButton(m).SetText("Properties").SetIcon(icons.Settings).
		OnClick(func(e events.Event) { cv.PropertiesDialog() })
}
