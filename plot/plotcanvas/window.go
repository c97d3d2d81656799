// Copyright (c) 2026, The Smile Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotcanvas

import (
	"cogentcore.org/core/core"
	"cogentcore.org/core/styles"
)

// Show returns a new body holding a canvas with its toolbar installed,
// ready to run as a window. A typical standalone use:
//
//	b, cv := plotcanvas.Show("Scatter")
//	cv.AddPlot(sp)
//	b.RunMainWindow()
func Show(title string) (*core.Body, *Canvas) {
	b := core.NewBody(title)
	cv := NewCanvas(b)
	cv.Styler(func(s *styles.Style) {
		s.Grow.Set(1, 1)
	})
	b.AddAppBar(cv.MakeToolbar)
	return b, cv
}
