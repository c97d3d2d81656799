// Copyright (c) 2026, The Smile Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotcanvas

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Settings are the package-level defaults applied to new canvases.
type Settings struct {

	// Margin is the default fractional margin around the plot area,
	// in [0, 0.3).
	Margin float32

	// DragThreshold is the minimum drag extent in pixels, per axis, for a
	// drag selection to zoom into the selected rectangle.
	DragThreshold int

	// ExportScale multiplies the image size in [Canvas.SaveImage].
	ExportScale float32
}

// Current has the settings applied to new canvases.
var Current = defaultSettings()

func defaultSettings() Settings {
	return Settings{Margin: 0.15, DragThreshold: 20, ExportScale: 1}
}

// Defaults restores the default settings.
func (st *Settings) Defaults() {
	*st = defaultSettings()
}

func (st *Settings) validate() error {
	if st.Margin < 0 || st.Margin >= 0.3 {
		return fmt.Errorf("plotcanvas: settings margin %g out of range [0, 0.3)", st.Margin)
	}
	if st.DragThreshold < 0 {
		return fmt.Errorf("plotcanvas: settings drag threshold %d is negative", st.DragThreshold)
	}
	if st.ExportScale <= 0 {
		return fmt.Errorf("plotcanvas: settings export scale %g is not positive", st.ExportScale)
	}
	return nil
}

// Open reads the settings from the given TOML file.
func (st *Settings) Open(filename string) error {
	b, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	s := defaultSettings()
	if err := toml.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("plotcanvas: reading settings %q: %w", filename, err)
	}
	if err := s.validate(); err != nil {
		return err
	}
	*st = s
	return nil
}

// Save writes the settings to the given TOML file.
func (st *Settings) Save(filename string) error {
	b, err := toml.Marshal(st)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0666)
}
