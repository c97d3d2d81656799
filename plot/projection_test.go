// Copyright (c) 2026, The Smile Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
)

func TestProjection2D(t *testing.T) {
	b, _ := NewBase([]float32{0, 0}, []float32{10, 10}, false)
	pj := NewProjection2D(b)
	pj.Resize(math32.Vec2(100, 100), 0.1)

	p := pj.Project(math32.Vec3(0, 0, 0))
	assert.InDelta(t, 10, p.X, 1e-4)
	assert.InDelta(t, 90, p.Y, 1e-4)

	p = pj.Project(math32.Vec3(10, 10, 0))
	assert.InDelta(t, 90, p.X, 1e-4)
	assert.InDelta(t, 10, p.Y, 1e-4)

	p = pj.Project(math32.Vec3(5, 5, 0))
	assert.InDelta(t, 50, p.X, 1e-4)
	assert.InDelta(t, 50, p.Y, 1e-4)
}

func TestProjection2DInverse(t *testing.T) {
	b, _ := NewBase([]float32{-4, 1}, []float32{6, 9}, false)
	pj := NewProjection2D(b)
	pj.Resize(math32.Vec2(640, 480), 0.15)

	pts := []math32.Vector3{
		{X: -4, Y: 1}, {X: 6, Y: 9}, {X: 0, Y: 5}, {X: 2.5, Y: 7.25},
	}
	for _, pt := range pts {
		px := pj.Project(pt)
		dt := pj.Inverse(px.X, px.Y)
		assert.InDelta(t, pt.X, dt.X, 1e-3)
		assert.InDelta(t, pt.Y, dt.Y, 1e-3)
	}
}

func TestProjection3DCenter(t *testing.T) {
	b, _ := NewBase([]float32{0, 0, 0}, []float32{4, 8, 2}, false)
	pj := NewProjection3D(b)
	pj.Resize(math32.Vec2(200, 160), 0.1)

	// the bounds center projects to the screen center for any view angle
	for _, az := range []float32{0, 1, -2.4} {
		pj.Azimuth = az
		p := pj.Project(math32.Vec3(2, 4, 1))
		assert.InDelta(t, 100, p.X, 1e-3)
		assert.InDelta(t, 80, p.Y, 1e-3)
	}
}

func TestProjection3DRotate(t *testing.T) {
	b, _ := NewBase([]float32{0, 0, 0}, []float32{1, 1, 1}, false)
	pj := NewProjection3D(b)
	assert.Equal(t, DefaultAzimuth, pj.Azimuth)
	assert.Equal(t, DefaultElevation, pj.Elevation)

	pj.Rotate(50, 10)
	assert.InDelta(t, DefaultAzimuth+0.5, pj.Azimuth, 1e-5)
	assert.InDelta(t, DefaultElevation+0.1, pj.Elevation, 1e-5)

	// elevation never reaches the poles
	pj.Rotate(0, 1e6)
	assert.Less(t, pj.Elevation, math32.Pi/2)
	pj.Rotate(0, -1e7)
	assert.Greater(t, pj.Elevation, -math32.Pi/2)

	pj.DefaultView()
	assert.Equal(t, DefaultAzimuth, pj.Azimuth)
	assert.Equal(t, DefaultElevation, pj.Elevation)
}

func TestProjection3DInsideMargins(t *testing.T) {
	b, _ := NewBase([]float32{0, 0, 0}, []float32{1, 1, 1}, false)
	pj := NewProjection3D(b)
	pj.Resize(math32.Vec2(100, 100), 0.1)

	// all 8 cube corners stay inside the plot area for arbitrary views
	for _, az := range []float32{-1.2, 0.3, 2} {
		for _, el := range []float32{-1.4, 0, 0.9} {
			pj.Azimuth, pj.Elevation = az, el
			for x := float32(0); x <= 1; x++ {
				for y := float32(0); y <= 1; y++ {
					for z := float32(0); z <= 1; z++ {
						p := pj.Project(math32.Vec3(x, y, z))
						assert.GreaterOrEqual(t, p.X, float32(10)-1e-3)
						assert.LessOrEqual(t, p.X, float32(90)+1e-3)
						assert.GreaterOrEqual(t, p.Y, float32(10)-1e-3)
						assert.LessOrEqual(t, p.Y, float32(90)+1e-3)
					}
				}
			}
		}
	}
}
