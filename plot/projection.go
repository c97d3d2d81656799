// Copyright (c) 2026, The Smile Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"cogentcore.org/core/math32"
)

// Projection maps data-space coordinates onto widget pixels for the current
// [Base] bounds, canvas size, and margin. Implemented by [Projection2D] and
// [Projection3D].
type Projection interface {

	// Resize sets the pixel size of the render surface and the fractional
	// margin inset reserved around the plot area.
	Resize(size math32.Vector2, margin float32)

	// Project maps a data-space point to pixel coordinates.
	// For 2D projections the Z coordinate is ignored.
	Project(p math32.Vector3) math32.Vector2
}

// Projection2D is the linear margin-inset mapping for 2D plots.
// It is exactly invertible via [Projection2D.Inverse].
type Projection2D struct {
	base   *Base
	size   math32.Vector2
	margin float32
}

func NewProjection2D(b *Base) *Projection2D {
	return &Projection2D{base: b}
}

func (pj *Projection2D) Resize(size math32.Vector2, margin float32) {
	pj.size = size
	pj.margin = margin
}

// inset returns the pixel size of the plot area inside the margins.
func (pj *Projection2D) inset() math32.Vector2 {
	return pj.size.MulScalar(1 - 2*pj.margin)
}

func (pj *Projection2D) Project(p math32.Vector3) math32.Vector2 {
	b := pj.base
	in := pj.inset()
	x := pj.margin*pj.size.X + (p.X-b.Lower[0])/b.Range(0)*in.X
	y := pj.size.Y - pj.margin*pj.size.Y - (p.Y-b.Lower[1])/b.Range(1)*in.Y
	return math32.Vec2(x, y)
}

// Inverse maps pixel coordinates back to the data-space point that
// [Projection2D.Project] would send there.
func (pj *Projection2D) Inverse(px, py float32) math32.Vector2 {
	b := pj.base
	in := pj.inset()
	x := b.Lower[0] + (px-pj.margin*pj.size.X)/in.X*b.Range(0)
	y := b.Lower[1] + (pj.size.Y-pj.margin*pj.size.Y-py)/in.Y*b.Range(1)
	return math32.Vec2(x, y)
}

// Default view angles for [Projection3D], in radians.
var (
	DefaultAzimuth   = math32.DegToRad(-60)
	DefaultElevation = math32.DegToRad(30)
)

// rotateSpeed is the view rotation per pixel of mouse drag, in radians.
const rotateSpeed = 0.01

// Projection3D is an orthographic projection for 3D plots: data coordinates
// are normalized about the bounds center, rotated by the current azimuth and
// elevation, and scaled to fit the plot area. X and Y span the horizontal
// plane and Z is vertical.
type Projection3D struct {
	base   *Base
	size   math32.Vector2
	margin float32

	// Azimuth is the horizontal view rotation, in radians.
	Azimuth float32

	// Elevation is the vertical view angle, in radians,
	// limited to (-π/2, π/2).
	Elevation float32
}

func NewProjection3D(b *Base) *Projection3D {
	pj := &Projection3D{base: b}
	pj.DefaultView()
	return pj
}

func (pj *Projection3D) Resize(size math32.Vector2, margin float32) {
	pj.size = size
	pj.margin = margin
}

// DefaultView restores the default azimuth and elevation.
func (pj *Projection3D) DefaultView() {
	pj.Azimuth = DefaultAzimuth
	pj.Elevation = DefaultElevation
}

// Rotate adjusts the view by the given mouse drag delta in pixels.
func (pj *Projection3D) Rotate(dx, dy float32) {
	pj.Azimuth += dx * rotateSpeed
	pj.Elevation = math32.Clamp(pj.Elevation+dy*rotateSpeed, -math32.Pi/2+0.01, math32.Pi/2-0.01)
}

func (pj *Projection3D) Project(p math32.Vector3) math32.Vector2 {
	b := pj.base
	n := math32.Vec3(
		(p.X-b.Center(0))/b.Range(0),
		(p.Y-b.Center(1))/b.Range(1),
		(p.Z-b.Center(2))/b.Range(2),
	)
	sa, ca := math32.Sin(pj.Azimuth), math32.Cos(pj.Azimuth)
	se, ce := math32.Sin(pj.Elevation), math32.Cos(pj.Elevation)
	sx := -n.X*sa + n.Y*ca
	sy := -(n.X*ca+n.Y*sa)*se + n.Z*ce

	// the unit cube diagonal is sqrt(3), so this keeps any rotation inside
	// the plot area
	scale := (1 - 2*pj.margin) * math32.Min(pj.size.X, pj.size.Y) / math32.Sqrt(3)
	return math32.Vec2(0.5*pj.size.X+sx*scale, 0.5*pj.size.Y-sy*scale)
}
