// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package spatial converts geom shapes to and from the planar types of
// gonum.org/v1/gonum/spatial/r2, so positions and boxes can be handed to
// gonum's spatial and numeric code without manual field copying.
package spatial

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/gogpu/geom"
)

// Vec converts p.
func Vec(p geom.Point) r2.Vec {
	return r2.Vec{X: p.X, Y: p.Y}
}

// FromVec converts v.
func FromVec(v r2.Vec) geom.Point {
	return geom.Pt(v.X, v.Y)
}

// Box returns the extent of a as an r2.Box.
func Box(a geom.AABB) r2.Box {
	return r2.Box{
		Min: r2.Vec{X: a.CX - a.HalfWidth, Y: a.CY - a.HalfHeight},
		Max: r2.Vec{X: a.CX + a.HalfWidth, Y: a.CY + a.HalfHeight},
	}
}

// AABBFromBox converts b. Corners may be given in any order.
func AABBFromBox(b r2.Box) geom.AABB {
	return geom.NewAABB(
		(b.Min.X+b.Max.X)/2, (b.Min.Y+b.Max.Y)/2,
		math.Abs(b.Max.X-b.Min.X), math.Abs(b.Max.Y-b.Min.Y),
	)
}

// RectBox returns the extent of r as an r2.Box.
func RectBox(r geom.Rectangle) r2.Box {
	return r2.Box{Min: Vec(r.TopLeft()), Max: Vec(r.BottomRight())}
}

// RectangleFromBox converts b. Corners may be given in any order.
func RectangleFromBox(b r2.Box) geom.Rectangle {
	return AABBFromBox(b).ToRect()
}

// Line returns the two defining points of l.
func Line(l geom.Line) (start, end r2.Vec) {
	return Vec(l.Start()), Vec(l.End())
}

// LineFromVecs creates the line through start and end.
func LineFromVecs(start, end r2.Vec) geom.Line {
	return geom.NewLine(start.X, start.Y, end.X, end.Y)
}
