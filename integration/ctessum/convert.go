// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ctessum

import (
	ctgeom "github.com/ctessum/geom"

	"github.com/gogpu/geom"
)

// Point converts p.
func Point(p geom.Point) ctgeom.Point {
	return ctgeom.Point{X: p.X, Y: p.Y}
}

// FromPoint converts p.
func FromPoint(p ctgeom.Point) geom.Point {
	return geom.Pt(p.X, p.Y)
}

// Bounds returns the extent of r.
func Bounds(r geom.Rectangle) *ctgeom.Bounds {
	return &ctgeom.Bounds{
		Min: Point(r.TopLeft()),
		Max: Point(r.BottomRight()),
	}
}

// RectangleFromBounds converts b. Empty bounds, including the inverted
// infinite extent returned by ctgeom.NewBounds, give the zero Rectangle.
func RectangleFromBounds(b *ctgeom.Bounds) geom.Rectangle {
	if b == nil || b.Empty() {
		return geom.Rectangle{}
	}
	return geom.NewRectangle(b.Min.X, b.Min.Y, b.Max.X-b.Min.X, b.Max.Y-b.Min.Y)
}

// Polygon returns r as a single closed ring, wound top-left, top-right,
// bottom-right, bottom-left.
func Polygon(r geom.Rectangle) ctgeom.Polygon {
	tl := r.TopLeft()
	br := r.BottomRight()
	return ctgeom.Polygon{{
		{X: tl.X, Y: tl.Y},
		{X: br.X, Y: tl.Y},
		{X: br.X, Y: br.Y},
		{X: tl.X, Y: br.Y},
		{X: tl.X, Y: tl.Y},
	}}
}

// LineString returns the segment l as a two-point path.
func LineString(l geom.Line) ctgeom.LineString {
	return ctgeom.LineString{Point(l.Start()), Point(l.End())}
}

// Segments splits a path into its consecutive segments. Paths with fewer than
// two points have no segments.
func Segments(ls ctgeom.LineString) []geom.Line {
	if len(ls) < 2 {
		return nil
	}
	out := make([]geom.Line, 0, len(ls)-1)
	for i := 1; i < len(ls); i++ {
		out = append(out, geom.NewLine(ls[i-1].X, ls[i-1].Y, ls[i].X, ls[i].Y))
	}
	return out
}

// PathCrossings intersects every segment of path with seg and returns the
// points where they meet, in path order.
func PathCrossings(path ctgeom.LineString, seg geom.Line) []geom.Point {
	var (
		res geom.IntersectResult
		pts []geom.Point
	)
	for _, s := range Segments(path) {
		if geom.SegmentToSegment(seg, s, &res).Result {
			pts = append(pts, res.Point())
		}
	}
	return pts
}
