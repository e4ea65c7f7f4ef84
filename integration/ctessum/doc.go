// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package ctessum converts geom shapes to and from github.com/ctessum/geom.
//
// geom answers yes/no collision questions for axis-aligned shapes, lines and
// circles. Polygon clipping, area of arbitrary outlines and map projections
// are out of its scope; ctessum/geom provides them. This package is the
// hand-off point:
//
//	box := geom.NewRectangle(0, 0, 10, 10)
//	poly := ctessum.Polygon(box)
//	shared := poly.Intersection(ctessum.Polygon(other))
//	region := ctessum.RectangleFromBounds(shared.Bounds())
//
// All conversions copy; no value is shared between the two representations.
package ctessum
