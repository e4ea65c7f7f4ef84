package geom

import "math"

// IntersectResult reports whether two shapes meet and where.
//
// When Result is false the remaining fields hold whatever the last
// computation left in them and must not be read.
//
// X and Y hold the intersection point. X1, Y1, X2, Y2 carry a pair of points
// for tests that produce two (LineToCircle), and Width and Height carry the
// extent of region results (RectangleToRectangle).
type IntersectResult struct {
	Result bool

	X, Y           float64
	X1, Y1, X2, Y2 float64
	Width, Height  float64
}

// SetTo sets the point pair and region fields.
func (r *IntersectResult) SetTo(x1, y1, x2, y2, width, height float64) *IntersectResult {
	r.X1, r.Y1 = x1, y1
	r.X2, r.Y2 = x2, y2
	r.Width, r.Height = width, height
	return r
}

// Point returns (X, Y).
func (r IntersectResult) Point() Point {
	return Point{X: r.X, Y: r.Y}
}

// The functions below take an optional out parameter. When out is non-nil it
// is overwritten and returned, which keeps per-frame collision loops free of
// allocations; when it is nil a new result is allocated.

func result(out *IntersectResult) *IntersectResult {
	if out == nil {
		out = &IntersectResult{}
	}
	out.Result = false
	return out
}

// Distance returns the distance between (x1, y1) and (x2, y2).
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Sqrt(DistanceSquared(x1, y1, x2, y2))
}

// DistanceSquared returns the squared distance between (x1, y1) and (x2, y2).
func DistanceSquared(x1, y1, x2, y2 float64) float64 {
	return (x2-x1)*(x2-x1) + (y2-y1)*(y2-y1)
}

// solveLines intersects the infinite line through (ax1, ay1)-(ax2, ay2) with
// the one through (bx1, by1)-(bx2, by2). ok is false when the lines are
// parallel or coincident.
//
// Every line test in this file goes through here so that shared inputs give
// bit-identical points.
func solveLines(ax1, ay1, ax2, ay2, bx1, by1, bx2, by2 float64) (x, y float64, ok bool) {
	denom := (ax1-ax2)*(by1-by2) - (ay1-ay2)*(bx1-bx2)
	if denom == 0 {
		return 0, 0, false
	}
	a := ax1*ay2 - ay1*ax2
	b := bx1*by2 - by1*bx2
	x = (a*(bx1-bx2) - (ax1-ax2)*b) / denom
	y = (a*(by1-by2) - (ay1-ay2)*b) / denom
	return x, y, true
}

// LineToLine intersects two infinite lines.
//
// Parallel lines report no intersection. So do coincident lines, even though
// they share every point.
func LineToLine(l1, l2 Line, out *IntersectResult) *IntersectResult {
	out = result(out)
	x, y, ok := solveLines(l1.X1, l1.Y1, l1.X2, l1.Y2, l2.X1, l2.Y1, l2.X2, l2.Y2)
	if ok {
		out.X, out.Y = x, y
		out.Result = true
	}
	return out
}

// LineToSegment intersects the infinite line with the bounded segment seg.
func LineToSegment(line, seg Line, out *IntersectResult) *IntersectResult {
	return LineToRawSegment(line, seg.X1, seg.Y1, seg.X2, seg.Y2, out)
}

// LineToRawSegment is LineToSegment with the segment given as coordinates.
func LineToRawSegment(line Line, x1, y1, x2, y2 float64, out *IntersectResult) *IntersectResult {
	out = result(out)
	x, y, ok := solveLines(line.X1, line.Y1, line.X2, line.Y2, x1, y1, x2, y2)
	if !ok {
		return out
	}
	out.X, out.Y = x, y
	out.Result = inSpan(x, x1, x2) && inSpan(y, y1, y2)
	return out
}

// LineSegmentToRawSegment intersects two bounded segments: line and the one
// from (x1, y1) to (x2, y2).
func LineSegmentToRawSegment(line Line, x1, y1, x2, y2 float64, out *IntersectResult) *IntersectResult {
	out = LineToRawSegment(line, x1, y1, x2, y2, out)
	out.Result = out.Result && line.inBounds(out.X, out.Y)
	return out
}

// SegmentToSegment intersects two bounded segments.
func SegmentToSegment(a, b Line, out *IntersectResult) *IntersectResult {
	return LineSegmentToRawSegment(a, b.X1, b.Y1, b.X2, b.Y2, out)
}

// LineToRay intersects the infinite line with ray. A crossing is rejected
// only when it falls below the origin on an axis along which the ray
// increases. Rays heading toward -x or -y are not checked on that axis, so a
// crossing behind such a ray is still reported.
func LineToRay(line Line, ray Ray, out *IntersectResult) *IntersectResult {
	out = result(out)
	x, y, ok := solveLines(line.X1, line.Y1, line.X2, line.Y2, ray.X1, ray.Y1, ray.X2, ray.Y2)
	if !ok {
		return out
	}
	out.X, out.Y = x, y
	out.Result = !behind(x, ray.X1, ray.X2) && !behind(y, ray.Y1, ray.Y2)
	return out
}

// behind reports whether v lies below origin on an axis where the ray moves
// from origin toward a larger value.
func behind(v, origin, toward float64) bool {
	return origin < toward && v < origin
}

// LineToCircle reports whether the infinite line comes within the circle's
// radius of its center; a tangent line counts.
//
// On success X, Y hold the point of the line closest to the center and
// X1, Y1, X2, Y2 the two boundary crossings in the order they are met going
// from (line.X1, line.Y1) towards (line.X2, line.Y2). A tangent line yields
// the same point twice.
func LineToCircle(line Line, c Circle, out *IntersectResult) *IntersectResult {
	out = result(out)
	perp := line.Perp(c.X, c.Y)
	if perp.Length() > c.Radius() {
		return out
	}
	out.Result = true
	out.X, out.Y = perp.X2, perp.Y2

	crossings := LineCircleCrossings(line, c)
	switch len(crossings) {
	case 0:
		// Rounding in the quadratic can lose a tangent root; the foot of the
		// perpendicular is the touching point.
		out.SetTo(out.X, out.Y, out.X, out.Y, 0, 0)
	case 1:
		out.SetTo(crossings[0].X, crossings[0].Y, crossings[0].X, crossings[0].Y, 0, 0)
	default:
		out.SetTo(crossings[0].X, crossings[0].Y, crossings[1].X, crossings[1].Y, 0, 0)
	}
	return out
}

// LineCircleCrossings returns the points where the infinite line crosses the
// boundary of c, ordered by their position along the line from its first
// point towards its second. The result has zero, one or two points.
func LineCircleCrossings(line Line, c Circle) []Point {
	dx := line.X2 - line.X1
	dy := line.Y2 - line.Y1
	fx := line.X1 - c.X
	fy := line.Y1 - c.Y
	r := c.Radius()

	ts := SolveQuadratic(dx*dx+dy*dy, 2*(dx*fx+dy*fy), fx*fx+fy*fy-r*r)
	if len(ts) == 0 {
		return nil
	}
	pts := make([]Point, len(ts))
	for i, t := range ts {
		pts[i] = Point{X: line.X1 + dx*t, Y: line.Y1 + dy*t}
	}
	return pts
}

// LineToRectangle tests the infinite line against the rectangle's top edge
// only. A line that crosses r without touching the top edge is reported as
// not intersecting.
//
// TODO: extend to the left, right and bottom edges once callers relying on
// the top-edge-only behavior have been audited.
func LineToRectangle(line Line, r Rectangle, out *IntersectResult) *IntersectResult {
	return LineToRawSegment(line, r.X, r.Y, r.Right(), r.Y, out)
}

// RectangleToRectangle reports whether a and b intersect under the rules of
// Rectangle.Intersects. On success X, Y, Width and Height describe the
// overlapping region.
func RectangleToRectangle(a, b Rectangle, out *IntersectResult) *IntersectResult {
	out = result(out)
	if !a.Intersects(b) {
		return out
	}
	region := a.Intersection(b)
	out.Result = true
	out.X, out.Y = region.X, region.Y
	out.Width, out.Height = region.Width, region.Height
	return out
}
