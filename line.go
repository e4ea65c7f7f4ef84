package geom

import "math"

// Line is defined by two points. Depending on the operation it is read as the
// infinite line through both points or as the segment between them.
//
// Both points may coincide. Slope and Angle are then meaningless, so check
// Length before trusting them.
type Line struct {
	X1, Y1, X2, Y2 float64
}

// NewLine creates a Line through (x1, y1) and (x2, y2).
func NewLine(x1, y1, x2, y2 float64) Line {
	return Line{X1: x1, Y1: y1, X2: x2, Y2: y2}
}

// SetTo sets both defining points.
func (l *Line) SetTo(x1, y1, x2, y2 float64) *Line {
	l.X1, l.Y1 = x1, y1
	l.X2, l.Y2 = x2, y2
	return l
}

// Clone returns a copy of l.
func (l Line) Clone() Line {
	return l
}

// CopyFrom overwrites l with src and returns l.
func (l *Line) CopyFrom(src Line) *Line {
	return l.SetTo(src.X1, src.Y1, src.X2, src.Y2)
}

// CopyTo overwrites dst with l and returns dst.
func (l Line) CopyTo(dst *Line) *Line {
	return dst.CopyFrom(l)
}

// Start returns the first defining point.
func (l Line) Start() Point {
	return Point{X: l.X1, Y: l.Y1}
}

// End returns the second defining point.
func (l Line) End() Point {
	return Point{X: l.X2, Y: l.Y2}
}

// Length returns the distance between the two defining points.
func (l Line) Length() float64 {
	return math.Hypot(l.X2-l.X1, l.Y2-l.Y1)
}

// Angle returns the direction from the first to the second point in radians.
func (l Line) Angle() float64 {
	return math.Atan2(l.Y2-l.Y1, l.X2-l.X1)
}

// Slope returns dy/dx. Vertical lines yield ±Inf.
func (l Line) Slope() float64 {
	return (l.Y2 - l.Y1) / (l.X2 - l.X1)
}

// PerpSlope returns the slope of any line perpendicular to l.
func (l Line) PerpSlope() float64 {
	return -((l.X2 - l.X1) / (l.Y2 - l.Y1))
}

// YIntercept returns the y coordinate where the infinite line crosses x=0.
func (l Line) YIntercept() float64 {
	return l.Y1 - l.Slope()*l.X1
}

// IsPointOnLine reports whether (x, y) is collinear with l.
//
// The test is an exact cross-product comparison, so points computed with
// rounding error may be rejected.
func (l Line) IsPointOnLine(x, y float64) bool {
	return (x-l.X1)*(l.Y2-l.Y1) == (l.X2-l.X1)*(y-l.Y1)
}

// IsPointOnLineSegment reports whether (x, y) is collinear with l and lies
// within the segment's bounding box.
func (l Line) IsPointOnLineSegment(x, y float64) bool {
	return l.IsPointOnLine(x, y) && l.inBounds(x, y)
}

// inBounds reports whether (x, y) lies within the closed bounding box of the
// segment.
func (l Line) inBounds(x, y float64) bool {
	return inSpan(x, l.X1, l.X2) && inSpan(y, l.Y1, l.Y2)
}

func inSpan(v, a, b float64) bool {
	return v >= math.Min(a, b) && v <= math.Max(a, b)
}

// IntersectLine intersects l with other, both taken as infinite lines.
func (l Line) IntersectLine(other Line) IntersectResult {
	var out IntersectResult
	LineToLine(l, other, &out)
	return out
}

// Perp returns the line from (x, y) to the foot of the perpendicular dropped
// onto l.
func (l Line) Perp(x, y float64) Line {
	if l.Y1 == l.Y2 {
		return Line{X1: x, Y1: y, X2: x, Y2: l.Y1}
	}
	if l.X1 == l.X2 {
		return Line{X1: x, Y1: y, X2: l.X1, Y2: y}
	}

	// Auxiliary line through (x, y) with the perpendicular slope. Its second
	// point sits on x=0 unless (x, y) already does.
	ps := l.PerpSlope()
	yInt := y - ps*x
	aux := Line{X1: x, Y1: y, X2: 0, Y2: yInt}
	if x == 0 {
		aux = Line{X1: x, Y1: y, X2: 1, Y2: yInt + ps}
	}

	var foot IntersectResult
	LineToLine(l, aux, &foot)
	return Line{X1: x, Y1: y, X2: foot.X, Y2: foot.Y}
}
