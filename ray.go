package geom

import "math"

// Ray starts at (X1, Y1) and extends through (X2, Y2) without bound.
//
// Ray embeds Line, so every Line method (Length, Angle, Perp, ...) is
// available and reads the same two points.
type Ray struct {
	Line
}

// NewRay creates a Ray from (x1, y1) through (x2, y2).
func NewRay(x1, y1, x2, y2 float64) Ray {
	return Ray{Line: NewLine(x1, y1, x2, y2)}
}

// Clone returns a copy of r.
func (r Ray) Clone() Ray {
	return r
}

// CopyFrom overwrites r with src and returns r.
func (r *Ray) CopyFrom(src Ray) *Ray {
	r.Line.CopyFrom(src.Line)
	return r
}

// CopyTo overwrites dst with r and returns dst.
func (r Ray) CopyTo(dst *Ray) *Ray {
	return dst.CopyFrom(r)
}

// IsPointOnRay reports whether (x, y) is collinear with r and lies in the
// ray's direction as seen from its origin. Points behind the origin are
// rejected.
func (r Ray) IsPointOnRay(x, y float64) bool {
	if !r.IsPointOnLine(x, y) {
		return false
	}
	return math.Atan2(y-r.Y1, x-r.X1) == math.Atan2(r.Y2-r.Y1, r.X2-r.X1)
}
