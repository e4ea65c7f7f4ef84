package geom

import "gonum.org/v1/gonum/floats/scalar"

// AABB is an axis-aligned bounding box stored as a center and half extents.
// It carries the same information as a Rectangle; ToRect and FromRect convert
// between the two.
type AABB struct {
	CX, CY                float64
	HalfWidth, HalfHeight float64
}

// NewAABB creates an AABB centered on (cx, cy) with the given full width and
// height.
func NewAABB(cx, cy, width, height float64) AABB {
	return AABB{CX: cx, CY: cy, HalfWidth: width / 2, HalfHeight: height / 2}
}

// Width returns the full width.
func (a AABB) Width() float64 {
	return a.HalfWidth * 2
}

// Height returns the full height.
func (a AABB) Height() float64 {
	return a.HalfHeight * 2
}

// SetPosition moves the center to (cx, cy).
func (a *AABB) SetPosition(cx, cy float64) *AABB {
	a.CX = cx
	a.CY = cy
	return a
}

// SetPositionPoint moves the center to p.
func (a *AABB) SetPositionPoint(p Point) *AABB {
	return a.SetPosition(p.X, p.Y)
}

// Position returns the center.
func (a AABB) Position() Point {
	return Point{X: a.CX, Y: a.CY}
}

// ToRect returns the equivalent corner-and-size Rectangle.
func (a AABB) ToRect() Rectangle {
	return Rectangle{
		X:      a.CX - a.HalfWidth,
		Y:      a.CY - a.HalfHeight,
		Width:  a.HalfWidth * 2,
		Height: a.HalfHeight * 2,
	}
}

// FromRect overwrites a with the box described by r and returns a.
func (a *AABB) FromRect(r Rectangle) *AABB {
	a.HalfWidth = r.Width / 2
	a.HalfHeight = r.Height / 2
	a.CX = r.X + a.HalfWidth
	a.CY = r.Y + a.HalfHeight
	return a
}

// Clone returns a copy of a.
func (a AABB) Clone() AABB {
	return a
}

// CopyFrom overwrites a with src and returns a.
func (a *AABB) CopyFrom(src AABB) *AABB {
	*a = src
	return a
}

// CopyTo overwrites dst with a and returns dst.
func (a AABB) CopyTo(dst *AABB) *AABB {
	return dst.CopyFrom(a)
}

// Equals reports exact equality of all four fields.
func (a AABB) Equals(other AABB) bool {
	return a == other
}

// EqualsApprox reports whether every field of a and other differs by at most
// tol. Use it to compare boxes that went through ToRect/FromRect.
func (a AABB) EqualsApprox(other AABB, tol float64) bool {
	return scalar.EqualWithinAbs(a.CX, other.CX, tol) &&
		scalar.EqualWithinAbs(a.CY, other.CY, tol) &&
		scalar.EqualWithinAbs(a.HalfWidth, other.HalfWidth, tol) &&
		scalar.EqualWithinAbs(a.HalfHeight, other.HalfHeight, tol)
}
