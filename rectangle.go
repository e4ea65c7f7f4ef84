package geom

import "math"

// Rectangle is an axis-aligned box given by its top-left corner and its
// extents. The edge setters and SetTo keep Width and Height non-negative;
// Inflate with a negative amount can drive them below zero.
type Rectangle struct {
	X, Y          float64 // Top-left corner
	Width, Height float64
}

// Overlap classifies how one rectangle lies relative to another.
// See Rectangle.Overlap.
type Overlap struct {
	Top, Bottom, Left, Right bool
	Contains, Contained      bool
}

// NewRectangle creates a Rectangle with the rules of SetTo applied.
func NewRectangle(x, y, width, height float64) Rectangle {
	var r Rectangle
	r.SetTo(x, y, width, height)
	return r
}

// SetTo sets position and size. Each non-finite argument, and a negative
// width or height, leaves the matching field unchanged.
func (r *Rectangle) SetTo(x, y, width, height float64) *Rectangle {
	ignored := false
	if isFinite(x) {
		r.X = x
	} else {
		ignored = true
	}
	if isFinite(y) {
		r.Y = y
	} else {
		ignored = true
	}
	if isFinite(width) && width >= 0 {
		r.Width = width
	} else {
		ignored = true
	}
	if isFinite(height) && height >= 0 {
		r.Height = height
	} else {
		ignored = true
	}
	if ignored {
		if l := correctionLogger(); l != nil {
			l.Debug("geom: rectangle SetTo ignored invalid arguments",
				"x", x, "y", y, "width", width, "height", height)
		}
	}
	return r
}

// SetEmpty resets r to the zero rectangle.
func (r *Rectangle) SetEmpty() *Rectangle {
	*r = Rectangle{}
	return r
}

// Clone returns a copy of r.
func (r Rectangle) Clone() Rectangle {
	return r
}

// CopyFrom overwrites r with src and returns r. Every field is copied as is,
// without the validation SetTo applies.
func (r *Rectangle) CopyFrom(src Rectangle) *Rectangle {
	*r = src
	return r
}

// CopyTo overwrites dst with r and returns dst.
func (r Rectangle) CopyTo(dst *Rectangle) *Rectangle {
	return dst.CopyFrom(r)
}

// Position returns the top-left corner.
func (r Rectangle) Position() Point {
	return Point{X: r.X, Y: r.Y}
}

// Left returns the left edge x-coordinate.
func (r Rectangle) Left() float64 {
	return r.X
}

// SetLeft moves the left edge to v, keeping the right edge.
// The width never goes below zero.
func (r *Rectangle) SetLeft(v float64) *Rectangle {
	w := r.Width + (r.X - v)
	r.Width = math.Max(w, 0)
	r.X = v
	return r
}

// Right returns the right edge x-coordinate.
func (r Rectangle) Right() float64 {
	return r.X + r.Width
}

// SetRight moves the right edge to v, keeping the left edge.
func (r *Rectangle) SetRight(v float64) *Rectangle {
	r.Width = math.Max(v-r.X, 0)
	return r
}

// Top returns the top edge y-coordinate.
func (r Rectangle) Top() float64 {
	return r.Y
}

// SetTop moves the top edge to v, keeping the bottom edge.
// The height never goes below zero.
func (r *Rectangle) SetTop(v float64) *Rectangle {
	h := r.Height + (r.Y - v)
	r.Height = math.Max(h, 0)
	r.Y = v
	return r
}

// Bottom returns the bottom edge y-coordinate.
func (r Rectangle) Bottom() float64 {
	return r.Y + r.Height
}

// SetBottom moves the bottom edge to v, keeping the top edge.
func (r *Rectangle) SetBottom(v float64) *Rectangle {
	r.Height = math.Max(v-r.Y, 0)
	return r
}

// TopLeft returns the top-left corner.
func (r Rectangle) TopLeft() Point {
	return Point{X: r.X, Y: r.Y}
}

// SetTopLeft moves the top-left corner to p, keeping the bottom-right one.
func (r *Rectangle) SetTopLeft(p Point) *Rectangle {
	return r.SetLeft(p.X).SetTop(p.Y)
}

// BottomRight returns the bottom-right corner.
func (r Rectangle) BottomRight() Point {
	return Point{X: r.Right(), Y: r.Bottom()}
}

// SetBottomRight moves the bottom-right corner to p, keeping the top-left
// one.
func (r *Rectangle) SetBottomRight(p Point) *Rectangle {
	return r.SetRight(p.X).SetBottom(p.Y)
}

// Center returns the center point.
func (r Rectangle) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Size returns the extents as a Point.
func (r Rectangle) Size() Point {
	return Point{X: r.Width, Y: r.Height}
}

// Area returns Width*Height.
func (r Rectangle) Area() float64 {
	return r.Width * r.Height
}

// Perimeter returns the length of the outline.
func (r Rectangle) Perimeter() float64 {
	return r.Width*2 + r.Height*2
}

// IsEmpty reports whether r is less than one unit wide or high.
func (r Rectangle) IsEmpty() bool {
	return r.Width < 1 || r.Height < 1
}

// Equals reports exact equality of all four fields.
func (r Rectangle) Equals(other Rectangle) bool {
	return r.X == other.X && r.Y == other.Y && r.Width == other.Width && r.Height == other.Height
}

// Contains reports whether (x, y) lies inside r, edges included.
func (r Rectangle) Contains(x, y float64) bool {
	return x >= r.X && x <= r.Right() && y >= r.Y && y <= r.Bottom()
}

// ContainsPoint reports whether p lies inside r, edges included.
func (r Rectangle) ContainsPoint(p Point) bool {
	return r.Contains(p.X, p.Y)
}

// ContainsRect reports whether other lies entirely inside r.
func (r Rectangle) ContainsRect(other Rectangle) bool {
	if other.Area() > r.Area() {
		return false
	}
	return other.X >= r.X && other.Y >= r.Y &&
		other.Right() <= r.Right() && other.Bottom() <= r.Bottom()
}

// Intersects reports whether r and other share at least one pixel.
//
// Each far edge is pulled in by one unit, so rectangles that only touch
// along an edge do not intersect.
func (r Rectangle) Intersects(other Rectangle) bool {
	return !(other.X > r.Right()-1 || other.Right()-1 < r.X ||
		other.Bottom()-1 < r.Y || other.Y > r.Bottom()-1)
}

// Intersection returns the overlapping region of r and other, or the zero
// rectangle when they do not intersect.
func (r Rectangle) Intersection(other Rectangle) Rectangle {
	if !r.Intersects(other) {
		return Rectangle{}
	}
	x0 := math.Max(r.X, other.X)
	y0 := math.Max(r.Y, other.Y)
	x1 := math.Min(r.Right(), other.Right())
	y1 := math.Min(r.Bottom(), other.Bottom())
	return Rectangle{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Union returns the smallest rectangle containing both r and other.
func (r Rectangle) Union(other Rectangle) Rectangle {
	x0 := math.Min(r.X, other.X)
	y0 := math.Min(r.Y, other.Y)
	x1 := math.Max(r.Right(), other.Right())
	y1 := math.Max(r.Bottom(), other.Bottom())
	return Rectangle{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Overlap classifies the placement of r relative to other. All flags are
// false unless the two share a non-empty intersection.
//
// Contains is set when other lies entirely inside r and Contained when r lies
// entirely inside other. The edge flags compare matching edges:
//
//	Top:    r.Top() < other.Top()
//	Bottom: r.Bottom() < other.Bottom()
//	Left:   r.Left() < other.Left()
//	Right:  r.Right() > other.Right()
func (r Rectangle) Overlap(other Rectangle) Overlap {
	var o Overlap
	inter := r.Intersection(other)
	if inter.IsEmpty() {
		return o
	}
	o.Contains = inter.ContainsRect(other)
	o.Contained = other.ContainsRect(r)
	o.Top = r.Top() < other.Top()
	o.Bottom = r.Bottom() < other.Bottom()
	o.Left = r.Left() < other.Left()
	o.Right = r.Right() > other.Right()
	return o
}

// Inflate grows r by dx on the left and right and by dy on the top and
// bottom, keeping its center. Negative amounts shrink r; shrinking past zero
// leaves a negative Width or Height, which IsEmpty reports as empty.
func (r *Rectangle) Inflate(dx, dy float64) *Rectangle {
	r.X -= dx
	r.Width += 2 * dx
	r.Y -= dy
	r.Height += 2 * dy
	return r
}

// InflatePoint is Inflate with the amounts taken from p.
func (r *Rectangle) InflatePoint(p Point) *Rectangle {
	return r.Inflate(p.X, p.Y)
}

// Offset moves r by (dx, dy).
func (r *Rectangle) Offset(dx, dy float64) *Rectangle {
	r.X += dx
	r.Y += dy
	return r
}

// OffsetPoint moves r by p.
func (r *Rectangle) OffsetPoint(p Point) *Rectangle {
	return r.Offset(p.X, p.Y)
}
