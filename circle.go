package geom

import "math"

// Circle is a center point plus a radius. The diameter is always twice the
// radius and the radius is never negative.
type Circle struct {
	X, Y   float64
	radius float64
}

// NewCircle creates a Circle centered on (x, y) with the given diameter.
func NewCircle(x, y, diameter float64) Circle {
	var c Circle
	c.SetTo(x, y, diameter)
	return c
}

// SetTo sets the center and diameter. A negative or non-finite diameter
// produces an empty circle.
func (c *Circle) SetTo(x, y, diameter float64) *Circle {
	c.X = x
	c.Y = y
	if !isFinite(diameter) || diameter < 0 {
		if l := correctionLogger(); l != nil {
			l.Debug("geom: circle diameter clamped to zero", "diameter", diameter)
		}
		diameter = 0
	}
	c.radius = diameter * 0.5
	return c
}

// Radius returns the radius.
func (c Circle) Radius() float64 {
	return c.radius
}

// SetRadius sets the radius and with it the diameter. Zero empties the
// circle; negative and NaN values are ignored.
func (c *Circle) SetRadius(r float64) *Circle {
	if r >= 0 {
		c.radius = r
	}
	return c
}

// Diameter returns twice the radius.
func (c Circle) Diameter() float64 {
	return c.radius * 2
}

// SetDiameter sets the diameter and with it the radius. Zero empties the
// circle; negative and NaN values are ignored.
func (c *Circle) SetDiameter(d float64) *Circle {
	if d >= 0 {
		c.radius = d * 0.5
	}
	return c
}

// Circumference returns 2πr.
func (c Circle) Circumference() float64 {
	return 2 * (math.Pi * c.radius)
}

// Area returns πr². An empty circle has zero area.
func (c Circle) Area() float64 {
	if c.radius <= 0 {
		return 0
	}
	return math.Pi * c.radius * c.radius
}

// IsEmpty reports whether the diameter is zero.
func (c Circle) IsEmpty() bool {
	return c.Diameter() <= 0
}

// Top returns the y coordinate of the topmost point.
func (c Circle) Top() float64 {
	return c.Y - c.radius
}

// SetTop resizes the circle so its top edge sits at v, keeping the center.
// A value below the center empties the circle.
func (c *Circle) SetTop(v float64) *Circle {
	if v <= c.Y {
		c.radius = c.Y - v
	} else {
		c.radius = 0
	}
	return c
}

// Bottom returns the y coordinate of the lowest point.
func (c Circle) Bottom() float64 {
	return c.Y + c.radius
}

// SetBottom resizes the circle so its bottom edge sits at v, keeping the
// center. A value above the center empties the circle.
func (c *Circle) SetBottom(v float64) *Circle {
	if v >= c.Y {
		c.radius = v - c.Y
	} else {
		c.radius = 0
	}
	return c
}

// Left returns the x coordinate of the leftmost point.
func (c Circle) Left() float64 {
	return c.X - c.radius
}

// SetLeft resizes the circle so its left edge sits at v, keeping the center.
// A value right of the center empties the circle.
func (c *Circle) SetLeft(v float64) *Circle {
	if v <= c.X {
		c.radius = c.X - v
	} else {
		c.radius = 0
	}
	return c
}

// Right returns the x coordinate of the rightmost point.
func (c Circle) Right() float64 {
	return c.X + c.radius
}

// SetRight resizes the circle so its right edge sits at v, keeping the
// center. A value left of the center empties the circle.
func (c *Circle) SetRight(v float64) *Circle {
	if v >= c.X {
		c.radius = v - c.X
	} else {
		c.radius = 0
	}
	return c
}

// Clone returns a copy of c.
func (c Circle) Clone() Circle {
	return c
}

// CopyFrom overwrites c with src and returns c.
func (c *Circle) CopyFrom(src Circle) *Circle {
	return c.SetTo(src.X, src.Y, src.Diameter())
}

// CopyTo overwrites dst with c and returns dst.
func (c Circle) CopyTo(dst *Circle) *Circle {
	return dst.CopyFrom(c)
}

// Equals reports exact equality of center and diameter.
func (c Circle) Equals(other Circle) bool {
	return c.X == other.X && c.Y == other.Y && c.radius == other.radius
}

// Position returns the center.
func (c Circle) Position() Point {
	return Point{X: c.X, Y: c.Y}
}

// DistanceTo returns the distance between the center of c and the position
// of target, rounded to the nearest integer when round is set.
func (c Circle) DistanceTo(target Positioned, round bool) float64 {
	p := target.Position()
	return distance(c.X-p.X, c.Y-p.Y, round)
}

// Intersects reports whether the two circles overlap. Circles that only
// touch are not intersecting.
func (c Circle) Intersects(other Circle) bool {
	return c.DistanceTo(other, false) < c.radius+other.radius
}

// CircumferencePoint returns the point on the boundary at the given angle,
// measured in degrees when inDegrees is set and in radians otherwise.
func (c Circle) CircumferencePoint(angle float64, inDegrees bool) Point {
	if inDegrees {
		angle *= math.Pi / 180
	}
	return Point{
		X: c.X + c.radius*math.Cos(angle),
		Y: c.Y + c.radius*math.Sin(angle),
	}
}

// Offset moves the center by (dx, dy).
func (c *Circle) Offset(dx, dy float64) *Circle {
	c.X += dx
	c.Y += dy
	return c
}

// OffsetPoint moves the center by p.
func (c *Circle) OffsetPoint(p Point) *Circle {
	return c.Offset(p.X, p.Y)
}

// Bounds returns the smallest Rectangle enclosing c.
func (c Circle) Bounds() Rectangle {
	return Rectangle{X: c.X - c.radius, Y: c.Y - c.radius, Width: c.Diameter(), Height: c.Diameter()}
}
