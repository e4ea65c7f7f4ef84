package geom

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Point represents a 2D coordinate.
//
// Methods with a pointer receiver mutate the point in place and return it so
// calls can be chained. Methods with a value receiver never modify p.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Polar returns the point at the given distance from the origin along angle
// radians.
func Polar(distance, angle float64) Point {
	return Point{X: distance * math.Cos(angle), Y: distance * math.Sin(angle)}
}

// Interpolate returns b - (b-a)*f componentwise, so f=1 returns a and f=0
// returns b. It is evaluated as a*f + b*(1-f), which hits both endpoints
// exactly.
func Interpolate(a, b Point, f float64) Point {
	g := 1 - f
	return Point{X: a.X*f + b.X*g, Y: a.Y*f + b.Y*g}
}

// DistanceBetween returns the Euclidean distance between a and b, rounded to
// the nearest integer when round is set.
func DistanceBetween(a, b Point, round bool) float64 {
	return distance(a.X-b.X, a.Y-b.Y, round)
}

func distance(dx, dy float64, round bool) float64 {
	d := math.Sqrt(dx*dx + dy*dy)
	if round {
		return math.Round(d)
	}
	return d
}

// SetTo sets both coordinates.
func (p *Point) SetTo(x, y float64) *Point {
	p.X = x
	p.Y = y
	return p
}

// Polar sets p to (distance*cos(angle), distance*sin(angle)).
func (p *Point) Polar(distance, angle float64) *Point {
	return p.SetTo(distance*math.Cos(angle), distance*math.Sin(angle))
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// AddTo moves p by (dx, dy).
func (p *Point) AddTo(dx, dy float64) *Point {
	return p.SetTo(p.X+dx, p.Y+dy)
}

// SubtractFrom moves p by (-dx, -dy).
func (p *Point) SubtractFrom(dx, dy float64) *Point {
	return p.SetTo(p.X-dx, p.Y-dy)
}

// Offset is an alias of AddTo kept for symmetry with the other shapes.
func (p *Point) Offset(dx, dy float64) *Point {
	return p.AddTo(dx, dy)
}

// Invert swaps X and Y.
func (p *Point) Invert() *Point {
	return p.SetTo(p.Y, p.X)
}

// Clamp restricts both coordinates to [min, max].
func (p *Point) Clamp(min, max float64) *Point {
	return p.ClampX(min, max).ClampY(min, max)
}

// ClampX restricts X to [min, max].
func (p *Point) ClampX(min, max float64) *Point {
	p.X = math.Max(math.Min(p.X, max), min)
	return p
}

// ClampY restricts Y to [min, max].
func (p *Point) ClampY(min, max float64) *Point {
	p.Y = math.Max(math.Min(p.Y, max), min)
	return p
}

// Clone returns a copy of p.
func (p Point) Clone() Point {
	return p
}

// CopyFrom overwrites p with src and returns p.
func (p *Point) CopyFrom(src Point) *Point {
	return p.SetTo(src.X, src.Y)
}

// CopyTo overwrites dst with p and returns dst.
func (p Point) CopyTo(dst *Point) *Point {
	return dst.CopyFrom(p)
}

// DistanceTo returns the distance from p to target.
func (p Point) DistanceTo(target Positioned, round bool) float64 {
	q := target.Position()
	return distance(p.X-q.X, p.Y-q.Y, round)
}

// DistanceToXY returns the distance from p to (x, y).
func (p Point) DistanceToXY(x, y float64, round bool) float64 {
	return distance(p.X-x, p.Y-y, round)
}

// DistanceCompare reports whether target is at least d away from p.
func (p Point) DistanceCompare(target Positioned, d float64) bool {
	return p.DistanceTo(target, false) >= d
}

// AngleTo returns the angle in radians from p towards target.
func (p Point) AngleTo(target Point) float64 {
	return math.Atan2(target.Y-p.Y, target.X-p.X)
}

// AngleToXY returns the angle in radians from p towards (x, y).
func (p Point) AngleToXY(x, y float64) float64 {
	return math.Atan2(y-p.Y, x-p.X)
}

// Equals reports exact coordinate equality.
func (p Point) Equals(q Point) bool {
	return p.X == q.X && p.Y == q.Y
}

// EqualsApprox reports whether both coordinates differ by at most tol.
func (p Point) EqualsApprox(q Point, tol float64) bool {
	return scalar.EqualWithinAbs(p.X, q.X, tol) && scalar.EqualWithinAbs(p.Y, q.Y, tol)
}

// Position implements Positioned.
func (p Point) Position() Point {
	return p
}
