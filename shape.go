package geom

// Positioned is implemented by every shape that has a single reference
// position: a Point is its own position, a Circle and an AABB report their
// center and a Rectangle its top-left corner.
type Positioned interface {
	Position() Point
}

var (
	_ Positioned = Point{}
	_ Positioned = Circle{}
	_ Positioned = Rectangle{}
	_ Positioned = AABB{}
)
