// Package geom provides 2D geometry primitives and intersection tests for
// games and interactive graphics.
//
// # Overview
//
// The package covers points, lines, rays, circles, rectangles and axis-aligned
// bounding boxes, together with a set of intersection functions between them.
// All coordinates are float64. Shapes are plain value types: copy them with
// assignment or Clone, and mutate them through pointer methods which return
// the receiver so calls can be chained.
//
//	r := geom.NewRectangle(0, 0, 100, 50)
//	r.Offset(10, 10).Inflate(5, 5)
//
//	res := geom.LineToLine(geom.NewLine(0, 0, 2, 2), geom.NewLine(0, 2, 2, 0), nil)
//	if res.Result {
//		fmt.Println(res.X, res.Y) // 1 1
//	}
//
// # Intersection results
//
// The intersection functions take an optional *IntersectResult. Passing a
// result reuses it, which keeps per-frame collision loops allocation free;
// passing nil allocates a new one. When Result is false the other fields are
// unspecified.
//
// # Coordinate System
//
// Uses screen coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians measured with atan2, 0 is right
//
// Rectangle "top" is its minimum y and "bottom" its maximum y.
//
// # Logging
//
// The package is silent by default. Call SetLogger with a *slog.Logger to see
// debug messages about arguments that were ignored or clamped.
//
// # Interop
//
// Points and rectangles convert to 26.6 fixed point (golang.org/x/image/math/fixed)
// and to image.Rectangle. The integration/spatial and integration/ctessum
// packages convert to gonum's r2 types and to github.com/ctessum/geom.
package geom

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
