package geom

import (
	"image"
	"math"

	"golang.org/x/image/math/fixed"
)

// Conversions between geom shapes and the integer types used by rasterizers
// and glyph code: 26.6 fixed point from golang.org/x/image and pixel
// rectangles from the image package.

// floatToFixed converts v to 26.6 fixed point, truncating toward zero.
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fixedToFloat converts a 26.6 fixed point value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

// Fixed converts p to 26.6 fixed point.
func (p Point) Fixed() fixed.Point26_6 {
	return fixed.Point26_6{X: floatToFixed(p.X), Y: floatToFixed(p.Y)}
}

// PointFromFixed converts a 26.6 fixed point position to a Point.
func PointFromFixed(fp fixed.Point26_6) Point {
	return Point{X: fixedToFloat(fp.X), Y: fixedToFloat(fp.Y)}
}

// Fixed converts r to a 26.6 fixed point rectangle with Min at the top-left
// corner and Max at the bottom-right one.
func (r Rectangle) Fixed() fixed.Rectangle26_6 {
	return fixed.Rectangle26_6{
		Min: r.TopLeft().Fixed(),
		Max: r.BottomRight().Fixed(),
	}
}

// RectangleFromFixed converts a 26.6 fixed point rectangle. A rectangle with
// Max before Min yields zero extents on that axis.
func RectangleFromFixed(fr fixed.Rectangle26_6) Rectangle {
	var r Rectangle
	r.X = fixedToFloat(fr.Min.X)
	r.Y = fixedToFloat(fr.Min.Y)
	r.SetRight(fixedToFloat(fr.Max.X))
	r.SetBottom(fixedToFloat(fr.Max.Y))
	return r
}

// ImageRect returns the smallest pixel rectangle covering r. Fractional
// edges are rounded outwards.
func (r Rectangle) ImageRect() image.Rectangle {
	return image.Rect(
		int(math.Floor(r.X)), int(math.Floor(r.Y)),
		int(math.Ceil(r.Right())), int(math.Ceil(r.Bottom())),
	)
}

// RectangleFromImage converts a pixel rectangle. The input is canonicalised
// first, so swapped corners still give a non-negative size.
func RectangleFromImage(ir image.Rectangle) Rectangle {
	ir = ir.Canon()
	return Rectangle{
		X:      float64(ir.Min.X),
		Y:      float64(ir.Min.Y),
		Width:  float64(ir.Dx()),
		Height: float64(ir.Dy()),
	}
}
