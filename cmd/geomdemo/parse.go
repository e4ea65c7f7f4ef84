package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/geom"
)

// Argument errors.
var (
	// ErrFieldCount indicates a shape argument has the wrong number of values.
	ErrFieldCount = errors.New("geomdemo: wrong number of values")

	// ErrInvalidLine indicates a malformed -line1, -line2 or -ray argument.
	ErrInvalidLine = errors.New("geomdemo: invalid line")

	// ErrInvalidCircle indicates a malformed -circle argument.
	ErrInvalidCircle = errors.New("geomdemo: invalid circle")

	// ErrInvalidRect indicates a malformed -rect argument.
	ErrInvalidRect = errors.New("geomdemo: invalid rectangle")
)

// parseFloats splits a comma separated list into exactly n numbers.
func parseFloats(s string, n int) ([]float64, error) {
	fields := strings.Split(s, ",")
	if len(fields) != n {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrFieldCount, len(fields), n)
	}
	vals := make([]float64, n)
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return vals, nil
}

// parseLine parses "x1,y1,x2,y2".
func parseLine(s string) (geom.Line, error) {
	v, err := parseFloats(s, 4)
	if err != nil {
		return geom.Line{}, fmt.Errorf("%w %q: %w", ErrInvalidLine, s, err)
	}
	return geom.NewLine(v[0], v[1], v[2], v[3]), nil
}

// parseRay parses "x1,y1,x2,y2" as an origin and a point the ray passes through.
func parseRay(s string) (geom.Ray, error) {
	l, err := parseLine(s)
	if err != nil {
		return geom.Ray{}, err
	}
	return geom.Ray{Line: l}, nil
}

// parseCircle parses "x,y,diameter".
func parseCircle(s string) (geom.Circle, error) {
	v, err := parseFloats(s, 3)
	if err != nil {
		return geom.Circle{}, fmt.Errorf("%w %q: %w", ErrInvalidCircle, s, err)
	}
	if v[2] < 0 {
		return geom.Circle{}, fmt.Errorf("%w %q: negative diameter", ErrInvalidCircle, s)
	}
	return geom.NewCircle(v[0], v[1], v[2]), nil
}

// parseRect parses "x,y,width,height".
func parseRect(s string) (geom.Rectangle, error) {
	v, err := parseFloats(s, 4)
	if err != nil {
		return geom.Rectangle{}, fmt.Errorf("%w %q: %w", ErrInvalidRect, s, err)
	}
	if v[2] < 0 || v[3] < 0 {
		return geom.Rectangle{}, fmt.Errorf("%w %q: negative size", ErrInvalidRect, s)
	}
	return geom.NewRectangle(v[0], v[1], v[2], v[3]), nil
}
