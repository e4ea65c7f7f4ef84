// Command geomdemo runs the geom intersection tests on shapes given on the
// command line and prints the results.
//
//	geomdemo -line1 0,0,2,2 -line2 0,2,2,0 -circle 1,1,2 -rect 0,0,4,4
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/geom"
)

func main() {
	var (
		line1   = flag.String("line1", "0,0,2,2", "first line as x1,y1,x2,y2")
		line2   = flag.String("line2", "0,2,2,0", "second line as x1,y1,x2,y2")
		ray     = flag.String("ray", "", "ray as originX,originY,x,y")
		circle  = flag.String("circle", "", "circle as x,y,diameter")
		rect    = flag.String("rect", "", "rectangle as x,y,width,height")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		geom.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	if err := run(os.Stdout, *line1, *line2, *ray, *circle, *rect); err != nil {
		log.Fatalf("geomdemo: %v", err)
	}
}

// run parses the shape arguments and writes one line per intersection test.
// Empty ray, circle and rect arguments skip the tests that need them.
func run(w io.Writer, line1, line2, ray, circle, rect string) error {
	l1, err := parseLine(line1)
	if err != nil {
		return err
	}
	l2, err := parseLine(line2)
	if err != nil {
		return err
	}

	var res geom.IntersectResult
	report(w, "line/line", geom.LineToLine(l1, l2, &res))
	report(w, "line/segment", geom.LineToSegment(l1, l2, &res))
	report(w, "segment/segment", geom.SegmentToSegment(l1, l2, &res))

	if ray != "" {
		r, err := parseRay(ray)
		if err != nil {
			return err
		}
		report(w, "line/ray", geom.LineToRay(l1, r, &res))
	}

	var c geom.Circle
	if circle != "" {
		if c, err = parseCircle(circle); err != nil {
			return err
		}
		geom.LineToCircle(l1, c, &res)
		report(w, "line/circle", &res)
		if res.Result {
			fmt.Fprintf(w, "  crossings (%g, %g) (%g, %g)\n", res.X1, res.Y1, res.X2, res.Y2)
		}
	}

	if rect != "" {
		r, err := parseRect(rect)
		if err != nil {
			return err
		}
		report(w, "line/rect top", geom.LineToRectangle(l1, r, &res))
		if circle != "" {
			geom.RectangleToRectangle(c.Bounds(), r, &res)
			report(w, "circle bounds/rect", &res)
			if res.Result {
				fmt.Fprintf(w, "  region %gx%g\n", res.Width, res.Height)
			}
		}
	}
	return nil
}

func report(w io.Writer, name string, res *geom.IntersectResult) {
	if !res.Result {
		fmt.Fprintf(w, "%-20s no intersection\n", name)
		return
	}
	fmt.Fprintf(w, "%-20s (%g, %g)\n", name, res.X, res.Y)
}
