package main

import (
	"bytes"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/gogpu/geom"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    geom.Line
		wantErr error
	}{
		{"valid", "0,1,2,3", geom.NewLine(0, 1, 2, 3), nil},
		{"spaces", " 0, -1.5 ,2,3e1", geom.NewLine(0, -1.5, 2, 30), nil},
		{"too few", "0,1,2", geom.Line{}, ErrFieldCount},
		{"not a number", "0,1,x,3", geom.Line{}, strconv.ErrSyntax},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseLine(tt.in)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) || !errors.Is(err, ErrInvalidLine) {
					t.Fatalf("parseLine(%q) error = %v, want %v and %v", tt.in, err, tt.wantErr, ErrInvalidLine)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseLine(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("parseLine(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseCircleAndRect(t *testing.T) {
	c, err := parseCircle("1,2,10")
	if err != nil || c.Radius() != 5 || c.X != 1 || c.Y != 2 {
		t.Errorf("parseCircle = %+v, %v", c, err)
	}
	if _, err := parseCircle("1,2,-10"); !errors.Is(err, ErrInvalidCircle) {
		t.Errorf("negative diameter error = %v", err)
	}

	r, err := parseRect("1,2,3,4")
	if err != nil || !r.Equals(geom.NewRectangle(1, 2, 3, 4)) {
		t.Errorf("parseRect = %v, %v", r, err)
	}
	if _, err := parseRect("1,2,3,-4"); !errors.Is(err, ErrInvalidRect) {
		t.Errorf("negative height error = %v", err)
	}
	if _, err := parseRect("1,2,3"); !errors.Is(err, ErrFieldCount) {
		t.Errorf("short rect error = %v", err)
	}
}

func TestRun(t *testing.T) {
	var buf bytes.Buffer
	if err := run(&buf, "0,0,2,2", "0,2,2,0", "0,0,1,0", "1,1,2", "0,0,4,4"); err != nil {
		t.Fatalf("run: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"line/line",
		"(1, 1)",
		"line/ray",
		"line/circle",
		"crossings",
		"line/rect top",
		"region 2x2",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRunParallel(t *testing.T) {
	var buf bytes.Buffer
	if err := run(&buf, "0,0,1,1", "0,1,1,2", "", "", ""); err != nil {
		t.Fatalf("run: %v", err)
	}
	if got := strings.Count(buf.String(), "no intersection"); got != 3 {
		t.Errorf("want 3 misses, got %d:\n%s", got, buf.String())
	}
}

func TestRunBadArgument(t *testing.T) {
	var buf bytes.Buffer
	err := run(&buf, "0,0,1,1", "0,1,1,2", "", "", "1,2")
	if !errors.Is(err, ErrInvalidRect) {
		t.Errorf("run error = %v, want %v", err, ErrInvalidRect)
	}
}
