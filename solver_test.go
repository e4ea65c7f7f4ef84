package geom

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

// verifySolverRoots compares roots with expected in order; SolveQuadratic
// sorts its output so no reordering is done here.
func verifySolverRoots(t *testing.T, name string, roots, expected []float64, epsilon float64) {
	t.Helper()

	if len(roots) != len(expected) {
		t.Errorf("%s: got %d roots, want %d. roots=%v, expected=%v",
			name, len(roots), len(expected), roots, expected)
		return
	}
	for i := range roots {
		if !scalar.EqualWithinAbs(roots[i], expected[i], epsilon) {
			t.Errorf("%s: root[%d] = %v, want %v (roots=%v)", name, i, roots[i], expected[i], roots)
		}
	}
}

func TestSolveQuadratic(t *testing.T) {
	tests := []struct {
		name     string
		a, b, c  float64
		expected []float64
		epsilon  float64
	}{
		{
			name: "x^2 - 5 = 0 (two roots)",
			a:    1, b: 0, c: -5,
			expected: []float64{-math.Sqrt(5), math.Sqrt(5)},
			epsilon:  1e-10,
		},
		{
			name: "x^2 + 5 = 0 (no real roots)",
			a:    1, b: 0, c: 5,
			expected: nil,
			epsilon:  1e-10,
		},
		{
			name: "x + 5 = 0 (linear)",
			a:    0, b: 1, c: 5,
			expected: []float64{-5},
			epsilon:  1e-10,
		},
		{
			name: "x^2 + 2x + 1 = 0 (double root at -1)",
			a:    1, b: 2, c: 1,
			expected: []float64{-1},
			epsilon:  1e-10,
		},
		{
			name: "x^2 - 5x + 6 = 0 (roots at 2 and 3)",
			a:    1, b: -5, c: 6,
			expected: []float64{2, 3},
			epsilon:  1e-10,
		},
		{
			name: "2x^2 - 10x + 12 = 0 (roots at 2 and 3)",
			a:    2, b: -10, c: 12,
			expected: []float64{2, 3},
			epsilon:  1e-10,
		},
		{
			name: "-x^2 + x = 0 (negative leading coefficient)",
			a:    -1, b: 1, c: 0,
			expected: []float64{0, 1},
			epsilon:  1e-12,
		},
		{
			name: "line through unit circle",
			a:    400, b: -400, c: 75,
			expected: []float64{0.25, 0.75},
			epsilon:  1e-12,
		},
		{
			name: "x^2 - 1e8x + 1 = 0 (cancellation)",
			a:    1, b: -1e8, c: 1,
			expected: []float64{1e-8, 1e8},
			epsilon:  1e-6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roots := SolveQuadratic(tt.a, tt.b, tt.c)
			verifySolverRoots(t, tt.name, roots, tt.expected, tt.epsilon)

			for _, r := range roots {
				val := tt.a*r*r + tt.b*r + tt.c
				if math.Abs(val) > 1e-8*math.Max(1, math.Abs(tt.b*r)) {
					t.Errorf("%s: root %v gives f(x) = %v, want 0", tt.name, r, val)
				}
			}
		})
	}
}

func TestSolveQuadratic_EdgeCases(t *testing.T) {
	// All zero
	roots := SolveQuadratic(0, 0, 0)
	if len(roots) != 1 || roots[0] != 0 {
		t.Errorf("Degenerate case (all zero): got %v, want [0]", roots)
	}

	// 0x + 5 = 0 has no solution.
	if roots := SolveQuadratic(0, 0, 5); roots != nil {
		t.Errorf("Inconsistent linear: got %v, want none", roots)
	}

	// Very small discriminant (nearly double root)
	roots = SolveQuadratic(1, -2, 1+1e-15)
	for _, r := range roots {
		if math.Abs(r-1) > 0.001 {
			t.Errorf("Nearly double root: root %v not close to 1", r)
		}
	}

	// The small root survives the cancellation.
	roots = SolveQuadratic(1, -1e8, 1)
	if len(roots) != 2 || !scalar.EqualWithinRel(roots[0], 1e-8, 1e-12) {
		t.Errorf("Cancellation: got %v, want small root 1e-8", roots)
	}

	// p² overflows: roots near -p and q/-p.
	roots = SolveQuadratic(1, -1e200, 1)
	if len(roots) != 2 || !scalar.EqualWithinRel(roots[1], 1e200, 1e-12) || !scalar.EqualWithinRel(roots[0], 1e-200, 1e-12) {
		t.Errorf("Overflowing discriminant: got %v", roots)
	}
}

func TestIsFinite(t *testing.T) {
	tests := []struct {
		name   string
		x      float64
		expect bool
	}{
		{"positive", 1.0, true},
		{"negative", -1.0, true},
		{"zero", 0.0, true},
		{"inf", math.Inf(1), false},
		{"neg inf", math.Inf(-1), false},
		{"nan", math.NaN(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := isFinite(tt.x)
			if result != tt.expect {
				t.Errorf("isFinite(%v) = %v, want %v", tt.x, result, tt.expect)
			}
		})
	}
}
