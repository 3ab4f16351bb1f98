package svgpath

import (
	"testing"

	"github.com/glyphkit/glyphkit/sfnt/glyf"
)

func TestPathEmpty(t *testing.T) {
	if got := Path(nil); got != "" {
		t.Errorf("Path(nil) = %q, want empty string", got)
	}
}

func TestPathTriangle(t *testing.T) {
	contours := []glyf.Contour{{
		{X: 0, Y: 0, OnCurve: true},
		{X: 100, Y: 0, OnCurve: true},
		{X: 50, Y: 100, OnCurve: true},
	}}
	want := "M0 0L100 0L50 -100Z"
	if got := Path(contours); got != want {
		t.Errorf("Path() = %q, want %q", got, want)
	}
}

func TestPathOffCurveEndpoints(t *testing.T) {
	contours := []glyf.Contour{{
		{X: 0, Y: 0, OnCurve: false},
		{X: 100, Y: 0, OnCurve: false},
	}}
	want := "M50 0Q0 0 50 0Q100 0 50 0Z"
	if got := Path(contours); got != want {
		t.Errorf("Path() = %q, want %q", got, want)
	}
}

func TestPathStartsOffCurveEndsOnCurve(t *testing.T) {
	// last point on-curve: ring rotates so it leads, no midpoint synthesis.
	contours := []glyf.Contour{{
		{X: 50, Y: 0, OnCurve: false},
		{X: 100, Y: 100, OnCurve: true},
		{X: 0, Y: 100, OnCurve: true},
	}}
	got := Path(contours)
	if got[0] != 'M' || got[len(got)-1] != 'Z' {
		t.Fatalf("Path() = %q, want to start with M and end with Z", got)
	}
	// Rotated ring: [ (0,100), (50,0,off), (100,100) ], so the path opens
	// at the original last point and curves through the off-curve control
	// back to (100,100) before closing.
	want := "M0 -100Q50 0 100 -100Z"
	if got != want {
		t.Errorf("Path() = %q, want %q", got, want)
	}
}

func TestPathDeterministic(t *testing.T) {
	contours := []glyf.Contour{{
		{X: 0, Y: 0, OnCurve: true},
		{X: 50, Y: 50, OnCurve: false},
		{X: 100, Y: 0, OnCurve: true},
	}}
	first := Path(contours)
	second := Path(contours)
	if first != second {
		t.Errorf("Path() not deterministic: %q vs %q", first, second)
	}
}

func TestPathMultipleContours(t *testing.T) {
	contours := []glyf.Contour{
		{{X: 0, Y: 0, OnCurve: true}, {X: 10, Y: 0, OnCurve: true}, {X: 5, Y: 10, OnCurve: true}},
		{{X: 20, Y: 0, OnCurve: true}, {X: 30, Y: 0, OnCurve: true}, {X: 25, Y: 10, OnCurve: true}},
	}
	got := Path(contours)
	wantPrefix := "M0 0L10 0L5 -10Z"
	wantSuffix := "M20 0L30 0L25 -10Z"
	if got != wantPrefix+wantSuffix {
		t.Errorf("Path() = %q, want %q", got, wantPrefix+wantSuffix)
	}
}
