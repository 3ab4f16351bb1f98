// Package svgpath converts resolved TrueType contours into SVG path data:
// the "real design" piece that walks a quadratic-Bézier contour, with its
// implicit on/off-curve midpoints, into a minimal, deterministic `d`
// attribute string.
package svgpath

import (
	"strconv"
	"strings"

	"github.com/glyphkit/glyphkit/sfnt/glyf"
)

// vertex is a contour point in the emitter's working coordinate system:
// y already flipped from TrueType's y-up to SVG's y-down.
type vertex struct {
	x, y    float64
	onCurve bool
}

// Path renders contours as the `d` attribute value of an SVG path, using
// only M, L, Q, and Z commands. Output is byte-deterministic for a given
// input: no locale-dependent number formatting, fixed command ordering.
func Path(contours []glyf.Contour) string {
	var sb strings.Builder
	for _, c := range contours {
		writeContour(&sb, c)
	}
	return sb.String()
}

// writeContour emits one closed subpath for c. An empty contour (which
// should not occur in a well-formed font, but is tolerated) emits
// nothing.
func writeContour(sb *strings.Builder, c glyf.Contour) {
	if len(c) == 0 {
		return
	}

	ring := startingRing(c)
	m := len(ring)

	sb.WriteByte('M')
	writeNum(sb, ring[0].x)
	sb.WriteByte(' ')
	writeNum(sb, ring[0].y)

	// Walk the ring as m cyclic transitions (a, b); the final transition
	// closes back to ring[0]. A trailing on-curve -> on-curve closing
	// transition is left to the `Z` command rather than emitted as a
	// redundant explicit `L`; a closing transition through an off-curve
	// control point has no `Z` equivalent and is always emitted.
	for i := 0; i < m; i++ {
		a := ring[i]
		b := ring[(i+1)%m]
		closing := i == m-1

		switch {
		case a.onCurve && b.onCurve:
			if closing {
				continue
			}
			sb.WriteByte('L')
			writeNum(sb, b.x)
			sb.WriteByte(' ')
			writeNum(sb, b.y)
		case a.onCurve && !b.onCurve:
			// b is buffered as the control point for the transition that
			// follows; nothing to emit yet.
		case !a.onCurve && b.onCurve:
			writeQuad(sb, a, b)
		default: // both off-curve
			mid := vertex{x: (a.x + b.x) / 2, y: (a.y + b.y) / 2, onCurve: true}
			writeQuad(sb, a, mid)
		}
	}

	sb.WriteByte('Z')
}

func writeQuad(sb *strings.Builder, control, end vertex) {
	sb.WriteByte('Q')
	writeNum(sb, control.x)
	sb.WriteByte(' ')
	writeNum(sb, control.y)
	sb.WriteByte(' ')
	writeNum(sb, end.x)
	sb.WriteByte(' ')
	writeNum(sb, end.y)
}

// startingRing converts c into emitter coordinates (y negated) and
// rotates or extends it so that element 0 is always on-curve:
//   - if the first point is already on-curve, the ring is c unchanged;
//   - else if the last point is on-curve, the ring is c rotated so the
//     last point comes first;
//   - else a synthetic on-curve point is inserted at the midpoint of the
//     last and first points, per the standard TTF implicit-midpoint rule.
func startingRing(c glyf.Contour) []vertex {
	n := len(c)
	pts := make([]vertex, n)
	for i, p := range c {
		pts[i] = vertex{x: float64(p.X), y: -float64(p.Y), onCurve: p.OnCurve}
	}

	if pts[0].onCurve {
		return pts
	}

	last := pts[n-1]
	if last.onCurve {
		rotated := make([]vertex, n)
		rotated[0] = last
		copy(rotated[1:], pts[:n-1])
		return rotated
	}

	mid := vertex{x: (last.x + pts[0].x) / 2, y: (last.y + pts[0].y) / 2, onCurve: true}
	out := make([]vertex, 0, n+1)
	out = append(out, mid)
	out = append(out, pts...)
	return out
}

// writeNum appends the shortest decimal representation that round-trips
// exactly to v, with no trailing zeros and no leading zero on a negative
// fraction. Integer coordinates (the overwhelming majority: only
// synthesized midpoints can be fractional) render with no decimal point
// at all.
func writeNum(sb *strings.Builder, v float64) {
	if v == 0 {
		v = 0 // normalize -0 from point negation
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if strings.HasPrefix(s, "-0.") {
		s = "-" + s[2:]
	}
	sb.WriteString(s)
}
