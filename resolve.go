package glyphkit

import (
	"math"

	"github.com/glyphkit/glyphkit/sfnt"
	"github.com/glyphkit/glyphkit/sfnt/glyf"
)

// maxCompositeDepth bounds composite-reference recursion (§4.5, §5); a
// font nesting components deeper than this is rejected rather than risk
// unbounded recursion, independent of the cycle check below.
const maxCompositeDepth = 64

// resolver flattens composite glyphs against the full decoded "glyf"
// table, substituting each referenced glyph's contours under the
// component's affine transform. It consumes glyphs by id rather than
// holding owning references between Glyphs (§9 "Composite glyph graph").
type resolver struct {
	glyphs []*glyf.Glyph
}

// resolve returns the fully flattened contour list for gid, in its own
// coordinate frame (identity transform applied).
func (r *resolver) resolve(gid sfnt.GlyphID) ([]glyf.Contour, error) {
	return r.resolveUnder(gid, glyf.Identity, nil, 0)
}

func (r *resolver) resolveUnder(gid sfnt.GlyphID, transform glyf.Affine, path []sfnt.GlyphID, depth int) ([]glyf.Contour, error) {
	if depth > maxCompositeDepth {
		return nil, &sfnt.MalformedError{Table: "glyf", Detail: "composite nesting exceeds 64"}
	}
	for _, seen := range path {
		if seen == gid {
			return nil, &sfnt.MalformedError{Table: "glyf", Detail: "composite reference cycle"}
		}
	}
	if int(gid) >= len(r.glyphs) {
		return nil, &sfnt.MalformedError{Table: "glyf", Detail: "composite references out-of-range glyph id"}
	}

	g := r.glyphs[gid]
	if !g.IsComposite() {
		return applyTransform(g.Contours, transform), nil
	}

	path = append(path, gid)
	var out []glyf.Contour
	for _, comp := range g.Components {
		combined := transform.Compose(comp.Transform)
		sub, err := r.resolveUnder(comp.GlyphIndex, combined, path, depth+1)
		if err != nil {
			return nil, err
		}
		out = append(out, sub...)
	}
	return out, nil
}

// applyTransform returns contours with t applied to every point, rounded
// to 16-bit signed integers for storage once composition is complete.
// Arithmetic is carried in float64 (well beyond the 32-bit minimum §9
// calls for) so chained transforms don't lose precision before rounding.
func applyTransform(contours []glyf.Contour, t glyf.Affine) []glyf.Contour {
	if t == glyf.Identity {
		return contours
	}
	out := make([]glyf.Contour, len(contours))
	for i, c := range contours {
		nc := make(glyf.Contour, len(c))
		for j, p := range c {
			x, y := t.Apply(float64(p.X), float64(p.Y))
			nc[j] = glyf.Point{X: round16(x), Y: round16(y), OnCurve: p.OnCurve}
		}
		out[i] = nc
	}
	return out
}

func round16(v float64) int16 {
	r := math.Round(v)
	switch {
	case r > math.MaxInt16:
		return math.MaxInt16
	case r < math.MinInt16:
		return math.MinInt16
	default:
		return int16(r)
	}
}
