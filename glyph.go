package glyphkit

import (
	"github.com/glyphkit/glyphkit/sfnt"
	"github.com/glyphkit/glyphkit/sfnt/glyf"
	"github.com/glyphkit/glyphkit/svgpath"
)

// Point is a single outline point in font-design-unit integer
// coordinates, plus a flag distinguishing on-curve points from the
// quadratic-Bézier control points between them.
type Point = glyf.Point

// Contour is an ordered, non-empty sequence of Points that implicitly
// closes back to its first point.
type Contour = glyf.Contour

// BBox is a glyph's bounding box in font design units, as declared by the
// font (not recomputed from the flattened outline).
type BBox = glyf.BBox

// Glyph is one entry of a Font's glyph inventory. Glyphs are owned by
// their Font and are immutable once the Font has been decoded.
type Glyph struct {
	id           sfnt.GlyphID
	codepoint    rune
	hasCodepoint bool
	aliases      []rune
	name         string
	hasName      bool
	ident        string
	hasIdent     bool
	bbox         BBox
	contours     []Contour
	unitsPerEm   uint16
}

// ID returns the glyph's 0-based index within its Font.
func (g *Glyph) ID() sfnt.GlyphID { return g.id }

// Codepoint returns the glyph's primary Unicode scalar value — the
// numerically smallest codepoint that maps to this glyph in "cmap" — and
// whether one exists. Glyphs with no cmap entry (most commonly
// ".notdef") report ok=false.
func (g *Glyph) Codepoint() (cp rune, ok bool) { return g.codepoint, g.hasCodepoint }

// Aliases returns any additional codepoints, beyond the primary one, that
// also map to this glyph, in ascending order.
func (g *Glyph) Aliases() []rune { return g.aliases }

// Name returns the glyph's postscript name, from the "post" table, and
// whether one was recorded.
func (g *Glyph) Name() (name string, ok bool) { return g.name, g.hasName }

// BBox returns the glyph's declared bounding box in font design units.
func (g *Glyph) BBox() BBox { return g.bbox }

// Contours returns the glyph's flattened, composite-resolved outline.
// Glyphs with no outline (e.g. space) return a nil slice.
func (g *Glyph) Contours() []Contour { return g.contours }

// Ident returns the identifier the code-generation interface (§6) uses to
// name this glyph: the postscript name when present, otherwise a name
// synthesized from the primary codepoint, sanitized and disambiguated
// against every other glyph in the same Font. Glyphs with neither a name
// nor a codepoint (so nothing to generate an identifier from) report
// ok=false.
func (g *Glyph) Ident() (ident string, ok bool) { return g.ident, g.hasIdent }

// SVGPath returns the `d` attribute value of an SVG path rendering this
// glyph's outline, using only M, L, Q, and Z commands. Glyphs with no
// contours render to the empty string. SVG emission never fails.
func (g *Glyph) SVGPath() string {
	return svgpath.Path(g.contours)
}

// SVGPreview returns a complete, standalone SVG document for this glyph —
// sized to a `0 0 unitsPerEm unitsPerEm` viewBox — deflate-compressed and
// base64-encoded as an inline data URL. This is the "extended preview"
// capability of §4.6; it is built on each call and is always available,
// since this module carries no build-time feature gating.
func (g *Glyph) SVGPreview() (string, error) {
	return svgpath.Preview(g.contours, g.unitsPerEm)
}
