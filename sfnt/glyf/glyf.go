// Package glyf decodes the SFNT "glyf" and "loca" tables into per-glyph
// outline data: either a simple glyph's contours, or a composite glyph's
// list of component references.
package glyf

import "github.com/glyphkit/glyphkit/sfnt"

// BBox is a glyph's declared bounding box, in font design units.
type BBox struct {
	XMin, YMin, XMax, YMax int16
}

// Glyph is one decoded entry of the "glyf" table. Exactly one of Contours
// (numberOfContours >= 0) or Components (numberOfContours == -1) is set;
// a glyph with a zero-length loca entry (e.g. space) decodes to the zero
// value, with both nil.
type Glyph struct {
	BBox       BBox
	Contours   []Contour
	Components []Component
}

// IsComposite reports whether g is a composite glyph.
func (g *Glyph) IsComposite() bool { return g.Components != nil }

// Decode parses the "glyf" and "loca" tables into numGlyphs Glyphs.
// shortLoca selects the loca offset width, from head.IndexToLocFormat
// (0 = short, 1 = long).
func Decode(glyfData, locaData []byte, numGlyphs int, shortLoca bool) ([]*Glyph, error) {
	offsets, err := decodeLoca(locaData, numGlyphs, shortLoca)
	if err != nil {
		return nil, err
	}

	glyphs := make([]*Glyph, numGlyphs)
	for i := 0; i < numGlyphs; i++ {
		start, end := offsets[i], offsets[i+1]
		if end < start || end > len(glyfData) {
			return nil, &sfnt.MalformedError{Table: "loca", Detail: "offset out of range"}
		}
		if end == start {
			glyphs[i] = &Glyph{}
			continue
		}

		g, err := decodeGlyph(glyfData[start:end])
		if err != nil {
			return nil, err
		}
		glyphs[i] = g
	}
	return glyphs, nil
}

func decodeGlyph(data []byte) (*Glyph, error) {
	c := sfnt.NewCursor(data)

	numContours, err := c.I16()
	if err != nil {
		return nil, err
	}
	if numContours < -1 {
		return nil, &sfnt.MalformedError{Table: "glyf", Detail: "numberOfContours less than -1"}
	}
	xMin, err := c.FWord()
	if err != nil {
		return nil, err
	}
	yMin, err := c.FWord()
	if err != nil {
		return nil, err
	}
	xMax, err := c.FWord()
	if err != nil {
		return nil, err
	}
	yMax, err := c.FWord()
	if err != nil {
		return nil, err
	}
	bbox := BBox{xMin, yMin, xMax, yMax}

	body, err := c.Bytes(len(data) - c.Pos())
	if err != nil {
		return nil, err
	}

	if numContours >= 0 {
		contours, err := decodeSimple(body, int(numContours))
		if err != nil {
			return nil, err
		}
		return &Glyph{BBox: bbox, Contours: contours}, nil
	}

	components, err := decodeComposite(body)
	if err != nil {
		return nil, err
	}
	return &Glyph{BBox: bbox, Components: components}, nil
}
