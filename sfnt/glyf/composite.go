package glyf

import "github.com/glyphkit/glyphkit/sfnt"

const (
	compArgsAreWords       = 0x0001
	compArgsAreXY          = 0x0002
	compHaveScale          = 0x0008
	compMoreComponents     = 0x0020
	compHaveXYScale        = 0x0040
	compHaveTwoByTwo       = 0x0080
	compHaveInstructions   = 0x0100
)

// Affine is a 2-D affine transform (x', y') = (a*x + c*y + e, b*x + d*y + f).
type Affine struct {
	A, B, C, D, E, F float64
}

// Identity is the transform that leaves coordinates unchanged.
var Identity = Affine{A: 1, D: 1}

// Apply transforms a point.
func (t Affine) Apply(x, y float64) (float64, float64) {
	return t.A*x + t.C*y + t.E, t.B*x + t.D*y + t.F
}

// Compose returns the transform equivalent to applying t first, then
// outer ("outer ∘ t").
func (outer Affine) Compose(t Affine) Affine {
	return Affine{
		A: outer.A*t.A + outer.C*t.B,
		B: outer.B*t.A + outer.D*t.B,
		C: outer.A*t.C + outer.C*t.D,
		D: outer.B*t.C + outer.D*t.D,
		E: outer.A*t.E + outer.C*t.F + outer.E,
		F: outer.B*t.E + outer.D*t.F + outer.F,
	}
}

// Component is one entry of a composite glyph: a reference to another
// glyph plus the transform under which its outline is placed.
type Component struct {
	GlyphIndex sfnt.GlyphID
	Transform  Affine
}

// decodeComposite reads the component records of a composite glyph body
// (the bytes after the shared 10-byte glyph header).
func decodeComposite(data []byte) ([]Component, error) {
	c := sfnt.NewCursor(data)

	var components []Component
	for {
		flags, err := c.U16()
		if err != nil {
			return nil, err
		}
		glyphIndex, err := c.U16()
		if err != nil {
			return nil, err
		}

		var dx, dy float64
		if flags&compArgsAreXY == 0 {
			return nil, &sfnt.UnsupportedFormatError{Table: "glyf", Format: "composite point-matching anchors"}
		}
		if flags&compArgsAreWords != 0 {
			a1, err := c.I16()
			if err != nil {
				return nil, err
			}
			a2, err := c.I16()
			if err != nil {
				return nil, err
			}
			dx, dy = float64(a1), float64(a2)
		} else {
			a1, err := c.I8()
			if err != nil {
				return nil, err
			}
			a2, err := c.I8()
			if err != nil {
				return nil, err
			}
			dx, dy = float64(a1), float64(a2)
		}

		transform := Identity
		switch {
		case flags&compHaveScale != 0:
			s, err := c.F2Dot14()
			if err != nil {
				return nil, err
			}
			transform.A, transform.D = s, s
		case flags&compHaveXYScale != 0:
			sx, err := c.F2Dot14()
			if err != nil {
				return nil, err
			}
			sy, err := c.F2Dot14()
			if err != nil {
				return nil, err
			}
			transform.A, transform.D = sx, sy
		case flags&compHaveTwoByTwo != 0:
			a, err := c.F2Dot14()
			if err != nil {
				return nil, err
			}
			b, err := c.F2Dot14()
			if err != nil {
				return nil, err
			}
			cc, err := c.F2Dot14()
			if err != nil {
				return nil, err
			}
			d, err := c.F2Dot14()
			if err != nil {
				return nil, err
			}
			transform.A, transform.B, transform.C, transform.D = a, b, cc, d
		}
		transform.E, transform.F = dx, dy

		components = append(components, Component{
			GlyphIndex: sfnt.GlyphID(glyphIndex),
			Transform:  transform,
		})

		if flags&compMoreComponents == 0 {
			if flags&compHaveInstructions != 0 {
				n, err := c.U16()
				if err != nil {
					return nil, err
				}
				if _, err := c.Bytes(int(n)); err != nil {
					return nil, err
				}
			}
			break
		}
	}
	return components, nil
}
