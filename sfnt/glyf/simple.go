package glyf

import "github.com/glyphkit/glyphkit/sfnt"

// Point is a single outline point in font-design units.
type Point struct {
	X, Y    int16
	OnCurve bool
}

// Contour is a connected, implicitly-closed ring of Points.
type Contour []Point

const (
	flagOnCurve      = 0x01
	flagXShort       = 0x02
	flagYShort       = 0x04
	flagRepeat       = 0x08
	flagXSameOrPos   = 0x10
	flagYSameOrPos   = 0x20
)

// decodeSimple reads a simple glyph body (the bytes after the shared
// 10-byte glyph header) given its declared contour count.
func decodeSimple(data []byte, numContours int) ([]Contour, error) {
	c := sfnt.NewCursor(data)

	endPts, err := c.U16Slice(numContours)
	if err != nil {
		return nil, err
	}
	numPoints := 0
	if numContours > 0 {
		numPoints = int(endPts[numContours-1]) + 1
		for i := 1; i < numContours; i++ {
			if endPts[i] < endPts[i-1] {
				return nil, &sfnt.MalformedError{Table: "glyf", Detail: "non-monotonic endPtsOfContours"}
			}
		}
	}

	instructionLength, err := c.U16()
	if err != nil {
		return nil, err
	}
	if _, err := c.Bytes(int(instructionLength)); err != nil {
		return nil, err
	}

	flags := make([]byte, numPoints)
	for i := 0; i < numPoints; {
		f, err := c.U8()
		if err != nil {
			return nil, err
		}
		flags[i] = f
		i++
		if f&flagRepeat != 0 {
			repeat, err := c.U8()
			if err != nil {
				return nil, err
			}
			for ; repeat > 0 && i < numPoints; repeat-- {
				flags[i] = f
				i++
			}
		}
	}

	xs := make([]int16, numPoints)
	var x int32
	for i, f := range flags {
		switch {
		case f&flagXShort != 0:
			v, err := c.U8()
			if err != nil {
				return nil, err
			}
			if f&flagXSameOrPos != 0 {
				x += int32(v)
			} else {
				x -= int32(v)
			}
		case f&flagXSameOrPos == 0:
			dx, err := c.I16()
			if err != nil {
				return nil, err
			}
			x += int32(dx)
		}
		xs[i] = int16(x)
	}

	ys := make([]int16, numPoints)
	var y int32
	for i, f := range flags {
		switch {
		case f&flagYShort != 0:
			v, err := c.U8()
			if err != nil {
				return nil, err
			}
			if f&flagYSameOrPos != 0 {
				y += int32(v)
			} else {
				y -= int32(v)
			}
		case f&flagYSameOrPos == 0:
			dy, err := c.I16()
			if err != nil {
				return nil, err
			}
			y += int32(dy)
		}
		ys[i] = int16(y)
	}

	contours := make([]Contour, numContours)
	start := 0
	for i := 0; i < numContours; i++ {
		end := int(endPts[i]) + 1
		pts := make(Contour, end-start)
		for j := start; j < end; j++ {
			pts[j-start] = Point{X: xs[j], Y: ys[j], OnCurve: flags[j]&flagOnCurve != 0}
		}
		start = end
		contours[i] = pts
	}
	return contours, nil
}
