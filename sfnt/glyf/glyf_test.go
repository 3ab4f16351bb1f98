package glyf

import (
	"testing"

	"github.com/go-test/deep"

	"github.com/glyphkit/glyphkit/sfnt"
)

func i16be(v int16) []byte { return []byte{byte(uint16(v) >> 8), byte(v)} }
func u16be(v uint16) []byte { return []byte{byte(v >> 8), byte(v)} }

// buildSimpleTriangle assembles the glyf bytes for a single-contour
// triangle with three on-curve points (0,0), (100,0), (50,100).
func buildSimpleTriangle() []byte {
	var data []byte
	data = append(data, i16be(1)...)   // numberOfContours
	data = append(data, i16be(0)...)   // xMin
	data = append(data, i16be(0)...)   // yMin
	data = append(data, i16be(100)...) // xMax
	data = append(data, i16be(100)...) // yMax
	data = append(data, u16be(2)...)   // endPtsOfContours[0]
	data = append(data, u16be(0)...)   // instructionLength

	// flags: all on-curve, no repeat
	data = append(data, flagOnCurve, flagOnCurve, flagOnCurve)
	// x deltas: 0, 100, -50 all as words (not short) -> all-on-curve,
	// not X_SHORT and not X_SAME -> explicit signed word deltas
	data = append(data, i16be(0)...)
	data = append(data, i16be(100)...)
	data = append(data, i16be(-50)...)
	// y deltas: 0, 0, 100
	data = append(data, i16be(0)...)
	data = append(data, i16be(0)...)
	data = append(data, i16be(100)...)
	return data
}

func TestDecodeSimpleTriangle(t *testing.T) {
	g, err := decodeGlyph(buildSimpleTriangle())
	if err != nil {
		t.Fatal(err)
	}
	want := []Contour{{
		{X: 0, Y: 0, OnCurve: true},
		{X: 100, Y: 0, OnCurve: true},
		{X: 50, Y: 100, OnCurve: true},
	}}
	if diff := deep.Equal(g.Contours, want); diff != nil {
		t.Error(diff)
	}
}

func TestDecodeCompositeTranslation(t *testing.T) {
	var data []byte
	data = append(data, i16be(-1)...)  // numberOfContours: composite
	data = append(data, i16be(0)...)
	data = append(data, i16be(0)...)
	data = append(data, i16be(110)...)
	data = append(data, i16be(80)...)

	flags := uint16(compArgsAreWords | compArgsAreXY)
	data = append(data, u16be(flags)...)
	data = append(data, u16be(5)...) // glyphIndex
	data = append(data, i16be(10)...)
	data = append(data, i16be(-20)...)

	g, err := decodeGlyph(data)
	if err != nil {
		t.Fatal(err)
	}
	if !g.IsComposite() {
		t.Fatal("expected composite glyph")
	}
	if len(g.Components) != 1 {
		t.Fatalf("len(Components) = %d, want 1", len(g.Components))
	}
	comp := g.Components[0]
	if comp.GlyphIndex != 5 {
		t.Errorf("GlyphIndex = %d, want 5", comp.GlyphIndex)
	}
	x, y := comp.Transform.Apply(100, 100)
	if x != 110 || y != 80 {
		t.Errorf("Apply(100,100) = (%v,%v), want (110,80)", x, y)
	}
}

func TestDecodeEmptyGlyph(t *testing.T) {
	glyphs, err := Decode(nil, []byte{0, 0, 0, 0}, 1, true)
	if err != nil {
		t.Fatal(err)
	}
	if len(glyphs) != 1 || glyphs[0].Contours != nil || glyphs[0].Components != nil {
		t.Errorf("expected one empty glyph, got %+v", glyphs)
	}
}

func TestDecodeNumberOfContoursLessThanMinusOne(t *testing.T) {
	data := append(i16be(-2), make([]byte, 8)...)
	if _, err := decodeGlyph(data); err == nil {
		t.Fatal("expected error")
	}
}

var _ = sfnt.GlyphID(0)
