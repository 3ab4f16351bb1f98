package cmap

import (
	"testing"

	"github.com/glyphkit/glyphkit/sfnt"
)

func u16be(v uint16) []byte { return []byte{byte(v >> 8), byte(v)} }

func TestDecodeFormat4Identity(t *testing.T) {
	// One segment covering only 'A' (0x41), idDelta=0, idRangeOffset=0:
	// the segment is an identity mapping.
	var data []byte
	data = append(data, u16be(4)...)  // format
	data = append(data, u16be(24)...) // length
	data = append(data, u16be(0)...)  // language
	data = append(data, u16be(2)...)  // segCountX2
	data = append(data, u16be(2)...)  // searchRange
	data = append(data, u16be(0)...)  // entrySelector
	data = append(data, u16be(0)...)  // rangeShift
	data = append(data, u16be(0x41)...)
	data = append(data, u16be(0)...) // reservedPad
	data = append(data, u16be(0x41)...)
	data = append(data, u16be(0)...)
	data = append(data, u16be(0)...)

	m, err := decodeFormat4(data, unicodeRune)
	if err != nil {
		t.Fatal(err)
	}
	if m['A'] != 0x41 {
		t.Errorf("m['A'] = %d, want 0x41", m['A'])
	}
	if len(m) != 1 {
		t.Errorf("len(m) = %d, want 1", len(m))
	}
}

func TestDecodeFormat4Indirect(t *testing.T) {
	// Two codepoints (0x41, 0x42) mapped indirectly through glyphIdArray.
	var data []byte
	data = append(data, u16be(4)...)
	data = append(data, u16be(28)...)
	data = append(data, u16be(0)...)
	data = append(data, u16be(2)...)
	data = append(data, u16be(2)...)
	data = append(data, u16be(0)...)
	data = append(data, u16be(0)...)
	data = append(data, u16be(0x42)...)    // endCode
	data = append(data, u16be(0)...)       // reservedPad
	data = append(data, u16be(0x41)...)    // startCode
	data = append(data, u16be(0)...) // idDelta
	data = append(data, u16be(2)...) // idRangeOffset, points at glyphIdArray[0]
	data = append(data, u16be(10)...)
	data = append(data, u16be(20)...)

	m, err := decodeFormat4(data, unicodeRune)
	if err != nil {
		t.Fatal(err)
	}
	if m[0x41] != sfnt.GlyphID(10) || m[0x42] != sfnt.GlyphID(20) {
		t.Errorf("m = %v", m)
	}
}

func TestDecodeFormat4Truncated(t *testing.T) {
	if _, err := decodeFormat4([]byte{0, 4, 0, 1}, unicodeRune); err == nil {
		t.Fatal("expected error")
	}
}
