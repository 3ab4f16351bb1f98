package cmap

import "testing"

func u32be(v uint32) []byte {
	return []byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)}
}

func TestDecodeFormat10(t *testing.T) {
	var data []byte
	data = append(data, u16be(10)...)  // format
	data = append(data, u16be(0)...)   // reserved
	data = append(data, u32be(22)...)  // length
	data = append(data, u32be(0)...)   // language
	data = append(data, u32be(0x10041)...) // startCharCode
	data = append(data, u32be(1)...)   // numChars
	data = append(data, u16be(7)...)   // glyphId

	m, err := decodeFormat10(data, unicodeRune)
	if err != nil {
		t.Fatal(err)
	}
	if m[0x10041] != 7 {
		t.Errorf("m[0x10041] = %d, want 7", m[0x10041])
	}
}
