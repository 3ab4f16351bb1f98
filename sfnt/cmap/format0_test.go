package cmap

import "testing"

func TestDecodeFormat0(t *testing.T) {
	var data []byte
	data = append(data, u16be(0)...) // format
	data = append(data, u16be(6)...) // length (header only; decodeFormat0 does not read it)
	data = append(data, u16be(0)...) // language
	body := make([]byte, 256)
	body['A'] = 5
	data = append(data, body...)

	m, err := decodeFormat0(data, unicodeRune)
	if err != nil {
		t.Fatal(err)
	}
	if m['A'] != 5 {
		t.Errorf("m['A'] = %d, want 5", m['A'])
	}
	if len(m) != 1 {
		t.Errorf("len(m) = %d, want 1", len(m))
	}
}

func TestDecodeFormat0Truncated(t *testing.T) {
	if _, err := decodeFormat0([]byte{0, 0, 0, 6, 0, 0}, unicodeRune); err == nil {
		t.Fatal("expected error")
	}
}
