package cmap

import "testing"

func TestDecodeFormat12(t *testing.T) {
	var data []byte
	data = append(data, u16be(12)...) // format
	data = append(data, u16be(0)...)  // reserved
	data = append(data, u32be(28)...) // length
	data = append(data, u32be(0)...)  // language
	data = append(data, u32be(1)...)  // numGroups
	data = append(data, u32be(0x61)...)
	data = append(data, u32be(0x63)...)
	data = append(data, u32be(100)...)

	m, err := decodeFormat12(data, nil)
	if err != nil {
		t.Fatal(err)
	}
	if m['a'] != 100 || m['b'] != 101 || m['c'] != 102 {
		t.Errorf("m = %v", m)
	}
	if len(m) != 3 {
		t.Errorf("len(m) = %d, want 3", len(m))
	}
}

func TestDecodeFormat12NonMonotonic(t *testing.T) {
	var data []byte
	data = append(data, u16be(12)...)
	data = append(data, u16be(0)...)
	data = append(data, u32be(40)...)
	data = append(data, u32be(0)...)
	data = append(data, u32be(2)...)
	data = append(data, u32be(10)...)
	data = append(data, u32be(20)...)
	data = append(data, u32be(1)...)
	data = append(data, u32be(5)...) // overlaps the previous group
	data = append(data, u32be(15)...)
	data = append(data, u32be(1)...)

	if _, err := decodeFormat12(data, nil); err == nil {
		t.Fatal("expected error")
	}
}
