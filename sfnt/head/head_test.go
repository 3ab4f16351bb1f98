package head

import (
	"encoding/binary"
	"testing"
)

func makeHeadTable(unitsPerEm uint16, locFormat int16) []byte {
	buf := make([]byte, 54)
	binary.BigEndian.PutUint32(buf[0:], 0x00010000) // version
	binary.BigEndian.PutUint32(buf[4:], 0x00010000) // fontRevision
	binary.BigEndian.PutUint16(buf[18:], unitsPerEm)
	binary.BigEndian.PutUint32(buf[12:], 0x5F0F3CF5) // magicNumber
	binary.BigEndian.PutUint16(buf[50:], uint16(locFormat))
	return buf
}

func TestDecode(t *testing.T) {
	buf := makeHeadTable(1000, 1)
	info, err := Decode(buf)
	if err != nil {
		t.Fatal(err)
	}
	if info.UnitsPerEm != 1000 {
		t.Errorf("UnitsPerEm = %d, want 1000", info.UnitsPerEm)
	}
	if info.IndexToLocFormat != 1 {
		t.Errorf("IndexToLocFormat = %d, want 1", info.IndexToLocFormat)
	}
}

func TestDecodeUnitsPerEmOutOfRange(t *testing.T) {
	buf := makeHeadTable(8, 0)
	if _, err := Decode(buf); err == nil {
		t.Fatal("expected error for unitsPerEm below minimum")
	}
}

func TestDecodeTruncated(t *testing.T) {
	buf := makeHeadTable(1000, 0)
	if _, err := Decode(buf[:40]); err == nil {
		t.Fatal("expected truncated error")
	}
}
