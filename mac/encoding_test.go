package mac

import "testing"

func TestEncodingRoundTrip(t *testing.T) {
	for i := 0; i < 256; i++ {
		s := Decode([]byte{byte(i)})
		cc := Encode(s)
		if len(cc) != 1 || cc[0] != byte(i) {
			t.Errorf("%d: %q -> %q", i, s, cc)
		}
	}
}

func TestDecodeOneMatchesDecode(t *testing.T) {
	for i := 0; i < 256; i++ {
		if DecodeOne(byte(i)) != []rune(Decode([]byte{byte(i)}))[0] {
			t.Errorf("DecodeOne(%d) disagrees with Decode", i)
		}
	}
}
