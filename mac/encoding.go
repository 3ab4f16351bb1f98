// Package mac implements the Macintosh (MacRoman) text encoding used by
// platform-1 entries in the SFNT "cmap" and "name" tables.
//
// Rather than hand-roll the 256-entry translation table, this builds on
// golang.org/x/text/encoding/charmap, which already carries a
// well-tested MacRoman mapping.
package mac

import "golang.org/x/text/encoding/charmap"

// Decode converts MacRoman-encoded bytes to a string.
func Decode(data []byte) string {
	rs := make([]rune, len(data))
	for i, b := range data {
		rs[i] = charmap.Macintosh.DecodeByte(b)
	}
	return string(rs)
}

// DecodeOne converts a single MacRoman byte to its rune.
func DecodeOne(b byte) rune {
	return charmap.Macintosh.DecodeByte(b)
}

// Encode converts a string to MacRoman bytes. Runes with no MacRoman
// representation are encoded as '?'.
func Encode(s string) []byte {
	rs := []rune(s)
	out := make([]byte, 0, len(rs))
	for _, r := range rs {
		b, ok := charmap.Macintosh.EncodeRune(r)
		if !ok {
			b = '?'
		}
		out = append(out, b)
	}
	return out
}
