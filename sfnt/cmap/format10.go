package cmap

import "github.com/glyphkit/glyphkit/sfnt"

// decodeFormat10 reads a format 10 (trimmed array) cmap subtable: a direct
// glyph id array covering [startCharCode, startCharCode+numChars), with
// 32-bit code points. This is the UCS-4 analogue of format 6.
func decodeFormat10(data []byte, code2rune func(int) rune) (map[rune]sfnt.GlyphID, error) {
	if len(data) < 20 {
		return nil, sfnt.ErrTruncated
	}
	startCharCode := int(uint32(data[12])<<24 | uint32(data[13])<<16 | uint32(data[14])<<8 | uint32(data[15]))
	numChars := int(uint32(data[16])<<24 | uint32(data[17])<<16 | uint32(data[18])<<8 | uint32(data[19]))
	if numChars < 0 || 20+2*numChars > len(data) {
		return nil, sfnt.ErrTruncated
	}
	body := data[20 : 20+2*numChars]

	out := make(map[rune]sfnt.GlyphID)
	for i := 0; i < numChars; i++ {
		gid := sfnt.GlyphID(uint16(body[2*i])<<8 | uint16(body[2*i+1]))
		if gid != 0 {
			out[code2rune(startCharCode+i)] = gid
		}
	}
	return out, nil
}
