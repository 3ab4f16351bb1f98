package cmap

import "github.com/glyphkit/glyphkit/sfnt"

// decodeFormat6 reads a format 6 (trimmed table mapping) cmap subtable: a
// direct glyph id array covering [firstCode, firstCode+entryCount).
func decodeFormat6(data []byte, code2rune func(int) rune) (map[rune]sfnt.GlyphID, error) {
	if len(data) < 10 {
		return nil, sfnt.ErrTruncated
	}
	firstCode := int(data[6])<<8 | int(data[7])
	entryCount := int(data[8])<<8 | int(data[9])
	if 10+2*entryCount > len(data) {
		return nil, sfnt.ErrTruncated
	}
	body := data[10 : 10+2*entryCount]

	out := make(map[rune]sfnt.GlyphID)
	for i := 0; i < entryCount; i++ {
		gid := sfnt.GlyphID(uint16(body[2*i])<<8 | uint16(body[2*i+1]))
		if gid != 0 {
			out[code2rune(firstCode+i)] = gid
		}
	}
	return out, nil
}
