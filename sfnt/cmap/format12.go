package cmap

import "github.com/glyphkit/glyphkit/sfnt"

// decodeFormat12 reads a format 12 (segmented coverage) cmap subtable:
// groups of (startCharCode, endCharCode, startGlyphID) where the glyph id
// increments linearly across the group.
func decodeFormat12(data []byte, code2rune func(int) rune) (map[rune]sfnt.GlyphID, error) {
	if code2rune == nil {
		code2rune = unicodeRune
	}
	if len(data) < 16 {
		return nil, sfnt.ErrTruncated
	}
	numGroups := int(uint32(data[12])<<24 | uint32(data[13])<<16 | uint32(data[14])<<8 | uint32(data[15]))
	if numGroups < 0 || 16+12*numGroups > len(data) {
		return nil, sfnt.ErrTruncated
	}

	out := make(map[rune]sfnt.GlyphID)
	prevEnd := -1
	for i := 0; i < numGroups; i++ {
		base := 16 + 12*i
		start := int(uint32(data[base])<<24 | uint32(data[base+1])<<16 | uint32(data[base+2])<<8 | uint32(data[base+3]))
		end := int(uint32(data[base+4])<<24 | uint32(data[base+5])<<16 | uint32(data[base+6])<<8 | uint32(data[base+7]))
		startGlyphID := uint32(data[base+8])<<24 | uint32(data[base+9])<<16 | uint32(data[base+10])<<8 | uint32(data[base+11])

		if start <= prevEnd || end < start {
			return nil, &sfnt.MalformedError{Table: "cmap", Detail: "format 12: non-monotonic group"}
		}
		prevEnd = end

		for code := start; code <= end; code++ {
			gid := sfnt.GlyphID(startGlyphID + uint32(code-start))
			if gid != 0 {
				out[code2rune(code)] = gid
			}
		}
	}
	return out, nil
}
