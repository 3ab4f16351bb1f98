package cmap

import "github.com/glyphkit/glyphkit/sfnt"

// decodeFormat13 reads a format 13 (many-to-one range mappings) cmap
// subtable: like format 12, but every codepoint in a group shares the
// group's single startGlyphID.
func decodeFormat13(data []byte, code2rune func(int) rune) (map[rune]sfnt.GlyphID, error) {
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
		glyphID := sfnt.GlyphID(uint32(data[base+8])<<24 | uint32(data[base+9])<<16 | uint32(data[base+10])<<8 | uint32(data[base+11]))

		if start <= prevEnd || end < start {
			return nil, &sfnt.MalformedError{Table: "cmap", Detail: "format 13: non-monotonic group"}
		}
		prevEnd = end

		if glyphID == 0 {
			continue
		}
		for code := start; code <= end; code++ {
			out[code2rune(code)] = glyphID
		}
	}
	return out, nil
}
