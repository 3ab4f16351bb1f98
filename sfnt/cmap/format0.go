package cmap

import "github.com/glyphkit/glyphkit/sfnt"

// decodeFormat0 reads a format 0 (byte encoding table) cmap subtable: a
// direct 256-entry glyph id array indexed by codepoint 0..255.
func decodeFormat0(data []byte, code2rune func(int) rune) (map[rune]sfnt.GlyphID, error) {
	if len(data) < 6+256 {
		return nil, sfnt.ErrTruncated
	}
	body := data[6 : 6+256]

	out := make(map[rune]sfnt.GlyphID)
	for code, gid := range body {
		if gid == 0 {
			continue
		}
		out[code2rune(code)] = sfnt.GlyphID(gid)
	}
	return out, nil
}
