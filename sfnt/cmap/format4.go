package cmap

import "github.com/glyphkit/glyphkit/sfnt"

// decodeFormat4 reads a format 4 (segment mapping to delta values) cmap
// subtable, the standard BMP encoding. For each segment [start, end], the
// glyph id for codepoint c is either (c + idDelta) mod 2^16, or, when
// idRangeOffset is non-zero, an indirect lookup through glyphIdArray.
func decodeFormat4(data []byte, code2rune func(int) rune) (map[rune]sfnt.GlyphID, error) {
	if len(data) < 14 || len(data)%2 != 0 {
		return nil, sfnt.ErrTruncated
	}
	segCountX2 := int(data[6])<<8 | int(data[7])
	if segCountX2%2 != 0 {
		return nil, &sfnt.MalformedError{Table: "cmap", Detail: "format 4: odd segCountX2"}
	}
	segCount := segCountX2 / 2
	if 14+4*segCountX2+2 > len(data) { // four arrays plus reservedPad
		return nil, sfnt.ErrTruncated
	}

	words := make([]uint16, (len(data)-14)/2)
	for i := range words {
		o := 14 + 2*i
		words[i] = uint16(data[o])<<8 | uint16(data[o+1])
	}
	endCode := words[:segCount]
	// word at words[segCount] is reservedPad, skipped
	startCode := words[segCount+1 : 2*segCount+1]
	idDelta := words[2*segCount+1 : 3*segCount+1]
	idRangeOffset := words[3*segCount+1 : 4*segCount+1]
	glyphIDArray := words[4*segCount+1:]

	out := make(map[rune]sfnt.GlyphID)
	prevEnd := 0
	for seg := 0; seg < segCount; seg++ {
		start := int(startCode[seg])
		end := int(endCode[seg]) + 1
		if end <= start || (seg > 0 && start < prevEnd) {
			return nil, &sfnt.MalformedError{Table: "cmap", Detail: "format 4: non-monotonic segment"}
		}
		prevEnd = end

		if idRangeOffset[seg] == 0 {
			delta := idDelta[seg]
			for code := start; code < end; code++ {
				gid := sfnt.GlyphID(uint16(code) + delta)
				if gid != 0 {
					out[code2rune(code)] = gid
				}
			}
			continue
		}

		base := int(idRangeOffset[seg])/2 - (segCount - seg)
		for code := start; code < end; code++ {
			idx := base + (code - start)
			if idx < 0 || idx >= len(glyphIDArray) {
				if start == 0xFFFF {
					// some fonts carry invalid data for the terminal
					// segment; it maps no real codepoints.
					continue
				}
				return nil, &sfnt.MalformedError{Table: "cmap", Detail: "format 4: idRangeOffset out of range"}
			}
			gid := sfnt.GlyphID(glyphIDArray[idx])
			if gid != 0 {
				out[code2rune(code)] = gid
			}
		}
	}
	return out, nil
}
