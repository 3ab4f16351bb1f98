package glyf

import "github.com/glyphkit/glyphkit/sfnt"

// decodeLoca reads the "loca" table: numGlyphs+1 monotonically
// non-decreasing offsets into the "glyf" table. shortFormat selects
// between the u16 (halved) and u32 encodings, per head.IndexToLocFormat.
func decodeLoca(data []byte, numGlyphs int, shortFormat bool) ([]int, error) {
	want := numGlyphs + 1
	offsets := make([]int, want)

	if shortFormat {
		if len(data) < 2*want {
			return nil, sfnt.ErrTruncated
		}
		prev := 0
		for i := 0; i < want; i++ {
			raw := int(data[2*i])<<8 | int(data[2*i+1])
			pos := raw * 2
			if pos < prev {
				return nil, &sfnt.MalformedError{Table: "loca", Detail: "non-monotonic offsets"}
			}
			offsets[i] = pos
			prev = pos
		}
		return offsets, nil
	}

	if len(data) < 4*want {
		return nil, sfnt.ErrTruncated
	}
	prev := 0
	for i := 0; i < want; i++ {
		pos := int(data[4*i])<<24 | int(data[4*i+1])<<16 | int(data[4*i+2])<<8 | int(data[4*i+3])
		if pos < prev {
			return nil, &sfnt.MalformedError{Table: "loca", Detail: "non-monotonic offsets"}
		}
		offsets[i] = pos
		prev = pos
	}
	return offsets, nil
}
