// Package cmap decodes the SFNT "cmap" table into a single combined
// codepoint-to-glyph mapping.
package cmap

import (
	"fmt"
	"sort"

	"golang.org/x/exp/slices"

	"github.com/glyphkit/glyphkit/mac"
	"github.com/glyphkit/glyphkit/sfnt"
)

type encodingRecord struct {
	platformID, encodingID uint16
	offset                 uint32
}

// priority tiers, highest priority first: (platform 0, any encoding),
// (platform 3, encoding 10), (platform 3, encoding 1), (platform 1,
// encoding 0).
func tierOf(platformID, encodingID uint16) (tier int, ok bool) {
	switch {
	case platformID == 0:
		return 0, true
	case platformID == 3 && encodingID == 10:
		return 1, true
	case platformID == 3 && encodingID == 1:
		return 2, true
	case platformID == 1 && encodingID == 0:
		return 3, true
	default:
		return 0, false
	}
}

func unicodeRune(code int) rune { return rune(code) }

func macRune(code int) rune { return mac.DecodeOne(byte(code)) }

// Decode parses the cmap table and returns the combined codepoint-to-glyph
// mapping. Subtables are considered in priority order (see tierOf); where
// more than one subtable covers the same codepoint, the highest-priority
// subtable's entry wins. Glyph id 0 entries are never included.
func Decode(data []byte) (map[rune]sfnt.GlyphID, error) {
	c := sfnt.NewCursor(data)

	version, err := c.U16()
	if err != nil {
		return nil, err
	}
	if version != 0 {
		return nil, &sfnt.UnsupportedFormatError{Table: "cmap", Format: fmt.Sprintf("version %d", version)}
	}
	numTables, err := c.U16()
	if err != nil {
		return nil, err
	}

	records := make([]encodingRecord, numTables)
	for i := range records {
		platformID, err := c.U16()
		if err != nil {
			return nil, err
		}
		encodingID, err := c.U16()
		if err != nil {
			return nil, err
		}
		offset, err := c.U32()
		if err != nil {
			return nil, err
		}
		records[i] = encodingRecord{platformID, encodingID, offset}
	}

	// Subtables must be pairwise disjoint or identical; overlapping but
	// distinct ranges indicate a malformed table.
	type seg struct{ start, end uint32 }
	var claimed []seg
	claim := func(start, end uint32) error {
		idx := sort.Search(len(claimed), func(i int) bool { return start <= claimed[i].start })
		if idx < len(claimed) && claimed[idx].start == start {
			return nil
		}
		if idx > 0 && start < claimed[idx-1].end {
			return &sfnt.MalformedError{Table: "cmap", Detail: "overlapping subtables"}
		}
		if idx < len(claimed) && end > claimed[idx].start {
			return &sfnt.MalformedError{Table: "cmap", Detail: "overlapping subtables"}
		}
		claimed = slices.Insert(claimed, idx, seg{start, end})
		return nil
	}

	combined := make(map[rune]sfnt.GlyphID)
	found := false
	var lastErr error

	// Apply lowest priority first so that a later, higher-priority subtable
	// overwrites any conflicting entry from an earlier one.
	for tier := 3; tier >= 0; tier-- {
		for _, r := range records {
			t, ok := tierOf(r.platformID, r.encodingID)
			if !ok || t != tier {
				continue
			}

			length, err := subtableLength(data, r.offset)
			if err != nil {
				lastErr = err
				continue
			}
			if err := claim(r.offset, r.offset+uint32(length)); err != nil {
				return nil, err
			}

			code2rune := unicodeRune
			if tier == 3 {
				code2rune = macRune
			}
			sub, err := decodeSubtableAt(data[r.offset:r.offset+uint32(length)], code2rune)
			if err != nil {
				lastErr = err
				continue
			}
			found = true
			for cp, gid := range sub {
				combined[cp] = gid
			}
		}
	}

	if !found {
		if lastErr != nil {
			return nil, lastErr
		}
		return nil, &sfnt.MalformedError{Table: "cmap", Detail: "no recognized subtable"}
	}
	return combined, nil
}

// subtableLength returns the declared byte length of the subtable starting
// at offset, reading the format-specific length field without otherwise
// interpreting the subtable body.
func subtableLength(data []byte, offset uint32) (int, error) {
	o := int(offset)
	if o < 0 || o+2 > len(data) {
		return 0, sfnt.ErrTruncated
	}
	format := uint16(data[o])<<8 | uint16(data[o+1])

	switch format {
	case 0, 2, 4, 6:
		if o+4 > len(data) {
			return 0, sfnt.ErrTruncated
		}
		length := int(uint16(data[o+2])<<8 | uint16(data[o+3]))
		if length < 0 || o+length > len(data) {
			return 0, sfnt.ErrTruncated
		}
		return length, nil
	case 8, 10, 12, 13:
		if o+8 > len(data) {
			return 0, sfnt.ErrTruncated
		}
		length := int(uint32(data[o+4])<<24 | uint32(data[o+5])<<16 | uint32(data[o+6])<<8 | uint32(data[o+7]))
		if length < 0 || o+length > len(data) {
			return 0, sfnt.ErrTruncated
		}
		return length, nil
	default:
		return 0, &sfnt.UnsupportedFormatError{Table: "cmap", Format: fmt.Sprintf("%d", format)}
	}
}

func decodeSubtableAt(sub []byte, code2rune func(int) rune) (map[rune]sfnt.GlyphID, error) {
	format := uint16(sub[0])<<8 | uint16(sub[1])
	switch format {
	case 0:
		return decodeFormat0(sub, code2rune)
	case 4:
		return decodeFormat4(sub, code2rune)
	case 6:
		return decodeFormat6(sub, code2rune)
	case 10:
		return decodeFormat10(sub, code2rune)
	case 12:
		return decodeFormat12(sub, code2rune)
	case 13:
		return decodeFormat13(sub, code2rune)
	default:
		return nil, &sfnt.UnsupportedFormatError{Table: "cmap", Format: fmt.Sprintf("%d", format)}
	}
}
