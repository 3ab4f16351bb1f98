// Package name decodes the SFNT "name" table: the font's family and style
// names, plus any other localized name-ID strings it carries.
package name

import (
	"fmt"
	"sort"
	"unicode/utf16"

	"golang.org/x/exp/maps"

	"github.com/glyphkit/glyphkit/mac"
	"github.com/glyphkit/glyphkit/sfnt"
)

// Record is one decoded (platform, encoding, language, nameID) → string
// entry, for name IDs the table doesn't promote to a dedicated field.
type Record struct {
	PlatformID, EncodingID, LanguageID, NameID uint16
	Value                                      string
}

// Table holds the decoded "name" table contents. Family and Style are the
// best-preference (Unicode > Microsoft > Macintosh) decoding of name IDs 1
// and 2; Extra carries every other decoded record, keyed by name ID, using
// the same preference rule to pick one string per ID.
type Table struct {
	Family string
	Style  string
	Extra  map[uint16]string
}

const (
	nameIDFamily = 1
	nameIDStyle  = 2
)

// preference ranks a (platformID, encodingID) pair: lower is better.
// Unicode (platform 0) is preferred over Microsoft Unicode (platform 3,
// encoding 1 or 10), both decoded as UTF-16BE, and both ahead of
// Macintosh; any other combination is not decodable and is skipped.
func preference(platformID, encodingID uint16) (rank int, ok bool) {
	switch {
	case platformID == 0:
		return 0, true
	case platformID == 3 && (encodingID == 1 || encodingID == 10):
		return 1, true
	case platformID == 1 && encodingID == 0:
		return 2, true
	default:
		return 0, false
	}
}

func decodeString(platformID uint16, raw []byte) string {
	if platformID == 1 {
		return mac.Decode(raw)
	}
	if len(raw)%2 != 0 {
		raw = raw[:len(raw)-1]
	}
	units := make([]uint16, len(raw)/2)
	for i := range units {
		units[i] = uint16(raw[2*i])<<8 | uint16(raw[2*i+1])
	}
	return string(utf16.Decode(units))
}

// Decode parses the "name" table. Records whose (platformID, encodingID)
// is not one of Unicode, Microsoft Unicode, or Macintosh are silently
// skipped, matching §4.3.
func Decode(data []byte) (*Table, error) {
	c := sfnt.NewCursor(data)

	format, err := c.U16()
	if err != nil {
		return nil, err
	}
	if format != 0 && format != 1 {
		return nil, &sfnt.UnsupportedFormatError{Table: "name", Format: fmt.Sprintf("format %d", format)}
	}
	count, err := c.U16()
	if err != nil {
		return nil, err
	}
	stringOffsetU16, err := c.U16()
	if err != nil {
		return nil, err
	}
	stringOffset := int(stringOffsetU16)

	type rawRecord struct {
		platformID, encodingID, languageID, nameID uint16
		offset, length                             int
	}
	records := make([]rawRecord, count)
	for i := range records {
		platformID, err := c.U16()
		if err != nil {
			return nil, err
		}
		encodingID, err := c.U16()
		if err != nil {
			return nil, err
		}
		languageID, err := c.U16()
		if err != nil {
			return nil, err
		}
		nameID, err := c.U16()
		if err != nil {
			return nil, err
		}
		length, err := c.U16()
		if err != nil {
			return nil, err
		}
		offset, err := c.U16()
		if err != nil {
			return nil, err
		}
		records[i] = rawRecord{platformID, encodingID, languageID, nameID, int(offset), int(length)}
	}

	best := make(map[uint16]string)
	bestRank := make(map[uint16]int)
	for _, r := range records {
		rank, ok := preference(r.platformID, r.encodingID)
		if !ok {
			continue
		}
		start := stringOffset + r.offset
		end := start + r.length
		if start < 0 || end > len(data) || end < start {
			continue
		}
		if prevRank, seen := bestRank[r.nameID]; seen && rank >= prevRank {
			continue
		}
		best[r.nameID] = decodeString(r.platformID, data[start:end])
		bestRank[r.nameID] = rank
	}

	t := &Table{
		Family: best[nameIDFamily],
		Style:  best[nameIDStyle],
		Extra:  make(map[uint16]string),
	}
	for id, v := range best {
		if id == nameIDFamily || id == nameIDStyle {
			continue
		}
		t.Extra[id] = v
	}
	return t, nil
}

// IDs returns the name IDs present in Extra, sorted ascending.
func (t *Table) IDs() []uint16 {
	ids := maps.Keys(t.Extra)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
