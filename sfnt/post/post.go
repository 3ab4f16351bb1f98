// Package post decodes the SFNT "post" table into a glyph-id → postscript
// name mapping.
package post

import (
	"github.com/glyphkit/glyphkit/sfnt"
)

// Table maps glyph id to postscript name. A glyph with no name (version
// 3.0, or an index the font declined to name) is simply absent.
type Table struct {
	names map[sfnt.GlyphID]string
}

// Name returns the postscript name for gid, and whether one is recorded.
func (t *Table) Name(gid sfnt.GlyphID) (string, bool) {
	if t == nil {
		return "", false
	}
	name, ok := t.names[gid]
	return name, ok
}

// Decode parses the "post" table for numGlyphs glyphs, where numGlyphs
// comes from the font's "maxp" table.
func Decode(data []byte, numGlyphs int) (*Table, error) {
	c := sfnt.NewCursor(data)
	version, err := c.Fixed()
	if err != nil {
		return nil, err
	}

	switch version {
	case 0x00010000:
		return decodeV1(numGlyphs), nil
	case 0x00020000:
		return decodeV2(data, numGlyphs)
	case 0x00025000:
		return decodeV25(data, numGlyphs)
	case 0x00030000:
		return &Table{names: map[sfnt.GlyphID]string{}}, nil
	default:
		return nil, &sfnt.UnsupportedFormatError{Table: "post", Format: version.String()}
	}
}

func decodeV1(numGlyphs int) *Table {
	names := make(map[sfnt.GlyphID]string, numGlyphs)
	for i := 0; i < numGlyphs && i < len(macGlyphNames); i++ {
		names[sfnt.GlyphID(i)] = macGlyphNames[i]
	}
	return &Table{names: names}
}

func decodeV2(data []byte, numGlyphs int) (*Table, error) {
	c := sfnt.NewCursor(data)
	if err := c.Seek(32); err != nil {
		return nil, err
	}
	n, err := c.U16()
	if err != nil {
		return nil, err
	}
	if int(n) != numGlyphs {
		return nil, &sfnt.MalformedError{Table: "post", Detail: "glyph count mismatch"}
	}

	indices, err := c.U16Slice(int(n))
	if err != nil {
		return nil, err
	}

	var extra []string
	for c.Pos() < len(data) {
		length, err := c.U8()
		if err != nil {
			return nil, err
		}
		raw, err := c.Bytes(int(length))
		if err != nil {
			return nil, err
		}
		extra = append(extra, string(raw))
	}

	names := make(map[sfnt.GlyphID]string, n)
	for gid, idx := range indices {
		var name string
		if idx < 258 {
			name = standardName(int(idx))
		} else {
			j := int(idx) - 258
			if j < 0 || j >= len(extra) {
				return nil, &sfnt.MalformedError{Table: "post", Detail: "custom name index out of range"}
			}
			name = extra[j]
		}
		if name != "" {
			names[sfnt.GlyphID(gid)] = name
		}
	}
	return &Table{names: names}, nil
}

func decodeV25(data []byte, numGlyphs int) (*Table, error) {
	c := sfnt.NewCursor(data)
	if err := c.Seek(32); err != nil {
		return nil, err
	}
	n, err := c.U16()
	if err != nil {
		return nil, err
	}
	if int(n) != numGlyphs {
		return nil, &sfnt.MalformedError{Table: "post", Detail: "glyph count mismatch"}
	}

	names := make(map[sfnt.GlyphID]string, n)
	for gid := 0; gid < int(n); gid++ {
		offset, err := c.I8()
		if err != nil {
			return nil, err
		}
		name := standardName(gid + int(offset))
		if name != "" {
			names[sfnt.GlyphID(gid)] = name
		}
	}
	return &Table{names: names}, nil
}
