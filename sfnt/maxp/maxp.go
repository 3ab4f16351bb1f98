// Package maxp decodes the SFNT "maxp" table.
// https://docs.microsoft.com/en-us/typography/opentype/spec/maxp
package maxp

import "github.com/glyphkit/glyphkit/sfnt"

// Info holds the fields of a decoded "maxp" table that this module uses.
type Info struct {
	NumGlyphs uint16
}

// Decode parses the body of a "maxp" table. Both version 0.5 (TrueType
// fonts with CFF outlines only report numGlyphs) and version 1.0 are
// accepted; the fields beyond numGlyphs that only version 1.0 carries are
// not needed by this module and are not decoded.
func Decode(data []byte) (*Info, error) {
	c := sfnt.NewCursor(data)

	version, err := c.Fixed()
	if err != nil {
		return nil, err
	}
	if version != 0x00005000 && version != 0x00010000 {
		return nil, &sfnt.UnsupportedFormatError{Table: "maxp", Format: version.String()}
	}

	numGlyphs, err := c.U16()
	if err != nil {
		return nil, err
	}

	return &Info{NumGlyphs: numGlyphs}, nil
}
