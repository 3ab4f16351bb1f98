// Package head decodes the SFNT "head" table.
// https://docs.microsoft.com/en-us/typography/opentype/spec/head
package head

import "github.com/glyphkit/glyphkit/sfnt"

const tableName = "head"

// Info holds the fields of a decoded "head" table that the rest of this
// module cares about.
type Info struct {
	UnitsPerEm       uint16
	XMin, YMin       int16
	XMax, YMax       int16
	IndexToLocFormat int16 // 0 = short loca offsets, 1 = long
}

// Decode parses the body of a "head" table.
func Decode(data []byte) (*Info, error) {
	c := sfnt.NewCursor(data)

	// majorVersion, minorVersion, fontRevision, checkSumAdjustment, magicNumber
	if _, err := c.Bytes(2 + 2 + 4 + 4 + 4); err != nil {
		return nil, err
	}
	if _, err := c.U16(); err != nil { // flags
		return nil, err
	}
	unitsPerEm, err := c.U16()
	if err != nil {
		return nil, err
	}
	if unitsPerEm < 16 || unitsPerEm > 16384 {
		return nil, &sfnt.MalformedError{Table: tableName, Detail: "unitsPerEm out of range"}
	}

	// created, modified
	if _, err := c.Bytes(8 + 8); err != nil {
		return nil, err
	}

	xMin, err := c.FWord()
	if err != nil {
		return nil, err
	}
	yMin, err := c.FWord()
	if err != nil {
		return nil, err
	}
	xMax, err := c.FWord()
	if err != nil {
		return nil, err
	}
	yMax, err := c.FWord()
	if err != nil {
		return nil, err
	}

	// macStyle, lowestRecPPEM, fontDirectionHint
	if _, err := c.Bytes(2 + 2 + 2); err != nil {
		return nil, err
	}

	indexToLocFormat, err := c.I16()
	if err != nil {
		return nil, err
	}
	if indexToLocFormat != 0 && indexToLocFormat != 1 {
		return nil, &sfnt.MalformedError{Table: tableName, Detail: "invalid indexToLocFormat"}
	}

	glyphDataFormat, err := c.I16()
	if err != nil {
		return nil, err
	}
	if glyphDataFormat != 0 {
		return nil, &sfnt.UnsupportedFormatError{Table: tableName, Format: "glyphDataFormat != 0"}
	}

	return &Info{
		UnitsPerEm:       unitsPerEm,
		XMin:             xMin,
		YMin:             yMin,
		XMax:             xMax,
		YMax:             yMax,
		IndexToLocFormat: indexToLocFormat,
	}, nil
}
