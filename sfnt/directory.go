package sfnt

// ScalerTypeTrueType is the only sfnt-version this package accepts; all
// other scaler types (CFF "OTTO", the legacy Apple "true") are rejected
// with UnsupportedContainerError, matching this package's TrueType-only
// scope.
const ScalerTypeTrueType = 0x00010000

// TableRecord is one entry of the table directory: the byte range within
// the file occupied by a single table.
type TableRecord struct {
	Offset uint32
	Length uint32
}

// Directory is the parsed SFNT offset subtable and table directory: a
// mapping from 4-byte tag to the (offset, length) of that table within
// the font file.
type Directory struct {
	ScalerType uint32
	Tables     map[Tag]TableRecord
}

// DecodeDirectory parses the 12-byte offset subtable and the table
// records that follow it. Table checksums are read but not verified (see
// VerifyChecksums for an explicit, opt-in check); extraneous trailing
// bytes after the last table are ignored.
func DecodeDirectory(data []byte) (*Directory, error) {
	c := NewCursor(data)

	scalerType, err := c.U32()
	if err != nil {
		return nil, err
	}
	if scalerType != ScalerTypeTrueType {
		return nil, &UnsupportedContainerError{Version: scalerType}
	}

	numTables, err := c.U16()
	if err != nil {
		return nil, err
	}
	// skip searchRange, entrySelector, rangeShift
	if _, err := c.Bytes(6); err != nil {
		return nil, err
	}

	dir := &Directory{
		ScalerType: scalerType,
		Tables:     make(map[Tag]TableRecord, numTables),
	}
	for i := 0; i < int(numTables); i++ {
		tag, err := c.Tag()
		if err != nil {
			return nil, err
		}
		if _, err := c.U32(); err != nil { // checksum, not verified
			return nil, err
		}
		offset, err := c.U32()
		if err != nil {
			return nil, err
		}
		length, err := c.U32()
		if err != nil {
			return nil, err
		}
		dir.Tables[tag] = TableRecord{Offset: offset, Length: length}
	}

	return dir, nil
}

// Find looks up a table by tag, reporting ok=false if it is absent.
func (d *Directory) Find(tag string) (TableRecord, bool) {
	rec, ok := d.Tables[MakeTag(tag)]
	return rec, ok
}

// TableData returns the byte range belonging to tag, bounds-checked
// against the whole file buffer. It fails with MissingTableError if tag
// is absent, or TruncatedError if the recorded range extends past the
// end of data.
func (d *Directory) TableData(data []byte, tag string) ([]byte, error) {
	rec, ok := d.Find(tag)
	if !ok {
		return nil, &MissingTableError{Tag: tag}
	}
	start, length := int(rec.Offset), int(rec.Length)
	if start < 0 || length < 0 || start+length > len(data) {
		return nil, &TruncatedError{Op: tag + " table"}
	}
	return data[start : start+length], nil
}

// VerifyChecksums recomputes and checks the per-table checksums recorded
// in the directory. This is optional per the SFNT spec and is never
// called automatically by Decode; callers that want the extra assurance
// invoke it themselves.
func VerifyChecksums(data []byte, dir *Directory) error {
	c := NewCursor(data)
	if _, err := c.U32(); err != nil {
		return err
	}
	numTables, err := c.U16()
	if err != nil {
		return err
	}
	if _, err := c.Bytes(6); err != nil {
		return err
	}
	for i := 0; i < int(numTables); i++ {
		tag, err := c.Tag()
		if err != nil {
			return err
		}
		recorded, err := c.U32()
		if err != nil {
			return err
		}
		if _, err := c.Bytes(8); err != nil { // offset, length already known
			return err
		}

		rec, ok := dir.Tables[tag]
		if !ok {
			continue
		}
		start, length := int(rec.Offset), int(rec.Length)
		if start < 0 || length < 0 || start+length > len(data) {
			continue
		}
		sum := tableChecksum(data[start : start+length])
		if tag == MakeTag("head") && length >= 12 {
			// the head checksum is taken with checkSumAdjustment as zero
			sum -= tableChecksum(data[start+8 : start+12])
		}
		if sum != recorded {
			return &MalformedError{Table: tag.String(), Detail: "checksum mismatch"}
		}
	}
	return nil
}

func tableChecksum(data []byte) uint32 {
	var sum uint32
	for i := 0; i < len(data); i += 4 {
		var word uint32
		for j := 0; j < 4; j++ {
			word <<= 8
			if i+j < len(data) {
				word |= uint32(data[i+j])
			}
		}
		sum += word
	}
	return sum
}
