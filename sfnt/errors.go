// Package sfnt implements bounds-checked binary decoding of the SFNT
// container format used by TrueType fonts: the file header, the table
// directory, and the primitive reads every per-table decoder builds on.
package sfnt

import "fmt"

// TruncatedError indicates that a read would have gone past the end of
// the buffer, or past the declared boundary of a table.
type TruncatedError struct {
	Op string
}

func (err *TruncatedError) Error() string {
	if err.Op == "" {
		return "sfnt: truncated data"
	}
	return "sfnt: truncated data reading " + err.Op
}

// ErrTruncated is returned by Cursor operations that would read past the
// end of the underlying slice.
var ErrTruncated = &TruncatedError{}

// OutOfRangeError indicates that a Seek target lies outside the buffer.
type OutOfRangeError struct {
	Offset, Length int
}

func (err *OutOfRangeError) Error() string {
	return fmt.Sprintf("sfnt: offset %d out of range (length %d)", err.Offset, err.Length)
}

// UnsupportedContainerError indicates an sfnt-version other than
// TrueType's 0x00010000.
type UnsupportedContainerError struct {
	Version uint32
}

func (err *UnsupportedContainerError) Error() string {
	return fmt.Sprintf("sfnt: unsupported container version 0x%08x", err.Version)
}

// MissingTableError indicates that a required table is absent from the
// font's table directory.
type MissingTableError struct {
	Tag string
}

func (err *MissingTableError) Error() string {
	return "sfnt: missing required table " + err.Tag
}

// IsMissingTable reports whether err is a *MissingTableError.
func IsMissingTable(err error) bool {
	_, ok := err.(*MissingTableError)
	return ok
}

// UnsupportedFormatError indicates a table variant outside the
// implemented subset (e.g. cmap format 2, post version 4.0).
type UnsupportedFormatError struct {
	Table  string
	Format string
}

func (err *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("sfnt: %s: unsupported format %s", err.Table, err.Format)
}

// IsUnsupportedFormat reports whether err is an *UnsupportedFormatError.
func IsUnsupportedFormat(err error) bool {
	_, ok := err.(*UnsupportedFormatError)
	return ok
}

// MalformedError indicates that a value failed a domain check: an out of
// range field, a non-monotonic index list, a composite reference cycle,
// and so on.
type MalformedError struct {
	Table  string
	Detail string
}

func (err *MalformedError) Error() string {
	if err.Table == "" {
		return "sfnt: malformed font: " + err.Detail
	}
	return fmt.Sprintf("sfnt: malformed %s table: %s", err.Table, err.Detail)
}
