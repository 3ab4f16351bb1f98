package sfnt

import "fmt"

// Fixed is a 16.16 fixed-point number, as used by several SFNT tables.
type Fixed int32

// Float64 returns x as a floating point value.
func (x Fixed) Float64() float64 {
	return float64(x) / 65536
}

func (x Fixed) String() string {
	return fmt.Sprintf("%.03f", x.Float64())
}

// Cursor is a bounds-checked, big-endian cursor over an immutable byte
// slice. All multi-byte reads are big-endian, matching the SFNT wire
// format. A failed read reports TruncatedError and leaves the cursor's
// position unchanged; the cursor never partially advances on failure.
type Cursor struct {
	data []byte
	pos  int
}

// NewCursor returns a Cursor positioned at the start of data. The slice is
// retained, not copied; the caller must not mutate it afterwards.
func NewCursor(data []byte) *Cursor {
	return &Cursor{data: data}
}

// Pos returns the current cursor offset.
func (c *Cursor) Pos() int { return c.pos }

// Len returns the length of the underlying buffer.
func (c *Cursor) Len() int { return len(c.data) }

// Seek moves the cursor to offset. It fails with OutOfRangeError if offset
// is negative or beyond the end of the buffer.
func (c *Cursor) Seek(offset int) error {
	if offset < 0 || offset > len(c.data) {
		return &OutOfRangeError{Offset: offset, Length: len(c.data)}
	}
	c.pos = offset
	return nil
}

func (c *Cursor) need(n int) error {
	if n < 0 || c.pos+n > len(c.data) {
		return ErrTruncated
	}
	return nil
}

// U8 reads an unsigned 8-bit integer.
func (c *Cursor) U8() (uint8, error) {
	if err := c.need(1); err != nil {
		return 0, err
	}
	v := c.data[c.pos]
	c.pos++
	return v, nil
}

// I8 reads a signed 8-bit integer.
func (c *Cursor) I8() (int8, error) {
	v, err := c.U8()
	return int8(v), err
}

// U16 reads an unsigned big-endian 16-bit integer.
func (c *Cursor) U16() (uint16, error) {
	if err := c.need(2); err != nil {
		return 0, err
	}
	v := uint16(c.data[c.pos])<<8 | uint16(c.data[c.pos+1])
	c.pos += 2
	return v, nil
}

// I16 reads a signed big-endian 16-bit integer.
func (c *Cursor) I16() (int16, error) {
	v, err := c.U16()
	return int16(v), err
}

// U32 reads an unsigned big-endian 32-bit integer.
func (c *Cursor) U32() (uint32, error) {
	if err := c.need(4); err != nil {
		return 0, err
	}
	v := uint32(c.data[c.pos])<<24 | uint32(c.data[c.pos+1])<<16 |
		uint32(c.data[c.pos+2])<<8 | uint32(c.data[c.pos+3])
	c.pos += 4
	return v, nil
}

// I32 reads a signed big-endian 32-bit integer.
func (c *Cursor) I32() (int32, error) {
	v, err := c.U32()
	return int32(v), err
}

// Fixed reads a 16.16 fixed-point value.
func (c *Cursor) Fixed() (Fixed, error) {
	v, err := c.I32()
	return Fixed(v), err
}

// F2Dot14 reads a 2.14 fixed-point value, as used by composite glyph
// transforms, and returns it scaled up to a float64.
func (c *Cursor) F2Dot14() (float64, error) {
	v, err := c.I16()
	if err != nil {
		return 0, err
	}
	return float64(v) / 16384, nil
}

// FWord reads a signed 16-bit font-design-units value.
func (c *Cursor) FWord() (int16, error) {
	return c.I16()
}

// UFWord reads an unsigned 16-bit font-design-units value.
func (c *Cursor) UFWord() (uint16, error) {
	return c.U16()
}

// Tag reads a 4-byte table tag.
func (c *Cursor) Tag() (Tag, error) {
	if err := c.need(4); err != nil {
		return Tag{}, err
	}
	var t Tag
	copy(t[:], c.data[c.pos:c.pos+4])
	c.pos += 4
	return t, nil
}

// Bytes returns the next n bytes as a sub-slice of the underlying buffer
// (no copy) and advances the cursor past them.
func (c *Cursor) Bytes(n int) ([]byte, error) {
	if err := c.need(n); err != nil {
		return nil, err
	}
	b := c.data[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}

// U16Slice reads n consecutive unsigned 16-bit values.
func (c *Cursor) U16Slice(n int) ([]uint16, error) {
	if err := c.need(2 * n); err != nil {
		return nil, err
	}
	out := make([]uint16, n)
	for i := range out {
		out[i] = uint16(c.data[c.pos])<<8 | uint16(c.data[c.pos+1])
		c.pos += 2
	}
	return out, nil
}
