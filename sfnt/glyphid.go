package sfnt

// GlyphID is a font-local, 0-based index into a font's glyph inventory.
// Glyph id 0 is always valid and represents ".notdef", the glyph shown
// for unmapped codepoints.
type GlyphID uint16
