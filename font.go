// Package glyphkit parses TrueType-format font files into a structured,
// queryable glyph inventory with on-demand SVG rendering, for consumers
// such as a compile-time code generator that emits one named enum
// variant per glyph.
//
// Decode is the single entry point: it drives the SFNT directory
// decoder, then the per-table decoders (head, maxp, cmap, name, post,
// loca, glyf), then glyph assembly and composite flattening, and returns
// either a complete, immutable Font or a decode error. Per-glyph
// operations on a constructed Font never fail.
package glyphkit

import (
	"fmt"
	"iter"
	"sort"

	"github.com/glyphkit/glyphkit/ident"
	"github.com/glyphkit/glyphkit/sfnt"
	"github.com/glyphkit/glyphkit/sfnt/cmap"
	"github.com/glyphkit/glyphkit/sfnt/glyf"
	"github.com/glyphkit/glyphkit/sfnt/head"
	"github.com/glyphkit/glyphkit/sfnt/maxp"
	"github.com/glyphkit/glyphkit/sfnt/name"
	"github.com/glyphkit/glyphkit/sfnt/post"
)

// Font is a decoded TrueType font: an ordered, 0-indexed glyph
// inventory plus the family/style names and scale recorded in "head"
// and "name". Immutable after Decode returns it, and safe to share
// across goroutines for read-only use (§5).
type Font struct {
	familyName  string
	styleName   string
	unitsPerEm  uint16
	glyphs      []*Glyph
	byCodepoint map[rune]sfnt.GlyphID
	byName      map[string]sfnt.GlyphID
}

// Decode parses a complete TTF byte buffer (SFNT version 0x00010000) into
// a Font. It fails with a structured error (§7) rather than returning a
// partial Font: MissingTableError for any of the required head, maxp,
// cmap, loca, or glyf tables; the optional name and post tables are
// simply absent from the result, not an error, when they are missing or
// themselves fail to decode (§9 open question (a)).
func Decode(data []byte) (*Font, error) {
	dir, err := sfnt.DecodeDirectory(data)
	if err != nil {
		return nil, fmt.Errorf("glyphkit: %w", err)
	}

	headData, err := requiredTable(dir, data, "head")
	if err != nil {
		return nil, err
	}
	headInfo, err := head.Decode(headData)
	if err != nil {
		return nil, fmt.Errorf("glyphkit: head: %w", err)
	}

	maxpData, err := requiredTable(dir, data, "maxp")
	if err != nil {
		return nil, err
	}
	maxpInfo, err := maxp.Decode(maxpData)
	if err != nil {
		return nil, fmt.Errorf("glyphkit: maxp: %w", err)
	}
	numGlyphs := int(maxpInfo.NumGlyphs)

	cmapData, err := requiredTable(dir, data, "cmap")
	if err != nil {
		return nil, err
	}
	codepoints, err := cmap.Decode(cmapData)
	if err != nil {
		return nil, fmt.Errorf("glyphkit: cmap: %w", err)
	}

	locaData, err := requiredTable(dir, data, "loca")
	if err != nil {
		return nil, err
	}
	glyfData, err := requiredTable(dir, data, "glyf")
	if err != nil {
		return nil, err
	}
	rawGlyphs, err := glyf.Decode(glyfData, locaData, numGlyphs, headInfo.IndexToLocFormat == 0)
	if err != nil {
		return nil, fmt.Errorf("glyphkit: glyf: %w", err)
	}

	var nameTable *name.Table
	if nameData, ok := optionalTable(dir, data, "name"); ok {
		nameTable, _ = name.Decode(nameData)
	}

	var postTable *post.Table
	if postData, ok := optionalTable(dir, data, "post"); ok {
		postTable, _ = post.Decode(postData, numGlyphs)
	}

	primary, aliases := invertCodepoints(codepoints)

	r := &resolver{glyphs: rawGlyphs}
	glyphs := make([]*Glyph, numGlyphs)
	byName := make(map[string]sfnt.GlyphID, numGlyphs)
	namer := ident.NewNamer()

	for gid := 0; gid < numGlyphs; gid++ {
		id := sfnt.GlyphID(gid)
		g := &Glyph{id: id, unitsPerEm: headInfo.UnitsPerEm, bbox: rawGlyphs[gid].BBox}

		if cp, ok := primary[id]; ok {
			g.codepoint, g.hasCodepoint = cp, true
			g.aliases = aliases[id]
		}
		if postTable != nil {
			if n, ok := postTable.Name(id); ok {
				g.name, g.hasName = n, true
			}
		}

		contours, err := r.resolve(id)
		if err != nil {
			return nil, fmt.Errorf("glyphkit: glyf: glyph %d: %w", gid, err)
		}
		g.contours = contours

		if raw, ok := identSource(g); ok {
			g.ident, g.hasIdent = namer.Assign(raw, gid), true
		}
		if g.hasName {
			byName[g.name] = id
		}

		glyphs[gid] = g
	}

	familyName, styleName := "", ""
	if nameTable != nil {
		familyName, styleName = nameTable.Family, nameTable.Style
	}

	return &Font{
		familyName:  familyName,
		styleName:   styleName,
		unitsPerEm:  headInfo.UnitsPerEm,
		glyphs:      glyphs,
		byCodepoint: codepoints,
		byName:      byName,
	}, nil
}

// identSource returns the raw string the generator's identifier (§6) is
// derived from: the postscript name when present, otherwise "uniXXXX"
// synthesized from the primary codepoint (the Adobe Glyph Naming
// convention's standard fallback). Glyphs with neither report ok=false.
func identSource(g *Glyph) (string, bool) {
	if g.hasName {
		return g.name, true
	}
	if g.hasCodepoint {
		return fmt.Sprintf("uni%04X", g.codepoint), true
	}
	return "", false
}

// invertCodepoints inverts a codepoint->glyph map into glyph->primary
// codepoint plus glyph->aliases, where "primary" is the numerically
// smallest codepoint mapping to that glyph (§4.4 step 2, §9 open
// question (b)) and aliases are every other codepoint mapping there, in
// ascending order.
func invertCodepoints(codepoints map[rune]sfnt.GlyphID) (map[sfnt.GlyphID]rune, map[sfnt.GlyphID][]rune) {
	ordered := make([]rune, 0, len(codepoints))
	for cp := range codepoints {
		ordered = append(ordered, cp)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i] < ordered[j] })

	primary := make(map[sfnt.GlyphID]rune)
	extras := make(map[sfnt.GlyphID][]rune)
	for _, cp := range ordered {
		gid := codepoints[cp]
		if _, ok := primary[gid]; !ok {
			primary[gid] = cp
			continue
		}
		extras[gid] = append(extras[gid], cp)
	}
	return primary, extras
}

func requiredTable(dir *sfnt.Directory, data []byte, tag string) ([]byte, error) {
	d, err := dir.TableData(data, tag)
	if err != nil {
		return nil, fmt.Errorf("glyphkit: %w", err)
	}
	return d, nil
}

// optionalTable looks up tag and reports ok=false for any failure
// (missing, truncated, or otherwise): §7 and §9 treat "name" and "post"
// leniently, their absence yielding empty names rather than a decode
// error.
func optionalTable(dir *sfnt.Directory, data []byte, tag string) ([]byte, bool) {
	d, err := dir.TableData(data, tag)
	if err != nil {
		return nil, false
	}
	return d, true
}

// FamilyName returns the font's family name (name ID 1), or "" if the
// "name" table is absent or carries no usable record.
func (f *Font) FamilyName() string { return f.familyName }

// StyleName returns the font's style name (name ID 2), or "" if the
// "name" table is absent or carries no usable record.
func (f *Font) StyleName() string { return f.styleName }

// UnitsPerEm returns the font's internal coordinate scale.
func (f *Font) UnitsPerEm() uint16 { return f.unitsPerEm }

// GlyphCount returns the number of glyphs in the font, including
// ".notdef".
func (f *Font) GlyphCount() int { return len(f.glyphs) }

// Glyphs returns a finite, restartable iterator over the font's glyphs
// in glyph-id order.
func (f *Font) Glyphs() iter.Seq[*Glyph] {
	return func(yield func(*Glyph) bool) {
		for _, g := range f.glyphs {
			if !yield(g) {
				return
			}
		}
	}
}

// GlyphByID returns the glyph with the given id, and whether id was in
// range.
func (f *Font) GlyphByID(id sfnt.GlyphID) (*Glyph, bool) {
	if int(id) >= len(f.glyphs) {
		return nil, false
	}
	return f.glyphs[id], true
}

// GlyphByCodepoint returns the glyph mapped to cp in "cmap", and whether
// cp was mapped at all.
func (f *Font) GlyphByCodepoint(cp rune) (*Glyph, bool) {
	id, ok := f.byCodepoint[cp]
	if !ok {
		return nil, false
	}
	return f.GlyphByID(id)
}

// GlyphNamed returns the glyph with the given postscript name (exact,
// case-sensitive match), and whether one was found.
func (f *Font) GlyphNamed(name string) (*Glyph, bool) {
	id, ok := f.byName[name]
	if !ok {
		return nil, false
	}
	return f.GlyphByID(id)
}
