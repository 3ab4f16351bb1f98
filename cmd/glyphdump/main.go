// Command glyphdump decodes a TrueType font and prints its glyph
// inventory: the "external collaborator" surface of §6, standing in for
// the out-of-scope compile-time code generator.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/glyphkit/glyphkit"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: glyphdump font.ttf")
		os.Exit(1)
	}

	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		log.Fatal(err)
	}

	f, err := glyphkit.Decode(data)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%s %s (%d units/em, %d glyphs)\n",
		f.FamilyName(), f.StyleName(), f.UnitsPerEm(), f.GlyphCount())
	fmt.Println(" gid |  codepoint | ident            | name")
	fmt.Println("-----+------------+-------------------+-----")

	for g := range f.Glyphs() {
		codepoint := "-"
		if cp, ok := g.Codepoint(); ok {
			codepoint = fmt.Sprintf("U+%04X", cp)
		}
		ident := "-"
		if id, ok := g.Ident(); ok {
			ident = id
		}
		name := "-"
		if n, ok := g.Name(); ok {
			name = n
		}
		fmt.Printf("%4d | %10s | %-17s | %s\n", g.ID(), codepoint, ident, name)
	}
}
