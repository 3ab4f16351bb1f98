package svgpath

import (
	"bytes"
	"compress/flate"
	"encoding/base64"
	"fmt"

	"github.com/glyphkit/glyphkit/sfnt/glyf"
)

// Preview wraps contours' path data in a minimal standalone SVG document
// — viewBox `0 0 unitsPerEm unitsPerEm`, as the caller's own outer
// transform is expected to bring yMin..yMax into view — then
// DEFLATE-compresses and base64-encodes the document for inline use as a
// data URL. This is the "extended preview" capability of §4.6.
func Preview(contours []glyf.Contour, unitsPerEm uint16) (string, error) {
	doc := fmt.Sprintf(
		`<svg xmlns='http://www.w3.org/2000/svg' viewBox='0 0 %d %d'><path d='%s'/></svg>`,
		unitsPerEm, unitsPerEm, Path(contours),
	)

	var buf bytes.Buffer
	w, err := flate.NewWriter(&buf, flate.BestCompression)
	if err != nil {
		return "", err
	}
	if _, err := w.Write([]byte(doc)); err != nil {
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", err
	}

	return "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
