package svgpath

import (
	"bytes"
	"compress/flate"
	"encoding/base64"
	"io"
	"strings"
	"testing"

	"github.com/glyphkit/glyphkit/sfnt/glyf"
)

const dataURLPrefix = "data:image/svg+xml;base64,"

func decodePreview(t *testing.T, dataURL string) string {
	t.Helper()
	if !strings.HasPrefix(dataURL, dataURLPrefix) {
		t.Fatalf("Preview() = %q, want prefix %q", dataURL, dataURLPrefix)
	}
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(dataURL, dataURLPrefix))
	if err != nil {
		t.Fatalf("base64 decode: %v", err)
	}
	out, err := io.ReadAll(flate.NewReader(bytes.NewReader(raw)))
	if err != nil {
		t.Fatalf("inflate: %v", err)
	}
	return string(out)
}

func TestPreviewEmptyPath(t *testing.T) {
	dataURL, err := Preview(nil, 1000)
	if err != nil {
		t.Fatal(err)
	}
	doc := decodePreview(t, dataURL)
	if !strings.Contains(doc, `<path d=''/>`) {
		t.Errorf("document = %q, want an empty path d attribute", doc)
	}
	if !strings.Contains(doc, "viewBox='0 0 1000 1000'") {
		t.Errorf("document = %q, want a 1000x1000 viewBox", doc)
	}
}

func TestPreviewRoundTrip(t *testing.T) {
	contours := []glyf.Contour{{
		{X: 0, Y: 0, OnCurve: true},
		{X: 100, Y: 0, OnCurve: true},
		{X: 50, Y: 100, OnCurve: true},
	}}
	dataURL, err := Preview(contours, 1000)
	if err != nil {
		t.Fatal(err)
	}
	doc := decodePreview(t, dataURL)
	want := Path(contours)
	if !strings.Contains(doc, `d='`+want+`'`) {
		t.Errorf("document = %q, want it to contain d=%q", doc, want)
	}
}
