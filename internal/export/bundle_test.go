package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/jmylchreest/palettesweep/internal/colour"
)

func TestBundleRoundTrip(t *testing.T) {
	e := testExporter(t)
	when := time.Date(2025, 3, 7, 9, 5, 0, 0, time.UTC)

	var buf bytes.Buffer
	if err := e.WriteBundle(&buf, testPalette(), Options{Format: colour.FormatHex}, when); err != nil {
		t.Fatalf("WriteBundle() error: %v", err)
	}

	files, err := ReadBundle(&buf)
	if err != nil {
		t.Fatalf("ReadBundle() error: %v", err)
	}
	if len(files) != len(Kinds) {
		t.Fatalf("bundle has %d files, want %d", len(files), len(Kinds))
	}

	css, ok := files["palette-250307-0905.css"]
	if !ok {
		t.Fatalf("missing css member in %v", files)
	}
	if !strings.Contains(string(css), "--color-001: #1673a2;") {
		t.Errorf("css member = %s", css)
	}
	if _, ok := files["palette-250307-0905.json"]; !ok {
		t.Error("missing json member")
	}
}
