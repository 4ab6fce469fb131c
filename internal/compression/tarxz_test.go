package compression

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestTarXzRoundTrip(t *testing.T) {
	when := time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)
	files := []File{
		{Name: "palette.css", Data: []byte(":root {}\n"), ModTime: when},
		{Name: "palette.xml", Data: []byte("<Palette />\n"), ModTime: when},
	}

	var buf bytes.Buffer
	if err := WriteTarXz(&buf, files); err != nil {
		t.Fatalf("WriteTarXz() error: %v", err)
	}

	got, err := ReadTarXz(&buf, 0)
	if err != nil {
		t.Fatalf("ReadTarXz() error: %v", err)
	}
	if len(got) != len(files) {
		t.Fatalf("ReadTarXz() returned %d files, want %d", len(got), len(files))
	}
	for i := range files {
		if got[i].Name != files[i].Name || !bytes.Equal(got[i].Data, files[i].Data) {
			t.Errorf("file %d = %s %q, want %s %q", i, got[i].Name, got[i].Data, files[i].Name, files[i].Data)
		}
	}
}

func TestWriteTarXzRejectsTraversal(t *testing.T) {
	var buf bytes.Buffer
	err := WriteTarXz(&buf, []File{{Name: "../evil.css", Data: []byte("x")}})
	if err == nil {
		t.Fatal("expected an error for a traversal path")
	}
}

func TestReadTarXzLimit(t *testing.T) {
	var buf bytes.Buffer
	big := []byte(strings.Repeat("a", 64*1024))
	if err := WriteTarXz(&buf, []File{{Name: "big.css", Data: big}}); err != nil {
		t.Fatalf("WriteTarXz() error: %v", err)
	}

	if _, err := ReadTarXz(&buf, 1024); err == nil {
		t.Error("expected the size limit to be hit")
	}
}

func TestReadTarXzNotXz(t *testing.T) {
	if _, err := ReadTarXz(strings.NewReader("plain text"), 0); err == nil {
		t.Error("expected an error for non-xz input")
	}
}
