package sweep

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/jmylchreest/palettesweep/internal/colour"
)

func testPalette() *Palette {
	return NewPalette(VaryLightness, 2, colour.FromHSL(200, 76, 36, 1), []GeneratedColour{
		{HSL: colour.HSL{H: 200, S: 76, L: 36}, Opacity: 1},
		{HSL: colour.HSL{H: 200, S: 76, L: 100}, Opacity: 0.5},
	})
}

func TestPaletteAccessors(t *testing.T) {
	p := testPalette()
	if p.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", p.Len())
	}
	if _, err := p.Get(2); err == nil {
		t.Error("Get(2) should fail")
	}
	g, err := p.Get(1)
	if err != nil {
		t.Fatalf("Get(1) error: %v", err)
	}
	if g.HSL.L != 100 {
		t.Errorf("Get(1) = %+v", g)
	}

	hex := p.ToHex()
	want := []string{"#1673a2", "#ffffff80"}
	for i := range want {
		if hex[i] != want[i] {
			t.Errorf("ToHex()[%d] = %s, want %s", i, hex[i], want[i])
		}
	}

	var nilPalette *Palette
	if nilPalette.Len() != 0 {
		t.Error("nil palette should be empty")
	}
}

func TestPaletteToJSON(t *testing.T) {
	data, err := testPalette().ToJSON()
	if err != nil {
		t.Fatalf("ToJSON() error: %v", err)
	}

	var got PaletteJSON
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("ToJSON() produced invalid JSON: %v", err)
	}
	if got.Vary != VaryLightness || got.Count != 2 || got.Base != "#1673a2" {
		t.Errorf("ToJSON() header = %+v", got)
	}
	if len(got.Colours) != 2 || got.Colours[1].Hex != "#ffffff80" {
		t.Errorf("ToJSON() colours = %+v", got.Colours)
	}
}

func TestPaletteString(t *testing.T) {
	if s := NewPalette(VaryHue, 0, colour.Colour{}, nil).String(); s != "Empty palette" {
		t.Errorf("String() = %q", s)
	}
	s := testPalette().String()
	if !strings.Contains(s, "Lightness with 2 colours") || !strings.Contains(s, "#1673a2") {
		t.Errorf("String() = %q", s)
	}
}
