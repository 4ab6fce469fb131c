package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jmylchreest/palettesweep/internal/colour"
)

func TestLoader_Load(t *testing.T) {
	tmpDir := t.TempDir()
	loader := NewLoader(tmpDir)

	t.Run("loads embedded template when no custom exists", func(t *testing.T) {
		content, fromCustom, err := loader.Load("palette.css.tmpl")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if fromCustom {
			t.Error("expected embedded template, got custom")
		}
		if !strings.Contains(string(content), ":root") {
			t.Errorf("unexpected embedded content: %s", content)
		}
	})

	t.Run("loads custom template when it exists", func(t *testing.T) {
		custom := []byte("{{ range .Entries }}{{ .Value }}\n{{ end }}")
		if err := os.WriteFile(filepath.Join(tmpDir, "palette.css.tmpl"), custom, 0o644); err != nil {
			t.Fatalf("failed to write custom template: %v", err)
		}

		content, fromCustom, err := loader.Load("palette.css.tmpl")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !fromCustom {
			t.Error("expected custom template, got embedded")
		}
		if string(content) != string(custom) {
			t.Errorf("content = %q", content)
		}

		got, err := New(loader, nil).Render(KindCSS, testPalette(), Options{Format: colour.FormatHex})
		if err != nil {
			t.Fatalf("Render() error: %v", err)
		}
		if string(got) != "#1673a2\n#ffffff80\n" {
			t.Errorf("Render() with custom template = %q", got)
		}
	})

	t.Run("rejects path names", func(t *testing.T) {
		if _, _, err := loader.Load("../palette.css.tmpl"); err == nil {
			t.Error("expected error for a path")
		}
	})

	t.Run("missing template", func(t *testing.T) {
		if _, _, err := loader.Load("missing.tmpl"); err == nil {
			t.Error("expected error for a missing template")
		}
	})
}

func TestLoader_ListEmbeddedTemplates(t *testing.T) {
	templates, err := NewLoader(t.TempDir()).ListEmbeddedTemplates()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := map[string]bool{"palette.css.tmpl": true, "palette.xml.tmpl": true}
	if len(templates) != len(want) {
		t.Fatalf("templates = %v", templates)
	}
	for _, name := range templates {
		if !want[name] {
			t.Errorf("unexpected template %s", name)
		}
	}
}

func TestLoader_DumpAllTemplates(t *testing.T) {
	tmpDir := t.TempDir()
	loader := NewLoader(tmpDir)

	dumped, err := loader.DumpAllTemplates(false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(dumped) != 2 {
		t.Fatalf("dumped = %v", dumped)
	}
	for _, path := range dumped {
		if _, err := os.Stat(path); err != nil {
			t.Errorf("dumped template missing: %s", path)
		}
	}

	t.Run("skips existing without force", func(t *testing.T) {
		dumped, err := loader.DumpAllTemplates(false)
		if err == nil || !strings.Contains(err.Error(), "already exists") {
			t.Errorf("expected already exists error, got %v", err)
		}
		if len(dumped) != 0 {
			t.Errorf("dumped = %v, want none", dumped)
		}
	})

	t.Run("overwrites with force", func(t *testing.T) {
		if _, err := loader.DumpAllTemplates(true); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	info := loader.GetInfo("palette.xml.tmpl")
	if !info.EmbeddedExists || !info.CustomExists || info.CustomPath != filepath.Join(tmpDir, "palette.xml.tmpl") {
		t.Errorf("GetInfo() = %+v", info)
	}
}

func TestTemplateFuncs(t *testing.T) {
	tmpDir := t.TempDir()
	custom := `{{ range .Entries }}{{ hexNoHash .Colour }} {{ .Colour | rgb }} {{ toUpper .Name }}
{{ end }}`
	if err := os.WriteFile(filepath.Join(tmpDir, "palette.xml.tmpl"), []byte(custom), 0o644); err != nil {
		t.Fatalf("failed to write custom template: %v", err)
	}

	got, err := New(NewLoader(tmpDir), nil).Render(KindXML, testPalette(), Options{Format: colour.FormatHex})
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	want := "1673a2 rgb(22, 115, 162) COLOR001\nffffff80 rgba(255, 255, 255, 0.5) COLOR002\n"
	if string(got) != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}
