// Package cli_test provides tests for the CLI package.
package cli_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jmylchreest/palettesweep/internal/cli"
	"github.com/jmylchreest/palettesweep/internal/colour"
	"github.com/jmylchreest/palettesweep/internal/config"
	"github.com/jmylchreest/palettesweep/internal/export"
)

// run executes the root command with args in an environment free of
// PALETTESWEEP_* settings and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	for _, key := range []string{
		config.EnvColour, config.EnvModel, config.EnvVary, config.EnvCount,
		config.EnvFormat, config.EnvLogLevel, config.EnvTemplateDir, config.EnvDebounce,
	} {
		t.Setenv(key, "")
	}

	var outBuf, errBuf bytes.Buffer
	rootCmd := cli.NewRootCmd()
	rootCmd.SetOut(&outBuf)
	rootCmd.SetErr(&errBuf)
	envFile := filepath.Join(t.TempDir(), "missing.env")
	rootCmd.SetArgs(append([]string{"--env-file", envFile, "--quiet"}, args...))

	err := rootCmd.Execute()
	return outBuf.String(), err
}

type deriveReport struct {
	Model  string `json:"model"`
	Colour string `json:"colour"`
	Fields struct {
		HSL struct {
			Hue        string `json:"hue"`
			Saturation string `json:"saturation"`
		} `json:"hsl"`
	} `json:"fields"`
	Derived struct {
		EffectiveHSLHue int `json:"effectiveHslHue"`
		OKLCH           struct {
			CAbs float64 `json:"cAbs"`
		} `json:"oklch"`
	} `json:"derived"`
	HueMemory map[string]float64 `json:"hue_memory"`
	Vary      string             `json:"vary"`
	Count     int                `json:"count"`
}

func TestGenerateCommand(t *testing.T) {
	t.Run("DefaultTable", func(t *testing.T) {
		out, err := run(t, "generate")
		if err != nil {
			t.Fatalf("Execute() error: %v", err)
		}
		if !strings.Contains(out, "Varying Lightness, 6 swatches") {
			t.Errorf("missing summary in:\n%s", out)
		}
		if !strings.Contains(out, "#1673a2") || !strings.Contains(out, "#ffffff") {
			t.Errorf("missing sweep end points in:\n%s", out)
		}
	})

	t.Run("CSSExport", func(t *testing.T) {
		out, err := run(t, "generate", "--export", "css")
		if err != nil {
			t.Fatalf("Execute() error: %v", err)
		}
		for _, want := range []string{
			" * Palette based on hsl(200° 76% 36%)\n",
			" * Varying: Lightness, Number of Swatches: 6\n",
			"  --color-001: #1673a2;\n",
			"  --color-006: #ffffff;\n",
		} {
			if !strings.Contains(out, want) {
				t.Errorf("missing %q in:\n%s", want, out)
			}
		}
	})

	t.Run("HueSweepInOKLCH", func(t *testing.T) {
		out, err := run(t, "generate", "-m", "oklch", "--vary", "oklch_h", "-n", "4", "-e", "xml", "-f", "oklch")
		if err != nil {
			t.Fatalf("Execute() error: %v", err)
		}
		if got := strings.Count(out, "<myColor oklchValue="); got != 4 {
			t.Errorf("got %d swatches in:\n%s", got, out)
		}
		if !strings.Contains(out, " * Varying: Hue (OKLCH), Number of Swatches: 4") {
			t.Errorf("missing header in:\n%s", out)
		}
	})

	t.Run("OpacityPercent", func(t *testing.T) {
		out, err := run(t, "generate", "--vary", "opacity", "-n", "2", "--opacity", "50%", "-f", "hsl", "-e", "css")
		if err != nil {
			t.Fatalf("Execute() error: %v", err)
		}
		if !strings.Contains(out, "--color-001: hsla(200, 76%, 36%, 50%);") {
			t.Errorf("missing translucent swatch in:\n%s", out)
		}
		if !strings.Contains(out, "--color-002: hsl(200, 76%, 36%);") {
			t.Errorf("missing opaque swatch in:\n%s", out)
		}
	})

	t.Run("Errors", func(t *testing.T) {
		tests := []struct {
			name string
			args []string
			want string
		}{
			{"vary from other model", []string{"generate", "--vary", "oklch_c"}, "cannot be varied"},
			{"field from other model", []string{"generate", "--oklch-l", "50"}, "does not apply"},
			{"unknown model", []string{"generate", "-m", "lab"}, "unknown colour model"},
			{"unknown export", []string{"generate", "-e", "yaml"}, "unknown export format"},
			{"unknown format", []string{"generate", "-f", "cmyk"}, "unknown colour format"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := run(t, tt.args...)
				if err == nil || !strings.Contains(err.Error(), tt.want) {
					t.Errorf("error = %v, want %q", err, tt.want)
				}
			})
		}
	})

	t.Run("InvalidColour", func(t *testing.T) {
		_, err := run(t, "generate", "-c", "not-a-colour")
		if !errors.Is(err, colour.ErrInvalidColour) {
			t.Errorf("error = %v, want ErrInvalidColour", err)
		}
	})

	t.Run("OutputDirectoryAndBundle", func(t *testing.T) {
		dir := t.TempDir()
		bundle := filepath.Join(dir, "palette.tar.xz")
		if _, err := run(t, "generate", "-e", "json", "-o", dir, "--bundle", bundle); err != nil {
			t.Fatalf("Execute() error: %v", err)
		}

		matches, err := filepath.Glob(filepath.Join(dir, "palette-*.json"))
		if err != nil || len(matches) != 1 {
			t.Fatalf("expected one timestamped json file, got %v (%v)", matches, err)
		}

		f, err := os.Open(bundle)
		if err != nil {
			t.Fatalf("bundle not written: %v", err)
		}
		defer f.Close()
		files, err := export.ReadBundle(f)
		if err != nil {
			t.Fatalf("ReadBundle() error: %v", err)
		}
		if len(files) != 3 {
			t.Errorf("bundle has %d files, want 3", len(files))
		}
	})
}

func TestDeriveCommand(t *testing.T) {
	t.Run("AchromaticKeepsHue", func(t *testing.T) {
		out, err := run(t, "derive", "--json", "-c", "#1673a2", "--hue", "120", "--saturation", "0")
		if err != nil {
			t.Fatalf("Execute() error: %v", err)
		}

		var r deriveReport
		if err := json.Unmarshal([]byte(out), &r); err != nil {
			t.Fatalf("invalid JSON %q: %v", out, err)
		}
		if r.Fields.HSL.Hue != "120" || r.Fields.HSL.Saturation != "0" {
			t.Errorf("fields = %+v", r.Fields.HSL)
		}
		if r.HueMemory["hsl"] != 120 {
			t.Errorf("hsl hue memory = %v, want 120", r.HueMemory["hsl"])
		}
		if r.Derived.EffectiveHSLHue != 120 {
			t.Errorf("effective hue = %d, want 120", r.Derived.EffectiveHSLHue)
		}
		if r.Derived.OKLCH.CAbs != 0 {
			t.Errorf("derived chroma = %v, want 0", r.Derived.OKLCH.CAbs)
		}
		if r.Model != "hsl" || r.Vary != "lightness" || r.Count != 6 {
			t.Errorf("model/vary/count = %s/%s/%d", r.Model, r.Vary, r.Count)
		}
	})

	t.Run("Table", func(t *testing.T) {
		out, err := run(t, "derive", "-m", "oklch")
		if err != nil {
			t.Fatalf("Execute() error: %v", err)
		}
		for _, want := range []string{"Model", "oklch", "Effective HSL hue", "oklch_l x 6"} {
			if !strings.Contains(out, want) {
				t.Errorf("missing %q in:\n%s", want, out)
			}
		}
	})
}

func TestContrastCommand(t *testing.T) {
	out, err := run(t, "contrast", "white", "--against", "black")
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if !strings.Contains(out, "21.00:1") {
		t.Errorf("missing black/white ratio in:\n%s", out)
	}

	if _, err := run(t, "contrast", "bogus"); !errors.Is(err, colour.ErrInvalidColour) {
		t.Errorf("error = %v, want ErrInvalidColour", err)
	}
}

func TestTemplatesCommand(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, "templates", "dump", "-d", dir)
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if strings.Count(out, "Dumped ") != 2 {
		t.Errorf("unexpected dump output:\n%s", out)
	}
	if _, err := os.Stat(filepath.Join(dir, "palette.css.tmpl")); err != nil {
		t.Errorf("template not dumped: %v", err)
	}

	if _, err := run(t, "templates", "dump", "-d", dir); err == nil {
		t.Error("expected error when templates already exist")
	}
	if _, err := run(t, "templates", "dump", "-d", dir, "--force"); err != nil {
		t.Errorf("dump --force error: %v", err)
	}

	out, err = run(t, "templates", "list", "-d", dir)
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if !strings.Contains(out, "palette.xml.tmpl") || !strings.Contains(out, "yes") {
		t.Errorf("unexpected list output:\n%s", out)
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if !strings.HasPrefix(out, "palettesweep version ") {
		t.Errorf("version output = %q", out)
	}
}
