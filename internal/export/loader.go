package export

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/palettesweep/internal/security"
)

//go:embed *.tmpl
var embeddedTemplates embed.FS

// Loader handles loading templates with support for custom overrides.
// It checks for custom templates in ~/.config/palettesweep/templates/
// and falls back to embedded templates if custom ones don't exist.
type Loader struct {
	embedFS   fs.ReadFileFS
	customDir string
	logger    hclog.Logger
}

// DefaultTemplateDir returns ~/.config/palettesweep/templates.
func DefaultTemplateDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "" // Fallback to empty if home dir unavailable
	}
	return filepath.Join(home, ".config", "palettesweep", "templates")
}

// NewLoader creates a loader over the embedded templates. An empty customDir
// uses DefaultTemplateDir.
func NewLoader(customDir string) *Loader {
	if customDir == "" {
		customDir = DefaultTemplateDir()
	}
	return &Loader{
		embedFS:   embeddedTemplates,
		customDir: customDir,
		logger:    hclog.NewNullLogger(),
	}
}

// WithLogger sets the logger used to report which template was chosen.
func (l *Loader) WithLogger(logger hclog.Logger) *Loader {
	if logger != nil {
		l.logger = logger.Named("templates")
	}
	return l
}

// Load reads a template file, checking for custom overrides first.
// Returns the template content and whether it was loaded from a custom override.
func (l *Loader) Load(filename string) (content []byte, fromCustom bool, err error) {
	if err := security.ValidateTemplateName(filename); err != nil {
		return nil, false, err
	}

	customPath := l.CustomPath(filename)
	if content, err := os.ReadFile(customPath); err == nil {
		l.logger.Debug("using custom template", "path", customPath)
		return content, true, nil
	}

	l.logger.Trace("using embedded template", "name", filename)
	content, err = l.embedFS.ReadFile(filename)
	if err != nil {
		return nil, false, fmt.Errorf("failed to load template %q: %w", filename, err)
	}

	return content, false, nil
}

// CustomPath returns the path where a custom template would be located.
func (l *Loader) CustomPath(filename string) string {
	return filepath.Join(l.customDir, filename)
}

// CustomDir returns the directory searched for custom templates.
func (l *Loader) CustomDir() string {
	return l.customDir
}

// HasCustomTemplate checks if a custom template exists for the given filename.
func (l *Loader) HasCustomTemplate(filename string) bool {
	_, err := os.Stat(l.CustomPath(filename))
	return err == nil
}

// ListEmbeddedTemplates returns a list of all embedded template files.
func (l *Loader) ListEmbeddedTemplates() ([]string, error) {
	var templates []string

	err := fs.WalkDir(l.embedFS, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && filepath.Ext(path) == ".tmpl" {
			templates = append(templates, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list embedded templates: %w", err)
	}

	return templates, nil
}

// DumpTemplate writes an embedded template to the custom templates directory.
// If force is false, it will not overwrite existing custom templates.
func (l *Loader) DumpTemplate(filename string, force bool) error {
	if err := security.ValidateTemplateName(filename); err != nil {
		return err
	}
	content, err := l.embedFS.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read embedded template %q: %w", filename, err)
	}

	outputPath := l.CustomPath(filename)
	if !force {
		if _, err := os.Stat(outputPath); err == nil {
			return fmt.Errorf("custom template already exists: %s (use --force to overwrite)", outputPath)
		}
	}

	if err := os.MkdirAll(l.customDir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %q: %w", l.customDir, err)
	}
	if err := os.WriteFile(outputPath, content, 0o644); err != nil {
		return fmt.Errorf("failed to write template to %q: %w", outputPath, err)
	}

	l.logger.Info("dumped template", "path", outputPath)
	return nil
}

// DumpAllTemplates writes all embedded templates to the custom templates directory.
// Existing templates are skipped unless force is set; the skipped ones are
// reported together in the returned error.
func (l *Loader) DumpAllTemplates(force bool) ([]string, error) {
	templates, err := l.ListEmbeddedTemplates()
	if err != nil {
		return nil, err
	}

	var dumped []string
	var skipped []string

	for _, tmpl := range templates {
		if err := l.DumpTemplate(tmpl, force); err != nil {
			if !force && strings.Contains(err.Error(), "already exists") {
				skipped = append(skipped, err.Error())
				continue
			}
			return dumped, err
		}
		dumped = append(dumped, l.CustomPath(tmpl))
	}

	if len(skipped) > 0 {
		return dumped, fmt.Errorf("%s", strings.Join(skipped, "; "))
	}

	return dumped, nil
}

// TemplateInfo describes where a template would be loaded from.
type TemplateInfo struct {
	Filename       string
	EmbeddedExists bool
	CustomExists   bool
	CustomPath     string
}

// GetInfo returns information about a specific template.
func (l *Loader) GetInfo(filename string) TemplateInfo {
	_, embeddedErr := l.embedFS.ReadFile(filename)
	return TemplateInfo{
		Filename:       filename,
		EmbeddedExists: embeddedErr == nil,
		CustomExists:   l.HasCustomTemplate(filename),
		CustomPath:     l.CustomPath(filename),
	}
}
