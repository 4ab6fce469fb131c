package export

import (
	"fmt"
	"io"
	"time"

	"github.com/jmylchreest/palettesweep/internal/compression"
	"github.com/jmylchreest/palettesweep/internal/sweep"
)

// WriteBundle renders p in every export kind and writes the files as a
// tar.xz archive. Members are named with Filename at t.
func (e *Exporter) WriteBundle(w io.Writer, p *sweep.Palette, opts Options, t time.Time) error {
	files := make([]compression.File, 0, len(Kinds))
	for _, kind := range Kinds {
		data, err := e.Render(kind, p, opts)
		if err != nil {
			return fmt.Errorf("render %s: %w", kind, err)
		}
		files = append(files, compression.File{Name: Filename(kind, t), Data: data, ModTime: t})
	}

	if err := compression.WriteTarXz(w, files); err != nil {
		return fmt.Errorf("write bundle: %w", err)
	}
	e.logger.Debug("wrote bundle", "files", len(files))
	return nil
}

// ReadBundle returns the files of a bundle keyed by name.
func ReadBundle(r io.Reader) (map[string][]byte, error) {
	files, err := compression.ReadTarXz(r, compression.DefaultMaxBytes)
	if err != nil {
		return nil, fmt.Errorf("read bundle: %w", err)
	}
	out := make(map[string][]byte, len(files))
	for _, f := range files {
		out[f.Name] = f.Data
	}
	return out, nil
}
