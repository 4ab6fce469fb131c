// Package compression reads and writes the tar.xz archives used for palette
// bundles.
package compression

import (
	"archive/tar"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/ulikunitz/xz"

	"github.com/jmylchreest/palettesweep/internal/security"
)

// DefaultMaxBytes caps the uncompressed size read from an archive.
const DefaultMaxBytes = 16 * 1024 * 1024

// File is one archive member.
type File struct {
	Name    string
	Data    []byte
	ModTime time.Time
}

// WriteTarXz writes files as a tar archive compressed with xz.
func WriteTarXz(w io.Writer, files []File) error {
	xzw, err := xz.NewWriter(w)
	if err != nil {
		return fmt.Errorf("failed to create xz writer: %w", err)
	}

	tw := tar.NewWriter(xzw)
	for _, f := range files {
		if err := security.ValidateFilePath(f.Name, "bundle"); err != nil {
			return fmt.Errorf("invalid archive member %q: %w", f.Name, err)
		}
		header := &tar.Header{
			Name:     f.Name,
			Mode:     0o644,
			Size:     int64(len(f.Data)),
			ModTime:  f.ModTime,
			Typeflag: tar.TypeReg,
		}
		if err := tw.WriteHeader(header); err != nil {
			return fmt.Errorf("failed to write tar header for %s: %w", f.Name, err)
		}
		if _, err := tw.Write(f.Data); err != nil {
			return fmt.Errorf("failed to write %s: %w", f.Name, err)
		}
	}

	if err := tw.Close(); err != nil {
		return fmt.Errorf("failed to close tar archive: %w", err)
	}
	if err := xzw.Close(); err != nil {
		return fmt.Errorf("failed to close xz stream: %w", err)
	}
	return nil
}

// ReadTarXz reads every regular file from a tar.xz archive, reading at most
// maxBytes of uncompressed data (DefaultMaxBytes when maxBytes <= 0).
func ReadTarXz(r io.Reader, maxBytes int64) ([]File, error) {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}

	xzr, err := xz.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to create xz reader: %w", err)
	}
	tr := tar.NewReader(security.NewLimitedReader(xzr, maxBytes))

	var files []File
	for {
		header, err := tr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read tar archive: %w", err)
		}

		if header.Typeflag != tar.TypeReg {
			continue
		}
		if err := security.ValidateFilePath(header.Name, "bundle"); err != nil {
			return nil, fmt.Errorf("invalid archive member %q: %w", header.Name, err)
		}

		data, err := io.ReadAll(tr)
		if err != nil {
			return nil, fmt.Errorf("failed to extract %s: %w", header.Name, err)
		}
		files = append(files, File{Name: header.Name, Data: data, ModTime: header.ModTime})
	}

	return files, nil
}
