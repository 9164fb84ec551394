// Package exporter writes named files into a user-granted directory, with a
// download-directory fallback when the grant is denied or unavailable.
package exporter

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Sentinel errors
var (
	// ErrPermissionDenied means the target directory exists but cannot be
	// written to.
	ErrPermissionDenied = errors.New("exporter: permission denied")
	// ErrUnsupported means no export target is available at all.
	ErrUnsupported = errors.New("exporter: no export directory available")
)

// Picker asks the user to choose a directory. An empty path with a nil
// error means the user cancelled.
type Picker func(ctx context.Context) (string, error)

// FixedPicker returns a picker that always yields the given directory,
// used by headless shells and tests.
func FixedPicker(dir string) Picker {
	return func(context.Context) (string, error) { return dir, nil }
}

// Directory exports files into a picked directory and falls back to a
// download directory when the pick is unusable.
type Directory struct {
	pick        Picker
	downloadDir string
}

// NewDirectory creates a directory exporter. Either argument may be zero:
// a nil picker means directory selection is unsupported, an empty
// downloadDir means there is no fallback.
func NewDirectory(pick Picker, downloadDir string) *Directory {
	return &Directory{pick: pick, downloadDir: downloadDir}
}

// RequestAccess runs the picker. The empty string with a nil error is the
// user-cancelled path, not a failure.
func (d *Directory) RequestAccess(ctx context.Context) (string, error) {
	if d.pick == nil {
		return "", ErrUnsupported
	}
	dir, err := d.pick(ctx)
	if err != nil {
		return "", fmt.Errorf("directory selection failed: %w", err)
	}
	return dir, nil
}

// Write places the file into dir. Writability is probed before every write;
// a directory that was fine last time may have lost its permissions since.
func (d *Directory) Write(_ context.Context, dir, name string, data []byte) (string, error) {
	if err := probeWritable(dir); err != nil {
		return "", err
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		if os.IsPermission(err) {
			return "", fmt.Errorf("%w: %s", ErrPermissionDenied, dir)
		}
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}

// Fallback writes the file into the download directory, creating it if
// needed.
func (d *Directory) Fallback(ctx context.Context, name string, data []byte) (string, error) {
	if d.downloadDir == "" {
		return "", ErrUnsupported
	}
	if err := os.MkdirAll(d.downloadDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create download directory: %w", err)
	}
	return d.Write(ctx, d.downloadDir, name, data)
}

func probeWritable(dir string) error {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrPermissionDenied, dir)
	}
	probe, err := os.CreateTemp(dir, ".export-probe-*")
	if err != nil {
		return fmt.Errorf("%w: %s", ErrPermissionDenied, dir)
	}
	probe.Close()
	os.Remove(probe.Name())
	return nil
}
