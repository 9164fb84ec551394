package query

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/swiftpos/swift-pos/internal/pos/backup"
	"github.com/swiftpos/swift-pos/internal/pos/domain"
	"github.com/swiftpos/swift-pos/pkg/exporter"
)

// DirectoryMemory remembers the export directory between sessions so the
// user is not asked to pick one on every backup.
type DirectoryMemory interface {
	RememberExportDir(ctx context.Context, dir string) error
	ExportDir(ctx context.Context) (string, bool, error)
}

// ExportBackupHandler takes a point-in-time snapshot and writes it as the
// dated backup file.
type ExportBackupHandler struct {
	store    domain.StateStore
	memory   DirectoryMemory
	exporter *exporter.Directory
	notifier domain.Notifier
}

// NewExportBackupHandler creates a new export backup handler
func NewExportBackupHandler(store domain.StateStore, memory DirectoryMemory, exp *exporter.Directory, notifier domain.Notifier) *ExportBackupHandler {
	return &ExportBackupHandler{store: store, memory: memory, exporter: exp, notifier: notifier}
}

// Handle exports the current state. The snapshot is taken synchronously
// before any directory interaction, so mutations that land while the user
// is picking a folder never leak into the file. Returns the written path,
// or "" when the user cancelled directory selection.
func (h *ExportBackupHandler) Handle(ctx context.Context) (string, error) {
	var snap backup.Snapshot
	h.store.View(ctx, func(s domain.State) {
		snap = backup.Take(s)
	})
	data, err := backup.Marshal(snap)
	if err != nil {
		return "", err
	}
	name := backup.Filename(time.Now())

	dir, err := h.targetDir(ctx)
	if err != nil {
		if errors.Is(err, exporter.ErrUnsupported) {
			return h.fallback(ctx, name, data, domain.ErrUnsupportedEnvironment)
		}
		return "", err
	}
	if dir == "" {
		// User cancelled the picker; nothing to do.
		return "", nil
	}

	path, err := h.exporter.Write(ctx, dir, name, data)
	if err != nil {
		// Any write failure degrades to the download directory rather than
		// losing the backup, not just permission problems.
		cause := err
		if errors.Is(err, exporter.ErrPermissionDenied) {
			cause = domain.ErrPermissionDenied
		}
		return h.fallback(ctx, name, data, cause)
	}

	if err := h.memory.RememberExportDir(ctx, dir); err != nil {
		// The backup itself landed; losing the remembered directory only
		// means asking again next time.
		h.notifier.Notify("Could not remember export folder", domain.SeverityWarning)
	}
	h.notifier.Notify(fmt.Sprintf("Backup saved to %s", path), domain.SeveritySuccess)
	return path, nil
}

// targetDir prefers the remembered directory and falls back to asking.
func (h *ExportBackupHandler) targetDir(ctx context.Context) (string, error) {
	if dir, ok, err := h.memory.ExportDir(ctx); err == nil && ok {
		return dir, nil
	}
	return h.exporter.RequestAccess(ctx)
}

// fallback degrades to the download directory rather than losing the
// backup; cause records why the primary target was unusable.
func (h *ExportBackupHandler) fallback(ctx context.Context, name string, data []byte, cause error) (string, error) {
	path, err := h.exporter.Fallback(ctx, name, data)
	if err != nil {
		h.notifier.Notify("Backup export failed", domain.SeverityError)
		return "", fmt.Errorf("backup export failed: %w", cause)
	}
	h.notifier.Notify(fmt.Sprintf("Backup saved to downloads: %s", path), domain.SeverityWarning)
	return path, nil
}
