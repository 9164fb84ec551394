package command

import (
	"context"

	"github.com/swiftpos/swift-pos/internal/pos/backup"
	"github.com/swiftpos/swift-pos/internal/pos/domain"
)

// ImportBackupCommand represents the command to restore state from a backup
// document.
type ImportBackupCommand struct {
	Data []byte
}

// ImportBackupHandler handles backup imports
type ImportBackupHandler struct {
	store     domain.StateStore
	notifier  domain.Notifier
	confirmer domain.Confirmer
}

// NewImportBackupHandler creates a new import backup handler
func NewImportBackupHandler(store domain.StateStore, notifier domain.Notifier, confirmer domain.Confirmer) *ImportBackupHandler {
	return &ImportBackupHandler{store: store, notifier: notifier, confirmer: confirmer}
}

// Handle executes the import. The document is fully decoded and validated
// before anything mutates, so a malformed file leaves the state exactly as
// it was. Keys present in the document replace their collections wholesale;
// absent keys leave existing data alone.
func (h *ImportBackupHandler) Handle(ctx context.Context, cmd ImportBackupCommand) error {
	if !h.confirmer.Confirm("import backup") {
		return domain.ErrNotConfirmed
	}

	snap, err := backup.Decode(cmd.Data)
	if err != nil {
		h.notifier.Notify("Backup file is not valid", domain.SeverityError)
		return err
	}

	err = h.store.Update(ctx, func(s *domain.State) error {
		snap.Apply(s)
		return nil
	})
	if err != nil {
		return err
	}

	h.notifier.Notify("Backup imported", domain.SeveritySuccess)
	return nil
}
