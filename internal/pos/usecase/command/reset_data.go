package command

import (
	"context"

	"github.com/swiftpos/swift-pos/internal/pos/domain"
)

// ResetDataCommand represents the command to erase all business data
type ResetDataCommand struct{}

// ResetDataHandler handles the full data reset
type ResetDataHandler struct {
	store     domain.StateStore
	notifier  domain.Notifier
	confirmer domain.Confirmer
}

// NewResetDataHandler creates a new reset data handler
func NewResetDataHandler(store domain.StateStore, notifier domain.Notifier, confirmer domain.Confirmer) *ResetDataHandler {
	return &ResetDataHandler{store: store, notifier: notifier, confirmer: confirmer}
}

// Handle executes the reset: every collection emptied, both singletons back
// to their defaults, categories reseeded for the default business type.
// Nothing happens without an affirmative confirmation.
func (h *ResetDataHandler) Handle(ctx context.Context, _ ResetDataCommand) error {
	if !h.confirmer.Confirm("reset all data") {
		return domain.ErrNotConfirmed
	}

	err := h.store.Update(ctx, func(s *domain.State) error {
		*s = domain.DefaultState()
		return nil
	})
	if err != nil {
		return err
	}

	h.notifier.Notify("All data has been reset", domain.SeverityWarning)
	return nil
}
