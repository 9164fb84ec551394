package command

import (
	"context"

	"github.com/swiftpos/swift-pos/internal/pos/domain"
)

// UpdateSettingsCommand represents the command to save system settings
type UpdateSettingsCommand struct {
	Settings domain.SystemSettings
}

// UpdateSettingsHandler handles settings updates
type UpdateSettingsHandler struct {
	store    domain.StateStore
	notifier domain.Notifier
}

// NewUpdateSettingsHandler creates a new update settings handler
func NewUpdateSettingsHandler(store domain.StateStore, notifier domain.Notifier) *UpdateSettingsHandler {
	return &UpdateSettingsHandler{store: store, notifier: notifier}
}

// Handle executes the update settings command. When the business type
// changes, an empty or never-customized category set is reseeded from the
// new type's defaults; a customized set survives the switch untouched.
func (h *UpdateSettingsHandler) Handle(ctx context.Context, cmd UpdateSettingsCommand) error {
	reseeded := false
	err := h.store.Update(ctx, func(s *domain.State) error {
		if cmd.Settings.BusinessType != s.Settings.BusinessType {
			s.Categories, reseeded = domain.ReseedOnBusinessTypeChange(s.Categories, cmd.Settings.BusinessType)
		}
		s.Settings = cmd.Settings
		return nil
	})
	if err != nil {
		return err
	}

	if reseeded {
		h.notifier.Notify("Categories reset for new business type", domain.SeverityInfo)
	}
	h.notifier.Notify("Settings saved", domain.SeveritySuccess)
	return nil
}
