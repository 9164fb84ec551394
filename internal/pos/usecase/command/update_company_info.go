package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/swiftpos/swift-pos/internal/pos/domain"
)

// UpdateCompanyInfoCommand represents the command to save company info
type UpdateCompanyInfoCommand struct {
	Info domain.CompanyInfo
}

// UpdateCompanyInfoHandler handles company info updates
type UpdateCompanyInfoHandler struct {
	store    domain.StateStore
	notifier domain.Notifier
}

// NewUpdateCompanyInfoHandler creates a new update company info handler
func NewUpdateCompanyInfoHandler(store domain.StateStore, notifier domain.Notifier) *UpdateCompanyInfoHandler {
	return &UpdateCompanyInfoHandler{store: store, notifier: notifier}
}

// Handle executes the update company info command
func (h *UpdateCompanyInfoHandler) Handle(ctx context.Context, cmd UpdateCompanyInfoCommand) error {
	info := cmd.Info
	info.Name = strings.TrimSpace(info.Name)
	if info.Name == "" {
		return fmt.Errorf("company name is required: %w", domain.ErrEmptyName)
	}

	err := h.store.Update(ctx, func(s *domain.State) error {
		s.CompanyInfo = info
		return nil
	})
	if err != nil {
		return err
	}

	h.notifier.Notify("Company info saved", domain.SeveritySuccess)
	return nil
}
