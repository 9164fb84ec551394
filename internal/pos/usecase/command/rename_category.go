package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/swiftpos/swift-pos/internal/pos/domain"
)

// RenameCategoryCommand represents the command to rename a category
type RenameCategoryCommand struct {
	OldName string
	NewName string
}

// RenameCategoryHandler handles category renames
type RenameCategoryHandler struct {
	store    domain.StateStore
	notifier domain.Notifier
}

// NewRenameCategoryHandler creates a new rename category handler
func NewRenameCategoryHandler(store domain.StateStore, notifier domain.Notifier) *RenameCategoryHandler {
	return &RenameCategoryHandler{store: store, notifier: notifier}
}

// Handle executes the rename category command. The category entry and every
// product referencing the old name change in the same commit, so no reader
// ever sees a product pointing at a name that no longer exists. Renaming a
// category to a different casing of itself is allowed.
func (h *RenameCategoryHandler) Handle(ctx context.Context, cmd RenameCategoryCommand) error {
	newName := strings.TrimSpace(cmd.NewName)
	if newName == "" {
		return fmt.Errorf("category name is required: %w", domain.ErrEmptyName)
	}

	err := h.store.Update(ctx, func(s *domain.State) error {
		idx := -1
		for i, c := range s.Categories {
			if strings.EqualFold(c, cmd.OldName) {
				idx = i
				continue
			}
			if strings.EqualFold(c, newName) {
				return fmt.Errorf("category %q: %w", newName, domain.ErrDuplicateCategory)
			}
		}
		if idx < 0 {
			return fmt.Errorf("category %q: %w", cmd.OldName, domain.ErrNotFound)
		}

		s.Categories[idx] = newName
		for i := range s.Products {
			if strings.EqualFold(s.Products[i].Category, cmd.OldName) {
				s.Products[i].Category = newName
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	h.notifier.Notify(fmt.Sprintf("Category renamed to %s", newName), domain.SeveritySuccess)
	return nil
}
