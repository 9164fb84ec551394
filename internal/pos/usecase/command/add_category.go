package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/swiftpos/swift-pos/internal/pos/domain"
)

// AddCategoryCommand represents the command to add a category
type AddCategoryCommand struct {
	Name string
}

// AddCategoryHandler handles category creation
type AddCategoryHandler struct {
	store    domain.StateStore
	notifier domain.Notifier
}

// NewAddCategoryHandler creates a new add category handler
func NewAddCategoryHandler(store domain.StateStore, notifier domain.Notifier) *AddCategoryHandler {
	return &AddCategoryHandler{store: store, notifier: notifier}
}

// Handle executes the add category command. Names are unique
// case-insensitively, so "shoes" is rejected while "Shoes" exists.
func (h *AddCategoryHandler) Handle(ctx context.Context, cmd AddCategoryCommand) error {
	name := strings.TrimSpace(cmd.Name)
	if name == "" {
		return fmt.Errorf("category name is required: %w", domain.ErrEmptyName)
	}

	err := h.store.Update(ctx, func(s *domain.State) error {
		if domain.ContainsCategory(s.Categories, name) {
			return fmt.Errorf("category %q: %w", name, domain.ErrDuplicateCategory)
		}
		s.Categories = append(s.Categories, name)
		return nil
	})
	if err != nil {
		return err
	}

	h.notifier.Notify(fmt.Sprintf("Category %s added", name), domain.SeveritySuccess)
	return nil
}
