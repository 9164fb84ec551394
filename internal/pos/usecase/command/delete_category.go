package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/swiftpos/swift-pos/internal/pos/domain"
)

// DeleteCategoryCommand represents the command to delete a category
type DeleteCategoryCommand struct {
	Name string
}

// DeleteCategoryHandler handles category deletion
type DeleteCategoryHandler struct {
	store     domain.StateStore
	notifier  domain.Notifier
	confirmer domain.Confirmer
}

// NewDeleteCategoryHandler creates a new delete category handler
func NewDeleteCategoryHandler(store domain.StateStore, notifier domain.Notifier, confirmer domain.Confirmer) *DeleteCategoryHandler {
	return &DeleteCategoryHandler{store: store, notifier: notifier, confirmer: confirmer}
}

// Handle executes the delete category command. Deletion is refused while any
// product still references the name; the returned error carries the count so
// the shell can show it. An unreferenced category still needs the user to
// confirm before it goes. The prompt runs outside the store lock, so the
// usage guard is re-checked when the deletion commits.
func (h *DeleteCategoryHandler) Handle(ctx context.Context, cmd DeleteCategoryCommand) error {
	if err := h.check(ctx, cmd.Name); err != nil {
		return err
	}

	if !h.confirmer.Confirm(fmt.Sprintf("delete category %s", cmd.Name)) {
		return domain.ErrNotConfirmed
	}

	err := h.store.Update(ctx, func(s *domain.State) error {
		idx := findCategory(s.Categories, cmd.Name)
		if idx < 0 {
			return fmt.Errorf("category %q: %w", cmd.Name, domain.ErrNotFound)
		}
		if n := s.CountProductsInCategory(cmd.Name); n > 0 {
			return &domain.CategoryInUseError{Name: cmd.Name, Count: n}
		}
		s.Categories = append(s.Categories[:idx], s.Categories[idx+1:]...)
		return nil
	})
	if err != nil {
		return err
	}

	h.notifier.Notify(fmt.Sprintf("Category %s deleted", cmd.Name), domain.SeveritySuccess)
	return nil
}

func (h *DeleteCategoryHandler) check(ctx context.Context, name string) error {
	var err error
	h.store.View(ctx, func(s domain.State) {
		if findCategory(s.Categories, name) < 0 {
			err = fmt.Errorf("category %q: %w", name, domain.ErrNotFound)
			return
		}
		if n := s.CountProductsInCategory(name); n > 0 {
			err = &domain.CategoryInUseError{Name: name, Count: n}
		}
	})
	return err
}

func findCategory(categories []string, name string) int {
	for i, c := range categories {
		if strings.EqualFold(c, name) {
			return i
		}
	}
	return -1
}
