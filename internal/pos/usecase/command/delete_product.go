package command

import (
	"context"
	"fmt"

	"github.com/swiftpos/swift-pos/internal/pos/domain"
)

// DeleteProductCommand represents the command to delete a product
type DeleteProductCommand struct {
	ID string
}

// DeleteProductHandler handles product deletion
type DeleteProductHandler struct {
	store    domain.StateStore
	notifier domain.Notifier
}

// NewDeleteProductHandler creates a new delete product handler
func NewDeleteProductHandler(store domain.StateStore, notifier domain.Notifier) *DeleteProductHandler {
	return &DeleteProductHandler{store: store, notifier: notifier}
}

// Handle executes the delete product command. Sales and purchases keep their
// denormalized copies of the product data; nothing cascades.
func (h *DeleteProductHandler) Handle(ctx context.Context, cmd DeleteProductCommand) error {
	err := h.store.Update(ctx, func(s *domain.State) error {
		idx := s.FindProduct(cmd.ID)
		if idx < 0 {
			return fmt.Errorf("product %s: %w", cmd.ID, domain.ErrNotFound)
		}
		s.Products = append(s.Products[:idx], s.Products[idx+1:]...)
		return nil
	})
	if err != nil {
		return err
	}

	h.notifier.Notify("Product deleted", domain.SeveritySuccess)
	return nil
}
