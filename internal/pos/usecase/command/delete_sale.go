package command

import (
	"context"

	"github.com/swiftpos/swift-pos/internal/pos/domain"
)

// DeleteSaleCommand represents the command to delete a recorded sale
type DeleteSaleCommand struct {
	ID string
}

// DeleteSaleHandler handles sale deletion
type DeleteSaleHandler struct {
	store    domain.StateStore
	notifier domain.Notifier
}

// NewDeleteSaleHandler creates a new delete sale handler
func NewDeleteSaleHandler(store domain.StateStore, notifier domain.Notifier) *DeleteSaleHandler {
	return &DeleteSaleHandler{store: store, notifier: notifier}
}

// Handle executes the delete sale command: the exact stock inverse of
// recording it. Every line item's quantity goes back onto its product; lines
// whose product has since been deleted restore nothing. An unknown sale id
// is a no-op, not an error.
func (h *DeleteSaleHandler) Handle(ctx context.Context, cmd DeleteSaleCommand) error {
	deleted := false
	err := h.store.Update(ctx, func(s *domain.State) error {
		idx := s.FindSale(cmd.ID)
		if idx < 0 {
			return nil
		}
		for _, item := range s.Sales[idx].Items {
			if pi := s.FindProduct(item.ProductID); pi >= 0 {
				s.Products[pi].Stock += item.Quantity
			}
		}
		s.Sales = append(s.Sales[:idx], s.Sales[idx+1:]...)
		deleted = true
		return nil
	})
	if err != nil {
		return err
	}

	if deleted {
		h.notifier.Notify("Sale deleted, stock restored", domain.SeveritySuccess)
	}
	return nil
}
