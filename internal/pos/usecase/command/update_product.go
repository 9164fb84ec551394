package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/swiftpos/swift-pos/internal/pos/domain"
)

// UpdateProductCommand represents the command to update an existing product
type UpdateProductCommand struct {
	ID           string
	Name         string
	Category     string
	Stock        int
	BuyingPrice  float64
	SellingPrice float64
	SupplierID   string
}

// UpdateProductHandler handles product updates
type UpdateProductHandler struct {
	store    domain.StateStore
	notifier domain.Notifier
}

// NewUpdateProductHandler creates a new update product handler
func NewUpdateProductHandler(store domain.StateStore, notifier domain.Notifier) *UpdateProductHandler {
	return &UpdateProductHandler{store: store, notifier: notifier}
}

// Handle executes the update product command. Only the stock INCREASE since
// the previous record counts as a restock, so the synthesized purchase
// carries the delta, never the absolute stock.
func (h *UpdateProductHandler) Handle(ctx context.Context, cmd UpdateProductCommand) (*domain.Product, error) {
	name := strings.TrimSpace(cmd.Name)
	if name == "" {
		return nil, fmt.Errorf("product name is required: %w", domain.ErrEmptyName)
	}

	var updated domain.Product
	err := h.store.Update(ctx, func(s *domain.State) error {
		idx := s.FindProduct(cmd.ID)
		if idx < 0 {
			return fmt.Errorf("product %s: %w", cmd.ID, domain.ErrNotFound)
		}
		if !domain.ContainsCategory(s.Categories, cmd.Category) {
			return fmt.Errorf("category %q: %w", cmd.Category, domain.ErrNotFound)
		}

		previous := s.Products[idx]
		updated = domain.Product{
			ID:           previous.ID,
			Name:         name,
			Category:     cmd.Category,
			Stock:        cmd.Stock,
			BuyingPrice:  cmd.BuyingPrice,
			SellingPrice: cmd.SellingPrice,
			SupplierID:   cmd.SupplierID,
		}
		s.Products[idx] = updated

		delta := updated.Stock - previous.Stock
		if delta > 0 && updated.RestockEligible() {
			s.Purchases = append(s.Purchases, restockPurchase(updated, delta))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	h.notifier.Notify(fmt.Sprintf("Product %s updated", updated.Name), domain.SeveritySuccess)
	return &updated, nil
}
