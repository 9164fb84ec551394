package query

import (
	"context"

	"github.com/swiftpos/swift-pos/internal/pos/domain"
)

// LowStockHandler surfaces products at or below the configured low-stock
// threshold, driving the restock alerts in the shell.
type LowStockHandler struct {
	store domain.StateStore
}

// NewLowStockHandler creates a new low stock handler
func NewLowStockHandler(store domain.StateStore) *LowStockHandler {
	return &LowStockHandler{store: store}
}

// Handle returns every product whose stock is at or below the threshold
// from system settings, in insertion order.
func (h *LowStockHandler) Handle(ctx context.Context) []domain.Product {
	var out []domain.Product
	h.store.View(ctx, func(s domain.State) {
		threshold := int(s.Settings.LowStockThreshold)
		for _, p := range s.Products {
			if p.Stock <= threshold {
				out = append(out, p)
			}
		}
	})
	return out
}
