// Package command holds the write side of the POS core: every mutation is a
// command struct plus a handler that applies it through the state store. The
// handlers own the cross-entity rules (stock adjustment, purchase synthesis,
// category cascades), so the repository below stays rule-free.
package command

import (
	"time"

	"github.com/swiftpos/swift-pos/internal/pos/domain"
)

// restockPurchase builds the purchase record synthesized when an eligible
// product's stock increases by qty.
func restockPurchase(p domain.Product, qty int) domain.Purchase {
	return domain.Purchase{
		ID:          domain.NewID(),
		SupplierID:  p.SupplierID,
		ProductID:   p.ID,
		ProductName: p.Name,
		Quantity:    qty,
		UnitCost:    p.BuyingPrice,
		TotalCost:   float64(qty) * p.BuyingPrice,
		Date:        time.Now(),
	}
}
