package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/swiftpos/swift-pos/internal/pos/domain"
)

// AddProductCommand represents the command to add a product to inventory
type AddProductCommand struct {
	Name         string
	Category     string
	Stock        int
	BuyingPrice  float64
	SellingPrice float64
	SupplierID   string
}

// AddProductHandler handles product creation
type AddProductHandler struct {
	store    domain.StateStore
	notifier domain.Notifier
}

// NewAddProductHandler creates a new add product handler
func NewAddProductHandler(store domain.StateStore, notifier domain.Notifier) *AddProductHandler {
	return &AddProductHandler{store: store, notifier: notifier}
}

// Handle executes the add product command. A product arriving with a
// supplier, a buying price and initial stock is an incoming delivery, so a
// matching purchase record is written in the same commit.
func (h *AddProductHandler) Handle(ctx context.Context, cmd AddProductCommand) (*domain.Product, error) {
	name := strings.TrimSpace(cmd.Name)
	if name == "" {
		return nil, fmt.Errorf("product name is required: %w", domain.ErrEmptyName)
	}

	product := domain.Product{
		ID:           domain.NewID(),
		Name:         name,
		Category:     cmd.Category,
		Stock:        cmd.Stock,
		BuyingPrice:  cmd.BuyingPrice,
		SellingPrice: cmd.SellingPrice,
		SupplierID:   cmd.SupplierID,
	}

	err := h.store.Update(ctx, func(s *domain.State) error {
		if !domain.ContainsCategory(s.Categories, product.Category) {
			return fmt.Errorf("category %q: %w", product.Category, domain.ErrNotFound)
		}
		s.Products = append(s.Products, product)
		if product.RestockEligible() && product.Stock > 0 {
			s.Purchases = append(s.Purchases, restockPurchase(product, product.Stock))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	h.notifier.Notify(fmt.Sprintf("Product %s added", product.Name), domain.SeveritySuccess)
	return &product, nil
}
