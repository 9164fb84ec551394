package command

import (
	"context"
	"fmt"
	"time"

	"github.com/swiftpos/swift-pos/internal/pos/domain"
)

// SaleLine is one cart line of a sale being recorded.
type SaleLine struct {
	ProductID string
	Quantity  int
}

// RecordSaleCommand represents the command to record a completed sale.
// Customer carries either one of the walk-in/online markers or a registered
// customer's id.
type RecordSaleCommand struct {
	Items    []SaleLine
	Customer string
	Date     time.Time
}

// RecordSaleHandler handles sale recording
type RecordSaleHandler struct {
	store    domain.StateStore
	notifier domain.Notifier
}

// NewRecordSaleHandler creates a new record sale handler
func NewRecordSaleHandler(store domain.StateStore, notifier domain.Notifier) *RecordSaleHandler {
	return &RecordSaleHandler{store: store, notifier: notifier}
}

// Handle executes the record sale command. Each line decrements its
// product's stock by the sold quantity; stock is NOT checked for
// sufficiency and may go negative. Line items denormalize the product name
// and selling price at the moment of sale, so later product edits never
// rewrite history.
func (h *RecordSaleHandler) Handle(ctx context.Context, cmd RecordSaleCommand) (*domain.Sale, error) {
	if len(cmd.Items) == 0 {
		return nil, fmt.Errorf("sale requires at least one item")
	}
	for _, line := range cmd.Items {
		if line.Quantity <= 0 {
			return nil, fmt.Errorf("item quantity must be positive")
		}
	}

	date := cmd.Date
	if date.IsZero() {
		date = time.Now()
	}

	sale := domain.Sale{
		ID:   domain.NewID(),
		Date: date,
	}
	switch cmd.Customer {
	case domain.CustomerWalkIn, domain.CustomerOnline, "":
		sale.CustomerType = cmd.Customer
		if sale.CustomerType == "" {
			sale.CustomerType = domain.CustomerWalkIn
		}
	default:
		sale.CustomerType = domain.CustomerRegistered
		sale.CustomerID = cmd.Customer
	}

	err := h.store.Update(ctx, func(s *domain.State) error {
		items := make([]domain.SaleItem, 0, len(cmd.Items))
		total := 0.0
		for _, line := range cmd.Items {
			idx := s.FindProduct(line.ProductID)
			if idx < 0 {
				return fmt.Errorf("product %s: %w", line.ProductID, domain.ErrNotFound)
			}
			p := &s.Products[idx]
			p.Stock -= line.Quantity
			items = append(items, domain.SaleItem{
				ProductID:   p.ID,
				ProductName: p.Name,
				Quantity:    line.Quantity,
				Price:       p.SellingPrice,
			})
			total += float64(line.Quantity) * p.SellingPrice
		}
		sale.Items = items
		sale.Total = total
		s.Sales = append(s.Sales, sale)
		return nil
	})
	if err != nil {
		return nil, err
	}

	h.notifier.Notify("Sale recorded", domain.SeveritySuccess)
	return &sale, nil
}
