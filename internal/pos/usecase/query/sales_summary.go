package query

import (
	"context"
	"sort"

	"github.com/swiftpos/swift-pos/internal/pos/domain"
)

// DaySummary aggregates one calendar day of sales.
type DaySummary struct {
	Date      string  `json:"date"` // YYYY-MM-DD, local time
	SaleCount int     `json:"saleCount"`
	ItemCount int     `json:"itemCount"`
	Total     float64 `json:"total"`
}

// SalesSummaryQuery represents the query for per-day sales totals. Zero
// bounds mean unbounded on that side.
type SalesSummaryQuery struct {
	From string // YYYY-MM-DD inclusive
	To   string // YYYY-MM-DD inclusive
}

// SalesSummaryHandler aggregates sales per day for reports and receipts.
type SalesSummaryHandler struct {
	store domain.StateStore
}

// NewSalesSummaryHandler creates a new sales summary handler
func NewSalesSummaryHandler(store domain.StateStore) *SalesSummaryHandler {
	return &SalesSummaryHandler{store: store}
}

// Handle returns one summary per calendar day that has sales, ordered by
// date ascending.
func (h *SalesSummaryHandler) Handle(ctx context.Context, q SalesSummaryQuery) []DaySummary {
	byDay := make(map[string]*DaySummary)
	h.store.View(ctx, func(s domain.State) {
		for _, sale := range s.Sales {
			day := sale.Date.Format("2006-01-02")
			if q.From != "" && day < q.From {
				continue
			}
			if q.To != "" && day > q.To {
				continue
			}
			sum, ok := byDay[day]
			if !ok {
				sum = &DaySummary{Date: day}
				byDay[day] = sum
			}
			sum.SaleCount++
			for _, item := range sale.Items {
				sum.ItemCount += item.Quantity
			}
			sum.Total += sale.Total
		}
	})

	out := make([]DaySummary, 0, len(byDay))
	for _, sum := range byDay {
		out = append(out, *sum)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}
