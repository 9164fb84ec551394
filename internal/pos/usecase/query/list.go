// Package query holds the read side of the POS core. Every handler works on
// a point-in-time copy of the state, so callers can hold results as long as
// they like.
package query

import (
	"context"
	"strings"

	"github.com/swiftpos/swift-pos/internal/pos/domain"
)

// ListProductsQuery represents the query to list products
type ListProductsQuery struct {
	Category string // Optional: filter by category
}

// ListHandler serves the plain collection listings and the two singleton
// records.
type ListHandler struct {
	store domain.StateStore
}

// NewListHandler creates a new list handler
func NewListHandler(store domain.StateStore) *ListHandler {
	return &ListHandler{store: store}
}

// Products returns products in insertion order, optionally filtered by
// category (case-insensitive).
func (h *ListHandler) Products(ctx context.Context, q ListProductsQuery) []domain.Product {
	var out []domain.Product
	h.store.View(ctx, func(s domain.State) {
		if q.Category == "" {
			out = s.Products
			return
		}
		for _, p := range s.Products {
			if strings.EqualFold(p.Category, q.Category) {
				out = append(out, p)
			}
		}
	})
	return out
}

// Sales returns all sales in insertion order
func (h *ListHandler) Sales(ctx context.Context) []domain.Sale {
	var out []domain.Sale
	h.store.View(ctx, func(s domain.State) { out = s.Sales })
	return out
}

// Suppliers returns all suppliers in insertion order
func (h *ListHandler) Suppliers(ctx context.Context) []domain.Supplier {
	var out []domain.Supplier
	h.store.View(ctx, func(s domain.State) { out = s.Suppliers })
	return out
}

// Customers returns all customers in insertion order
func (h *ListHandler) Customers(ctx context.Context) []domain.Customer {
	var out []domain.Customer
	h.store.View(ctx, func(s domain.State) { out = s.Customers })
	return out
}

// Expenses returns all expenses in insertion order
func (h *ListHandler) Expenses(ctx context.Context) []domain.Expense {
	var out []domain.Expense
	h.store.View(ctx, func(s domain.State) { out = s.Expenses })
	return out
}

// Purchases returns all purchases in insertion order
func (h *ListHandler) Purchases(ctx context.Context) []domain.Purchase {
	var out []domain.Purchase
	h.store.View(ctx, func(s domain.State) { out = s.Purchases })
	return out
}

// CustomerPayments returns all customer payments in insertion order
func (h *ListHandler) CustomerPayments(ctx context.Context) []domain.CustomerPayment {
	var out []domain.CustomerPayment
	h.store.View(ctx, func(s domain.State) { out = s.CustomerPayments })
	return out
}

// Categories returns the category set in insertion order
func (h *ListHandler) Categories(ctx context.Context) []string {
	var out []string
	h.store.View(ctx, func(s domain.State) { out = s.Categories })
	return out
}

// CompanyInfo returns the company identity record
func (h *ListHandler) CompanyInfo(ctx context.Context) domain.CompanyInfo {
	var out domain.CompanyInfo
	h.store.View(ctx, func(s domain.State) { out = s.CompanyInfo })
	return out
}

// Settings returns the current system settings
func (h *ListHandler) Settings(ctx context.Context) domain.SystemSettings {
	var out domain.SystemSettings
	h.store.View(ctx, func(s domain.State) { out = s.Settings })
	return out
}
