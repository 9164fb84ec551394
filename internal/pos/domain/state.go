package domain

import (
	"context"
	"strings"
)

// State is the explicitly owned container for every entity collection plus
// the two singleton records. Collections keep insertion order; nothing in
// here reorders them. All access goes through a StateStore so there is a
// single writer at a time.
type State struct {
	Products         []Product         `json:"products"`
	Sales            []Sale            `json:"sales"`
	Suppliers        []Supplier        `json:"suppliers"`
	Expenses         []Expense         `json:"expenses"`
	Customers        []Customer        `json:"customers"`
	Purchases        []Purchase        `json:"purchases"`
	CustomerPayments []CustomerPayment `json:"customerPayments"`
	Categories       []string          `json:"categories"`
	CompanyInfo      CompanyInfo       `json:"companyInfo"`
	Settings         SystemSettings    `json:"systemSettings"`
}

// DefaultState returns the state a fresh install starts from: empty
// collections, default singletons, and the category seed for the default
// business type.
func DefaultState() State {
	settings := DefaultSettings()
	return State{
		Categories:  SeedCategories(settings.BusinessType),
		CompanyInfo: DefaultCompanyInfo(),
		Settings:    settings,
	}
}

// Clone returns a deep copy. Mutating the copy never affects the original.
func (s State) Clone() State {
	cp := s
	cp.Products = append([]Product(nil), s.Products...)
	cp.Sales = make([]Sale, len(s.Sales))
	for i, sale := range s.Sales {
		cp.Sales[i] = sale
		cp.Sales[i].Items = append([]SaleItem(nil), sale.Items...)
	}
	cp.Suppliers = append([]Supplier(nil), s.Suppliers...)
	cp.Expenses = append([]Expense(nil), s.Expenses...)
	cp.Customers = append([]Customer(nil), s.Customers...)
	cp.Purchases = append([]Purchase(nil), s.Purchases...)
	cp.CustomerPayments = append([]CustomerPayment(nil), s.CustomerPayments...)
	cp.Categories = append([]string(nil), s.Categories...)
	return cp
}

// FindProduct returns the index of the product with the given id, or -1.
func (s *State) FindProduct(id string) int {
	for i := range s.Products {
		if s.Products[i].ID == id {
			return i
		}
	}
	return -1
}

// FindSale returns the index of the sale with the given id, or -1.
func (s *State) FindSale(id string) int {
	for i := range s.Sales {
		if s.Sales[i].ID == id {
			return i
		}
	}
	return -1
}

// CountProductsInCategory counts products referencing the category name,
// case-insensitively.
func (s *State) CountProductsInCategory(name string) int {
	n := 0
	for i := range s.Products {
		if strings.EqualFold(s.Products[i].Category, name) {
			n++
		}
	}
	return n
}

// StateStore is the contract the invariant layer mutates state through.
// Update runs fn on an isolated copy and commits it only when fn returns
// nil, so a failed mutation is never observable. View runs fn on a
// point-in-time copy.
type StateStore interface {
	Update(ctx context.Context, fn func(*State) error) error
	View(ctx context.Context, fn func(State))
}
