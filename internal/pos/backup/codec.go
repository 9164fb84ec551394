// Package backup serializes the full POS state to a JSON snapshot document
// and restores it. Every top-level key is independently optional on import;
// the shape of each present key is validated before any state changes.
package backup

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/swiftpos/swift-pos/internal/pos/domain"
)

// Snapshot is the backup document. Pointer fields distinguish "key absent"
// from "key present and empty": an absent key leaves the corresponding
// collection untouched on import.
type Snapshot struct {
	Products         *[]domain.Product         `json:"products,omitempty"`
	Sales            *[]domain.Sale            `json:"sales,omitempty"`
	Suppliers        *[]domain.Supplier        `json:"suppliers,omitempty"`
	Expenses         *[]domain.Expense         `json:"expenses,omitempty"`
	Customers        *[]domain.Customer        `json:"customers,omitempty"`
	Purchases        *[]domain.Purchase        `json:"purchases,omitempty"`
	CustomerPayments *[]domain.CustomerPayment `json:"customerPayments,omitempty"`
	CompanyInfo      *domain.CompanyInfo       `json:"companyInfo,omitempty"`
	Settings         *domain.SystemSettings    `json:"systemSettings,omitempty"`
	Categories       *[]string                 `json:"categories,omitempty"`
}

// Take builds a full snapshot of the given state. The state is already a
// point-in-time copy when it arrives here, so the snapshot never reflects
// mutations that commit after the export started.
func Take(s domain.State) Snapshot {
	return Snapshot{
		Products:         &s.Products,
		Sales:            &s.Sales,
		Suppliers:        &s.Suppliers,
		Expenses:         &s.Expenses,
		Customers:        &s.Customers,
		Purchases:        &s.Purchases,
		CustomerPayments: &s.CustomerPayments,
		CompanyInfo:      &s.CompanyInfo,
		Settings:         &s.Settings,
		Categories:       &s.Categories,
	}
}

// Marshal renders the snapshot as the pretty-printed backup document.
func Marshal(snap Snapshot) ([]byte, error) {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode backup: %w", err)
	}
	return data, nil
}

// Decode parses and validates a backup document. Unknown top-level keys are
// ignored; a recognized key whose value does not match the expected shape
// fails the whole document with ErrInvalidBackupFormat.
func Decode(data []byte) (*Snapshot, error) {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidBackupFormat, err)
	}
	return &snap, nil
}

// Apply replaces each collection present in the snapshot wholesale and
// leaves absent ones untouched. Partial import, not a reset.
func (snap *Snapshot) Apply(s *domain.State) {
	if snap.Products != nil {
		s.Products = *snap.Products
	}
	if snap.Sales != nil {
		s.Sales = *snap.Sales
	}
	if snap.Suppliers != nil {
		s.Suppliers = *snap.Suppliers
	}
	if snap.Expenses != nil {
		s.Expenses = *snap.Expenses
	}
	if snap.Customers != nil {
		s.Customers = *snap.Customers
	}
	if snap.Purchases != nil {
		s.Purchases = *snap.Purchases
	}
	if snap.CustomerPayments != nil {
		s.CustomerPayments = *snap.CustomerPayments
	}
	if snap.CompanyInfo != nil {
		s.CompanyInfo = *snap.CompanyInfo
	}
	if snap.Settings != nil {
		s.Settings = *snap.Settings
	}
	if snap.Categories != nil {
		s.Categories = *snap.Categories
	}
}

// Filename returns the export file name for the given moment, for example
// swift-pos-backup-2026-08-24.json.
func Filename(t time.Time) string {
	return fmt.Sprintf("swift-pos-backup-%s.json", t.Format("2006-01-02"))
}
