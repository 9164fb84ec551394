package domain

import "time"

// Supplier represents a product supplier
type Supplier struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
}

// Customer represents a registered customer
type Customer struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
}

// Expense represents a business expense entry
type Expense struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Category    string    `json:"category,omitempty"`
	Amount      float64   `json:"amount"`
	Date        time.Time `json:"date"`
}

// CustomerPayment represents a payment received from a customer
type CustomerPayment struct {
	ID         string    `json:"id"`
	CustomerID string    `json:"customerId"`
	Amount     float64   `json:"amount"`
	Method     string    `json:"method,omitempty"`
	Note       string    `json:"note,omitempty"`
	Date       time.Time `json:"date"`
}
