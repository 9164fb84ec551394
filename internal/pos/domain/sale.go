package domain

import "time"

// Customer classification values stored on a sale. Anything else supplied at
// record time is treated as a customer identifier.
const (
	CustomerWalkIn     = "walk-in"
	CustomerOnline     = "online"
	CustomerRegistered = "customer"
)

// SaleItem is a single line of a sale. Product data is denormalized so the
// sale stays readable after the product is edited or deleted.
type SaleItem struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// Sale represents a completed transaction
type Sale struct {
	ID           string     `json:"id"`
	Items        []SaleItem `json:"items"`
	Total        float64    `json:"total"`
	CustomerType string     `json:"customerType"`
	CustomerID   string     `json:"customerId,omitempty"`
	Date         time.Time  `json:"date"`
}

// Purchase represents a stock acquisition from a supplier. Purchases are
// synthesized automatically when an eligible product's stock increases and
// are never auto-deleted.
type Purchase struct {
	ID          string    `json:"id"`
	SupplierID  string    `json:"supplierId"`
	ProductID   string    `json:"productId"`
	ProductName string    `json:"productName"`
	Quantity    int       `json:"quantity"`
	UnitCost    float64   `json:"unitCost"`
	TotalCost   float64   `json:"totalCost"`
	Date        time.Time `json:"date"`
}
