package domain

// Product represents an inventory item
type Product struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	Stock        int     `json:"stock"`
	BuyingPrice  float64 `json:"buyingPrice"`
	SellingPrice float64 `json:"sellingPrice"`
	SupplierID   string  `json:"supplierId,omitempty"`
}

// RestockEligible reports whether a stock increase on this product should
// synthesize a purchase record: it needs a supplier and a real buying price.
func (p *Product) RestockEligible() bool {
	return p.SupplierID != "" && p.BuyingPrice > 0
}
