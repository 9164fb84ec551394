// Package keyedstore defines the durable key/value capability the POS core
// persists its collections through, plus the bundled implementations.
package keyedstore

import "context"

// Collection keys. One key per entity collection, one per singleton, plus
// the remembered export directory.
const (
	KeyProducts         = "products"
	KeySales            = "sales"
	KeySuppliers        = "suppliers"
	KeyExpenses         = "expenses"
	KeyCustomers        = "customers"
	KeyPurchases        = "purchases"
	KeyCustomerPayments = "customerPayments"
	KeyCompanyInfo      = "companyInfo"
	KeySystemSettings   = "systemSettings"
	KeyCategories       = "categories"
	KeyDirectoryHandle  = "directoryHandle"
)

// Store is a durable key/value store. Get reports absence through the
// second return value rather than an error.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
}
