package command

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swiftpos/swift-pos/internal/pos/domain"
	"github.com/swiftpos/swift-pos/internal/pos/repository"
	"github.com/swiftpos/swift-pos/pkg/keyedstore"
)

func newTestStore(t *testing.T) *repository.Store {
	t.Helper()
	store, err := repository.NewStore(context.Background(), keyedstore.NewMemory())
	require.NoError(t, err)
	return store
}

func currentState(t *testing.T, store *repository.Store) domain.State {
	t.Helper()
	var out domain.State
	store.View(context.Background(), func(s domain.State) { out = s })
	return out
}

func confirmAlways(string) bool { return true }
func confirmNever(string) bool  { return false }

func TestAddProductSynthesizesPurchase(t *testing.T) {
	store := newTestStore(t)
	h := NewAddProductHandler(store, domain.NopNotifier{})

	product, err := h.Handle(context.Background(), AddProductCommand{
		Name:         "Shirt",
		Category:     "Clothing",
		Stock:        10,
		BuyingPrice:  5,
		SellingPrice: 10,
		SupplierID:   "S1",
	})
	require.NoError(t, err)
	require.NotEmpty(t, product.ID)

	s := currentState(t, store)
	require.Len(t, s.Products, 1)
	require.Len(t, s.Purchases, 1)
	p := s.Purchases[0]
	assert.Equal(t, product.ID, p.ProductID)
	assert.Equal(t, "S1", p.SupplierID)
	assert.Equal(t, 10, p.Quantity)
	assert.Equal(t, 5.0, p.UnitCost)
	assert.Equal(t, 50.0, p.TotalCost)
}

func TestAddProductWithoutSupplierSkipsPurchase(t *testing.T) {
	store := newTestStore(t)
	h := NewAddProductHandler(store, domain.NopNotifier{})

	_, err := h.Handle(context.Background(), AddProductCommand{
		Name: "Shirt", Category: "Clothing", Stock: 10, BuyingPrice: 5, SellingPrice: 10,
	})
	require.NoError(t, err)

	s := currentState(t, store)
	assert.Empty(t, s.Purchases)
}

func TestAddProductValidation(t *testing.T) {
	store := newTestStore(t)
	h := NewAddProductHandler(store, domain.NopNotifier{})

	_, err := h.Handle(context.Background(), AddProductCommand{Name: "   ", Category: "Clothing"})
	assert.ErrorIs(t, err, domain.ErrEmptyName)

	_, err = h.Handle(context.Background(), AddProductCommand{Name: "Shirt", Category: "NoSuchCategory"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, currentState(t, store).Products)
}

func TestUpdateProductPurchaseCarriesDeltaOnly(t *testing.T) {
	store := newTestStore(t)
	add := NewAddProductHandler(store, domain.NopNotifier{})
	update := NewUpdateProductHandler(store, domain.NopNotifier{})

	product, err := add.Handle(context.Background(), AddProductCommand{
		Name: "Shirt", Category: "Clothing", Stock: 10, BuyingPrice: 5, SellingPrice: 10, SupplierID: "S1",
	})
	require.NoError(t, err)

	_, err = update.Handle(context.Background(), UpdateProductCommand{
		ID: product.ID, Name: "Shirt", Category: "Clothing", Stock: 15, BuyingPrice: 5, SellingPrice: 10, SupplierID: "S1",
	})
	require.NoError(t, err)

	s := currentState(t, store)
	require.Len(t, s.Purchases, 2)
	assert.Equal(t, 5, s.Purchases[1].Quantity)
	assert.Equal(t, 25.0, s.Purchases[1].TotalCost)
	assert.Equal(t, 15, s.Products[0].Stock)
}

func TestUpdateProductStockDecreaseNoPurchase(t *testing.T) {
	store := newTestStore(t)
	add := NewAddProductHandler(store, domain.NopNotifier{})
	update := NewUpdateProductHandler(store, domain.NopNotifier{})

	product, err := add.Handle(context.Background(), AddProductCommand{
		Name: "Shirt", Category: "Clothing", Stock: 10, BuyingPrice: 5, SellingPrice: 10, SupplierID: "S1",
	})
	require.NoError(t, err)

	_, err = update.Handle(context.Background(), UpdateProductCommand{
		ID: product.ID, Name: "Shirt", Category: "Clothing", Stock: 4, BuyingPrice: 5, SellingPrice: 10, SupplierID: "S1",
	})
	require.NoError(t, err)

	s := currentState(t, store)
	assert.Len(t, s.Purchases, 1) // only the one from creation
	assert.Equal(t, 4, s.Products[0].Stock)
}

func TestDeleteProductKeepsPurchaseHistory(t *testing.T) {
	store := newTestStore(t)
	add := NewAddProductHandler(store, domain.NopNotifier{})
	del := NewDeleteProductHandler(store, domain.NopNotifier{})

	product, err := add.Handle(context.Background(), AddProductCommand{
		Name: "Shirt", Category: "Clothing", Stock: 10, BuyingPrice: 5, SellingPrice: 10, SupplierID: "S1",
	})
	require.NoError(t, err)

	require.NoError(t, del.Handle(context.Background(), DeleteProductCommand{ID: product.ID}))

	s := currentState(t, store)
	assert.Empty(t, s.Products)
	assert.Len(t, s.Purchases, 1)

	err = del.Handle(context.Background(), DeleteProductCommand{ID: "missing"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRecordAndDeleteSaleAreStockInverses(t *testing.T) {
	store := newTestStore(t)
	add := NewAddProductHandler(store, domain.NopNotifier{})
	record := NewRecordSaleHandler(store, domain.NopNotifier{})
	del := NewDeleteSaleHandler(store, domain.NopNotifier{})

	a, err := add.Handle(context.Background(), AddProductCommand{Name: "A", Category: "Other", Stock: 10, SellingPrice: 2})
	require.NoError(t, err)
	b, err := add.Handle(context.Background(), AddProductCommand{Name: "B", Category: "Other", Stock: 5, SellingPrice: 3})
	require.NoError(t, err)

	sale, err := record.Handle(context.Background(), RecordSaleCommand{
		Items: []SaleLine{
			{ProductID: a.ID, Quantity: 3},
			{ProductID: b.ID, Quantity: 2},
		},
		Customer: domain.CustomerWalkIn,
	})
	require.NoError(t, err)

	s := currentState(t, store)
	assert.Equal(t, 7, s.Products[0].Stock)
	assert.Equal(t, 3, s.Products[1].Stock)
	assert.Equal(t, 3*2.0+2*3.0, sale.Total)

	require.NoError(t, del.Handle(context.Background(), DeleteSaleCommand{ID: sale.ID}))
	s = currentState(t, store)
	assert.Equal(t, 10, s.Products[0].Stock)
	assert.Equal(t, 5, s.Products[1].Stock)
	assert.Empty(t, s.Sales)
}

func TestRecordSaleAllowsNegativeStock(t *testing.T) {
	store := newTestStore(t)
	add := NewAddProductHandler(store, domain.NopNotifier{})
	record := NewRecordSaleHandler(store, domain.NopNotifier{})

	a, err := add.Handle(context.Background(), AddProductCommand{Name: "A", Category: "Other", Stock: 1, SellingPrice: 2})
	require.NoError(t, err)

	_, err = record.Handle(context.Background(), RecordSaleCommand{
		Items:    []SaleLine{{ProductID: a.ID, Quantity: 5}},
		Customer: domain.CustomerOnline,
	})
	require.NoError(t, err)
	assert.Equal(t, -4, currentState(t, store).Products[0].Stock)
}

func TestRecordSaleCustomerClassification(t *testing.T) {
	store := newTestStore(t)
	add := NewAddProductHandler(store, domain.NopNotifier{})
	record := NewRecordSaleHandler(store, domain.NopNotifier{})

	a, err := add.Handle(context.Background(), AddProductCommand{Name: "A", Category: "Other", Stock: 10, SellingPrice: 2})
	require.NoError(t, err)

	sale, err := record.Handle(context.Background(), RecordSaleCommand{
		Items:    []SaleLine{{ProductID: a.ID, Quantity: 1}},
		Customer: "C42",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.CustomerRegistered, sale.CustomerType)
	assert.Equal(t, "C42", sale.CustomerID)

	sale, err = record.Handle(context.Background(), RecordSaleCommand{
		Items:    []SaleLine{{ProductID: a.ID, Quantity: 1}},
		Customer: domain.CustomerWalkIn,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.CustomerWalkIn, sale.CustomerType)
	assert.Empty(t, sale.CustomerID)
}

func TestDeleteSaleUnknownIDIsNoOp(t *testing.T) {
	store := newTestStore(t)
	del := NewDeleteSaleHandler(store, domain.NopNotifier{})
	require.NoError(t, del.Handle(context.Background(), DeleteSaleCommand{ID: "missing"}))
}

func TestAddCategoryRejectsCaseInsensitiveDuplicate(t *testing.T) {
	store := newTestStore(t)
	h := NewAddCategoryHandler(store, domain.NopNotifier{})

	// "Shoes" already in the retail seed
	err := h.Handle(context.Background(), AddCategoryCommand{Name: "shoes"})
	assert.ErrorIs(t, err, domain.ErrDuplicateCategory)

	require.NoError(t, h.Handle(context.Background(), AddCategoryCommand{Name: "Hats"}))
	err = h.Handle(context.Background(), AddCategoryCommand{Name: "  hats  "})
	assert.ErrorIs(t, err, domain.ErrDuplicateCategory)

	err = h.Handle(context.Background(), AddCategoryCommand{Name: "   "})
	assert.ErrorIs(t, err, domain.ErrEmptyName)
}

func TestRenameCategoryCascadesToProducts(t *testing.T) {
	store := newTestStore(t)
	add := NewAddProductHandler(store, domain.NopNotifier{})
	rename := NewRenameCategoryHandler(store, domain.NopNotifier{})

	_, err := add.Handle(context.Background(), AddProductCommand{Name: "Boots", Category: "Shoes", Stock: 1})
	require.NoError(t, err)
	_, err = add.Handle(context.Background(), AddProductCommand{Name: "Belt", Category: "Accessories", Stock: 1})
	require.NoError(t, err)

	require.NoError(t, rename.Handle(context.Background(), RenameCategoryCommand{OldName: "Shoes", NewName: "Footwear"}))

	s := currentState(t, store)
	assert.Contains(t, s.Categories, "Footwear")
	assert.NotContains(t, s.Categories, "Shoes")
	assert.Equal(t, "Footwear", s.Products[0].Category)
	assert.Equal(t, "Accessories", s.Products[1].Category)
}

func TestRenameCategoryValidation(t *testing.T) {
	store := newTestStore(t)
	rename := NewRenameCategoryHandler(store, domain.NopNotifier{})

	err := rename.Handle(context.Background(), RenameCategoryCommand{OldName: "Shoes", NewName: " "})
	assert.ErrorIs(t, err, domain.ErrEmptyName)

	err = rename.Handle(context.Background(), RenameCategoryCommand{OldName: "Shoes", NewName: "clothing"})
	assert.ErrorIs(t, err, domain.ErrDuplicateCategory)

	err = rename.Handle(context.Background(), RenameCategoryCommand{OldName: "NoSuch", NewName: "Anything"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Re-casing a category is not a duplicate of itself.
	require.NoError(t, rename.Handle(context.Background(), RenameCategoryCommand{OldName: "Shoes", NewName: "SHOES"}))
	assert.Contains(t, currentState(t, store).Categories, "SHOES")
}

func TestDeleteCategoryGuardedByUsage(t *testing.T) {
	store := newTestStore(t)
	add := NewAddProductHandler(store, domain.NopNotifier{})
	del := NewDeleteCategoryHandler(store, domain.NopNotifier{}, domain.ConfirmerFunc(confirmAlways))

	_, err := add.Handle(context.Background(), AddProductCommand{Name: "Boots", Category: "Shoes", Stock: 1})
	require.NoError(t, err)
	_, err = add.Handle(context.Background(), AddProductCommand{Name: "Sandals", Category: "shoes", Stock: 1})
	require.NoError(t, err)

	err = del.Handle(context.Background(), DeleteCategoryCommand{Name: "Shoes"})
	require.ErrorIs(t, err, domain.ErrCategoryInUse)
	var inUse *domain.CategoryInUseError
	require.True(t, errors.As(err, &inUse))
	assert.Equal(t, 2, inUse.Count)
	assert.Contains(t, currentState(t, store).Categories, "Shoes")

	require.NoError(t, del.Handle(context.Background(), DeleteCategoryCommand{Name: "Other"}))
	assert.NotContains(t, currentState(t, store).Categories, "Other")
}

func TestDeleteCategoryRequiresConfirmation(t *testing.T) {
	store := newTestStore(t)
	del := NewDeleteCategoryHandler(store, domain.NopNotifier{}, domain.ConfirmerFunc(confirmNever))

	err := del.Handle(context.Background(), DeleteCategoryCommand{Name: "Other"})
	assert.ErrorIs(t, err, domain.ErrNotConfirmed)
	assert.Contains(t, currentState(t, store).Categories, "Other")
}

func TestUpdateSettingsReseedsUncustomizedCategories(t *testing.T) {
	store := newTestStore(t)
	h := NewUpdateSettingsHandler(store, domain.NopNotifier{})

	settings := currentState(t, store).Settings
	settings.BusinessType = domain.BusinessRestaurant
	require.NoError(t, h.Handle(context.Background(), UpdateSettingsCommand{Settings: settings}))

	s := currentState(t, store)
	assert.Equal(t, domain.SeedCategories(domain.BusinessRestaurant), s.Categories)
	assert.Equal(t, domain.BusinessRestaurant, s.Settings.BusinessType)
}

func TestUpdateSettingsKeepsCustomizedCategories(t *testing.T) {
	store := newTestStore(t)
	addCat := NewAddCategoryHandler(store, domain.NopNotifier{})
	h := NewUpdateSettingsHandler(store, domain.NopNotifier{})

	require.NoError(t, addCat.Handle(context.Background(), AddCategoryCommand{Name: "My Special Stuff"}))

	settings := currentState(t, store).Settings
	settings.BusinessType = domain.BusinessPharmacy
	require.NoError(t, h.Handle(context.Background(), UpdateSettingsCommand{Settings: settings}))

	s := currentState(t, store)
	assert.Contains(t, s.Categories, "My Special Stuff")
	assert.Contains(t, s.Categories, "Clothing")
	assert.Equal(t, domain.BusinessPharmacy, s.Settings.BusinessType)
}

func TestResetDataRestoresDefaults(t *testing.T) {
	store := newTestStore(t)
	add := NewAddProductHandler(store, domain.NopNotifier{})
	reset := NewResetDataHandler(store, domain.NopNotifier{}, domain.ConfirmerFunc(confirmAlways))

	_, err := add.Handle(context.Background(), AddProductCommand{Name: "Shirt", Category: "Clothing", Stock: 3})
	require.NoError(t, err)

	require.NoError(t, reset.Handle(context.Background(), ResetDataCommand{}))

	s := currentState(t, store)
	assert.Empty(t, s.Products)
	assert.Equal(t, domain.DefaultSettings(), s.Settings)
	assert.Equal(t, domain.DefaultCompanyInfo(), s.CompanyInfo)
	assert.Equal(t, domain.SeedCategories(domain.BusinessRetail), s.Categories)
}

func TestResetDataRequiresConfirmation(t *testing.T) {
	store := newTestStore(t)
	add := NewAddProductHandler(store, domain.NopNotifier{})
	reset := NewResetDataHandler(store, domain.NopNotifier{}, domain.ConfirmerFunc(confirmNever))

	_, err := add.Handle(context.Background(), AddProductCommand{Name: "Shirt", Category: "Clothing", Stock: 3})
	require.NoError(t, err)

	err = reset.Handle(context.Background(), ResetDataCommand{})
	assert.ErrorIs(t, err, domain.ErrNotConfirmed)
	assert.Len(t, currentState(t, store).Products, 1)
}

func TestImportBackupMalformedLeavesStateUntouched(t *testing.T) {
	store := newTestStore(t)
	add := NewAddProductHandler(store, domain.NopNotifier{})
	imp := NewImportBackupHandler(store, domain.NopNotifier{}, domain.ConfirmerFunc(confirmAlways))

	_, err := add.Handle(context.Background(), AddProductCommand{Name: "Shirt", Category: "Clothing", Stock: 3})
	require.NoError(t, err)
	before := currentState(t, store)

	err = imp.Handle(context.Background(), ImportBackupCommand{Data: []byte(`{"products": "nope"}`)})
	require.ErrorIs(t, err, domain.ErrInvalidBackupFormat)
	assert.Equal(t, before, currentState(t, store))

	err = imp.Handle(context.Background(), ImportBackupCommand{Data: []byte(`not json`)})
	require.ErrorIs(t, err, domain.ErrInvalidBackupFormat)
	assert.Equal(t, before, currentState(t, store))
}

func TestImportBackupPartialReplace(t *testing.T) {
	store := newTestStore(t)
	add := NewAddProductHandler(store, domain.NopNotifier{})
	imp := NewImportBackupHandler(store, domain.NopNotifier{}, domain.ConfirmerFunc(confirmAlways))

	_, err := add.Handle(context.Background(), AddProductCommand{Name: "Shirt", Category: "Clothing", Stock: 3})
	require.NoError(t, err)

	doc := `{
		"suppliers": [{"id": "S1", "name": "Acme"}],
		"unknownKey": {"ignored": true}
	}`
	require.NoError(t, imp.Handle(context.Background(), ImportBackupCommand{Data: []byte(doc)}))

	s := currentState(t, store)
	require.Len(t, s.Suppliers, 1)
	assert.Equal(t, "Acme", s.Suppliers[0].Name)
	// products key was absent, so the collection survived the import
	assert.Len(t, s.Products, 1)
}

func TestImportBackupRequiresConfirmation(t *testing.T) {
	store := newTestStore(t)
	imp := NewImportBackupHandler(store, domain.NopNotifier{}, domain.ConfirmerFunc(confirmNever))

	err := imp.Handle(context.Background(), ImportBackupCommand{Data: []byte(`{}`)})
	assert.ErrorIs(t, err, domain.ErrNotConfirmed)
}

func TestSupplierLifecycle(t *testing.T) {
	store := newTestStore(t)
	h := NewSupplierHandler(store, domain.NopNotifier{})

	supplier, err := h.Add(context.Background(), AddSupplierCommand{Name: "Acme", Phone: "123"})
	require.NoError(t, err)

	require.NoError(t, h.Update(context.Background(), UpdateSupplierCommand{ID: supplier.ID, Name: "Acme Ltd"}))
	s := currentState(t, store)
	assert.Equal(t, "Acme Ltd", s.Suppliers[0].Name)
	assert.Empty(t, s.Suppliers[0].Phone) // update replaces the whole record

	require.NoError(t, h.Delete(context.Background(), DeleteSupplierCommand{ID: supplier.ID}))
	assert.Empty(t, currentState(t, store).Suppliers)

	err = h.Delete(context.Background(), DeleteSupplierCommand{ID: supplier.ID})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCustomerPaymentValidation(t *testing.T) {
	store := newTestStore(t)
	h := NewCustomerPaymentHandler(store, domain.NopNotifier{})

	_, err := h.Add(context.Background(), AddCustomerPaymentCommand{CustomerID: "", Amount: 10})
	assert.Error(t, err)

	_, err = h.Add(context.Background(), AddCustomerPaymentCommand{CustomerID: "C1", Amount: 0})
	assert.Error(t, err)

	payment, err := h.Add(context.Background(), AddCustomerPaymentCommand{CustomerID: "C1", Amount: 25, Method: "cash"})
	require.NoError(t, err)
	assert.False(t, payment.Date.IsZero())
}
