//go:build wireinject
// +build wireinject

package pos

import (
	"github.com/google/wire"

	"github.com/swiftpos/swift-pos/internal/pos/domain"
	"github.com/swiftpos/swift-pos/internal/pos/repository"
	"github.com/swiftpos/swift-pos/internal/pos/usecase/command"
	"github.com/swiftpos/swift-pos/internal/pos/usecase/query"
	"github.com/swiftpos/swift-pos/pkg/exporter"
)

// ProvideStateStore provides the state store contract
func ProvideStateStore(store *repository.Store) domain.StateStore {
	return store
}

// ProvideDirectoryMemory provides the remembered export directory
func ProvideDirectoryMemory(store *repository.Store) query.DirectoryMemory {
	return store
}

// Command Handlers Providers
func ProvideAddProductHandler(store domain.StateStore, notifier domain.Notifier) *command.AddProductHandler {
	return command.NewAddProductHandler(store, notifier)
}

func ProvideUpdateProductHandler(store domain.StateStore, notifier domain.Notifier) *command.UpdateProductHandler {
	return command.NewUpdateProductHandler(store, notifier)
}

func ProvideDeleteProductHandler(store domain.StateStore, notifier domain.Notifier) *command.DeleteProductHandler {
	return command.NewDeleteProductHandler(store, notifier)
}

func ProvideRecordSaleHandler(store domain.StateStore, notifier domain.Notifier) *command.RecordSaleHandler {
	return command.NewRecordSaleHandler(store, notifier)
}

func ProvideDeleteSaleHandler(store domain.StateStore, notifier domain.Notifier) *command.DeleteSaleHandler {
	return command.NewDeleteSaleHandler(store, notifier)
}

func ProvideAddCategoryHandler(store domain.StateStore, notifier domain.Notifier) *command.AddCategoryHandler {
	return command.NewAddCategoryHandler(store, notifier)
}

func ProvideRenameCategoryHandler(store domain.StateStore, notifier domain.Notifier) *command.RenameCategoryHandler {
	return command.NewRenameCategoryHandler(store, notifier)
}

func ProvideDeleteCategoryHandler(store domain.StateStore, notifier domain.Notifier, confirmer domain.Confirmer) *command.DeleteCategoryHandler {
	return command.NewDeleteCategoryHandler(store, notifier, confirmer)
}

func ProvideSupplierHandler(store domain.StateStore, notifier domain.Notifier) *command.SupplierHandler {
	return command.NewSupplierHandler(store, notifier)
}

func ProvideCustomerHandler(store domain.StateStore, notifier domain.Notifier) *command.CustomerHandler {
	return command.NewCustomerHandler(store, notifier)
}

func ProvideExpenseHandler(store domain.StateStore, notifier domain.Notifier) *command.ExpenseHandler {
	return command.NewExpenseHandler(store, notifier)
}

func ProvideCustomerPaymentHandler(store domain.StateStore, notifier domain.Notifier) *command.CustomerPaymentHandler {
	return command.NewCustomerPaymentHandler(store, notifier)
}

func ProvideUpdateSettingsHandler(store domain.StateStore, notifier domain.Notifier) *command.UpdateSettingsHandler {
	return command.NewUpdateSettingsHandler(store, notifier)
}

func ProvideUpdateCompanyInfoHandler(store domain.StateStore, notifier domain.Notifier) *command.UpdateCompanyInfoHandler {
	return command.NewUpdateCompanyInfoHandler(store, notifier)
}

func ProvideResetDataHandler(store domain.StateStore, notifier domain.Notifier, confirmer domain.Confirmer) *command.ResetDataHandler {
	return command.NewResetDataHandler(store, notifier, confirmer)
}

func ProvideImportBackupHandler(store domain.StateStore, notifier domain.Notifier, confirmer domain.Confirmer) *command.ImportBackupHandler {
	return command.NewImportBackupHandler(store, notifier, confirmer)
}

// Query Handlers Providers
func ProvideListHandler(store domain.StateStore) *query.ListHandler {
	return query.NewListHandler(store)
}

func ProvideLowStockHandler(store domain.StateStore) *query.LowStockHandler {
	return query.NewLowStockHandler(store)
}

func ProvideSalesSummaryHandler(store domain.StateStore) *query.SalesSummaryHandler {
	return query.NewSalesSummaryHandler(store)
}

func ProvideExportBackupHandler(store domain.StateStore, memory query.DirectoryMemory, exp *exporter.Directory, notifier domain.Notifier) *query.ExportBackupHandler {
	return query.NewExportBackupHandler(store, memory, exp, notifier)
}

// ProvideCommandHandlers provides all command handlers
func ProvideCommandHandlers(
	addProduct *command.AddProductHandler,
	updateProduct *command.UpdateProductHandler,
	deleteProduct *command.DeleteProductHandler,
	recordSale *command.RecordSaleHandler,
	deleteSale *command.DeleteSaleHandler,
	addCategory *command.AddCategoryHandler,
	renameCategory *command.RenameCategoryHandler,
	deleteCategory *command.DeleteCategoryHandler,
	suppliers *command.SupplierHandler,
	customers *command.CustomerHandler,
	expenses *command.ExpenseHandler,
	payments *command.CustomerPaymentHandler,
	updateSettings *command.UpdateSettingsHandler,
	updateCompanyInfo *command.UpdateCompanyInfoHandler,
	resetData *command.ResetDataHandler,
	importBackup *command.ImportBackupHandler,
) *CommandHandlers {
	return &CommandHandlers{
		AddProduct:        addProduct,
		UpdateProduct:     updateProduct,
		DeleteProduct:     deleteProduct,
		RecordSale:        recordSale,
		DeleteSale:        deleteSale,
		AddCategory:       addCategory,
		RenameCategory:    renameCategory,
		DeleteCategory:    deleteCategory,
		Suppliers:         suppliers,
		Customers:         customers,
		Expenses:          expenses,
		Payments:          payments,
		UpdateSettings:    updateSettings,
		UpdateCompanyInfo: updateCompanyInfo,
		ResetData:         resetData,
		ImportBackup:      importBackup,
	}
}

// ProvideQueryHandlers provides all query handlers
func ProvideQueryHandlers(
	list *query.ListHandler,
	lowStock *query.LowStockHandler,
	salesSummary *query.SalesSummaryHandler,
	exportBackup *query.ExportBackupHandler,
) *QueryHandlers {
	return &QueryHandlers{
		List:         list,
		LowStock:     lowStock,
		SalesSummary: salesSummary,
		ExportBackup: exportBackup,
	}
}

// ProvideApp provides the assembled core
func ProvideApp(store *repository.Store, commands *CommandHandlers, queries *QueryHandlers) *App {
	return &App{Commands: commands, Queries: queries, store: store}
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideStateStore,
	ProvideDirectoryMemory,
)

var CommandHandlerSet = wire.NewSet(
	ProvideAddProductHandler,
	ProvideUpdateProductHandler,
	ProvideDeleteProductHandler,
	ProvideRecordSaleHandler,
	ProvideDeleteSaleHandler,
	ProvideAddCategoryHandler,
	ProvideRenameCategoryHandler,
	ProvideDeleteCategoryHandler,
	ProvideSupplierHandler,
	ProvideCustomerHandler,
	ProvideExpenseHandler,
	ProvideCustomerPaymentHandler,
	ProvideUpdateSettingsHandler,
	ProvideUpdateCompanyInfoHandler,
	ProvideResetDataHandler,
	ProvideImportBackupHandler,
	ProvideCommandHandlers,
)

var QueryHandlerSet = wire.NewSet(
	ProvideListHandler,
	ProvideLowStockHandler,
	ProvideSalesSummaryHandler,
	ProvideExportBackupHandler,
	ProvideQueryHandlers,
)

var AllHandlersSet = wire.NewSet(
	RepositorySet,
	CommandHandlerSet,
	QueryHandlerSet,
)

// InitializeApp initializes the core with all dependencies
func InitializeApp(store *repository.Store, exp *exporter.Directory, notifier domain.Notifier, confirmer domain.Confirmer) (*App, error) {
	wire.Build(
		AllHandlersSet,
		ProvideApp,
	)
	return nil, nil
}
