// Package pos assembles the POS core: the state repository, the command and
// query handlers, and the capability implementations the shell plugs in.
package pos

import (
	"context"
	"fmt"

	"github.com/swiftpos/swift-pos/internal/pos/domain"
	"github.com/swiftpos/swift-pos/internal/pos/repository"
	"github.com/swiftpos/swift-pos/internal/pos/usecase/command"
	"github.com/swiftpos/swift-pos/internal/pos/usecase/query"
	"github.com/swiftpos/swift-pos/pkg/config"
	"github.com/swiftpos/swift-pos/pkg/database"
	"github.com/swiftpos/swift-pos/pkg/exporter"
	"github.com/swiftpos/swift-pos/pkg/keyedstore"
	"github.com/swiftpos/swift-pos/pkg/logger"
)

// CommandHandlers is a struct that holds all command handlers
type CommandHandlers struct {
	AddProduct        *command.AddProductHandler
	UpdateProduct     *command.UpdateProductHandler
	DeleteProduct     *command.DeleteProductHandler
	RecordSale        *command.RecordSaleHandler
	DeleteSale        *command.DeleteSaleHandler
	AddCategory       *command.AddCategoryHandler
	RenameCategory    *command.RenameCategoryHandler
	DeleteCategory    *command.DeleteCategoryHandler
	Suppliers         *command.SupplierHandler
	Customers         *command.CustomerHandler
	Expenses          *command.ExpenseHandler
	Payments          *command.CustomerPaymentHandler
	UpdateSettings    *command.UpdateSettingsHandler
	UpdateCompanyInfo *command.UpdateCompanyInfoHandler
	ResetData         *command.ResetDataHandler
	ImportBackup      *command.ImportBackupHandler
}

// QueryHandlers is a struct that holds all query handlers
type QueryHandlers struct {
	List         *query.ListHandler
	LowStock     *query.LowStockHandler
	SalesSummary *query.SalesSummaryHandler
	ExportBackup *query.ExportBackupHandler
}

// App is the assembled POS core handed to the UI shell.
type App struct {
	Commands *CommandHandlers
	Queries  *QueryHandlers

	store *repository.Store
}

// NewApp wires every handler against the given repository and capabilities.
func NewApp(store *repository.Store, exp *exporter.Directory, notifier domain.Notifier, confirmer domain.Confirmer) *App {
	return &App{
		Commands: &CommandHandlers{
			AddProduct:        command.NewAddProductHandler(store, notifier),
			UpdateProduct:     command.NewUpdateProductHandler(store, notifier),
			DeleteProduct:     command.NewDeleteProductHandler(store, notifier),
			RecordSale:        command.NewRecordSaleHandler(store, notifier),
			DeleteSale:        command.NewDeleteSaleHandler(store, notifier),
			AddCategory:       command.NewAddCategoryHandler(store, notifier),
			RenameCategory:    command.NewRenameCategoryHandler(store, notifier),
			DeleteCategory:    command.NewDeleteCategoryHandler(store, notifier, confirmer),
			Suppliers:         command.NewSupplierHandler(store, notifier),
			Customers:         command.NewCustomerHandler(store, notifier),
			Expenses:          command.NewExpenseHandler(store, notifier),
			Payments:          command.NewCustomerPaymentHandler(store, notifier),
			UpdateSettings:    command.NewUpdateSettingsHandler(store, notifier),
			UpdateCompanyInfo: command.NewUpdateCompanyInfoHandler(store, notifier),
			ResetData:         command.NewResetDataHandler(store, notifier, confirmer),
			ImportBackup:      command.NewImportBackupHandler(store, notifier, confirmer),
		},
		Queries: &QueryHandlers{
			List:         query.NewListHandler(store),
			LowStock:     query.NewLowStockHandler(store),
			SalesSummary: query.NewSalesSummaryHandler(store),
			ExportBackup: query.NewExportBackupHandler(store, store, exp, notifier),
		},
		store: store,
	}
}

// Flush drains pending persistence writes; call it on shutdown.
func (a *App) Flush() {
	a.store.Flush()
}

// NewKeyedStore selects the persistence backend from configuration.
func NewKeyedStore(ctx context.Context, cfg *config.Config) (keyedstore.Store, error) {
	switch cfg.StorageBackend {
	case "memory":
		return keyedstore.NewMemory(), nil
	case "file", "":
		return keyedstore.NewFile(cfg.StoragePath)
	case "redis":
		return keyedstore.NewRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	case "gorm":
		db, err := database.NewGormConnection(database.Config{Driver: cfg.DBDriver, DSN: cfg.DBDSN})
		if err != nil {
			return nil, err
		}
		return keyedstore.NewGorm(db)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}

// NewDirectoryExporter builds the export target from configuration. An
// empty EXPORT_DIR leaves directory selection to the shell's own picker;
// DOWNLOAD_DIR is the degraded path when the chosen directory is unusable.
func NewDirectoryExporter(cfg *config.Config) *exporter.Directory {
	var pick exporter.Picker
	if cfg.ExportDir != "" {
		pick = exporter.FixedPicker(cfg.ExportDir)
	}
	return exporter.NewDirectory(pick, cfg.DownloadDir)
}

// LogNotifier routes user notifications into the structured log, for
// headless shells and tests.
type LogNotifier struct{}

// Notify implements domain.Notifier
func (LogNotifier) Notify(message string, severity domain.Severity) {
	ctx := context.Background()
	switch severity {
	case domain.SeverityError:
		logger.Error(ctx).Str("severity", string(severity)).Msg(message)
	case domain.SeverityWarning:
		logger.Warn(ctx).Str("severity", string(severity)).Msg(message)
	default:
		logger.Info(ctx).Str("severity", string(severity)).Msg(message)
	}
}
