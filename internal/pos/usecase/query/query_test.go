package query

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swiftpos/swift-pos/internal/pos/backup"
	"github.com/swiftpos/swift-pos/internal/pos/domain"
	"github.com/swiftpos/swift-pos/internal/pos/repository"
	"github.com/swiftpos/swift-pos/pkg/exporter"
	"github.com/swiftpos/swift-pos/pkg/keyedstore"
)

func newTestStore(t *testing.T) *repository.Store {
	t.Helper()
	store, err := repository.NewStore(context.Background(), keyedstore.NewMemory())
	require.NoError(t, err)
	return store
}

func seed(t *testing.T, store *repository.Store, fn func(s *domain.State)) {
	t.Helper()
	require.NoError(t, store.Update(context.Background(), func(s *domain.State) error {
		fn(s)
		return nil
	}))
}

func TestListProductsCategoryFilter(t *testing.T) {
	store := newTestStore(t)
	seed(t, store, func(s *domain.State) {
		s.Products = []domain.Product{
			{ID: "p1", Name: "Boots", Category: "Shoes"},
			{ID: "p2", Name: "Shirt", Category: "Clothing"},
			{ID: "p3", Name: "Sandals", Category: "shoes"},
		}
	})
	h := NewListHandler(store)

	all := h.Products(context.Background(), ListProductsQuery{})
	assert.Len(t, all, 3)

	shoes := h.Products(context.Background(), ListProductsQuery{Category: "SHOES"})
	require.Len(t, shoes, 2)
	assert.Equal(t, "Boots", shoes[0].Name)
	assert.Equal(t, "Sandals", shoes[1].Name)
}

func TestLowStockUsesSettingsThreshold(t *testing.T) {
	store := newTestStore(t)
	seed(t, store, func(s *domain.State) {
		s.Settings.LowStockThreshold = 5
		s.Products = []domain.Product{
			{ID: "p1", Name: "Low", Stock: 5},
			{ID: "p2", Name: "Fine", Stock: 6},
			{ID: "p3", Name: "Negative", Stock: -2},
		}
	})
	h := NewLowStockHandler(store)

	low := h.Handle(context.Background())
	require.Len(t, low, 2)
	assert.Equal(t, "Low", low[0].Name)
	assert.Equal(t, "Negative", low[1].Name)
}

func TestSalesSummaryAggregatesPerDay(t *testing.T) {
	store := newTestStore(t)
	day1 := time.Date(2026, 8, 23, 10, 0, 0, 0, time.Local)
	day2 := time.Date(2026, 8, 24, 9, 0, 0, 0, time.Local)
	seed(t, store, func(s *domain.State) {
		s.Sales = []domain.Sale{
			{ID: "s1", Date: day1, Total: 10, Items: []domain.SaleItem{{Quantity: 2}}},
			{ID: "s2", Date: day1.Add(2 * time.Hour), Total: 5, Items: []domain.SaleItem{{Quantity: 1}}},
			{ID: "s3", Date: day2, Total: 7, Items: []domain.SaleItem{{Quantity: 3}}},
		}
	})
	h := NewSalesSummaryHandler(store)

	out := h.Handle(context.Background(), SalesSummaryQuery{})
	require.Len(t, out, 2)
	assert.Equal(t, "2026-08-23", out[0].Date)
	assert.Equal(t, 2, out[0].SaleCount)
	assert.Equal(t, 3, out[0].ItemCount)
	assert.Equal(t, 15.0, out[0].Total)
	assert.Equal(t, "2026-08-24", out[1].Date)

	// Bounded query
	out = h.Handle(context.Background(), SalesSummaryQuery{From: "2026-08-24"})
	require.Len(t, out, 1)
	assert.Equal(t, "2026-08-24", out[0].Date)
}

func TestExportBackupWritesDatedFile(t *testing.T) {
	store := newTestStore(t)
	seed(t, store, func(s *domain.State) {
		s.Products = []domain.Product{{ID: "p1", Name: "Shirt", Category: "Clothing"}}
	})
	dir := t.TempDir()
	h := NewExportBackupHandler(store, store, exporter.NewDirectory(exporter.FixedPicker(dir), ""), domain.NopNotifier{})

	path, err := h.Handle(context.Background())
	require.NoError(t, err)
	assert.Contains(t, path, backup.Filename(time.Now()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	snap, err := backup.Decode(data)
	require.NoError(t, err)
	require.NotNil(t, snap.Products)
	assert.Equal(t, "Shirt", (*snap.Products)[0].Name)

	// The chosen directory is remembered for the next export.
	remembered, ok, err := store.ExportDir(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, dir, remembered)
}

func TestExportBackupCancelledPickerIsNoOp(t *testing.T) {
	store := newTestStore(t)
	h := NewExportBackupHandler(store, store, exporter.NewDirectory(exporter.FixedPicker(""), ""), domain.NopNotifier{})

	path, err := h.Handle(context.Background())
	require.NoError(t, err)
	assert.Empty(t, path)
}

func TestExportBackupFallsBackToDownloads(t *testing.T) {
	store := newTestStore(t)
	download := t.TempDir()
	// The picked directory does not exist, so the write degrades to the
	// download directory instead of failing.
	h := NewExportBackupHandler(store, store, exporter.NewDirectory(exporter.FixedPicker("/no/such/dir"), download), domain.NopNotifier{})

	path, err := h.Handle(context.Background())
	require.NoError(t, err)
	assert.Contains(t, path, download)
}

func TestExportBackupFallsBackOnNonPermissionWriteFailure(t *testing.T) {
	store := newTestStore(t)
	picked := t.TempDir()
	download := t.TempDir()
	// A directory squats on the target filename, so the write fails even
	// though the writability probe passes.
	require.NoError(t, os.Mkdir(filepath.Join(picked, backup.Filename(time.Now())), 0o755))
	h := NewExportBackupHandler(store, store, exporter.NewDirectory(exporter.FixedPicker(picked), download), domain.NopNotifier{})

	path, err := h.Handle(context.Background())
	require.NoError(t, err)
	assert.Contains(t, path, download)
}

func TestExportBackupNoTargetAtAll(t *testing.T) {
	store := newTestStore(t)
	h := NewExportBackupHandler(store, store, exporter.NewDirectory(nil, ""), domain.NopNotifier{})

	_, err := h.Handle(context.Background())
	assert.ErrorIs(t, err, domain.ErrUnsupportedEnvironment)
}
