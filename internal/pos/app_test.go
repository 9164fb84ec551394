package pos

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swiftpos/swift-pos/pkg/config"
	"github.com/swiftpos/swift-pos/pkg/exporter"
	"github.com/swiftpos/swift-pos/pkg/keyedstore"
)

func TestNewDirectoryExporterFromConfig(t *testing.T) {
	dir := t.TempDir()
	d := NewDirectoryExporter(&config.Config{ExportDir: dir, DownloadDir: "./downloads"})

	got, err := d.RequestAccess(context.Background())
	require.NoError(t, err)
	assert.Equal(t, dir, got)
}

func TestNewDirectoryExporterWithoutExportDir(t *testing.T) {
	d := NewDirectoryExporter(&config.Config{})
	_, err := d.RequestAccess(context.Background())
	assert.ErrorIs(t, err, exporter.ErrUnsupported)
}

func TestNewKeyedStoreSelectsBackend(t *testing.T) {
	kv, err := NewKeyedStore(context.Background(), &config.Config{StorageBackend: "memory"})
	require.NoError(t, err)
	assert.IsType(t, &keyedstore.Memory{}, kv)

	kv, err = NewKeyedStore(context.Background(), &config.Config{StorageBackend: "file", StoragePath: t.TempDir()})
	require.NoError(t, err)
	assert.IsType(t, &keyedstore.File{}, kv)

	_, err = NewKeyedStore(context.Background(), &config.Config{StorageBackend: "carrier-pigeon"})
	assert.Error(t, err)
}
