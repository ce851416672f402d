package app

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/abgdnv/csvcatalog/internal/config"
	"github.com/abgdnv/csvcatalog/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_SetupDependencies(t *testing.T) {
	// given
	cfg := &config.Config{Store: config.StoreConfig{Root: filepath.Join(t.TempDir(), "catalog")}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	// when
	deps, err := SetupDependencies(cfg, logger)
	// then
	require.NoError(t, err)
	data, err := os.ReadFile(deps.Store.Path())
	require.NoError(t, err)
	assert.Equal(t, "id,name,price,quantity\n", string(data))

	_, err = deps.CatalogService.Insert(service.ProductCreateDto{ID: "001", Name: "Apple", Price: 0.80, Quantity: "unit"})
	require.NoError(t, err)
	found, err := deps.CatalogService.Find(service.Criteria{}.WithID("001"))
	require.NoError(t, err)
	assert.Len(t, found, 1)
}

func Test_SetupDependencies_RootIsAFile(t *testing.T) {
	// given
	root := filepath.Join(t.TempDir(), "occupied")
	require.NoError(t, os.WriteFile(root, []byte("x"), 0o644))
	cfg := &config.Config{Store: config.StoreConfig{Root: root}}
	// when
	deps, err := SetupDependencies(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	// then
	assert.Nil(t, deps)
	assert.Error(t, err)
}
