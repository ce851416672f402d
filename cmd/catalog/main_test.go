package main

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/abgdnv/csvcatalog/internal/app"
	"github.com/abgdnv/csvcatalog/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_demo(t *testing.T) {
	// given
	cfg := &config.Config{Store: config.StoreConfig{Root: filepath.Join(t.TempDir(), "demo")}}
	deps, err := app.SetupDependencies(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	var out bytes.Buffer
	// when
	demo(&out, deps.CatalogService)
	// then
	text := out.String()
	assert.Contains(t, text, "ID: 031 | Name: Watermelon | Price: 10.00 | Quantity: unit\n")
	assert.Contains(t, text, "ID: 001 | Name: Apple | Price: 0.80 | Quantity: unit\n")
	assert.Contains(t, text, "Product not found\n")
	assert.Contains(t, text, "Error: Product with ID '030' already exists!\n")
	// Apple sits on the first row, so its name collides before Watermelon's id is reached
	assert.Contains(t, text, "Error: Product with name 'Apple' already exists!\n")
	assert.Contains(t, text, "ID: 030 | Name: Banana | Price: 1.20 | Quantity: 15\n")
}

func Test_run(t *testing.T) {
	// given
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("CATALOG_STORE_ROOT", "data")
	var out bytes.Buffer
	// when
	err = run(&out)
	// then
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join("data", "DataBaseARQ.csv"))
	assert.Contains(t, out.String(), "Product added successfully!")
}
