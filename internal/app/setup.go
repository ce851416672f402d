// Package app contains the application setup for the catalog.
package app

import (
	"fmt"
	"log/slog"

	"github.com/abgdnv/csvcatalog/internal/config"
	"github.com/abgdnv/csvcatalog/internal/fs"
	"github.com/abgdnv/csvcatalog/internal/service"
	"github.com/abgdnv/csvcatalog/internal/store"
)

type Dependencies struct {
	Store          store.ProductStore
	CatalogService service.CatalogService
	Logger         *slog.Logger
}

// SetupDependencies wires the CSV store and catalog service and makes sure the store exists.
func SetupDependencies(cfg *config.Config, logger *slog.Logger) (*Dependencies, error) {
	repo := store.NewCSVStore(cfg.Store.Root, fs.NewReal())
	if err := repo.EnsureExists(); err != nil {
		return nil, fmt.Errorf("failed to prepare store: %w", err)
	}
	logger.Info("Store ready", "path", repo.Path())

	return &Dependencies{
		Store:          repo,
		CatalogService: service.NewService(repo, logger),
		Logger:         logger,
	}, nil
}
