package config

import (
	"fmt"
	"strings"

	"github.com/abgdnv/csvcatalog/pkg/config"
	"github.com/abgdnv/csvcatalog/pkg/config/configloader"
)

var _ configloader.Validator = (*Config)(nil)

// DefaultRoot is the store directory used when none is configured.
const DefaultRoot = "processamento_dados_CSV"

type Config struct {
	Store StoreConfig      `koanf:"store"`
	Log   config.LogConfig `koanf:"log"`
}

// StoreConfig locates the catalog file. The file name itself is fixed.
type StoreConfig struct {
	Root string `koanf:"root"`
}

// Defaults returns the lowest priority configuration values.
func Defaults() map[string]any {
	return map[string]any{
		"store.root": DefaultRoot,
		"log.level":  "info",
	}
}

func (c *Config) String() string {
	var b strings.Builder

	b.WriteString("\n--- Store Configuration ---\n")
	b.WriteString(fmt.Sprintf("  store.root: %s\n", c.Store.Root))

	b.WriteString("\n--- Logging ---\n")
	b.WriteString(fmt.Sprintf("  log.level: %s\n", c.Log.Level))

	return b.String()
}

// Validate checks if the configuration values are valid
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Store.Root) == "" {
		return fmt.Errorf("store root is not configured")
	}
	if err := c.Log.Validate(); err != nil {
		return err
	}
	return nil
}
