// Package main runs a scripted demonstration of the flat-file catalog.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/abgdnv/csvcatalog/internal/app"
	"github.com/abgdnv/csvcatalog/internal/config"
	"github.com/abgdnv/csvcatalog/internal/service"
	"github.com/abgdnv/csvcatalog/internal/transport/message"
	"github.com/abgdnv/csvcatalog/pkg/bootstrap"
	"github.com/abgdnv/csvcatalog/pkg/config/configloader"
)

const serviceName = "catalog"

func main() {
	if err := run(os.Stdout); err != nil {
		log.Printf("application run failed: %v", err)
		os.Exit(1)
	}
}

// run loads the configuration, prepares the store and plays the demonstration against it.
func run(out io.Writer) error {
	cfg, cfgErr := configloader.Load[*config.Config](serviceName, configloader.WithDefaults(config.Defaults()))
	if cfgErr != nil {
		return fmt.Errorf("failed to load configuration: %w", cfgErr)
	}
	log.Printf("Configuration loaded: %v", cfg)

	logger := bootstrap.NewLogger(os.Stderr, cfg.Log.Level)

	deps, err := app.SetupDependencies(cfg, logger)
	if err != nil {
		return err
	}
	demo(out, deps.CatalogService)
	return nil
}

// demo inserts a few fruits and exercises every lookup and rejection path.
func demo(out io.Writer, catalog service.CatalogService) {
	separator := strings.Repeat("=", 30)
	insert := func(id, name string, price float64, quantity string) {
		_, err := catalog.Insert(service.ProductCreateDto{ID: id, Name: name, Price: price, Quantity: quantity})
		fmt.Fprintln(out, message.Insert(err))
	}
	find := func(title string, criteria service.Criteria) {
		fmt.Fprintf(out, "\n--- %s ---\n", title)
		fmt.Fprintln(out, message.Find(catalog.Find(criteria)))
	}

	fmt.Fprintf(out, "Insert tests\n%s\n", separator)
	insert("001", "Apple", 0.80, "unit")
	insert("025", "Orange", 1.50, "bag")
	insert("026", "Grape", 5.00, "kilo")
	insert("031", "Watermelon", 10.00, "unit")

	fmt.Fprintf(out, "Find tests\n%s\n", separator)
	find("Find by ID='031'", service.Criteria{}.WithID("031"))
	find("Find by Name='Apple'", service.Criteria{}.WithName("Apple"))
	find("Find by Price=0.80", service.Criteria{}.WithPrice(0.80))
	find("Find by Quantity='unit'", service.Criteria{}.WithQuantity("unit"))
	find("Find without match", service.Criteria{}.WithID("999"))

	fmt.Fprintf(out, "%s\n\nInsert tests\n%s\n", separator, separator)
	fmt.Fprintln(out, "\n--- Adding new product (Banana) ---")
	insert("030", "Banana", 1.20, "15")
	fmt.Fprintln(out, "\n--- Adding product with duplicate ID (030) ---")
	insert("030", "Strawberry", 2.50, "box")
	fmt.Fprintln(out, "\n--- Adding product with duplicate name (Apple) ---")
	insert("031", "Apple", 0.50, "unit")
	find("Finding the new product (Banana)", service.Criteria{}.WithID("030"))
}
