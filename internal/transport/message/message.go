// Package message renders catalog outcomes as the human readable text shown to users.
package message

import (
	"errors"
	"fmt"
	"strings"

	catalogerrors "github.com/abgdnv/csvcatalog/internal/errors"
	"github.com/abgdnv/csvcatalog/internal/service"
)

const (
	// NotFound is returned by Find when no row matched.
	NotFound = "Product not found\n"
	// Added is returned by Insert on success.
	Added = "Product added successfully!\n"
)

// Line renders a single product.
func Line(p service.ProductDto) string {
	return fmt.Sprintf("ID: %s | Name: %s | Price: %.2f | Quantity: %s\n", p.ID, p.Name, p.Price, p.Quantity)
}

// Find renders the result of CatalogService.Find.
func Find(products []service.ProductDto, err error) string {
	if err != nil {
		var notFound *catalogerrors.StoreNotFoundError
		switch {
		case errors.As(err, &notFound):
			return fmt.Sprintf("Error: File '%s' not found.\n", notFound.Path)
		case errors.Is(err, catalogerrors.ErrProductNotFound):
			return NotFound
		default:
			return fmt.Sprintf("Error searching products: %v\n", err)
		}
	}
	if len(products) == 0 {
		return NotFound
	}
	var b strings.Builder
	for _, p := range products {
		b.WriteString(Line(p))
	}
	return b.String()
}

// Insert renders the result of CatalogService.Insert.
func Insert(err error) string {
	if err == nil {
		return Added
	}
	var dupErr *catalogerrors.DuplicateError
	var writeErr *catalogerrors.WriteError
	switch {
	case errors.As(err, &dupErr) && dupErr.Field == catalogerrors.FieldID:
		return fmt.Sprintf("Error: Product with ID '%s' already exists!\n", dupErr.Value)
	case errors.As(err, &dupErr):
		return fmt.Sprintf("Error: Product with name '%s' already exists!\n", dupErr.Value)
	case errors.As(err, &writeErr):
		return fmt.Sprintf("Error adding product: %v\n", writeErr.Cause)
	case errors.Is(err, catalogerrors.ErrInvalidProduct):
		return fmt.Sprintf("Error: %v\n", err)
	default:
		return fmt.Sprintf("Error adding product: %v\n", err)
	}
}
