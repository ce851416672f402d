package message

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	catalogerrors "github.com/abgdnv/csvcatalog/internal/errors"
	"github.com/abgdnv/csvcatalog/internal/service"
	"github.com/stretchr/testify/assert"
)

func Test_Find(t *testing.T) {
	testCases := []struct {
		name     string
		products []service.ProductDto
		err      error
		expected string
	}{
		{
			name:     "single match",
			products: []service.ProductDto{{ID: "001", Name: "Apple", Price: 0.8, Quantity: "unit"}},
			expected: "ID: 001 | Name: Apple | Price: 0.80 | Quantity: unit\n",
		},
		{
			name: "matches concatenated in order",
			products: []service.ProductDto{
				{ID: "001", Name: "Apple", Price: 0.8, Quantity: "unit"},
				{ID: "031", Name: "Watermelon", Price: 10, Quantity: "unit"},
			},
			expected: "ID: 001 | Name: Apple | Price: 0.80 | Quantity: unit\n" +
				"ID: 031 | Name: Watermelon | Price: 10.00 | Quantity: unit\n",
		},
		{
			name:     "price rendered with two decimals",
			products: []service.ProductDto{{ID: "900", Name: "Laptop", Price: 1999.99, Quantity: "unit"}},
			expected: "ID: 900 | Name: Laptop | Price: 1999.99 | Quantity: unit\n",
		},
		{
			name:     "not found",
			err:      fmt.Errorf("wrapped: %w", catalogerrors.ErrProductNotFound),
			expected: NotFound,
		},
		{
			name:     "no products without error",
			expected: NotFound,
		},
		{
			name:     "store missing",
			err:      fmt.Errorf("failed to fetch products: %w", &catalogerrors.StoreNotFoundError{Path: "data/DataBaseARQ.csv"}),
			expected: "Error: File 'data/DataBaseARQ.csv' not found.\n",
		},
		{
			name:     "other error",
			err:      errors.New("boom"),
			expected: "Error searching products: boom\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Find(tc.products, tc.err))
		})
	}
}

func Test_Find_NotFoundIsNeverEmpty(t *testing.T) {
	out := Find(nil, catalogerrors.ErrProductNotFound)
	assert.NotEmpty(t, out)
	assert.Equal(t, "Product not found", strings.TrimSpace(out))
}

func Test_Insert(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected string
	}{
		{name: "success", expected: Added},
		{
			name:     "duplicate id",
			err:      &catalogerrors.DuplicateError{Field: catalogerrors.FieldID, Value: "031"},
			expected: "Error: Product with ID '031' already exists!\n",
		},
		{
			name:     "duplicate name",
			err:      &catalogerrors.DuplicateError{Field: catalogerrors.FieldName, Value: "Apple"},
			expected: "Error: Product with name 'Apple' already exists!\n",
		},
		{
			name:     "write error carries cause",
			err:      &catalogerrors.WriteError{Cause: errors.New("disk full")},
			expected: "Error adding product: disk full\n",
		},
		{
			name:     "invalid product",
			err:      fmt.Errorf("%w: id failed on rule: required", catalogerrors.ErrInvalidProduct),
			expected: "Error: invalid product: id failed on rule: required\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Insert(tc.err))
		})
	}
}
