// Package service provides the implementation of catalog business logic.
package service

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"

	catalogerrors "github.com/abgdnv/csvcatalog/internal/errors"
	"github.com/abgdnv/csvcatalog/internal/store"
	"github.com/go-playground/validator/v10"
)

// CatalogService defines the catalog operations.
// Every call performs a full scan of the store.
type CatalogService interface {
	// Find returns the products matching any supplied criterion, in insertion order.
	// Returns ErrProductNotFound if nothing matches and ErrStoreNotFound if the store is absent.
	Find(criteria Criteria) ([]ProductDto, error)

	// Insert appends a new product after checking that its id and name are unused.
	// Returns a DuplicateError, a WriteError or ErrInvalidProduct on failure.
	Insert(product ProductCreateDto) (*ProductDto, error)
}

// Service implements CatalogService.
type Service struct {
	repository store.ProductStore
	validate   *validator.Validate
	logger     *slog.Logger
}

// NewService creates a new instance of CatalogService with the provided repository.
func NewService(repo store.ProductStore, logger *slog.Logger) *Service {
	return &Service{
		repository: repo,
		validate:   validator.New(),
		logger:     logger.With("component", "service"),
	}
}

// Criteria holds the optional lookup parameters. A nil field is not supplied.
type Criteria struct {
	ID       *string
	Name     *string
	Price    *float64
	Quantity *string
}

// WithID returns a copy of c that also matches on id.
func (c Criteria) WithID(id string) Criteria {
	c.ID = &id
	return c
}

// WithName returns a copy of c that also matches on name.
func (c Criteria) WithName(name string) Criteria {
	c.Name = &name
	return c
}

// WithPrice returns a copy of c that also matches on numeric price.
func (c Criteria) WithPrice(price float64) Criteria {
	c.Price = &price
	return c
}

// WithQuantity returns a copy of c that also matches on quantity.
func (c Criteria) WithQuantity(quantity string) Criteria {
	c.Quantity = &quantity
	return c
}

// IsEmpty reports whether no criterion was supplied.
func (c Criteria) IsEmpty() bool {
	return c.ID == nil && c.Name == nil && c.Price == nil && c.Quantity == nil
}

// LogValue renders only the supplied criteria.
func (c Criteria) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, 4)
	if c.ID != nil {
		attrs = append(attrs, slog.String("id", *c.ID))
	}
	if c.Name != nil {
		attrs = append(attrs, slog.String("name", *c.Name))
	}
	if c.Price != nil {
		attrs = append(attrs, slog.Float64("price", *c.Price))
	}
	if c.Quantity != nil {
		attrs = append(attrs, slog.String("quantity", *c.Quantity))
	}
	return slog.GroupValue(attrs...)
}

// matches reports whether any supplied criterion equals the corresponding field.
func (c Criteria) matches(p ProductDto) bool {
	switch {
	case c.ID != nil && *c.ID == p.ID:
		return true
	case c.Name != nil && *c.Name == p.Name:
		return true
	case c.Price != nil && *c.Price == p.Price:
		return true
	case c.Quantity != nil && *c.Quantity == p.Quantity:
		return true
	}
	return false
}

// ProductCreateDto represents the data transfer object for inserting a product.
// ID, Name and Quantity are stored as given, empty values included.
type ProductCreateDto struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"    validate:"min=0"`
	Quantity string  `json:"quantity"`
}

// ProductDto represents the data transfer object for a stored product.
type ProductDto struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity string  `json:"quantity"`
}

// Find scans the whole store and collects matching rows.
// Rows whose price is not numeric are skipped.
func (s *Service) Find(criteria Criteria) ([]ProductDto, error) {
	s.logger.Debug("Received request to find products", "criteria", criteria)
	products, err := s.repository.FindAll()
	if err != nil {
		if errors.Is(err, catalogerrors.ErrStoreNotFound) {
			s.logger.Warn("Store not found", "path", s.repository.Path())
		}
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}

	var found []ProductDto
	for _, item := range products {
		dto, ok := toDto(item)
		if !ok {
			s.logger.Debug("Skipping row with non-numeric price", "ID", item.ID, "price", item.Price)
			continue
		}
		if criteria.matches(dto) {
			found = append(found, dto)
		}
	}
	if len(found) == 0 {
		s.logger.Debug("No product matched", "criteria", criteria)
		return nil, catalogerrors.ErrProductNotFound
	}
	s.logger.Debug("Successfully found products", "count", len(found))
	return found, nil
}

// Insert validates the product, checks id and name uniqueness row by row and appends it.
func (s *Service) Insert(product ProductCreateDto) (*ProductDto, error) {
	s.logger.Debug("Received request to insert product", "product", product)
	if err := s.validateProduct(product); err != nil {
		s.logger.Warn("Invalid product", "error", err)
		return nil, err
	}

	if err := s.repository.EnsureExists(); err != nil {
		s.logger.Error("Error preparing store", "path", s.repository.Path(), "error", err)
		return nil, &catalogerrors.WriteError{Cause: err}
	}

	existing, err := s.repository.FindAll()
	if err != nil {
		s.logger.Error("Error reading store", "path", s.repository.Path(), "error", err)
		return nil, &catalogerrors.WriteError{Cause: err}
	}
	for _, item := range existing {
		if item.ID == product.ID {
			s.logger.Warn("Duplicate product ID", "ID", product.ID)
			return nil, &catalogerrors.DuplicateError{Field: catalogerrors.FieldID, Value: product.ID}
		}
		if item.Name == product.Name {
			s.logger.Warn("Duplicate product name", "Name", product.Name)
			return nil, &catalogerrors.DuplicateError{Field: catalogerrors.FieldName, Value: product.Name}
		}
	}

	row := store.Product{
		ID:       product.ID,
		Name:     product.Name,
		Price:    FormatPrice(product.Price),
		Quantity: product.Quantity,
	}
	if err := s.repository.Create(row); err != nil {
		s.logger.Error("Error creating product", "ID", product.ID, "error", err)
		return nil, &catalogerrors.WriteError{Cause: err}
	}
	s.logger.Info("Product created successfully", "ID", product.ID, "Name", product.Name)
	return &ProductDto{
		ID:       product.ID,
		Name:     product.Name,
		Price:    product.Price,
		Quantity: product.Quantity,
	}, nil
}

func (s *Service) validateProduct(product ProductCreateDto) error {
	if math.IsNaN(product.Price) || math.IsInf(product.Price, 0) {
		return fmt.Errorf("%w: price must be a finite number", catalogerrors.ErrInvalidProduct)
	}
	if err := s.validate.Struct(product); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			rules := make([]string, 0, len(validationErrors))
			for _, fieldErr := range validationErrors {
				rules = append(rules, strings.ToLower(fieldErr.Field())+" failed on rule: "+fieldErr.Tag())
			}
			return fmt.Errorf("%w: %s", catalogerrors.ErrInvalidProduct, strings.Join(rules, ", "))
		}
		return fmt.Errorf("%w: %v", catalogerrors.ErrInvalidProduct, err)
	}
	return nil
}

// ParsePrice parses stored or user supplied price text.
// Surrounding whitespace is ignored.
func ParsePrice(text string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(text), 64)
}

// FormatPrice renders a price the way it is persisted: the shortest decimal that
// round-trips, always carrying a fractional part (10 -> "10.0", 0.80 -> "0.8").
func FormatPrice(price float64) string {
	text := strconv.FormatFloat(price, 'f', -1, 64)
	if !strings.Contains(text, ".") {
		text += ".0"
	}
	return text
}

// toDto converts a store.Product to a ProductDto. ok is false if the price is not numeric.
func toDto(product store.Product) (ProductDto, bool) {
	price, err := ParsePrice(product.Price)
	if err != nil {
		return ProductDto{}, false
	}
	return ProductDto{
		ID:       product.ID,
		Name:     product.Name,
		Price:    price,
		Quantity: product.Quantity,
	}, true
}
