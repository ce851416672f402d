// Package store provides an interface for product storage operations.
package store

// ProductStore is an interface for product storage operations.
// It abstracts the underlying data store so the service can be tested against a mock.
type ProductStore interface {
	// EnsureExists creates the store with only its header if it is absent.
	// Safe to call before every operation.
	EnsureExists() error

	// FindAll returns every stored row in insertion order.
	// Returns a StoreNotFoundError if the store does not exist.
	FindAll() ([]Product, error)

	// Create appends a single row to the end of the store.
	Create(product Product) error

	// Path returns the location of the backing file.
	Path() string
}

// Product represents a single row of the store.
// Price is kept as the raw stored text; callers decide how to parse it.
type Product struct {
	ID       string
	Name     string
	Price    string
	Quantity string
}
