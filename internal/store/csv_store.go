package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	catalogerrors "github.com/abgdnv/csvcatalog/internal/errors"
	"github.com/abgdnv/csvcatalog/internal/fs"
)

// FileName is the fixed name of the store file inside the configured root.
const FileName = "DataBaseARQ.csv"

const (
	dirPerms  = 0o755
	filePerms = 0o644
)

// Header is the column row every store file starts with.
var Header = []string{"id", "name", "price", "quantity"}

// csvStore implements ProductStore on top of a comma-separated file.
type csvStore struct {
	fs   fs.FS
	root string
	path string
}

// NewCSVStore creates a ProductStore backed by <root>/DataBaseARQ.csv.
// Nothing is touched on disk until an operation runs.
func NewCSVStore(root string, fsys fs.FS) ProductStore {
	return &csvStore{
		fs:   fsys,
		root: root,
		path: filepath.Join(root, FileName),
	}
}

func (s *csvStore) Path() string {
	return s.path
}

// EnsureExists creates the root directory and a header-only file if the file is absent.
func (s *csvStore) EnsureExists() error {
	exists, err := s.fs.Exists(s.path)
	if err != nil {
		return fmt.Errorf("failed to stat store %s: %w", s.path, err)
	}
	if exists {
		return nil
	}
	if err := s.fs.MkdirAll(s.root, dirPerms); err != nil {
		return fmt.Errorf("failed to create store directory %s: %w", s.root, err)
	}
	if err := s.fs.WriteFileAtomic(s.path, []byte(headerLine()), filePerms); err != nil {
		return fmt.Errorf("failed to create store %s: %w", s.path, err)
	}
	return nil
}

// FindAll reads every data row, skipping the header.
func (s *csvStore) FindAll() (products []Product, err error) {
	f, err := s.fs.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &catalogerrors.StoreNotFoundError{Path: s.path}
		}
		return nil, fmt.Errorf("failed to open store %s: %w", s.path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close store %s: %w", s.path, cerr)
		}
	}()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header := true
	for {
		record, readErr := reader.Read()
		if errors.Is(readErr, io.EOF) {
			break
		}
		if readErr != nil {
			return nil, fmt.Errorf("failed to read store %s: %w", s.path, readErr)
		}
		if header {
			header = false
			continue
		}
		products = append(products, toProduct(record))
	}
	return products, nil
}

// Create appends one row. A zero-length file gets its header written first.
func (s *csvStore) Create(product Product) (err error) {
	f, err := s.fs.OpenFile(s.path, os.O_WRONLY|os.O_APPEND, filePerms)
	if err != nil {
		return fmt.Errorf("failed to open store %s for append: %w", s.path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close store %s: %w", s.path, cerr)
		}
	}()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat store %s: %w", s.path, err)
	}

	writer := csv.NewWriter(f)
	if info.Size() == 0 {
		if err := writer.Write(Header); err != nil {
			return fmt.Errorf("failed to write header to %s: %w", s.path, err)
		}
	}
	if err := writer.Write([]string{product.ID, product.Name, product.Price, product.Quantity}); err != nil {
		return fmt.Errorf("failed to write product %s: %w", product.ID, err)
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush store %s: %w", s.path, err)
	}
	return nil
}

// toProduct maps a record onto a Product. Missing trailing fields stay empty.
func toProduct(record []string) Product {
	field := func(i int) string {
		if i < len(record) {
			return record[i]
		}
		return ""
	}
	return Product{
		ID:       field(0),
		Name:     field(1),
		Price:    field(2),
		Quantity: field(3),
	}
}

func headerLine() string {
	return strings.Join(Header, ",") + "\n"
}
