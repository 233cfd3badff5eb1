package catalog

import "context"

// ProductRepository defines the interface for product persistence
type ProductRepository interface {
	// FindByID finds a product by its ID
	FindByID(ctx context.Context, id int64) (*Product, error)

	// FindByIDForUpdate finds a product by ID, acquiring a row-level write
	// lock when the underlying storage supports it. Must be called inside a
	// transaction.
	FindByIDForUpdate(ctx context.Context, id int64) (*Product, error)

	// FindAll returns all products in insertion order
	FindAll(ctx context.Context) ([]Product, error)

	// Save creates or updates a product
	Save(ctx context.Context, product *Product) error
}
