package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/localvendor/backend/internal/domain/catalog"
	"github.com/localvendor/backend/internal/domain/shared"
)

// ProductService handles product registration and listing
type ProductService struct {
	products catalog.ProductRepository
}

// NewProductService creates a new product service
func NewProductService(products catalog.ProductRepository) *ProductService {
	return &ProductService{products: products}
}

// Create registers a new product in the catalog
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	product, err := catalog.NewProduct(req.Name, req.Price, req.Stock)
	if err != nil {
		return nil, err
	}

	if err := s.products.Save(ctx, product); err != nil {
		return nil, storageError("save product", err)
	}

	return ToProductResponse(product), nil
}

// List returns all products in insertion order
func (s *ProductService) List(ctx context.Context) ([]ProductResponse, error) {
	products, err := s.products.FindAll(ctx)
	if err != nil {
		return nil, storageError("list products", err)
	}
	return ToProductResponses(products), nil
}

// GetByID returns a single product
func (s *ProductService) GetByID(ctx context.Context, id int64) (*ProductResponse, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		domainErr := &shared.DomainError{}
		if errors.As(err, &domainErr) && domainErr.Code == shared.CodeNotFound {
			return nil, shared.NewNotFoundError(fmt.Sprintf("Product %d not found", id))
		}
		return nil, storageError("load product", err)
	}
	return ToProductResponse(product), nil
}

func storageError(op string, err error) error {
	domainErr := &shared.DomainError{}
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return shared.NewStorageError(fmt.Sprintf("Failed to %s: %v", op, err))
}
