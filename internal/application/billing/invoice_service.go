package billing

import (
	"context"
	"errors"
	"fmt"

	"github.com/localvendor/backend/internal/domain/billing"
	"github.com/localvendor/backend/internal/domain/catalog"
	"github.com/localvendor/backend/internal/domain/shared"
)

// InvoiceService turns a requested item batch plus a customer reference into
// a consistent invoice, or fails entirely with no partial effect.
type InvoiceService struct {
	scope TransactionScope
}

// NewInvoiceService creates a new InvoiceService
func NewInvoiceService(scope TransactionScope) *InvoiceService {
	return &InvoiceService{scope: scope}
}

// Create validates the requested batch against a single consistent read of
// each product's stock and, if the whole batch is valid, atomically persists
// the invoice header, one line per requested item (with the product's current
// price snapshotted) and the stock decrements.
//
// Validation runs to completion before any mutation, so a failing item never
// leaves earlier items half-applied; the surrounding transaction guarantees
// the same for storage-level failures.
func (s *InvoiceService) Create(ctx context.Context, req CreateInvoiceRequest) (*InvoiceResponse, error) {
	if len(req.Items) == 0 {
		return nil, shared.NewValidationError("Invoice must contain at least one item")
	}
	for _, item := range req.Items {
		if item.Qty <= 0 {
			return nil, shared.NewValidationError(
				fmt.Sprintf("Quantity for product %d must be a positive integer", item.ProductID))
		}
	}

	var response InvoiceResponse

	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		if _, err := repos.Customers().FindByID(ctx, req.CustomerID); err != nil {
			return customerLookupError(req.CustomerID, err)
		}

		invoice, err := billing.NewInvoice(req.CustomerID)
		if err != nil {
			return err
		}

		// One locked read per distinct product; duplicate request entries
		// share the same snapshot.
		products := make(map[int64]*catalog.Product, len(req.Items))
		names := make(map[int64]string, len(req.Items))
		for _, item := range req.Items {
			product, ok := products[item.ProductID]
			if !ok {
				product, err = repos.Products().FindByIDForUpdate(ctx, item.ProductID)
				if err != nil {
					return productLookupError(item.ProductID, err)
				}
				products[item.ProductID] = product
				names[item.ProductID] = product.Name
			}
			if err := invoice.AddItem(item.ProductID, item.Qty, product.Price); err != nil {
				return err
			}
		}

		// Whole-batch stock check before any mutation.
		for productID, qty := range invoice.QtyByProduct() {
			product := products[productID]
			if !product.HasStock(qty) {
				return shared.NewInsufficientStockError(fmt.Sprintf(
					"Insufficient stock for product %q: requested %d, available %d",
					product.Name, qty, product.Stock))
			}
		}

		if err := invoice.Validate(); err != nil {
			return err
		}
		if err := repos.Invoices().Save(ctx, invoice); err != nil {
			return wrapStorageError("save invoice", err)
		}

		for productID, qty := range invoice.QtyByProduct() {
			product := products[productID]
			if err := product.DecreaseStock(qty); err != nil {
				return err
			}
			if err := repos.Products().Save(ctx, product); err != nil {
				return wrapStorageError("update product stock", err)
			}
		}

		response = ToInvoiceResponse(invoice, names)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &response, nil
}

// GetByID retrieves a persisted invoice with its items and recomputed total
func (s *InvoiceService) GetByID(ctx context.Context, id int64) (*InvoiceResponse, error) {
	var response InvoiceResponse

	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		invoice, err := repos.Invoices().FindByID(ctx, id)
		if err != nil {
			var domainErr *shared.DomainError
			if errors.As(err, &domainErr) && domainErr.Code == shared.CodeNotFound {
				return shared.NewNotFoundError(fmt.Sprintf("Invoice %d not found", id))
			}
			return wrapStorageError("load invoice", err)
		}

		names := make(map[int64]string, len(invoice.Items))
		for productID := range invoice.QtyByProduct() {
			product, err := repos.Products().FindByID(ctx, productID)
			if err == nil {
				names[productID] = product.Name
			}
		}

		response = ToInvoiceResponse(invoice, names)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &response, nil
}

func customerLookupError(id int64, err error) error {
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) && domainErr.Code == shared.CodeNotFound {
		return shared.NewNotFoundError(fmt.Sprintf("Customer %d not found", id))
	}
	return wrapStorageError("load customer", err)
}

func productLookupError(id int64, err error) error {
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) && domainErr.Code == shared.CodeNotFound {
		return shared.NewNotFoundError(fmt.Sprintf("Product %d not found", id))
	}
	return wrapStorageError("load product", err)
}

func wrapStorageError(op string, err error) error {
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		return err
	}
	return shared.NewStorageError(fmt.Sprintf("Failed to %s: %v", op, err))
}
