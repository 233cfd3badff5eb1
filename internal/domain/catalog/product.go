package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/localvendor/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Product represents a sellable item in the catalog.
// It is the aggregate root for catalog operations; stock never goes negative.
type Product struct {
	shared.BaseEntity
	Name  string          `gorm:"type:varchar(200);not null"`
	Price decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Stock int64           `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product after validating its invariants
func NewProduct(name string, price decimal.Decimal, stock int64) (*Product, error) {
	name = strings.TrimSpace(name)
	if err := validateProductName(name); err != nil {
		return nil, err
	}
	if price.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewValidationError("Product price must be greater than zero")
	}
	if stock < 0 {
		return nil, shared.NewValidationError("Product stock cannot be negative")
	}

	return &Product{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Price:      price,
		Stock:      stock,
	}, nil
}

// HasStock reports whether qty units are currently available
func (p *Product) HasStock(qty int64) bool {
	return qty <= p.Stock
}

// DecreaseStock reduces stock by qty.
// Fails if qty is not positive or exceeds the available stock, leaving the
// product unchanged in that case.
func (p *Product) DecreaseStock(qty int64) error {
	if qty <= 0 {
		return shared.NewValidationError("Quantity must be positive")
	}
	if qty > p.Stock {
		return shared.NewInsufficientStockError(
			fmt.Sprintf("Insufficient stock for product %q: requested %d, available %d", p.Name, qty, p.Stock))
	}

	p.Stock -= qty
	p.UpdatedAt = time.Now()
	return nil
}

// IncreaseStock adds qty units back to stock
func (p *Product) IncreaseStock(qty int64) error {
	if qty <= 0 {
		return shared.NewValidationError("Quantity must be positive")
	}
	p.Stock += qty
	p.UpdatedAt = time.Now()
	return nil
}

func validateProductName(name string) error {
	if name == "" {
		return shared.NewValidationError("Product name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewValidationError("Product name cannot exceed 200 characters")
	}
	return nil
}
