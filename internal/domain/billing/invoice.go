package billing

import (
	"time"

	"github.com/localvendor/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// InvoiceItem represents a line item in an invoice: a product, a quantity and
// the unit price snapshotted at invoice time. Items are owned exclusively by
// their invoice and never modified after the invoice is persisted.
type InvoiceItem struct {
	ID        int64           `gorm:"primaryKey;autoIncrement"`
	InvoiceID int64           `gorm:"not null;index"`
	ProductID int64           `gorm:"not null;index"`
	Qty       int64           `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"column:price;type:decimal(18,4);not null"`
	CreatedAt time.Time
}

// TableName returns the table name for GORM
func (InvoiceItem) TableName() string {
	return "invoice_items"
}

// Amount returns Qty * UnitPrice for this line
func (i *InvoiceItem) Amount() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(i.Qty))
}

// Invoice represents a billing transaction: one customer, a fixed set of line
// items, created exactly once and never mutated afterwards.
// An invoice with zero items is invalid and must never be persisted.
type Invoice struct {
	shared.BaseEntity
	CustomerID int64         `gorm:"not null;index"`
	Items      []InvoiceItem `gorm:"foreignKey:InvoiceID"`
}

// TableName returns the table name for GORM
func (Invoice) TableName() string {
	return "invoices"
}

// NewInvoice creates an empty invoice for the given customer.
// Items must be added before the invoice is persisted.
func NewInvoice(customerID int64) (*Invoice, error) {
	if customerID <= 0 {
		return nil, shared.NewValidationError("Customer ID must be a positive integer")
	}
	return &Invoice{
		BaseEntity: shared.NewBaseEntity(),
		CustomerID: customerID,
		Items:      make([]InvoiceItem, 0),
	}, nil
}

// AddItem appends a line item with the given price snapshot.
// Duplicate product entries are kept as separate lines.
func (inv *Invoice) AddItem(productID, qty int64, unitPrice decimal.Decimal) error {
	if productID <= 0 {
		return shared.NewValidationError("Product ID must be a positive integer")
	}
	if qty <= 0 {
		return shared.NewValidationError("Quantity must be a positive integer")
	}
	if unitPrice.LessThanOrEqual(decimal.Zero) {
		return shared.NewValidationError("Unit price must be greater than zero")
	}

	inv.Items = append(inv.Items, InvoiceItem{
		ProductID: productID,
		Qty:       qty,
		UnitPrice: unitPrice,
		CreatedAt: time.Now(),
	})
	return nil
}

// GrandTotal returns the sum of qty * unit price over all items
func (inv *Invoice) GrandTotal() decimal.Decimal {
	total := decimal.Zero
	for i := range inv.Items {
		total = total.Add(inv.Items[i].Amount())
	}
	return total
}

// Validate checks the invariants that must hold before the invoice is persisted
func (inv *Invoice) Validate() error {
	if len(inv.Items) == 0 {
		return shared.NewValidationError("Invoice must contain at least one item")
	}
	return nil
}

// QtyByProduct returns the aggregate requested quantity per product across all
// items. Duplicate entries for the same product are summed so the stock check
// respects the combined demand.
func (inv *Invoice) QtyByProduct() map[int64]int64 {
	totals := make(map[int64]int64, len(inv.Items))
	for i := range inv.Items {
		totals[inv.Items[i].ProductID] += inv.Items[i].Qty
	}
	return totals
}
