package billing

import "context"

// InvoiceRepository defines the interface for invoice persistence
type InvoiceRepository interface {
	// FindByID finds an invoice with its items by ID
	FindByID(ctx context.Context, id int64) (*Invoice, error)

	// Save persists an invoice header together with all of its items.
	// Implementations must write header and items as one unit.
	Save(ctx context.Context, invoice *Invoice) error
}
