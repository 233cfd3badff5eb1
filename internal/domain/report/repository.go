package report

import "context"

// Repository defines read-only aggregate queries over the billing data.
// Queries run without write coordination; callers may observe a slightly
// stale snapshot.
type Repository interface {
	// TotalRevenue returns the sum of qty * price over all invoice items
	TotalRevenue(ctx context.Context) (*RevenueSummary, error)

	// SalesByProduct returns the grouped sum of qty per product across all
	// invoices. Products with zero sales are omitted.
	SalesByProduct(ctx context.Context) ([]ProductSales, error)

	// StockSnapshot returns the current stock level of every product
	StockSnapshot(ctx context.Context) ([]StockLevel, error)
}
