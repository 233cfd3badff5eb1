package report

import "github.com/shopspring/decimal"

// RevenueSummary is a read model for total revenue across all invoices.
// Total is zero when no invoice items exist.
type RevenueSummary struct {
	Total decimal.Decimal `json:"total"`
}

// ProductSales represents the aggregated sales of a single product
type ProductSales struct {
	ProductID    int64  `json:"product_id"`
	ProductName  string `json:"product_name"`
	TotalQtySold int64  `json:"total_qty_sold"`
}

// StockLevel represents the current stock of a single product
type StockLevel struct {
	ProductID    int64  `json:"product_id"`
	ProductName  string `json:"product_name"`
	CurrentStock int64  `json:"current_stock"`
}
