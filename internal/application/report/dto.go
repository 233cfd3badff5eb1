package report

import (
	"github.com/localvendor/backend/internal/domain/report"
)

// RevenueResponse is the external view of total revenue
type RevenueResponse struct {
	TotalRevenue string `json:"total_revenue"`
}

// ProductSalesResponse is one row of the sales-by-product report
type ProductSalesResponse struct {
	ProductID    int64  `json:"product_id"`
	ProductName  string `json:"product_name"`
	TotalQtySold int64  `json:"total_qty_sold"`
}

// StockLevelResponse is one row of the stock snapshot report
type StockLevelResponse struct {
	ProductID    int64  `json:"product_id"`
	ProductName  string `json:"product_name"`
	CurrentStock int64  `json:"current_stock"`
}

// ToRevenueResponse converts a domain revenue summary
func ToRevenueResponse(summary *report.RevenueSummary) *RevenueResponse {
	return &RevenueResponse{TotalRevenue: summary.Total.StringFixed(2)}
}

// ToProductSalesResponses converts domain sales rows
func ToProductSalesResponses(rows []report.ProductSales) []ProductSalesResponse {
	responses := make([]ProductSalesResponse, 0, len(rows))
	for _, row := range rows {
		responses = append(responses, ProductSalesResponse{
			ProductID:    row.ProductID,
			ProductName:  row.ProductName,
			TotalQtySold: row.TotalQtySold,
		})
	}
	return responses
}

// ToStockLevelResponses converts domain stock rows
func ToStockLevelResponses(rows []report.StockLevel) []StockLevelResponse {
	responses := make([]StockLevelResponse, 0, len(rows))
	for _, row := range rows {
		responses = append(responses, StockLevelResponse{
			ProductID:    row.ProductID,
			ProductName:  row.ProductName,
			CurrentStock: row.CurrentStock,
		})
	}
	return responses
}
