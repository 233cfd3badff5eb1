package persistence

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/localvendor/backend/internal/domain/report"
)

// GormReportRepository implements the report repository with aggregate SQL
type GormReportRepository struct {
	db *gorm.DB
}

// NewGormReportRepository creates a new GormReportRepository
func NewGormReportRepository(db *gorm.DB) *GormReportRepository {
	return &GormReportRepository{db: db}
}

// TotalRevenue sums qty*price over all invoice items, zero when there are none
func (r *GormReportRepository) TotalRevenue(ctx context.Context) (*report.RevenueSummary, error) {
	var row struct {
		Total decimal.Decimal
	}
	err := r.db.WithContext(ctx).
		Model(&invoiceItemTable{}).
		Select("COALESCE(SUM(qty * price), 0) AS total").
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	return &report.RevenueSummary{Total: row.Total}, nil
}

// SalesByProduct returns total quantity sold per product, ordered by product id
func (r *GormReportRepository) SalesByProduct(ctx context.Context) ([]report.ProductSales, error) {
	var rows []report.ProductSales
	err := r.db.WithContext(ctx).
		Table("invoice_items").
		Select("invoice_items.product_id AS product_id, products.name AS product_name, SUM(invoice_items.qty) AS total_qty_sold").
		Joins("JOIN products ON products.id = invoice_items.product_id").
		Group("invoice_items.product_id, products.name").
		Order("invoice_items.product_id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// StockSnapshot returns current stock per product, ordered by product id
func (r *GormReportRepository) StockSnapshot(ctx context.Context) ([]report.StockLevel, error) {
	var rows []report.StockLevel
	err := r.db.WithContext(ctx).
		Table("products").
		Select("id AS product_id, name AS product_name, stock AS current_stock").
		Order("id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// invoiceItemTable pins aggregate queries to the invoice_items table
type invoiceItemTable struct{}

func (invoiceItemTable) TableName() string { return "invoice_items" }

var _ report.Repository = (*GormReportRepository)(nil)
