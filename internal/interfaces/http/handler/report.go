package handler

import (
	"github.com/gin-gonic/gin"

	reportapp "github.com/localvendor/backend/internal/application/report"
)

// ReportHandler handles reporting API endpoints
type ReportHandler struct {
	BaseHandler
	reportService *reportapp.ReportService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService *reportapp.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// RegisterRoutes registers report routes under /report
func (h *ReportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	reports := rg.Group("/report")
	{
		reports.GET("/revenue", h.Revenue)
		reports.GET("/sales", h.Sales)
		reports.GET("/stock", h.Stock)
	}
}

// Revenue returns the total revenue over all invoices
func (h *ReportHandler) Revenue(c *gin.Context) {
	resp, err := h.reportService.TotalRevenue(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

// Sales returns total quantity sold per product
func (h *ReportHandler) Sales(c *gin.Context) {
	resp, err := h.reportService.SalesByProduct(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

// Stock returns current stock per product
func (h *ReportHandler) Stock(c *gin.Context) {
	resp, err := h.reportService.StockSnapshot(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}
