package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	billingapp "github.com/localvendor/backend/internal/application/billing"
)

// ReportInvalidator drops cached report payloads after writes
type ReportInvalidator interface {
	InvalidateAll(ctx context.Context)
}

// InvoiceHandler handles invoice-related API endpoints
type InvoiceHandler struct {
	BaseHandler
	invoiceService *billingapp.InvoiceService
	invalidator    ReportInvalidator
}

// NewInvoiceHandler creates a new InvoiceHandler. invalidator may be nil.
func NewInvoiceHandler(invoiceService *billingapp.InvoiceService, invalidator ReportInvalidator) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceService: invoiceService,
		invalidator:    invalidator,
	}
}

// CreateInvoiceRequest is the request body for creating an invoice
type CreateInvoiceRequest struct {
	CustomerID int64                `json:"customer_id" binding:"required,gt=0"`
	Items      []InvoiceItemRequest `json:"items" binding:"required,min=1,dive"`
}

// InvoiceItemRequest is one requested invoice line
type InvoiceItemRequest struct {
	ProductID int64 `json:"product_id" binding:"required,gt=0"`
	Qty       int64 `json:"qty" binding:"required,gt=0"`
}

// RegisterRoutes registers invoice routes under /billing
func (h *InvoiceHandler) RegisterRoutes(rg *gin.RouterGroup) {
	invoices := rg.Group("/billing/invoices")
	{
		invoices.POST("", h.Create)
		invoices.GET("/:id", h.GetByID)
	}
}

// Create creates an invoice, decrementing stock atomically
func (h *InvoiceHandler) Create(c *gin.Context) {
	var req CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	items := make([]billingapp.RequestedItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, billingapp.RequestedItem{
			ProductID: item.ProductID,
			Qty:       item.Qty,
		})
	}

	resp, err := h.invoiceService.Create(c.Request.Context(), billingapp.CreateInvoiceRequest{
		CustomerID: req.CustomerID,
		Items:      items,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	if h.invalidator != nil {
		h.invalidator.InvalidateAll(c.Request.Context())
	}

	h.Created(c, resp)
}

// GetByID returns an invoice with its line items
func (h *InvoiceHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid invoice ID")
		return
	}

	resp, err := h.invoiceService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}
