package billing

import (
	"time"

	"github.com/localvendor/backend/internal/domain/billing"
)

// RequestedItem is one (product, quantity) pair of an invoice request
type RequestedItem struct {
	ProductID int64 `json:"product_id"`
	Qty       int64 `json:"qty"`
}

// CreateInvoiceRequest represents a request to create an invoice
type CreateInvoiceRequest struct {
	CustomerID int64           `json:"customer_id"`
	Items      []RequestedItem `json:"items"`
}

// InvoiceItemResponse represents one persisted invoice line
type InvoiceItemResponse struct {
	ProductID   int64  `json:"product_id"`
	ProductName string `json:"product_name,omitempty"`
	Qty         int64  `json:"qty"`
	UnitPrice   string `json:"unit_price"`
	Amount      string `json:"amount"`
}

// InvoiceResponse represents a persisted invoice with its computed total
type InvoiceResponse struct {
	ID         int64                 `json:"id"`
	CustomerID int64                 `json:"customer_id"`
	Items      []InvoiceItemResponse `json:"items"`
	GrandTotal string                `json:"grand_total"`
	CreatedAt  time.Time             `json:"created_at"`
}

// ToInvoiceResponse converts a domain invoice to its response representation.
// Product names are filled in from the given lookup when available.
func ToInvoiceResponse(inv *billing.Invoice, productNames map[int64]string) InvoiceResponse {
	items := make([]InvoiceItemResponse, 0, len(inv.Items))
	for i := range inv.Items {
		item := &inv.Items[i]
		items = append(items, InvoiceItemResponse{
			ProductID:   item.ProductID,
			ProductName: productNames[item.ProductID],
			Qty:         item.Qty,
			UnitPrice:   item.UnitPrice.StringFixed(2),
			Amount:      item.Amount().StringFixed(2),
		})
	}
	return InvoiceResponse{
		ID:         inv.ID,
		CustomerID: inv.CustomerID,
		Items:      items,
		GrandTotal: inv.GrandTotal().StringFixed(2),
		CreatedAt:  inv.CreatedAt,
	}
}
