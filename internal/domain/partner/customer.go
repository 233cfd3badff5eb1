package partner

import (
	"strings"

	"github.com/localvendor/backend/internal/domain/shared"
)

// Customer represents a billing customer.
// Customers are immutable once created; invoices reference them by ID.
type Customer struct {
	shared.BaseEntity
	Name    string `gorm:"type:varchar(200);not null"`
	Contact string `gorm:"type:varchar(100);not null"`
	Address string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Customer) TableName() string {
	return "customers"
}

// NewCustomer creates a new customer after validating its invariants.
// Address is optional.
func NewCustomer(name, contact, address string) (*Customer, error) {
	name = strings.TrimSpace(name)
	contact = strings.TrimSpace(contact)

	if name == "" {
		return nil, shared.NewValidationError("Customer name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewValidationError("Customer name cannot exceed 200 characters")
	}
	if contact == "" {
		return nil, shared.NewValidationError("Customer contact cannot be empty")
	}

	return &Customer{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Contact:    contact,
		Address:    strings.TrimSpace(address),
	}, nil
}
