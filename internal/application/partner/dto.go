package partner

import (
	"time"

	"github.com/localvendor/backend/internal/domain/partner"
)

// CreateCustomerRequest carries the fields needed to register a customer
type CreateCustomerRequest struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Address string `json:"address"`
}

// CustomerResponse is the external view of a customer
type CustomerResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Contact   string    `json:"contact"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ToCustomerResponse converts a domain customer to its response form
func ToCustomerResponse(customer *partner.Customer) *CustomerResponse {
	return &CustomerResponse{
		ID:        customer.ID,
		Name:      customer.Name,
		Contact:   customer.Contact,
		Address:   customer.Address,
		CreatedAt: customer.CreatedAt,
	}
}

// ToCustomerResponses converts a slice of domain customers
func ToCustomerResponses(customers []partner.Customer) []CustomerResponse {
	responses := make([]CustomerResponse, 0, len(customers))
	for i := range customers {
		responses = append(responses, *ToCustomerResponse(&customers[i]))
	}
	return responses
}
