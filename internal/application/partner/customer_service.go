package partner

import (
	"context"
	"errors"
	"fmt"

	"github.com/localvendor/backend/internal/domain/partner"
	"github.com/localvendor/backend/internal/domain/shared"
)

// CustomerService handles customer registration and lookup
type CustomerService struct {
	customers partner.CustomerRepository
}

// NewCustomerService creates a new customer service
func NewCustomerService(customers partner.CustomerRepository) *CustomerService {
	return &CustomerService{customers: customers}
}

// Create registers a new customer
func (s *CustomerService) Create(ctx context.Context, req CreateCustomerRequest) (*CustomerResponse, error) {
	customer, err := partner.NewCustomer(req.Name, req.Contact, req.Address)
	if err != nil {
		return nil, err
	}

	if err := s.customers.Save(ctx, customer); err != nil {
		return nil, storageError("save customer", err)
	}

	return ToCustomerResponse(customer), nil
}

// List returns all customers in insertion order
func (s *CustomerService) List(ctx context.Context) ([]CustomerResponse, error) {
	customers, err := s.customers.FindAll(ctx)
	if err != nil {
		return nil, storageError("list customers", err)
	}
	return ToCustomerResponses(customers), nil
}

// GetByID returns a single customer
func (s *CustomerService) GetByID(ctx context.Context, id int64) (*CustomerResponse, error) {
	customer, err := s.customers.FindByID(ctx, id)
	if err != nil {
		domainErr := &shared.DomainError{}
		if errors.As(err, &domainErr) && domainErr.Code == shared.CodeNotFound {
			return nil, shared.NewNotFoundError(fmt.Sprintf("Customer %d not found", id))
		}
		return nil, storageError("load customer", err)
	}
	return ToCustomerResponse(customer), nil
}

func storageError(op string, err error) error {
	domainErr := &shared.DomainError{}
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return shared.NewStorageError(fmt.Sprintf("Failed to %s: %v", op, err))
}
