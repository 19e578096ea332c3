package service

import (
	"context"
	"errors"

	"github.com/deppfellow/storefront-api/internal/errs"
	"github.com/deppfellow/storefront-api/internal/model"
	"github.com/deppfellow/storefront-api/internal/repository"
)

type CustomerStore interface {
	FindWithOrders(ctx context.Context, id string) (*model.Customer, error)
}

type CustomerService struct {
	customers CustomerStore
}

func NewCustomerService(customers CustomerStore) *CustomerService {
	return &CustomerService{customers: customers}
}

// GetByID returns the customer with its orders, order items, products and addresses.
func (s *CustomerService) GetByID(ctx context.Context, id string) (*model.Customer, error) {
	customer, err := s.customers.FindWithOrders(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, errs.NewNotFoundError("Customer not found")
	}
	if err != nil {
		return nil, err
	}

	return customer, nil
}
