package repository

import (
	"context"

	"github.com/deppfellow/storefront-api/internal/model"
	"gorm.io/gorm"
)

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// FindWithOrders loads a customer with its orders (newest first), each
// order's items with their product, and its addresses.
//
// Relations are always slices, never null, in the result.
func (r *CustomerRepository) FindWithOrders(ctx context.Context, id string) (*model.Customer, error) {
	var customer model.Customer

	err := r.db.WithContext(ctx).
		Preload("Orders", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC").Order("id")
		}).
		Preload("Orders.Items").
		Preload("Orders.Items.Product").
		Preload("Addresses").
		Where("id = ?", id).
		Take(&customer).Error
	if err != nil {
		return nil, translate(err)
	}

	if customer.Orders == nil {
		customer.Orders = []model.Order{}
	}
	if customer.Addresses == nil {
		customer.Addresses = []model.Address{}
	}
	for i := range customer.Orders {
		if customer.Orders[i].Items == nil {
			customer.Orders[i].Items = []model.OrderItem{}
		}
	}

	return &customer, nil
}

func (r *CustomerRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Customer{}).Count(&count).Error
	return count, translate(err)
}
