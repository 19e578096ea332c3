package repository

import (
	"context"
	"testing"
	"time"

	"github.com/deppfellow/storefront-api/internal/database/databasetest"
	"github.com/deppfellow/storefront-api/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func strPtr(s string) *string { return &s }

func seedCustomer(t *testing.T, db *gorm.DB) *model.Customer {
	t.Helper()

	product := model.Product{Name: "Mug", SKU: "MUG-1", Price: decimal.RequireFromString("12.50")}
	require.NoError(t, db.Create(&product).Error)

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	customer := model.Customer{
		Email: "jane@shop.test",
		Name:  "Jane",
		Addresses: []model.Address{
			{Line1: "1 Main St", City: "Springfield", State: "IL", ZipCode: "62701", Country: "US", IsDefault: true},
		},
	}
	require.NoError(t, db.Create(&customer).Error)

	for i := 0; i < 3; i++ {
		order := model.Order{
			CustomerID: customer.ID,
			Status:     model.OrderStatusPaid,
			Total:      decimal.RequireFromString("25.00"),
			Timestamps: model.Timestamps{CreatedAt: base.Add(time.Duration(i) * time.Hour)},
			Items: []model.OrderItem{
				{ProductID: &product.ID, Quantity: 1, Price: product.Price},
				{ProductID: &product.ID, Quantity: 1, Price: product.Price},
			},
		}
		require.NoError(t, db.Create(&order).Error)
	}

	return &customer
}

func TestCustomerFindWithOrders(t *testing.T) {
	db := databasetest.New(t)
	repo := NewCustomerRepository(db)
	seeded := seedCustomer(t, db)

	customer, err := repo.FindWithOrders(context.Background(), seeded.ID)
	require.NoError(t, err)

	require.Len(t, customer.Orders, 3)
	for i := 1; i < len(customer.Orders); i++ {
		assert.True(t, customer.Orders[i-1].CreatedAt.After(customer.Orders[i].CreatedAt),
			"orders must be newest first")
	}
	for _, order := range customer.Orders {
		require.Len(t, order.Items, 2)
		for _, item := range order.Items {
			require.NotNil(t, item.Product)
			assert.Equal(t, "MUG-1", item.Product.SKU)
			assert.True(t, item.Price.Equal(decimal.RequireFromString("12.50")))
		}
	}

	require.Len(t, customer.Addresses, 1)
	assert.Equal(t, "Springfield", customer.Addresses[0].City)
}

func TestCustomerFindWithOrdersEmptyRelations(t *testing.T) {
	db := databasetest.New(t)
	repo := NewCustomerRepository(db)

	bare := model.Customer{Email: "solo@shop.test", Name: "Solo"}
	require.NoError(t, db.Create(&bare).Error)

	customer, err := repo.FindWithOrders(context.Background(), bare.ID)
	require.NoError(t, err)
	assert.NotNil(t, customer.Orders)
	assert.Empty(t, customer.Orders)
	assert.NotNil(t, customer.Addresses)
}

func TestCustomerFindWithOrdersNotFound(t *testing.T) {
	repo := NewCustomerRepository(databasetest.New(t))

	_, err := repo.FindWithOrders(context.Background(), "abc123")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCustomerCount(t *testing.T) {
	db := databasetest.New(t)
	repo := NewCustomerRepository(db)

	count, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)

	seedCustomer(t, db)
	count, err = repo.Count(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	db := databasetest.New(t)
	repo := NewUserRepository(db)

	user := &model.User{Email: "ann@shop.test", Name: strPtr("Ann"), Password: "hash", City: strPtr("Austin")}
	require.NoError(t, repo.Create(ctx, user))
	require.NotEmpty(t, user.ID)

	profile, err := repo.FindProfileByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "ann@shop.test", profile.Email)
	assert.Equal(t, "Austin", *profile.City)
	assert.Equal(t, model.RoleUser, profile.Role)
	assert.False(t, profile.CreatedAt.IsZero())

	found, err := repo.FindByEmail(ctx, "ann@shop.test")
	require.NoError(t, err)
	assert.Equal(t, "hash", found.Password)

	require.NoError(t, repo.Update(ctx, user.ID, map[string]any{"role": model.RoleAdmin}))
	profile, err = repo.FindProfileByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, profile.Role)
}

func TestUserRepositoryNotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(databasetest.New(t))

	_, err := repo.FindProfileByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.FindByEmail(ctx, "nobody@shop.test")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, repo.Update(ctx, "missing", map[string]any{"name": "x"}), ErrNotFound)
}

func TestUserEmailUnique(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(databasetest.New(t))

	require.NoError(t, repo.Create(ctx, &model.User{Email: "dup@shop.test", Password: "a"}))
	err := repo.Create(ctx, &model.User{Email: "dup@shop.test", Password: "b"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}
