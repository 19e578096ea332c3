package maintenance

import (
	"context"
	"fmt"
	"time"

	"github.com/deppfellow/storefront-api/internal/model"
	"github.com/deppfellow/storefront-api/internal/repository"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SampleStats counts what SeedSampleData created.
type SampleStats struct {
	Products  int
	Customers int
	Orders    int
}

type sampleProduct struct {
	name, sku, price string
	stock            int
}

var sampleProducts = []sampleProduct{
	{"Walnut Desk Lamp", "LAMP-WAL-01", "49.90", 25},
	{"Linen Throw Pillow", "PIL-LIN-02", "24.50", 60},
	{"Ceramic Pour-Over Set", "CER-POS-03", "38.00", 15},
	{"Wool Area Rug 5x7", "RUG-WOL-04", "189.00", 4},
	{"Oak Wall Shelf", "SHF-OAK-05", "72.25", 12},
}

type sampleCustomer struct {
	name, email, phone string
	address            model.Address
	orders             [][]int // product indexes per order
}

var sampleCustomers = []sampleCustomer{
	{
		name: "Jane Cooper", email: "jane.cooper@example.com", phone: "+1 512 555 0101",
		address: model.Address{Line1: "400 Congress Ave", City: "Austin", State: "TX", ZipCode: "78701", Country: "US", IsDefault: true},
		orders:  [][]int{{0, 1}, {2}, {3, 4, 1}},
	},
	{
		name: "Marcus Lee", email: "marcus.lee@example.com", phone: "+1 206 555 0144",
		address: model.Address{Line1: "1201 3rd Ave", City: "Seattle", State: "WA", ZipCode: "98101", Country: "US", IsDefault: true},
		orders:  [][]int{{4}, {0, 2}},
	},
	{
		name: "Priya Patel", email: "priya.patel@example.com", phone: "+1 617 555 0187",
		address: model.Address{Line1: "77 Massachusetts Ave", City: "Cambridge", State: "MA", ZipCode: "02139", Country: "US", IsDefault: true},
	},
}

var sampleStatuses = []string{
	model.OrderStatusDelivered,
	model.OrderStatusShipped,
	model.OrderStatusPaid,
	model.OrderStatusPending,
}

// SeedSampleData fills an empty database with a small catalog, customers
// with addresses and orders with items. Every order gets a distinct
// creation time, one day apart counting back from now.
//
// It does nothing when any customer exists and then reports seeded=false.
func SeedSampleData(ctx context.Context, db *gorm.DB, now time.Time) (SampleStats, bool, error) {
	logger := zerolog.Ctx(ctx)

	existing, err := repository.NewCustomerRepository(db).Count(ctx)
	if err != nil {
		return SampleStats{}, false, fmt.Errorf("count customers: %w", err)
	}
	if existing > 0 {
		logger.Info().Int64("customers", existing).Msg("customers already present, skipping sample data")
		return SampleStats{}, false, nil
	}

	var stats SampleStats
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		products := make([]model.Product, len(sampleProducts))
		for i, p := range sampleProducts {
			products[i] = model.Product{
				Name:      p.name,
				SKU:       p.sku,
				Price:     decimal.RequireFromString(p.price),
				Inventory: []model.Inventory{{Quantity: p.stock}},
			}
		}
		if err := tx.Create(&products).Error; err != nil {
			return fmt.Errorf("create products: %w", err)
		}
		stats.Products = len(products)

		day := 0
		for _, sc := range sampleCustomers {
			phone := sc.phone
			customer := model.Customer{
				Name:      sc.name,
				Email:     sc.email,
				Phone:     &phone,
				Addresses: []model.Address{sc.address},
			}
			if err := tx.Create(&customer).Error; err != nil {
				return fmt.Errorf("create customer %s: %w", sc.email, err)
			}
			stats.Customers++

			for _, picks := range sc.orders {
				day++
				order := buildOrder(customer.ID, products, picks)
				order.Status = sampleStatuses[day%len(sampleStatuses)]
				order.CreatedAt = now.Add(-time.Duration(day) * 24 * time.Hour)
				order.UpdatedAt = order.CreatedAt

				if err := tx.Create(&order).Error; err != nil {
					return fmt.Errorf("create order for %s: %w", sc.email, err)
				}
				stats.Orders++
			}
		}

		return nil
	})
	if err != nil {
		return SampleStats{}, false, err
	}

	logger.Info().
		Int("products", stats.Products).
		Int("customers", stats.Customers).
		Int("orders", stats.Orders).
		Msg("sample data seeded")

	return stats, true, nil
}

// buildOrder makes an order with one item per picked product, quantity
// rising with position, and the matching total.
func buildOrder(customerID string, products []model.Product, picks []int) model.Order {
	order := model.Order{CustomerID: customerID, Total: decimal.Zero}

	for i, idx := range picks {
		p := products[idx]
		qty := i + 1

		order.Items = append(order.Items, model.OrderItem{
			ProductID: &p.ID,
			Quantity:  qty,
			Price:     p.Price,
		})
		order.Total = order.Total.Add(p.Price.Mul(decimal.NewFromInt(int64(qty))))
	}

	return order
}
