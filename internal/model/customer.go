package model

import "github.com/shopspring/decimal"

// Customer is a shopper. It is separate from User.
type Customer struct {
	Base
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Name      string    `json:"name" gorm:"not null"`
	Phone     *string   `json:"phone"`
	Orders    []Order   `json:"orders" gorm:"foreignKey:CustomerID"`
	Addresses []Address `json:"addresses" gorm:"foreignKey:CustomerID"`
	Timestamps
}

type Address struct {
	Base
	CustomerID string  `json:"customerId" gorm:"type:text;not null;index"`
	Line1      string  `json:"line1" gorm:"not null"`
	Line2      *string `json:"line2"`
	City       string  `json:"city" gorm:"not null"`
	State      string  `json:"state" gorm:"not null"`
	ZipCode    string  `json:"zipCode" gorm:"not null"`
	Country    string  `json:"country" gorm:"not null"`
	IsDefault  bool    `json:"isDefault" gorm:"not null;default:false"`
}

const (
	OrderStatusPending   = "pending"
	OrderStatusPaid      = "paid"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

type Order struct {
	Base
	CustomerID string          `json:"customerId" gorm:"type:text;not null;index"`
	Status     string          `json:"status" gorm:"not null;default:'pending'"`
	Total      decimal.Decimal `json:"total" gorm:"type:decimal(10,2);not null"`
	Items      []OrderItem     `json:"items" gorm:"foreignKey:OrderID"`
	Timestamps
}

// OrderItem is one line of an order. The product reference is optional so
// an order survives the removal of a catalog entry.
type OrderItem struct {
	Base
	OrderID   string          `json:"orderId" gorm:"type:text;not null;index"`
	ProductID *string         `json:"productId" gorm:"type:text;index"`
	Product   *Product        `json:"product" gorm:"foreignKey:ProductID"`
	Quantity  int             `json:"quantity" gorm:"not null"`
	Price     decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
}
