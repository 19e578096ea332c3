package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	Base
	Name        string          `json:"name" gorm:"not null"`
	Description *string         `json:"description"`
	SKU         string          `json:"sku" gorm:"column:sku;uniqueIndex;not null"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	Inventory   []Inventory     `json:"inventory,omitempty" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Timestamps
}

// Inventory is the stock level of a product. Rows go away with their product.
type Inventory struct {
	Base
	ProductID string    `json:"productId" gorm:"type:text;not null;index"`
	Quantity  int       `json:"quantity" gorm:"not null;default:0"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"not null"`
}

// TableName keeps the plural table name used by the migrations.
func (Inventory) TableName() string {
	return "inventories"
}
