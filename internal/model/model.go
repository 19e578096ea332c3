// Package model holds the storefront entities as GORM models.
//
// Tables use snake_case names and columns; JSON uses camelCase.
// Ids are opaque strings, generated as UUIDv4 when a record is created
// without one.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base carries the primary key shared by every entity.
type Base struct {
	ID string `json:"id" gorm:"primaryKey;type:text"`
}

// BeforeCreate fills in a missing id.
func (b *Base) BeforeCreate(_ *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

// Timestamps are maintained by GORM on create and update.
type Timestamps struct {
	CreatedAt time.Time `json:"createdAt" gorm:"not null"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"not null"`
}

// All lists every model in dependency order, for AutoMigrate.
func All() []any {
	return []any{
		&User{},
		&Customer{},
		&Address{},
		&Product{},
		&Inventory{},
		&Order{},
		&OrderItem{},
	}
}
