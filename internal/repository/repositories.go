package repository

import (
	"gorm.io/gorm"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	User     *UserRepository
	Customer *CustomerRepository
}

// NewRepositories builds every repository over the same gateway handle.
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		User:     NewUserRepository(db),
		Customer: NewCustomerRepository(db),
	}
}
