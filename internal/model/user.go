package model

import "time"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User is an account that can sign in to the storefront back office.
// Password holds a bcrypt hash and is never serialized.
type User struct {
	Base
	Email     string  `json:"email" gorm:"uniqueIndex;not null"`
	Name      *string `json:"name"`
	Password  string  `json:"-" gorm:"not null"`
	Phone     *string `json:"phone"`
	Role      string  `json:"role" gorm:"not null;default:'user'"`
	Address   *string `json:"address"`
	Apartment *string `json:"apartment"`
	City      *string `json:"city"`
	State     *string `json:"state"`
	ZipCode   *string `json:"zipCode"`
	Country   *string `json:"country"`
	Timestamps
}

// UserProfile is the public projection of a User.
type UserProfile struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      *string   `json:"name"`
	Phone     *string   `json:"phone"`
	Role      string    `json:"role"`
	Address   *string   `json:"address"`
	Apartment *string   `json:"apartment"`
	City      *string   `json:"city"`
	State     *string   `json:"state"`
	ZipCode   *string   `json:"zipCode"`
	Country   *string   `json:"country"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserProfileColumns is the column allow-list behind UserProfile.
var UserProfileColumns = []string{
	"id", "email", "name", "phone", "role", "address",
	"apartment", "city", "state", "zip_code", "country", "created_at",
}

// Profile projects u onto the public field set.
func (u User) Profile() UserProfile {
	return UserProfile{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Phone:     u.Phone,
		Role:      u.Role,
		Address:   u.Address,
		Apartment: u.Apartment,
		City:      u.City,
		State:     u.State,
		ZipCode:   u.ZipCode,
		Country:   u.Country,
		CreatedAt: u.CreatedAt,
	}
}
