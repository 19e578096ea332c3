package repository

import (
	"context"

	"github.com/deppfellow/storefront-api/internal/model"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// FindProfileByID selects only the public profile columns, so the password
// hash is never read.
func (r *UserRepository) FindProfileByID(ctx context.Context, id string) (*model.UserProfile, error) {
	var profile model.UserProfile

	err := r.db.WithContext(ctx).
		Model(&model.User{}).
		Select(model.UserProfileColumns).
		Where("id = ?", id).
		Take(&profile).Error
	if err != nil {
		return nil, translate(err)
	}

	return &profile, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User

	if err := r.db.WithContext(ctx).Where("email = ?", email).Take(&user).Error; err != nil {
		return nil, translate(err)
	}

	return &user, nil
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	return translate(r.db.WithContext(ctx).Create(user).Error)
}

// Update writes the given columns of the user with id. Zero values are written too.
func (r *UserRepository) Update(ctx context.Context, id string, updates map[string]any) error {
	result := r.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
