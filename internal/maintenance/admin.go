package maintenance

import (
	"context"
	"errors"
	"fmt"

	"github.com/deppfellow/storefront-api/internal/config"
	"github.com/deppfellow/storefront-api/internal/model"
	"github.com/deppfellow/storefront-api/internal/repository"
	"github.com/rs/zerolog"
)

// AdminStore is the slice of the user repository SeedAdmin needs.
type AdminStore interface {
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	Create(ctx context.Context, user *model.User) error
	Update(ctx context.Context, id string, updates map[string]any) error
}

// PasswordHasher turns a plain password into a stored hash.
type PasswordHasher interface {
	Hash(plain string) (string, error)
}

// SeedAdmin makes sure an admin account exists for cfg.Email.
//
// An existing user with that email gets the new password hash, the admin
// role and cfg.Name. Otherwise a new admin user is created. Running it
// twice leaves a single admin row. It reports whether a user was created.
func SeedAdmin(ctx context.Context, users AdminStore, hasher PasswordHasher, cfg config.AdminConfig) (bool, error) {
	logger := zerolog.Ctx(ctx)

	if cfg.UsesDefaultCredentials() {
		logger.Warn().
			Strs("defaulted", cfg.Defaulted).
			Msg("ADMIN_EMAIL/ADMIN_PASSWORD not set, using default admin credentials; change them before deploying")
	}

	hash, err := hasher.Hash(cfg.Password)
	if err != nil {
		return false, err
	}

	existing, err := users.FindByEmail(ctx, cfg.Email)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		name := cfg.Name
		user := &model.User{
			Email:    cfg.Email,
			Name:     &name,
			Password: hash,
			Role:     model.RoleAdmin,
		}
		if err := users.Create(ctx, user); err != nil {
			return false, fmt.Errorf("create admin user: %w", err)
		}

		logger.Info().Str("user_id", user.ID).Str("email", user.Email).Msg("admin user created")
		return true, nil

	case err != nil:
		return false, fmt.Errorf("look up admin user: %w", err)
	}

	err = users.Update(ctx, existing.ID, map[string]any{
		"password": hash,
		"role":     model.RoleAdmin,
		"name":     cfg.Name,
	})
	if err != nil {
		return false, fmt.Errorf("update admin user: %w", err)
	}

	logger.Info().Str("user_id", existing.ID).Str("email", existing.Email).Msg("existing user promoted to admin")
	return false, nil
}
