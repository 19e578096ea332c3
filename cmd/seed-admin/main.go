// Command seed-admin creates the admin account, or promotes and resets the
// user that already has the admin email.
//
// It reads ADMIN_EMAIL, ADMIN_PASSWORD and ADMIN_NAME.
package main

import (
	"context"
	"os"

	"github.com/deppfellow/storefront-api/internal/config"
	"github.com/deppfellow/storefront-api/internal/database"
	"github.com/deppfellow/storefront-api/internal/lib/password"
	"github.com/deppfellow/storefront-api/internal/maintenance"
	"github.com/deppfellow/storefront-api/internal/repository"
)

func main() {
	os.Exit(maintenance.Run("seed-admin", func(ctx context.Context, _ *config.Config, db *database.Database) error {
		admin, err := config.LoadAdminConfig()
		if err != nil {
			return err
		}

		_, err = maintenance.SeedAdmin(ctx, repository.NewUserRepository(db.ORM), password.NewHasher(), admin)
		return err
	}))
}
