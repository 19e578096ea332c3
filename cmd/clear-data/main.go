// Command clear-data deletes every order, product, address and customer.
// Users are kept.
package main

import (
	"context"
	"os"

	"github.com/deppfellow/storefront-api/internal/config"
	"github.com/deppfellow/storefront-api/internal/database"
	"github.com/deppfellow/storefront-api/internal/maintenance"
)

func main() {
	os.Exit(maintenance.Run("clear-data", func(ctx context.Context, _ *config.Config, db *database.Database) error {
		_, err := maintenance.ClearData(ctx, db.ORM)
		return err
	}))
}
