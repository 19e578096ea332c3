// Command seed-sample fills an empty database with a demo catalog,
// customers and orders. It does nothing when customers already exist.
package main

import (
	"context"
	"os"
	"time"

	"github.com/deppfellow/storefront-api/internal/config"
	"github.com/deppfellow/storefront-api/internal/database"
	"github.com/deppfellow/storefront-api/internal/maintenance"
)

func main() {
	os.Exit(maintenance.Run("seed-sample", func(ctx context.Context, _ *config.Config, db *database.Database) error {
		_, _, err := maintenance.SeedSampleData(ctx, db.ORM, time.Now().UTC())
		return err
	}))
}
