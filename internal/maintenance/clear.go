package maintenance

import (
	"context"
	"fmt"

	"github.com/deppfellow/storefront-api/internal/model"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// Deletion is the outcome of one ClearData step.
type Deletion struct {
	Table string
	Rows  int64
}

// clearOrder lists tables children first, so no step violates a foreign key.
// Inventory rows go with their product through ON DELETE CASCADE.
var clearOrder = []struct {
	table string
	model any
}{
	{"order_items", &model.OrderItem{}},
	{"orders", &model.Order{}},
	{"products", &model.Product{}},
	{"addresses", &model.Address{}},
	{"customers", &model.Customer{}},
}

// ClearData deletes all storefront data. Users are kept.
//
// Steps are not wrapped in a transaction: a failure stops the wipe and
// earlier steps stay applied. The deletions done so far are returned with
// the error.
func ClearData(ctx context.Context, db *gorm.DB) ([]Deletion, error) {
	logger := zerolog.Ctx(ctx)
	all := db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true})

	done := make([]Deletion, 0, len(clearOrder))
	for _, step := range clearOrder {
		result := all.Delete(step.model)
		if result.Error != nil {
			return done, fmt.Errorf("clear %s: %w", step.table, result.Error)
		}

		logger.Info().Str("table", step.table).Int64("rows", result.RowsAffected).Msg("table cleared")
		done = append(done, Deletion{Table: step.table, Rows: result.RowsAffected})
	}

	return done, nil
}
