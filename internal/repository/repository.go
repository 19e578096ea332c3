// Package repository handles all interactions with the database.
//
// Repositories wrap the GORM gateway and expose the few queries the
// services need: point lookups with projections, nested relation fetches
// and create/update of users. A missing row is reported as ErrNotFound so
// callers never depend on GORM's error values.
package repository

import (
	"errors"

	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("record not found")

// translate maps GORM errors onto repository errors. Other errors get a stack
// trace attached but keep their message.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	default:
		return pkgerrors.WithStack(err)
	}
}
