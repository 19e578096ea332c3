// Package validation contains the logic for validating
// request data.
//
// It uses the `validator` library to enforce rules (like
// required fields) defined in struct tags and turns failures into
// the 400 envelope the client understands.
package validation

import "github.com/go-playground/validator/v10"

var validate = validator.New(validator.WithRequiredStructEnabled())

// Struct runs the shared validator against the struct tags of v.
func Struct(v any) error {
	return validate.Struct(v)
}
