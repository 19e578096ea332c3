package sqlerr

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var uniqueKeyPattern = regexp.MustCompile(`_([^_]+)_(?:key|ukey)$`)

// ErrCode reports the Code of err.
//
// It accepts both an already classified *Error and a raw *pgconn.PgError
// anywhere in the chain. Anything else is Other.
func ErrCode(err error) Code {
	if sqlErr := Classify(err); sqlErr != nil {
		return sqlErr.Code
	}
	return Other
}

// Classify finds a PostgreSQL error in err's chain and classifies it.
// It returns nil when err did not come from the server.
func Classify(err error) *Error {
	if err == nil {
		return nil
	}

	var sqlErr *Error
	if errors.As(err, &sqlErr) {
		return sqlErr
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ConvertPgError(pgErr)
	}

	return nil
}

// ConvertPgError converts a pgconn.PgError (raw Postgres error) into our *Error.
func ConvertPgError(src *pgconn.PgError) *Error {
	return &Error{
		Code:           MapCode(src.Code),
		Severity:       MapSeverity(src.Severity),
		DatabaseCode:   src.Code,
		Message:        src.Message,
		SchemaName:     src.SchemaName,
		TableName:      src.TableName,
		ColumnName:     src.ColumnName,
		DataTypeName:   src.DataTypeName,
		ConstraintName: src.ConstraintName,
		driverErr:      src,
	}
}

// LogFields adds the classification of err to a log event.
// Errors that did not come from the server leave the event untouched.
func LogFields(e *zerolog.Event, err error) *zerolog.Event {
	sqlErr := Classify(err)
	if sqlErr == nil {
		return e
	}

	e = e.Str("db_error", string(sqlErr.Code)).
		Str("sqlstate", sqlErr.DatabaseCode).
		Str("db_error_code", generateErrorCode(sqlErr.TableName, sqlErr.Code))
	if sqlErr.TableName != "" {
		e = e.Str("db_table", sqlErr.TableName)
	}
	if sqlErr.ConstraintName != "" {
		e = e.Str("db_constraint", sqlErr.ConstraintName)
	}
	return e
}

// Describe returns a readable one-line description of err.
//
// Server errors are phrased from their table and column metadata,
// e.g. "A Customer with this Email already exists". Other errors keep
// their own text.
func Describe(err error) string {
	sqlErr := Classify(err)
	if sqlErr == nil {
		if err == nil {
			return ""
		}
		return err.Error()
	}

	msg := formatUserFriendlyMessage(sqlErr)
	if sqlErr.Code == UniqueViolation {
		if column := extractColumnForUniqueViolation(sqlErr.ConstraintName); column != "" {
			msg = strings.ReplaceAll(msg, "identifier", humanizeText(column))
		}
	}
	return msg
}

// generateErrorCode builds a machine-friendly <DOMAIN>_<ACTION> code,
// e.g. users + UniqueViolation => USER_ALREADY_EXISTS.
func generateErrorCode(tableName string, errType Code) string {
	if tableName == "" {
		tableName = "RECORD"
	}

	domain := strings.ToUpper(singular(tableName))

	action := "ERROR"
	switch errType {
	case ForeignKeyViolation:
		action = "NOT_FOUND"
	case UniqueViolation:
		action = "ALREADY_EXISTS"
	case NotNullViolation:
		action = "REQUIRED"
	case CheckViolation:
		action = "INVALID"
	}

	return fmt.Sprintf("%s_%s", domain, action)
}

func formatUserFriendlyMessage(sqlErr *Error) string {
	entityName := getEntityName(sqlErr.TableName, sqlErr.ColumnName)

	switch sqlErr.Code {
	case ForeignKeyViolation:
		// On delete the violating table is the referencing one.
		if sqlErr.TableName != "" && strings.Contains(sqlErr.Message, "update or delete") {
			return fmt.Sprintf("The %s is still referenced by other records", humanizeText(singular(sqlErr.TableName)))
		}
		return fmt.Sprintf("The referenced %s does not exist", entityName)

	case UniqueViolation:
		return fmt.Sprintf("A %s with this identifier already exists", entityName)

	case NotNullViolation:
		fieldName := humanizeText(sqlErr.ColumnName)
		if fieldName == "" {
			fieldName = "field"
		}
		return fmt.Sprintf("The %s is required", fieldName)

	case CheckViolation:
		fieldName := humanizeText(sqlErr.ColumnName)
		if fieldName != "" {
			return fmt.Sprintf("The %s value does not meet required conditions", fieldName)
		}
		return "One or more values do not meet required conditions"

	case ConnectionFailure:
		return "The database connection failed"

	default:
		return "An error occurred while processing your request"
	}
}

// getEntityName infers an entity name, preferring a "<entity>_id" column
// over the table name.
func getEntityName(tableName, columnName string) string {
	if columnName != "" && strings.HasSuffix(strings.ToLower(columnName), "_id") {
		entity := strings.TrimSuffix(strings.ToLower(columnName), "_id")
		return humanizeText(entity)
	}

	if tableName != "" {
		return humanizeText(singular(tableName))
	}

	return "record"
}

// singular handles the table names this schema uses (order_items, inventories).
func singular(name string) string {
	switch {
	case strings.HasSuffix(name, "ies") && len(name) > 3:
		return name[:len(name)-3] + "y"
	case strings.HasSuffix(name, "sses"):
		return name[:len(name)-2]
	case strings.HasSuffix(name, "s") && len(name) > 1:
		return name[:len(name)-1]
	}
	return name
}

// humanizeText converts snake_case into Title Case: "zip_code" -> "Zip Code".
func humanizeText(text string) string {
	if text == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}

// extractColumnForUniqueViolation infers the column from a unique constraint name.
//
// It supports "unique_<table>_<column>" and "<table>_<column>_(key|ukey)",
// plus GORM's "idx_<table>_<column>".
func extractColumnForUniqueViolation(constraintName string) string {
	if constraintName == "" {
		return ""
	}

	if strings.HasPrefix(constraintName, "unique_") || strings.HasPrefix(constraintName, "idx_") {
		parts := strings.Split(constraintName, "_")
		if len(parts) >= 3 {
			return parts[len(parts)-1]
		}
	}

	matches := uniqueKeyPattern.FindStringSubmatch(constraintName)
	if len(matches) > 1 {
		return matches[1]
	}

	return ""
}
