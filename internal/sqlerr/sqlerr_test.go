package sqlerr

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:           "23505",
		Severity:       "ERROR",
		Message:        "duplicate key value violates unique constraint",
		TableName:      "customers",
		ConstraintName: "customers_email_key",
	}
	wrapped := fmt.Errorf("create customer: %w", pgErr)

	sqlErr := Classify(wrapped)
	require.NotNil(t, sqlErr)
	assert.Equal(t, UniqueViolation, sqlErr.Code)
	assert.Equal(t, SeverityError, sqlErr.Severity)
	assert.Equal(t, UniqueViolation, ErrCode(wrapped))
	assert.True(t, errors.Is(sqlErr, pgErr))

	assert.Nil(t, Classify(errors.New("plain")))
	assert.Equal(t, Other, ErrCode(errors.New("plain")))
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "unique",
			err:  &pgconn.PgError{Code: "23505", TableName: "customers", ConstraintName: "customers_email_key"},
			want: "A Customer with this Email already exists",
		},
		{
			name: "foreign key on insert",
			err:  &pgconn.PgError{Code: "23503", TableName: "orders", ColumnName: "customer_id", Message: "insert or update on table violates foreign key constraint"},
			want: "The referenced Customer does not exist",
		},
		{
			name: "foreign key on delete",
			err:  &pgconn.PgError{Code: "23503", TableName: "order_items", Message: "update or delete on table \"orders\" violates foreign key constraint"},
			want: "The Order Item is still referenced by other records",
		},
		{
			name: "not null",
			err:  &pgconn.PgError{Code: "23502", ColumnName: "zip_code"},
			want: "The Zip Code is required",
		},
		{
			name: "not from server",
			err:  errors.New("dial tcp: connection refused"),
			want: "dial tcp: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Describe(tt.err))
		})
	}
}

func TestGenerateErrorCode(t *testing.T) {
	assert.Equal(t, "USER_ALREADY_EXISTS", generateErrorCode("users", UniqueViolation))
	assert.Equal(t, "INVENTORY_NOT_FOUND", generateErrorCode("inventories", ForeignKeyViolation))
	assert.Equal(t, "RECORD_ERROR", generateErrorCode("", Other))
}

func TestLogFields(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	LogFields(log.Error(), &pgconn.PgError{Code: "23503", TableName: "orders", ConstraintName: "fk_customers_orders"}).Msg("failed")
	assert.Contains(t, buf.String(), `"sqlstate":"23503"`)
	assert.Contains(t, buf.String(), `"db_table":"orders"`)
	assert.Contains(t, buf.String(), `"db_constraint":"fk_customers_orders"`)

	buf.Reset()
	LogFields(log.Error(), errors.New("plain")).Msg("failed")
	assert.NotContains(t, buf.String(), "sqlstate")
}

func TestMapSeverity(t *testing.T) {
	assert.Equal(t, SeverityFatal, MapSeverity("FATAL"))
	assert.Equal(t, SeverityError, MapSeverity("whatever"))
}
