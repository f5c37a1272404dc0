package pkg

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsUndefinedTableError(t *testing.T) {
	assert.False(t, IsUndefinedTableError(nil))
	assert.False(t, IsUndefinedTableError(errors.New("some error")))
	assert.False(t, IsUndefinedTableError(&pgconn.PgError{Code: "23505"}))
	assert.True(t, IsUndefinedTableError(&pgconn.PgError{Code: "42P01"}))
	assert.True(t, IsUndefinedTableError(fmt.Errorf("get weights: %w", &pgconn.PgError{Code: "42P01"})))
}
