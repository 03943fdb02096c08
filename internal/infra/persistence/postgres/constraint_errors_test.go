package postgres

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintHelpers(t *testing.T) {
	assert.True(t, isUniqueConstraintViolation(errors.Wrap(gorm.ErrDuplicatedKey, "insert order")))
	assert.True(t, isUniqueConstraintViolation(errors.New(`ERROR: duplicate key value violates unique constraint "idx_orders_unique_code" (SQLSTATE 23505)`)))
	assert.False(t, isUniqueConstraintViolation(nil))

	assert.True(t, isForeignKeyConstraintViolation(gorm.ErrForeignKeyViolated))
	assert.False(t, isForeignKeyConstraintViolation(gorm.ErrRecordNotFound))

	assert.True(t, isCheckConstraintViolation(errors.New("violates check constraint (SQLSTATE 23514)")))
	assert.False(t, isCheckConstraintViolation(errors.New("connection refused")))
}
