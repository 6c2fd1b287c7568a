package row

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRowFields(t *testing.T) {
	r := Of(int64(1), nil, "s")
	assert.Equal(t, 3, r.Arity())
	assert.False(t, r.IsNullAt(0))
	assert.True(t, r.IsNullAt(1))
	assert.Equal(t, int64(1), r.Int64(0))
	assert.Equal(t, "s", r.Field(2))
}

func TestRowInt64Panics(t *testing.T) {
	r := Of(nil, "not-an-int")
	assert.Panics(t, func() { r.Int64(0) })
	assert.Panics(t, func() { r.Int64(1) })
}
