package validator_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/domainkit/pkg/validator"
)

func TestParseDate(t *testing.T) {
	t.Run("date only is UTC midnight", func(t *testing.T) {
		got, ok := validator.ParseDate("2024-02-29")
		require.True(t, ok)
		assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("RFC3339 keeps the instant", func(t *testing.T) {
		got, ok := validator.ParseDate("2024-01-02T03:04:05+09:00")
		require.True(t, ok)
		assert.True(t, got.Equal(time.Date(2024, 1, 1, 18, 4, 5, 0, time.UTC)))
	})

	t.Run("rejects garbage", func(t *testing.T) {
		for _, v := range []string{"", "yesterday", "2024-13-01", "2023-02-29"} {
			_, ok := validator.ParseDate(v)
			assert.False(t, ok, "expected %q to be rejected", v)
		}
	})
}

func TestValidDate(t *testing.T) {
	assert.True(t, validator.ValidDate("born", "2001-09-11").Check())
	assert.False(t, validator.ValidDate("born", "not a date").Check())

	rule := validator.ValidDate("born", "")
	assert.Equal(t, "must be a valid date", rule.Error.Message)
	assert.Equal(t, "validation.date", rule.Error.Code)
}
