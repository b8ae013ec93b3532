package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2024-06-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), *date)

	_, err = ParseDate("01/06/2024")
	assert.Error(t, err)

	date, err = ParseDate("")
	require.NoError(t, err)
	assert.True(t, date.IsZero())
}

func TestDateKey(t *testing.T) {
	assert.Equal(t, "2024-06-01", DateKey(time.Date(2024, 6, 1, 23, 59, 59, 0, time.UTC)))
}
