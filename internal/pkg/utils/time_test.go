package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	day, err := ParseDate("2024-05-15")
	require.NoError(t, err)
	assert.Equal(t, time.Wednesday, day.Weekday())
	assert.Equal(t, 0, day.Hour())
	assert.Equal(t, time.Local, day.Location())

	_, err = ParseDate("15/05/2024")
	assert.Error(t, err)
}

func TestStartOfDay(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	in := time.Date(2024, 5, 15, 23, 59, 10, 5, loc)
	out := StartOfDay(in)
	assert.Equal(t, time.Date(2024, 5, 15, 0, 0, 0, 0, loc), out)
}
