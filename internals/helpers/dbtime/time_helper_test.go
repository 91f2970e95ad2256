package dbtime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndOfDayInclusive(t *testing.T) {
	d, err := ParseDate("2025-11-17", time.UTC)
	require.NoError(t, err)

	end := EndOfDay(d)
	assert.Equal(t, "2025-11-17", DateKey(end))
	assert.True(t, end.Add(time.Nanosecond).Equal(d.AddDate(0, 0, 1)))
}

func TestParseDateRejectsGarbage(t *testing.T) {
	_, err := ParseDate("17/11/2025", time.UTC)
	assert.Error(t, err)
}
