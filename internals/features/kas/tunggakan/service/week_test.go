package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(s string) time.Time {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		panic(err)
	}
	return t
}

func TestWeekIndex(t *testing.T) {
	start := date("2025-10-27")

	cases := []struct {
		name string
		at   time.Time
		want int
	}{
		{"sebelum mulai", date("2025-10-20"), 0},
		{"satu jam sebelum mulai", start.Add(-time.Hour), 0},
		{"hari pertama", start, 1},
		{"siang hari pertama", start.Add(15 * time.Hour), 1},
		{"hari kedua", date("2025-10-28"), 2},
		{"hari ke-7", date("2025-11-03"), 2},
		{"hari ke-8", date("2025-11-04"), 3},
		{"21 hari", date("2025-11-17"), 4},
		{"22 hari", date("2025-11-18"), 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, WeekIndex(tc.at, start))
		})
	}
}

func TestWeekIndexDeterministic(t *testing.T) {
	start := date("2025-10-27")
	for d := -30; d <= 120; d++ {
		at := start.AddDate(0, 0, d)
		first := WeekIndex(at, start)
		assert.Equal(t, first, WeekIndex(at, start))
		if d < 0 {
			assert.Equal(t, 0, first)
		} else {
			assert.GreaterOrEqual(t, first, 1)
		}
	}
}
