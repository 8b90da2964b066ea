package domain_test

import (
	"testing"
	"time"

	"github.com/ConversorDuo/currency_converter_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeRange(t *testing.T) {
	for _, valid := range []string{"1D", "5D", "1M", "6M", "1A", "6A", "TODO"} {
		r, ok := domain.ParseTimeRange(valid)
		require.True(t, ok, valid)
		assert.Equal(t, domain.TimeRange(valid), r)
	}

	_, ok := domain.ParseTimeRange("2W")
	assert.False(t, ok)
	_, ok = domain.ParseTimeRange("")
	assert.False(t, ok)
}

func TestWindowStart(t *testing.T) {
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		timeRange domain.TimeRange
		want      time.Time
	}{
		{domain.Range1D, now.AddDate(0, 0, -3)},
		{domain.Range5D, now.AddDate(0, 0, -8)},
		{domain.Range1M, now.AddDate(0, -1, 0)},
		{domain.Range6M, now.AddDate(0, -6, 0)},
		{domain.Range1A, now.AddDate(-1, 0, 0)},
		{domain.Range6A, now.AddDate(-6, 0, 0)},
		{domain.RangeTodo, time.Date(1999, time.January, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, tc.timeRange.WindowStart(now), string(tc.timeRange))
	}
}
