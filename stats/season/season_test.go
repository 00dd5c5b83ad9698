package season

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hourly(start time.Time, n int) []time.Time {
	out := make([]time.Time, n)
	for i := range out {
		out[i] = start.Add(time.Duration(i) * time.Hour)
	}
	return out
}

func TestParseSeason(t *testing.T) {
	for name, want := range map[string]Season{
		"A": Year, "year": Year,
		"M": Month, "month": Month,
		"W": Week, "week": Week,
		"D": Day, "day": Day,
		"H": Hour, "hour": Hour,
	} {
		got, err := ParseSeason(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := ParseSeason("Q")
	require.ErrorIs(t, err, ErrUnsupported)
}

func TestSamplesPerSeasonHourlyByDay(t *testing.T) {
	// Three full days of hourly data.
	times := hourly(time.Date(2021, 3, 1, 0, 0, 0, 0, time.UTC), 72)

	got, err := SamplesPerSeason(times, Day)
	require.NoError(t, err)
	assert.InDelta(t, 24.0, got, 0)

	got, err = SamplesPerSeason(times, Hour)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, got, 0)
}

func TestSamplesPerSeasonMedianOfCounts(t *testing.T) {
	// Counts per month: Jan 2, Feb 3, Mar 1, Apr 4 -> median 2.5.
	day := func(m time.Month, d int) time.Time { return time.Date(2020, m, d, 0, 0, 0, 0, time.UTC) }
	times := []time.Time{
		day(1, 1), day(1, 2),
		day(2, 1), day(2, 2), day(2, 3),
		day(3, 1),
		day(4, 1), day(4, 2), day(4, 3), day(4, 4),
	}

	got, err := SamplesPerSeason(times, Month)
	require.NoError(t, err)
	assert.InDelta(t, 2.5, got, 1e-12)
}

func TestSamplesPerSeasonYearAndWeek(t *testing.T) {
	times := hourly(time.Date(2018, 12, 31, 0, 0, 0, 0, time.UTC), 24*14)

	got, err := SamplesPerSeason(times, Week)
	require.NoError(t, err)
	assert.InDelta(t, 168.0, got, 0)

	got, err = SamplesPerSeason(times, Year)
	require.NoError(t, err)
	// 24 samples in 2018 and 312 in 2019.
	assert.InDelta(t, 168.0, got, 0)
}

func TestSamplesPerSeasonErrors(t *testing.T) {
	_, err := SamplesPerSeason(nil, Day)
	require.Error(t, err)

	_, err = SamplesPerSeason(hourly(time.Now(), 2), Season(42))
	require.ErrorIs(t, err, ErrUnsupported)
}
