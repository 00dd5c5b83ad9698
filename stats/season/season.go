// Package season estimates how many samples of a time series fall into a
// seasonal period such as a month or an hour.
package season

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/montanaflynn/stats"
)

// Season selects the calendar component a series is grouped by.
type Season int

const (
	Year Season = iota
	Month
	Week
	Day
	Hour
)

// ErrUnsupported is returned for unknown season names.
var ErrUnsupported = errors.New("season: unsupported season")

func (s Season) String() string {
	switch s {
	case Year:
		return "year"
	case Month:
		return "month"
	case Week:
		return "week"
	case Day:
		return "day"
	case Hour:
		return "hour"
	default:
		return fmt.Sprintf("Season(%d)", int(s))
	}
}

// ParseSeason accepts the offset aliases "A", "M", "W", "D", "H" and
// the names "year", "month", "week", "day", "hour".
func ParseSeason(name string) (Season, error) {
	switch strings.TrimSpace(name) {
	case "A", "year":
		return Year, nil
	case "M", "month":
		return Month, nil
	case "W", "week":
		return Week, nil
	case "D", "day":
		return Day, nil
	case "H", "hour":
		return Hour, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupported, name)
}

// Component returns the calendar value of t that s groups by. Weeks are ISO
// week numbers and days are days of the month.
func (s Season) Component(t time.Time) (int, error) {
	switch s {
	case Year:
		return t.Year(), nil
	case Month:
		return int(t.Month()), nil
	case Week:
		_, w := t.ISOWeek()
		return w, nil
	case Day:
		return t.Day(), nil
	case Hour:
		return t.Hour(), nil
	}
	return 0, fmt.Errorf("%w: %s", ErrUnsupported, s)
}

// SamplesPerSeason counts how often each value of the season component
// occurs in times and returns the median of those counts.
func SamplesPerSeason(times []time.Time, s Season) (float64, error) {
	counts := make(map[int]int)
	for _, t := range times {
		c, err := s.Component(t)
		if err != nil {
			return 0, err
		}
		counts[c]++
	}

	data := make(stats.Float64Data, 0, len(counts))
	for _, n := range counts {
		data = append(data, float64(n))
	}

	median, err := stats.Median(data)
	if err != nil {
		return 0, fmt.Errorf("season: %w", err)
	}
	return median, nil
}
