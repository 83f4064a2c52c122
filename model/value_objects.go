// Package model provides value objects for configuration and request
// parameter validation.
package model

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// WeekStart selects which weekday occupies the first grid row.
type WeekStart int

const (
	WeekStartSunday WeekStart = iota
	WeekStartMonday
)

// ParseWeekStart maps a config string to a WeekStart. Unknown values fall
// back to Sunday; the second return reports whether the input was
// recognized so the caller can log the substitution.
func ParseWeekStart(s string) (WeekStart, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "sunday", "sun":
		return WeekStartSunday, true
	case "monday", "mon":
		return WeekStartMonday, true
	default:
		return WeekStartSunday, false
	}
}

// String returns the config name of the week start.
func (w WeekStart) String() string {
	if w == WeekStartMonday {
		return "monday"
	}
	return "sunday"
}

// Shift returns how many days to move backward from a date with the given
// Sunday-indexed day-of-week to reach the nearest week-start boundary.
func (w WeekStart) Shift(dow int) int {
	if w == WeekStartMonday {
		return (dow + 6) % 7
	}
	return dow
}

// Row maps a Sunday-indexed day-of-week to the grid row under this
// week-start convention.
func (w WeekStart) Row(dow int) int {
	if w == WeekStartMonday {
		return (dow + 6) % 7
	}
	return dow
}

// Labels returns the seven weekday abbreviations in row order.
func (w WeekStart) Labels() [7]string {
	if w == WeekStartMonday {
		return [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	}
	return [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
}

// ContentFilter restricts which event kinds survive normalization.
type ContentFilter int

const (
	FilterAll ContentFilter = iota
	FilterMovies
	FilterShows
)

// ParseContentFilter maps a config string to a ContentFilter. Unknown
// values fall back to FilterAll.
func ParseContentFilter(s string) (ContentFilter, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return FilterAll, true
	case "movies", "movie":
		return FilterMovies, true
	case "shows", "show", "episodes":
		return FilterShows, true
	default:
		return FilterAll, false
	}
}

// String returns the config name of the filter.
func (f ContentFilter) String() string {
	switch f {
	case FilterMovies:
		return "movies"
	case FilterShows:
		return "shows"
	default:
		return "all"
	}
}

// Keep reports whether an entry of the given kind passes the filter.
func (f ContentFilter) Keep(k Kind) bool {
	switch f {
	case FilterMovies:
		return k == KindMovie
	case FilterShows:
		return k == KindEpisode
	default:
		return true
	}
}

// YearList is an ascending, de-duplicated list of target years.
type YearList []int

// ParseYearList parses a comma-separated list of years ("2023,2024").
// An empty string yields an empty list, which means auto-detect.
func ParseYearList(s string) (YearList, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	seen := map[int]bool{}
	var years YearList
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		y, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid year %q: %w", part, err)
		}
		if y < 1900 || y > 2200 {
			return nil, fmt.Errorf("year %d out of range", y)
		}
		if !seen[y] {
			seen[y] = true
			years = append(years, y)
		}
	}
	sort.Ints(years)
	return years, nil
}

// Username is a validated Trakt username value object.
type Username struct {
	value string
}

// NewUsername creates a username value object.
func NewUsername(name string) (*Username, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, NewValidationError("username is required")
	}
	if strings.ContainsAny(name, " /\\?#") {
		return nil, NewValidationError("username contains invalid characters")
	}
	return &Username{value: name}, nil
}

// String returns the username string.
func (u *Username) String() string {
	return u.value
}

// DayOf truncates a timestamp to its local calendar day at midnight.
func DayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
