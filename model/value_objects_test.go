package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWeekStart(t *testing.T) {
	cases := []struct {
		in   string
		want WeekStart
		ok   bool
	}{
		{"sunday", WeekStartSunday, true},
		{"Monday", WeekStartMonday, true},
		{"mon", WeekStartMonday, true},
		{"", WeekStartSunday, true},
		{"wednesday", WeekStartSunday, false},
	}
	for _, c := range cases {
		got, ok := ParseWeekStart(c.in)
		assert.Equal(t, c.want, got, c.in)
		assert.Equal(t, c.ok, ok, c.in)
	}
}

func TestWeekStartShift(t *testing.T) {
	// day-of-week is Sunday-indexed: 0=Sunday, 1=Monday
	assert.Equal(t, 0, WeekStartSunday.Shift(0))
	assert.Equal(t, 1, WeekStartSunday.Shift(1))
	assert.Equal(t, 6, WeekStartMonday.Shift(0)) // Sunday shifts back six days
	assert.Equal(t, 0, WeekStartMonday.Shift(1))
	assert.Equal(t, 5, WeekStartMonday.Shift(6))
}

func TestWeekStartRowAndLabels(t *testing.T) {
	assert.Equal(t, 0, WeekStartSunday.Row(0))
	assert.Equal(t, 6, WeekStartMonday.Row(0))
	assert.Equal(t, "Sun", WeekStartSunday.Labels()[0])
	assert.Equal(t, "Mon", WeekStartMonday.Labels()[0])
	assert.Equal(t, "Sun", WeekStartMonday.Labels()[6])
}

func TestParseContentFilter(t *testing.T) {
	f, ok := ParseContentFilter("movies")
	assert.True(t, ok)
	assert.Equal(t, FilterMovies, f)

	f, ok = ParseContentFilter("bogus")
	assert.False(t, ok)
	assert.Equal(t, FilterAll, f)

	assert.True(t, FilterMovies.Keep(KindMovie))
	assert.False(t, FilterMovies.Keep(KindEpisode))
	assert.True(t, FilterShows.Keep(KindEpisode))
	assert.True(t, FilterAll.Keep(KindMovie))
}

func TestParseYearList(t *testing.T) {
	years, err := ParseYearList("2024,2022, 2024")
	require.NoError(t, err)
	assert.Equal(t, YearList{2022, 2024}, years)

	years, err = ParseYearList("")
	require.NoError(t, err)
	assert.Nil(t, years)

	_, err = ParseYearList("20x4")
	assert.Error(t, err)

	_, err = ParseYearList("1200")
	assert.Error(t, err)
}

func TestNewUsername(t *testing.T) {
	u, err := NewUsername(" alice ")
	require.NoError(t, err)
	assert.Equal(t, "alice", u.String())

	_, err = NewUsername("")
	assert.Error(t, err)

	_, err = NewUsername("a/b")
	assert.Error(t, err)
}

func TestWatchEntryDisplay(t *testing.T) {
	movie := WatchEntry{Title: "Heat", Year: 1995, Kind: KindMovie}
	assert.Equal(t, "Heat (1995)", movie.Display())

	ep := WatchEntry{Title: "The Wire", Year: 2002, Kind: KindEpisode, EpisodeLabel: "S01E04"}
	assert.Equal(t, "The Wire S01E04 (2002)", ep.Display())
}

func TestFormatEpisodeLabel(t *testing.T) {
	assert.Equal(t, "S01E04", FormatEpisodeLabel(1, 4))
	assert.Equal(t, "S10E12", FormatEpisodeLabel(10, 12))
}

func TestWatchEntryDayKey(t *testing.T) {
	e := WatchEntry{Date: time.Date(2024, 3, 10, 23, 45, 0, 0, time.UTC)}
	assert.Equal(t, "2024-03-10", e.DayKey())
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), e.Day())
}
