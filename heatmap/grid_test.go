package heatmap

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsky/watchgrass/model"
)

func utcEntry(day string) model.WatchEntry {
	t, err := time.Parse("2006-01-02", day)
	if err != nil {
		panic(err)
	}
	return model.WatchEntry{Date: t, Title: "x", Year: 2000, Kind: model.KindMovie}
}

func utcEntries(days ...string) []model.WatchEntry {
	out := make([]model.WatchEntry, 0, len(days))
	for _, d := range days {
		out = append(out, utcEntry(d))
	}
	return out
}

func TestLayoutYear_MondayStart2024(t *testing.T) {
	// Jan 1 2024 is a Monday: no backward shift
	g := LayoutYear(utcEntries("2024-06-01"), 2024, model.WeekStartMonday)
	assert.Equal(t, "2024-01-01", g.Start.Format("2006-01-02"))
	assert.Equal(t, 53, g.Weeks) // 366 days / 7 rounded up
}

func TestLayoutYear_SundayStart2024(t *testing.T) {
	// with a Sunday week start Jan 1 2024 shifts back to Sunday Dec 31 2023
	g := LayoutYear(utcEntries("2024-06-01"), 2024, model.WeekStartSunday)
	assert.Equal(t, "2023-12-31", g.Start.Format("2006-01-02"))
	assert.Equal(t, 53, g.Weeks)
}

func TestLayoutYear_WeekCountInvariant(t *testing.T) {
	for year := 2019; year <= 2026; year++ {
		for _, ws := range []model.WeekStart{model.WeekStartSunday, model.WeekStartMonday} {
			g := LayoutYear(nil, year, ws)
			jan1 := time.Date(year, 1, 1, 0, 0, 0, 0, time.Local)
			dec31 := time.Date(year, 12, 31, 0, 0, 0, 0, time.Local)
			totalDays := daysBetween(g.Start, dec31) + 1

			assert.GreaterOrEqual(t, g.Weeks*7, totalDays, "year %d %s", year, ws)
			assert.Less(t, (g.Weeks-1)*7, totalDays, "year %d %s", year, ws)
			assert.False(t, g.Start.After(jan1))
		}
	}
}

func TestLayoutYear_CellSumMatchesInYearEntries(t *testing.T) {
	entries := utcEntries(
		"2023-12-31", // outside target year, must not be counted
		"2024-01-01", "2024-01-01", "2024-02-29", "2024-12-31",
		"2025-01-01", // outside target year
	)
	g := LayoutYear(entries, 2024, model.WeekStartSunday)
	assert.Equal(t, 4, g.Total())
}

func TestLayoutYear_OutOfYearCellsFlagged(t *testing.T) {
	g := LayoutYear(nil, 2024, model.WeekStartSunday)
	// grid starts 2023-12-31, so the very first cell is not in year
	first := g.Cell(0, 0)
	assert.Equal(t, "2023-12-31", first.Date.Format("2006-01-02"))
	assert.False(t, first.InYear)

	second := g.Cell(1, 0)
	assert.Equal(t, "2024-01-01", second.Date.Format("2006-01-02"))
	assert.True(t, second.InYear)
}

func TestLayoutYear_EntryPlacement(t *testing.T) {
	// 2024-01-03 is a Wednesday: row 3 under Sunday start, row 2 under
	// Monday start; both in week 0
	entries := utcEntries("2024-01-03")

	sun := LayoutYear(entries, 2024, model.WeekStartSunday)
	assert.Equal(t, 1, sun.Cell(3, 0).Count)

	mon := LayoutYear(entries, 2024, model.WeekStartMonday)
	assert.Equal(t, 1, mon.Cell(2, 0).Count)
}

func TestLayoutYear_LeapYearDecember31(t *testing.T) {
	g := LayoutYear(utcEntries("2024-12-31"), 2024, model.WeekStartMonday)
	// Dec 31 2024 is a Tuesday in the final week
	lastWeek := g.Weeks - 1
	assert.Equal(t, 1, g.Cell(1, lastWeek).Count)
	assert.True(t, g.Cell(1, lastWeek).InYear)
}

func TestMonthLabels(t *testing.T) {
	g := LayoutYear(nil, 2024, model.WeekStartSunday)
	labels := g.MonthLabels()
	require.Len(t, labels, 12)
	assert.Equal(t, MonthLabel{Week: 0, Name: "Jan"}, labels[0])
	assert.Equal(t, "Dec", labels[11].Name)
	for i := 1; i < len(labels); i++ {
		assert.Greater(t, labels[i].Week, labels[i-1].Week)
	}
}

func TestLayoutYear_IndependentAcrossYears(t *testing.T) {
	entries := utcEntries("2023-06-01", "2024-06-01")
	g23 := LayoutYear(entries, 2023, model.WeekStartSunday)
	g24 := LayoutYear(entries, 2024, model.WeekStartSunday)

	assert.Equal(t, "2023-01-01", g23.Start.Format("2006-01-02")) // Jan 1 2023 is a Sunday
	assert.Equal(t, "2023-12-31", g24.Start.Format("2006-01-02"))
	assert.Equal(t, 1, g23.Total())
	assert.Equal(t, 1, g24.Total())
}
