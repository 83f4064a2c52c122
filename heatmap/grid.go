// Package heatmap lays out watch activity on a week-aligned calendar
// grid and renders it as a GitHub-style SVG heatmap.
package heatmap

import (
	"time"

	"github.com/tsky/watchgrass/model"
)

const daysPerWeek = 7

// Cell is one day square of the grid. Cells outside the target year are
// kept for column alignment but flagged invisible.
type Cell struct {
	Date   time.Time
	Count  int
	InYear bool
}

// YearGrid is the week-start-aligned 7xW matrix for one calendar year.
type YearGrid struct {
	Year      int
	WeekStart model.WeekStart
	Start     time.Time // week-start boundary on or before Jan 1
	Weeks     int
	cells     [daysPerWeek][]Cell // [row][week]
}

// MonthLabel anchors a month abbreviation to the grid column containing
// the 1st of that month.
type MonthLabel struct {
	Week int
	Name string
}

var monthNames = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// LayoutYear buckets entries into the calendar grid of one year. It is a
// pure function of its inputs: entries outside the year are ignored, an
// empty slice yields an all-zero grid.
func LayoutYear(entries []model.WatchEntry, year int, weekStart model.WeekStart) *YearGrid {
	loc := time.Local
	if len(entries) > 0 {
		loc = entries[0].Date.Location()
	}

	jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
	dec31 := time.Date(year, time.December, 31, 0, 0, 0, 0, loc)

	shift := weekStart.Shift(int(jan1.Weekday()))
	start := jan1.AddDate(0, 0, -shift)

	totalDays := daysBetween(start, dec31) + 1
	weeks := (totalDays + daysPerWeek - 1) / daysPerWeek

	g := &YearGrid{Year: year, WeekStart: weekStart, Start: start, Weeks: weeks}
	for row := 0; row < daysPerWeek; row++ {
		g.cells[row] = make([]Cell, weeks)
		for week := 0; week < weeks; week++ {
			date := start.AddDate(0, 0, week*daysPerWeek+row)
			g.cells[row][week] = Cell{
				Date:   date,
				InYear: date.Year() == year,
			}
		}
	}

	for _, e := range entries {
		day := e.Day()
		if day.Year() != year {
			continue
		}
		offset := daysBetween(start, day)
		week := offset / daysPerWeek
		row := weekStart.Row(int(day.Weekday()))
		if week < 0 || week >= weeks {
			continue
		}
		g.cells[row][week].Count++
	}

	return g
}

// Cell returns the cell at the given row and week column.
func (g *YearGrid) Cell(row, week int) Cell {
	return g.cells[row][week]
}

// Total sums the counts of all in-year cells.
func (g *YearGrid) Total() int {
	total := 0
	for row := 0; row < daysPerWeek; row++ {
		for week := 0; week < g.Weeks; week++ {
			if g.cells[row][week].InYear {
				total += g.cells[row][week].Count
			}
		}
	}
	return total
}

// MonthLabels returns the column anchors for all twelve months. The 1st
// of a month can never precede the shifted grid start, but guard anyway.
func (g *YearGrid) MonthLabels() []MonthLabel {
	labels := make([]MonthLabel, 0, 12)
	for m := time.January; m <= time.December; m++ {
		first := time.Date(g.Year, m, 1, 0, 0, 0, 0, g.Start.Location())
		if first.Before(g.Start) {
			continue
		}
		week := daysBetween(g.Start, first) / daysPerWeek
		if week >= g.Weeks {
			continue
		}
		labels = append(labels, MonthLabel{Week: week, Name: monthNames[m-1]})
	}
	return labels
}

// daysBetween counts calendar days from a to b (negative when b precedes
// a). Both are compared by date components so DST offsets cannot skew
// the division.
func daysBetween(a, b time.Time) int {
	ad := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bd := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bd.Sub(ad) / (24 * time.Hour))
}
