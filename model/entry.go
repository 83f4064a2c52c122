// Package model provides the data model definitions for watchgrass.
package model

import (
	"fmt"
	"time"
)

// Kind discriminates the two watch event variants.
type Kind int

const (
	KindMovie Kind = iota
	KindEpisode
)

// String returns the wire name of the kind.
func (k Kind) String() string {
	switch k {
	case KindMovie:
		return "movie"
	case KindEpisode:
		return "episode"
	default:
		return "unknown"
	}
}

// WatchEntry is one normalized watched occurrence. All entries carry a
// timestamp resolvable to a local calendar day; time of day is irrelevant
// to bucketing.
type WatchEntry struct {
	Date         time.Time // local time
	Title        string
	Year         int // release year of the work, not the watch year
	Kind         Kind
	EpisodeLabel string // "SxxEyy", episodes only
	Rating       int    // 1-10, 0 when absent
}

// Day returns the entry's local calendar day at midnight.
func (e WatchEntry) Day() time.Time {
	y, m, d := e.Date.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, e.Date.Location())
}

// DayKey returns the stable local-day grouping key (YYYY-MM-DD).
func (e WatchEntry) DayKey() string {
	return e.Date.Format("2006-01-02")
}

// Display returns the tooltip line body for the entry, without the
// leading bullet.
func (e WatchEntry) Display() string {
	if e.Kind == KindEpisode && e.EpisodeLabel != "" {
		return fmt.Sprintf("%s %s (%d)", e.Title, e.EpisodeLabel, e.Year)
	}
	return fmt.Sprintf("%s (%d)", e.Title, e.Year)
}

// FormatEpisodeLabel formats season/episode numbers into the canonical
// zero-padded form, e.g. (1, 4) -> "S01E04".
func FormatEpisodeLabel(season, number int) string {
	return fmt.Sprintf("S%02dE%02d", season, number)
}
