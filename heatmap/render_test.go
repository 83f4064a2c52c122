package heatmap

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsky/watchgrass/model"
)

func watchedMovie(day, title string, year int) model.WatchEntry {
	t, err := time.Parse("2006-01-02", day)
	if err != nil {
		panic(err)
	}
	return model.WatchEntry{Date: t, Title: title, Year: year, Kind: model.KindMovie}
}

func TestRenderYears_Deterministic(t *testing.T) {
	entries := []model.WatchEntry{
		watchedMovie("2024-01-01", "Heat", 1995),
		watchedMovie("2024-01-01", "Ronin", 1998),
		watchedMovie("2024-03-15", "Alien", 1979),
	}
	opts := RenderOptions{Username: "alice", Theme: Dark}

	a := RenderYears(entries, []int{2024}, opts)
	b := RenderYears(entries, []int{2024}, opts)
	assert.Equal(t, a, b)
}

func TestRenderYears_Escaping(t *testing.T) {
	entries := []model.WatchEntry{
		watchedMovie("2024-06-01", `<script>&"'`, 2020),
	}
	svg := RenderYears(entries, []int{2024}, RenderOptions{Username: "bob"})

	assert.Contains(t, svg, "&lt;script&gt;&amp;&quot;&apos;")
	assert.NotContains(t, svg, `<script>`)
}

func TestRenderYears_TooltipContent(t *testing.T) {
	entries := []model.WatchEntry{
		watchedMovie("2024-02-05", "Heat", 1995),
		{
			Date:         mustDay("2024-02-05"),
			Title:        "The Wire",
			Year:         2002,
			Kind:         model.KindEpisode,
			EpisodeLabel: "S01E04",
		},
	}
	svg := RenderYears(entries, []int{2024}, RenderOptions{})

	// 2024-02-05 is a Monday
	assert.Contains(t, svg, "Monday, 5. February 2024: 2 items watched")
	assert.Contains(t, svg, "• Heat (1995)")
	assert.Contains(t, svg, "• The Wire S01E04 (2002)")
}

func TestRenderYears_TooltipSingular(t *testing.T) {
	entries := []model.WatchEntry{watchedMovie("2024-02-06", "Heat", 1995)}
	svg := RenderYears(entries, []int{2024}, RenderOptions{})
	assert.Contains(t, svg, "Tuesday, 6. February 2024: 1 item watched")
}

func TestRenderYears_MultiYearStacksIndependently(t *testing.T) {
	entries := []model.WatchEntry{
		watchedMovie("2023-06-01", "A", 2000),
		watchedMovie("2024-06-01", "B", 2001),
	}
	svg := RenderYears(entries, []int{2023, 2024}, RenderOptions{})

	assert.Contains(t, svg, ">2023</text>")
	assert.Contains(t, svg, ">2024</text>")
	assert.Contains(t, svg, `data-date="2023-06-01"`)
	assert.Contains(t, svg, `data-date="2024-06-01"`)
}

func TestRenderYears_EmptyYearRendersZeroGrid(t *testing.T) {
	svg := RenderYears(nil, []int{2024}, RenderOptions{Username: "carol"})

	assert.Contains(t, svg, "<svg")
	assert.Contains(t, svg, "0 movies · 0 episodes · 0 days active · 0 day streak")
	assert.Contains(t, svg, `data-date="2024-01-01"`)
	// nothing outside the year leaks into the visible grid
	assert.NotContains(t, svg, `data-date="2023-12-31"`)
}

func TestRenderYears_UnknownThemeZeroValueFallsBackToDark(t *testing.T) {
	theme, ok := ParseTheme("solarized")
	assert.False(t, ok)
	assert.Equal(t, "dark", theme.Name)

	svg := RenderYears(nil, []int{2024}, RenderOptions{Theme: theme})
	assert.Contains(t, svg, Dark.Background)
}

func TestRenderYears_StreakMarker(t *testing.T) {
	entries := []model.WatchEntry{
		watchedMovie("2024-04-01", "A", 2000),
		watchedMovie("2024-04-02", "B", 2000),
		watchedMovie("2024-04-03", "C", 2000),
	}
	svg := RenderYears(entries, []int{2024}, RenderOptions{})

	require.Contains(t, svg, `class="cell streak"`)
	assert.Equal(t, 3, strings.Count(svg, `class="cell streak"`))
	assert.Contains(t, svg, Dark.Streak)
}

func TestRenderYears_HeaderTotals(t *testing.T) {
	entries := []model.WatchEntry{
		watchedMovie("2024-01-01", "A", 2000),
		watchedMovie("2024-01-02", "B", 2000),
		{
			Date:         mustDay("2024-01-02"),
			Title:        "Show",
			Year:         2001,
			Kind:         model.KindEpisode,
			EpisodeLabel: "S01E01",
		},
	}
	svg := RenderYears(entries, []int{2024}, RenderOptions{
		DisplayName: "Alice Example",
		Username:    "alice",
	})

	assert.Contains(t, svg, "Alice Example")
	assert.Contains(t, svg, "@alice")
	assert.Contains(t, svg, "2 movies · 1 episodes · 2 days active · 2 day streak")
}

func TestRenderYears_NameGradient(t *testing.T) {
	entries := []model.WatchEntry{watchedMovie("2024-01-01", "A", 2000)}

	plain := RenderYears(entries, []int{2024}, RenderOptions{Username: "a"})
	assert.NotContains(t, plain, "linearGradient")

	fancy := RenderYears(entries, []int{2024}, RenderOptions{Username: "a", NameGradient: true})
	assert.Contains(t, fancy, `<linearGradient id="name-gradient"`)
	assert.Contains(t, fancy, `fill="url(#name-gradient)"`)
}

func TestRenderYears_AvatarEmbedded(t *testing.T) {
	entries := []model.WatchEntry{watchedMovie("2024-01-01", "A", 2000)}
	svg := RenderYears(entries, []int{2024}, RenderOptions{
		Username: "a",
		Avatar:   "data:image/png;base64,AAAA",
	})
	assert.Contains(t, svg, `href="data:image/png;base64,AAAA"`)
}

func TestRenderYears_BusiestWeekday(t *testing.T) {
	entries := []model.WatchEntry{
		watchedMovie("2024-03-10", "A", 2000), // Sunday
		watchedMovie("2024-03-11", "B", 2000), // Monday
		watchedMovie("2024-03-18", "C", 2000), // Monday
	}
	svg := RenderYears(entries, []int{2024}, RenderOptions{})
	assert.Contains(t, svg, "most on Mondays")
}

func mustDay(day string) time.Time {
	t, err := time.Parse("2006-01-02", day)
	if err != nil {
		panic(err)
	}
	return t
}
