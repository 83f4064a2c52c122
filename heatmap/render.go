package heatmap

import (
	"fmt"
	"sort"
	"time"

	"github.com/tsky/watchgrass/model"
	"github.com/tsky/watchgrass/stats"
)

// Cell geometry, matching the GitHub contribution graph.
const (
	cellSize = 11
	cellGap  = 3
	cellStep = cellSize + cellGap

	leftMargin  = 32 // weekday label gutter
	rightMargin = 16
	topPadding  = 16

	headerHeight = 64
	yearLabelH   = 22
	monthLabelH  = 16
	legendHeight = 28
	fontSize     = 11
)

// RenderOptions configures one render pass. The zero value renders the
// dark theme with the Sunday week start and heuristic font metrics.
type RenderOptions struct {
	Theme        Theme
	WeekStart    model.WeekStart
	Metrics      Metrics
	Scheme       string // "linear" (default) or "percentile"
	DisplayName  string
	Username     string
	NameGradient bool
	Avatar       string // pre-encoded data URI, empty for none
	FilterLabel  string // "movies", "shows" or "" for all
}

// metrics returns the configured Metrics or the heuristic fallback.
func (o RenderOptions) metrics() Metrics {
	if o.Metrics != nil {
		return o.Metrics
	}
	return HeuristicMetrics{}
}

// RenderYears renders one SVG document stacking one grid per requested
// year. Single-year rendering is the N=1 case of the same path. Years
// render independently: each has its own start date and grid, sharing
// only the color scale and vertical offsets.
//
// Output is byte-deterministic for identical inputs.
func RenderYears(entries []model.WatchEntry, years []int, opts RenderOptions) string {
	if opts.Theme.Name == "" {
		opts.Theme = Dark
	}
	if len(years) == 0 {
		years = yearsOf(entries)
	}
	years = append([]int(nil), years...)
	sort.Ints(years)

	grouped := stats.GroupByDate(entries)
	leveler := stats.NewLeveler(opts.Scheme, grouped)
	streak := stats.ComputeStreak(entries)

	grids := make([]*YearGrid, len(years))
	maxWeeks := 0
	for i, y := range years {
		grids[i] = LayoutYear(entries, y, opts.WeekStart)
		if grids[i].Weeks > maxWeeks {
			maxWeeks = grids[i].Weeks
		}
	}

	gridHeight := daysPerWeek*cellStep - cellGap
	blockHeight := yearLabelH + monthLabelH + gridHeight + 12
	width := leftMargin + maxWeeks*cellStep - cellGap + rightMargin
	height := topPadding + headerHeight + len(years)*blockHeight + legendHeight + topPadding

	doc := NewDoc(width, height)
	doc.Add(Style{CSS: stylesheet(opts.Theme)})
	if opts.NameGradient {
		doc.Add(Defs{Children: []Node{
			LinearGradient{ID: "name-gradient", From: opts.Theme.Gradient[0], To: opts.Theme.Gradient[1]},
		}})
	}
	doc.Add(Rect{W: float64(width), H: float64(height), Fill: opts.Theme.Background})

	doc.Add(renderHeader(entries, streak, opts)...)

	y := topPadding + headerHeight
	for i, g := range grids {
		yearEntries := filterYear(entries, years[i])
		yearStreak := stats.ComputeStreak(yearEntries)
		doc.Add(renderYearBlock(g, grouped, leveler, yearStreak, y, width, opts))
		y += blockHeight
	}

	doc.Add(renderLegend(width, y, opts.Theme)...)

	return doc.String()
}

// renderHeader draws the avatar, names and the totals line.
func renderHeader(entries []model.WatchEntry, streak stats.StreakResult, opts RenderOptions) []Node {
	var nodes []Node
	x := float64(leftMargin)
	if opts.Avatar != "" {
		nodes = append(nodes, Image{X: x, Y: topPadding, W: 40, H: 40, Href: opts.Avatar})
		x += 52
	}

	name := opts.DisplayName
	if name == "" {
		name = opts.Username
	}
	fill := opts.Theme.Text
	if opts.NameGradient {
		fill = "url(#name-gradient)"
	}
	nodes = append(nodes, Text{X: x, Y: topPadding + 18, Content: name, Class: "name", Fill: fill})
	if opts.Username != "" && opts.Username != name {
		nodes = append(nodes, Text{X: x, Y: topPadding + 34, Content: "@" + opts.Username, Class: "muted"})
	}

	movies, episodes := 0, 0
	for _, e := range entries {
		if e.Kind == model.KindMovie {
			movies++
		} else {
			episodes++
		}
	}
	totals := fmt.Sprintf("%d movies · %d episodes · %d days active · %d day streak",
		movies, episodes, stats.ComputeDaysActive(entries), streak.Length)
	if day, ok := busiestWeekday(entries); ok {
		totals += " · most on " + day
	}
	if opts.FilterLabel != "" {
		totals += " · " + opts.FilterLabel
	}
	nodes = append(nodes, Text{X: x, Y: topPadding + 50, Content: totals, Class: "muted"})
	return nodes
}

// busiestWeekday names the weekday with the most entries. The weekly
// distribution is Sunday-indexed; ties keep the earliest weekday.
func busiestWeekday(entries []model.WatchEntry) (string, bool) {
	if len(entries) == 0 {
		return "", false
	}
	dist := stats.ComputeWeeklyDistribution(entries)
	best := 0
	for i := 1; i < len(dist); i++ {
		if dist[i] > dist[best] {
			best = i
		}
	}
	return time.Weekday(best).String() + "s", true
}

// renderYearBlock draws the year label, month labels, weekday gutter and
// the day cells with their hover tooltips.
func renderYearBlock(g *YearGrid, grouped map[string][]model.WatchEntry, leveler stats.Leveler, streak stats.StreakResult, yOffset, docWidth int, opts RenderOptions) Node {
	block := &Group{Y: yOffset}

	block.Add(Text{X: leftMargin, Y: 14, Content: fmt.Sprintf("%d", g.Year), Class: "year"})

	for _, ml := range g.MonthLabels() {
		block.Add(Text{
			X:       float64(leftMargin + ml.Week*cellStep),
			Y:       yearLabelH + 10,
			Content: ml.Name,
			Class:   "muted",
		})
	}

	gridTop := yearLabelH + monthLabelH
	labels := opts.WeekStart.Labels()
	for _, row := range []int{1, 3, 5} {
		block.Add(Text{
			X:       leftMargin - 6,
			Y:       float64(gridTop + row*cellStep + cellSize - 2),
			Content: labels[row],
			Class:   "muted",
			Anchor:  "end",
		})
	}

	m := opts.metrics()
	for week := 0; week < g.Weeks; week++ {
		for row := 0; row < daysPerWeek; row++ {
			cell := g.Cell(row, week)
			if !cell.InYear {
				// outside the year: present for column alignment only
				continue
			}
			x := float64(leftMargin + week*cellStep)
			y := float64(gridTop + row*cellStep)

			rect := Rect{
				X: x, Y: y, W: cellSize, H: cellSize, Rx: 2,
				Fill:  opts.Theme.Levels[leveler.Level(cell.Count)],
				Class: "cell",
				Data: [][2]string{
					{"date", cell.Date.Format("2006-01-02")},
					{"count", fmt.Sprintf("%d", cell.Count)},
				},
			}
			if streak.Contains(cell.Date) {
				rect.Stroke = opts.Theme.Streak
				rect.Class = "cell streak"
			}

			if cell.Count == 0 {
				block.Add(rect)
				continue
			}

			day := &Group{Class: "day"}
			day.Add(rect)
			tip := BuildTooltip(cell.Date, grouped[cell.Date.Format("2006-01-02")], m)
			tipX := tip.ClampX(x+cellStep, docWidth)
			tipY := y + cellStep
			tipGroup := &Group{Class: "tooltip"}
			tipGroup.Add(tip.Nodes(tipX, tipY, opts.Theme)...)
			day.Add(tipGroup)
			block.Add(day)
		}
	}
	return block
}

// renderLegend draws the Less..More intensity key.
func renderLegend(width, y int, th Theme) []Node {
	x := float64(width - rightMargin - 5*cellStep - 70)
	nodes := []Node{
		Text{X: x, Y: float64(y + cellSize), Content: "Less", Class: "muted"},
	}
	x += 34
	for level := 0; level <= stats.MaxLevel; level++ {
		nodes = append(nodes, Rect{
			X: x, Y: float64(y), W: cellSize, H: cellSize, Rx: 2,
			Fill: th.Levels[level],
		})
		x += cellStep
	}
	nodes = append(nodes, Text{X: x + 4, Y: float64(y + cellSize), Content: "More", Class: "muted"})
	return nodes
}

// stylesheet emits the static CSS driving text styling and the
// CSS-only hover tooltips.
func stylesheet(th Theme) string {
	return fmt.Sprintf(
		".name{font:600 16px sans-serif}"+
			".year{font:600 13px sans-serif;fill:%s}"+
			".muted{font:%dpx sans-serif;fill:%s}"+
			".tip{font:%dpx sans-serif}"+
			".tip-head{font-weight:600}"+
			".tooltip{display:none}"+
			".day:hover .tooltip{display:block}",
		th.Text, fontSize, th.Muted, int(tooltipFontSize))
}

// yearsOf returns the distinct years present in entries, ascending.
func yearsOf(entries []model.WatchEntry) []int {
	seen := map[int]bool{}
	var years []int
	for _, e := range entries {
		y := e.Date.Year()
		if !seen[y] {
			seen[y] = true
			years = append(years, y)
		}
	}
	sort.Ints(years)
	return years
}

// filterYear returns the entries whose local day falls in year.
func filterYear(entries []model.WatchEntry, year int) []model.WatchEntry {
	var out []model.WatchEntry
	for _, e := range entries {
		if e.Date.Year() == year {
			out = append(out, e)
		}
	}
	return out
}
