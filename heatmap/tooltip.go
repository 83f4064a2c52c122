package heatmap

import (
	"fmt"
	"time"

	"github.com/tsky/watchgrass/model"
)

const (
	tooltipMinWidth   = 180.0
	tooltipFontSize   = 11.0
	tooltipLineHeight = 16.0
	tooltipPadding    = 8.0
	tooltipMaxLines   = 12 // header + up to 11 item lines
)

// Tooltip is the hover card content for one active day cell.
type Tooltip struct {
	Header string
	Lines  []string
	Width  float64
	Height float64
}

// BuildTooltip assembles the hover card for a day. The header reads
// "Monday, 5. February 2024: 3 items watched"; each entry contributes
// one bullet line. Days with more entries than fit are truncated with a
// trailing "… and N more" line.
func BuildTooltip(day time.Time, entries []model.WatchEntry, m Metrics) Tooltip {
	n := len(entries)
	noun := "items"
	if n == 1 {
		noun = "item"
	}
	header := fmt.Sprintf("%s, %d. %s %d: %d %s watched",
		day.Weekday(), day.Day(), day.Month(), day.Year(), n, noun)

	lines := make([]string, 0, n)
	for _, e := range entries {
		lines = append(lines, "• "+e.Display())
	}
	if len(lines) > tooltipMaxLines-1 {
		rest := len(lines) - (tooltipMaxLines - 2)
		lines = lines[:tooltipMaxLines-2]
		lines = append(lines, fmt.Sprintf("… and %d more", rest))
	}

	width := tooltipMinWidth
	if w := m.Width(header, tooltipFontSize) + 2*tooltipPadding; w > width {
		width = w
	}
	for _, l := range lines {
		if w := m.Width(l, tooltipFontSize) + 2*tooltipPadding; w > width {
			width = w
		}
	}

	height := float64(1+len(lines))*tooltipLineHeight + 2*tooltipPadding

	return Tooltip{Header: header, Lines: lines, Width: width, Height: height}
}

// ClampX shifts a tooltip's x position left so it never overflows the
// document's right edge.
func (t Tooltip) ClampX(x float64, docWidth int) float64 {
	if x+t.Width > float64(docWidth) {
		x = float64(docWidth) - t.Width
	}
	if x < 0 {
		x = 0
	}
	return x
}

// Nodes renders the tooltip primitives at the given origin.
func (t Tooltip) Nodes(x, y float64, th Theme) []Node {
	nodes := []Node{
		Rect{X: x, Y: y, W: t.Width, H: t.Height, Rx: 4, Fill: th.TooltipBG, Stroke: th.Border},
		Text{
			X:       x + tooltipPadding,
			Y:       y + tooltipPadding + tooltipFontSize,
			Content: t.Header,
			Class:   "tip tip-head",
			Fill:    th.TooltipFG,
		},
	}
	for i, line := range t.Lines {
		nodes = append(nodes, Text{
			X:       x + tooltipPadding,
			Y:       y + tooltipPadding + tooltipFontSize + float64(i+1)*tooltipLineHeight,
			Content: line,
			Class:   "tip",
			Fill:    th.TooltipFG,
		})
	}
	return nodes
}
