package heatmap

// Theme is an immutable palette for the rendered document. Themes are a
// closed set; ParseTheme falls back to Dark for unknown names.
type Theme struct {
	Name       string
	Background string
	Text       string
	Muted      string
	Border     string
	TooltipBG  string
	TooltipFG  string
	Streak     string
	Gradient   [2]string // name gradient stops
	Levels     [5]string // intensity levels 0..4
}

// Dark is the default theme.
var Dark = Theme{
	Name:       "dark",
	Background: "#0d1117",
	Text:       "#e6edf3",
	Muted:      "#8b949e",
	Border:     "#30363d",
	TooltipBG:  "#161b22",
	TooltipFG:  "#e6edf3",
	Streak:     "#f78166",
	Gradient:   [2]string{"#ff7b72", "#d2a8ff"},
	Levels: [5]string{
		"#161b22", "#0e4429", "#006d32", "#26a641", "#39d353",
	},
}

// Light mirrors GitHub's light contribution palette.
var Light = Theme{
	Name:       "light",
	Background: "#ffffff",
	Text:       "#1f2328",
	Muted:      "#59636e",
	Border:     "#d1d9e0",
	TooltipBG:  "#25292e",
	TooltipFG:  "#ffffff",
	Streak:     "#fb8f44",
	Gradient:   [2]string{"#cf222e", "#8250df"},
	Levels: [5]string{
		"#ebedf0", "#9be9a8", "#40c463", "#30a14e", "#216e39",
	},
}

// ParseTheme resolves a theme name. Unknown names fall back to Dark; the
// second return reports whether the name was recognized.
func ParseTheme(name string) (Theme, bool) {
	switch name {
	case "", "dark":
		return Dark, true
	case "light":
		return Light, true
	default:
		return Dark, false
	}
}
