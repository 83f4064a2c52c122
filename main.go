// Package main is the watchgrass entrypoint.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/afero"

	"github.com/tsky/watchgrass/api"
	"github.com/tsky/watchgrass/config"
	"github.com/tsky/watchgrass/export"
	"github.com/tsky/watchgrass/heatmap"
	"github.com/tsky/watchgrass/history"
	"github.com/tsky/watchgrass/logger"
	"github.com/tsky/watchgrass/model"
	"github.com/tsky/watchgrass/trakt"
)

func main() {
	log := logger.New()

	serve := flag.Bool("serve", false, "run as an HTTP server instead of writing files")
	user := flag.String("user", "", "Trakt username (overrides TRAKT_USERNAME)")
	yearsFlag := flag.String("years", "", "comma-separated target years (default: most active year)")
	bothThemes := flag.Bool("both-themes", false, "write dark and light variants")
	flag.Parse()

	cfg, err := config.Load(log)
	if err != nil {
		log.Error("config load failed", "err", err)
		os.Exit(1)
	}
	if *user != "" {
		cfg.Username = *user
	}
	if *yearsFlag != "" {
		years, err := model.ParseYearList(*yearsFlag)
		if err != nil {
			log.Error("invalid -years", "err", err)
			os.Exit(1)
		}
		cfg.Years = years
	}
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "err", err)
		os.Exit(1)
	}

	client := trakt.NewClient(cfg.ClientID, log)

	if *serve {
		server := api.NewServer(client, cfg, log)
		log.Info("listening", "port", cfg.Port)
		if err := server.Run(":" + cfg.Port); err != nil {
			log.Error("server stopped", "err", err)
			os.Exit(1)
		}
		return
	}

	if err := run(cfg, client, *bothThemes, log); err != nil {
		log.Error("export failed", "err", err)
		os.Exit(1)
	}
}

// run executes one fetch-and-export pass.
func run(cfg *config.Config, client *trakt.Client, bothThemes bool, log *slog.Logger) error {
	ctx := context.Background()

	username, err := model.NewUsername(cfg.Username)
	if err != nil {
		return err
	}

	fetchYear := 0
	if len(cfg.Years) == 1 {
		fetchYear = cfg.Years[0]
	}
	items, err := client.History(ctx, username, fetchYear)
	if err != nil {
		return fmt.Errorf("fetch history: %w", err)
	}
	if ratings, err := client.Ratings(ctx, username); err == nil {
		trakt.MergeRatings(items, ratings)
	} else {
		log.Warn("ratings unavailable, rendering without them", "err", err)
	}

	displayName := username.String()
	if profile, err := client.Profile(ctx, username); err == nil && profile.Name != "" {
		displayName = profile.Name
	}

	norm := history.NewNormalizer(cfg.Location, cfg.Filter, log)
	var entries []model.WatchEntry
	years := []int(cfg.Years)
	if len(years) > 1 {
		for _, y := range years {
			res := norm.Normalize(items, y)
			entries = append(entries, res.Entries...)
		}
	} else {
		res := norm.Normalize(items, fetchYear)
		entries = res.Entries
		years = []int{res.Year}
		log.Info("normalized history",
			"year", res.Year, "total", res.TotalCount,
			"movies", res.MovieCount, "episodes", res.EpisodeCount,
			"skipped", res.Skipped)
	}

	opts := heatmap.RenderOptions{
		WeekStart:    cfg.WeekStart,
		Metrics:      heatmap.NewFaceMetrics(),
		Scheme:       cfg.Scheme,
		DisplayName:  displayName,
		Username:     username.String(),
		NameGradient: cfg.NameGradient,
		FilterLabel:  filterLabel(cfg.Filter),
	}

	theme, ok := heatmap.ParseTheme(cfg.Theme)
	if !ok {
		log.Warn("unknown theme, using dark", "theme", cfg.Theme)
	}
	jobs := []export.Job{{Years: years, Theme: theme, Opts: opts}}
	if bothThemes {
		other := heatmap.Light
		if theme.Name == "light" {
			other = heatmap.Dark
		}
		jobs = append(jobs, export.Job{Years: years, Theme: other, Opts: opts})
	}

	exporter := export.NewExporter(afero.NewOsFs(), cfg.OutDir, log)
	return exporter.Run(ctx, entries, jobs)
}

// filterLabel returns the header annotation for a narrowed filter.
func filterLabel(f model.ContentFilter) string {
	if f == model.FilterAll {
		return ""
	}
	return f.String() + " only"
}
