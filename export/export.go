// Package export writes rendered graphs to disk for one-shot runs.
package export

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/sourcegraph/conc/pool"
	"github.com/spf13/afero"

	"github.com/tsky/watchgrass/heatmap"
	"github.com/tsky/watchgrass/model"
)

// Job is one (years, theme) render variant.
type Job struct {
	Years []int
	Theme heatmap.Theme
	Opts  heatmap.RenderOptions
}

// Exporter renders variants concurrently and writes them through an
// abstract filesystem. Renders are pure, so the only shared state is
// the filesystem itself.
type Exporter struct {
	fs      afero.Fs
	dir     string
	workers int
	log     *slog.Logger
}

// NewExporter creates an Exporter writing into dir.
func NewExporter(fs afero.Fs, dir string, log *slog.Logger) *Exporter {
	return &Exporter{fs: fs, dir: dir, workers: 4, log: log}
}

// Run renders every job and writes one SVG file per variant, named
// <username>-<years>-<theme>.svg. The first error cancels remaining
// jobs.
func (e *Exporter) Run(ctx context.Context, entries []model.WatchEntry, jobs []Job) error {
	if err := e.fs.MkdirAll(e.dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	p := pool.New().WithErrors().WithContext(ctx).WithMaxGoroutines(e.workers)
	for _, job := range jobs {
		p.Go(func(ctx context.Context) error {
			opts := job.Opts
			opts.Theme = job.Theme
			svg := heatmap.RenderYears(entries, job.Years, opts)

			name := fileName(opts.Username, job.Years, job.Theme.Name)
			path := filepath.Join(e.dir, name)
			if err := afero.WriteFile(e.fs, path, []byte(svg), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}
			e.log.Info("wrote graph", "path", path, "bytes", len(svg))
			return nil
		})
	}
	return p.Wait()
}

// fileName builds the deterministic output file name for a variant.
func fileName(username string, years []int, theme string) string {
	name := username
	if name == "" {
		name = "watchgrass"
	}
	switch len(years) {
	case 0:
	case 1:
		name = fmt.Sprintf("%s-%d", name, years[0])
	default:
		name = fmt.Sprintf("%s-%d-%d", name, years[0], years[len(years)-1])
	}
	return name + "-" + theme + ".svg"
}
