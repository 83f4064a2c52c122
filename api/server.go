package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tsky/watchgrass/config"
	"github.com/tsky/watchgrass/heatmap"
	"github.com/tsky/watchgrass/history"
	"github.com/tsky/watchgrass/model"
	"github.com/tsky/watchgrass/trakt"
)

// Fetcher is the slice of the Trakt client the server needs. Tests
// substitute a stub.
type Fetcher interface {
	History(ctx context.Context, username *model.Username, year int) ([]trakt.HistoryItem, error)
	Profile(ctx context.Context, username *model.Username) (*trakt.User, error)
}

// Server serves per-user watch graphs over HTTP.
type Server struct {
	engine  *gin.Engine
	fetcher Fetcher
	cfg     *config.Config
	metrics heatmap.Metrics
	log     *slog.Logger
}

// NewServer wires the router. The metrics handle is created once and
// shared by all render passes; renders are pure so this is safe under
// concurrent requests.
func NewServer(fetcher Fetcher, cfg *config.Config, log *slog.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)
	s := &Server{
		engine:  gin.New(),
		fetcher: fetcher,
		cfg:     cfg,
		metrics: heatmap.NewFaceMetrics(),
		log:     log,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.engine.Use(gin.Recovery(), requestID(), requestLogger(s.log))
	s.engine.GET("/healthz", s.handleHealth)
	s.engine.GET("/u/:username/graph.svg", s.handleGraph)
	s.engine.GET("/u/:username/graph", s.handleGraph)
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.engine.ServeHTTP(w, r)
}

// Run starts the server on the given address.
func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// handleGraph fetches a user's history and responds with the rendered
// SVG. Query parameters: year (repeatable via comma list), theme,
// week_start, filter, scheme, gradient.
func (s *Server) handleGraph(c *gin.Context) {
	username, err := model.NewUsername(c.Param("username"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	years, err := model.ParseYearList(c.Query("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	theme, ok := heatmap.ParseTheme(c.DefaultQuery("theme", s.cfg.Theme))
	if !ok {
		s.log.Warn("unknown theme, using dark", "id", c.GetString("request_id"))
	}
	weekStart := s.cfg.WeekStart
	if q := c.Query("week_start"); q != "" {
		weekStart, ok = model.ParseWeekStart(q)
		if !ok {
			s.log.Warn("unknown week start, using sunday", "id", c.GetString("request_id"))
		}
	}
	filter := s.cfg.Filter
	if q := c.Query("filter"); q != "" {
		filter, _ = model.ParseContentFilter(q)
	}

	fetchYear := 0
	if len(years) == 1 {
		fetchYear = years[0]
	}
	items, err := s.fetcher.History(c.Request.Context(), username, fetchYear)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		s.log.Error("history fetch failed", "err", err, "id", c.GetString("request_id"))
		c.JSON(http.StatusBadGateway, gin.H{"error": "upstream fetch failed"})
		return
	}

	displayName := username.String()
	if profile, err := s.fetcher.Profile(c.Request.Context(), username); err == nil && profile.Name != "" {
		displayName = profile.Name
	}
	// profile fetch failures degrade to the username, never to an error

	norm := history.NewNormalizer(s.cfg.Location, filter, s.log)

	var entries []model.WatchEntry
	if len(years) > 1 {
		for _, y := range years {
			res := norm.Normalize(items, y)
			entries = append(entries, res.Entries...)
		}
	} else {
		res := norm.Normalize(items, fetchYear)
		entries = res.Entries
		years = model.YearList{res.Year}
	}

	svg := heatmap.RenderYears(entries, years, heatmap.RenderOptions{
		Theme:        theme,
		WeekStart:    weekStart,
		Metrics:      s.metrics,
		Scheme:       c.DefaultQuery("scheme", s.cfg.Scheme),
		DisplayName:  displayName,
		Username:     username.String(),
		NameGradient: c.Query("gradient") == "1" || s.cfg.NameGradient,
		FilterLabel:  filterLabel(filter),
	})

	c.Header("Cache-Control", "public, max-age=3600")
	c.Data(http.StatusOK, "image/svg+xml; charset=utf-8", []byte(svg))
}

// filterLabel returns the header annotation for a narrowed filter.
func filterLabel(f model.ContentFilter) string {
	if f == model.FilterAll {
		return ""
	}
	return f.String() + " only"
}
