// Package trakt implements a minimal client for the Trakt.tv v2 API.
// Only the read-only endpoints needed to draw a watch graph are covered.
package trakt

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/tsky/watchgrass/model"
)

const (
	// DefaultBaseURL is the public Trakt API endpoint.
	DefaultBaseURL = "https://api.trakt.tv"

	// pageLimit is the per-page item count requested from the API.
	pageLimit = 100

	apiVersion = "2"
)

// Client talks to the Trakt API. The zero value is not usable; construct
// with NewClient.
type Client struct {
	baseURL    string
	clientID   string
	httpClient *http.Client
	pageDelay  time.Duration
	log        *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint, for tests.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpClient = h }
}

// WithPageDelay sets the fixed pause between history pages.
func WithPageDelay(d time.Duration) Option {
	return func(c *Client) { c.pageDelay = d }
}

// NewClient creates a Trakt client authenticating with the given
// application client ID.
func NewClient(clientID string, log *slog.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		clientID:   clientID,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		pageDelay:  200 * time.Millisecond,
		log:        log,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// History fetches the complete watch history of a user for one calendar
// year, following pagination with a fixed delay between pages. A zero
// year fetches the full history.
func (c *Client) History(ctx context.Context, username *model.Username, year int) ([]HistoryItem, error) {
	var items []HistoryItem
	page := 1
	for {
		url := fmt.Sprintf("%s/users/%s/history?page=%d&limit=%d", c.baseURL, username, page, pageLimit)
		if year != 0 {
			startAt := fmt.Sprintf("%d-01-01T00:00:00.000Z", year)
			endAt := fmt.Sprintf("%d-12-31T23:59:59.000Z", year)
			url += "&start_at=" + startAt + "&end_at=" + endAt
		}

		var pageItems []HistoryItem
		pageCount, err := c.getJSON(ctx, url, &pageItems)
		if err != nil {
			return nil, fmt.Errorf("fetch history page %d: %w", page, err)
		}
		items = append(items, pageItems...)

		c.log.Debug("fetched history page",
			"page", page, "pages", pageCount, "items", len(pageItems))

		if page >= pageCount || len(pageItems) == 0 {
			break
		}
		page++

		// fixed inter-page pause to stay under the API rate limit
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(c.pageDelay):
		}
	}
	return items, nil
}

// Ratings fetches all of a user's ratings and returns them keyed by
// RatingKey for merging into history items.
func (c *Client) Ratings(ctx context.Context, username *model.Username) (map[string]int, error) {
	url := fmt.Sprintf("%s/users/%s/ratings", c.baseURL, username)
	var rated []RatingItem
	if _, err := c.getJSON(ctx, url, &rated); err != nil {
		return nil, fmt.Errorf("fetch ratings: %w", err)
	}
	ratings := make(map[string]int, len(rated))
	for _, r := range rated {
		key := ratingKey(r.Type, r.Movie, r.Episode)
		if key != "" {
			ratings[key] = r.Rating
		}
	}
	return ratings, nil
}

// Profile fetches the public profile of a user.
func (c *Client) Profile(ctx context.Context, username *model.Username) (*User, error) {
	url := fmt.Sprintf("%s/users/%s?extended=full", c.baseURL, username)
	var u User
	if _, err := c.getJSON(ctx, url, &u); err != nil {
		return nil, fmt.Errorf("fetch profile: %w", err)
	}
	return &u, nil
}

// MergeRatings annotates history items in place with ratings obtained
// from Ratings. Items without a matching rating are left at 0.
func MergeRatings(items []HistoryItem, ratings map[string]int) {
	for i := range items {
		key := ratingKey(items[i].Type, items[i].Movie, items[i].Episode)
		if r, ok := ratings[key]; ok {
			items[i].Rating = r
		}
	}
}

// ratingKey builds the identity key joining history and rating entries.
// Trakt IDs are stable across both endpoints.
func ratingKey(typ string, m *Movie, e *Episode) string {
	switch {
	case typ == "movie" && m != nil:
		return "movie:" + strconv.FormatInt(m.IDs.Trakt, 10)
	case typ == "episode" && e != nil:
		return "episode:" + strconv.FormatInt(e.IDs.Trakt, 10)
	default:
		return ""
	}
}

// getJSON performs an authenticated GET and decodes the JSON body into
// out. It returns the X-Pagination-Page-Count header value (1 when the
// header is absent).
func (c *Client) getJSON(ctx context.Context, url string, out any) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("trakt-api-version", apiVersion)
	req.Header.Set("trakt-api-key", c.clientID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return 0, model.ErrUserNotFound
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return 0, fmt.Errorf("trakt api: unexpected status %d: %s", resp.StatusCode, body)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return 0, fmt.Errorf("decode response: %w", err)
	}

	pageCount := 1
	if h := resp.Header.Get("X-Pagination-Page-Count"); h != "" {
		if n, err := strconv.Atoi(h); err == nil && n > 0 {
			pageCount = n
		}
	}
	return pageCount, nil
}
