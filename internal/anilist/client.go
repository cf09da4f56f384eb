// Package anilist is the gateway to the public AniList GraphQL API. It
// executes one logical query per call over plain HTTP POST, applies the
// single bounded retry the API's rate limiting asks for, and keeps a
// TTL-cached copy of the genre collection.
//
// Retry policy: a 429 response is retried exactly once after waiting the
// server-specified Retry-After interval (5s when unspecified). A second 429,
// or any other upstream failure, is terminal for that call and surfaces as
// ErrUnavailable tagged with the upstream message. Nothing else is retried.
package anilist

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/aniteca/go-anime-backend/internal/cache"
)

// DefaultBaseURL is the public AniList GraphQL endpoint.
const DefaultBaseURL = "https://graphql.anilist.co"

const (
	defaultTimeout   = 15 * time.Second
	defaultRetryWait = 5 * time.Second
	defaultGenreTTL  = 10 * time.Minute

	// maxAttempts bounds the retry loop: one try plus one retry.
	maxAttempts = 2
)

var (
	// ErrUnavailable marks an upstream communication failure (network error,
	// server error, or rate limiting that persisted past the single retry).
	ErrUnavailable = errors.New("anilist upstream unavailable")

	// ErrNotFound is returned when the requested media does not exist.
	ErrNotFound = errors.New("anilist media not found")
)

// sleepFunc waits for d or until ctx is done. Injectable for tests.
type sleepFunc func(ctx context.Context, d time.Duration) error

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithRetryWait overrides the fallback wait applied when a 429 response
// carries no Retry-After header.
func WithRetryWait(d time.Duration) Option {
	return func(c *Client) { c.retryWait = d }
}

// WithGenreTTL overrides the genre cache TTL.
func WithGenreTTL(ttl time.Duration) Option {
	return func(c *Client) { c.genreTTL = ttl }
}

// WithClock injects the time source used by the genre cache. For tests.
func WithClock(now func() time.Time) Option {
	return func(c *Client) { c.now = now }
}

// WithSleeper injects the wait function used between rate-limit retries.
// For tests.
func WithSleeper(sleep sleepFunc) Option {
	return func(c *Client) { c.sleep = sleep }
}

// Client talks to the AniList GraphQL API. Safe for concurrent use.
type Client struct {
	baseURL   string
	http      *http.Client
	retryWait time.Duration
	genreTTL  time.Duration
	now       func() time.Time
	sleep     sleepFunc

	genres *cache.Slot[[]string]
}

// New builds a Client for the given endpoint. An empty baseURL selects the
// public AniList API.
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:   baseURL,
		http:      &http.Client{Timeout: defaultTimeout},
		retryWait: defaultRetryWait,
		genreTTL:  defaultGenreTTL,
		now:       time.Now,
		sleep:     sleepCtx,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.genres = cache.NewSlot[[]string](c.genreTTL, cache.WithClock[[]string](c.now))
	return c
}

// gqlRequest is the JSON body of a GraphQL POST.
type gqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

// gqlError is a single entry of a GraphQL error array.
type gqlError struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// gqlResponse is the GraphQL response envelope.
type gqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []gqlError      `json:"errors"`
}

// execute posts a single GraphQL operation and decodes its data into out.
// op names the logical operation for metrics.
func (c *Client) execute(ctx context.Context, op, query string, vars map[string]any, out any) error {
	body, err := json.Marshal(gqlRequest{Query: query, Variables: vars})
	if err != nil {
		return fmt.Errorf("%w: encode request: %v", ErrUnavailable, err)
	}

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		status, payload, retryAfter, err := c.post(ctx, body)
		if err != nil {
			requestsTotal.WithLabelValues(op, outcomeError).Inc()
			return fmt.Errorf("%w: %v", ErrUnavailable, err)
		}

		if status == http.StatusTooManyRequests {
			lastErr = fmt.Errorf("%w: rate limited (429)", ErrUnavailable)
			if attempt < maxAttempts {
				retriesTotal.WithLabelValues(op).Inc()
				if err := c.sleep(ctx, retryAfter); err != nil {
					requestsTotal.WithLabelValues(op, outcomeError).Inc()
					return fmt.Errorf("%w: %v", ErrUnavailable, err)
				}
				continue
			}
			requestsTotal.WithLabelValues(op, outcomeRateLimited).Inc()
			return lastErr
		}

		if status == http.StatusNotFound {
			requestsTotal.WithLabelValues(op, outcomeNotFound).Inc()
			return ErrNotFound
		}

		var envelope gqlResponse
		if err := json.Unmarshal(payload, &envelope); err != nil {
			requestsTotal.WithLabelValues(op, outcomeError).Inc()
			return fmt.Errorf("%w: decode response: %v", ErrUnavailable, err)
		}
		if status >= 400 || len(envelope.Errors) > 0 {
			requestsTotal.WithLabelValues(op, outcomeError).Inc()
			return fmt.Errorf("%w: %s", ErrUnavailable, upstreamMessage(status, envelope.Errors))
		}
		if out != nil && len(envelope.Data) > 0 {
			if err := json.Unmarshal(envelope.Data, out); err != nil {
				requestsTotal.WithLabelValues(op, outcomeError).Inc()
				return fmt.Errorf("%w: decode data: %v", ErrUnavailable, err)
			}
		}
		requestsTotal.WithLabelValues(op, outcomeOK).Inc()
		return nil
	}
	return lastErr
}

// post performs one HTTP round trip and reads the body. retryAfter is only
// meaningful when the status is 429.
func (c *Client) post(ctx context.Context, body []byte) (status int, payload []byte, retryAfter time.Duration, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return 0, nil, 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, 0, err
	}
	defer resp.Body.Close()

	payload, err = io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return 0, nil, 0, err
	}

	retryAfter = c.retryWait
	if s := resp.Header.Get("Retry-After"); s != "" {
		if secs, perr := strconv.Atoi(s); perr == nil && secs >= 0 {
			retryAfter = time.Duration(secs) * time.Second
		}
	}
	return resp.StatusCode, payload, retryAfter, nil
}

// upstreamMessage condenses the upstream failure into one line.
func upstreamMessage(status int, errs []gqlError) string {
	if len(errs) > 0 && errs[0].Message != "" {
		return errs[0].Message
	}
	return "unexpected status " + strconv.Itoa(status)
}

// Popular fetches a page of the most popular anime.
func (c *Client) Popular(ctx context.Context, pageNum, perPage int) ([]Media, error) {
	var out struct {
		Page page `json:"Page"`
	}
	err := c.execute(ctx, "popular", queryPopular, map[string]any{"page": pageNum, "perPage": perPage}, &out)
	if err != nil {
		return nil, err
	}
	return ensureMedia(out.Page.Media), nil
}

// Airing fetches a page of currently releasing anime.
func (c *Client) Airing(ctx context.Context, pageNum, perPage int) ([]Media, error) {
	var out struct {
		Page page `json:"Page"`
	}
	err := c.execute(ctx, "airing", queryAiring, map[string]any{"page": pageNum, "perPage": perPage}, &out)
	if err != nil {
		return nil, err
	}
	return ensureMedia(out.Page.Media), nil
}

// ByGenre fetches a page of anime filtered by a genre name.
func (c *Client) ByGenre(ctx context.Context, genre string, pageNum, perPage int) ([]Media, error) {
	var out struct {
		Page page `json:"Page"`
	}
	err := c.execute(ctx, "by_genre", queryByGenre, map[string]any{
		"page": pageNum, "perPage": perPage, "genre": genre,
	}, &out)
	if err != nil {
		return nil, err
	}
	return ensureMedia(out.Page.Media), nil
}

// Search fetches a page of anime matching a free-text search term. The
// caller is responsible for minimum-length validation of the term.
func (c *Client) Search(ctx context.Context, term string, pageNum, perPage int) ([]Media, error) {
	var out struct {
		Page page `json:"Page"`
	}
	err := c.execute(ctx, "search", querySearch, map[string]any{
		"page": pageNum, "perPage": perPage, "search": term,
	}, &out)
	if err != nil {
		return nil, err
	}
	return ensureMedia(out.Page.Media), nil
}

// Details fetches the full record for one anime id. Returns ErrNotFound when
// the id does not exist upstream.
func (c *Client) Details(ctx context.Context, id int) (*Media, error) {
	var out struct {
		Media *Media `json:"Media"`
	}
	if err := c.execute(ctx, "details", queryDetails, map[string]any{"id": id}, &out); err != nil {
		return nil, err
	}
	if out.Media == nil {
		return nil, ErrNotFound
	}
	return out.Media, nil
}

// Genres returns the genre name collection, cached for the configured TTL.
// A failed refresh leaves any previous cached value untouched and propagates
// the error.
func (c *Client) Genres(ctx context.Context) ([]string, error) {
	return c.genres.Get(ctx, func(ctx context.Context) ([]string, error) {
		var out struct {
			GenreCollection []string `json:"GenreCollection"`
		}
		if err := c.execute(ctx, "genres", queryGenres, nil, &out); err != nil {
			return nil, err
		}
		if out.GenreCollection == nil {
			return []string{}, nil
		}
		return out.GenreCollection, nil
	})
}

// InvalidateGenres drops the cached genre list. Exposed for tests.
func (c *Client) InvalidateGenres() {
	c.genres.Invalidate()
}
