package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	tmdbenv "github.com/tahsin2627/wellplayer-scraper-backend/pkg/env/tmdb"
)

const (
	connectTimeout = 5 * time.Second
	requestTimeout = 30 * time.Second

	// Browser-like request headers. TMDB serves API clients fine, but some
	// fronting CDNs reject requests with an empty or Go-default User-Agent.
	userAgent      = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/125.0.0.0 Safari/537.36"
	acceptHeader   = "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,image/apng,*/*;q=0.8,application/signed-exchange;v=b3;q=0.7"
	acceptLanguage = "en-US,en;q=0.9"
	referer        = "https://www.google.com/"
)

// SearchProvider is the capability the search handler depends on: a query
// string in, an opaque JSON document or a failure out.
type SearchProvider interface {
	SearchMovies(ctx context.Context, query string) (json.RawMessage, error)
}

type Client struct {
	TMDBEnv *tmdbenv.Env

	client *http.Client
}

var _ SearchProvider = (*Client)(nil)

type Option func(*Client)

func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.SetHTTPClient(client)
	}
}

func NewClient(tmdbe *tmdbenv.Env, options ...Option) *Client {
	c := &Client{TMDBEnv: tmdbe}

	c.client = &http.Client{
		Timeout: requestTimeout,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout: connectTimeout,
			}).DialContext,
		},
	}

	for _, option := range options {
		option(c)
	}

	return c
}

func (c *Client) SetHTTPClient(client *http.Client) {
	c.client = client
}

func (c *Client) SearchMovies(ctx context.Context, query string) (json.RawMessage, error) {
	endpoint := fmt.Sprintf("%s/search/movie?api_key=%s&query=%s",
		c.TMDBEnv.BaseURL,
		url.QueryEscape(c.TMDBEnv.APIKey),
		url.QueryEscape(BaseQuery(query)),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("unable to create request to TMDB: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", acceptHeader)
	req.Header.Set("Accept-Language", acceptLanguage)
	req.Header.Set("Referer", referer)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("unable to send request to TMDB: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("unable to search TMDB: unexpected status: %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("unable to read TMDB response body: %w", err)
	}

	var document json.RawMessage
	if err := json.Unmarshal(body, &document); err != nil {
		return nil, fmt.Errorf("unable to unmarshal TMDB response: %w", err)
	}

	return document, nil
}
