package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

const maxConcurrent = 4

// Client fetches thread JSON from Reddit's public endpoints. Reddit rejects
// requests with library-default user agents, so the UA is always set
// explicitly.
type Client struct {
	http      *http.Client
	userAgent string
}

// NewClient creates a client with the given user agent and request timeout.
func NewClient(userAgent string, timeout time.Duration) *Client {
	return &Client{
		http: &http.Client{
			Timeout: timeout,
		},
		userAgent: userAgent,
	}
}

// get fetches a URL and returns the raw response body.
func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d from %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response from %s: %w", url, err)
	}
	return body, nil
}

// GetThread fetches and parses one thread by permalink URL. The raw payload
// is returned alongside the parsed thread so callers can cache it.
func (c *Client) GetThread(ctx context.Context, rawURL string) (*Thread, []byte, error) {
	u, err := NormalizeThreadURL(rawURL)
	if err != nil {
		return nil, nil, err
	}
	payload, err := c.get(ctx, u)
	if err != nil {
		return nil, nil, err
	}
	t, err := ParseThread(payload)
	if err != nil {
		return nil, nil, err
	}
	return t, payload, nil
}

// BatchGetThreads fetches several threads concurrently with a concurrency
// limit. Results and errors are positional: threads[i] is nil exactly when
// errs[i] is non-nil.
func (c *Client) BatchGetThreads(ctx context.Context, urls []string) ([]*Thread, []error) {
	threads := make([]*Thread, len(urls))
	errs := make([]error, len(urls))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrent)

	for i, u := range urls {
		i, u := i, u
		g.Go(func() error {
			t, _, err := c.GetThread(ctx, u)
			mu.Lock()
			threads[i], errs[i] = t, err
			mu.Unlock()
			// Individual failures are reported per slot, not fatally.
			return nil
		})
	}

	g.Wait()
	return threads, errs
}
