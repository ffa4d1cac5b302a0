package content

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/lixenwraith/wikijump/diag"
	"github.com/lixenwraith/wikijump/document"
)

// maxPageBytes caps a fetched article body
const maxPageBytes = 8 << 20

// retryableError marks failures worth another attempt
type retryableError struct {
	err error
}

func (e *retryableError) Error() string { return e.err.Error() }
func (e *retryableError) Unwrap() error { return e.err }

// IsRetryable checks if an error is worth retrying
func IsRetryable(err error) bool {
	var re *retryableError
	return errors.As(err, &re)
}

// WikiClient fetches wiki articles over HTTP and converts them to documents
type WikiClient struct {
	cfg  Config
	http *http.Client
	conv HTMLConverter
}

func NewWikiClient(cfg Config) *WikiClient {
	return &WikiClient{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
		conv: HTMLConverter{Subtitle: cfg.Subtitle},
	}
}

// ArticleURL maps an identifier to a URL
// Absolute URLs pass through, rooted paths join the base, names become /wiki/ paths
func (c *WikiClient) ArticleURL(id string) string {
	id = strings.TrimSpace(id)
	if strings.HasPrefix(id, "http://") || strings.HasPrefix(id, "https://") {
		return id
	}
	base := strings.TrimRight(c.cfg.WikiBase, "/")
	if strings.HasPrefix(id, "/") {
		return base + id
	}
	return base + "/wiki/" + url.PathEscape(strings.ReplaceAll(id, " ", "_"))
}

// Resolve fetches id, retrying transport errors and 5xx responses with jittered backoff
func (c *WikiClient) Resolve(ctx context.Context, id string) (*document.Document, error) {
	u := c.ArticleURL(id)

	var lastErr error
	for attempt := 0; attempt <= c.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			delay := c.backoff(attempt - 1)
			diag.Logger().Warn("retrying wiki fetch", "url", u, "attempt", attempt, "delay", delay, "error", lastErr)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}

		doc, err := c.fetch(ctx, u, id)
		if err == nil {
			return doc, nil
		}
		if !IsRetryable(err) {
			return nil, err
		}
		lastErr = err
	}
	return nil, fmt.Errorf("fetch %s: giving up after %d attempts: %w", u, c.cfg.MaxRetries+1, lastErr)
}

// backoff returns the delay before retry n (0-indexed) with up to 50% jitter
func (c *WikiClient) backoff(n int) time.Duration {
	base := min(c.cfg.BaseDelay<<uint(n), c.cfg.MaxDelay)
	if base <= 0 {
		return 0
	}
	jitter := time.Duration(rand.Int64N(int64(base)/2 + 1))
	return base + jitter
}

func (c *WikiClient) fetch(ctx context.Context, u, id string) (*document.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)
	req.Header.Set("Accept", "text/html")

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, &retryableError{fmt.Errorf("get %s: %w", u, err)}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return nil, &retryableError{fmt.Errorf("get %s: status %s", u, resp.Status)}
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("get %s: status %s", u, resp.Status)
	}

	doc, err := c.conv.Convert(io.LimitReader(resp.Body, maxPageBytes), strings.ReplaceAll(id, "_", " "))
	if err != nil {
		return nil, err
	}
	doc.Source = resp.Request.URL.String()
	dropFileLinks(doc)
	diag.Logger().Debug("fetched article", "url", doc.Source, "title", doc.Title, "blocks", len(doc.Blocks))
	return doc, nil
}

// dropFileLinks unlinks local file identifiers in remote pages, which must not reach the filesystem
func dropFileLinks(doc *document.Document) {
	for i := range doc.Blocks {
		runs := doc.Blocks[i].Runs
		for j := range runs {
			if strings.HasPrefix(strings.TrimSpace(runs[j].Link), FilePrefix) {
				runs[j].Link = ""
			}
		}
	}
}
