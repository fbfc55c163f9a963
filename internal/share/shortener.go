package share

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"resty.dev/v3"
)

// DefaultShortenerURL is the TinyURL creation endpoint.
const DefaultShortenerURL = "https://tinyurl.com/api-create.php"

// ErrBadShortURL is returned when the shortener answers with something
// that is not a usable link.
var ErrBadShortURL = errors.New("shortener returned no usable URL")

// Shortener turns a long share URL into a short one.
type Shortener interface {
	Shorten(ctx context.Context, longURL string) (string, error)
}

// TinyURL is a Shortener backed by the TinyURL plain-text API.
type TinyURL struct {
	client   *resty.Client
	endpoint string
}

// NewTinyURL configures a TinyURL client. An empty endpoint uses
// DefaultShortenerURL. Each Shorten is a single request bounded by timeout.
func NewTinyURL(endpoint string, timeout time.Duration) *TinyURL {
	if strings.TrimSpace(endpoint) == "" {
		endpoint = DefaultShortenerURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	client := resty.New().
		SetTimeout(timeout).
		SetHeader("Accept", "text/plain").
		SetHeader("User-Agent", "restock/1.0")

	return &TinyURL{client: client, endpoint: endpoint}
}

// Close releases idle connections.
func (t *TinyURL) Close() error {
	return t.client.Close()
}

// Shorten asks the API for a short link.
func (t *TinyURL) Shorten(ctx context.Context, longURL string) (string, error) {
	resp, err := t.client.R().
		SetContext(ctx).
		SetQueryParam("url", longURL).
		Get(t.endpoint)
	if err != nil {
		return "", fmt.Errorf("executing request: %w", err)
	}
	if !resp.IsSuccess() {
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode())
	}

	short := strings.TrimSpace(resp.String())
	if short == "" || strings.Contains(strings.ToLower(short), "error") {
		return "", ErrBadShortURL
	}
	return short, nil
}

// ShortenOrFallback returns the short link, or longURL when s is nil or the
// call fails for any reason.
func ShortenOrFallback(ctx context.Context, s Shortener, longURL string, logger *slog.Logger) string {
	if s == nil {
		return longURL
	}
	if logger == nil {
		logger = slog.Default()
	}

	short, err := s.Shorten(ctx, longURL)
	if err != nil {
		logger.Warn("url shortener failed, using long url", "error", err)
		return longURL
	}
	return short
}
