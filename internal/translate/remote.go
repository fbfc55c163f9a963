package translate

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"resty.dev/v3"
)

var ErrNoEndpoint = errors.New("remote translation endpoint not configured")

// Remote calls a LibreTranslate-compatible HTTP service.
type Remote struct {
	client *resty.Client
	apiKey string
	source string
	target string
}

type remoteRequest struct {
	Q      string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	Format string `json:"format"`
	APIKey string `json:"api_key,omitempty"`
}

type remoteResponse struct {
	TranslatedText string `json:"translatedText"`
	Error          string `json:"error"`
}

// NewRemote configures a client for endpoint, the service base URL.
func NewRemote(endpoint, apiKey string, timeout time.Duration) (*Remote, error) {
	endpoint = strings.TrimRight(strings.TrimSpace(endpoint), "/")
	if endpoint == "" {
		return nil, ErrNoEndpoint
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	client := resty.New().
		SetBaseURL(endpoint).
		SetTimeout(timeout).
		SetRetryCount(1).
		SetRetryWaitTime(200*time.Millisecond).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", "restock/1.0")

	return &Remote{client: client, apiKey: apiKey, source: "es", target: "fr"}, nil
}

// Close releases idle connections.
func (r *Remote) Close() error {
	return r.client.Close()
}

// Translate sends text to the service and returns its translation.
func (r *Remote) Translate(ctx context.Context, text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", nil
	}

	var out remoteResponse
	resp, err := r.client.R().
		SetContext(ctx).
		SetBody(remoteRequest{
			Q:      text,
			Source: r.source,
			Target: r.target,
			Format: "text",
			APIKey: r.apiKey,
		}).
		SetResult(&out).
		SetError(&out).
		Post("/translate")
	if err != nil {
		return "", fmt.Errorf("executing request: %w", err)
	}
	if resp.IsError() {
		if out.Error != "" {
			return "", fmt.Errorf("unexpected status %d: %s", resp.StatusCode(), out.Error)
		}
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode())
	}

	translated := strings.TrimSpace(out.TranslatedText)
	if translated == "" {
		return "", ErrEmptyResult
	}
	return translated, nil
}
