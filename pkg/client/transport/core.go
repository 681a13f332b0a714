package transport

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
)

type Config struct {
	BaseURL string
	Headers http.Header
}

// Core sends requests against one base URL with a fixed header set.
// It holds no mutable state and is safe for concurrent use.
type Core struct {
	client  *http.Client
	logger  *slog.Logger
	baseURL string
	headers http.Header
}

func NewCore(httpClient *http.Client, cfg Config, log *slog.Logger) *Core {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	return &Core{
		client:  httpClient,
		logger:  log,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		headers: cfg.Headers.Clone(),
	}
}

// BuildURL joins the base URL, path and encoded query.
func (c *Core) BuildURL(path string, query url.Values) string {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// Do sends one request and returns the response body as received.
// A non-2xx status yields *APIError.
func (c *Core) Do(
	ctx context.Context,
	method, path string,
	query url.Values,
	body Body,
) (json.RawMessage, error) {
	var (
		reader      io.Reader
		contentType string
	)
	if body != nil {
		var err error
		reader, contentType, err = body.Encode()
		if err != nil {
			return nil, fmt.Errorf("error encoding request body for %s %s: %w", method, path, err)
		}
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.BuildURL(path, query), reader)
	if err != nil {
		return nil, fmt.Errorf("error creating new request for %s %s: %w", method, path, err)
	}

	for key, values := range c.headers {
		for _, v := range values {
			httpReq.Header.Add(key, v)
		}
	}
	httpReq.Header.Set("Accept", "application/json")
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}

	res, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("error doing request for %s %s: %w", method, path, err)
	}

	defer func() {
		if err = res.Body.Close(); err != nil {
			c.logger.ErrorContext(ctx,
				"error closing response body",
				slog.String("method", method),
				slog.String("path", path),
				slog.Any("error", err),
			)
		}
	}()

	c.logger.DebugContext(ctx, "remote call",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", res.StatusCode),
	)

	respBody, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response body for %s %s: %w", method, path, err)
	}

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return nil, newAPIError(res, respBody)
	}

	return respBody, nil
}

// PathEscape escapes a caller-supplied path segment.
func PathEscape(segment string) string {
	return url.PathEscape(segment)
}
