package quora

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	maxAttempts    = 3
	retryBaseDelay = time.Second * 2
	requestTimeout = time.Second * 30
	maxRawDataLen  = 1000
)

// Client performs one logical call against the upstream scraping API
// per Execute, translating every transport and application outcome
// into a Result. Transport failures are retried with a linear backoff,
// everything else returns immediately.
type Client struct {
	http  *resty.Client
	sleep func(time.Duration)
}

func NewClient(cfg Config) *Client {
	client := resty.New()
	client.SetBaseURL("https://" + cfg.Host)
	client.SetTimeout(requestTimeout)
	// credentials only ever live in the client headers, they are
	// never part of a log line
	client.SetHeaders(map[string]string{
		"content-type":    "application/json",
		"x-rapidapi-host": cfg.Host,
		"x-rapidapi-key":  cfg.Key,
	})

	return &Client{
		http:  client,
		sleep: time.Sleep,
	}
}

func (c *Client) Execute(ctx context.Context, method, endpoint string, params Params) Result {
	path := endpoint
	if method == http.MethodGet && len(params) > 0 {
		path = endpoint + "?" + params.Encode()
	}

	slog.InfoContext(ctx, "api request", "method", method, "endpoint", path)

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		res, err := c.http.R().
			SetContext(ctx).
			Execute(method, path)
		if err == nil {
			return c.classify(ctx, method, path, res)
		}

		slog.ErrorContext(
			ctx, "request error",
			"method", method,
			"endpoint", path,
			"err", err,
		)

		if attempt == maxAttempts {
			return errorResult(
				http.StatusInternalServerError,
				fmt.Sprintf("request failed after %d attempts", maxAttempts),
				map[string]string{"error": err.Error()},
			)
		}

		wait := retryBaseDelay * time.Duration(attempt)
		slog.InfoContext(
			ctx, "retrying",
			"wait", wait,
			"attempt", attempt,
			"max_attempts", maxAttempts,
		)
		c.sleep(wait)
	}

	// unreachable, the final attempt always returns
	return errorResult(http.StatusInternalServerError, "unexpected error in api request", nil)
}

func (c *Client) classify(ctx context.Context, method, path string, res *resty.Response) Result {
	status := res.StatusCode()
	body := res.Body()

	slog.InfoContext(
		ctx, "api response",
		"method", method,
		"endpoint", path,
		"status", status,
	)

	if len(body) == 0 {
		slog.WarnContext(ctx, "empty response", "method", method, "endpoint", path)
		return errorResult(status, "Empty response from API", nil)
	}

	var parsed any
	err := json.Unmarshal(body, &parsed)
	if err != nil {
		slog.ErrorContext(
			ctx, "json decode error",
			"method", method,
			"endpoint", path,
			"err", err,
		)
		raw := string(body)
		if len(raw) > maxRawDataLen {
			raw = raw[:maxRawDataLen]
		}
		return errorResult(status, "Failed to decode JSON response", DecodeErrorDetails{
			Error:   err.Error(),
			RawData: raw,
		})
	}

	if status >= 400 {
		message := "Unknown API error"
		if obj, ok := parsed.(map[string]any); ok {
			if m, ok := obj["message"].(string); ok {
				message = m
			}
		}
		slog.ErrorContext(
			ctx, "api error",
			"method", method,
			"endpoint", path,
			"status", status,
			"message", message,
		)
		return errorResult(status, message, parsed)
	}

	return successResult(status, parsed)
}
