// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package media

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/senaicommunity/workspace-service/internal/logging"
	"github.com/senaicommunity/workspace-service/internal/monitoring"
	"github.com/senaicommunity/workspace-service/internal/tracing"
)

var ErrNotConfigured = errors.New("media service not configured")

type uploadResponse struct {
	URL string `json:"url"`
}

// Client talks to the media service that owns binary uploads.
type Client struct {
	baseURL string
	http    *http.Client

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Upload stores data and returns the opaque URL the media service assigned.
func (c *Client) Upload(ctx context.Context, filename, contentType string, data []byte) (string, error) {
	ctx, span := c.tracer.Start(ctx, "media.Client.Upload")
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/media", bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to build upload request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("X-File-Name", filename)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("media service error (status %d): %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	out := new(uploadResponse)
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return "", fmt.Errorf("failed to decode upload response: %w", err)
	}
	if out.URL == "" {
		return "", fmt.Errorf("media service returned an empty url")
	}

	return out.URL, nil
}

// Delete removes a previously uploaded object; a missing object is not an error.
func (c *Client) Delete(ctx context.Context, objectURL string) error {
	ctx, span := c.tracer.Start(ctx, "media.Client.Delete")
	defer span.End()

	endpoint := c.baseURL + "/media?url=" + url.QueryEscape(objectURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build delete request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("delete request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest && resp.StatusCode != http.StatusNotFound {
		return fmt.Errorf("media service error (status %d)", resp.StatusCode)
	}

	return nil
}

func NewClient(baseURL string, timeout time.Duration, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Client {
	c := new(Client)

	c.baseURL = strings.TrimSuffix(baseURL, "/")
	c.http = &http.Client{
		Timeout:   timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}

	c.tracer = tracer
	c.monitor = monitor
	c.logger = logger

	return c
}

// NoopClient is used when no media service is configured: uploads fail and
// deletes are ignored.
type NoopClient struct{}

func (NoopClient) Upload(context.Context, string, string, []byte) (string, error) {
	return "", ErrNotConfigured
}

func (NoopClient) Delete(context.Context, string) error {
	return nil
}
