// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	httptypes "github.com/senaicommunity/workspace-service/internal/http/types"
	"github.com/senaicommunity/workspace-service/internal/identity"
)

// apiClient talks to the workspace JSON API on behalf of --user-id.
type apiClient struct {
	endpoint string
	userID   string
	client   *http.Client
}

func getClient() *apiClient {
	endpoint := httpEndpoint
	if !strings.HasPrefix(endpoint, "http") {
		endpoint = "http://" + endpoint
	}

	return &apiClient{
		endpoint: strings.TrimSuffix(endpoint, "/"),
		userID:   userID,
		client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// do sends in as JSON and decodes the data field of the response envelope into out.
func (c *apiClient) do(ctx context.Context, method, path string, in, out interface{}) error {
	var body io.Reader = http.NoBody
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.userID != "" {
		req.Header.Set(identity.HeaderName, c.userID)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	envelope := httptypes.Response{}
	if out != nil {
		envelope.Data = out
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("failed to decode response (status %d): %w", resp.StatusCode, err)
	}

	if resp.StatusCode >= 400 {
		return fmt.Errorf("api error (status %d, %s): %s", resp.StatusCode, envelope.Kind, envelope.Message)
	}

	return nil
}
