// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package kratos

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	ory "github.com/ory/client-go"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/senaicommunity/workspace-service/internal/logging"
	"github.com/senaicommunity/workspace-service/internal/monitoring"
	"github.com/senaicommunity/workspace-service/internal/tracing"
	"github.com/senaicommunity/workspace-service/internal/types"
)

// ErrIdentityNotFound is returned when Kratos has no identity with the requested id.
var ErrIdentityNotFound = errors.New("identity not found")

type ClientInterface interface {
	GetUser(ctx context.Context, id string) (*types.User, error)
}

var _ ClientInterface = (*Client)(nil)

// Client resolves user ids against the Kratos admin API.
type Client struct {
	client  *ory.APIClient
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// NewClient builds a Kratos admin client; every request is bounded by timeout.
func NewClient(kratosAdminURL string, timeout time.Duration, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Client {
	conf := ory.NewConfiguration()
	conf.Servers = ory.ServerConfigurations{{URL: kratosAdminURL}}
	conf.HTTPClient = &http.Client{
		Timeout:   timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
	return &Client{
		client:  ory.NewAPIClient(conf),
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (c *Client) GetUser(ctx context.Context, id string) (*types.User, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.GetUser")
	defer span.End()

	identity, r, err := c.client.IdentityAPI.GetIdentity(ctx, id).Execute()
	if err != nil {
		if r != nil && r.StatusCode == http.StatusNotFound {
			return nil, ErrIdentityNotFound
		}
		c.setAvailability(r)
		return nil, fmt.Errorf("failed to get identity: %w", err)
	}
	c.setAvailability(r)

	user := &types.User{ID: identity.Id}
	if traits, ok := identity.Traits.(map[string]interface{}); ok {
		user.Email, _ = traits["email"].(string)
		user.Name = displayName(traits["name"])
	}

	return user, nil
}

// setAvailability marks Kratos down only when no response came back or the
// server itself failed.
func (c *Client) setAvailability(r *http.Response) {
	up := 1.0
	if r == nil || r.StatusCode >= http.StatusInternalServerError {
		up = 0
	}
	if err := c.monitor.SetDependencyAvailability(map[string]string{"component": "kratos"}, up); err != nil {
		c.logger.Debugf("failed to record kratos availability: %v", err)
	}
}

// displayName accepts both a flat "name" trait and the {first, last} shape.
func displayName(v interface{}) string {
	switch n := v.(type) {
	case string:
		return n
	case map[string]interface{}:
		first, _ := n["first"].(string)
		last, _ := n["last"].(string)
		return strings.TrimSpace(first + " " + last)
	}
	return ""
}
