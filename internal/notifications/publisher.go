// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package notifications

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/senaicommunity/workspace-service/internal/logging"
	"github.com/senaicommunity/workspace-service/internal/monitoring"
	"github.com/senaicommunity/workspace-service/internal/tracing"
	"github.com/senaicommunity/workspace-service/internal/types"
)

// StreamAdder is the slice of the redis client used to publish; *redis.Client satisfies it.
type StreamAdder interface {
	XAdd(ctx context.Context, a *redis.XAddArgs) *redis.StringCmd
}

// Publisher appends notifications to a Redis stream consumed by the
// delivery service (persistence and websocket push live there).
type Publisher struct {
	client StreamAdder
	stream string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (p *Publisher) Notify(ctx context.Context, n types.Notification) error {
	ctx, span := p.tracer.Start(ctx, "notifications.Publisher.Notify")
	defer span.End()

	id, err := p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		Values: map[string]any{
			"recipient_id": n.RecipientID,
			"actor_id":     n.ActorID,
			"message":      n.Message,
			"category":     string(n.Category),
			"reference_id": n.ReferenceID,
		},
	}).Result()
	if err != nil {
		return fmt.Errorf("enqueue notification: %w", err)
	}

	p.logger.Debugw("enqueued notification", "entry_id", id, "category", n.Category, "recipient_id", n.RecipientID)
	return nil
}

func NewPublisher(client StreamAdder, stream string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Publisher {
	p := new(Publisher)

	p.client = client
	p.stream = stream

	p.tracer = tracer
	p.monitor = monitor
	p.logger = logger

	return p
}

// NoopPublisher drops notifications, used when Redis is disabled.
type NoopPublisher struct {
	logger logging.LoggerInterface
}

func (p *NoopPublisher) Notify(_ context.Context, n types.Notification) error {
	p.logger.Debugf("dropping %s notification for %s", n.Category, n.RecipientID)
	return nil
}

func NewNoopPublisher(logger logging.LoggerInterface) *NoopPublisher {
	return &NoopPublisher{logger: logger}
}
