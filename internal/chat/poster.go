// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package chat

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/senaicommunity/workspace-service/internal/logging"
	"github.com/senaicommunity/workspace-service/internal/monitoring"
	"github.com/senaicommunity/workspace-service/internal/tracing"
)

// systemAuthor marks entries the chat service renders as system messages.
const systemAuthor = "system"

type StreamAdder interface {
	XAdd(ctx context.Context, a *redis.XAddArgs) *redis.StringCmd
}

// Poster appends system-authored messages to a workspace chat through a Redis stream.
type Poster struct {
	client StreamAdder
	stream string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (p *Poster) Post(ctx context.Context, workspaceID, text string) error {
	ctx, span := p.tracer.Start(ctx, "chat.Poster.Post")
	defer span.End()

	err := p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		Values: map[string]any{
			"workspace_id": workspaceID,
			"author":       systemAuthor,
			"text":         text,
		},
	}).Err()
	if err != nil {
		return fmt.Errorf("post system message: %w", err)
	}

	return nil
}

func NewPoster(client StreamAdder, stream string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Poster {
	p := new(Poster)

	p.client = client
	p.stream = stream

	p.tracer = tracer
	p.monitor = monitor
	p.logger = logger

	return p
}

type NoopPoster struct {
	logger logging.LoggerInterface
}

func (p *NoopPoster) Post(_ context.Context, workspaceID, text string) error {
	p.logger.Debugf("dropping system message for workspace %s: %s", workspaceID, text)
	return nil
}

func NewNoopPoster(logger logging.LoggerInterface) *NoopPoster {
	return &NoopPoster{logger: logger}
}
