// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package chat

import (
	"context"
	"errors"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/senaicommunity/workspace-service/internal/logging"
	"github.com/senaicommunity/workspace-service/internal/monitoring"
	"github.com/senaicommunity/workspace-service/internal/tracing"
)

type fakeStream struct {
	last *redis.XAddArgs
	err  error
}

func (f *fakeStream) XAdd(_ context.Context, a *redis.XAddArgs) *redis.StringCmd {
	f.last = a
	return redis.NewStringResult("1-0", f.err)
}

func TestPoster_Post(t *testing.T) {
	logger := logging.NewNoopLogger()
	stream := new(fakeStream)
	p := NewPoster(stream, "workspace:chat:system", tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)

	require.NoError(t, p.Post(context.Background(), "ws-1", "hello"))
	require.Equal(t, "workspace:chat:system", stream.last.Stream)

	values := stream.last.Values.(map[string]any)
	require.Equal(t, "ws-1", values["workspace_id"])
	require.Equal(t, systemAuthor, values["author"])
	require.Equal(t, "hello", values["text"])

	stream.err = errors.New("down")
	require.Error(t, p.Post(context.Background(), "ws-1", "again"))
}
