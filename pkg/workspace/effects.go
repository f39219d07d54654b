// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package workspace

import (
	"context"

	"github.com/senaicommunity/workspace-service/internal/types"
)

// effects collects side effects raised inside a unit of work. They are only
// delivered once the unit of work has committed.
type effects struct {
	notifications []types.Notification
	messages      []types.SystemMessage
}

func (e *effects) notify(n types.Notification) {
	e.notifications = append(e.notifications, n)
}

func (e *effects) post(workspaceID, text string) {
	e.messages = append(e.messages, types.SystemMessage{WorkspaceID: workspaceID, Text: text})
}

// dispatch delivers collected effects best-effort: failures are logged and
// counted, never returned.
func (s *Service) dispatch(ctx context.Context, e *effects) {
	ctx = context.WithoutCancel(ctx)

	for _, n := range e.notifications {
		if err := s.notifier.Notify(ctx, n); err != nil {
			s.sideEffectFailed("notification")
			s.logger.Warnf("failed to deliver %s notification to %s: %v", n.Category, n.RecipientID, err)
		}
	}

	for _, m := range e.messages {
		if err := s.chat.Post(ctx, m.WorkspaceID, m.Text); err != nil {
			s.sideEffectFailed("system_message")
			s.logger.Warnf("failed to post system message to workspace %s: %v", m.WorkspaceID, err)
		}
	}
}

func (s *Service) sideEffectFailed(effect string) {
	if err := s.monitor.IncSideEffectFailure(map[string]string{"effect": effect}); err != nil {
		s.logger.Debugf("failed to record side effect failure: %v", err)
	}
}
