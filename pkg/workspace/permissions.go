// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package workspace

import (
	"context"
	"errors"
	"fmt"

	"github.com/senaicommunity/workspace-service/internal/storage"
	"github.com/senaicommunity/workspace-service/internal/types"
)

type membershipReader interface {
	GetMembership(ctx context.Context, workspaceID, userID string) (*types.Membership, error)
}

// PermissionEvaluator answers role questions from store state only.
type PermissionEvaluator struct {
	memberships membershipReader
}

// IsOwner reports whether userID created ws.
func (p *PermissionEvaluator) IsOwner(ws *types.Workspace, userID string) bool {
	return userID != "" && ws.OwnerID == userID
}

// EffectiveRole returns the role userID holds in ws; the owner is always ADMIN.
// ok is false when the user has no membership.
func (p *PermissionEvaluator) EffectiveRole(ctx context.Context, ws *types.Workspace, userID string) (types.Role, bool, error) {
	if p.IsOwner(ws, userID) {
		return types.RoleAdmin, true, nil
	}

	m, err := p.memberships.GetMembership(ctx, ws.ID, userID)
	if errors.Is(err, storage.ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read membership: %w", err)
	}

	return m.Role, true, nil
}

func (p *PermissionEvaluator) HasAtLeastRole(ctx context.Context, ws *types.Workspace, userID string, min types.Role) (bool, error) {
	role, ok, err := p.EffectiveRole(ctx, ws, userID)
	if err != nil || !ok {
		return false, err
	}
	return role.AtLeast(min), nil
}

func NewPermissionEvaluator(memberships membershipReader) *PermissionEvaluator {
	return &PermissionEvaluator{memberships: memberships}
}
