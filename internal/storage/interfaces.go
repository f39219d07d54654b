// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"time"

	"github.com/senaicommunity/workspace-service/internal/types"
)

type StorageInterface interface {
	CreateWorkspace(ctx context.Context, w *types.Workspace) (*types.Workspace, error)
	GetWorkspace(ctx context.Context, id string) (*types.Workspace, error)
	GetWorkspaceForUpdate(ctx context.Context, id string) (*types.Workspace, error)
	UpdateWorkspace(ctx context.Context, w *types.Workspace, paths []string) error
	DeleteWorkspace(ctx context.Context, id string) error
	ListWorkspaces(ctx context.Context) ([]*types.Workspace, error)
	ListWorkspacesByUserID(ctx context.Context, userID string) ([]*types.Workspace, error)
	CountWorkspacesByUserID(ctx context.Context, userID string) (int, error)

	AddMember(ctx context.Context, m *types.Membership) error
	GetMembership(ctx context.Context, workspaceID, userID string) (*types.Membership, error)
	UpdateMemberRole(ctx context.Context, workspaceID, userID string, role types.Role) error
	RemoveMember(ctx context.Context, workspaceID, userID string) error
	CountMembers(ctx context.Context, workspaceID string) (int, error)
	ListMembers(ctx context.Context, workspaceID string) ([]*types.Membership, error)

	CreateInvite(ctx context.Context, invite *types.Invite) (*types.Invite, error)
	GetInvite(ctx context.Context, id string) (*types.Invite, error)
	HasPendingInvite(ctx context.Context, workspaceID, userID string) (bool, error)
	ResolveInvite(ctx context.Context, id string, status types.InviteStatus, at time.Time) error
	ListPendingInvites(ctx context.Context, workspaceID string) ([]*types.Invite, error)
}
