// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package workspace

import (
	"context"
	"time"

	"github.com/senaicommunity/workspace-service/internal/types"
)

type ServiceInterface interface {
	CreateWorkspace(ctx context.Context, in *CreateWorkspaceInput) (*types.WorkspaceView, error)
	GetWorkspace(ctx context.Context, workspaceID string) (*types.WorkspaceView, error)
	ListWorkspaces(ctx context.Context) ([]*types.Workspace, error)
	ListUserWorkspaces(ctx context.Context, userID string) ([]*types.Workspace, error)
	CountUserWorkspaces(ctx context.Context, userID string) (int, error)
	UpdateWorkspace(ctx context.Context, workspaceID, actorID string, patch *WorkspacePatch) (*types.Workspace, error)
	DeleteWorkspace(ctx context.Context, workspaceID, actorID string) error
	InviteUser(ctx context.Context, workspaceID, invitedID, inviterID string) (*types.Invite, error)
	RespondToInvite(ctx context.Context, inviteID, userID string, accept bool) error
	CancelInvite(ctx context.Context, inviteID, actorID string) error
	RemoveMember(ctx context.Context, workspaceID, targetID, actorID string) error
	ChangeRole(ctx context.Context, workspaceID, targetID string, role types.Role, actorID string) error
	ListMembers(ctx context.Context, workspaceID string) ([]*types.Membership, error)
	ListPendingInvites(ctx context.Context, workspaceID string) ([]*types.Invite, error)
}

// StorageInterface is the subset of internal/storage used by the coordinator.
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

// TxRunnerInterface runs fn as one atomic unit of work, see db.DBClient.WithTx.
type TxRunnerInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
}

type DirectoryInterface interface {
	GetUser(ctx context.Context, id string) (*types.User, error)
}

type NotifierInterface interface {
	Notify(ctx context.Context, n types.Notification) error
}

type ChatInterface interface {
	Post(ctx context.Context, workspaceID, text string) error
}

type MediaInterface interface {
	Upload(ctx context.Context, filename, contentType string, data []byte) (string, error)
	Delete(ctx context.Context, url string) error
}
