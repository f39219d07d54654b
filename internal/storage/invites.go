// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/senaicommunity/workspace-service/internal/types"
)

var inviteColumns = []string{"id", "workspace_id", "invited_user_id", "inviter_id", "status", "created_at", "responded_at"}

func scanInvite(row scanner) (*types.Invite, error) {
	var i types.Invite
	if err := row.Scan(&i.ID, &i.WorkspaceID, &i.InvitedUserID, &i.InviterID, &i.Status, &i.CreatedAt, &i.RespondedAt); err != nil {
		return nil, err
	}
	return &i, nil
}

// CreateInvite stores a PENDING invite.
// A second pending invite for the same pair violates the partial unique
// index and yields ErrDuplicateKey.
func (s *Storage) CreateInvite(ctx context.Context, invite *types.Invite) (*types.Invite, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateInvite")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate invite ID: %w", err)
	}

	created, err := scanInvite(
		s.db.Statement(ctx).
			Insert("workspace_invites").
			Columns("id", "workspace_id", "invited_user_id", "inviter_id", "status").
			Values(id.String(), invite.WorkspaceID, invite.InvitedUserID, invite.InviterID, types.InvitePending).
			Suffix("RETURNING " + columnList(inviteColumns)).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, wrapWriteError(err, "create invite")
	}

	return created, nil
}

func (s *Storage) GetInvite(ctx context.Context, id string) (*types.Invite, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetInvite")
	defer span.End()

	i, err := scanInvite(
		s.db.Statement(ctx).
			Select(inviteColumns...).
			From("workspace_invites").
			Where(sq.Eq{"id": id}).
			QueryRowContext(ctx),
	)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get invite: %w", err)
	}

	return i, nil
}

func (s *Storage) HasPendingInvite(ctx context.Context, workspaceID, userID string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "storage.HasPendingInvite")
	defer span.End()

	var exists bool
	err := s.db.Statement(ctx).
		Select("1").
		Prefix("SELECT EXISTS (").
		From("workspace_invites").
		Where(sq.Eq{
			"workspace_id":    workspaceID,
			"invited_user_id": userID,
			"status":          types.InvitePending,
		}).
		Suffix(")").
		QueryRowContext(ctx).
		Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check pending invites: %w", err)
	}

	return exists, nil
}

// ResolveInvite moves a PENDING invite to a terminal status.
// The update is conditional on the invite still being PENDING, so a lost
// race surfaces as ErrNotFound rather than overwriting a terminal status.
func (s *Storage) ResolveInvite(ctx context.Context, id string, status types.InviteStatus, at time.Time) error {
	ctx, span := s.tracer.Start(ctx, "storage.ResolveInvite")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("workspace_invites").
		Set("status", status).
		Set("responded_at", at).
		Where(sq.Eq{"id": id, "status": types.InvitePending}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to resolve invite: %w", err)
	}

	return expectAffected(res)
}

func (s *Storage) ListPendingInvites(ctx context.Context, workspaceID string) ([]*types.Invite, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListPendingInvites")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(inviteColumns...).
		From("workspace_invites").
		Where(sq.Eq{"workspace_id": workspaceID, "status": types.InvitePending}).
		OrderBy("created_at ASC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list invites: %w", err)
	}
	defer rows.Close()

	invites := make([]*types.Invite, 0)
	for rows.Next() {
		i, err := scanInvite(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invite: %w", err)
		}
		invites = append(invites, i)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return invites, nil
}
