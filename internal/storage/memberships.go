// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/senaicommunity/workspace-service/internal/types"
)

var membershipColumns = []string{"workspace_id", "user_id", "role", "invited_by", "joined_at"}

func scanMembership(row scanner) (*types.Membership, error) {
	var m types.Membership
	if err := row.Scan(&m.WorkspaceID, &m.UserID, &m.Role, &m.InvitedBy, &m.JoinedAt); err != nil {
		return nil, err
	}
	return &m, nil
}

// AddMember inserts a membership; an existing (workspace, user) pair yields ErrDuplicateKey.
func (s *Storage) AddMember(ctx context.Context, m *types.Membership) error {
	ctx, span := s.tracer.Start(ctx, "storage.AddMember")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Insert("workspace_memberships").
		Columns("workspace_id", "user_id", "role", "invited_by").
		Values(m.WorkspaceID, m.UserID, m.Role, m.InvitedBy).
		ExecContext(ctx)
	if err != nil {
		return wrapWriteError(err, "add member")
	}

	return nil
}

func (s *Storage) GetMembership(ctx context.Context, workspaceID, userID string) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetMembership")
	defer span.End()

	m, err := scanMembership(
		s.db.Statement(ctx).
			Select(membershipColumns...).
			From("workspace_memberships").
			Where(sq.Eq{"workspace_id": workspaceID, "user_id": userID}).
			QueryRowContext(ctx),
	)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}

	return m, nil
}

func (s *Storage) UpdateMemberRole(ctx context.Context, workspaceID, userID string, role types.Role) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateMemberRole")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("workspace_memberships").
		Set("role", role).
		Where(sq.Eq{"workspace_id": workspaceID, "user_id": userID}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to update member: %w", err)
	}

	return expectAffected(res)
}

func (s *Storage) RemoveMember(ctx context.Context, workspaceID, userID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.RemoveMember")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("workspace_memberships").
		Where(sq.Eq{"workspace_id": workspaceID, "user_id": userID}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to remove member: %w", err)
	}

	return expectAffected(res)
}

func (s *Storage) CountMembers(ctx context.Context, workspaceID string) (int, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountMembers")
	defer span.End()

	var count int
	err := s.db.Statement(ctx).
		Select("COUNT(*)").
		From("workspace_memberships").
		Where(sq.Eq{"workspace_id": workspaceID}).
		QueryRowContext(ctx).
		Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count members: %w", err)
	}

	return count, nil
}

func (s *Storage) ListMembers(ctx context.Context, workspaceID string) ([]*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListMembers")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(membershipColumns...).
		From("workspace_memberships").
		Where(sq.Eq{"workspace_id": workspaceID}).
		OrderBy("joined_at ASC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	members := make([]*types.Membership, 0)
	for rows.Next() {
		m, err := scanMembership(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return members, nil
}
