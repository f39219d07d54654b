// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/senaicommunity/workspace-service/internal/db"
	"github.com/senaicommunity/workspace-service/internal/logging"
	"github.com/senaicommunity/workspace-service/internal/monitoring"
	"github.com/senaicommunity/workspace-service/internal/tracing"
	"github.com/senaicommunity/workspace-service/internal/types"
)

var _ StorageInterface = (*Storage)(nil)

var workspaceColumns = []string{
	"id", "title", "description", "cover_image_url", "owner_id", "capacity",
	"private", "status", "due_date", "links", "created_at", "updated_at",
}

type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

type scanner interface {
	Scan(...interface{}) error
}

func scanWorkspace(row scanner) (*types.Workspace, error) {
	var w types.Workspace
	err := row.Scan(
		&w.ID, &w.Title, &w.Description, &w.CoverImageURL, &w.OwnerID, &w.Capacity,
		&w.Private, &w.Status, &w.DueDate, &w.Links, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (s *Storage) CreateWorkspace(ctx context.Context, w *types.Workspace) (*types.Workspace, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateWorkspace")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate workspace ID: %w", err)
	}

	row := s.db.Statement(ctx).
		Insert("workspaces").
		Columns("id", "title", "description", "cover_image_url", "owner_id", "capacity", "private", "status", "due_date", "links").
		Values(id.String(), w.Title, w.Description, w.CoverImageURL, w.OwnerID, w.Capacity, w.Private, w.Status, w.DueDate, w.Links).
		Suffix("RETURNING " + columnList(workspaceColumns)).
		QueryRowContext(ctx)

	created, err := scanWorkspace(row)
	if err != nil {
		return nil, wrapWriteError(err, "insert workspace")
	}

	return created, nil
}

func (s *Storage) GetWorkspace(ctx context.Context, id string) (*types.Workspace, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetWorkspace")
	defer span.End()

	return s.getWorkspace(ctx, id, false)
}

// GetWorkspaceForUpdate reads the workspace and holds its row lock until the
// surrounding transaction ends, serializing membership changes per workspace.
func (s *Storage) GetWorkspaceForUpdate(ctx context.Context, id string) (*types.Workspace, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetWorkspaceForUpdate")
	defer span.End()

	return s.getWorkspace(ctx, id, true)
}

func (s *Storage) getWorkspace(ctx context.Context, id string, lock bool) (*types.Workspace, error) {
	query := s.db.Statement(ctx).
		Select(workspaceColumns...).
		From("workspaces").
		Where(sq.Eq{"id": id})

	if lock {
		query = query.Suffix("FOR UPDATE")
	}

	w, err := scanWorkspace(query.QueryRowContext(ctx))
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get workspace: %w", err)
	}

	return w, nil
}

// UpdateWorkspace updates the fields named in paths.
// Unknown paths are ignored and an empty set is a no-op.
func (s *Storage) UpdateWorkspace(ctx context.Context, w *types.Workspace, paths []string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateWorkspace")
	defer span.End()

	updateMap := make(map[string]interface{})
	for _, p := range paths {
		switch p {
		case "title":
			updateMap["title"] = w.Title
		case "description":
			updateMap["description"] = w.Description
		case "cover_image_url":
			updateMap["cover_image_url"] = w.CoverImageURL
		case "capacity":
			updateMap["capacity"] = w.Capacity
		case "private":
			updateMap["private"] = w.Private
		case "status":
			updateMap["status"] = w.Status
		case "due_date":
			updateMap["due_date"] = w.DueDate
		case "links":
			updateMap["links"] = w.Links
		}
	}

	if len(updateMap) == 0 {
		return nil
	}
	updateMap["updated_at"] = sq.Expr("NOW()")

	res, err := s.db.Statement(ctx).
		Update("workspaces").
		SetMap(updateMap).
		Where(sq.Eq{"id": w.ID}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to update workspace: %w", err)
	}

	return expectAffected(res)
}

func (s *Storage) DeleteWorkspace(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteWorkspace")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("workspaces").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete workspace: %w", err)
	}

	return expectAffected(res)
}

func (s *Storage) ListWorkspaces(ctx context.Context) ([]*types.Workspace, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListWorkspaces")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(workspaceColumns...).
		From("workspaces").
		OrderBy("created_at DESC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list workspaces: %w", err)
	}

	return collectWorkspaces(rows)
}

func (s *Storage) ListWorkspacesByUserID(ctx context.Context, userID string) ([]*types.Workspace, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListWorkspacesByUserID")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(prefixed("w", workspaceColumns)...).
		From("workspaces w").
		Join("workspace_memberships m ON w.id = m.workspace_id").
		Where(sq.Eq{"m.user_id": userID}).
		OrderBy("w.created_at DESC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list workspaces: %w", err)
	}

	return collectWorkspaces(rows)
}

func collectWorkspaces(rows *sql.Rows) ([]*types.Workspace, error) {
	defer rows.Close()

	workspaces := make([]*types.Workspace, 0)
	for rows.Next() {
		w, err := scanWorkspace(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan workspace: %w", err)
		}
		workspaces = append(workspaces, w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return workspaces, nil
}

func (s *Storage) CountWorkspacesByUserID(ctx context.Context, userID string) (int, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountWorkspacesByUserID")
	defer span.End()

	var count int
	err := s.db.Statement(ctx).
		Select("COUNT(*)").
		From("workspace_memberships").
		Where(sq.Eq{"user_id": userID}).
		QueryRowContext(ctx).
		Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count workspaces: %w", err)
	}

	return count, nil
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}
