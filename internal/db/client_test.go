// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/senaicommunity/workspace-service/internal/logging"
	"github.com/senaicommunity/workspace-service/internal/monitoring"
	"github.com/senaicommunity/workspace-service/internal/tracing"
)

func newTestClient(t *testing.T) (*DBClient, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	logger := logging.NewNoopLogger()
	return NewDBClientFromDB(sqlDB, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger), mock
}

func TestWithTxCommits(t *testing.T) {
	c, mock := newTestClient(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE workspaces").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM workspace_invites").WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	err := c.WithTx(context.Background(), func(ctx context.Context) error {
		if _, err := c.Statement(ctx).Update("workspaces").Set("title", "x").ExecContext(ctx); err != nil {
			return err
		}
		_, err := c.Statement(ctx).Delete("workspace_invites").ExecContext(ctx)
		return err
	})

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTxRollsBackOnError(t *testing.T) {
	c, mock := newTestClient(t)
	boom := errors.New("boom")

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO workspace_memberships").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectRollback()

	err := c.WithTx(context.Background(), func(ctx context.Context) error {
		if _, err := c.Statement(ctx).Insert("workspace_memberships").Columns("user_id").Values("u1").ExecContext(ctx); err != nil {
			return err
		}
		return boom
	})

	require.ErrorIs(t, err, boom)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTxWithoutStatementsCommits(t *testing.T) {
	c, mock := newTestClient(t)

	mock.ExpectBegin()
	mock.ExpectCommit()

	err := c.WithTx(context.Background(), func(ctx context.Context) error {
		require.True(t, InTx(ctx))
		return nil
	})

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTxBeginFailureAbortsUnitOfWork(t *testing.T) {
	c, mock := newTestClient(t)
	beginErr := errors.New("too many connections")

	mock.ExpectBegin().WillReturnError(beginErr)

	called := false
	err := c.WithTx(context.Background(), func(ctx context.Context) error {
		called = true
		if _, err := c.Statement(ctx).Update("workspace_invites").Set("status", "ACCEPTED").ExecContext(ctx); err != nil {
			return err
		}
		_, err := c.Statement(ctx).Insert("workspace_memberships").Columns("user_id").Values("u1").ExecContext(ctx)
		return err
	})

	require.ErrorIs(t, err, beginErr)
	require.False(t, called)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTxNestedJoinsOuter(t *testing.T) {
	c, mock := newTestClient(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE workspaces").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE workspace_invites").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := c.WithTx(context.Background(), func(ctx context.Context) error {
		if _, err := c.Statement(ctx).Update("workspaces").Set("title", "x").ExecContext(ctx); err != nil {
			return err
		}
		return c.WithTx(ctx, func(inner context.Context) error {
			_, err := c.Statement(inner).Update("workspace_invites").Set("status", "DECLINED").ExecContext(inner)
			return err
		})
	})

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStatementOutsideTx(t *testing.T) {
	c, mock := newTestClient(t)

	mock.ExpectExec("DELETE FROM workspaces").WillReturnResult(sqlmock.NewResult(0, 1))

	_, err := c.Statement(context.Background()).Delete("workspaces").ExecContext(context.Background())

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
