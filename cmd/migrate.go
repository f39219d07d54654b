// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/senaicommunity/workspace-service/migrations"
)

var migrateCmd = &cobra.Command{
	Use:       "migrate [up|down|status|check] [version]",
	Short:     "Run database migrations",
	Long:      `Apply, roll back or inspect the workspace schema migrations. The DSN falls back to the DSN environment variable.`,
	ValidArgs: []string{"up", "down", "status", "check"},
	Args:      migrateArgs,
	RunE:      runMigrate,
}

func migrateArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.RangeArgs(0, 2)(cmd, args); err != nil {
		return err
	}
	if len(args) == 0 {
		return nil
	}

	switch args[0] {
	case "up", "down", "status", "check":
	default:
		return fmt.Errorf("invalid first argument: %q", args[0])
	}

	if len(args) == 2 {
		if args[0] != "down" {
			return fmt.Errorf("a target version is only valid with down, got %q", args)
		}
		if v, err := strconv.ParseInt(args[1], 10, 64); err != nil || v < 0 {
			return fmt.Errorf("invalid version number: %q", args[1])
		}
	}

	return nil
}

func runMigrate(cmd *cobra.Command, args []string) error {
	command := "up"
	if len(args) > 0 {
		command = args[0]
	}

	target := int64(-1)
	if len(args) > 1 {
		target, _ = strconv.ParseInt(args[1], 10, 64)
	}

	dsn, _ := cmd.Flags().GetString("dsn")
	if dsn == "" {
		dsn = os.Getenv("DSN")
	}
	if dsn == "" {
		return fmt.Errorf("no DSN provided, use --dsn or the DSN environment variable")
	}

	format, _ := cmd.Flags().GetString("format")

	db, err := openMigrationDB(cmd.Context(), dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	var opts []goose.ProviderOption
	if format == "json" {
		opts = append(opts, goose.WithLogger(goose.NopLogger()))
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.EmbedMigrations, opts...)
	if err != nil {
		return fmt.Errorf("failed to create goose provider: %w", err)
	}

	m := &migrator{provider: provider, json: format == "json", out: cmd.OutOrStdout()}

	switch command {
	case "down":
		return m.down(cmd.Context(), target)
	case "status":
		return m.status(cmd.Context())
	case "check":
		return m.check(cmd.Context())
	default:
		return m.up(cmd.Context())
	}
}

func openMigrationDB(ctx context.Context, dsn string) (*sql.DB, error) {
	config, err := pgx.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("DSN validation failed: %w", err)
	}

	db := stdlib.OpenDB(*config)
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("DB connection failed: %w", err)
	}

	return db, nil
}

type migrator struct {
	provider *goose.Provider
	json     bool
	out      io.Writer
}

func (m *migrator) report(v interface{}, text string) error {
	if m.json {
		return json.NewEncoder(m.out).Encode(v)
	}
	if text != "" {
		_, err := fmt.Fprintln(m.out, text)
		return err
	}
	return nil
}

func (m *migrator) applied(results []*goose.MigrationResult) error {
	if results == nil {
		results = []*goose.MigrationResult{}
	}
	return m.report(map[string]interface{}{"applied": results}, fmt.Sprintf("%d migration(s) applied", len(results)))
}

func (m *migrator) up(ctx context.Context) error {
	results, err := m.provider.Up(ctx)
	if err != nil {
		return err
	}
	return m.applied(results)
}

// down rolls back one migration, or down to target when it is not negative.
func (m *migrator) down(ctx context.Context, target int64) error {
	if target >= 0 {
		results, err := m.provider.DownTo(ctx, target)
		if err != nil {
			return err
		}
		return m.applied(results)
	}

	result, err := m.provider.Down(ctx)
	if err != nil {
		return err
	}
	return m.applied([]*goose.MigrationResult{result})
}

func (m *migrator) status(ctx context.Context) error {
	statuses, err := m.provider.Status(ctx)
	if err != nil {
		return err
	}
	if m.json {
		return m.report(statuses, "")
	}

	w := tabwriter.NewWriter(m.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "APPLIED_AT\tMIGRATION")
	for _, s := range statuses {
		appliedAt := "Pending"
		if s.State == goose.StateApplied {
			appliedAt = s.AppliedAt.Format(time.RFC3339)
		}
		fmt.Fprintf(w, "%s\t%s\n", appliedAt, s.Source.Path)
	}
	return w.Flush()
}

func (m *migrator) check(ctx context.Context) error {
	pending, err := m.provider.HasPending(ctx)
	if err != nil {
		return fmt.Errorf("failed to check pending migrations: %w", err)
	}

	current, err := m.provider.GetDBVersion(ctx)
	if err != nil {
		return fmt.Errorf("failed to get current version: %w", err)
	}

	if pending {
		if m.json {
			return m.report(map[string]interface{}{"status": "pending", "version": current}, "")
		}
		return fmt.Errorf("migrations are pending: current version %d", current)
	}

	return m.report(
		map[string]interface{}{"status": "ok", "version": current},
		fmt.Sprintf("Database is up to date (version %d)", current),
	)
}

func init() {
	migrateCmd.Flags().String("dsn", "", "PostgreSQL DSN connection string")
	migrateCmd.Flags().StringP("format", "f", "text", "Output format (text or json)")

	rootCmd.AddCommand(migrateCmd)
}
