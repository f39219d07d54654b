// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"net/http"
	"net/url"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/senaicommunity/workspace-service/internal/types"
	"github.com/senaicommunity/workspace-service/pkg/workspace"
)

var workspaceCmd = &cobra.Command{
	Use:     "workspace",
	Aliases: []string{"project"},
	Short:   "Manage project workspaces",
}

var (
	createCapacity int
	createPrivate  bool
	createMembers  []string
	createDesc     string
)

var createWorkspaceCmd = &cobra.Command{
	Use:   "create [title]",
	Short: "Create a workspace owned by --user-id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		view := new(types.WorkspaceView)
		err := getClient().do(cmd.Context(), http.MethodPost, "/api/v0/workspaces", &workspace.CreateWorkspaceRequest{
			Title:            args[0],
			Description:      createDesc,
			Capacity:         createCapacity,
			Private:          createPrivate,
			InitialMemberIDs: createMembers,
		}, view)
		if err != nil {
			return fmt.Errorf("failed to create workspace: %w", err)
		}

		fmt.Printf("Workspace created: %s (ID: %s, members: %d)\n", view.Workspace.Title, view.Workspace.ID, len(view.Members))
		return nil
	},
}

var getWorkspaceCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Show a workspace with its members and pending invites",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		view := new(types.WorkspaceView)
		if err := getClient().do(cmd.Context(), http.MethodGet, "/api/v0/workspaces/"+url.PathEscape(args[0]), nil, view); err != nil {
			return fmt.Errorf("failed to get workspace: %w", err)
		}

		ws := view.Workspace
		fmt.Printf("%s (ID: %s)\nOwner: %s\nStatus: %s\nCapacity: %d/%d\n\n", ws.Title, ws.ID, ws.OwnerID, ws.Status, len(view.Members), ws.Capacity)

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "USER_ID\tROLE\tJOINED_AT")
		for _, m := range view.Members {
			fmt.Fprintf(w, "%s\t%s\t%s\n", m.UserID, m.Role, m.JoinedAt)
		}
		w.Flush()

		if len(view.PendingInvites) > 0 {
			fmt.Printf("\n%d pending invite(s)\n", len(view.PendingInvites))
		}
		return nil
	},
}

var listAll bool

var listWorkspacesCmd = &cobra.Command{
	Use:   "list",
	Short: "List workspaces --user-id belongs to, or every workspace with --all",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "/api/v0/workspaces"
		if listAll {
			path += "?scope=all"
		}

		workspaces := make([]*types.Workspace, 0)
		if err := getClient().do(cmd.Context(), http.MethodGet, path, nil, &workspaces); err != nil {
			return fmt.Errorf("failed to list workspaces: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tTITLE\tSTATUS\tOWNER\tCAPACITY\tCREATED_AT")
		for _, ws := range workspaces {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\n", ws.ID, ws.Title, ws.Status, ws.OwnerID, ws.Capacity, ws.CreatedAt)
		}
		w.Flush()
		return nil
	},
}

var countWorkspacesCmd = &cobra.Command{
	Use:   "count [user-id]",
	Short: "Count the workspaces a user belongs to",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := new(workspace.CountResponse)
		if err := getClient().do(cmd.Context(), http.MethodGet, "/api/v0/users/"+url.PathEscape(args[0])+"/workspaces/count", nil, out); err != nil {
			return fmt.Errorf("failed to count workspaces: %w", err)
		}

		fmt.Printf("%s belongs to %d workspace(s)\n", out.UserID, out.Count)
		return nil
	},
}

var (
	updateTitle    string
	updateStatus   string
	updateCapacity int
)

var updateWorkspaceCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Update a workspace title, status or capacity",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := new(workspace.UpdateWorkspaceRequest)
		if cmd.Flags().Changed("title") {
			req.Title = &updateTitle
		}
		if cmd.Flags().Changed("status") {
			req.Status = &updateStatus
		}
		if cmd.Flags().Changed("capacity") {
			req.Capacity = &updateCapacity
		}

		ws := new(types.Workspace)
		if err := getClient().do(cmd.Context(), http.MethodPatch, "/api/v0/workspaces/"+url.PathEscape(args[0]), req, ws); err != nil {
			return fmt.Errorf("failed to update workspace: %w", err)
		}

		fmt.Printf("Workspace updated: %s\n", ws.ID)
		return nil
	},
}

var deleteWorkspaceCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a workspace",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := getClient().do(cmd.Context(), http.MethodDelete, "/api/v0/workspaces/"+url.PathEscape(args[0]), nil, nil); err != nil {
			return fmt.Errorf("failed to delete workspace: %w", err)
		}

		fmt.Printf("Workspace deleted: %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(workspaceCmd)
	workspaceCmd.AddCommand(createWorkspaceCmd)
	workspaceCmd.AddCommand(getWorkspaceCmd)
	workspaceCmd.AddCommand(listWorkspacesCmd)
	workspaceCmd.AddCommand(countWorkspacesCmd)
	workspaceCmd.AddCommand(updateWorkspaceCmd)
	workspaceCmd.AddCommand(deleteWorkspaceCmd)

	createWorkspaceCmd.Flags().IntVar(&createCapacity, "capacity", 0, "Maximum number of members, 0 selects the server default")
	createWorkspaceCmd.Flags().BoolVar(&createPrivate, "private", false, "Hide the workspace from non members")
	createWorkspaceCmd.Flags().StringSliceVar(&createMembers, "members", []string{}, "Comma-separated list of user IDs added as members")
	listWorkspacesCmd.Flags().BoolVar(&listAll, "all", false, "List every workspace instead of the caller's")

	createWorkspaceCmd.Flags().StringVar(&createDesc, "description", "", "Workspace description")

	updateWorkspaceCmd.Flags().StringVar(&updateTitle, "title", "", "New title")
	updateWorkspaceCmd.Flags().StringVar(&updateStatus, "status", "", "New status (PLANNING, IN_PROGRESS or DONE)")
	updateWorkspaceCmd.Flags().IntVar(&updateCapacity, "capacity", 0, "New capacity")
}
