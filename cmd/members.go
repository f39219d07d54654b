// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/senaicommunity/workspace-service/internal/types"
	"github.com/senaicommunity/workspace-service/pkg/workspace"
)

var membersCmd = &cobra.Command{
	Use:   "members",
	Short: "Manage workspace members",
}

func memberPath(workspaceID, memberID string) string {
	return "/api/v0/workspaces/" + url.PathEscape(workspaceID) + "/members/" + url.PathEscape(memberID)
}

var listMembersCmd = &cobra.Command{
	Use:   "list [workspace-id]",
	Short: "List members of a workspace",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		members := make([]*types.Membership, 0)
		if err := getClient().do(cmd.Context(), http.MethodGet, "/api/v0/workspaces/"+url.PathEscape(args[0])+"/members", nil, &members); err != nil {
			return fmt.Errorf("failed to list members: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "USER_ID\tROLE\tINVITED_BY\tJOINED_AT")
		for _, m := range members {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", m.UserID, m.Role, m.InvitedBy, m.JoinedAt)
		}
		w.Flush()
		return nil
	},
}

var removeMemberCmd = &cobra.Command{
	Use:   "remove [workspace-id] [user-id]",
	Short: "Remove a member from a workspace",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := getClient().do(cmd.Context(), http.MethodDelete, memberPath(args[0], args[1]), nil, nil); err != nil {
			return fmt.Errorf("failed to remove member: %w", err)
		}

		fmt.Printf("Member %s removed from %s\n", args[1], args[0])
		return nil
	},
}

var changeRoleCmd = &cobra.Command{
	Use:       "role [workspace-id] [user-id] [role]",
	Short:     "Change the role of a member",
	Args:      cobra.ExactArgs(3),
	ValidArgs: []string{string(types.RoleAdmin), string(types.RoleModerator), string(types.RoleMember)},
	RunE: func(cmd *cobra.Command, args []string) error {
		req := &workspace.ChangeRoleRequest{Role: strings.ToUpper(args[2])}
		if err := getClient().do(cmd.Context(), http.MethodPut, memberPath(args[0], args[1])+"/role", req, nil); err != nil {
			return fmt.Errorf("failed to change role: %w", err)
		}

		fmt.Printf("Member %s is now %s in %s\n", args[1], req.Role, args[0])
		return nil
	},
}

func init() {
	workspaceCmd.AddCommand(membersCmd)
	membersCmd.AddCommand(listMembersCmd)
	membersCmd.AddCommand(removeMemberCmd)
	membersCmd.AddCommand(changeRoleCmd)
}
