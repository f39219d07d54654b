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

var invitesCmd = &cobra.Command{
	Use:   "invites",
	Short: "Manage workspace invites",
}

var sendInviteCmd = &cobra.Command{
	Use:   "send [workspace-id] [user-id]",
	Short: "Invite a user to a workspace",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		invite := new(types.Invite)
		err := getClient().do(cmd.Context(), http.MethodPost, "/api/v0/workspaces/"+url.PathEscape(args[0])+"/invites", &workspace.InviteRequest{UserID: args[1]}, invite)
		if err != nil {
			return fmt.Errorf("failed to invite user: %w", err)
		}

		fmt.Printf("Invite sent: %s\n", invite.ID)
		return nil
	},
}

var listInvitesCmd = &cobra.Command{
	Use:   "list [workspace-id]",
	Short: "List pending invites of a workspace",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		invites := make([]*types.Invite, 0)
		if err := getClient().do(cmd.Context(), http.MethodGet, "/api/v0/workspaces/"+url.PathEscape(args[0])+"/invites", nil, &invites); err != nil {
			return fmt.Errorf("failed to list invites: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tINVITED_USER\tINVITER\tCREATED_AT")
		for _, i := range invites {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", i.ID, i.InvitedUserID, i.InviterID, i.CreatedAt)
		}
		w.Flush()
		return nil
	},
}

func inviteAction(use, short, method, suffix, done string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [invite-id]",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := getClient().do(cmd.Context(), method, "/api/v0/invites/"+url.PathEscape(args[0])+suffix, nil, nil); err != nil {
				return fmt.Errorf("failed to %s invite: %w", use, err)
			}

			fmt.Printf("Invite %s: %s\n", done, args[0])
			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(invitesCmd)
	invitesCmd.AddCommand(sendInviteCmd)
	invitesCmd.AddCommand(listInvitesCmd)
	invitesCmd.AddCommand(inviteAction("accept", "Accept an invite addressed to --user-id", http.MethodPost, "/accept", "accepted"))
	invitesCmd.AddCommand(inviteAction("decline", "Decline an invite addressed to --user-id", http.MethodPost, "/decline", "declined"))
	invitesCmd.AddCommand(inviteAction("cancel", "Cancel or decline an invite --user-id is a party to", http.MethodDelete, "", "resolved"))
}
