// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/senaicommunity/workspace-service/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the workspace service version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("workspace-service %s\n", version.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
