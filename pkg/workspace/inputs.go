// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package workspace

import (
	"time"

	"github.com/senaicommunity/workspace-service/internal/types"
)

// Upload is a binary object handed to the media collaborator.
type Upload struct {
	Filename    string
	ContentType string
	Data        []byte
}

type CreateWorkspaceInput struct {
	Title       string
	Description string
	// Capacity of zero selects the service default.
	Capacity         int
	Private          bool
	Status           types.WorkspaceStatus
	DueDate          *time.Time
	Links            string
	CreatorID        string
	InitialMemberIDs []string
	CoverImage       *Upload
}

// WorkspacePatch holds the fields to change, nil means untouched.
type WorkspacePatch struct {
	Title       *string
	Description *string
	Capacity    *int
	Private     *bool
	Status      *types.WorkspaceStatus
	DueDate     *time.Time
	Links       *string
	CoverImage  *Upload
}
