// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

type Role string

const (
	RoleAdmin     Role = "ADMIN"
	RoleModerator Role = "MODERATOR"
	RoleMember    Role = "MEMBER"
)

var roleRank = map[Role]int{
	RoleMember:    1,
	RoleModerator: 2,
	RoleAdmin:     3,
}

func (r Role) Valid() bool {
	_, ok := roleRank[r]
	return ok
}

// AtLeast reports whether r ranks equal to or above min.
// Unknown roles never satisfy a check.
func (r Role) AtLeast(min Role) bool {
	have, ok := roleRank[r]
	if !ok {
		return false
	}
	return have >= roleRank[min]
}

type InviteStatus string

const (
	InvitePending  InviteStatus = "PENDING"
	InviteAccepted InviteStatus = "ACCEPTED"
	InviteDeclined InviteStatus = "DECLINED"
	InviteCanceled InviteStatus = "CANCELED"
)

func (s InviteStatus) Terminal() bool {
	return s == InviteAccepted || s == InviteDeclined || s == InviteCanceled
}

type WorkspaceStatus string

const (
	StatusPlanning   WorkspaceStatus = "PLANNING"
	StatusInProgress WorkspaceStatus = "IN_PROGRESS"
	StatusDone       WorkspaceStatus = "DONE"
)

func (s WorkspaceStatus) Valid() bool {
	switch s {
	case StatusPlanning, StatusInProgress, StatusDone:
		return true
	}
	return false
}

type Workspace struct {
	ID            string          `db:"id" json:"id"`
	Title         string          `db:"title" json:"title"`
	Description   string          `db:"description" json:"description"`
	CoverImageURL string          `db:"cover_image_url" json:"cover_image_url,omitempty"`
	OwnerID       string          `db:"owner_id" json:"owner_id"`
	Capacity      int             `db:"capacity" json:"capacity"`
	Private       bool            `db:"private" json:"private"`
	Status        WorkspaceStatus `db:"status" json:"status"`
	DueDate       *time.Time      `db:"due_date" json:"due_date,omitempty"`
	Links         string          `db:"links" json:"links,omitempty"`
	CreatedAt     time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at" json:"updated_at"`
}

type Membership struct {
	WorkspaceID string    `db:"workspace_id" json:"workspace_id"`
	UserID      string    `db:"user_id" json:"user_id"`
	Role        Role      `db:"role" json:"role"`
	InvitedBy   string    `db:"invited_by" json:"invited_by,omitempty"`
	JoinedAt    time.Time `db:"joined_at" json:"joined_at"`
}

type Invite struct {
	ID            string       `db:"id" json:"id"`
	WorkspaceID   string       `db:"workspace_id" json:"workspace_id"`
	InvitedUserID string       `db:"invited_user_id" json:"invited_user_id"`
	InviterID     string       `db:"inviter_id" json:"inviter_id"`
	Status        InviteStatus `db:"status" json:"status"`
	CreatedAt     time.Time    `db:"created_at" json:"created_at"`
	RespondedAt   *time.Time   `db:"responded_at" json:"responded_at,omitempty"`
}

// User is the subset of an identity the workspace engine reads.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

type WorkspaceView struct {
	Workspace      *Workspace    `json:"workspace"`
	Members        []*Membership `json:"members"`
	PendingInvites []*Invite     `json:"pending_invites"`
}

type NotificationCategory string

const (
	NotificationInvite           NotificationCategory = "PROJECT_INVITE"
	NotificationInviteAccepted   NotificationCategory = "PROJECT_INVITE_ACCEPTED"
	NotificationInviteDeclined   NotificationCategory = "PROJECT_INVITE_DECLINED"
	NotificationInviteCanceled   NotificationCategory = "PROJECT_INVITE_CANCELED"
	NotificationMemberRemoved    NotificationCategory = "MEMBER_REMOVED"
	NotificationRoleChanged      NotificationCategory = "PERMISSION_CHANGED"
	NotificationAddedToWorkspace NotificationCategory = "PROJECT_ADDED"
)

type Notification struct {
	RecipientID string               `json:"recipient_id"`
	ActorID     string               `json:"actor_id"`
	Message     string               `json:"message"`
	Category    NotificationCategory `json:"category"`
	ReferenceID string               `json:"reference_id"`
}

type SystemMessage struct {
	WorkspaceID string `json:"workspace_id"`
	Text        string `json:"text"`
}
