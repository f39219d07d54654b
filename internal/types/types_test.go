// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import "testing"

func TestRoleAtLeast(t *testing.T) {
	tests := []struct {
		role Role
		min  Role
		want bool
	}{
		{RoleAdmin, RoleAdmin, true},
		{RoleAdmin, RoleModerator, true},
		{RoleAdmin, RoleMember, true},
		{RoleModerator, RoleAdmin, false},
		{RoleModerator, RoleModerator, true},
		{RoleModerator, RoleMember, true},
		{RoleMember, RoleModerator, false},
		{RoleMember, RoleMember, true},
		{Role("OWNER"), RoleMember, false},
		{Role(""), RoleMember, false},
	}

	for _, tt := range tests {
		if got := tt.role.AtLeast(tt.min); got != tt.want {
			t.Errorf("%s.AtLeast(%s) = %v, want %v", tt.role, tt.min, got, tt.want)
		}
	}
}

func TestInviteStatusTerminal(t *testing.T) {
	if InvitePending.Terminal() {
		t.Error("PENDING must not be terminal")
	}
	for _, s := range []InviteStatus{InviteAccepted, InviteDeclined, InviteCanceled} {
		if !s.Terminal() {
			t.Errorf("%s must be terminal", s)
		}
	}
}

func TestWorkspaceStatusValid(t *testing.T) {
	for _, s := range []WorkspaceStatus{StatusPlanning, StatusInProgress, StatusDone} {
		if !s.Valid() {
			t.Errorf("%s should be valid", s)
		}
	}
	if WorkspaceStatus("Concluído").Valid() {
		t.Error("free text status should be invalid")
	}
}
