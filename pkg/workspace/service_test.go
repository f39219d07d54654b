// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package workspace

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/senaicommunity/workspace-service/internal/kratos"
	"github.com/senaicommunity/workspace-service/internal/logging"
	"github.com/senaicommunity/workspace-service/internal/monitoring"
	"github.com/senaicommunity/workspace-service/internal/storage"
	"github.com/senaicommunity/workspace-service/internal/tracing"
	"github.com/senaicommunity/workspace-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package workspace -destination ./mock_workspace.go -source=./interfaces.go

type mocks struct {
	storage   *MockStorageInterface
	tx        *MockTxRunnerInterface
	directory *MockDirectoryInterface
	notifier  *MockNotifierInterface
	chat      *MockChatInterface
	media     *MockMediaInterface
}

func newMockedService(ctrl *gomock.Controller) (*Service, *mocks) {
	m := &mocks{
		storage:   NewMockStorageInterface(ctrl),
		tx:        NewMockTxRunnerInterface(ctrl),
		directory: NewMockDirectoryInterface(ctrl),
		notifier:  NewMockNotifierInterface(ctrl),
		chat:      NewMockChatInterface(ctrl),
		media:     NewMockMediaInterface(ctrl),
	}

	logger := logging.NewNoopLogger()
	s := NewService(m.storage, m.tx, m.directory, m.notifier, m.chat, m.media, 0, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("workspace", logger), logger)
	s.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }

	return s, m
}

func runInline(tx *MockTxRunnerInterface) {
	tx.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	).AnyTimes()
}

func TestService_InviteUser(t *testing.T) {
	ws := &types.Workspace{ID: "ws-1", Title: "Capstone", OwnerID: "owner", Capacity: 3}
	dbErr := errors.New("db error")

	testCases := []struct {
		name        string
		inviterID   string
		setupMocks  func(*mocks)
		expectedErr error
	}{
		{
			name:      "workspace not found",
			inviterID: "owner",
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().GetWorkspace(gomock.Any(), "ws-1").Return(nil, storage.ErrNotFound)
			},
			expectedErr: ErrNotFound,
		},
		{
			name:      "inviter is a plain member",
			inviterID: "member",
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().GetWorkspace(gomock.Any(), "ws-1").Return(ws, nil)
				m.storage.EXPECT().GetMembership(gomock.Any(), "ws-1", "member").Return(&types.Membership{Role: types.RoleMember}, nil)
				m.directory.EXPECT().GetUser(gomock.Any(), gomock.Any()).Times(0)
			},
			expectedErr: ErrForbidden,
		},
		{
			name:      "inviter is not a member",
			inviterID: "stranger",
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().GetWorkspace(gomock.Any(), "ws-1").Return(ws, nil)
				m.storage.EXPECT().GetMembership(gomock.Any(), "ws-1", "stranger").Return(nil, storage.ErrNotFound)
			},
			expectedErr: ErrForbidden,
		},
		{
			name:      "invited user unknown",
			inviterID: "owner",
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().GetWorkspace(gomock.Any(), "ws-1").Return(ws, nil)
				m.directory.EXPECT().GetUser(gomock.Any(), "u3").Return(nil, kratos.ErrIdentityNotFound)
			},
			expectedErr: ErrNotFound,
		},
		{
			name:      "inviter demoted before the lock",
			inviterID: "mod",
			setupMocks: func(m *mocks) {
				gomock.InOrder(
					m.storage.EXPECT().GetWorkspace(gomock.Any(), "ws-1").Return(ws, nil),
					m.storage.EXPECT().GetMembership(gomock.Any(), "ws-1", "mod").Return(&types.Membership{Role: types.RoleModerator}, nil),
					m.directory.EXPECT().GetUser(gomock.Any(), "u3").Return(&types.User{ID: "u3"}, nil),
					m.storage.EXPECT().GetWorkspaceForUpdate(gomock.Any(), "ws-1").Return(ws, nil),
					m.storage.EXPECT().GetMembership(gomock.Any(), "ws-1", "mod").Return(&types.Membership{Role: types.RoleMember}, nil),
				)
				m.storage.EXPECT().CreateInvite(gomock.Any(), gomock.Any()).Times(0)
			},
			expectedErr: ErrForbidden,
		},
		{
			name:      "pending invite exists",
			inviterID: "owner",
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().GetWorkspace(gomock.Any(), "ws-1").Return(ws, nil)
				m.directory.EXPECT().GetUser(gomock.Any(), "u3").Return(&types.User{ID: "u3"}, nil)
				m.storage.EXPECT().GetWorkspaceForUpdate(gomock.Any(), "ws-1").Return(ws, nil)
				m.storage.EXPECT().GetMembership(gomock.Any(), "ws-1", "u3").Return(nil, storage.ErrNotFound)
				m.storage.EXPECT().HasPendingInvite(gomock.Any(), "ws-1", "u3").Return(true, nil)
			},
			expectedErr: ErrConflict,
		},
		{
			name:      "pending invite created concurrently",
			inviterID: "owner",
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().GetWorkspace(gomock.Any(), "ws-1").Return(ws, nil)
				m.directory.EXPECT().GetUser(gomock.Any(), "u3").Return(&types.User{ID: "u3"}, nil)
				m.storage.EXPECT().GetWorkspaceForUpdate(gomock.Any(), "ws-1").Return(ws, nil)
				m.storage.EXPECT().GetMembership(gomock.Any(), "ws-1", "u3").Return(nil, storage.ErrNotFound)
				m.storage.EXPECT().HasPendingInvite(gomock.Any(), "ws-1", "u3").Return(false, nil)
				m.storage.EXPECT().CountMembers(gomock.Any(), "ws-1").Return(1, nil)
				m.storage.EXPECT().CreateInvite(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateKey)
			},
			expectedErr: ErrConflict,
		},
		{
			name:      "storage error",
			inviterID: "owner",
			setupMocks: func(m *mocks) {
				m.storage.EXPECT().GetWorkspace(gomock.Any(), "ws-1").Return(ws, nil)
				m.directory.EXPECT().GetUser(gomock.Any(), "u3").Return(&types.User{ID: "u3"}, nil)
				m.storage.EXPECT().GetWorkspaceForUpdate(gomock.Any(), "ws-1").Return(ws, nil)
				m.storage.EXPECT().GetMembership(gomock.Any(), "ws-1", "u3").Return(nil, storage.ErrNotFound)
				m.storage.EXPECT().HasPendingInvite(gomock.Any(), "ws-1", "u3").Return(false, dbErr)
			},
			expectedErr: dbErr,
		},
		{
			name:      "success",
			inviterID: "owner",
			setupMocks: func(m *mocks) {
				gomock.InOrder(
					m.storage.EXPECT().GetWorkspace(gomock.Any(), "ws-1").Return(ws, nil),
					m.directory.EXPECT().GetUser(gomock.Any(), "u3").Return(&types.User{ID: "u3"}, nil),
					m.storage.EXPECT().GetWorkspaceForUpdate(gomock.Any(), "ws-1").Return(ws, nil),
				)
				m.storage.EXPECT().GetMembership(gomock.Any(), "ws-1", "u3").Return(nil, storage.ErrNotFound)
				m.storage.EXPECT().HasPendingInvite(gomock.Any(), "ws-1", "u3").Return(false, nil)
				m.storage.EXPECT().CountMembers(gomock.Any(), "ws-1").Return(2, nil)
				m.storage.EXPECT().CreateInvite(gomock.Any(), &types.Invite{WorkspaceID: "ws-1", InvitedUserID: "u3", InviterID: "owner"}).
					Return(&types.Invite{ID: "inv-1", WorkspaceID: "ws-1", InvitedUserID: "u3", InviterID: "owner", Status: types.InvitePending}, nil)
				m.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, n types.Notification) error {
						if n.Category != types.NotificationInvite || n.RecipientID != "u3" || n.ReferenceID != "inv-1" {
							t.Errorf("unexpected notification %+v", n)
						}
						return nil
					},
				)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newMockedService(ctrl)
			runInline(m.tx)
			tc.setupMocks(m)

			invite, err := s.InviteUser(context.Background(), "ws-1", "u3", tc.inviterID)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if invite.ID != "inv-1" {
				t.Errorf("expected invite inv-1, got %s", invite.ID)
			}
		})
	}
}

func TestService_InviteUserTxFailureSkipsNotifications(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newMockedService(ctrl)
	txErr := errors.New("serialization failure")

	m.storage.EXPECT().GetWorkspace(gomock.Any(), "ws-1").Return(&types.Workspace{ID: "ws-1", OwnerID: "owner", Capacity: 3}, nil)
	m.directory.EXPECT().GetUser(gomock.Any(), "u3").Return(&types.User{ID: "u3"}, nil)
	m.tx.EXPECT().WithTx(gomock.Any(), gomock.Any()).Return(txErr)
	m.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Times(0)

	if _, err := s.InviteUser(context.Background(), "ws-1", "u3", "owner"); !errors.Is(err, txErr) {
		t.Errorf("expected error %v, got %v", txErr, err)
	}
}

func TestService_RespondToInviteLostRace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newMockedService(ctrl)
	runInline(m.tx)

	invite := &types.Invite{ID: "inv-1", WorkspaceID: "ws-1", InvitedUserID: "u3", InviterID: "owner", Status: types.InvitePending}
	ws := &types.Workspace{ID: "ws-1", OwnerID: "owner", Capacity: 5}

	m.storage.EXPECT().GetInvite(gomock.Any(), "inv-1").Return(invite, nil)
	m.storage.EXPECT().GetWorkspaceForUpdate(gomock.Any(), "ws-1").Return(ws, nil)
	m.storage.EXPECT().CountMembers(gomock.Any(), "ws-1").Return(2, nil)
	m.storage.EXPECT().ResolveInvite(gomock.Any(), "inv-1", types.InviteAccepted, s.now()).Return(storage.ErrNotFound)
	m.storage.EXPECT().AddMember(gomock.Any(), gomock.Any()).Times(0)

	err := s.RespondToInvite(context.Background(), "inv-1", "u3", true)

	var werr *Error
	if !errors.As(err, &werr) || werr.Reason != ReasonAlreadyResolved {
		t.Errorf("expected %q conflict, got %v", ReasonAlreadyResolved, err)
	}
}

func TestService_RespondToInviteDecline(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newMockedService(ctrl)
	runInline(m.tx)

	invite := &types.Invite{ID: "inv-1", WorkspaceID: "ws-1", InvitedUserID: "u3", InviterID: "owner", Status: types.InvitePending}

	m.storage.EXPECT().GetInvite(gomock.Any(), "inv-1").Return(invite, nil)
	m.storage.EXPECT().GetWorkspace(gomock.Any(), "ws-1").Return(&types.Workspace{ID: "ws-1", Title: "Capstone"}, nil)
	m.storage.EXPECT().ResolveInvite(gomock.Any(), "inv-1", types.InviteDeclined, s.now()).Return(nil)
	m.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, n types.Notification) error {
			if n.Category != types.NotificationInviteDeclined || n.RecipientID != "owner" || n.ReferenceID != "ws-1" {
				t.Errorf("unexpected notification %+v", n)
			}
			return errors.New("stream unavailable")
		},
	)

	if err := s.RespondToInvite(context.Background(), "inv-1", "u3", false); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestService_CreateWorkspace(t *testing.T) {
	dirErr := errors.New("kratos unavailable")

	testCases := []struct {
		name        string
		input       *CreateWorkspaceInput
		setupMocks  func(*mocks)
		expectedErr error
	}{
		{
			name:        "missing title",
			input:       &CreateWorkspaceInput{Title: "  ", CreatorID: "u1"},
			setupMocks:  func(*mocks) {},
			expectedErr: ErrValidation,
		},
		{
			name:        "unknown status",
			input:       &CreateWorkspaceInput{Title: "Capstone", CreatorID: "u1", Status: "ARCHIVED"},
			setupMocks:  func(*mocks) {},
			expectedErr: ErrValidation,
		},
		{
			name:  "creator unknown",
			input: &CreateWorkspaceInput{Title: "Capstone", CreatorID: "u1"},
			setupMocks: func(m *mocks) {
				m.directory.EXPECT().GetUser(gomock.Any(), "u1").Return(nil, kratos.ErrIdentityNotFound)
			},
			expectedErr: ErrNotFound,
		},
		{
			name:  "directory error",
			input: &CreateWorkspaceInput{Title: "Capstone", CreatorID: "u1", InitialMemberIDs: []string{"u2"}},
			setupMocks: func(m *mocks) {
				m.directory.EXPECT().GetUser(gomock.Any(), "u1").Return(&types.User{ID: "u1"}, nil)
				m.directory.EXPECT().GetUser(gomock.Any(), "u2").Return(nil, dirErr)
			},
			expectedErr: dirErr,
		},
		{
			name:  "initial member insert fails",
			input: &CreateWorkspaceInput{Title: "Capstone", CreatorID: "u1", Capacity: 3, InitialMemberIDs: []string{"u2"}},
			setupMocks: func(m *mocks) {
				runInline(m.tx)
				m.directory.EXPECT().GetUser(gomock.Any(), "u1").Return(&types.User{ID: "u1"}, nil)
				m.directory.EXPECT().GetUser(gomock.Any(), "u2").Return(&types.User{ID: "u2"}, nil)
				m.storage.EXPECT().CreateWorkspace(gomock.Any(), gomock.Any()).Return(&types.Workspace{ID: "ws-1", Title: "Capstone", Capacity: 3}, nil)
				m.storage.EXPECT().AddMember(gomock.Any(), &types.Membership{WorkspaceID: "ws-1", UserID: "u1", Role: types.RoleAdmin}).Return(nil)
				m.storage.EXPECT().AddMember(gomock.Any(), &types.Membership{WorkspaceID: "ws-1", UserID: "u2", Role: types.RoleMember, InvitedBy: "u1"}).Return(storage.ErrDuplicateKey)
				m.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Times(0)
				m.chat.EXPECT().Post(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			expectedErr: storage.ErrDuplicateKey,
		},
		{
			name:  "success",
			input: &CreateWorkspaceInput{Title: "Capstone", CreatorID: "u1", Capacity: 2, InitialMemberIDs: []string{"u2"}},
			setupMocks: func(m *mocks) {
				runInline(m.tx)
				m.directory.EXPECT().GetUser(gomock.Any(), "u1").Return(&types.User{ID: "u1"}, nil)
				m.directory.EXPECT().GetUser(gomock.Any(), "u2").Return(&types.User{ID: "u2"}, nil)
				m.storage.EXPECT().CreateWorkspace(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, w *types.Workspace) (*types.Workspace, error) {
						if w.Status != types.StatusPlanning || w.Capacity != 2 || w.OwnerID != "u1" {
							t.Errorf("unexpected workspace %+v", w)
						}
						out := *w
						out.ID = "ws-1"
						return &out, nil
					},
				)
				m.storage.EXPECT().AddMember(gomock.Any(), &types.Membership{WorkspaceID: "ws-1", UserID: "u1", Role: types.RoleAdmin}).Return(nil)
				m.storage.EXPECT().AddMember(gomock.Any(), &types.Membership{WorkspaceID: "ws-1", UserID: "u2", Role: types.RoleMember, InvitedBy: "u1"}).Return(nil)
				m.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil)
				m.chat.EXPECT().Post(gomock.Any(), "ws-1", gomock.Any()).Return(nil)
				m.storage.EXPECT().ListMembers(gomock.Any(), "ws-1").Return([]*types.Membership{{UserID: "u1"}, {UserID: "u2"}}, nil)
				m.storage.EXPECT().ListPendingInvites(gomock.Any(), "ws-1").Return([]*types.Invite{}, nil)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newMockedService(ctrl)
			tc.setupMocks(m)

			view, err := s.CreateWorkspace(context.Background(), tc.input)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(view.Members) != 2 {
				t.Errorf("expected 2 members, got %d", len(view.Members))
			}
		})
	}
}

func TestService_ListMembersMissingWorkspace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newMockedService(ctrl)
	m.storage.EXPECT().GetWorkspace(gomock.Any(), "ws-1").Return(nil, storage.ErrNotFound)
	m.storage.EXPECT().ListMembers(gomock.Any(), gomock.Any()).Times(0)

	if _, err := s.ListMembers(context.Background(), "ws-1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected error %v, got %v", ErrNotFound, err)
	}
}

func TestService_UpdateWorkspaceValidation(t *testing.T) {
	empty, zero := " ", 0
	status := types.WorkspaceStatus("ARCHIVED")

	testCases := []struct {
		name  string
		patch *WorkspacePatch
	}{
		{name: "nil patch", patch: nil},
		{name: "empty title", patch: &WorkspacePatch{Title: &empty}},
		{name: "zero capacity", patch: &WorkspacePatch{Capacity: &zero}},
		{name: "unknown status", patch: &WorkspacePatch{Status: &status}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, _ := newMockedService(ctrl)

			if _, err := s.UpdateWorkspace(context.Background(), "ws-1", "owner", tc.patch); !errors.Is(err, ErrValidation) {
				t.Errorf("expected error %v, got %v", ErrValidation, err)
			}
		})
	}
}

func TestPermissionEvaluator_EffectiveRole(t *testing.T) {
	ws := &types.Workspace{ID: "ws-1", OwnerID: "owner"}
	dbErr := errors.New("db error")

	testCases := []struct {
		name       string
		userID     string
		setupMocks func(*MockStorageInterface)
		wantRole   types.Role
		wantOK     bool
		wantErr    bool
	}{
		{
			name:       "owner is admin without lookup",
			userID:     "owner",
			setupMocks: func(*MockStorageInterface) {},
			wantRole:   types.RoleAdmin,
			wantOK:     true,
		},
		{
			name:   "moderator",
			userID: "mod",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetMembership(gomock.Any(), "ws-1", "mod").Return(&types.Membership{Role: types.RoleModerator}, nil)
			},
			wantRole: types.RoleModerator,
			wantOK:   true,
		},
		{
			name:   "not a member",
			userID: "stranger",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetMembership(gomock.Any(), "ws-1", "stranger").Return(nil, storage.ErrNotFound)
			},
		},
		{
			name:   "storage error",
			userID: "mod",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetMembership(gomock.Any(), "ws-1", "mod").Return(nil, dbErr)
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			tc.setupMocks(mockStorage)

			role, ok, err := NewPermissionEvaluator(mockStorage).EffectiveRole(context.Background(), ws, tc.userID)

			if (err != nil) != tc.wantErr {
				t.Fatalf("expected error %v, got %v", tc.wantErr, err)
			}
			if role != tc.wantRole || ok != tc.wantOK {
				t.Errorf("expected (%s, %v), got (%s, %v)", tc.wantRole, tc.wantOK, role, ok)
			}
		})
	}
}
