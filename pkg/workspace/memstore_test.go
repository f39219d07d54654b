// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package workspace

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/senaicommunity/workspace-service/internal/kratos"
	"github.com/senaicommunity/workspace-service/internal/storage"
	"github.com/senaicommunity/workspace-service/internal/types"
)

type memberKey struct {
	workspaceID string
	userID      string
}

type memState struct {
	workspaces  map[string]types.Workspace
	memberships map[memberKey]types.Membership
	invites     map[string]types.Invite
}

func (s memState) clone() memState {
	c := memState{
		workspaces:  make(map[string]types.Workspace, len(s.workspaces)),
		memberships: make(map[memberKey]types.Membership, len(s.memberships)),
		invites:     make(map[string]types.Invite, len(s.invites)),
	}
	for k, v := range s.workspaces {
		c.workspaces[k] = v
	}
	for k, v := range s.memberships {
		c.memberships[k] = v
	}
	for k, v := range s.invites {
		c.invites[k] = v
	}
	return c
}

// memStore is a serializable in-memory store: units of work run one at a
// time and a failing unit of work restores the previous state.
type memStore struct {
	txMu sync.Mutex
	mu   sync.Mutex
	seq  int

	state memState
}

var (
	_ StorageInterface  = (*memStore)(nil)
	_ TxRunnerInterface = (*memStore)(nil)
)

func newMemStore() *memStore {
	return &memStore{
		state: memState{
			workspaces:  map[string]types.Workspace{},
			memberships: map[memberKey]types.Membership{},
			invites:     map[string]types.Invite{},
		},
	}
}

func (m *memStore) WithTx(ctx context.Context, fn func(context.Context) error) error {
	m.txMu.Lock()
	defer m.txMu.Unlock()

	m.mu.Lock()
	snapshot := m.state.clone()
	m.mu.Unlock()

	if err := fn(ctx); err != nil {
		m.mu.Lock()
		m.state = snapshot
		m.mu.Unlock()
		return err
	}
	return nil
}

func (m *memStore) nextID(prefix string) string {
	m.seq++
	return fmt.Sprintf("%s-%d", prefix, m.seq)
}

func (m *memStore) CreateWorkspace(_ context.Context, w *types.Workspace) (*types.Workspace, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ws := *w
	ws.ID = m.nextID("ws")
	ws.CreatedAt = time.Now()
	ws.UpdatedAt = ws.CreatedAt
	m.state.workspaces[ws.ID] = ws

	out := ws
	return &out, nil
}

func (m *memStore) GetWorkspace(_ context.Context, id string) (*types.Workspace, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ws, ok := m.state.workspaces[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &ws, nil
}

func (m *memStore) GetWorkspaceForUpdate(ctx context.Context, id string) (*types.Workspace, error) {
	return m.GetWorkspace(ctx, id)
}

func (m *memStore) UpdateWorkspace(_ context.Context, w *types.Workspace, _ []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.state.workspaces[w.ID]; !ok {
		return storage.ErrNotFound
	}
	m.state.workspaces[w.ID] = *w
	return nil
}

func (m *memStore) DeleteWorkspace(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.state.workspaces[id]; !ok {
		return storage.ErrNotFound
	}
	delete(m.state.workspaces, id)
	for k := range m.state.memberships {
		if k.workspaceID == id {
			delete(m.state.memberships, k)
		}
	}
	for k, v := range m.state.invites {
		if v.WorkspaceID == id {
			delete(m.state.invites, k)
		}
	}
	return nil
}

func (m *memStore) ListWorkspaces(context.Context) ([]*types.Workspace, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]*types.Workspace, 0, len(m.state.workspaces))
	for _, ws := range m.state.workspaces {
		ws := ws
		out = append(out, &ws)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memStore) ListWorkspacesByUserID(_ context.Context, userID string) ([]*types.Workspace, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]*types.Workspace, 0)
	for k := range m.state.memberships {
		if k.userID != userID {
			continue
		}
		ws := m.state.workspaces[k.workspaceID]
		out = append(out, &ws)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memStore) CountWorkspacesByUserID(ctx context.Context, userID string) (int, error) {
	list, err := m.ListWorkspacesByUserID(ctx, userID)
	return len(list), err
}

func (m *memStore) AddMember(_ context.Context, mb *types.Membership) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	k := memberKey{mb.WorkspaceID, mb.UserID}
	if _, ok := m.state.memberships[k]; ok {
		return storage.ErrDuplicateKey
	}
	v := *mb
	v.JoinedAt = time.Now()
	m.state.memberships[k] = v
	return nil
}

func (m *memStore) GetMembership(_ context.Context, workspaceID, userID string) (*types.Membership, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.state.memberships[memberKey{workspaceID, userID}]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &v, nil
}

func (m *memStore) UpdateMemberRole(_ context.Context, workspaceID, userID string, role types.Role) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	k := memberKey{workspaceID, userID}
	v, ok := m.state.memberships[k]
	if !ok {
		return storage.ErrNotFound
	}
	v.Role = role
	m.state.memberships[k] = v
	return nil
}

func (m *memStore) RemoveMember(_ context.Context, workspaceID, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	k := memberKey{workspaceID, userID}
	if _, ok := m.state.memberships[k]; !ok {
		return storage.ErrNotFound
	}
	delete(m.state.memberships, k)
	return nil
}

func (m *memStore) CountMembers(ctx context.Context, workspaceID string) (int, error) {
	list, err := m.ListMembers(ctx, workspaceID)
	return len(list), err
}

func (m *memStore) ListMembers(_ context.Context, workspaceID string) ([]*types.Membership, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]*types.Membership, 0)
	for k, v := range m.state.memberships {
		if k.workspaceID == workspaceID {
			v := v
			out = append(out, &v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UserID < out[j].UserID })
	return out, nil
}

func (m *memStore) CreateInvite(_ context.Context, invite *types.Invite) (*types.Invite, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, v := range m.state.invites {
		if v.WorkspaceID == invite.WorkspaceID && v.InvitedUserID == invite.InvitedUserID && v.Status == types.InvitePending {
			return nil, storage.ErrDuplicateKey
		}
	}

	v := *invite
	v.ID = m.nextID("inv")
	v.Status = types.InvitePending
	v.CreatedAt = time.Now()
	m.state.invites[v.ID] = v

	out := v
	return &out, nil
}

func (m *memStore) GetInvite(_ context.Context, id string) (*types.Invite, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.state.invites[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &v, nil
}

func (m *memStore) HasPendingInvite(_ context.Context, workspaceID, userID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, v := range m.state.invites {
		if v.WorkspaceID == workspaceID && v.InvitedUserID == userID && v.Status == types.InvitePending {
			return true, nil
		}
	}
	return false, nil
}

func (m *memStore) ResolveInvite(_ context.Context, id string, status types.InviteStatus, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.state.invites[id]
	if !ok || v.Status != types.InvitePending {
		return storage.ErrNotFound
	}
	v.Status = status
	v.RespondedAt = &at
	m.state.invites[id] = v
	return nil
}

func (m *memStore) ListPendingInvites(_ context.Context, workspaceID string) ([]*types.Invite, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]*types.Invite, 0)
	for _, v := range m.state.invites {
		if v.WorkspaceID == workspaceID && v.Status == types.InvitePending {
			v := v
			out = append(out, &v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type memDirectory map[string]bool

func (d memDirectory) GetUser(_ context.Context, id string) (*types.User, error) {
	if !d[id] {
		return nil, kratos.ErrIdentityNotFound
	}
	return &types.User{ID: id, Name: id}, nil
}

type recordingNotifier struct {
	mu   sync.Mutex
	sent []types.Notification
	err  error
}

func (r *recordingNotifier) Notify(_ context.Context, n types.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.err != nil {
		return r.err
	}
	r.sent = append(r.sent, n)
	return nil
}

func (r *recordingNotifier) byCategory(c types.NotificationCategory) []types.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]types.Notification, 0)
	for _, n := range r.sent {
		if n.Category == c {
			out = append(out, n)
		}
	}
	return out
}

type recordingChat struct {
	mu       sync.Mutex
	messages []types.SystemMessage
}

func (r *recordingChat) Post(_ context.Context, workspaceID, text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.messages = append(r.messages, types.SystemMessage{WorkspaceID: workspaceID, Text: text})
	return nil
}

type fakeMedia struct {
	url     string
	err     error
	deleted []string
}

func (f *fakeMedia) Upload(context.Context, string, string, []byte) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.url, nil
}

func (f *fakeMedia) Delete(_ context.Context, url string) error {
	f.deleted = append(f.deleted, url)
	return nil
}

var errMediaDown = errors.New("media service unavailable")
