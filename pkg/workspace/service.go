// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package workspace

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/senaicommunity/workspace-service/internal/kratos"
	"github.com/senaicommunity/workspace-service/internal/logging"
	"github.com/senaicommunity/workspace-service/internal/monitoring"
	"github.com/senaicommunity/workspace-service/internal/storage"
	"github.com/senaicommunity/workspace-service/internal/tracing"
	"github.com/senaicommunity/workspace-service/internal/types"
)

const DefaultCapacity = 50

var _ ServiceInterface = (*Service)(nil)

// Service coordinates workspace membership and the invite lifecycle.
// Every mutation runs inside one unit of work on the TxRunner; notifications
// and chat messages are collected during the unit of work and delivered only
// after it commits.
type Service struct {
	storage     StorageInterface
	tx          TxRunnerInterface
	permissions *PermissionEvaluator
	directory   DirectoryInterface
	notifier    NotifierInterface
	chat        ChatInterface
	media       MediaInterface

	defaultCapacity int
	now             func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *Service) CreateWorkspace(ctx context.Context, in *CreateWorkspaceInput) (*types.WorkspaceView, error) {
	ctx, span := s.tracer.Start(ctx, "workspace.Service.CreateWorkspace")
	defer span.End()

	ws, err := s.newWorkspace(in)
	if err != nil {
		return nil, err
	}

	if _, err := s.resolveUser(ctx, in.CreatorID, "creator not found"); err != nil {
		return nil, err
	}

	initial, err := s.resolveInitialMembers(ctx, in.CreatorID, in.InitialMemberIDs)
	if err != nil {
		return nil, err
	}

	if 1+len(initial) > ws.Capacity {
		return nil, validation(fmt.Sprintf("%d initial members exceed capacity %d", 1+len(initial), ws.Capacity))
	}

	out := new(effects)
	err = s.tx.WithTx(ctx, func(ctx context.Context) error {
		created, err := s.storage.CreateWorkspace(ctx, ws)
		if err != nil {
			return fmt.Errorf("failed to create workspace: %w", err)
		}
		ws = created

		owner := &types.Membership{WorkspaceID: ws.ID, UserID: in.CreatorID, Role: types.RoleAdmin}
		if err := s.storage.AddMember(ctx, owner); err != nil {
			return fmt.Errorf("failed to add owner membership: %w", err)
		}

		for _, userID := range initial {
			m := &types.Membership{
				WorkspaceID: ws.ID,
				UserID:      userID,
				Role:        types.RoleMember,
				InvitedBy:   in.CreatorID,
			}
			if err := s.storage.AddMember(ctx, m); err != nil {
				return fmt.Errorf("failed to add initial member %s: %w", userID, err)
			}

			out.notify(types.Notification{
				RecipientID: userID,
				ActorID:     in.CreatorID,
				Message:     fmt.Sprintf("You were added to the project %q", ws.Title),
				Category:    types.NotificationAddedToWorkspace,
				ReferenceID: ws.ID,
			})
		}

		out.post(ws.ID, creationMessage(ws.Title, len(initial)))
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.dispatch(ctx, out)

	var uploadErr error
	if in.CoverImage != nil {
		uploadErr = s.attachCover(ctx, ws, in.CoverImage)
	}

	view, err := s.view(ctx, ws)
	if err != nil {
		return nil, err
	}

	if uploadErr != nil {
		return view, uploadErr
	}

	return view, nil
}

func creationMessage(title string, added int) string {
	if added == 0 {
		return "Welcome to your new project chat! Add participants to start collaborating."
	}
	return fmt.Sprintf("Chat for project %q created. %d member(s) added.", title, added)
}

func (s *Service) newWorkspace(in *CreateWorkspaceInput) (*types.Workspace, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, validation("title is required")
	}
	if in.CreatorID == "" {
		return nil, validation("creator is required")
	}
	if in.Capacity < 0 {
		return nil, validation("capacity must not be negative")
	}

	capacity := in.Capacity
	if capacity == 0 {
		capacity = s.defaultCapacity
	}

	status := in.Status
	if status == "" {
		status = types.StatusPlanning
	}
	if !status.Valid() {
		return nil, validation(fmt.Sprintf("unknown status %q", status))
	}

	return &types.Workspace{
		Title:       title,
		Description: in.Description,
		OwnerID:     in.CreatorID,
		Capacity:    capacity,
		Private:     in.Private,
		Status:      status,
		DueDate:     in.DueDate,
		Links:       in.Links,
	}, nil
}

// resolveInitialMembers de-duplicates ids, drops the creator and skips ids the
// directory does not know.
func (s *Service) resolveInitialMembers(ctx context.Context, creatorID string, ids []string) ([]string, error) {
	seen := map[string]bool{creatorID: true}
	resolved := make([]string, 0, len(ids))

	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true

		if _, err := s.directory.GetUser(ctx, id); err != nil {
			if errors.Is(err, kratos.ErrIdentityNotFound) {
				s.logger.Warnf("skipping unknown initial member %s", id)
				continue
			}
			return nil, fmt.Errorf("failed to resolve initial member %s: %w", id, err)
		}
		resolved = append(resolved, id)
	}

	return resolved, nil
}

func (s *Service) resolveUser(ctx context.Context, id, reason string) (*types.User, error) {
	user, err := s.directory.GetUser(ctx, id)
	if errors.Is(err, kratos.ErrIdentityNotFound) {
		return nil, notFound(reason)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve user %s: %w", id, err)
	}
	return user, nil
}

// attachCover uploads the cover after the workspace committed; the workspace
// survives an upload failure and the caller gets ErrUploadFailed.
func (s *Service) attachCover(ctx context.Context, ws *types.Workspace, img *Upload) error {
	url, err := s.media.Upload(ctx, img.Filename, img.ContentType, img.Data)
	if err != nil {
		s.sideEffectFailed("media_upload")
		s.logger.Errorf("failed to upload cover for workspace %s: %v", ws.ID, err)
		return uploadFailed(err)
	}

	previous := ws.CoverImageURL
	ws.CoverImageURL = url
	if err := s.storage.UpdateWorkspace(ctx, ws, []string{"cover_image_url"}); err != nil {
		ws.CoverImageURL = previous
		s.deleteMedia(ctx, url)
		s.logger.Errorf("failed to store cover for workspace %s: %v", ws.ID, err)
		return uploadFailed(err)
	}

	if previous != "" {
		s.deleteMedia(ctx, previous)
	}

	return nil
}

func (s *Service) deleteMedia(ctx context.Context, url string) {
	if err := s.media.Delete(ctx, url); err != nil {
		s.sideEffectFailed("media_delete")
		s.logger.Warnf("failed to delete media %s: %v", url, err)
	}
}

func (s *Service) GetWorkspace(ctx context.Context, workspaceID string) (*types.WorkspaceView, error) {
	ctx, span := s.tracer.Start(ctx, "workspace.Service.GetWorkspace")
	defer span.End()

	ws, err := s.workspace(ctx, workspaceID, false)
	if err != nil {
		return nil, err
	}

	return s.view(ctx, ws)
}

func (s *Service) view(ctx context.Context, ws *types.Workspace) (*types.WorkspaceView, error) {
	members, err := s.storage.ListMembers(ctx, ws.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	invites, err := s.storage.ListPendingInvites(ctx, ws.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list invites: %w", err)
	}

	return &types.WorkspaceView{Workspace: ws, Members: members, PendingInvites: invites}, nil
}

// ListWorkspaces returns every workspace, newest first.
func (s *Service) ListWorkspaces(ctx context.Context) ([]*types.Workspace, error) {
	ctx, span := s.tracer.Start(ctx, "workspace.Service.ListWorkspaces")
	defer span.End()

	return s.storage.ListWorkspaces(ctx)
}

func (s *Service) ListUserWorkspaces(ctx context.Context, userID string) ([]*types.Workspace, error) {
	ctx, span := s.tracer.Start(ctx, "workspace.Service.ListUserWorkspaces")
	defer span.End()

	return s.storage.ListWorkspacesByUserID(ctx, userID)
}

func (s *Service) CountUserWorkspaces(ctx context.Context, userID string) (int, error) {
	ctx, span := s.tracer.Start(ctx, "workspace.Service.CountUserWorkspaces")
	defer span.End()

	return s.storage.CountWorkspacesByUserID(ctx, userID)
}

func (s *Service) UpdateWorkspace(ctx context.Context, workspaceID, actorID string, patch *WorkspacePatch) (*types.Workspace, error) {
	ctx, span := s.tracer.Start(ctx, "workspace.Service.UpdateWorkspace")
	defer span.End()

	if err := validatePatch(patch); err != nil {
		return nil, err
	}

	var ws *types.Workspace
	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		var err error
		if ws, err = s.workspace(ctx, workspaceID, true); err != nil {
			return err
		}

		if err := s.requireRole(ctx, ws, actorID, types.RoleAdmin, "only admins can update the project"); err != nil {
			return err
		}

		if patch.Capacity != nil {
			count, err := s.storage.CountMembers(ctx, ws.ID)
			if err != nil {
				return fmt.Errorf("failed to count members: %w", err)
			}
			if *patch.Capacity < count {
				return conflict(ReasonCapacityBelowMembers)
			}
		}

		paths := applyPatch(ws, patch)
		if err := s.storage.UpdateWorkspace(ctx, ws, paths); err != nil {
			return fmt.Errorf("failed to update workspace: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	var uploadErr error
	if patch.CoverImage != nil {
		uploadErr = s.attachCover(ctx, ws, patch.CoverImage)
	}

	updated, err := s.workspace(ctx, workspaceID, false)
	if err != nil {
		return nil, err
	}

	if uploadErr != nil {
		return updated, uploadErr
	}

	return updated, nil
}

func validatePatch(patch *WorkspacePatch) error {
	if patch == nil {
		return validation("patch is required")
	}
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return validation("title must not be empty")
	}
	if patch.Capacity != nil && *patch.Capacity < 1 {
		return validation("capacity must be at least 1")
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return validation(fmt.Sprintf("unknown status %q", *patch.Status))
	}
	return nil
}

func applyPatch(ws *types.Workspace, patch *WorkspacePatch) []string {
	paths := make([]string, 0)

	if patch.Title != nil {
		ws.Title = strings.TrimSpace(*patch.Title)
		paths = append(paths, "title")
	}
	if patch.Description != nil {
		ws.Description = *patch.Description
		paths = append(paths, "description")
	}
	if patch.Capacity != nil {
		ws.Capacity = *patch.Capacity
		paths = append(paths, "capacity")
	}
	if patch.Private != nil {
		ws.Private = *patch.Private
		paths = append(paths, "private")
	}
	if patch.Status != nil {
		ws.Status = *patch.Status
		paths = append(paths, "status")
	}
	if patch.DueDate != nil {
		ws.DueDate = patch.DueDate
		paths = append(paths, "due_date")
	}
	if patch.Links != nil {
		ws.Links = *patch.Links
		paths = append(paths, "links")
	}

	return paths
}

func (s *Service) DeleteWorkspace(ctx context.Context, workspaceID, actorID string) error {
	ctx, span := s.tracer.Start(ctx, "workspace.Service.DeleteWorkspace")
	defer span.End()

	var cover string
	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		ws, err := s.workspace(ctx, workspaceID, true)
		if err != nil {
			return err
		}

		if !s.permissions.IsOwner(ws, actorID) {
			s.logger.Security().AuthzFailure(actorID, "workspace:"+ws.ID)
			return forbidden("only the owner can delete the project")
		}

		cover = ws.CoverImageURL
		return s.storage.DeleteWorkspace(ctx, ws.ID)
	})
	if err != nil {
		return err
	}

	s.logger.Security().AdminAction(actorID, "delete_workspace", "workspace:"+workspaceID)

	if cover != "" {
		s.deleteMedia(ctx, cover)
	}

	return nil
}

func (s *Service) InviteUser(ctx context.Context, workspaceID, invitedID, inviterID string) (*types.Invite, error) {
	ctx, span := s.tracer.Start(ctx, "workspace.Service.InviteUser")
	defer span.End()

	if invitedID == "" {
		return nil, validation("invited user is required")
	}

	// The directory lookup is a remote call, so it runs before the workspace
	// row is locked; the role check repeats under the lock.
	ws, err := s.workspace(ctx, workspaceID, false)
	if err != nil {
		return nil, err
	}
	if err := s.requireRole(ctx, ws, inviterID, types.RoleModerator, ReasonInviteForbidden); err != nil {
		return nil, err
	}
	if _, err := s.resolveUser(ctx, invitedID, "invited user not found"); err != nil {
		return nil, err
	}

	var invite *types.Invite
	out := new(effects)
	err = s.tx.WithTx(ctx, func(ctx context.Context) error {
		ws, err := s.workspace(ctx, workspaceID, true)
		if err != nil {
			return err
		}

		if err := s.requireRole(ctx, ws, inviterID, types.RoleModerator, ReasonInviteForbidden); err != nil {
			return err
		}

		if _, ok, err := s.permissions.EffectiveRole(ctx, ws, invitedID); err != nil {
			return err
		} else if ok {
			return conflict(ReasonAlreadyMember)
		}

		pending, err := s.storage.HasPendingInvite(ctx, ws.ID, invitedID)
		if err != nil {
			return fmt.Errorf("failed to check pending invites: %w", err)
		}
		if pending {
			return conflict(ReasonInvitePending)
		}

		if err := s.checkCapacity(ctx, ws, ReasonCapacityReached); err != nil {
			return err
		}

		invite, err = s.storage.CreateInvite(ctx, &types.Invite{
			WorkspaceID:   ws.ID,
			InvitedUserID: invitedID,
			InviterID:     inviterID,
		})
		if errors.Is(err, storage.ErrDuplicateKey) {
			return conflict(ReasonInvitePending)
		}
		if err != nil {
			return fmt.Errorf("failed to create invite: %w", err)
		}

		out.notify(types.Notification{
			RecipientID: invitedID,
			ActorID:     inviterID,
			Message:     fmt.Sprintf("You were invited to join the project %q", ws.Title),
			Category:    types.NotificationInvite,
			ReferenceID: invite.ID,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.dispatch(ctx, out)

	return invite, nil
}

// checkCapacity fails with reason when the workspace has no free seat.
func (s *Service) checkCapacity(ctx context.Context, ws *types.Workspace, reason string) error {
	count, err := s.storage.CountMembers(ctx, ws.ID)
	if err != nil {
		return fmt.Errorf("failed to count members: %w", err)
	}
	if count >= ws.Capacity {
		return conflict(reason)
	}
	return nil
}

func (s *Service) RespondToInvite(ctx context.Context, inviteID, userID string, accept bool) error {
	ctx, span := s.tracer.Start(ctx, "workspace.Service.RespondToInvite")
	defer span.End()

	if !accept {
		return s.resolveAsParty(ctx, inviteID, userID, true)
	}

	var full bool
	out := new(effects)
	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		invite, err := s.pendingInvite(ctx, inviteID, userID, true)
		if err != nil {
			return err
		}

		ws, err := s.workspace(ctx, invite.WorkspaceID, true)
		if err != nil {
			return err
		}

		if err := s.checkCapacity(ctx, ws, ReasonWorkspaceFull); err != nil {
			if !errors.Is(err, ErrConflict) {
				return err
			}
			// the DECLINED status must survive, so this unit of work commits
			// and the conflict is reported after it
			full = true
			return s.resolve(ctx, invite.ID, types.InviteDeclined)
		}

		if err := s.resolve(ctx, invite.ID, types.InviteAccepted); err != nil {
			return err
		}

		err = s.storage.AddMember(ctx, &types.Membership{
			WorkspaceID: ws.ID,
			UserID:      userID,
			Role:        types.RoleMember,
			InvitedBy:   invite.InviterID,
		})
		if errors.Is(err, storage.ErrDuplicateKey) {
			return conflict(ReasonAlreadyMember)
		}
		if err != nil {
			return fmt.Errorf("failed to add member: %w", err)
		}

		out.notify(types.Notification{
			RecipientID: invite.InviterID,
			ActorID:     userID,
			Message:     fmt.Sprintf("Your invitation to the project %q was accepted", ws.Title),
			Category:    types.NotificationInviteAccepted,
			ReferenceID: ws.ID,
		})
		return nil
	})
	if err != nil {
		return err
	}

	if full {
		return conflict(ReasonWorkspaceFull)
	}

	s.dispatch(ctx, out)

	return nil
}

// CancelInvite resolves a pending invite on behalf of either party: the
// invitee declines it, the inviter cancels it.
func (s *Service) CancelInvite(ctx context.Context, inviteID, actorID string) error {
	ctx, span := s.tracer.Start(ctx, "workspace.Service.CancelInvite")
	defer span.End()

	return s.resolveAsParty(ctx, inviteID, actorID, false)
}

func (s *Service) resolveAsParty(ctx context.Context, inviteID, actorID string, inviteeOnly bool) error {
	out := new(effects)
	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		invite, err := s.pendingInvite(ctx, inviteID, actorID, inviteeOnly)
		if err != nil {
			return err
		}

		ws, err := s.workspace(ctx, invite.WorkspaceID, false)
		if err != nil {
			return err
		}

		if actorID == invite.InvitedUserID {
			if err := s.resolve(ctx, invite.ID, types.InviteDeclined); err != nil {
				return err
			}
			out.notify(types.Notification{
				RecipientID: invite.InviterID,
				ActorID:     actorID,
				Message:     fmt.Sprintf("Your invitation to the project %q was declined", ws.Title),
				Category:    types.NotificationInviteDeclined,
				ReferenceID: ws.ID,
			})
			return nil
		}

		if err := s.resolve(ctx, invite.ID, types.InviteCanceled); err != nil {
			return err
		}
		out.notify(types.Notification{
			RecipientID: invite.InvitedUserID,
			ActorID:     actorID,
			Message:     fmt.Sprintf("Your invitation to the project %q was canceled", ws.Title),
			Category:    types.NotificationInviteCanceled,
			ReferenceID: ws.ID,
		})
		return nil
	})
	if err != nil {
		return err
	}

	s.dispatch(ctx, out)

	return nil
}

// pendingInvite loads an invite and checks the actor is a party to it and
// that it is still PENDING. With inviteeOnly only the invited user qualifies.
func (s *Service) pendingInvite(ctx context.Context, inviteID, actorID string, inviteeOnly bool) (*types.Invite, error) {
	invite, err := s.storage.GetInvite(ctx, inviteID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, notFound("invite not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get invite: %w", err)
	}

	isInvitee := actorID != "" && actorID == invite.InvitedUserID
	isInviter := actorID != "" && actorID == invite.InviterID
	if !isInvitee && (inviteeOnly || !isInviter) {
		s.logger.Security().AuthzFailure(actorID, "invite:"+invite.ID)
		return nil, forbidden("not a party to this invite")
	}

	if invite.Status.Terminal() {
		return nil, conflict(ReasonAlreadyResolved)
	}

	return invite, nil
}

// resolve moves a PENDING invite to a terminal status; losing a race against
// another resolution reports the invite as already resolved.
func (s *Service) resolve(ctx context.Context, inviteID string, status types.InviteStatus) error {
	err := s.storage.ResolveInvite(ctx, inviteID, status, s.now())
	if errors.Is(err, storage.ErrNotFound) {
		return conflict(ReasonAlreadyResolved)
	}
	if err != nil {
		return fmt.Errorf("failed to resolve invite: %w", err)
	}
	return nil
}

func (s *Service) RemoveMember(ctx context.Context, workspaceID, targetID, actorID string) error {
	ctx, span := s.tracer.Start(ctx, "workspace.Service.RemoveMember")
	defer span.End()

	out := new(effects)
	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		ws, err := s.workspace(ctx, workspaceID, true)
		if err != nil {
			return err
		}

		actorRole, ok, err := s.permissions.EffectiveRole(ctx, ws, actorID)
		if err != nil {
			return err
		}
		if !ok || !actorRole.AtLeast(types.RoleModerator) {
			s.logger.Security().AuthzFailure(actorID, "workspace:"+ws.ID)
			return forbidden("only moderators and admins can remove members")
		}

		target, err := s.storage.GetMembership(ctx, ws.ID, targetID)
		if errors.Is(err, storage.ErrNotFound) {
			return notFound("member not found")
		}
		if err != nil {
			return fmt.Errorf("failed to get membership: %w", err)
		}

		if s.permissions.IsOwner(ws, targetID) {
			return conflict(ReasonCannotRemoveOwner)
		}

		if actorRole == types.RoleModerator && target.Role == types.RoleAdmin {
			s.logger.Security().AuthzFailure(actorID, "workspace:"+ws.ID)
			return forbidden(ReasonModeratorRemoveAdmin)
		}

		if err := s.storage.RemoveMember(ctx, ws.ID, targetID); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return notFound("member not found")
			}
			return fmt.Errorf("failed to remove member: %w", err)
		}

		out.notify(types.Notification{
			RecipientID: targetID,
			ActorID:     actorID,
			Message:     fmt.Sprintf("You were removed from the project %q", ws.Title),
			Category:    types.NotificationMemberRemoved,
			ReferenceID: ws.ID,
		})
		return nil
	})
	if err != nil {
		return err
	}

	s.dispatch(ctx, out)

	return nil
}

func (s *Service) ChangeRole(ctx context.Context, workspaceID, targetID string, role types.Role, actorID string) error {
	ctx, span := s.tracer.Start(ctx, "workspace.Service.ChangeRole")
	defer span.End()

	if !role.Valid() {
		return validation(fmt.Sprintf("unknown role %q", role))
	}

	out := new(effects)
	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		ws, err := s.workspace(ctx, workspaceID, true)
		if err != nil {
			return err
		}

		if !s.permissions.IsOwner(ws, actorID) {
			s.logger.Security().AuthzFailure(actorID, "workspace:"+ws.ID)
			return forbidden("only the owner can change roles")
		}

		if s.permissions.IsOwner(ws, targetID) {
			return conflict(ReasonCannotAlterOwner)
		}

		if err := s.storage.UpdateMemberRole(ctx, ws.ID, targetID, role); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return notFound("member not found")
			}
			return fmt.Errorf("failed to update role: %w", err)
		}

		out.notify(types.Notification{
			RecipientID: targetID,
			ActorID:     actorID,
			Message:     fmt.Sprintf("Your role in the project %q is now %s", ws.Title, role),
			Category:    types.NotificationRoleChanged,
			ReferenceID: ws.ID,
		})
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Security().PermissionsChanged(actorID, targetID, "workspace:"+workspaceID, string(role))
	s.dispatch(ctx, out)

	return nil
}

func (s *Service) ListMembers(ctx context.Context, workspaceID string) ([]*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "workspace.Service.ListMembers")
	defer span.End()

	if _, err := s.workspace(ctx, workspaceID, false); err != nil {
		return nil, err
	}

	return s.storage.ListMembers(ctx, workspaceID)
}

func (s *Service) ListPendingInvites(ctx context.Context, workspaceID string) ([]*types.Invite, error) {
	ctx, span := s.tracer.Start(ctx, "workspace.Service.ListPendingInvites")
	defer span.End()

	if _, err := s.workspace(ctx, workspaceID, false); err != nil {
		return nil, err
	}

	return s.storage.ListPendingInvites(ctx, workspaceID)
}

// workspace loads a workspace, taking its row lock when forUpdate is set.
func (s *Service) workspace(ctx context.Context, id string, forUpdate bool) (*types.Workspace, error) {
	var (
		ws  *types.Workspace
		err error
	)
	if forUpdate {
		ws, err = s.storage.GetWorkspaceForUpdate(ctx, id)
	} else {
		ws, err = s.storage.GetWorkspace(ctx, id)
	}

	if errors.Is(err, storage.ErrNotFound) {
		return nil, notFound("project not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get workspace: %w", err)
	}

	return ws, nil
}

func (s *Service) requireRole(ctx context.Context, ws *types.Workspace, userID string, min types.Role, reason string) error {
	ok, err := s.permissions.HasAtLeastRole(ctx, ws, userID, min)
	if err != nil {
		return err
	}
	if !ok {
		s.logger.Security().AuthzFailure(userID, "workspace:"+ws.ID)
		return forbidden(reason)
	}
	return nil
}

func NewService(
	storage StorageInterface,
	tx TxRunnerInterface,
	directory DirectoryInterface,
	notifier NotifierInterface,
	chat ChatInterface,
	media MediaInterface,
	defaultCapacity int,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	if defaultCapacity <= 0 {
		defaultCapacity = DefaultCapacity
	}

	return &Service{
		storage:         storage,
		tx:              tx,
		permissions:     NewPermissionEvaluator(storage),
		directory:       directory,
		notifier:        notifier,
		chat:            chat,
		media:           media,
		defaultCapacity: defaultCapacity,
		now:             time.Now,
		tracer:          tracer,
		monitor:         monitor,
		logger:          logger,
	}
}
