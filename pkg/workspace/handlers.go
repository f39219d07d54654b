// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package workspace

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	httptypes "github.com/senaicommunity/workspace-service/internal/http/types"
	"github.com/senaicommunity/workspace-service/internal/identity"
	"github.com/senaicommunity/workspace-service/internal/logging"
	"github.com/senaicommunity/workspace-service/internal/monitoring"
	"github.com/senaicommunity/workspace-service/internal/tracing"
	"github.com/senaicommunity/workspace-service/internal/types"
)

type coverImage struct {
	Filename    string `json:"filename" validate:"required"`
	ContentType string `json:"content_type" validate:"required"`
	// Data is base64 encoded in JSON.
	Data []byte `json:"data" validate:"required"`
}

func (c *coverImage) upload() *Upload {
	if c == nil {
		return nil
	}
	return &Upload{Filename: c.Filename, ContentType: c.ContentType, Data: c.Data}
}

type CreateWorkspaceRequest struct {
	Title            string      `json:"title" validate:"required,max=200"`
	Description      string      `json:"description" validate:"max=5000"`
	Capacity         int         `json:"capacity" validate:"gte=0"`
	Private          bool        `json:"private"`
	Status           string      `json:"status" validate:"omitempty,oneof=PLANNING IN_PROGRESS DONE"`
	DueDate          *time.Time  `json:"due_date"`
	Links            string      `json:"links"`
	InitialMemberIDs []string    `json:"initial_member_ids" validate:"dive,required"`
	CoverImage       *coverImage `json:"cover_image"`
}

type UpdateWorkspaceRequest struct {
	Title       *string     `json:"title" validate:"omitempty,max=200"`
	Description *string     `json:"description" validate:"omitempty,max=5000"`
	Capacity    *int        `json:"capacity" validate:"omitempty,gte=1"`
	Private     *bool       `json:"private"`
	Status      *string     `json:"status" validate:"omitempty,oneof=PLANNING IN_PROGRESS DONE"`
	DueDate     *time.Time  `json:"due_date"`
	Links       *string     `json:"links"`
	CoverImage  *coverImage `json:"cover_image"`
}

type InviteRequest struct {
	UserID string `json:"user_id" validate:"required"`
}

type ChangeRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=ADMIN MODERATOR MEMBER"`
}

type CountResponse struct {
	UserID string `json:"user_id"`
	Count  int    `json:"count"`
}

type API struct {
	service   ServiceInterface
	validator *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Route("/api/v0/workspaces", func(r chi.Router) {
		r.Post("/", a.handleCreate)
		r.Get("/", a.handleList)
		r.Get("/{id}", a.handleGet)
		r.Patch("/{id}", a.handleUpdate)
		r.Delete("/{id}", a.handleDelete)
		r.Get("/{id}/members", a.handleListMembers)
		r.Delete("/{id}/members/{user_id}", a.handleRemoveMember)
		r.Put("/{id}/members/{user_id}/role", a.handleChangeRole)
		r.Get("/{id}/invites", a.handleListInvites)
		r.Post("/{id}/invites", a.handleInvite)
	})

	mux.Post("/api/v0/invites/{id}/accept", a.handleAccept)
	mux.Post("/api/v0/invites/{id}/decline", a.handleDecline)
	mux.Delete("/api/v0/invites/{id}", a.handleCancel)

	mux.Get("/api/v0/users/{id}/workspaces/count", a.handleCount)
}

func (a *API) handleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "workspace.API.handleCreate")
	defer span.End()

	userID, ok := a.caller(w, r)
	if !ok {
		return
	}

	req := new(CreateWorkspaceRequest)
	if !a.decode(w, r, req) {
		return
	}

	view, err := a.service.CreateWorkspace(ctx, &CreateWorkspaceInput{
		Title:            req.Title,
		Description:      req.Description,
		Capacity:         req.Capacity,
		Private:          req.Private,
		Status:           types.WorkspaceStatus(req.Status),
		DueDate:          req.DueDate,
		Links:            req.Links,
		CreatorID:        userID,
		InitialMemberIDs: req.InitialMemberIDs,
		CoverImage:       req.CoverImage.upload(),
	})
	if err != nil {
		a.writeError(w, err, view)
		return
	}

	httptypes.WriteJSON(w, http.StatusCreated, httptypes.Response{Data: view, Message: "project created"})
}

// handleList lists the caller's workspaces, or every workspace with scope=all.
func (a *API) handleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "workspace.API.handleList")
	defer span.End()

	var (
		workspaces []*types.Workspace
		err        error
	)

	switch scope := r.URL.Query().Get("scope"); scope {
	case "all":
		workspaces, err = a.service.ListWorkspaces(ctx)
	case "", "mine":
		userID, ok := a.caller(w, r)
		if !ok {
			return
		}
		workspaces, err = a.service.ListUserWorkspaces(ctx, userID)
	default:
		httptypes.WriteJSON(w, http.StatusBadRequest, httptypes.Response{Message: "unknown scope " + strconv.Quote(scope), Kind: "VALIDATION"})
		return
	}
	if err != nil {
		a.writeError(w, err, nil)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, httptypes.Response{Data: workspaces, Message: "projects"})
}

func (a *API) handleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "workspace.API.handleGet")
	defer span.End()

	view, err := a.service.GetWorkspace(ctx, chi.URLParam(r, "id"))
	if err != nil {
		a.writeError(w, err, nil)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, httptypes.Response{Data: view, Message: "project"})
}

func (a *API) handleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "workspace.API.handleUpdate")
	defer span.End()

	userID, ok := a.caller(w, r)
	if !ok {
		return
	}

	req := new(UpdateWorkspaceRequest)
	if !a.decode(w, r, req) {
		return
	}

	patch := &WorkspacePatch{
		Title:       req.Title,
		Description: req.Description,
		Capacity:    req.Capacity,
		Private:     req.Private,
		DueDate:     req.DueDate,
		Links:       req.Links,
		CoverImage:  req.CoverImage.upload(),
	}
	if req.Status != nil {
		status := types.WorkspaceStatus(*req.Status)
		patch.Status = &status
	}

	ws, err := a.service.UpdateWorkspace(ctx, chi.URLParam(r, "id"), userID, patch)
	if err != nil {
		a.writeError(w, err, ws)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, httptypes.Response{Data: ws, Message: "project updated"})
}

func (a *API) handleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "workspace.API.handleDelete")
	defer span.End()

	userID, ok := a.caller(w, r)
	if !ok {
		return
	}

	if err := a.service.DeleteWorkspace(ctx, chi.URLParam(r, "id"), userID); err != nil {
		a.writeError(w, err, nil)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, httptypes.Response{Message: "project deleted"})
}

func (a *API) handleListMembers(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "workspace.API.handleListMembers")
	defer span.End()

	members, err := a.service.ListMembers(ctx, chi.URLParam(r, "id"))
	if err != nil {
		a.writeError(w, err, nil)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, httptypes.Response{Data: members, Message: "members"})
}

func (a *API) handleRemoveMember(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "workspace.API.handleRemoveMember")
	defer span.End()

	userID, ok := a.caller(w, r)
	if !ok {
		return
	}

	if err := a.service.RemoveMember(ctx, chi.URLParam(r, "id"), chi.URLParam(r, "user_id"), userID); err != nil {
		a.writeError(w, err, nil)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, httptypes.Response{Message: "member removed"})
}

func (a *API) handleChangeRole(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "workspace.API.handleChangeRole")
	defer span.End()

	userID, ok := a.caller(w, r)
	if !ok {
		return
	}

	req := new(ChangeRoleRequest)
	if !a.decode(w, r, req) {
		return
	}

	err := a.service.ChangeRole(ctx, chi.URLParam(r, "id"), chi.URLParam(r, "user_id"), types.Role(req.Role), userID)
	if err != nil {
		a.writeError(w, err, nil)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, httptypes.Response{Message: "role updated"})
}

func (a *API) handleListInvites(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "workspace.API.handleListInvites")
	defer span.End()

	invites, err := a.service.ListPendingInvites(ctx, chi.URLParam(r, "id"))
	if err != nil {
		a.writeError(w, err, nil)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, httptypes.Response{Data: invites, Message: "pending invites"})
}

func (a *API) handleInvite(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "workspace.API.handleInvite")
	defer span.End()

	userID, ok := a.caller(w, r)
	if !ok {
		return
	}

	req := new(InviteRequest)
	if !a.decode(w, r, req) {
		return
	}

	invite, err := a.service.InviteUser(ctx, chi.URLParam(r, "id"), req.UserID, userID)
	if err != nil {
		a.writeError(w, err, nil)
		return
	}

	httptypes.WriteJSON(w, http.StatusCreated, httptypes.Response{Data: invite, Message: "invite sent"})
}

func (a *API) handleAccept(w http.ResponseWriter, r *http.Request) {
	a.respond(w, r, true)
}

func (a *API) handleDecline(w http.ResponseWriter, r *http.Request) {
	a.respond(w, r, false)
}

func (a *API) respond(w http.ResponseWriter, r *http.Request, accept bool) {
	ctx, span := a.tracer.Start(r.Context(), "workspace.API.respondToInvite")
	defer span.End()

	userID, ok := a.caller(w, r)
	if !ok {
		return
	}

	if err := a.service.RespondToInvite(ctx, chi.URLParam(r, "id"), userID, accept); err != nil {
		a.writeError(w, err, nil)
		return
	}

	message := "invite declined"
	if accept {
		message = "invite accepted"
	}
	httptypes.WriteJSON(w, http.StatusOK, httptypes.Response{Message: message})
}

func (a *API) handleCancel(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "workspace.API.handleCancel")
	defer span.End()

	userID, ok := a.caller(w, r)
	if !ok {
		return
	}

	if err := a.service.CancelInvite(ctx, chi.URLParam(r, "id"), userID); err != nil {
		a.writeError(w, err, nil)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, httptypes.Response{Message: "invite resolved"})
}

func (a *API) handleCount(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "workspace.API.handleCount")
	defer span.End()

	userID := chi.URLParam(r, "id")

	count, err := a.service.CountUserWorkspaces(ctx, userID)
	if err != nil {
		a.writeError(w, err, nil)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, httptypes.Response{
		Data:    CountResponse{UserID: userID, Count: count},
		Message: strconv.Itoa(count) + " project(s)",
	})
}

func (a *API) caller(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := identity.UserIDFromContext(r.Context())
	if !ok {
		httptypes.WriteJSON(w, http.StatusUnauthorized, httptypes.Response{Message: "missing caller identity", Kind: "UNAUTHENTICATED"})
	}
	return userID, ok
}

func (a *API) decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		a.logger.Debugf("invalid request body: %v", err)
		httptypes.WriteJSON(w, http.StatusBadRequest, httptypes.Response{Message: "invalid request body", Kind: "VALIDATION"})
		return false
	}

	if err := a.validator.Struct(v); err != nil {
		httptypes.WriteJSON(w, http.StatusBadRequest, httptypes.Response{Message: err.Error(), Kind: "VALIDATION"})
		return false
	}

	return true
}

// writeError maps error kinds onto HTTP statuses. data is echoed back when the
// operation produced a result despite failing, as with cover upload errors.
func (a *API) writeError(w http.ResponseWriter, err error, data interface{}) {
	status, kind := http.StatusInternalServerError, "INTERNAL"
	switch {
	case errors.Is(err, ErrNotFound):
		status, kind = http.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, ErrForbidden):
		status, kind = http.StatusForbidden, "FORBIDDEN"
	case errors.Is(err, ErrConflict):
		status, kind = http.StatusConflict, "CONFLICT"
	case errors.Is(err, ErrUploadFailed):
		status, kind = http.StatusBadGateway, "UPLOAD_FAILED"
	case errors.Is(err, ErrValidation):
		status, kind = http.StatusBadRequest, "VALIDATION"
	}

	message := "internal error"
	var werr *Error
	if errors.As(err, &werr) {
		message = werr.Reason
	} else {
		a.logger.Errorf("unexpected error: %v", err)
	}

	if isNil(data) {
		data = nil
	}

	httptypes.WriteJSON(w, status, httptypes.Response{Data: data, Message: message, Kind: kind})
}

func isNil(v interface{}) bool {
	switch d := v.(type) {
	case nil:
		return true
	case *types.WorkspaceView:
		return d == nil
	case *types.Workspace:
		return d == nil
	}
	return false
}

func NewAPI(service ServiceInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	return &API{
		service:   service,
		validator: validator.New(validator.WithRequiredStructEnabled()),
		tracer:    tracer,
		monitor:   monitor,
		logger:    logger,
	}
}
