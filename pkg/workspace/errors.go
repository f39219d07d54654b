// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package workspace

import (
	"errors"
	"fmt"
)

// Error kinds, match with errors.Is.
var (
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
	ErrConflict     = errors.New("conflict")
	ErrUploadFailed = errors.New("upload failed")
	ErrValidation   = errors.New("validation failed")
)

const (
	ReasonInviteForbidden      = "only moderators and admins can invite"
	ReasonAlreadyMember        = "already a member"
	ReasonInvitePending        = "invite already pending"
	ReasonCapacityReached      = "capacity reached"
	ReasonAlreadyResolved      = "already resolved"
	ReasonWorkspaceFull        = "workspace full"
	ReasonCannotRemoveOwner    = "cannot remove owner"
	ReasonCannotAlterOwner     = "cannot alter owner"
	ReasonModeratorRemoveAdmin = "moderators cannot remove admins"
	ReasonCapacityBelowMembers = "capacity below member count"
)

// Error carries a kind and the human readable reason returned to callers.
type Error struct {
	kind   error
	Reason string
	cause  error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Reason, e.cause)
	}
	return e.Reason
}

func (e *Error) Unwrap() []error {
	if e.cause != nil {
		return []error{e.kind, e.cause}
	}
	return []error{e.kind}
}

// Kind returns one of the Err* sentinels.
func (e *Error) Kind() error {
	return e.kind
}

func newError(kind error, reason string) *Error {
	return &Error{kind: kind, Reason: reason}
}

func notFound(reason string) *Error {
	return newError(ErrNotFound, reason)
}

func forbidden(reason string) *Error {
	return newError(ErrForbidden, reason)
}

func conflict(reason string) *Error {
	return newError(ErrConflict, reason)
}

func validation(reason string) *Error {
	return newError(ErrValidation, reason)
}

func uploadFailed(cause error) *Error {
	return &Error{kind: ErrUploadFailed, Reason: "cover image upload failed", cause: cause}
}
