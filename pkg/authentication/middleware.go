// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"net/http"
	"strings"

	httptypes "github.com/senaicommunity/workspace-service/internal/http/types"
	"github.com/senaicommunity/workspace-service/internal/identity"
	"github.com/senaicommunity/workspace-service/internal/logging"
	"github.com/senaicommunity/workspace-service/internal/monitoring"
	"github.com/senaicommunity/workspace-service/internal/tracing"
)

// Middleware authenticates callers with bearer tokens and exposes the token
// subject as the caller identity, overriding any gateway supplied header.
type Middleware struct {
	verifier TokenVerifierInterface
	// skip lists path prefixes served without a token.
	skip []string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (m *Middleware) Authenticate() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if m.skipped(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			ctx, span := m.tracer.Start(r.Context(), "authentication.Middleware.Authenticate")
			defer span.End()

			token, found := m.getBearerToken(r.Header)
			if !found {
				m.unauthorizedResponse(w, "missing authorization header")
				return
			}

			userID, err := m.verifier.VerifyToken(ctx, token)
			if err != nil {
				m.logger.Debugf("JWT verification failed: %v", err)
				m.unauthorizedResponse(w, "invalid token")
				return
			}

			next.ServeHTTP(w, r.WithContext(identity.WithUserID(ctx, userID)))
		})
	}
}

func (m *Middleware) skipped(path string) bool {
	for _, prefix := range m.skip {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

func (m *Middleware) getBearerToken(headers http.Header) (string, bool) {
	bearer := headers.Get("Authorization")

	// Only support "Bearer <token>" format (RFC 6750)
	if !strings.HasPrefix(bearer, "Bearer ") {
		return "", false
	}

	token := strings.TrimSpace(strings.TrimPrefix(bearer, "Bearer "))
	return token, token != ""
}

func (m *Middleware) unauthorizedResponse(w http.ResponseWriter, message string) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	httptypes.WriteJSON(w, http.StatusUnauthorized, httptypes.Response{Message: message, Kind: "UNAUTHENTICATED"})
}

func NewMiddleware(verifier TokenVerifierInterface, skip []string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		verifier: verifier,
		skip:     skip,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}
