// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/senaicommunity/workspace-service/internal/identity"
	"github.com/senaicommunity/workspace-service/internal/logging"
	"github.com/senaicommunity/workspace-service/internal/monitoring"
	"github.com/senaicommunity/workspace-service/internal/tracing"
)

//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_authentication.go -source=./interfaces.go

func newTestMiddleware(verifier TokenVerifierInterface) *Middleware {
	logger := logging.NewNoopLogger()
	return NewMiddleware(verifier, []string{"/api/v0/status"}, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("workspace", logger), logger)
}

func TestMiddleware_Authenticate(t *testing.T) {
	tests := []struct {
		name               string
		path               string
		authHeader         string
		setupMocks         func(*MockTokenVerifierInterface)
		expectedStatusCode int
		expectedUserID     string
	}{
		{
			name:               "Missing token - rejects request",
			path:               "/api/v0/workspaces",
			setupMocks:         func(*MockTokenVerifierInterface) {},
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:               "Invalid token format - rejects request",
			path:               "/api/v0/workspaces",
			authHeader:         "InvalidToken",
			setupMocks:         func(*MockTokenVerifierInterface) {},
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:       "Token verification fails - rejects request",
			path:       "/api/v0/workspaces",
			authHeader: "Bearer invalid-token",
			setupMocks: func(v *MockTokenVerifierInterface) {
				v.EXPECT().VerifyToken(gomock.Any(), "invalid-token").Return("", fmt.Errorf("invalid token"))
			},
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:       "Valid token sets the caller identity",
			path:       "/api/v0/workspaces",
			authHeader: "Bearer valid-token",
			setupMocks: func(v *MockTokenVerifierInterface) {
				v.EXPECT().VerifyToken(gomock.Any(), "valid-token").Return("user-123", nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedUserID:     "user-123",
		},
		{
			name:               "Skipped path needs no token",
			path:               "/api/v0/status/ready",
			setupMocks:         func(*MockTokenVerifierInterface) {},
			expectedStatusCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockVerifier := NewMockTokenVerifierInterface(ctrl)
			tt.setupMocks(mockVerifier)

			var gotUserID string
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUserID, _ = identity.UserIDFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			// a gateway header must not win over the token subject
			req.Header.Set(identity.HeaderName, "spoofed")
			rr := httptest.NewRecorder()

			newTestMiddleware(mockVerifier).Authenticate()(handler).ServeHTTP(rr, req)

			if rr.Code != tt.expectedStatusCode {
				t.Errorf("expected status %d, got %d", tt.expectedStatusCode, rr.Code)
			}
			if gotUserID != tt.expectedUserID {
				t.Errorf("expected user %q, got %q", tt.expectedUserID, gotUserID)
			}
		})
	}
}

func TestMiddleware_GetBearerToken(t *testing.T) {
	tests := []struct {
		name          string
		authHeader    string
		expectedToken string
		expectedFound bool
	}{
		{name: "No Authorization header"},
		{name: "Bearer token", authHeader: "Bearer my-token-123", expectedToken: "my-token-123", expectedFound: true},
		{name: "Empty bearer token", authHeader: "Bearer  "},
		{name: "Raw token without Bearer prefix", authHeader: "my-token-123"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			middleware := newTestMiddleware(NewMockTokenVerifierInterface(ctrl))

			headers := http.Header{}
			if test.authHeader != "" {
				headers.Set("Authorization", test.authHeader)
			}

			token, found := middleware.getBearerToken(headers)

			if token != test.expectedToken {
				t.Errorf("expected token %q, got %q", test.expectedToken, token)
			}
			if found != test.expectedFound {
				t.Errorf("expected found %v, got %v", test.expectedFound, found)
			}
		})
	}
}
