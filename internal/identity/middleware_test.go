// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/senaicommunity/workspace-service/internal/logging"
	"github.com/senaicommunity/workspace-service/internal/monitoring"
	"github.com/senaicommunity/workspace-service/internal/tracing"
)

func TestHTTPMiddleware(t *testing.T) {
	tests := []struct {
		name   string
		header string
		wantID string
		wantOK bool
	}{
		{name: "with header", header: "user-1", wantID: "user-1", wantOK: true},
		{name: "blank header", header: "   ", wantOK: false},
		{name: "no header", wantOK: false},
	}

	logger := logging.NewNoopLogger()
	mdw := NewMiddleware(tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotID string
			var gotOK bool
			h := mdw.HTTPMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotID, gotOK = UserIDFromContext(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/v0/workspaces", nil)
			if tt.header != "" {
				req.Header.Set(HeaderName, tt.header)
			}
			h.ServeHTTP(httptest.NewRecorder(), req)

			if gotOK != tt.wantOK || gotID != tt.wantID {
				t.Errorf("got (%q, %v), want (%q, %v)", gotID, gotOK, tt.wantID, tt.wantOK)
			}
		})
	}
}
