// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"context"
	"encoding/json"
	"net/http"
	"sort"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/senaicommunity/workspace-service/internal/logging"
	"github.com/senaicommunity/workspace-service/internal/monitoring"
	"github.com/senaicommunity/workspace-service/internal/tracing"
	"github.com/senaicommunity/workspace-service/internal/version"
)

const checkTimeout = 2 * time.Second

// Check pings one dependency, a nil error means available.
type Check func(context.Context) error

type Status struct {
	Status       string            `json:"status"`
	BuildVersion string            `json:"buildVersion"`
	Dependencies map[string]string `json:"dependencies,omitempty"`
}

type API struct {
	checks map[string]Check

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v0/status", a.alive)
	mux.Get("/api/v0/status/ready", a.ready)
}

func (a *API) alive(w http.ResponseWriter, r *http.Request) {
	a.write(w, http.StatusOK, &Status{Status: "ok", BuildVersion: version.Version})
}

func (a *API) ready(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "status.API.ready")
	defer span.End()

	names := make([]string, 0, len(a.checks))
	for name := range a.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	s := &Status{Status: "ok", BuildVersion: version.Version, Dependencies: make(map[string]string, len(names))}
	code := http.StatusOK

	for _, name := range names {
		cctx, cancel := context.WithTimeout(ctx, checkTimeout)
		err := a.checks[name](cctx)
		cancel()

		availability := 1.0
		s.Dependencies[name] = "ok"
		if err != nil {
			a.logger.Warnf("dependency %s unavailable: %v", name, err)
			availability = 0
			s.Dependencies[name] = "unavailable"
			s.Status = "degraded"
			code = http.StatusServiceUnavailable
		}

		if err := a.monitor.SetDependencyAvailability(map[string]string{"component": name}, availability); err != nil {
			a.logger.Debugf("failed to record %s availability: %v", name, err)
		}
	}

	a.write(w, code, s)
}

func (a *API) write(w http.ResponseWriter, code int, s *Status) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(s); err != nil {
		a.logger.Errorf("failed to encode status: %v", err)
	}
}

func NewAPI(checks map[string]Check, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.checks = checks
	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
