// Copyright 2025 Canonical Ltd
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/senaicommunity/workspace-service/internal/identity"
	"github.com/senaicommunity/workspace-service/internal/logging"
	"github.com/senaicommunity/workspace-service/internal/monitoring"
	"github.com/senaicommunity/workspace-service/internal/tracing"
	"github.com/senaicommunity/workspace-service/pkg/metrics"
	"github.com/senaicommunity/workspace-service/pkg/status"
	"github.com/senaicommunity/workspace-service/pkg/workspace"
)

func NewRouter(
	svc workspace.ServiceInterface,
	checks map[string]status.Check,
	gatherer prometheus.Gatherer,
	corsOrigins []string,
	authn func(http.Handler) http.Handler,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	if len(corsOrigins) == 0 {
		corsOrigins = []string{"*"}
	}

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		middleware.Recoverer,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS(corsOrigins),
		identity.NewMiddleware(tracer, monitor, logger).HTTPMiddleware,
	)

	// bearer authentication runs last so the token subject wins over the gateway header
	if authn != nil {
		middlewares = append(middlewares, authn)
	}

	router.Use(middlewares...)

	metrics.NewAPI(gatherer, logger).RegisterEndpoints(router)
	status.NewAPI(checks, tracer, monitor, logger).RegisterEndpoints(router)
	workspace.NewAPI(svc, tracer, monitor, logger).RegisterEndpoints(router)

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}
