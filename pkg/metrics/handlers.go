// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package metrics

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/senaicommunity/workspace-service/internal/logging"
)

type API struct {
	handler http.Handler

	logger logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v0/metrics", a.prometheusHTTP)
}

func (a *API) prometheusHTTP(w http.ResponseWriter, r *http.Request) {
	a.handler.ServeHTTP(w, r)
}

// NewAPI exposes the metrics of gatherer, the default registry when nil.
func NewAPI(gatherer prometheus.Gatherer, logger logging.LoggerInterface) *API {
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	a := new(API)
	a.handler = promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
	a.logger = logger

	return a
}
