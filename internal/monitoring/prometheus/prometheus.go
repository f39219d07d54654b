// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package prometheus

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/senaicommunity/workspace-service/internal/logging"
	"github.com/senaicommunity/workspace-service/internal/monitoring"
)

var _ monitoring.MonitorInterface = (*Monitor)(nil)

type Monitor struct {
	service string

	responseTime        *prometheus.HistogramVec
	dependencyAvailable *prometheus.GaugeVec
	sideEffectFailures  *prometheus.CounterVec

	logger logging.LoggerInterface
}

func (m *Monitor) GetService() string {
	return m.service
}

func (m *Monitor) SetResponseTimeMetric(tags map[string]string, t float64) error {
	if m.responseTime == nil {
		return fmt.Errorf("metric not instantiated")
	}

	m.responseTime.With(tags).Observe(t)

	return nil
}

func (m *Monitor) SetDependencyAvailability(tags map[string]string, t float64) error {
	if m.dependencyAvailable == nil {
		return fmt.Errorf("metric not instantiated")
	}

	m.dependencyAvailable.With(tags).Set(t)

	return nil
}

// IncSideEffectFailure counts notification, chat and media calls that failed
// after the owning operation committed.
func (m *Monitor) IncSideEffectFailure(tags map[string]string) error {
	if m.sideEffectFailures == nil {
		return fmt.Errorf("metric not instantiated")
	}

	m.sideEffectFailures.With(tags).Inc()

	return nil
}

func (m *Monitor) register(reg prometheus.Registerer) {
	m.responseTime = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:        "http_response_time_seconds",
			Help:        "http_response_time_seconds",
			ConstLabels: prometheus.Labels{"service": m.service},
		},
		[]string{"route", "status"},
	)

	m.dependencyAvailable = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name:        "dependency_available",
			Help:        "dependency_available",
			ConstLabels: prometheus.Labels{"service": m.service},
		},
		[]string{"component"},
	)

	m.sideEffectFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name:        "workspace_side_effect_failures_total",
			Help:        "Best-effort side effects that failed after commit",
			ConstLabels: prometheus.Labels{"service": m.service},
		},
		[]string{"effect"},
	)

	for _, c := range []prometheus.Collector{m.responseTime, m.dependencyAvailable, m.sideEffectFailures} {
		if err := reg.Register(c); err != nil {
			m.logger.Debugf("metric already registered: %v", err)
		}
	}
}

// NewMonitor registers the service collectors on the default registry.
func NewMonitor(service string, logger logging.LoggerInterface) *Monitor {
	return NewMonitorWithRegistry(service, prometheus.DefaultRegisterer, logger)
}

func NewMonitorWithRegistry(service string, reg prometheus.Registerer, logger logging.LoggerInterface) *Monitor {
	m := new(Monitor)

	m.service = service
	m.logger = logger
	m.register(reg)

	return m
}
