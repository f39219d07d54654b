// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package prometheus

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/senaicommunity/workspace-service/internal/logging"
)

func TestMonitorRecordsMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMonitorWithRegistry("workspace-service", reg, logging.NewNoopLogger())

	if m.GetService() != "workspace-service" {
		t.Fatalf("unexpected service %q", m.GetService())
	}

	if err := m.SetResponseTimeMetric(map[string]string{"route": "GET/api/v0/status", "status": "OK"}, 0.2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := m.SetDependencyAvailability(map[string]string{"component": "redis"}, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 2; i++ {
		if err := m.IncSideEffectFailure(map[string]string{"effect": "notification"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if got := testutil.ToFloat64(m.sideEffectFailures.With(prometheus.Labels{"effect": "notification"})); got != 2 {
		t.Errorf("expected 2 side effect failures, got %v", got)
	}
	if got := testutil.ToFloat64(m.dependencyAvailable.With(prometheus.Labels{"component": "redis"})); got != 1 {
		t.Errorf("expected redis availability 1, got %v", got)
	}
}

func TestUninstantiatedMonitor(t *testing.T) {
	m := new(Monitor)

	if err := m.SetResponseTimeMetric(nil, 1); err == nil {
		t.Error("expected error for missing histogram")
	}
	if err := m.IncSideEffectFailure(nil); err == nil {
		t.Error("expected error for missing counter")
	}
}
