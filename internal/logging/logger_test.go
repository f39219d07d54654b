// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestDebugLogger(t *testing.T) {
	l := NewLogger("DEBUG")
	if !l.Desugar().Core().Enabled(zap.DebugLevel) {
		t.Fatal("expected debug level to be enabled")
	}
}

func TestInvalidLevelFallsBackToInfo(t *testing.T) {
	l := NewLogger("invalid")
	if l.Desugar().Core().Enabled(zap.DebugLevel) {
		t.Fatal("debug should be disabled for an unknown level")
	}
	if !l.Desugar().Core().Enabled(zap.InfoLevel) {
		t.Fatal("expected info level to be enabled")
	}
}

func TestSecurityLoggerEvents(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	s := newSecurityLogger(zap.New(core))

	s.SystemStartup()
	s.AuthzFailure("user-1", "workspace:ws-1")
	s.PermissionsChanged("owner-1", "user-2", "workspace:ws-1", "MODERATOR")

	entries := logs.All()
	if len(entries) != 3 {
		t.Fatalf("expected 3 security entries, got %d", len(entries))
	}

	expected := []string{
		"sys_startup",
		"authz_fail:user-1,workspace:ws-1",
		"privilege_permissions_changed:user-2,workspace:ws-1,MODERATOR",
	}
	for i, e := range entries {
		fields := e.ContextMap()
		if fields["type"] != "security" {
			t.Errorf("entry %d: expected type security, got %v", i, fields["type"])
		}
		if fields["event"] != expected[i] {
			t.Errorf("entry %d: expected event %q, got %v", i, expected[i], fields["event"])
		}
	}
}

func TestNoopLogger(t *testing.T) {
	l := NewNoopLogger()
	l.Infof("nothing %s", "here")
	l.Security().SystemShutdown()
}
