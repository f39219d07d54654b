// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"fmt"

	"go.uber.org/zap"
)

const securityAppID = "workspace-service"

var _ SecurityLoggerInterface = (*SecurityLogger)(nil)

type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) SystemStartup() {
	s.emit("sys_startup", "INFO", "workspace service started")
}

func (s *SecurityLogger) SystemShutdown() {
	s.emit("sys_shutdown", "INFO", "workspace service stopped")
}

func (s *SecurityLogger) AuthzFailure(userID, resource string) {
	s.emit(
		fmt.Sprintf("authz_fail:%s,%s", userID, resource),
		"CRITICAL",
		fmt.Sprintf("user %s attempted to access %s without entitlement", userID, resource),
	)
}

func (s *SecurityLogger) AdminAction(userID, action, resource string) {
	s.emit(
		fmt.Sprintf("authz_admin:%s,%s", userID, action),
		"WARN",
		fmt.Sprintf("user %s performed %s on %s", userID, action, resource),
	)
}

func (s *SecurityLogger) PermissionsChanged(actorID, targetID, resource, role string) {
	s.emit(
		fmt.Sprintf("privilege_permissions_changed:%s,%s,%s", targetID, resource, role),
		"WARN",
		fmt.Sprintf("user %s changed role of %s on %s to %s", actorID, targetID, resource, role),
	)
}

func (s *SecurityLogger) emit(event, level, description string) {
	s.l.Info(
		description,
		zap.String("type", "security"),
		zap.String("appid", securityAppID),
		zap.String("event", event),
		zap.String("level", level),
	)
}

func newSecurityLogger(l *zap.Logger) *SecurityLogger {
	return &SecurityLogger{l: l.With(zap.String("logger", "security"))}
}
