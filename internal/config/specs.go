// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	KratosAdminURL string        `envconfig:"kratos_admin_url" required:"true"`
	KratosTimeout  time.Duration `envconfig:"kratos_timeout" default:"5s"`

	AuthenticationEnabled         bool     `envconfig:"authentication_enabled" default:"false"`
	AuthenticationIssuer          string   `envconfig:"authentication_issuer"`
	AuthenticationJwksURL         string   `envconfig:"authentication_jwks_url"`
	AuthenticationAllowedSubjects []string `envconfig:"authentication_allowed_subjects"`
	AuthenticationRequiredScope   string   `envconfig:"authentication_required_scope"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port               int      `envconfig:"port" default:"8080"`
	CORSAllowedOrigins []string `envconfig:"cors_allowed_origins" default:"*"`

	DSN string `envconfig:"DSN" required:"true"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`

	RedisEnabled            bool   `envconfig:"redis_enabled" default:"true"`
	RedisAddress            string `envconfig:"redis_address" default:"localhost:6379"`
	RedisPassword           string `envconfig:"redis_password"`
	RedisDB                 int    `envconfig:"redis_db" default:"0"`
	NotificationsStream     string `envconfig:"notifications_stream" default:"workspace:notifications"`
	ChatSystemMessageStream string `envconfig:"chat_system_message_stream" default:"workspace:chat:system"`

	MediaServiceURL     string        `envconfig:"media_service_url"`
	MediaServiceTimeout time.Duration `envconfig:"media_service_timeout" default:"10s"`

	DefaultWorkspaceCapacity int `envconfig:"default_workspace_capacity" default:"50"`
}

const redacted = "REDACTED"

// Redacted returns a copy of the spec safe to log, with credentials masked.
func (s EnvSpec) Redacted() EnvSpec {
	if s.DSN != "" {
		s.DSN = redacted
	}
	if s.RedisPassword != "" {
		s.RedisPassword = redacted
	}
	return s
}
