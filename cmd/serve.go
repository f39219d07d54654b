// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"
	promclient "github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/senaicommunity/workspace-service/internal/chat"
	"github.com/senaicommunity/workspace-service/internal/config"
	"github.com/senaicommunity/workspace-service/internal/db"
	"github.com/senaicommunity/workspace-service/internal/kratos"
	"github.com/senaicommunity/workspace-service/internal/logging"
	"github.com/senaicommunity/workspace-service/internal/media"
	"github.com/senaicommunity/workspace-service/internal/monitoring/prometheus"
	"github.com/senaicommunity/workspace-service/internal/notifications"
	"github.com/senaicommunity/workspace-service/internal/storage"
	"github.com/senaicommunity/workspace-service/internal/tracing"
	"github.com/senaicommunity/workspace-service/pkg/authentication"
	"github.com/senaicommunity/workspace-service/pkg/status"
	"github.com/senaicommunity/workspace-service/pkg/web"
	"github.com/senaicommunity/workspace-service/pkg/workspace"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	Run: func(cmd *cobra.Command, args []string) {
		main()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve() error {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		panic(fmt.Errorf("issues with environment sourcing: %s", err))
	}

	logger := logging.NewLogger(specs.LogLevel)
	logger.Debugf("env vars: %+v", specs.Redacted())
	defer logger.Sync()

	monitor := prometheus.NewMonitor("workspace-service", logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	dbConfig := db.Config{
		DSN:             specs.DSN,
		MaxConns:        specs.DBMaxConns,
		MinConns:        specs.DBMinConns,
		MaxConnLifetime: specs.DBMaxConnLifetime,
		MaxConnIdleTime: specs.DBMaxConnIdleTime,
		TracingEnabled:  specs.TracingEnabled,
	}
	dbClient, err := db.NewDBClient(dbConfig, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create database client: %v", err)
	}
	defer dbClient.Close()
	s := storage.NewStorage(dbClient, tracer, monitor, logger)

	checks := map[string]status.Check{
		"database": dbClient.Ping,
	}

	var (
		notifier workspace.NotifierInterface
		poster   workspace.ChatInterface
	)
	if specs.RedisEnabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     specs.RedisAddress,
			Password: specs.RedisPassword,
			DB:       specs.RedisDB,
		})
		defer rdb.Close()

		notifier = notifications.NewPublisher(rdb, specs.NotificationsStream, tracer, monitor, logger)
		poster = chat.NewPoster(rdb, specs.ChatSystemMessageStream, tracer, monitor, logger)
		checks["redis"] = func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		}
		logger.Infof("Publishing notifications to redis stream %s", specs.NotificationsStream)
	} else {
		notifier = notifications.NewNoopPublisher(logger)
		poster = chat.NewNoopPoster(logger)
		logger.Info("Redis is disabled, notifications and system messages are dropped")
	}

	var mediaClient workspace.MediaInterface = media.NoopClient{}
	if specs.MediaServiceURL != "" {
		mediaClient = media.NewClient(specs.MediaServiceURL, specs.MediaServiceTimeout, tracer, monitor, logger)
	} else {
		logger.Info("Media service is not configured, cover uploads are rejected")
	}

	kratosClient := kratos.NewClient(
		specs.KratosAdminURL,
		specs.KratosTimeout,
		tracer,
		monitor,
		logger,
	)

	workspaceService := workspace.NewService(
		s,
		dbClient,
		kratosClient,
		notifier,
		poster,
		mediaClient,
		specs.DefaultWorkspaceCapacity,
		tracer,
		monitor,
		logger,
	)

	var authn func(http.Handler) http.Handler
	if specs.AuthenticationEnabled {
		verifier, err := authentication.NewJWTAuthenticator(
			context.Background(),
			specs.AuthenticationIssuer,
			specs.AuthenticationJwksURL,
			specs.AuthenticationAllowedSubjects,
			specs.AuthenticationRequiredScope,
			tracer,
			monitor,
			logger,
		)
		if err != nil {
			return fmt.Errorf("failed to set up authentication: %w", err)
		}
		authn = authentication.NewMiddleware(verifier, []string{"/api/v0/status", "/api/v0/metrics"}, tracer, monitor, logger).Authenticate()
		logger.Info("Bearer token authentication is enabled")
	}

	router := web.NewRouter(
		workspaceService,
		checks,
		promclient.DefaultGatherer,
		specs.CORSAllowedOrigins,
		authn,
		tracer,
		monitor,
		logger,
	)
	logger.Infof("Starting HTTP server on port %v", specs.Port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	var serverError error
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Security().SystemStartup()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			c <- os.Interrupt
		}
	}()

	<-c

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Security().SystemShutdown()
	if err := srv.Shutdown(ctx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	return serverError
}

func main() {
	if err := serve(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}
