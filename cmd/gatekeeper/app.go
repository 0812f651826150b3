// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package main

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/holomush/gatekeeper/internal/auth"
	"github.com/holomush/gatekeeper/internal/config"
	"github.com/holomush/gatekeeper/internal/logging"
	"github.com/holomush/gatekeeper/pkg/errutil"
)

// app bundles what every credential-checking command needs.
type app struct {
	cfg      *config.Config
	logger   *slog.Logger
	registry *prometheus.Registry
	auth     *auth.Authenticator
}

// newApp loads configuration and builds the Authenticator.
// Any configuration problem is returned before a check can run.
func newApp(cmd *cobra.Command) (*app, error) {
	cfg, err := config.Load(config.LoadOptions{Path: configFile, Flags: cmd.Flags()})
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(logging.Options{
		Service: "gatekeeper",
		Version: version,
		Format:  cfg.LogFormat,
		Level:   cfg.LogLevel,
	}, cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}

	registry := prometheus.NewRegistry()
	authenticator, err := auth.New(cfg.Credentials(),
		auth.WithLogger(logger),
		auth.WithMetrics(auth.NewMetrics(registry)),
	)
	if err != nil {
		errutil.LogError(logger, "invalid credential table", err)
		return nil, err
	}

	source := cfg.Source
	if source == "" {
		source = "built-in"
	}
	logger.Debug("credential table loaded", "source", source, "users", authenticator.Len())

	return &app{
		cfg:      cfg,
		logger:   logger,
		registry: registry,
		auth:     authenticator,
	}, nil
}

// writeMetrics writes the registry to the configured textfile, if any.
func (a *app) writeMetrics() error {
	if a.cfg.MetricsFile == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(a.cfg.MetricsFile, a.registry); err != nil {
		err = oops.Code("METRICS_WRITE_FAILED").With("path", a.cfg.MetricsFile).Wrap(err)
		errutil.LogError(a.logger, "failed to write metrics", err)
		return err
	}
	return nil
}
