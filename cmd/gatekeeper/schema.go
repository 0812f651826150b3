// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/holomush/gatekeeper/internal/config"
)

// schemaConfig holds configuration for the schema command.
type schemaConfig struct {
	format string
}

// newSchemaCmd creates the schema subcommand.
func newSchemaCmd() *cobra.Command {
	cfg := &schemaConfig{}

	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the config file JSON Schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSchema(cmd, cfg)
		},
	}

	cmd.Flags().StringVar(&cfg.format, "format", "json", "output format (json or yaml)")

	return cmd
}

// runSchema executes the schema command.
func runSchema(cmd *cobra.Command, cfg *schemaConfig) error {
	var (
		data []byte
		err  error
	)
	switch cfg.format {
	case "json":
		data, err = config.GenerateSchema()
	case "yaml":
		data, err = config.GenerateSchemaYAML()
	default:
		return fmt.Errorf("format must be 'json' or 'yaml', got %q", cfg.format)
	}
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
