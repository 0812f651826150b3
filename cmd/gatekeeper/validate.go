// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// newValidateCmd creates the validate subcommand.
func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the configuration and credential table",
		Long: `Load the configuration, validate it against the config schema and
build the credential table, reporting the registered usernames.
Passwords are never printed.`,
		Args: cobra.NoArgs,
		RunE: runValidate,
	}
}

// runValidate executes the validate command.
func runValidate(cmd *cobra.Command, _ []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}

	source := a.cfg.Source
	if source == "" {
		source = "built-in defaults"
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "SOURCE\t%s\n", source)
	fmt.Fprintf(w, "USERS\t%d\n", a.auth.Len())
	for _, name := range a.auth.Usernames() {
		fmt.Fprintf(w, "\t%q\n", name)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return a.writeMetrics()
}
