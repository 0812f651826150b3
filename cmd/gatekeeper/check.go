// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/holomush/gatekeeper/internal/auth"
)

// errAccessDenied makes a denied check exit non-zero without an error message.
var errAccessDenied = errors.New("access denied")

// checkConfig holds configuration for the check command.
type checkConfig struct {
	username string
	password string
}

// newCheckCmd creates the check subcommand.
func newCheckCmd() *cobra.Command {
	cfg := &checkConfig{}

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check a username and password",
		Long: `Check a username and password against the credential table.
Values not given as flags are prompted for on standard input.
Exits 0 when access is granted and 1 when it is denied.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCheck(cmd, cfg)
		},
	}

	cmd.Flags().StringVar(&cfg.username, "username", "", "username to check (prompted if not set)")
	cmd.Flags().StringVar(&cfg.password, "password", "", "password to check (prompted if not set)")

	return cmd
}

// runCheck executes the check command.
func runCheck(cmd *cobra.Command, cfg *checkConfig) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}

	in := bufio.NewReader(cmd.InOrStdin())
	out := cmd.OutOrStdout()

	username := cfg.username
	if !cmd.Flags().Changed("username") {
		if username, err = prompt(in, out, "Username: "); err != nil {
			return err
		}
	}
	password := cfg.password
	if !cmd.Flags().Changed("password") {
		if password, err = prompt(in, out, "Password: "); err != nil {
			return err
		}
	}

	granted := a.auth.Authenticate(username, password)
	fmt.Fprintln(out, auth.Verdict(granted))

	if err := a.writeMetrics(); err != nil {
		return err
	}
	if !granted {
		return errAccessDenied
	}
	return nil
}

// prompt writes label and reads one line, without its line ending.
// An empty line is a valid answer; end of input before any text is not.
func prompt(in *bufio.Reader, out io.Writer, label string) (string, error) {
	fmt.Fprint(out, label)
	line, err := in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", oops.Code("CHECK_INPUT_FAILED").
			With("prompt", strings.TrimSuffix(label, ": ")).
			Wrap(err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
