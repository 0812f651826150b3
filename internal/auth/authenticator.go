// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package auth

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"sort"

	"github.com/samber/oops"
)

// Verdict strings printed by the interactive check.
const (
	AccessGranted = "Access Granted"
	AccessDenied  = "Access Denied"
)

// Credential is a username/password pair.
type Credential struct {
	Username string
	Password string
}

// DefaultCredentials returns the built-in demo table.
func DefaultCredentials() []Credential {
	return []Credential{
		{Username: "user1", Password: "password123"},
		{Username: "user2", Password: "pass456"},
	}
}

// Authenticator checks username/password pairs against a fixed credential store.
type Authenticator struct {
	users   map[string]string
	logger  *slog.Logger
	metrics *Metrics
}

// Option configures an Authenticator at construction time.
type Option func(*Authenticator) error

// WithLogger sets the logger used for per-check debug records.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Authenticator) error {
		if logger == nil {
			return oops.Code("AUTH_INVALID_OPTION").Errorf("logger cannot be nil")
		}
		a.logger = logger
		return nil
	}
}

// WithMetrics attaches attempt counters. A nil Metrics disables counting.
func WithMetrics(m *Metrics) Option {
	return func(a *Authenticator) error {
		a.metrics = m
		return nil
	}
}

// New creates an Authenticator from an ordered credential list.
// Usernames are compared exactly; a username listed twice is a configuration
// error and no Authenticator is returned.
func New(creds []Credential, opts ...Option) (*Authenticator, error) {
	users := make(map[string]string, len(creds))
	for i, c := range creds {
		if _, dup := users[c.Username]; dup {
			return nil, oops.Code("AUTH_DUPLICATE_USERNAME").
				With("username", c.Username).
				With("index", i).
				Errorf("duplicate username %q", c.Username)
		}
		users[c.Username] = c.Password
	}

	a := &Authenticator{
		users:  users,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(a); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// FromMap creates an Authenticator from a username to password table.
// The map is copied; later changes to it are not observed.
func FromMap(m map[string]string, opts ...Option) (*Authenticator, error) {
	creds := make([]Credential, 0, len(m))
	for username, password := range m {
		creds = append(creds, Credential{Username: username, Password: password})
	}
	return New(creds, opts...)
}

// Authenticate reports whether username is registered with exactly password.
// Unknown usernames and wrong passwords both yield false.
func (a *Authenticator) Authenticate(username, password string) bool {
	expected, ok := a.users[username]
	granted := ok && subtle.ConstantTimeCompare([]byte(expected), []byte(password)) == 1

	a.metrics.recordAttempt(granted)
	a.logger.LogAttrs(context.Background(), slog.LevelDebug, "credential check",
		slog.String("username", username),
		slog.Bool("granted", granted),
	)
	return granted
}

// Len returns the number of registered usernames.
func (a *Authenticator) Len() int {
	return len(a.users)
}

// Usernames returns the registered usernames in sorted order.
func (a *Authenticator) Usernames() []string {
	names := make([]string, 0, len(a.users))
	for name := range a.users {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Verdict maps a check result to its display string.
func Verdict(granted bool) string {
	if granted {
		return AccessGranted
	}
	return AccessDenied
}
