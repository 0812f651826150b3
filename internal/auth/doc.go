// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

// Package auth provides username/password credential checking.
//
// # Construction
//
// An Authenticator is built once from its initial credential table and is
// read-only afterwards:
//   - New - builds from an ordered list of Credential pairs, rejecting duplicates
//   - FromMap - builds from a literal username to password map
//
// Construction problems are returned as coded errors and leave no usable
// Authenticator behind. Checks never fail: Authenticate only returns a verdict.
//
// # Concurrency
//
// The credential store is never written after New returns, so a single
// Authenticator may be shared by any number of goroutines without locking.
package auth
