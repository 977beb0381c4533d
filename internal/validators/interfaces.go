// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides input validation shared by the configuration
// layer, the session and the command layer.
//
// Core concepts:
//   - Address checks: a relay host must be an IP address or an RFC 1123
//     hostname and a port must be in the range 1..65535.
//   - Phone numbers: a conversation address typed by the user must not
//     contain letters.
//
// Validation failures wrap one of the sentinel errors from errors.go so
// callers can match them with errors.Is.
package validators
