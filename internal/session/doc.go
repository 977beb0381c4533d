// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session owns the connection to the SMS relay.
//
// A [Session] walks through Disconnected → Connecting → Connected and back.
// Once connected it reads the contact snapshot, then runs one background
// read loop per connection. The loop and the send path never touch UI state
// directly: every observable change is handed to a [Publisher] as an event
// value (see events.go), and the consumer applies events in order on its own
// goroutine.
package session
