// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package conversation keeps per-contact conversation state and routes
// messages onto it.
//
// The [Registry] maps a conversation id (phone number or relay-assigned id)
// to a [Conversation] holding its display name and ordered transcript. The
// [Router] applies one message at a time: it creates the conversation on
// first use, appends the message, asks the [Presenter] to show the view and
// requests notifications and redraws.
//
// Neither type is bound to a goroutine, but the router is meant to be driven
// from the single UI event loop.
package conversation
