// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing message strings the client writes to
// its log view.
//
// Keeping them in one place ensures consistent wording across commands and
// session events.
package app

const (
	// MsgWelcome is the first line of the log view.
	MsgWelcome = "Welcome to smscli"

	// MsgWelcomeHint follows MsgWelcome and points at the connect command.
	MsgWelcomeHint = "Type /connect <host> <port> to connect to your phone, /help for all commands"

	// MsgAlreadyConnected is logged when /connect is used while a
	// connection exists or is being set up.
	MsgAlreadyConnected = "Already connected"

	// MsgNotConnected is logged when an action needs a connection and there
	// is none.
	MsgNotConnected = "Not connected"

	// MsgLostConnection is logged when the relay connection ends with an
	// error.
	MsgLostConnection = "Lost connection"

	// MsgConnecting is logged when a connection attempt starts.
	MsgConnecting = "Connecting to %s..."

	// MsgConnected is logged once the relay accepted the connection.
	MsgConnected = "Connected to %s on %s"

	// MsgDisconnected is logged after a user-initiated disconnect.
	MsgDisconnected = "Disconnected from %s"

	// MsgInvalidContact is logged by /msg when the argument is neither a
	// known contact nor a phone number.
	MsgInvalidContact = "Invalid phone number or contact doesnt exist"

	// MsgCantCloseLogView is logged when closing the log view is attempted.
	MsgCantCloseLogView = "Cant close the log view"

	// MsgNoConversation is logged when text is entered on the log view.
	MsgNoConversation = "Open a conversation with /msg first"

	// MsgUnknownAlias is logged by /connect for an alias that is not
	// configured.
	MsgUnknownAlias = "Unknown alias %q"

	// MsgUnknownCommand is logged for a command line that names no
	// registered command.
	MsgUnknownCommand = "Unknown command %s, type /list for commands"

	// MsgSendFailed is logged when a message could not be written.
	MsgSendFailed = "Failed to send message: %v"

	// MsgStatusConnected is the /status line for a live connection.
	MsgStatusConnected = "Connected to %s on %s"

	// MsgStatusConnecting is the /status line while a connection attempt is
	// in progress.
	MsgStatusConnecting = "Connecting to %s on %s"

	// MsgStatusDisconnected is the /status line when there is no connection.
	MsgStatusDisconnected = "Not connected"

	// MsgStatusLastError follows the status line when the last connection
	// ended with an error.
	MsgStatusLastError = "Last error: %v"

	// MsgNoContacts is logged by /contacts when the relay sent no contacts.
	MsgNoContacts = "No contacts"

	// MsgContactCount heads the /contacts listing.
	MsgContactCount = "%d contacts"

	// MsgAliases lists the configured /connect aliases.
	MsgAliases = "Aliases: %s"

	// MsgSendsDropped is logged when queued texts are discarded after a
	// failed send.
	MsgSendsDropped = "%d queued messages were not sent"

	// MsgInvalidAutoConnect is logged when the configured start-up address
	// cannot be parsed.
	MsgInvalidAutoConnect = "Invalid connect address %q"
)
