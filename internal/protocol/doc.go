// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package protocol implements the smscli relay wire protocol.
//
// Every message on the TCP stream is a frame: a 4-byte unsigned big-endian
// length followed by exactly that many bytes of UTF-8 encoded JSON. The first
// frame sent by the relay after a connection is established is the contact
// snapshot ([DecodeSnapshot]); every later frame, in both directions, is a
// single SMS message ([EncodeMessage], [DecodeMessage]).
//
// [Channel] deals only with framing and has no knowledge of message
// semantics.
package protocol
