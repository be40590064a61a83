// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat implements the askai widget as a Bubble Tea model.
//
// This file defines the Bubble Tea message types used by the widget.
// Every asynchronous result carries the epoch it was started under so the
// update loop can discard work that outlived a reset or mode switch.
package chat

// =============================================================================
// TURN MESSAGES
// =============================================================================

// TurnSettledMsg reports the outcome of a chat or document-chat turn.
type TurnSettledMsg struct {
	// Epoch is the conversation epoch the turn was started under.
	Epoch int
	// TurnID identifies the pending placeholder to settle.
	TurnID string
	// Text is the assistant's answer when Err is nil.
	Text string
	Err  error
}

// =============================================================================
// UPLOAD MESSAGES
// =============================================================================

// UploadSettledMsg reports the outcome of a document upload.
type UploadSettledMsg struct {
	Epoch int
	// Name is the base name of the uploaded file.
	Name string
	// Ack is the service's acknowledgement message when Err is nil.
	Ack string
	Err error
}

// =============================================================================
// SUGGESTION MESSAGES
// =============================================================================

// SuggestionsMsg delivers follow-up suggestions.
type SuggestionsMsg struct {
	// Seq is the fetch sequence number; only the latest may apply.
	Seq   int
	Items []string
	Err   error
}
