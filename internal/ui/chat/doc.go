// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat implements the askai widget as a Bubble Tea model.
//
// The package owns the interaction state of the widget:
//
//   - Turn lifecycle: submitting a user message appends it together with a
//     pending assistant placeholder, then settles the placeholder in place
//     when the answering service responds. At most one turn is in flight.
//   - Mode: the widget answers either general questions or questions about
//     an uploaded document. Switching modes cancels any in-flight work and
//     resets the conversation atomically.
//   - Suggestions: after each settled turn the widget fetches follow-up
//     suggestions keyed by the last user message. Fetches are best-effort
//     and only the latest request may update the chips.
//   - Panel geometry: the widget is anchored to the right edge of the
//     terminal and resized by dragging its left border.
//
// All state transitions happen on the Bubble Tea update loop; goroutines
// only perform I/O and report back via messages.
package chat
