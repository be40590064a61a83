// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for the conversation log.
//
// The conversation log is an append-only sequence of messages. The only
// entry ever rewritten in place is a pending placeholder, and it is
// resolved by turn ID rather than by position, so a settlement that
// arrives after the log was cleared simply finds nothing to update.
package model
