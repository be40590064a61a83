// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrEmptyLog is returned by ReplaceLast when the log has no entries.
var ErrEmptyLog = errors.New("conversation log is empty")

// =============================================================================
// CONVERSATION TYPE
// =============================================================================

// Conversation holds the ordered message log for one session.
//
// Entries are kept in strict insertion order. Nothing is ever reordered or
// deduplicated; entries are only removed by Reset.
type Conversation struct {
	ID        string     `json:"id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	Messages  []*Message `json:"messages"`
}

// NewConversation creates a new, empty conversation.
func NewConversation() *Conversation {
	return &Conversation{
		ID:        "conv_" + uuid.NewString(),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
		Messages:  make([]*Message, 0),
	}
}

// =============================================================================
// MESSAGE MANAGEMENT
// =============================================================================

// Append adds one or more messages at the tail, preserving argument order.
func (c *Conversation) Append(msgs ...*Message) {
	if len(msgs) == 0 {
		return
	}
	c.Messages = append(c.Messages, msgs...)
	c.UpdatedAt = time.Now()
}

// ReplaceLast replaces exactly the final entry in the log.
// Returns ErrEmptyLog if there is nothing to replace.
func (c *Conversation) ReplaceLast(msg *Message) error {
	if len(c.Messages) == 0 {
		return ErrEmptyLog
	}
	c.Messages[len(c.Messages)-1] = msg
	c.UpdatedAt = time.Now()
	return nil
}

// Settle resolves the pending placeholder tagged with turnID, overwriting
// its content and clearing the pending flag. Returns false if no such
// placeholder exists — in particular after the log was cleared by a reset
// or mode switch while the turn was still outstanding.
func (c *Conversation) Settle(turnID, content string) bool {
	for i := len(c.Messages) - 1; i >= 0; i-- {
		msg := c.Messages[i]
		if msg.Pending && msg.TurnID == turnID {
			msg.Content = content
			msg.Pending = false
			c.UpdatedAt = time.Now()
			return true
		}
	}
	return false
}

// Reset clears the entire log. Idempotent.
func (c *Conversation) Reset() {
	c.Messages = make([]*Message, 0)
	c.UpdatedAt = time.Now()
}

// =============================================================================
// ACCESSORS
// =============================================================================

// LastMessage returns the most recent message, or nil if empty.
func (c *Conversation) LastMessage() *Message {
	if len(c.Messages) == 0 {
		return nil
	}
	return c.Messages[len(c.Messages)-1]
}

// LastUserMessage returns the most recent user message, or nil.
func (c *Conversation) LastUserMessage() *Message {
	for i := len(c.Messages) - 1; i >= 0; i-- {
		if c.Messages[i].Role == RoleUser {
			return c.Messages[i]
		}
	}
	return nil
}

// History returns the message log for display.
func (c *Conversation) History() []*Message {
	return c.Messages
}

// Len returns the number of messages.
func (c *Conversation) Len() int {
	return len(c.Messages)
}

// HasHistory returns true if at least one message has been appended.
func (c *Conversation) HasHistory() bool {
	return len(c.Messages) > 0
}
