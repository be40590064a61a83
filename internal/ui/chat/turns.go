// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat implements the askai widget as a Bubble Tea model.
//
// This file holds the turn orchestration: starting turns and uploads,
// settling their results, and keeping the suggestion chips current.
package chat

import (
	"context"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/jeranaias/askai-tui/internal/model"
	"github.com/jeranaias/askai-tui/internal/ui/styles"
)

const (
	// placeholderText fills the assistant slot while a turn is in flight.
	placeholderText = "Thinking..."

	// answerErrorText replaces the placeholder when a turn fails.
	answerErrorText = "Sorry, something went wrong. Please try again."

	// greetingText is shown while the conversation is empty.
	greetingText = "Hi, How can I assist you today?"

	// maxSuggestions caps the number of suggestion chips.
	maxSuggestions = 3

	suggestionTimeout = 10 * time.Second
	uploadTimeout     = 2 * time.Minute
)

// =============================================================================
// TURN LIFECYCLE
// =============================================================================

// startTurn submits a user message. The user entry and a pending assistant
// placeholder are appended together, before the request leaves; the
// placeholder is settled in place when the result arrives.
func (m Model) startTurn(content string) (tea.Model, tea.Cmd) {
	if content == "" || m.inFlight || m.uploading {
		return m, nil
	}

	turnID := uuid.NewString()
	m.conversation.Append(
		model.NewUserMessage(content),
		model.NewPendingMessage(turnID, placeholderText),
	)
	m.inFlight = true
	m.suggestions = nil
	m.statusMsg = ""
	m.syncViewport()

	ctx, cancel := context.WithCancel(context.Background())
	m.cancelMgr.set(cancel)

	svc := m.svc
	epoch := m.epoch
	// The document channel needs a document to ask about; until one is
	// uploaded, document mode still answers over the general channel.
	useDoc := m.mode == ModeDocument && m.attachedDoc != ""
	return m, func() tea.Msg {
		var text string
		var err error
		if useDoc {
			text, err = svc.QueryDocument(ctx, content)
		} else {
			text, err = svc.Chat(ctx, content)
		}
		return TurnSettledMsg{Epoch: epoch, TurnID: turnID, Text: text, Err: err}
	}
}

// handleTurnSettled resolves the pending placeholder for a finished turn.
func (m Model) handleTurnSettled(msg TurnSettledMsg) (tea.Model, tea.Cmd) {
	if msg.Epoch != m.epoch {
		// The turn outlived a reset or mode switch; its placeholder is
		// gone and nothing may be written into the new conversation.
		return m, nil
	}

	m.inFlight = false
	m.cancelMgr.cancel()

	text := msg.Text
	if msg.Err != nil {
		text = answerErrorText
	}
	m.conversation.Settle(msg.TurnID, text)
	m.syncViewport()

	return m.fetchSuggestions()
}

// =============================================================================
// DOCUMENT UPLOAD
// =============================================================================

// startUpload sends a document to the answering service. The transcript is
// only touched at settlement, so a reset mid-upload leaves no trace.
func (m Model) startUpload(path string) (tea.Model, tea.Cmd) {
	if m.inFlight || m.uploading {
		return m, nil
	}
	if m.mode != ModeDocument {
		m.statusMsg = "switch to document mode first (/mode)"
		return m, nil
	}

	name := filepath.Base(path)
	m.uploading = true
	m.statusMsg = "uploading " + name + "..."

	epoch := m.epoch
	svc := m.svc
	return m, func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			return UploadSettledMsg{Epoch: epoch, Name: name, Err: err}
		}
		defer f.Close()

		ctx, cancel := context.WithTimeout(context.Background(), uploadTimeout)
		defer cancel()

		ack, err := svc.UploadDocument(ctx, name, f)
		return UploadSettledMsg{Epoch: epoch, Name: name, Ack: ack, Err: err}
	}
}

func (m Model) handleUploadSettled(msg UploadSettledMsg) (tea.Model, tea.Cmd) {
	if msg.Epoch != m.epoch {
		return m, nil
	}

	m.uploading = false
	m.statusMsg = ""

	// The transcript records the upload as a user action followed by the
	// service's answer, success or not.
	uploadEntry := model.NewUserMessage("Uploaded document: " + msg.Name)

	if msg.Err != nil {
		m.conversation.Append(uploadEntry, model.NewAssistantMessage(answerErrorText))
		m.syncViewport()
		return m, nil
	}

	m.attachedDoc = msg.Name
	m.conversation.Append(uploadEntry, model.NewAssistantMessage(msg.Ack))
	m.syncViewport()
	return m.fetchSuggestions()
}

// =============================================================================
// SUGGESTIONS
// =============================================================================

// fetchSuggestions requests follow-up suggestions keyed by the last user
// message. Fetches are best-effort: failures never surface in the UI, and
// a newer fetch supersedes any older one still in flight.
func (m Model) fetchSuggestions() (tea.Model, tea.Cmd) {
	last := m.conversation.LastUserMessage()
	if last == nil {
		m.suggestions = nil
		return m, nil
	}

	m.suggestSeq++
	seq := m.suggestSeq
	svc := m.svc
	content := last.Content
	return m, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), suggestionTimeout)
		defer cancel()

		items, err := svc.Suggestions(ctx, content)
		return SuggestionsMsg{Seq: seq, Items: items, Err: err}
	}
}

func (m Model) handleSuggestions(msg SuggestionsMsg) (tea.Model, tea.Cmd) {
	if msg.Seq != m.suggestSeq {
		return m, nil // superseded by a newer fetch
	}
	if msg.Err != nil {
		return m, nil // best-effort: keep whatever is shown
	}

	items := msg.Items
	// The service echoes the question as the first element; drop it.
	// The full tail is kept; the view decides how many chips fit.
	if len(items) > 0 {
		items = items[1:]
	}
	m.suggestions = items
	return m, nil
}

// =============================================================================
// RESET AND MODE SWITCHING
// =============================================================================

// resetConversation wipes the transcript and abandons all in-flight work.
// The attached document, if any, stays available.
func (m Model) resetConversation() Model {
	m.abandonInFlight()
	m.conversation.Reset()
	m.suggestions = nil
	m.statusMsg = ""
	m.syncViewport()
	return m
}

// toggleMode flips between general and document mode. The switch is
// atomic from the user's point of view: pending work is cancelled, the
// conversation is reset and the attached document is dropped before the
// mode flips.
func (m Model) toggleMode() Model {
	m.abandonInFlight()
	m.conversation.Reset()
	m.suggestions = nil
	m.attachedDoc = ""
	m.statusMsg = ""
	if m.mode == ModeGeneral {
		m.mode = ModeDocument
	} else {
		m.mode = ModeGeneral
	}
	m.syncViewport()
	return m
}

// abandonInFlight cancels outstanding requests and bumps the epoch so
// their eventual results are discarded on arrival.
func (m *Model) abandonInFlight() {
	m.cancelMgr.cancel()
	m.epoch++
	m.suggestSeq++
	m.inFlight = false
	m.uploading = false
}

// toggleTheme flips the persisted dark-mode flag and restyles the widget.
func (m Model) toggleTheme() Model {
	dark, err := m.themeCtl.Toggle()
	m.theme = styles.New(dark)
	m.spinner.Style = m.theme.Spinner
	if err != nil {
		m.statusMsg = "theme change not saved"
	}
	m.rebuildRenderer()
	m.syncViewport()
	return m
}
