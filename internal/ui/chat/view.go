// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/askai-tui/internal/model"
	"github.com/jeranaias/askai-tui/internal/util"
)

// View renders the widget into its panel at the right edge of the terminal.
func (m Model) View() string {
	width := m.panel.Width()

	sections := []string{
		m.renderHeader(width),
		m.viewport.View(),
		m.renderChips(width),
		m.renderInput(width),
		m.renderStatusBar(width),
	}
	content := lipgloss.JoinVertical(lipgloss.Left, sections...)

	panel := m.theme.Panel.Width(width).Render(content)
	if m.panel.Left() > 0 {
		return lipgloss.NewStyle().MarginLeft(m.panel.Left()).Render(panel)
	}
	return panel
}

// =============================================================================
// SECTIONS
// =============================================================================

func (m Model) renderHeader(width int) string {
	title := m.theme.HeaderTitle.Render("AskAI")
	mode := m.theme.HeaderMode.Render(m.mode.String() + " mode")
	return m.theme.Header.Width(width).Render(title + "  " + mode)
}

func (m Model) renderChips(width int) string {
	if m.showHelp {
		return m.renderHelp()
	}
	if len(m.suggestions) == 0 || m.inFlight || m.uploading {
		return ""
	}

	// Only the first few suggestions fit as chips; the rest stay in
	// state but have no binding.
	visible := m.suggestions
	if len(visible) > maxSuggestions {
		visible = visible[:maxSuggestions]
	}

	// Budget the row evenly across the chips.
	per := width/len(visible) - 6
	if per < 8 {
		per = 8
	}

	chips := make([]string, 0, len(visible))
	keys := []string{"M-1", "M-2", "M-3"}
	for i, s := range visible {
		label := m.theme.ChipKey.Render(keys[i]) + " " +
			m.theme.Chip.Render(util.TruncateWidth(s, per))
		chips = append(chips, label)
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, chips...)
}

func (m Model) renderInput(width int) string {
	return m.theme.InputContainer.Width(width - 1).Render(m.input.View())
}

func (m Model) renderStatusBar(width int) string {
	var parts []string

	if m.mode == ModeDocument {
		parts = append(parts, m.theme.ModeDocument.Render("DOC"))
		if m.attachedDoc != "" {
			parts = append(parts, m.theme.DocumentChip.Render(util.TruncateRunes(m.attachedDoc, 16)))
		}
	} else {
		parts = append(parts, m.theme.ModeGeneral.Render("GEN"))
	}

	if m.statusMsg != "" {
		parts = append(parts, m.statusMsg)
	} else {
		var help []string
		for _, b := range m.keyMap.ShortHelp() {
			h := b.Help()
			help = append(help,
				m.theme.ShortcutKey.Render(h.Key)+" "+m.theme.ShortcutDesc.Render(h.Desc))
		}
		parts = append(parts, strings.Join(help, "  "))
	}

	return m.theme.StatusBar.Width(width).Render(strings.Join(parts, " "))
}

func (m Model) renderHelp() string {
	lines := []string{
		"/reset      clear the conversation",
		"/mode       toggle general/document mode",
		"/upload <p> upload a document (document mode)",
		"/theme      toggle dark mode",
		"/quit       exit",
	}
	var b strings.Builder
	for _, l := range lines {
		b.WriteString(m.theme.ShortcutDesc.Render(l))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// =============================================================================
// TRANSCRIPT
// =============================================================================

// syncViewport re-renders the transcript and pins the view to the bottom.
func (m *Model) syncViewport() {
	m.viewport.SetContent(m.renderConversation())
	m.viewport.GotoBottom()
}

func (m Model) renderConversation() string {
	if !m.conversation.HasHistory() {
		return m.theme.Greeting.Render(greetingText)
	}

	parts := make([]string, 0, m.conversation.Len())
	for _, msg := range m.conversation.History() {
		parts = append(parts, m.renderMessage(msg))
	}
	return strings.Join(parts, "\n")
}

func (m Model) renderMessage(msg *model.Message) string {
	if msg.Role == model.RoleUser {
		return m.theme.UserLabel.Render(msg.Role.DisplayName()) + "\n" +
			m.theme.UserMessage.Render(msg.Content)
	}

	label := m.theme.AssistantLabel.Render(msg.Role.DisplayName())
	if msg.Pending {
		return label + "\n" +
			m.theme.PendingMessage.Render(m.spinner.View()+" "+msg.Content)
	}
	if msg.Content == answerErrorText {
		return label + "\n" + m.theme.ErrorMessage.Render(msg.Content)
	}
	return label + "\n" + m.renderMarkdown(msg.Content)
}

// renderMarkdown renders assistant markdown for terminal display, falling
// back to the raw content if rendering is unavailable.
func (m Model) renderMarkdown(content string) string {
	if m.renderer == nil {
		return m.theme.AssistantMessage.Render(content)
	}
	rendered, err := m.renderer.Render(content)
	if err != nil {
		return m.theme.AssistantMessage.Render(content)
	}
	return strings.TrimRight(rendered, "\n")
}
