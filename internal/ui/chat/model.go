// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/jeranaias/askai-tui/internal/config"
	"github.com/jeranaias/askai-tui/internal/model"
	"github.com/jeranaias/askai-tui/internal/theme"
	"github.com/jeranaias/askai-tui/internal/ui/styles"
)

// =============================================================================
// WIDGET MODE
// =============================================================================

// Mode selects which question channel the widget talks to.
type Mode int

const (
	// ModeGeneral answers free-form questions.
	ModeGeneral Mode = iota
	// ModeDocument answers questions about the uploaded document.
	ModeDocument
)

func (m Mode) String() string {
	if m == ModeDocument {
		return "Document"
	}
	return "General"
}

// =============================================================================
// WIDGET MODEL
// =============================================================================

// Model is the Bubble Tea model for the askai widget.
type Model struct {
	// Styling
	theme    *styles.Theme
	themeCtl *theme.Controller
	renderer *glamour.TermRenderer

	// Dimensions
	width  int
	height int
	panel  Panel

	// Conversation state
	conversation *model.Conversation
	mode         Mode
	attachedDoc  string

	// Turn state. epoch counts resets and mode switches; results stamped
	// with an older epoch are discarded.
	inFlight  bool
	uploading bool
	epoch     int

	// Suggestion state
	suggestions []string
	suggestSeq  int

	// Answering service
	svc       Service
	cancelMgr *cancelManager

	// UI components
	viewport viewport.Model
	input    textinput.Model
	spinner  spinner.Model
	keyMap   KeyMap

	// Transient UI state
	statusMsg string
	showHelp  bool
}

// New creates a widget model over the given answering service.
func New(svc Service, themeCtl *theme.Controller, cfg *config.Config) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Ask me anything..."
	ti.CharLimit = 4096
	ti.Focus()

	vp := viewport.New(cfg.UI.PanelWidth, 20)
	vp.SetContent("")

	// ASCII spinner frames render everywhere, including dumb terminals.
	sp := spinner.New()
	sp.Spinner = spinner.Spinner{
		Frames: []string{"|", "/", "-", "\\"},
		FPS:    time.Second / 10,
	}

	th := styles.New(themeCtl.Dark())
	sp.Style = th.Spinner

	m := Model{
		theme:        th,
		themeCtl:     themeCtl,
		conversation: model.NewConversation(),
		mode:         ModeGeneral,
		svc:          svc,
		cancelMgr:    newCancelManager(),
		viewport:     vp,
		input:        ti,
		spinner:      sp,
		keyMap:       DefaultKeyMap(),
		panel:        NewPanel(cfg.UI.PanelWidth, cfg.UI.PanelMinWidth),
	}
	m.rebuildRenderer()
	m.syncViewport()
	return m
}

// =============================================================================
// BUBBLE TEA INTERFACE
// =============================================================================

// Init starts the cursor blink and spinner animations.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg), nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg), nil

	case TurnSettledMsg:
		return m.handleTurnSettled(msg)

	case UploadSettledMsg:
		return m.handleUploadSettled(msg)

	case SuggestionsMsg:
		return m.handleSuggestions(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// =============================================================================
// EVENT HANDLERS
// =============================================================================

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any keypress dismisses the help block.
	if m.showHelp && !key.Matches(msg, m.keyMap.Quit) {
		m.showHelp = false
	}

	switch {
	case key.Matches(msg, m.keyMap.Quit):
		m.cancelMgr.cancel()
		return m, tea.Quit

	case key.Matches(msg, m.keyMap.Cancel):
		if m.inFlight {
			// The request goroutine reports the cancellation as a
			// settled turn, so the placeholder resolves normally.
			m.cancelMgr.cancel()
		}
		return m, nil

	case key.Matches(msg, m.keyMap.Submit):
		content := strings.TrimSpace(m.input.Value())
		if strings.HasPrefix(content, "/") {
			return m.handleCommand(content)
		}
		m.input.Reset()
		return m.startTurn(content)

	case key.Matches(msg, m.keyMap.ToggleMode):
		return m.toggleMode(), nil

	case key.Matches(msg, m.keyMap.ToggleTheme):
		return m.toggleTheme(), nil

	case key.Matches(msg, m.keyMap.Reset):
		return m.resetConversation(), nil

	case key.Matches(msg, m.keyMap.PageUp):
		m.viewport.ViewUp()
		return m, nil

	case key.Matches(msg, m.keyMap.PageDown):
		m.viewport.ViewDown()
		return m, nil

	case key.Matches(msg, m.keyMap.Suggest1):
		return m.useSuggestion(0)
	case key.Matches(msg, m.keyMap.Suggest2):
		return m.useSuggestion(1)
	case key.Matches(msg, m.keyMap.Suggest3):
		return m.useSuggestion(2)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleMouse implements the resize drag on the panel's left border.
func (m Model) handleMouse(msg tea.MouseMsg) Model {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft && m.panel.OnHandle(msg.X) {
			m.panel.StartDrag(msg.X)
		}

	case tea.MouseActionMotion:
		// Track motion anywhere in the terminal; the pointer routinely
		// outruns the handle column mid-drag.
		if m.panel.Dragging() {
			m.panel.Drag(msg.X)
			m = m.applyPanelSize()
		}

	case tea.MouseActionRelease:
		m.panel.EndDrag()
	}
	return m
}

func (m Model) handleResize(msg tea.WindowSizeMsg) Model {
	m.width = msg.Width
	m.height = msg.Height
	m.panel.SetViewport(msg.Width)
	return m.applyPanelSize()
}

// applyPanelSize resizes the inner components to the current panel width.
func (m Model) applyPanelSize() Model {
	inner := m.panel.Width() - 2 // left border + padding
	if inner < 1 {
		inner = 1
	}

	m.viewport.Width = inner
	chrome := 6 // header, input border + line, chips, status bar
	if h := m.height - chrome; h > 3 {
		m.viewport.Height = h
	} else {
		m.viewport.Height = 3
	}
	m.input.Width = inner - 4

	m.rebuildRenderer()
	m.syncViewport()
	return m
}

func (m Model) useSuggestion(i int) (tea.Model, tea.Cmd) {
	if i >= len(m.suggestions) || m.inFlight || m.uploading {
		return m, nil
	}
	return m.startTurn(m.suggestions[i])
}

// rebuildRenderer recreates the markdown renderer for the current width
// and theme. A nil renderer degrades to plain text.
func (m *Model) rebuildRenderer() {
	style := "light"
	if m.theme.Dark {
		style = "dark"
	}
	wrap := m.panel.Width() - 4
	if wrap < 20 {
		wrap = 20
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		r = nil
	}
	m.renderer = r
}
