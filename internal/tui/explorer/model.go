// ============================================================================
// mscript - MATLAB-like script front end
// ============================================================================
//
// Package:     explorer
// Description: Bubbletea model for the interactive mscript explorer
// Author:      msto63
// Created:     2026-10-10
// License:     MIT
// ============================================================================

package explorer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	mserror "github.com/msto63/mscript/foundation/core/error"
	"github.com/msto63/mscript/foundation/core/i18n"
	mscript "github.com/msto63/mscript/foundation/mscript"
	"github.com/msto63/mscript/foundation/mscript/ast"
	"github.com/msto63/mscript/foundation/mscript/token"
	"github.com/msto63/mscript/internal/render"
	"github.com/msto63/mscript/pkg/core/cache"
)

// DefaultHistorySize is used when Config.HistorySize is zero
const DefaultHistorySize = 100

// Config holds explorer configuration
type Config struct {
	Engine      *mscript.Engine
	Catalogue   *i18n.Manager
	Styled      bool
	HistorySize int
	MemoSize    int // parse results kept for re-entered lines; 0 selects the default
}

// Model is the main Bubbletea model for the explorer
type Model struct {
	// State
	width  int
	height int
	ready  bool
	pane   pane

	// Components
	input    textinput.Model
	viewport viewport.Model

	// Last parse
	source   string
	tokens   []token.Token
	root     *ast.Node
	result   *mscript.Result
	err      error
	errCount int

	// History of submitted sources, oldest first. historyPos is
	// len(history) while editing a new line.
	history    []string
	historyPos int
	draft      string

	engine      *mscript.Engine
	catalogue   *i18n.Manager
	renderer    *render.Renderer
	memo        *cache.Cache[parsedMsg]
	historySize int
}

// New creates a new explorer model
func New(cfg Config) Model {
	if cfg.HistorySize <= 0 {
		cfg.HistorySize = DefaultHistorySize
	}

	ti := textinput.New()
	ti.Prompt = cfg.Catalogue.T("explorer.prompt")
	ti.Placeholder = cfg.Catalogue.T("explorer.empty")
	ti.Focus()

	return Model{
		input:       ti,
		engine:      cfg.Engine,
		catalogue:   cfg.Catalogue,
		renderer:    render.New(cfg.Styled),
		memo:        cache.New[parsedMsg](cache.Config{MaxItems: cfg.MemoSize}),
		historySize: cfg.HistorySize,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 4 // Title panel
		inputHeight := 3  // Input panel
		footerHeight := 3 // Tabs + status + help
		viewportHeight := msg.Height - headerHeight - inputHeight - footerHeight - 2
		if viewportHeight < 3 {
			viewportHeight = 3
		}

		if !m.ready {
			m.viewport = viewport.New(msg.Width-4, viewportHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 4
			m.viewport.Height = viewportHeight
		}
		m.input.Width = msg.Width - 6 - lipgloss.Width(m.input.Prompt)
		m.updateViewportContent()

	case parsedMsg:
		m.source = msg.source
		m.tokens = msg.tokens
		m.result = msg.result
		m.err = msg.err
		m.root = nil
		if msg.result != nil {
			m.root = msg.result.Root
		}
		if msg.err != nil {
			m.errCount++
		}
		m.updateViewportContent()
		m.viewport.GotoTop()
	}

	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// handleKeyPress handles keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit

	case tea.KeyEnter:
		source := strings.TrimSpace(m.input.Value())
		if source == "" {
			return m, nil
		}
		m.remember(source)
		m.input.Reset()
		return m, m.parse(source)

	case tea.KeyTab:
		if m.pane == paneTree {
			m.pane = paneTokens
		} else {
			m.pane = paneTree
		}
		m.updateViewportContent()
		m.viewport.GotoTop()
		return m, nil

	case tea.KeyUp:
		m.recall(-1)
		return m, nil

	case tea.KeyDown:
		m.recall(1)
		return m, nil

	case tea.KeyPgUp:
		m.viewport.ViewUp()
		return m, nil

	case tea.KeyPgDown:
		m.viewport.ViewDown()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// remember appends source to the history, skipping immediate repeats
func (m *Model) remember(source string) {
	if n := len(m.history); n == 0 || m.history[n-1] != source {
		m.history = append(m.history, source)
		if len(m.history) > m.historySize {
			m.history = m.history[len(m.history)-m.historySize:]
		}
	}
	m.historyPos = len(m.history)
	m.draft = ""
}

// recall moves through the history. Moving past the newest entry restores
// the line that was being edited.
func (m *Model) recall(delta int) {
	if len(m.history) == 0 {
		return
	}
	if m.historyPos == len(m.history) {
		m.draft = m.input.Value()
	}

	pos := m.historyPos + delta
	if pos < 0 {
		pos = 0
	}
	if pos > len(m.history) {
		pos = len(m.history)
	}
	m.historyPos = pos

	if pos == len(m.history) {
		m.input.SetValue(m.draft)
	} else {
		m.input.SetValue(m.history[pos])
	}
	m.input.CursorEnd()
}

// parse scans and parses source off the update loop. Lines entered
// before are answered from the memo.
func (m Model) parse(source string) tea.Cmd {
	engine, memo := m.engine, m.memo
	return func() tea.Msg {
		msg, _ := memo.GetOrSet(source, func() (parsedMsg, error) {
			tokens, err := engine.Scan(source)
			if err != nil {
				return parsedMsg{source: source, err: err}, nil
			}
			result, err := engine.Run(source)
			if err != nil {
				return parsedMsg{source: source, tokens: tokens, err: err}, nil
			}
			return parsedMsg{source: source, tokens: result.Tokens, result: result}, nil
		})
		return msg
	}
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return m.catalogue.T("explorer.title") + "..."
	}

	var b strings.Builder

	title := LogoStyle.Render(m.catalogue.T("explorer.title"))
	b.WriteString(TitlePanelStyle.Width(m.width - 4).Render(title))
	b.WriteString("\n")

	b.WriteString(InputPanelStyle.Width(m.width - 4).Render(m.input.View()))
	b.WriteString("\n")

	b.WriteString(m.renderTabs())
	b.WriteString("\n")

	b.WriteString(ResultPanelStyle.Width(m.width - 4).Render(m.viewport.View()))
	b.WriteString("\n")

	b.WriteString(m.renderStatus())
	b.WriteString("\n")

	b.WriteString(HelpStyle.Render(m.catalogue.T("explorer.help")))

	return b.String()
}

func (m Model) renderTabs() string {
	tree := m.catalogue.T("explorer.tree")
	tokens := m.catalogue.T("explorer.tokens")
	if m.pane == paneTree {
		return " " + TabActiveStyle.Render(tree) + "  " + TabInactiveStyle.Render(tokens)
	}
	return " " + TabInactiveStyle.Render(tree) + "  " + TabActiveStyle.Render(tokens)
}

// renderStatus shows the localised error or the size and timing of the
// last parse
func (m Model) renderStatus() string {
	if m.err != nil {
		return StatusErrorStyle.Render(m.catalogue.Localize(m.err))
	}
	if m.result == nil {
		return StatusStyle.Render("")
	}

	nodes := 0
	ast.Inspect(m.root, func(*ast.Node, int) bool {
		nodes++
		return true
	})
	return StatusStyle.Render(fmt.Sprintf("%d tokens · %d nodes · %s",
		len(m.tokens), nodes, m.result.ScanTime+m.result.ParseTime))
}

// updateViewportContent renders the active pane into the viewport
func (m *Model) updateViewportContent() {
	m.viewport.SetContent(m.content())
}

func (m Model) content() string {
	if m.source == "" {
		return m.renderer.Muted(m.catalogue.T("explorer.empty"))
	}

	var b strings.Builder
	if m.err != nil {
		b.WriteString(m.renderer.Diagnostic(m.diagnostic()))
		b.WriteString("\n")
	}

	switch m.pane {
	case paneTokens:
		b.WriteString(m.renderer.Tokens(m.tokens))
	default:
		b.WriteString(m.renderer.Tree(m.root))
	}
	return b.String()
}

func (m Model) diagnostic() render.Diagnostic {
	d := render.Diagnostic{
		Message: m.catalogue.Message(m.err),
		Source:  m.source,
	}
	var msErr *mserror.Error
	if errors.As(m.err, &msErr) {
		d.Line, d.Column, _ = msErr.Position()
	}
	return d
}

// Run starts the explorer TUI
func Run(cfg Config) error {
	p := tea.NewProgram(New(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
