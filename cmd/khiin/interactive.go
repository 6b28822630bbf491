package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/khiin-bridge/bridge"
	"github.com/wippyai/khiin-bridge/handle"
	"github.com/wippyai/khiin-bridge/protocol"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	modeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	preeditStyle = lipgloss.NewStyle().
			Underline(true).
			Foreground(lipgloss.Color("#98FB98"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	annotationStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))
)

type keyMap struct {
	Quit       key.Binding
	SwitchMode key.Binding
	Toggle     key.Binding
	Reset      key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.SwitchMode, k.Toggle, k.Reset, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var keys = keyMap{
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
	SwitchMode: key.NewBinding(
		key.WithKeys("ctrl+t"),
		key.WithHelp("ctrl+t", "input mode"),
	),
	Toggle: key.NewBinding(
		key.WithKeys("ctrl+e"),
		key.WithHelp("ctrl+e", "ime on/off"),
	),
	Reset: key.NewBinding(
		key.WithKeys("ctrl+r"),
		key.WithHelp("ctrl+r", "reset"),
	),
}

type interactiveModel struct {
	err       error
	bridge    *bridge.Bridge
	resp      *protocol.Response
	config    *protocol.AppConfig
	help      help.Model
	source    string
	committed strings.Builder
	handle    handle.Handle
}

func newInteractiveModel(b *bridge.Bridge, h handle.Handle, source string, cfg *protocol.AppConfig) *interactiveModel {
	if cfg == nil {
		cfg = &protocol.AppConfig{}
	}
	return &interactiveModel{
		bridge: b,
		handle: h,
		source: source,
		help:   help.New(),
		resp:   &protocol.Response{},
		config: cfg,
	}
}

func (m *interactiveModel) Init() tea.Cmd {
	return nil
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, keys.SwitchMode):
			m.send(&protocol.Request{Type: protocol.CmdSwitchInputMode})

		case key.Matches(msg, keys.Toggle):
			enabled := m.config.IMEEnabled == nil || *m.config.IMEEnabled
			m.send(&protocol.Request{
				Type:   protocol.CmdSetConfig,
				Config: &protocol.AppConfig{IMEEnabled: protocol.Bool(!enabled)},
			})

		case key.Matches(msg, keys.Reset):
			m.send(&protocol.Request{Type: protocol.CmdReset})
			m.committed.Reset()

		default:
			ev, ok := keyEvent(msg)
			if !ok {
				return m, nil
			}
			resp := m.send(&protocol.Request{Type: protocol.CmdSendKey, KeyEvent: ev})
			if resp != nil && !resp.Consumed {
				m.passThrough(msg)
			}
		}
	}
	return m, nil
}

func (m *interactiveModel) send(req *protocol.Request) *protocol.Response {
	resp, err := m.bridge.Send(m.handle, req)
	if err != nil {
		m.err = err
		return nil
	}
	m.err = nil
	if resp.Error != protocol.ErrNone {
		m.err = fmt.Errorf("engine reported %v", resp.Error)
	}
	if resp.Config != nil {
		m.config = resp.Config
	}
	if resp.Committed {
		m.committed.WriteString(resp.Preedit.Text())
		m.resp = &protocol.Response{}
		return resp
	}
	m.resp = resp
	return resp
}

// passThrough applies a key the engine did not consume to the output, like
// a plain text field would.
func (m *interactiveModel) passThrough(msg tea.KeyMsg) {
	switch msg.Type {
	case tea.KeyRunes, tea.KeySpace:
		m.committed.WriteString(string(msg.Runes))
	case tea.KeyEnter:
		m.committed.WriteString("\n")
	case tea.KeyBackspace:
		s := []rune(m.committed.String())
		if len(s) > 0 {
			m.committed.Reset()
			m.committed.WriteString(string(s[:len(s)-1]))
		}
	}
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Khiin"))
	b.WriteString(" ")
	b.WriteString(m.source)
	b.WriteString(" ")
	b.WriteString(modeStyle.Render(modeLabel(m.config)))
	b.WriteString("\n\n")

	b.WriteString(m.committed.String())
	if p := m.resp.Preedit; p != nil {
		b.WriteString(preeditStyle.Render(p.Text()))
	}
	b.WriteString("▏\n\n")

	if cl := m.resp.CandidateList; cl != nil {
		for i, c := range cl.Candidates {
			line := fmt.Sprintf("%d. %s", i+1, c.Value)
			if int32(i) == cl.Focused {
				line = selectedStyle.Render(line)
			}
			b.WriteString(line)
			if c.Annotation != "" {
				b.WriteString(" ")
				b.WriteString(annotationStyle.Render(c.Annotation))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n\n")
	}

	b.WriteString(m.help.View(keys))
	return b.String()
}

func modeLabel(cfg *protocol.AppConfig) string {
	if cfg.IMEEnabled != nil && !*cfg.IMEEnabled {
		return "[off]"
	}
	return "[" + cfg.InputMode.String() + "]"
}

func runInteractive(ctx context.Context, m *interactiveModel) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if stderrors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
