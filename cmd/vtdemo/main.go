// Command vtdemo is a minimal single-pane terminal emulator: it spawns a
// shell behind a PTY, feeds its output through the vt parser and screen
// model, and renders the resulting grid with Bubbletea.
package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/patrick-goecommerce/termcore/internal/config"
)

// tickMsg fires periodically so the model notices new PTY output even
// between keystrokes; Bubbletea has no "redraw on external event" hook of
// its own, so this is the same polling shape the program this was built
// from uses for its session panes.
type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(33*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

type exitMsg struct{ code int }

// model is the root Bubbletea model: one terminal session, no tabs or
// panes.
type model struct {
	cfg     config.Config
	sess    *session
	width   int
	height  int
	quit    bool
	status  string
	lastErr error
}

func newModel(cfg config.Config) model {
	return model{
		cfg:  cfg,
		sess: newSession(cfg.Cols, cfg.Rows),
	}
}

func (m model) Init() tea.Cmd {
	if err := m.sess.start(nil, "", nil); err != nil {
		return func() tea.Msg { return exitMsg{code: 1} }
	}
	return tickCmd()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		cols, rows := msg.Width, msg.Height-1
		if cols > 0 && rows > 0 {
			m.sess.resize(cols, rows)
		}
		return m, nil

	case tickMsg:
		m.sess.mu.Lock()
		done := m.sess.status != statusRunning
		m.sess.mu.Unlock()
		if done {
			m.quit = true
			return m, tea.Quit
		}
		return m, tickCmd()

	case exitMsg:
		m.quit = true
		m.lastErr = fmt.Errorf("failed to start shell (exit %d)", msg.code)
		return m, tea.Quit

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlBackslash {
			m.sess.close()
			m.quit = true
			return m, tea.Quit
		}
		if b := keyToBytes(msg); b != nil {
			_, _ = m.sess.write(b)
		}
		return m, nil
	}
	return m, nil
}

func (m model) View() string {
	if m.quit {
		if m.lastErr != nil {
			return m.lastErr.Error() + "\n"
		}
		return "session closed\n"
	}
	if m.width == 0 || m.height == 0 {
		return "starting…"
	}

	m.sess.mu.Lock()
	body := renderScreen(m.sess.screen)
	m.sess.mu.Unlock()

	footer := lipgloss.NewStyle().
		Faint(true).
		Render(fmt.Sprintf("%s — Ctrl+\\ to exit", m.cfg.Shell))

	return body + "\n" + footer
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "vtdemo: loading config:", err)
		cfg = config.DefaultConfig()
	}

	p := tea.NewProgram(newModel(cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "vtdemo:", err)
		os.Exit(1)
	}
}
