package console

import (
	"context"
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
)

// loadTickets is shared by every LogsView so a response addressed to an
// unmounted view can never match the ticket of a newer one.
var loadTickets atomic.Uint64

type logsLoadedMsg struct {
	seq   uint64
	lines []string
	err   error
}

// LogsView shows the server's log lines. Every load cancels the one before
// it and only the most recently issued load may replace the lines.
type LogsView struct {
	source   LogSource
	diag     zerolog.Logger
	lines    []string
	seq      uint64
	cancel   context.CancelFunc
	loading  bool
	viewport viewport.Model
}

func NewLogsView(source LogSource, diag zerolog.Logger) LogsView {
	return LogsView{
		source:   source,
		diag:     diag,
		lines:    []string{},
		viewport: viewport.New(80, 20),
	}
}

// Activate loads once on mount.
func (v LogsView) Activate() (View, tea.Cmd) {
	return v.Load()
}

// Load supersedes any outstanding load and returns the command performing
// the new request.
func (v LogsView) Load() (LogsView, tea.Cmd) {
	if v.cancel != nil {
		v.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	v.seq = loadTickets.Add(1)
	v.cancel = cancel
	v.loading = true

	seq, source := v.seq, v.source
	return v, func() tea.Msg {
		lines, err := source.FetchLogs(ctx)
		return logsLoadedMsg{seq: seq, lines: lines, err: err}
	}
}

// Text is the displayed log text.
func (v LogsView) Text() string {
	return strings.Join(v.lines, "\n")
}

func (v LogsView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "r" {
			return v.Load()
		}
		var cmd tea.Cmd
		v.viewport, cmd = v.viewport.Update(msg)
		return v, cmd

	case logsLoadedMsg:
		if msg.seq != v.seq {
			v.diag.Debug().Uint64("seq", msg.seq).Uint64("latest", v.seq).Msg("Discarding superseded log response")
			return v, nil
		}
		v.loading = false
		if v.cancel != nil {
			v.cancel()
			v.cancel = nil
		}
		if msg.err != nil {
			v.diag.Error().Err(msg.err).Msg("Failed to load logs")
			return v, nil
		}
		v.lines = msg.lines
		if v.lines == nil {
			v.lines = []string{}
		}
		v.viewport.SetContent(v.Text())
		v.viewport.GotoBottom()
		return v, nil
	}
	return v, nil
}

func (v LogsView) Resize(width, height int) View {
	v.viewport.Width = width
	v.viewport.Height = height - 4
	if v.viewport.Height < 1 {
		v.viewport.Height = 1
	}
	v.viewport.SetContent(v.Text())
	return v
}

func (v LogsView) Capturing() bool { return false }

func (v LogsView) Close() {
	if v.cancel != nil {
		v.cancel()
	}
}

func (v LogsView) View() string {
	status := ""
	if v.loading {
		status = labelStyle.Render("  loading...")
	}
	return titleStyle.Render("Logs") + status + "\n\n" +
		v.viewport.View() + "\n" +
		helpStyle.Render("[r] refresh  [↑/↓ pgup/pgdn] scroll")
}
