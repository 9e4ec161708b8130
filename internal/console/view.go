package console

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"autoblog/internal/model"
)

// LogSource fetches the current log lines.
type LogSource interface {
	FetchLogs(ctx context.Context) ([]string, error)
}

// SettingsSaver sends a saved settings draft somewhere.
type SettingsSaver interface {
	SaveSettings(ctx context.Context, draft model.SettingsDraft) error
}

// Deps are shared by every view the router mounts. Views keep no state
// outside themselves.
type Deps struct {
	Logs     LogSource
	Settings SettingsSaver // optional
	Diag     zerolog.Logger
}

// View is a screen mounted under one route. A navigation always builds a new
// View, and the previous one is closed.
type View interface {
	// Activate runs once when the view is mounted.
	Activate() (View, tea.Cmd)
	Update(msg tea.Msg) (View, tea.Cmd)
	View() string
	Resize(width, height int) View
	// Capturing reports whether keys should go to the view before the
	// router's own bindings.
	Capturing() bool
	Close()
}
