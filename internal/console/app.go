package console

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// navigateMsg asks the router to mount the view for path.
type navigateMsg struct {
	path string
}

// Navigate returns a command that switches to path.
func Navigate(path string) tea.Cmd {
	return func() tea.Msg { return navigateMsg{path: path} }
}

// App is the routing shell: a header with the route list and the view mounted
// for the current path. An unknown path mounts nothing.
type App struct {
	routes []Route
	deps   Deps
	path   string
	active int
	view   View
	width  int
	height int
}

func NewApp(deps Deps, routes []Route, startPath string) App {
	return App{
		routes: routes,
		deps:   deps,
		path:   startPath,
		active: -1,
	}
}

func (a App) Path() string { return a.path }

// Current returns the mounted view, or nil on an unmatched path.
func (a App) Current() View { return a.view }

func (a App) Init() tea.Cmd {
	return Navigate(a.path)
}

// navigate always mounts a fresh view, even for the current path.
func (a App) navigate(path string) (App, tea.Cmd) {
	if a.view != nil {
		a.view.Close()
	}
	a.path = path
	a.active = -1
	a.view = nil

	for i, r := range a.routes {
		if r.Path != path {
			continue
		}
		a.active = i
		view, cmd := r.New(a.deps).Activate()
		if a.width > 0 {
			view = view.Resize(a.width, a.contentHeight())
		}
		a.view = view
		a.deps.Diag.Debug().Str("path", path).Msg("Mounted view")
		return a, cmd
	}
	a.deps.Diag.Debug().Str("path", path).Msg("No view for path")
	return a, nil
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.view != nil {
			a.view = a.view.Resize(a.width, a.contentHeight())
		}
		return a, nil

	case navigateMsg:
		return a.navigate(msg.path)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a.quit()
		}
		if a.view == nil || !a.view.Capturing() {
			if next, cmd, handled := a.handleNavKey(msg); handled {
				return next, cmd
			}
		}
	}

	if a.view == nil {
		return a, nil
	}
	var cmd tea.Cmd
	a.view, cmd = a.view.Update(msg)
	return a, cmd
}

func (a App) handleNavKey(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	switch key := msg.String(); key {
	case "q":
		m, cmd := a.quit()
		return m, cmd, true
	case "tab":
		m, cmd := a.navigate(a.routes[a.offsetIndex(1)].Path)
		return m, cmd, true
	case "shift+tab":
		m, cmd := a.navigate(a.routes[a.offsetIndex(-1)].Path)
		return m, cmd, true
	default:
		if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(a.routes) {
			m, cmd := a.navigate(a.routes[n-1].Path)
			return m, cmd, true
		}
	}
	return a, nil, false
}

func (a App) offsetIndex(delta int) int {
	if a.active < 0 {
		if delta > 0 {
			return 0
		}
		return len(a.routes) - 1
	}
	return (a.active + delta + len(a.routes)) % len(a.routes)
}

func (a App) quit() (tea.Model, tea.Cmd) {
	if a.view != nil {
		a.view.Close()
	}
	return a, tea.Quit
}

func (a App) contentHeight() int {
	return a.height - 4
}

func (a App) header() string {
	items := make([]string, 0, len(a.routes))
	for i, r := range a.routes {
		label := strconv.Itoa(i+1) + " " + r.Title
		if i == a.active {
			items = append(items, activeNavStyle.Render(label))
		} else {
			items = append(items, navStyle.Render(label))
		}
	}
	nav := lipgloss.JoinHorizontal(lipgloss.Top, items...)
	return headerStyle.Render(titleStyle.Render("autoblog") + "  " + nav)
}

func (a App) View() string {
	var s strings.Builder
	s.WriteString(a.header())
	s.WriteString("\n")
	if a.view != nil {
		s.WriteString(contentStyle.Render(a.view.View()))
	}
	return s.String()
}
