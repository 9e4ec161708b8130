package console

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#B4BEFE"))

	navStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A6ADC8")).
			Padding(0, 1)

	activeNavStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#1E1E2E")).
			Background(lipgloss.Color("#CBA6F7")).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(lipgloss.Color("#585B70"))

	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#A6ADC8"))

	focusedLabelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#89B4FA"))

	selectedOptionStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#1E1E2E")).
				Background(lipgloss.Color("#89B4FA")).
				Padding(0, 1)

	optionStyle = lipgloss.NewStyle().Padding(0, 1)

	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086")).Padding(1, 0, 0, 0)

	contentStyle = lipgloss.NewStyle().Padding(1, 2)
)
