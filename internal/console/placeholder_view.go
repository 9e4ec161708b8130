package console

import (
	tea "github.com/charmbracelet/bubbletea"
)

type placeholderView struct {
	title string
	body  string
}

func newPlaceholderView(title, body string) placeholderView {
	return placeholderView{title: title, body: body}
}

func (v placeholderView) Activate() (View, tea.Cmd)      { return v, nil }
func (v placeholderView) Update(tea.Msg) (View, tea.Cmd) { return v, nil }
func (v placeholderView) Resize(width, height int) View  { return v }
func (v placeholderView) Capturing() bool                { return false }
func (v placeholderView) Close()                         {}
func (v placeholderView) View() string {
	return titleStyle.Render(v.title) + "\n\n" + v.body
}
