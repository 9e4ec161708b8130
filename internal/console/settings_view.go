package console

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"autoblog/internal/model"
)

const (
	focusMode = iota
	focusProxy
)

// SettingsView edits a settings draft. Nothing is validated beyond the mode
// being one of model.LLMTypes, and nothing is shown after a save.
type SettingsView struct {
	draft model.SettingsDraft
	proxy textinput.Model
	focus int
	saver SettingsSaver
	diag  zerolog.Logger
}

func NewSettingsView(saver SettingsSaver, diag zerolog.Logger) SettingsView {
	draft := model.DefaultSettingsDraft()

	proxy := textinput.New()
	proxy.Placeholder = "http://proxy.example.com:8080"
	proxy.Prompt = ""
	proxy.SetValue(draft.ProxyURL)

	return SettingsView{
		draft: draft,
		proxy: proxy,
		focus: focusMode,
		saver: saver,
		diag:  diag,
	}
}

func (v SettingsView) Activate() (View, tea.Cmd) { return v, nil }

func (v SettingsView) Draft() model.SettingsDraft { return v.draft }

// SetLLMType ignores values outside model.LLMTypes.
func (v SettingsView) SetLLMType(t model.LLMType) SettingsView {
	if t.Valid() {
		v.draft.LLMType = t
	}
	return v
}

func (v SettingsView) SetProxyURL(url string) SettingsView {
	v.draft.ProxyURL = url
	v.proxy.SetValue(url)
	return v
}

// Save records the draft on the diagnostic channel and, when a saver is set,
// returns a command that sends it. A send failure is only logged.
func (v SettingsView) Save() tea.Cmd {
	draft := v.draft
	v.diag.Info().
		Str("llmType", string(draft.LLMType)).
		Str("proxyUrl", draft.ProxyURL).
		Msg("Saving settings")

	if v.saver == nil {
		return nil
	}
	saver, diag := v.saver, v.diag
	return func() tea.Msg {
		if err := saver.SaveSettings(context.Background(), draft); err != nil {
			diag.Error().Err(err).Msg("Failed to send settings")
		}
		return nil
	}
}

func (v SettingsView) Update(msg tea.Msg) (View, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		if v.focus == focusProxy {
			var cmd tea.Cmd
			v.proxy, cmd = v.proxy.Update(msg)
			return v, cmd
		}
		return v, nil
	}

	switch key.String() {
	case "ctrl+s":
		return v, v.Save()
	case "up", "down":
		return v.toggleFocus()
	}

	if v.focus == focusProxy {
		switch key.String() {
		case "enter":
			return v, v.Save()
		case "esc":
			return v.toggleFocus()
		}
		var cmd tea.Cmd
		v.proxy, cmd = v.proxy.Update(msg)
		v.draft.ProxyURL = v.proxy.Value()
		return v, cmd
	}

	switch key.String() {
	case "left", "right", " ", "h", "l":
		v = v.SetLLMType(nextLLMType(v.draft.LLMType))
	case "enter":
		return v, v.Save()
	}
	return v, nil
}

func (v SettingsView) toggleFocus() (View, tea.Cmd) {
	if v.focus == focusMode {
		v.focus = focusProxy
		return v, v.proxy.Focus()
	}
	v.focus = focusMode
	v.proxy.Blur()
	return v, nil
}

func nextLLMType(current model.LLMType) model.LLMType {
	for i, t := range model.LLMTypes {
		if t == current {
			return model.LLMTypes[(i+1)%len(model.LLMTypes)]
		}
	}
	return model.LLMTypes[0]
}

func (v SettingsView) Resize(width, height int) View {
	v.proxy.Width = width - 20
	if v.proxy.Width < 10 {
		v.proxy.Width = 10
	}
	return v
}

func (v SettingsView) Capturing() bool { return v.focus == focusProxy }

func (v SettingsView) Close() {}

func (v SettingsView) View() string {
	var s strings.Builder
	s.WriteString(titleStyle.Render("Settings") + "\n\n")

	label := labelStyle
	if v.focus == focusMode {
		label = focusedLabelStyle
	}
	s.WriteString(label.Render("LLM type   "))
	for _, t := range model.LLMTypes {
		if t == v.draft.LLMType {
			s.WriteString(selectedOptionStyle.Render(string(t)))
		} else {
			s.WriteString(optionStyle.Render(string(t)))
		}
	}
	s.WriteString("\n\n")

	label = labelStyle
	if v.focus == focusProxy {
		label = focusedLabelStyle
	}
	s.WriteString(label.Render("Proxy URL  ") + v.proxy.View() + "\n")

	help := "[↑/↓] field  [←/→] mode  [enter/ctrl+s] save"
	if v.focus == focusProxy {
		help = "[esc] done  [enter/ctrl+s] save"
	}
	s.WriteString(helpStyle.Render(help))
	return s.String()
}
