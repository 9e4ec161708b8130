package console

// Route binds a path to the view factory mounted under it.
type Route struct {
	Path  string
	Title string
	New   func(deps Deps) View
}

func DefaultRoutes() []Route {
	return []Route{
		{Path: "/", Title: "Dashboard", New: func(Deps) View {
			return newPlaceholderView("Dashboard", "Overview of feeds, drafts and scheduled posts.")
		}},
		{Path: "/rss-feeds", Title: "RSS Feeds", New: func(Deps) View {
			return newPlaceholderView("RSS Feed Manager", "Manage the feeds posts are generated from.")
		}},
		{Path: "/llm-integration", Title: "LLM", New: func(Deps) View {
			return newPlaceholderView("LLM Integration", "Configure the local and API language models.")
		}},
		{Path: "/generate-post", Title: "Generate", New: func(Deps) View {
			return newPlaceholderView("Blog Post Generator", "Generate a post from the collected feed items.")
		}},
		{Path: "/automations", Title: "Automations", New: func(Deps) View {
			return newPlaceholderView("Automation Manager", "Schedule recurring generation and publishing.")
		}},
		{Path: "/settings", Title: "Settings", New: func(d Deps) View {
			return NewSettingsView(d.Settings, d.Diag)
		}},
		{Path: "/logs", Title: "Logs", New: func(d Deps) View {
			return NewLogsView(d.Logs, d.Diag)
		}},
	}
}
