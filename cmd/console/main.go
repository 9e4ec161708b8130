package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"autoblog/config"
	"autoblog/internal/client"
	"autoblog/internal/console"
	"autoblog/internal/logging"
)

func main() {
	pflag.String("api", "", "autoblog server base URL (CONSOLE_API_URL)")
	pflag.String("route", "", "path to open on start, e.g. /logs (CONSOLE_START_ROUTE)")
	pflag.String("diag-log", "", "diagnostic log file (CONSOLE_DIAG_LOG)")
	pflag.Parse()

	for key, flag := range map[string]string{
		"CONSOLE_API_URL":     "api",
		"CONSOLE_START_ROUTE": "route",
		"CONSOLE_DIAG_LOG":    "diag-log",
	} {
		if f := pflag.Lookup(flag); f != nil && f.Changed {
			if err := viper.BindPFlag(key, f); err != nil {
				fmt.Fprintf(os.Stderr, "bind flag --%s: %v\n", flag, err)
				os.Exit(2)
			}
		}
	}

	cfg := config.NewConsoleConfig()

	diagFile, err := logging.OpenFile(cfg.DiagLog)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open diagnostic log: %v\n", err)
		os.Exit(1)
	}
	defer diagFile.Close()
	diag := zerolog.New(diagFile).With().Timestamp().Str("component", "console").Logger()
	diag.Info().Str("api", cfg.APIURL).Str("route", cfg.StartRoute).Msg("Console starting")

	api := client.NewClient(cfg.APIURL, cfg.Timeout)
	app := console.NewApp(console.Deps{
		Logs:     api,
		Settings: api,
		Diag:     diag,
	}, console.DefaultRoutes(), cfg.StartRoute)

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		diag.Error().Err(err).Msg("Console exited with error")
		fmt.Fprintf(os.Stderr, "Error running console: %v\n", err)
		os.Exit(1)
	}
	diag.Info().Msg("Console stopped")
}
