package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"dashgrid/internal/config"
	"dashgrid/internal/logging"
	"dashgrid/internal/tui"
)

func main() {
	// Initialize logging first so everything else can use slog
	if err := logging.Init(); err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	client := tui.NewClient(serverURL(cfg.Server.Addr))

	model := tui.InitialModel(client, cfg)

	p := tea.NewProgram(model, tea.WithAltScreen())

	// Push theme edits into the running program as the config file changes
	watchCtx, cancelWatch := context.WithCancel(context.Background())
	defer cancelWatch()
	if configPath, err := config.GetConfigPath(); err == nil {
		go func() {
			_ = config.Watch(watchCtx, configPath, func(updated *config.Config) {
				p.Send(tui.ThemeUpdated(updated.Theme))
			})
		}()
	}

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		slog.Error("program error", "error", err)
		os.Exit(1)
	}
}

// serverURL turns a listen address like ":3000" into a base URL.
func serverURL(addr string) string {
	if strings.HasPrefix(addr, "http://") || strings.HasPrefix(addr, "https://") {
		return addr
	}
	if strings.HasPrefix(addr, ":") {
		return "http://localhost" + addr
	}
	return "http://" + addr
}
