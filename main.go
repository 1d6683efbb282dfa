// proton TUI - A terminal client for Proton AI chat.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/morganforge/proton-tui/internal/auth"
	"github.com/morganforge/proton-tui/internal/config"
	"github.com/morganforge/proton-tui/internal/proton"
	"github.com/morganforge/proton-tui/internal/session"
	"github.com/morganforge/proton-tui/internal/storage"
	"github.com/morganforge/proton-tui/internal/ui"
	"github.com/morganforge/proton-tui/internal/ui/styles"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func main() {
	for _, arg := range os.Args[1:] {
		switch arg {
		case "--version", "-v":
			fmt.Printf("proton %s (%s, built %s)\n", Version, GitCommit, BuildDate)
			return
		case "--help", "-h":
			printUsage()
			return
		}
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("proton - terminal client for Proton AI chat")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  proton              start the chat interface")
	fmt.Println("  proton --version    print version information")
	fmt.Println()
	fmt.Println("Configuration lives in ~/.proton/config.toml and can be")
	fmt.Println("overridden with PROTON_API_URL, PROTON_API_KEY, PROTON_MODEL")
	fmt.Println("and PROTON_DATA_DIR.")
}

func run() error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("proton requires an interactive terminal")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	styles.ApplyTheme(cfg.UI.Theme)

	dbPath, err := cfg.DatabasePath()
	if err != nil {
		return err
	}
	backend, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("could not open local storage: %w", err)
	}
	defer backend.Close()

	identity := auth.NewStore(backend)
	sessions := session.NewStore(backend)

	client := proton.NewClient(cfg.API.BaseURL, cfg.API.Key, proton.WithModel(cfg.API.Model))

	// Pick up theme edits without a restart. Endpoint changes still need one.
	if path, err := config.ConfigPath(); err == nil {
		if watcher, err := config.NewWatcher(path, func(next *config.Config) {
			styles.ApplyTheme(next.UI.Theme)
		}); err == nil {
			if err := watcher.Watch(); err == nil {
				defer watcher.Close()
			}
		}
	}

	app := ui.NewApp(identity, sessions, client)
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running proton: %w", err)
	}
	return nil
}
