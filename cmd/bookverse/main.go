package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ingdavann/bookverse-project/internal/catalog"
	"github.com/ingdavann/bookverse-project/internal/collections"
	"github.com/ingdavann/bookverse-project/internal/config"
	"github.com/ingdavann/bookverse-project/internal/log"
	"github.com/ingdavann/bookverse-project/internal/storage"
	"github.com/ingdavann/bookverse-project/internal/tui"
	"golang.org/x/term"
)

// Version is set at build time via -ldflags
var Version = "dev"

func main() {
	var showVersion bool
	flag.BoolVar(&showVersion, "v", false, "print version")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.Parse()

	if showVersion {
		fmt.Printf("bookverse %s\n", Version)
		return
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := log.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = log.NullLogger()
	}
	slog.SetDefault(logger)

	logger.Info("starting bookverse", "version", Version)

	// First run: write the default config so the user has a file to edit
	if config.FileUsed() == "" {
		if err := config.SaveConfig(cfg); err != nil {
			logger.Warn("could not write default config", "error", err)
		}
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("bookverse requires an interactive terminal")
	}

	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		return fmt.Errorf("failed to open local store: %w", err)
	}
	defer store.Close()

	collectionsSvc := collections.NewService(store, logger)
	catalogClient := catalog.NewClient(cfg.Catalog.BaseURL, logger)

	model := tui.NewModel(collectionsSvc, catalogClient, logger, tui.ViewFromName(cfg.UI.DefaultView))

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	logger.Info("starting TUI")

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}
