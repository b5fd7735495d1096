package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"reelview/internal/browser"
	"reelview/internal/catalog"
	"reelview/internal/config"
	"reelview/internal/eventbus"
	"reelview/internal/ui"
)

type options struct {
	catalogPath string
	configPath  string
	logFile     string
	debug       bool
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "reelview [catalog-file]",
		Short: "Browse a movie catalog in the terminal",
		Long: `reelview shows a movie catalog as a carousel of posters above a
searchable list of titles.

The catalog is read from a TOML, YAML or JSON file. Without one the builtin
sample catalog is shown.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return run(ctx, opts, args)
		},
	}

	rootCmd.Flags().StringVarP(&opts.catalogPath, "catalog", "c", "", "Catalog file (.toml, .yaml, .yml or .json)")
	rootCmd.Flags().StringVar(&opts.configPath, "config", "", "Configuration file path (default "+config.DefaultPath()+")")
	rootCmd.Flags().StringVar(&opts.logFile, "log-file", "reelview.log", "File to write logs to")
	rootCmd.Flags().BoolVar(&opts.debug, "debug", false, "Enable debug logging")

	return rootCmd
}

func run(ctx context.Context, opts *options, args []string) error {
	logger, err := newLogger(opts.logFile, opts.debug)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	defer zap.ReplaceGlobals(logger)()
	defer zap.RedirectStdLog(logger)()

	// Create event bus
	bus := eventbus.New()
	defer bus.Close()

	configPath := opts.configPath
	if configPath == "" {
		configPath = config.DefaultPath()
	}
	configSvc := config.NewConfigServiceWithBus(bus, configPath)
	cfg := loadOrCreateConfig(configSvc)

	catalogPath := resolveCatalogPath(opts.catalogPath, args, cfg)
	catalogSvc := catalog.NewService(bus, catalogPath)
	defer catalogSvc.Stop()

	movies, err := catalogSvc.Load(ctx)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	zap.S().Infof("Loaded %d movies from %s", len(movies.Movies), movies.Source)

	b := browser.New(movies.Movies, browser.WithObserver(ui.NewBusObserver(bus)))
	uiModel := ui.NewModel(bus, cfg, b, movies.Source)

	p := tea.NewProgram(uiModel,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	uiModel.SetProgram(p)

	// Forward service results to the UI
	forward := func(e eventbus.DomainEvent) {
		p.Send(ui.EventMsg{Event: e})
	}
	bus.Subscribe(eventbus.EventCatalogLoaded, forward)
	bus.Subscribe(eventbus.EventError, forward)

	bus.Subscribe(eventbus.EventSearchPerformed, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.SearchPerformedEvent); ok {
			zap.S().Debugf("Search %q matched %d movies", event.Query, event.Matches)
		}
	})
	bus.Subscribe(eventbus.EventPageChanged, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.PageChangedEvent); ok {
			zap.S().Debugf("Carousel page %d of %d", event.Page.Active+1, event.Page.Total)
		}
	})

	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			zap.S().Infof("Interrupted, shutting down")
			return nil
		}
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}

// loadOrCreateConfig loads the config file, writing the defaults on first run.
// A broken file is logged and the defaults are used without overwriting it.
func loadOrCreateConfig(configSvc config.ConfigService) *config.Config {
	_, statErr := os.Stat(configSvc.Path())

	cfg, err := configSvc.Load()
	if err != nil {
		zap.S().Errorf("Error loading config: %v", err)
		return config.DefaultConfig()
	}

	if errors.Is(statErr, os.ErrNotExist) {
		if err := configSvc.Save(cfg); err != nil {
			zap.S().Warnf("Failed to write default config: %v", err)
		} else {
			zap.S().Infof("Created config at %s", configSvc.Path())
		}
	}
	return cfg
}

// resolveCatalogPath picks the catalog file: the --catalog flag, then the
// positional argument, then the config. Empty means the builtin catalog.
func resolveCatalogPath(flagValue string, args []string, cfg *config.Config) string {
	if flagValue != "" {
		return flagValue
	}
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	if cfg != nil {
		return cfg.CatalogPath
	}
	return ""
}
