package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/nador/internal/adapter"
	"github.com/mmcdole/nador/internal/adapter/source"
	"github.com/mmcdole/nador/internal/catalog"
	"github.com/mmcdole/nador/internal/domain"
	"github.com/mmcdole/nador/internal/tui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

type rootFlags struct {
	ConfigFile string
	Category   string
	Search     string
	View       string
	Plain      bool
	Version    bool
}

func newRootCmd() *cobra.Command {
	var flags rootFlags

	cmd := &cobra.Command{
		Use:           "nador",
		Short:         "Nador is a terminal catalog browser",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if flags.Version {
				fmt.Fprintf(cmd.OutOrStdout(), "nador %s\n", Version)
				return nil
			}
			return run(cmd.Context(), flags, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.ConfigFile, "config", "c", "", "configuration file (default ~/.config/nador/config.yaml)")
	f.StringVar(&flags.Category, "category", domain.CategoryAll, "initial category")
	f.StringVarP(&flags.Search, "search", "s", "", "initial search text")
	f.StringVar(&flags.View, "view", "", "result layout: table or grid")
	f.BoolVar(&flags.Plain, "plain", false, "print the filtered catalog and exit")
	f.BoolVarP(&flags.Version, "version", "v", false, "print version")

	return cmd
}

func run(ctx context.Context, flags rootFlags, stdout, stderr io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	// Validate flags before touching config or network
	var viewOverride adapter.ViewMode
	if flags.View != "" {
		v, err := adapter.ParseViewMode(flags.View)
		if err != nil {
			return err
		}
		viewOverride = v
	}

	cfg, err := adapter.LoadConfig(flags.ConfigFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if viewOverride != "" {
		cfg.UI.DefaultView = string(viewOverride)
	}

	logger, logFile, err := adapter.SetupLogger(&cfg.Logging)
	if err != nil {
		// The terminal belongs to the TUI, so never log to stderr
		logger = adapter.NullLogger()
	} else {
		defer logFile.Close()
	}
	slog.SetDefault(logger)

	logger.Info("starting nador", "version", Version, "source", cfg.Source.URL)

	client, err := source.NewClientFromConfig(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to create catalog client: %w", err)
	}
	svc := catalog.NewService(client, logger)

	store := catalog.NewStore()
	store.SetFilter(catalog.FilterState{Category: flags.Category, Search: flags.Search})

	if flags.Plain || !isTerminal(stdout) {
		return tui.RunPlain(ctx, svc, store, stdout, stderr, tui.PlainOptions{
			DescriptionWidth: cfg.UI.DescriptionWidth,
		})
	}

	opener := adapter.NewOpener(cfg.Viewer, logger)
	model := tui.NewModel(store, svc, opener, logger, tui.Options{
		View:             cfg.View(),
		GridColumns:      cfg.UI.GridColumns,
		DescriptionWidth: cfg.UI.DescriptionWidth,
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	logger.Info("starting TUI")

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}

// isTerminal reports whether w is an interactive terminal
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
