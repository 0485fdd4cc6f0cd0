// Package app is the composition root: it loads configuration, opens the
// record store, wires the event bus and controller, and hands everything to
// the UI.
package app

import (
	"context"
	"fmt"

	"github.com/rolodeck/rolodeck/internal/config"
	"github.com/rolodeck/rolodeck/internal/controller"
	"github.com/rolodeck/rolodeck/internal/event"
	"github.com/rolodeck/rolodeck/internal/prefs"
	"github.com/rolodeck/rolodeck/internal/store"
	"github.com/rolodeck/rolodeck/internal/ui"
)

// Options configure the rolodeck application.
type Options struct {
	ConfigPath string
	StoreDir   string // empty uses the configured or default directory
	PrefsPath  string // empty uses default ~/.config/rolodeck/prefs.toml
}

// Run boots the rolodeck TUI until the context is cancelled or the user
// quits. Everything is constructed here and injected: one store, one bus,
// one controller, handed to the UI.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		return fmt.Errorf("load prefs: %w", err)
	}

	storeDir := opts.StoreDir
	if storeDir == "" {
		storeDir = cfg.StoreDir
	}
	st, err := store.Open(storeDir)
	if err != nil {
		return fmt.Errorf("open record store: %w", err)
	}

	bus := event.New()
	ctrl := controller.New(bus, st)

	themeName := userPrefs.Theme
	if cfg.Theme != "" {
		themeName = cfg.Theme
	}

	uiOpts := ui.Options{
		Context:    ctx,
		Bus:        bus,
		Controller: ctrl,
		Store:      st,
		ThemeName:  themeName,
		PrefsPath:  opts.PrefsPath,
	}
	return ui.Run(uiOpts)
}
