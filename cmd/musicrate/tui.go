package main

import (
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hazadus/go-musicrate/internal/tui"
	tuiapp "github.com/hazadus/go-musicrate/internal/tui/app"
)

// createTUICommand создает команду tui с привязкой к экземпляру приложения
func (app *Application) createTUICommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Launch TUI (Terminal User Interface)",
		Long:  `Launch interactive terminal user interface for rating and commenting tracks.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return app.launchTUI()
		},
	}
}

func (app *Application) launchTUI() error {
	tuiApp := tui.NewApp(app.tuiOptions())

	store, err := tuiApp.Run()
	if err != nil {
		return fmt.Errorf("ошибка интерфейса: %w", err)
	}

	app.Store = store
	app.Logger.Info("сессия завершена", zap.Int("tracks", store.Len()))
	return nil
}

func (app *Application) tuiOptions() tuiapp.Options {
	return tuiapp.Options{
		Store:                app.Store,
		Stats:                app.Config.Stats,
		Rand:                 rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		Formatter:            app.Formatter,
		Logger:               app.Logger,
		DefaultCommentRating: app.Config.DefaultCommentRating,
	}
}
