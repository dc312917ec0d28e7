// Package tui содержит компоненты для текстового пользовательского интерфейса
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hazadus/go-musicrate/internal/track"
	"github.com/hazadus/go-musicrate/internal/tui/app"
)

// App представляет основное TUI приложение
type App struct {
	opts app.Options
}

// NewApp создает новый экземпляр TUI приложения
func NewApp(opts app.Options) *App {
	return &App{opts: opts}
}

// Run запускает TUI приложение и возвращает итоговый снимок хранилища
func (tuiApp *App) Run() (*track.Store, error) {
	model := app.NewMainModel(tuiApp.opts)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return nil, err
	}

	return model.Store(), nil
}
