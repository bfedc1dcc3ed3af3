package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ebenson/strips/pkg/app/screens"
	"github.com/ebenson/strips/pkg/data"
	"github.com/ebenson/strips/pkg/services"
)

type App struct {
	nav     *services.Navigator
	store   *data.FileStore
	library *data.Library
}

func NewApp(nav *services.Navigator, store *data.FileStore, library *data.Library) *App {
	return &App{nav: nav, store: store, library: library}
}

func (a *App) Run() error {
	model := screens.NewRootScreen(a.nav, a.store, a.library)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
