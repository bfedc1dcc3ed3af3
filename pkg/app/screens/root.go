package screens

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ebenson/strips/pkg/app/styles"
	"github.com/ebenson/strips/pkg/data"
	"github.com/ebenson/strips/pkg/services"
)

type screenType int

const (
	readerView screenType = iota
	libraryView
)

// SwitchScreenMsg asks the root screen to change the active view.
type SwitchScreenMsg struct {
	Screen string
	Data   any
}

type RootScreen struct {
	currentView screenType
	reader      *ReaderScreen
	library     *LibraryScreen

	width  int
	height int
}

func NewRootScreen(nav *services.Navigator, store *data.FileStore, library *data.Library) *RootScreen {
	return &RootScreen{
		currentView: readerView,
		reader:      NewReaderScreen(nav, library),
		library:     NewLibraryScreen(store, library),
	}
}

func (r *RootScreen) Init() tea.Cmd {
	return r.reader.Init()
}

func (r *RootScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		r.width = msg.Width
		r.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			// The goto prompt owns its own keys, including q.
			if r.currentView == readerView && r.reader.gotoActive {
				break
			}
			return r, tea.Quit
		case "tab":
			if r.currentView == readerView && r.reader.gotoActive {
				break
			}
			if r.currentView == readerView {
				r.currentView = libraryView
				return r, r.library.Init()
			}
			r.currentView = readerView
			return r, nil
		}

	case SwitchScreenMsg:
		switch msg.Screen {
		case "reader":
			r.currentView = readerView
			if number, ok := msg.Data.(int); ok {
				return r, r.reader.Show(number)
			}
			return r, nil
		case "library":
			r.currentView = libraryView
			return r, r.library.Init()
		}
	}

	// Forward to the active screen.
	switch r.currentView {
	case readerView:
		model, cmd := r.reader.Update(msg)
		r.reader = model.(*ReaderScreen)
		return r, cmd
	case libraryView:
		model, cmd := r.library.Update(msg)
		r.library = model.(*LibraryScreen)
		return r, cmd
	}
	return r, nil
}

func (r *RootScreen) View() string {
	tabs := r.renderTabs()

	var body string
	switch r.currentView {
	case readerView:
		body = r.reader.View()
	case libraryView:
		body = r.library.View()
	}

	return fmt.Sprintf("%s\n\n%s", tabs, body)
}

func (r *RootScreen) renderTabs() string {
	readerTab := styles.InactiveTabStyle.Render("Reader")
	libraryTab := styles.InactiveTabStyle.Render("Library")
	if r.currentView == readerView {
		readerTab = styles.ActiveTabStyle.Render("Reader")
	} else {
		libraryTab = styles.ActiveTabStyle.Render("Library")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, readerTab, " ", libraryTab)
}
