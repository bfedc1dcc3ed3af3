package screens

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ebenson/strips/pkg/app/components"
	"github.com/ebenson/strips/pkg/app/styles"
	"github.com/ebenson/strips/pkg/data"
	"github.com/ebenson/strips/pkg/sources"
)

// LibraryScreen lists everything in the local cache.
type LibraryScreen struct {
	store   *data.FileStore
	library *data.Library

	comicList *components.ComicList
	width     int
	height    int
	err       error
}

func NewLibraryScreen(store *data.FileStore, library *data.Library) *LibraryScreen {
	return &LibraryScreen{
		store:     store,
		library:   library,
		comicList: components.NewComicList(),
	}
}

func (s *LibraryScreen) Init() tea.Cmd {
	return s.loadCache
}

func (s *LibraryScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.comicList.Width = msg.Width - 4
		s.comicList.Height = msg.Height - 8

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			s.comicList.Prev()
		case "down", "j":
			s.comicList.Next()
		case "r":
			return s, s.loadCache
		case "enter":
			selected := s.comicList.Selected()
			if selected != nil {
				number := selected.Number
				return s, func() tea.Msg {
					return SwitchScreenMsg{Screen: "reader", Data: number}
				}
			}
		}

	case cacheLoadedMsg:
		s.comicList.SetItems(msg.items)
		s.err = msg.err
	}

	return s, nil
}

func (s *LibraryScreen) loadCache() tea.Msg {
	numbers, err := s.store.Cached()
	if err != nil {
		return cacheLoadedMsg{err: err}
	}

	starred := map[int]bool{}
	if s.library != nil {
		if favorites, err := s.library.Favorites(); err == nil {
			for _, f := range favorites {
				starred[f.Number] = true
			}
		}
	}

	items := make([]components.ComicListItem, 0, len(numbers))
	for _, number := range numbers {
		item := components.ComicListItem{Number: number, Starred: starred[number]}
		if raw, err := s.store.ReadJSON(number); err == nil {
			if comic, err := sources.ParseComic(raw); err == nil {
				item.Title = comic.Title
			}
		}
		items = append(items, item)
	}

	return cacheLoadedMsg{items: items}
}

func (s *LibraryScreen) View() string {
	if s.width == 0 {
		return "Loading..."
	}

	header := styles.TitleStyle.Render("Cached comics")

	var errorMsg string
	if s.err != nil {
		errorMsg = styles.StatusError.Render(fmt.Sprintf("Error: %s", s.err)) + "\n\n"
	}

	help := styles.HelpStyle.Render(
		"↑/k: up • ↓/j: down • enter: read • r: refresh • tab: reader • q: quit",
	)

	return fmt.Sprintf("%s\n%s%s\n%s", header, errorMsg, s.comicList.View(), help)
}

// Messages
type cacheLoadedMsg struct {
	items []components.ComicListItem
	err   error
}
