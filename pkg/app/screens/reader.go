package screens

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ebenson/strips/pkg/app/styles"
	"github.com/ebenson/strips/pkg/data"
	"github.com/ebenson/strips/pkg/services"
)

// ReaderScreen shows one comic at a time and maps keys onto the navigator.
type ReaderScreen struct {
	nav     *services.Navigator
	library *data.Library

	comic   *data.Comic
	loading bool
	starred bool
	status  string

	gotoInput  textinput.Model
	gotoActive bool

	width  int
	height int
	err    error
}

func NewReaderScreen(nav *services.Navigator, library *data.Library) *ReaderScreen {
	ti := textinput.New()
	ti.Placeholder = "comic number or URL"
	ti.CharLimit = 100
	ti.Width = 30

	return &ReaderScreen{
		nav:       nav,
		library:   library,
		gotoInput: ti,
	}
}

func (s *ReaderScreen) Init() tea.Cmd {
	s.loading = true
	return s.load(func() (*data.Comic, error) { return s.nav.LastViewed() })
}

// Show jumps straight to a comic number (used by the library screen).
func (s *ReaderScreen) Show(number int) tea.Cmd {
	s.loading = true
	return s.load(func() (*data.Comic, error) { return s.nav.Get(number) })
}

func (s *ReaderScreen) load(resolve func() (*data.Comic, error)) tea.Cmd {
	return func() tea.Msg {
		comic, err := resolve()
		return comicLoadedMsg{comic: comic, err: err}
	}
}

func (s *ReaderScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height

	case tea.KeyMsg:
		if s.gotoActive {
			return s.updateGoto(msg)
		}
		if s.loading {
			return s, nil
		}

		switch msg.String() {
		case "n", "right":
			s.loading = true
			return s, s.load(s.nav.Next)
		case "p", "left":
			s.loading = true
			return s, s.load(s.nav.Prev)
		case "r":
			s.loading = true
			return s, s.load(s.nav.Random)
		case "l":
			s.loading = true
			return s, s.load(func() (*data.Comic, error) { return s.nav.Get(0) })
		case "g":
			s.gotoActive = true
			s.gotoInput.SetValue("")
			s.gotoInput.Focus()
			return s, textinput.Blink
		case "s":
			if s.comic != nil && s.library != nil {
				return s, s.toggleStar()
			}
		case "o":
			if s.comic != nil {
				s.status = s.nav.ViewerURL(s.comic.Number)
			}
		case "x":
			if s.comic != nil {
				s.status = s.nav.ExplainURL(s.comic.Number)
			}
		}

	case comicLoadedMsg:
		s.loading = false
		s.comic = msg.comic
		s.err = msg.err
		s.status = ""
		if s.comic != nil && s.library != nil {
			s.starred, _ = s.library.IsStarred(s.comic.Number)
		}

	case starToggledMsg:
		if msg.err != nil {
			s.err = msg.err
		} else {
			s.starred = msg.starred
		}
	}

	return s, nil
}

func (s *ReaderScreen) updateGoto(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		target := strings.TrimSpace(s.gotoInput.Value())
		s.gotoActive = false
		s.gotoInput.Blur()
		if target == "" {
			return s, nil
		}
		s.loading = true
		if number, err := strconv.Atoi(target); err == nil {
			return s, s.load(func() (*data.Comic, error) { return s.nav.Get(number) })
		}
		return s, s.load(func() (*data.Comic, error) { return s.nav.FromURL(target) })
	case "esc":
		s.gotoActive = false
		s.gotoInput.Blur()
		return s, nil
	}

	var cmd tea.Cmd
	s.gotoInput, cmd = s.gotoInput.Update(msg)
	return s, cmd
}

func (s *ReaderScreen) toggleStar() tea.Cmd {
	comic := s.comic
	starred := s.starred
	return func() tea.Msg {
		if starred {
			return starToggledMsg{starred: false, err: s.library.Unstar(comic.Number)}
		}
		return starToggledMsg{starred: true, err: s.library.Star(comic)}
	}
}

func (s *ReaderScreen) View() string {
	if s.width == 0 {
		return "Loading..."
	}

	var b strings.Builder

	switch {
	case s.loading:
		b.WriteString(styles.StatusLoading.Render("Fetching comic..."))
		b.WriteString("\n")
	case s.err != nil:
		b.WriteString(styles.StatusError.Render(fmt.Sprintf("Error: %s", s.err)))
		b.WriteString("\n")
	case s.comic != nil:
		star := ""
		if s.starred {
			star = " ★"
		}
		title := styles.TitleStyle.Render(fmt.Sprintf("#%d: %s%s", s.comic.Number, s.comic.Title, star))
		meta := styles.MutedStyle.Render(fmt.Sprintf("%s • %s", s.comic.Format, s.comic.ImagePath))
		alt := styles.AltTextStyle.Render(s.comic.AltText)

		b.WriteString(styles.CardStyle.Render(fmt.Sprintf("%s\n%s\n\n%s", title, meta, alt)))
		b.WriteString("\n")
	}

	if s.gotoActive {
		b.WriteString("Go to: " + s.gotoInput.View())
		b.WriteString("\n")
	}
	if s.status != "" {
		b.WriteString(styles.SubtitleStyle.Render(s.status))
		b.WriteString("\n")
	}

	help := styles.HelpStyle.Render(
		"n/→: next • p/←: prev • r: random • l: latest • g: go to • s: star • o: url • x: explain • tab: library • q: quit",
	)
	b.WriteString(help)

	return b.String()
}

// Messages
type comicLoadedMsg struct {
	comic *data.Comic
	err   error
}

type starToggledMsg struct {
	starred bool
	err     error
}
