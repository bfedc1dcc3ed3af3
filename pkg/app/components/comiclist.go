package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ebenson/strips/pkg/app/styles"
)

type ComicListItem struct {
	Number  int
	Title   string
	Starred bool
}

// ComicList is a scrollable list of cached comics.
type ComicList struct {
	Items         []ComicListItem
	SelectedIndex int
	Width         int
	Height        int
}

func NewComicList() *ComicList {
	return &ComicList{
		Items:         []ComicListItem{},
		SelectedIndex: 0,
		Width:         80,
		Height:        20,
	}
}

func (c *ComicList) SetItems(items []ComicListItem) {
	c.Items = items
	if c.SelectedIndex >= len(items) {
		c.SelectedIndex = len(items) - 1
	}
	if c.SelectedIndex < 0 {
		c.SelectedIndex = 0
	}
}

func (c *ComicList) Next() {
	if len(c.Items) == 0 {
		return
	}
	c.SelectedIndex++
	if c.SelectedIndex >= len(c.Items) {
		c.SelectedIndex = 0
	}
}

func (c *ComicList) Prev() {
	if len(c.Items) == 0 {
		return
	}
	c.SelectedIndex--
	if c.SelectedIndex < 0 {
		c.SelectedIndex = len(c.Items) - 1
	}
}

func (c *ComicList) Selected() *ComicListItem {
	if len(c.Items) == 0 || c.SelectedIndex >= len(c.Items) {
		return nil
	}
	return &c.Items[c.SelectedIndex]
}

func (c *ComicList) View() string {
	if len(c.Items) == 0 {
		emptyMsg := styles.MutedStyle.Render("Nothing cached yet")
		return lipgloss.Place(c.Width, c.Height, lipgloss.Center, lipgloss.Center, emptyMsg)
	}

	// Keep the selection visible inside the viewport.
	visible := c.Height
	if visible < 1 {
		visible = 1
	}
	start := 0
	if c.SelectedIndex >= visible {
		start = c.SelectedIndex - visible + 1
	}
	end := start + visible
	if end > len(c.Items) {
		end = len(c.Items)
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		item := c.Items[i]

		star := " "
		if item.Starred {
			star = "★"
		}
		line := fmt.Sprintf("%s %4d  %s", star, item.Number, item.Title)

		if i == c.SelectedIndex {
			b.WriteString(styles.SelectedStyle.Render("› " + line))
		} else {
			b.WriteString(styles.TextStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}
	return b.String()
}
