package cmd

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/ebenson/strips/pkg/data"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	altStyle   = lipgloss.NewStyle().Italic(true).Width(72)
	mutedStyle = lipgloss.NewStyle().Faint(true)
)

func printComic(comic *data.Comic) {
	fmt.Println(titleStyle.Render(fmt.Sprintf("#%d: %s", comic.Number, comic.Title)))
	fmt.Println(mutedStyle.Render(fmt.Sprintf("%s • %s", comic.Format, comic.ImagePath)))
	fmt.Println()
	fmt.Println(altStyle.Render(comic.AltText))
}

func formatOf(imageURL string) data.ImageFormat {
	return data.FormatFromExt(data.ImageExt(imageURL))
}

// isNumber tells a plain comic number apart from a URL argument.
func isNumber(arg string) bool {
	_, err := strconv.Atoi(arg)
	return err == nil
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
