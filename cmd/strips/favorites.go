package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

var favoritesCmd = &cobra.Command{
	Use:   "favorites",
	Short: "List starred comics",
	Run: func(cmd *cobra.Command, args []string) {
		d, err := buildDeps()
		if err != nil {
			cobra.CheckErr(err)
		}
		defer d.Close()

		favorites, err := d.library.Favorites()
		if err != nil {
			cobra.CheckErr(err)
		}

		if len(favorites) == 0 {
			fmt.Println("No favorites yet. Use 'strips star' to add one.")
			return
		}

		var (
			purple = lipgloss.Color("99")

			headerStyle = lipgloss.NewStyle().Foreground(purple).Bold(true).Align(lipgloss.Center)
			cellStyle   = lipgloss.NewStyle().Padding(0, 1)
		)

		t := table.New().
			Border(lipgloss.HiddenBorder()).
			BorderStyle(lipgloss.NewStyle().Foreground(purple)).
			StyleFunc(func(row, col int) lipgloss.Style {
				switch {
				case row == table.HeaderRow:
					return headerStyle
				default:
					return cellStyle
				}
			}).
			Headers("#", "Title", "Starred")

		for _, f := range favorites {
			t.Row(
				fmt.Sprintf("%d", f.Number),
				truncateString(f.Title, 48),
				f.StarredAt.Format("2006-01-02"),
			)
		}

		fmt.Println(t)
	},
}

func init() {
	rootCmd.AddCommand(favoritesCmd)
}
