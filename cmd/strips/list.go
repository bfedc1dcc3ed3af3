package cmd

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/ebenson/strips/pkg/sources"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all cached comics",
	Long:  "Display every comic in the local cache in a formatted table",
	Run: func(cmd *cobra.Command, args []string) {
		d, err := buildDeps()
		if err != nil {
			cobra.CheckErr(err)
		}
		defer d.Close()

		numbers, err := d.store.Cached()
		if err != nil {
			cobra.CheckErr(err)
		}

		if len(numbers) == 0 {
			fmt.Println("Nothing cached yet. Use 'strips show' to fetch a comic.")
			return
		}

		starred := map[int]bool{}
		if favorites, err := d.library.Favorites(); err == nil {
			for _, f := range favorites {
				starred[f.Number] = true
			}
		}

		columns := []table.Column{
			{Title: "#", Width: 6},
			{Title: "Title", Width: 40},
			{Title: "Format", Width: 8},
			{Title: "Starred", Width: 8},
		}

		rows := []table.Row{}
		for _, number := range numbers {
			title := ""
			format := ""
			if raw, err := d.store.ReadJSON(number); err == nil {
				if comic, err := sources.ParseComic(raw); err == nil {
					title = comic.Title
					format = string(formatOf(comic.ImageURL))
				}
			}

			star := ""
			if starred[number] {
				star = "★"
			}
			rows = append(rows, table.Row{
				fmt.Sprintf("%d", number),
				truncateString(title, 38),
				format,
				star,
			})
		}

		t := table.New(
			table.WithColumns(columns),
			table.WithRows(rows),
			table.WithFocused(false),
			table.WithHeight(len(rows)),
		)

		s := table.DefaultStyles()
		s.Header = s.Header.
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			BorderBottom(true).
			Bold(true)
		s.Selected = s.Selected.
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Bold(false)
		t.SetStyles(s)

		fmt.Printf("\nCache (%d comics)\n\n", len(numbers))
		fmt.Println(t.View())
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
