package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show reading history",
	Long:  "Display recently viewed comics, newest first",
	Run: func(cmd *cobra.Command, args []string) {
		limit, _ := cmd.Flags().GetInt("limit")

		d, err := buildDeps()
		if err != nil {
			cobra.CheckErr(err)
		}
		defer d.Close()

		views, err := d.library.History(limit)
		if err != nil {
			cobra.CheckErr(err)
		}

		if len(views) == 0 {
			fmt.Println("No reading history yet.")
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
			Headers("#", "Title", "Viewed")

		for _, view := range views {
			t.Row(
				fmt.Sprintf("%d", view.Number),
				truncateString(view.Title, 48),
				view.ViewedAt.Format("2006-01-02 15:04"),
			)
		}

		fmt.Println(t)
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Maximum rows to show (0 = all)")
	rootCmd.AddCommand(historyCmd)
}
