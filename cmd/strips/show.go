package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ebenson/strips/pkg/data"
)

var showCmd = &cobra.Command{
	Use:   "show [number or url]",
	Short: "Show one comic",
	Long:  "Fetch (or reuse from cache) a comic by number or xkcd URL; no argument means the current latest",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		d, err := buildDeps()
		if err != nil {
			cobra.CheckErr(err)
		}
		defer d.Close()

		var comic *data.Comic
		switch {
		case len(args) == 0:
			comic, err = d.nav.Get(0)
		case isNumber(args[0]):
			number, _ := strconv.Atoi(args[0])
			comic, err = d.nav.Get(number)
		default:
			comic, err = d.nav.FromURL(args[0])
		}
		if err != nil {
			cobra.CheckErr(err)
		}

		printComic(comic)
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
