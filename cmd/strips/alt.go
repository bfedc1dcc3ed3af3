package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ebenson/strips/pkg/data"
)

var altCmd = &cobra.Command{
	Use:   "alt [number]",
	Short: "Print a comic's alt text",
	Long:  "Print only the hover text of a comic; no argument means the last viewed one",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		d, err := buildDeps()
		if err != nil {
			cobra.CheckErr(err)
		}
		defer d.Close()

		var comic *data.Comic
		if len(args) == 1 {
			number, convErr := strconv.Atoi(args[0])
			if convErr != nil {
				cobra.CheckErr(fmt.Errorf("not a comic number: %s", args[0]))
			}
			comic, err = d.nav.Get(number)
		} else {
			comic, err = d.nav.LastViewed()
		}
		if err != nil {
			cobra.CheckErr(err)
		}

		fmt.Println(comic.AltText)
	},
}

func init() {
	rootCmd.AddCommand(altCmd)
}
