package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ebenson/strips/pkg/data"
)

var starCmd = &cobra.Command{
	Use:   "star [number]",
	Short: "Star a comic",
	Long:  "Add a comic to your favorites; no argument means the last viewed one",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		d, err := buildDeps()
		if err != nil {
			cobra.CheckErr(err)
		}
		defer d.Close()

		comic, err := resolveArg(d, args)
		if err != nil {
			cobra.CheckErr(err)
		}

		if err := d.library.Star(comic); err != nil {
			cobra.CheckErr(err)
		}
		fmt.Printf("★ Starred #%d: %s\n", comic.Number, comic.Title)
	},
}

var unstarCmd = &cobra.Command{
	Use:   "unstar [number]",
	Short: "Unstar a comic",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		d, err := buildDeps()
		if err != nil {
			cobra.CheckErr(err)
		}
		defer d.Close()

		var number int
		if len(args) == 1 {
			number, err = strconv.Atoi(args[0])
			if err != nil {
				cobra.CheckErr(fmt.Errorf("not a comic number: %s", args[0]))
			}
		} else {
			comic, err := d.nav.LastViewed()
			if err != nil {
				cobra.CheckErr(err)
			}
			number = comic.Number
		}

		if err := d.library.Unstar(number); err != nil {
			cobra.CheckErr(err)
		}
		fmt.Printf("Unstarred #%d\n", number)
	},
}

// resolveArg turns an optional number argument into a comic, defaulting to
// the last viewed one.
func resolveArg(d *deps, args []string) (*data.Comic, error) {
	if len(args) == 1 {
		number, convErr := strconv.Atoi(args[0])
		if convErr != nil {
			return nil, fmt.Errorf("not a comic number: %s", args[0])
		}
		return d.nav.Get(number)
	}
	return d.nav.LastViewed()
}

func init() {
	rootCmd.AddCommand(starCmd)
	rootCmd.AddCommand(unstarCmd)
}
