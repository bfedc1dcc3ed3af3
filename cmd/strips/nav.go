package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ebenson/strips/pkg/data"
)

// The five pointer-driven navigation commands share one runner.
func runNav(resolve func(d *deps) (*data.Comic, error)) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		d, err := buildDeps()
		if err != nil {
			cobra.CheckErr(err)
		}
		defer d.Close()

		comic, err := resolve(d)
		if err != nil {
			cobra.CheckErr(err)
		}
		printComic(comic)
	}
}

var nextCmd = &cobra.Command{
	Use:   "next",
	Short: "Show the comic after the last viewed one",
	Run:   runNav(func(d *deps) (*data.Comic, error) { return d.nav.Next() }),
}

var prevCmd = &cobra.Command{
	Use:   "prev",
	Short: "Show the comic before the last viewed one",
	Run:   runNav(func(d *deps) (*data.Comic, error) { return d.nav.Prev() }),
}

var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Show a random comic",
	Run:   runNav(func(d *deps) (*data.Comic, error) { return d.nav.Random() }),
}

var latestCmd = &cobra.Command{
	Use:   "latest",
	Short: "Show the highest-numbered comic seen so far",
	Run:   runNav(func(d *deps) (*data.Comic, error) { return d.nav.LatestCached() }),
}

var lastCmd = &cobra.Command{
	Use:   "last",
	Short: "Show the last viewed comic again",
	Run:   runNav(func(d *deps) (*data.Comic, error) { return d.nav.LastViewed() }),
}

func init() {
	rootCmd.AddCommand(nextCmd)
	rootCmd.AddCommand(prevCmd)
	rootCmd.AddCommand(randomCmd)
	rootCmd.AddCommand(latestCmd)
	rootCmd.AddCommand(lastCmd)
}
