package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ebenson/strips/pkg/app"
)

var rootCmd = &cobra.Command{
	Use:   "strips",
	Short: "An xkcd reader for your terminal",
	Long:  "Fetch, cache and read xkcd comics with a TUI and CLI",
	Run: func(cmd *cobra.Command, args []string) {
		// Launch TUI by default
		d, err := buildDeps()
		if err != nil {
			cobra.CheckErr(err)
		}
		defer d.Close()

		a := app.NewApp(d.nav, d.store, d.library)
		if err := a.Run(); err != nil {
			cobra.CheckErr(err)
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
