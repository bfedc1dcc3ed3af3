package cmd

import (
	"fmt"
	"os/exec"
	"runtime"
	"strconv"

	"github.com/spf13/cobra"
)

var openCmd = &cobra.Command{
	Use:   "open [number]",
	Short: "Open a comic in the browser",
	Long:  "Open the comic page (or its explainxkcd page) in the default browser; no argument means the last viewed one",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		explain, _ := cmd.Flags().GetBool("explain")
		printOnly, _ := cmd.Flags().GetBool("print")

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

		url := d.nav.ViewerURL(number)
		if explain {
			url = d.nav.ExplainURL(number)
		}

		fmt.Println(url)
		if printOnly {
			return
		}
		if err := openInBrowser(url); err != nil {
			cobra.CheckErr(err)
		}
	},
}

func openInBrowser(url string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", url).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	default:
		return exec.Command("xdg-open", url).Start()
	}
}

func init() {
	openCmd.Flags().BoolP("explain", "e", false, "Open the explainxkcd page instead")
	openCmd.Flags().BoolP("print", "p", false, "Only print the URL, don't launch a browser")
	rootCmd.AddCommand(openCmd)
}
