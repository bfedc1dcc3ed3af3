package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ebenson/strips/pkg/data"
	"github.com/ebenson/strips/pkg/integrations"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a range of comics to EPUB",
	Long:  "Compile cached comics into an EPUB; comics not yet cached are fetched first",
	Run: func(cmd *cobra.Command, args []string) {
		from, _ := cmd.Flags().GetInt("from")
		to, _ := cmd.Flags().GetInt("to")
		output, _ := cmd.Flags().GetString("output")

		if from < 1 || to < from {
			cobra.CheckErr(fmt.Errorf("invalid range %d-%d", from, to))
		}

		d, err := buildDeps()
		if err != nil {
			cobra.CheckErr(err)
		}
		defer d.Close()

		comics := make([]*data.Comic, 0, to-from+1)
		for number := from; number <= to; number++ {
			comic, err := d.nav.Get(number)
			if err != nil {
				cobra.CheckErr(fmt.Errorf("comic %d: %w", number, err))
			}
			comics = append(comics, comic)
			fmt.Printf("  #%d: %s\n", comic.Number, comic.Title)
		}

		exporter := integrations.NewEPubExporter(d.cfg.ExportDir)
		title := fmt.Sprintf("xkcd %d-%d", from, to)
		path, err := exporter.Export(title, comics, output)
		if err != nil {
			cobra.CheckErr(fmt.Errorf("export failed: %w", err))
		}

		fmt.Printf("\nEPUB created: %s\n", path)
	},
}

func init() {
	exportCmd.Flags().Int("from", 1, "First comic number")
	exportCmd.Flags().Int("to", 1, "Last comic number")
	exportCmd.Flags().StringP("output", "o", "", "Output file name (defaults to the title)")
	rootCmd.AddCommand(exportCmd)
}
