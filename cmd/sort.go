package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mmuldo/chromatic/palette"
)

// sortCmd represents the sort command
var sortCmd = &cobra.Command{
	Use:   "sort <color>...",
	Short: "Orders colors so that neighbors look alike",
	Long: `Orders colors so that neighbors look alike, starting from the darkest.

The colors are connected by a minimum spanning tree over their CIEDE2000
distances, which is then walked depth first.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, e := outputFormat()
		if e != nil {
			return e
		}

		cs, e := parseColors(args)
		if e != nil {
			return e
		}

		return writeColors(out, palette.Sort(cs), format)
	},
}

func init() {
	rootCmd.AddCommand(sortCmd)
}
