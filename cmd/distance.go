package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mmuldo/chromatic/colorful"
	"github.com/mmuldo/chromatic/theme"
)

type metric struct {
	name string
	f    func(c1, c2 colorful.Color) float64
}

var metrics = []metric{
	{"rgb", colorful.Color.DistanceRgb},
	{"linrgb", colorful.Color.DistanceLinearRgb},
	{"riemersma", colorful.Color.DistanceRiemersma},
	{"cie76", colorful.Color.DistanceCIE76},
	{"luv", colorful.Color.DistanceLuv},
	{"hpluv", colorful.Color.DistanceHPLuv},
	{"cie94", colorful.Color.DistanceCIE94},
	{"ciede2000", colorful.Color.DistanceCIEDE2000},
}

// distanceCmd represents the distance command
var distanceCmd = &cobra.Command{
	Use:   "distance <color> <color>",
	Short: "Compares two colors under every supported metric",
	Long: `Compares two colors under every supported metric.

CIE94 is not symmetric: the first color is the reference.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, e := outputFormat()
		if e != nil {
			return e
		}

		cs, e := parseColors(args)
		if e != nil {
			return e
		}

		if format != "text" {
			m := make(map[string]float64, len(metrics))
			for _, mt := range metrics {
				m[mt.name] = mt.f(cs[0], cs[1])
			}
			return theme.Encode(out, m, theme.Format(format))
		}

		tw := tabwriter.NewWriter(out, 0, 8, 2, ' ', 0)
		for _, mt := range metrics {
			fmt.Fprintf(tw, "%s\t%.6f\n", mt.name, mt.f(cs[0], cs[1]))
		}
		return tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(distanceCmd)
}
