package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mmuldo/chromatic/colorful"
	"github.com/mmuldo/chromatic/theme"
)

// coordinates is one color expressed in a color space.
type coordinates struct {
	space  string
	values [3]float64
}

func vec(a, b, c float64) [3]float64 { return [3]float64{a, b, c} }

func coordinatesOf(c colorful.Color) []coordinates {
	var cs []coordinates
	add := func(space string, v [3]float64) {
		cs = append(cs, coordinates{space, v})
	}

	add("rgb", vec(c.Values()))
	add("linrgb", vec(c.LinearRgb()))
	add("hsv", vec(c.Hsv()))
	add("hsl", vec(c.Hsl()))
	add("xyz", vec(c.Xyz()))
	add("xyy", vec(c.Xyy()))
	add("lab", vec(c.Lab()))
	add("luv", vec(c.Luv()))
	add("hcl", vec(c.Hcl()))
	add("lchuv", vec(c.LuvLCh()))
	add("hsluv", vec(c.HSLuv()))
	add("hpluv", vec(c.HPLuv()))
	return cs
}

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert <color>",
	Short: "Shows a color in every supported color space",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, e := outputFormat()
		if e != nil {
			return e
		}

		c, e := parseColor(args[0])
		if e != nil {
			return e
		}

		if format != "text" {
			m := map[string]interface{}{"hex": c.Hex()}
			for _, co := range coordinatesOf(c) {
				m[co.space] = co.values[:]
			}
			return theme.Encode(out, m, theme.Format(format))
		}

		tw := tabwriter.NewWriter(out, 0, 8, 2, ' ', 0)
		fmt.Fprintf(tw, "hex\t%s\n", c.Hex())
		for _, co := range coordinatesOf(c) {
			fmt.Fprintf(tw, "%s\t%.4f\t%.4f\t%.4f\n", co.space, co.values[0], co.values[1], co.values[2])
		}
		return tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)
}
