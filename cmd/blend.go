package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mmuldo/chromatic/colorful"
)

type blendFunc func(c1, c2 colorful.Color, t float64) colorful.Color

var blenders = map[string]blendFunc{
	"rgb":    colorful.Color.BlendRgb,
	"linrgb": colorful.Color.BlendLinearRgb,
	"hsv":    colorful.Color.BlendHsv,
	"lab":    colorful.Color.BlendLab,
	"luv":    colorful.Color.BlendLuv,
	"hcl":    colorful.Color.BlendHcl,
	"lchuv":  colorful.Color.BlendLuvLCh,
}

func blendSpaces() []string {
	names := make([]string, 0, len(blenders))
	for k := range blenders {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// blend returns steps colors going from c1 to c2, both included.
func blend(c1, c2 colorful.Color, space string, steps int) ([]colorful.Color, error) {
	f, ok := blenders[strings.ToLower(space)]
	if !ok {
		return nil, fmt.Errorf("'%s' is not one of %s", space, strings.Join(blendSpaces(), ", "))
	}
	if steps < 2 {
		return nil, fmt.Errorf("a blend needs at least 2 steps, got %d", steps)
	}

	cs := make([]colorful.Color, steps)
	for i := range cs {
		cs[i] = f(c1, c2, float64(i)/float64(steps-1)).Clamped()
	}
	return cs, nil
}

// blendCmd represents the blend command
var blendCmd = &cobra.Command{
	Use:   "blend <color> <color>",
	Short: "Prints a gradient between two colors",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, e := outputFormat()
		if e != nil {
			return e
		}

		cs, e := parseColors(args)
		if e != nil {
			return e
		}

		g, e := blend(cs[0], cs[1], viper.GetString("blend.space"), viper.GetInt("blend.steps"))
		if e != nil {
			return e
		}
		return writeColors(out, g, format)
	},
}

func init() {
	rootCmd.AddCommand(blendCmd)

	blendCmd.Flags().StringP("space", "s", "lab", "color space: "+strings.Join(blendSpaces(), ", "))
	blendCmd.Flags().IntP("steps", "n", 5, "number of colors, endpoints included")

	viper.BindPFlag("blend.space", blendCmd.Flags().Lookup("space"))
	viper.BindPFlag("blend.steps", blendCmd.Flags().Lookup("steps"))
}
