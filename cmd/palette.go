package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mmuldo/chromatic/colorful"
	"github.com/mmuldo/chromatic/palette"
)

// paletteCmd represents the palette command
var paletteCmd = &cobra.Command{
	Use:   "palette [soft|warm|happy]",
	Short: "Generates a palette of distinguishable colors",
	Long: `Generates a palette of distinguishable colors.

soft palettes cover the whole gamut, warm palettes are dark and muted, and
happy palettes are light and saturated. The kind defaults to palette.kind
from the config file, or soft.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind := viper.GetString("palette.kind")
		if len(args) == 1 {
			kind = args[0]
		}

		format, e := outputFormat()
		if e != nil {
			return e
		}

		g, e := generator()
		if e != nil {
			return e
		}

		cs, e := makePalette(g, kind, viper.GetInt("palette.count"))
		if e != nil {
			return e
		}

		if i, j, d := palette.Closest(cs); i >= 0 {
			logger.Debug("closest pair", "first", cs[i].Hex(), "second", cs[j].Hex(), "distance", d)
		}

		if viper.GetBool("palette.sorted") {
			cs = palette.Sort(cs)
		}

		return writeColors(out, cs, format)
	},
}

func init() {
	rootCmd.AddCommand(paletteCmd)

	paletteCmd.Flags().IntP("count", "n", 8, "number of colors")
	paletteCmd.Flags().Int("iterations", 50, "k-means iterations")
	paletteCmd.Flags().Bool("many-samples", false, "sample the color space more densely")
	paletteCmd.Flags().Bool("fast", false, "spread hues evenly instead of clustering (warm and happy only)")
	paletteCmd.Flags().Bool("sorted", false, "order the colors so that neighbors look alike")

	viper.SetDefault("palette.kind", "soft")
	viper.BindPFlag("palette.count", paletteCmd.Flags().Lookup("count"))
	viper.BindPFlag("palette.iterations", paletteCmd.Flags().Lookup("iterations"))
	viper.BindPFlag("palette.many_samples", paletteCmd.Flags().Lookup("many-samples"))
	viper.BindPFlag("palette.fast", paletteCmd.Flags().Lookup("fast"))
	viper.BindPFlag("palette.sorted", paletteCmd.Flags().Lookup("sorted"))
}

func makePalette(g *palette.Generator, kind string, n int) ([]colorful.Color, error) {
	fast := viper.GetBool("palette.fast")

	switch kind {
	case "soft":
		if fast {
			return nil, fmt.Errorf("there is no fast soft palette")
		}
		return g.SoftPaletteEx(n, palette.Settings{
			Iterations:  viper.GetInt("palette.iterations"),
			ManySamples: viper.GetBool("palette.many_samples"),
		})
	case "warm":
		if fast {
			return g.FastWarmPalette(n), nil
		}
		return g.WarmPalette(n)
	case "happy":
		if fast {
			return g.FastHappyPalette(n), nil
		}
		return g.HappyPalette(n)
	}
	return nil, fmt.Errorf("'%s' is not a palette kind", kind)
}
