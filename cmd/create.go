package cmd

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mmuldo/chromatic/colorful"
	"github.com/mmuldo/chromatic/image"
	"github.com/mmuldo/chromatic/theme"
)

var name string

// createCmd represents the create command
var createCmd = &cobra.Command{
	Use:   "create <image>",
	Short: "Creates a new theme from image",
	Long: `Creates a new theme from image.

The image is reduced to its most prevalent colors, which become color0 to
colorN of the theme, darks first. The theme is written to themes_dir under
--name, or under the image's name. The name's extension picks the format.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		img, e := image.Load(args[0])
		if e != nil {
			return e
		}

		ccl, e := image.Extract(img, viper.GetInt("create.colors"))
		if e != nil {
			return e
		}
		logger.Debug("extracted colors", "image", args[0], "colors", len(ccl))

		swatches := make([]theme.Swatch, len(ccl))
		for i, cc := range ccl {
			swatches[i] = theme.Swatch{Color: colorful.HexColor(cc.Color), Count: cc.Count}
		}

		p, e := theme.Delegate(swatches)
		if e != nil {
			return e
		}

		t, e := theme.Create(p, nil)
		if e != nil {
			return e
		}

		dir, e := themesDir()
		if e != nil {
			return e
		}

		n := name
		if n == "" {
			base := filepath.Base(args[0])
			n = strings.TrimSuffix(base, filepath.Ext(base))
		}

		path := filepath.Join(dir, n)
		if e := theme.WriteFile(path, t); e != nil {
			return e
		}
		logger.Info("created theme", "path", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(createCmd)

	createCmd.Flags().StringVarP(&name, "name", "n", "", "theme name (default is the image name)")
	createCmd.Flags().IntP("colors", "c", 16, "number of colors in the theme")

	viper.BindPFlag("create.colors", createCmd.Flags().Lookup("colors"))
}
