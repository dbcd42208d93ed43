/*
Copyright © 2019 Matt Muldowney <matt.muldowney@gmail.com>

*/
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mmuldo/chromatic/theme"
)

var (
	terminal string
	output   string
)

// switchCmd represents the switch command
var switchCmd = &cobra.Command{
	Use:   "switch <theme>",
	Short: "Renders a theme into a terminal's config",
	Long: `Renders a theme into a terminal's config.

The template templates_dir/<terminal> is rendered with the theme's variables
(color0, background, transparency, ...). The result goes to --output, or to
stdout when no output is given.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		setDefaults()
		if terminal == "" {
			return fmt.Errorf("no terminal given, use --terminal or set terminal in the config")
		}

		tdir, e := themesDir()
		if e != nil {
			return e
		}
		t, e := theme.ReadFile(filepath.Join(tdir, args[0]))
		if e != nil {
			return e
		}

		pdir, e := templatesDir()
		if e != nil {
			return e
		}
		o, e := theme.Render(filepath.Join(pdir, terminal), t)
		if e != nil {
			return e
		}

		if output == "" {
			_, e = fmt.Fprint(out, o)
			return e
		}
		return write(output, o)
	},
}

func init() {
	rootCmd.AddCommand(switchCmd)

	switchCmd.Flags().StringVarP(&terminal, "terminal", "t", "", "user terminal")
	switchCmd.Flags().StringVarP(&output, "output", "o", "", "file to write the config to")
}

func setDefaults() {
	if terminal == "" {
		terminal = viper.GetString("terminal")
	}
	if output == "" && terminal != "" {
		output = viper.GetString("outputs." + terminal)
	}
}

func write(path, s string) error {
	path, e := homedir.Expand(path)
	if e != nil {
		return e
	}
	if e := os.MkdirAll(filepath.Dir(path), 0755); e != nil {
		return e
	}
	return os.WriteFile(path, []byte(s), 0644)
}
