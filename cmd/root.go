/*
Copyright © 2019 Matt Muldowney <matt.muldowney@gmail.com>

*/

// Package cmd implements the chromatic command line.
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mmuldo/chromatic/palette"
	"github.com/mmuldo/chromatic/theme"
)

var (
	cfgFile string
	verbose bool

	// out and errOut are swapped out in tests.
	out    io.Writer = os.Stdout
	errOut io.Writer = os.Stderr

	logger = slog.New(slog.NewTextHandler(io.Discard, nil))
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "chromatic",
	Short: "Color conversions, palettes and desktop themes",
	Long: `chromatic converts, compares and blends colors, generates palettes of
distinguishable colors and turns images into desktop themes.

Colors are given as hex (#rgb or #rrggbb) or as SVG color names.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if e := initConfig(); e != nil {
			return e
		}
		setupLogging()
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if e := rootCmd.Execute(); e != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.chromatic.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output to stderr")
	rootCmd.PersistentFlags().StringP("format", "f", "text", "output format: text, json, yaml or toml")
	rootCmd.PersistentFlags().Int64("seed", 0, "random seed, 0 picks one")
	rootCmd.PersistentFlags().String("themes-dir", "", "theme directory (default is $HOME/.config/chromatic/themes)")
	rootCmd.PersistentFlags().String("templates-dir", "", "template directory (default is $HOME/.config/chromatic/templates)")

	viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
	viper.BindPFlag("seed", rootCmd.PersistentFlags().Lookup("seed"))
	viper.BindPFlag("themes_dir", rootCmd.PersistentFlags().Lookup("themes-dir"))
	viper.BindPFlag("templates_dir", rootCmd.PersistentFlags().Lookup("templates-dir"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, e := homedir.Dir()
		if e != nil {
			return e
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".chromatic")
	}

	viper.SetEnvPrefix("chromatic")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if e := viper.ReadInConfig(); e != nil {
		if _, ok := e.(viper.ConfigFileNotFoundError); ok && cfgFile == "" {
			return nil
		}
		return fmt.Errorf("reading config: %w", e)
	}
	return nil
}

func setupLogging() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: level}))
	palette.SetLogger(logger)
	logger.Debug("configured", "config", viper.ConfigFileUsed())
}

func outputFormat() (string, error) {
	f := strings.ToLower(viper.GetString("format"))
	if f == "" || f == "text" {
		return "text", nil
	}
	tf, e := theme.ParseFormat(f)
	return string(tf), e
}

func themesDir() (string, error) {
	return configDir("themes_dir", "themes")
}

func templatesDir() (string, error) {
	return configDir("templates_dir", "templates")
}

// configDir returns the directory stored under key, falling back to
// $HOME/.config/chromatic/<fallback>. A leading ~ is expanded.
func configDir(key, fallback string) (string, error) {
	if d := viper.GetString(key); d != "" {
		return homedir.Expand(d)
	}
	home, e := homedir.Dir()
	if e != nil {
		return "", e
	}
	return filepath.Join(home, ".config", "chromatic", fallback), nil
}

func generator() (*palette.Generator, error) {
	if seed := viper.GetInt64("seed"); seed != 0 {
		return palette.NewGenerator(palette.WithSeed(seed))
	}
	return palette.NewGenerator()
}
