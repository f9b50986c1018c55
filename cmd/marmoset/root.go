package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var version = "dev" // set via -ldflags at build time

var (
	flagDebug   bool
	flagEngine  string
	flagNoColor bool
	flagQuiet   bool
	flagConfig  string

	cfgPrompt             string
	cfgContinuationPrompt string
)

var rootCmd = &cobra.Command{
	Use:   "marmoset [script.mmt]",
	Short: "Marmoset language REPL and script runner",
	Long: `Marmoset is a small expression language with first-class functions,
arrays and hashes. With no arguments it starts an interactive REPL;
given a script file it executes the file and exits.`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
}

func init() {
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(); err != nil {
			return err
		}
		if len(args) > 0 {
			return runFile(args[0])
		}
		if stat, err := os.Stdin.Stat(); err == nil && stat.Mode()&os.ModeCharDevice == 0 {
			return runStdin()
		}
		return runREPL()
	}

	rootCmd.Version = version
	rootCmd.SetVersionTemplate(fmt.Sprintf("marmoset %s\n", version))

	rootCmd.Flags().BoolVarP(&flagDebug, "debug", "d", false, "Enable debug logging")
	rootCmd.Flags().StringVar(&flagEngine, "engine", "marmoset", "Evaluation engine (marmoset, js)")
	rootCmd.Flags().BoolVar(&flagNoColor, "no-color", false, "Disable ANSI color output")
	rootCmd.Flags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress the startup banner")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Config file (default ~/.marmoset/config.yaml)")
}

// loadConfig merges the config file under flags: an unset flag takes its
// value from ~/.marmoset/config.yaml when present, and a missing file is
// not an error.
func loadConfig() error {
	v := viper.New()
	if flagConfig != "" {
		v.SetConfigFile(flagConfig)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(filepath.Join(home, ".marmoset"))
		}
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetDefault("engine", "marmoset")
	v.SetDefault("debug", false)
	v.SetDefault("no_color", false)
	v.SetDefault("quiet", false)
	v.SetDefault("prompt", ">> ")
	v.SetDefault("continuation_prompt", ".. ")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if !os.IsNotExist(err) {
				return fmt.Errorf("reading config: %w", err)
			}
		}
	}

	if !rootCmd.Flags().Changed("engine") {
		flagEngine = v.GetString("engine")
	}
	if !rootCmd.Flags().Changed("debug") {
		flagDebug = v.GetBool("debug")
	}
	if !rootCmd.Flags().Changed("no-color") {
		flagNoColor = v.GetBool("no_color")
	}
	if !rootCmd.Flags().Changed("quiet") {
		flagQuiet = v.GetBool("quiet")
	}
	cfgPrompt = v.GetString("prompt")
	cfgContinuationPrompt = v.GetString("continuation_prompt")

	if flagEngine != "marmoset" && flagEngine != "js" {
		return fmt.Errorf("unknown engine %q (want marmoset or js)", flagEngine)
	}
	return nil
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
