// Package cmd provides the CLI commands for pocketlog.
//
// This software is a derivative work based on Zeit (https://github.com/mrusme/zeit)
// Original work copyright (c) マリウス (mrusme)
// Modifications copyright (c) Manav Panchal
//
// Licensed under the SEGV License, Version 1.0
// See LICENSE file for full license text.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/pocketlog/internal/config"
	"github.com/manav03panchal/pocketlog/internal/errors"
	"github.com/manav03panchal/pocketlog/internal/logging"
	"github.com/manav03panchal/pocketlog/internal/output"
	"github.com/manav03panchal/pocketlog/internal/runtime"
	"github.com/manav03panchal/pocketlog/internal/storage"
)

// Version information (set at build time via ldflags).
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// Global flags.
var (
	flagFormat  string
	flagColor   string
	flagDebug   bool
	flagBackend string
	flagDB      string
	flagConfig  string
)

// ctx is the shared runtime context.
var ctx *runtime.Context

// cfg is the configuration the context was built from.
var cfg *config.RuntimeConfig

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "pocketlog",
	Short: "A pocket notebook for tasks, manicures, wardrobe, words and ideas",
	Long: `pocketlog keeps small personal records on this machine: a to-do list,
a manicure history, a wardrobe inventory, a vocabulary journal and a jar
of leisure ideas.

Examples:
  pocketlog task add "Buy milk" --category shopping --due tomorrow
  pocketlog task list
  pocketlog manicure add --color red --technique gel --price 30
  pocketlog wardrobe add "Linen shirt" --status buy --price 45
  pocketlog word add hola hello --lang es
  pocketlog idea random
  pocketlog stats`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if skipsRuntime(cmd) {
			return nil
		}

		var err error
		cfg, err = config.Load(flagConfig)
		if err != nil {
			return err
		}
		applyFlags(cmd, cfg)
		if err := cfg.Validate(); err != nil {
			return err
		}

		level, _ := logging.ParseLevel(cfg.Log.Level)
		logging.Init(logging.Config{
			Level:  level,
			JSON:   cfg.Log.JSON,
			Output: os.Stderr,
		})

		// Create runtime context
		ctx, err = runtime.New(runtime.OptionsFromConfig(cfg))
		if err != nil {
			return err
		}
		ctx.Formatter.Writer = cmd.OutOrStdout()

		for key, err := range ctx.LoadErrors() {
			logging.Warn("store started empty", logging.KeyStore, key, logging.KeyError, err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeContext()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: show the overview
		return runStats(cmd, args)
	},
}

// skipsRuntime reports commands that run without opening storage: help,
// version, completion script generation and the config editor (but not
// __complete, which needs records for dynamic completions).
func skipsRuntime(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "completion", "help", "version":
		return true
	}
	for c := cmd; c != nil; c = c.Parent() {
		if c == configCmd {
			return true
		}
	}
	return false
}

// applyFlags lays explicitly set global flags over the loaded configuration.
func applyFlags(cmd *cobra.Command, c *config.RuntimeConfig) {
	flags := cmd.Flags()
	if flags.Changed("format") {
		c.Output.Format = flagFormat
	}
	if flags.Changed("color") {
		c.Output.Color = flagColor
	}
	if flags.Changed("backend") {
		c.Storage.Backend = flagBackend
		if !flags.Changed("db") {
			c.Storage.Path = ""
		}
	}
	if flags.Changed("db") {
		c.Storage.Path = flagDB
	}
	if flagDebug {
		c.Log.Level = "debug"
	}
}

// closeContext releases storage. It is safe to call more than once.
func closeContext() error {
	if ctx == nil {
		return nil
	}
	err := ctx.Close()
	ctx = nil
	return err
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	err := rootCmd.Execute()
	// A failed RunE skips the post-run hook
	closeContext()
	if err != nil {
		Die(err)
	}
	return err
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&flagFormat, "format", "f", string(output.FormatCLI),
		"Output format: cli, json")
	rootCmd.PersistentFlags().StringVar(&flagColor, "color", string(output.ColorAuto),
		"Color output: auto, always, never")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false,
		"Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", string(storage.KindBadger),
		"Storage backend: badger, sqlite, memory")
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "",
		"Database path (\":memory:\" for a throwaway session)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "",
		"Config file (default "+config.DefaultPath()+")")

	rootCmd.AddCommand(versionCmd)
}

// versionCmd shows version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("pocketlog %s\n", Version)
		cmd.Printf("  commit: %s\n", Commit)
		cmd.Printf("  built: %s\n", BuildTime)
		cmd.Println("")
		cmd.Println("Based on Zeit (https://github.com/mrusme/zeit)")
		cmd.Println("Licensed under SEGV License v1.0")
	},
}

// Die prints an error and exits.
func Die(err error) {
	if cfg != nil && output.Format(cfg.Output.Format) == output.FormatJSON {
		output.NewJSONFormatter(output.NewFormatter()).PrintError("error", err.Error(), "", errors.GetSuggestion(err))
	} else {
		os.Stderr.WriteString("Error: " + errors.FormatError(err) + "\n")
	}
	os.Exit(1)
}
