package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/pocketlog/internal/config"
	"github.com/manav03panchal/pocketlog/internal/output"
)

// configCmd represents the config command.
var configCmd = &cobra.Command{
	Use:     "config",
	Aliases: []string{"cfg", "settings"},
	Short:   "Manage application configuration",
	Long: `View and modify the config file. Environment variables (POCKETLOG_BACKEND,
POCKETLOG_DATABASE, POCKETLOG_LOG_LEVEL, POCKETLOG_LOG_JSON, POCKETLOG_FORMAT,
NO_COLOR) and flags override the file when commands run.

Examples:
  pocketlog config get
  pocketlog config get storage.backend
  pocketlog config set storage.backend sqlite
  pocketlog config set storage.path :memory:
  pocketlog config path`,
}

// configGetCmd gets configuration values.
var configGetCmd = &cobra.Command{
	Use:   "get [KEY]",
	Short: "Get configuration value",
	Long: `Get one configuration value, or show every value from the config file.

Keys:
  storage.backend  badger, sqlite or memory
  storage.path     database location (":memory:" for no persistence)
  log.level        debug, info, warn or error
  log.json         true or false
  output.format    cli or json
  output.color     auto, always or never`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completeConfigKeys,
	RunE:              runConfigGet,
}

// configSetCmd sets configuration values.
var configSetCmd = &cobra.Command{
	Use:               "set KEY VALUE",
	Short:             "Set configuration value",
	Args:              cobra.ExactArgs(2),
	ValidArgsFunction: completeConfigKeys,
	RunE:              runConfigSet,
}

// configPathCmd prints the config file location.
var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), configPath())
	},
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

// configPath returns the --config flag or the default location.
func configPath() string {
	if flagConfig != "" {
		return flagConfig
	}
	return config.DefaultPath()
}

// configFormatter builds a formatter from flags alone; config commands
// run without opening storage.
func configFormatter(cmd *cobra.Command) *output.Formatter {
	f := output.NewFormatter()
	f.Writer = cmd.OutOrStdout()
	f.Format = output.Format(flagFormat)
	f.ColorMode = output.ColorMode(flagColor)
	return f
}

// runConfigGet handles the config get command.
func runConfigGet(cmd *cobra.Command, args []string) error {
	cfg, err := config.ReadFile(configPath())
	if err != nil {
		return err
	}
	f := configFormatter(cmd)

	if len(args) == 1 {
		value, err := cfg.Get(args[0])
		if err != nil {
			return err
		}
		if f.IsJSON() {
			return f.JSON(map[string]string{"key": args[0], "value": value})
		}
		f.Println(value)
		return nil
	}

	if f.IsJSON() {
		values := make(map[string]string, len(config.Keys))
		for _, key := range config.Keys {
			values[key], _ = cfg.Get(key)
		}
		return f.JSON(values)
	}

	cli := output.NewCLIFormatter(f)
	cli.Title("Configuration (" + configPath() + ")")
	for _, key := range config.Keys {
		value, _ := cfg.Get(key)
		cli.PrintKeyValue(key, value)
	}
	return nil
}

// runConfigSet handles the config set command.
func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	path := configPath()
	cfg, err := config.ReadFile(path)
	if err != nil {
		return err
	}
	if err := cfg.Set(key, value); err != nil {
		return err
	}
	if err := cfg.WriteFile(path); err != nil {
		return err
	}

	f := configFormatter(cmd)
	if f.IsJSON() {
		return f.JSON(map[string]string{
			"status": "updated",
			"key":    key,
			"value":  value,
		})
	}

	output.NewCLIFormatter(f).Success("Updated " + key + " = " + value)
	return nil
}
