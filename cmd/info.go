package cmd

import (
	"github.com/spf13/cobra"

	"github.com/manav03panchal/pocketlog/internal/output"
	"github.com/manav03panchal/pocketlog/internal/storage"
)

// infoCmd represents the info command.
var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show where and how records are stored",
	Long: `Show the storage backend, database path, config file and the size of
each stored collection.

Examples:
  pocketlog info
  pocketlog info --backend sqlite --format json`,
	Args: cobra.NoArgs,
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	keys, err := storage.Stats(ctx.Backend)
	if err != nil {
		return err
	}

	info := output.InfoResponse{
		Version:    Version,
		Backend:    string(ctx.Kind),
		Path:       ctx.Path,
		ConfigPath: configPath(),
		Keys:       keys,
		Counts:     ctx.Counts(),
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(info)
	}
	cli := ctx.CLIFormatter()
	cli.PrintInfo(info)
	for key, err := range ctx.LoadErrors() {
		cli.Warning("Could not read " + key + ": " + err.Error())
	}
	return nil
}
