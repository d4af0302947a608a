package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/pocketlog/internal/runtime"
)

// Import command flags.
var (
	importFlagDryRun bool
	importFlagForce  bool
)

// importCmd represents the import command.
var importCmd = &cobra.Command{
	Use:     "import FILE",
	Aliases: []string{"restore"},
	Short:   "Import records from a backup",
	Long: `Import a JSON backup written by 'pocketlog export'. Records whose id is
already present are skipped unless --force is given.

Examples:
  pocketlog import backup.json
  pocketlog import backup.json --dry-run
  pocketlog import backup.json --force`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().BoolVar(&importFlagDryRun, "dry-run", false, "Preview import without making changes")
	importCmd.Flags().BoolVar(&importFlagForce, "force", false, "Overwrite existing records on conflicts")

	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	filename := args[0]

	// Read file
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	var backup runtime.Backup
	if err := json.Unmarshal(data, &backup); err != nil {
		return fmt.Errorf("failed to parse backup: %w", err)
	}

	res, err := ctx.Import(&backup, importFlagForce, importFlagDryRun)
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(res)
	}

	// Print summary
	cli := ctx.CLIFormatter()
	if importFlagDryRun {
		cli.Title("Dry Run - Import Preview")
	} else {
		cli.Success("Import complete")
	}
	duplicates, rejected := 0, 0
	for _, key := range statsApps {
		c := res.Counts[key]
		cli.Printf("  %-10s added %d, updated %d\n", key+":", c.Added, c.Updated)
		duplicates += c.Duplicates
		rejected += c.Rejected
	}
	if duplicates > 0 {
		cli.Printf("  Skipped (duplicates): %d\n", duplicates)
	}
	if rejected > 0 {
		cli.Warning(fmt.Sprintf("Skipped %d empty entries", rejected))
	}

	return nil
}
