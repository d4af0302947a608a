package cmd

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/pocketlog/internal/model"
	"github.com/manav03panchal/pocketlog/internal/output"
)

// statsApps lists the sections stats can show, by store key.
var statsApps = []string{model.KeyTasks, model.KeyManicures, model.KeyWardrobe, model.KeyWords, model.KeyIdeas}

// statsCmd represents the stats command.
var statsCmd = &cobra.Command{
	Use:     "stats [APP...]",
	Aliases: []string{"stat", "overview"},
	Short:   "Show statistics for every app",
	Long: `Show counts, breakdowns and weekday charts. Name one or more apps to
limit the output.

Apps: tasks, manicures, wardrobe, words, ideas

Examples:
  pocketlog stats
  pocketlog stats tasks words
  pocketlog stats manicures --format json`,
	ValidArgs: statsApps,
	Args:      cobra.OnlyValidArgs,
	RunE:      runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	for _, a := range args {
		if !slices.Contains(statsApps, a) {
			return fmt.Errorf("unknown app %q (use one of %v)", a, statsApps)
		}
	}
	want := func(key string) bool {
		return len(args) == 0 || slices.Contains(args, key)
	}

	var resp output.StatsResponse
	if want(model.KeyTasks) {
		s := ctx.Tasks.Stats(ctx.Now())
		resp.Tasks = &s
	}
	if want(model.KeyManicures) {
		s := ctx.Manicures.Stats()
		resp.Manicures = &s
	}
	if want(model.KeyWardrobe) {
		s := ctx.Wardrobe.Stats()
		resp.Wardrobe = &s
	}
	if want(model.KeyWords) {
		s := ctx.Words.Stats()
		resp.Words = &s
	}
	if want(model.KeyIdeas) {
		s := ctx.Ideas.Stats()
		resp.Ideas = &s
	}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(resp)
	}
	ctx.CLIFormatter().PrintStats(resp)
	return nil
}
