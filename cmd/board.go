package cmd

import (
	"github.com/spf13/cobra"

	"github.com/manav03panchal/pocketlog/internal/tui"
)

// boardCmd represents the board command.
var boardCmd = &cobra.Command{
	Use:     "board",
	Aliases: []string{"tui", "b"},
	Short:   "Open the interactive task board",
	Long: `Open an interactive terminal board for the to-do list.

Keyboard Controls:
  ↑/↓ or j/k  - Move the cursor
  space or x  - Complete or reopen a task
  a           - Archive the task
  u           - Restore the task (archive view)
  D           - Delete the task
  P           - Delete everything in the archive (archive view)
  tab         - Switch between tasks and archive
  q           - Quit

Examples:
  pocketlog board
  pocketlog tui`,
	Args: cobra.NoArgs,
	RunE: runBoard,
}

func init() {
	rootCmd.AddCommand(boardCmd)
}

func runBoard(cmd *cobra.Command, args []string) error {
	// Run the TUI board
	return tui.Run(tui.BoardConfig{
		Tasks: ctx.Tasks,
		Now:   ctx.Now,
	})
}
