package cmd

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/pocketlog/internal/model"
	"github.com/manav03panchal/pocketlog/internal/output"
)

// Export command flags.
var (
	exportFlagCSV    string
	exportFlagOutput string
)

// exportCmd represents the export command.
var exportCmd = &cobra.Command{
	Use:     "export",
	Aliases: []string{"backup", "dump"},
	Short:   "Export records",
	Long: `Write a JSON backup of every collection, or one collection as CSV.
Backups can be read back with 'pocketlog import'.

Examples:
  pocketlog export -o backup.json
  pocketlog export --csv tasks -o tasks.csv
  pocketlog export --csv manicures`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportFlagCSV, "csv", "", "Export one collection as CSV: "+fmt.Sprint(statsApps))
	exportCmd.Flags().StringVarP(&exportFlagOutput, "output", "o", "", "Output file (stdout if omitted)")
	exportCmd.RegisterFlagCompletionFunc("csv", completeValues(statsApps...))

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	// Determine output destination
	writer := cmd.OutOrStdout()
	if exportFlagOutput != "" {
		f, err := os.Create(exportFlagOutput)
		if err != nil {
			return err
		}
		defer f.Close()
		writer = f
	}

	if exportFlagCSV != "" {
		header, rows, err := csvRows(exportFlagCSV)
		if err != nil {
			return err
		}
		if err := writeCSV(writer, header, rows); err != nil {
			return err
		}
		if exportFlagOutput != "" && !ctx.IsJSON() {
			ctx.CLIFormatter().Success(fmt.Sprintf("Exported %d %s to %s", len(rows), exportFlagCSV, exportFlagOutput))
		}
		return nil
	}

	backup := ctx.Backup()
	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(backup); err != nil {
		return err
	}

	// Print summary if writing to file
	if exportFlagOutput != "" && !ctx.IsJSON() {
		cli := ctx.CLIFormatter()
		cli.Success("Backup created: " + exportFlagOutput)
		cli.Printf("  Tasks: %d\n", len(backup.Tasks))
		cli.Printf("  Manicures: %d\n", len(backup.Manicures))
		cli.Printf("  Wardrobe: %d\n", len(backup.Wardrobe))
		cli.Printf("  Words: %d\n", len(backup.Words))
		cli.Printf("  Ideas: %d\n", len(backup.Ideas))
	}

	return nil
}

func writeCSV(w io.Writer, header []string, rows [][]string) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(header); err != nil {
		return err
	}
	if err := writer.WriteAll(rows); err != nil {
		return err
	}
	return writer.Error()
}

// csvRows flattens one collection for spreadsheet use.
func csvRows(kind string) ([]string, [][]string, error) {
	var rows [][]string
	switch kind {
	case model.KeyTasks:
		for _, t := range ctx.Tasks.All() {
			rows = append(rows, []string{
				t.ID, t.Title, t.Category, string(t.Priority), csvTime(t.DueDate),
				strconv.FormatBool(t.Completed), strconv.FormatBool(t.Archived), t.Note, csvDate(t.CreatedAt),
			})
		}
		return []string{"id", "title", "category", "priority", "due", "completed", "archived", "note", "created"}, rows, nil
	case model.KeyManicures:
		for _, m := range ctx.Manicures.History() {
			rows = append(rows, []string{
				m.ID, output.FormatDate(m.Date), m.Color, m.Shape, string(m.Technique), m.Salon,
				strconv.FormatFloat(m.Price, 'f', 2, 64), strconv.Itoa(m.Rating), m.Note,
			})
		}
		return []string{"id", "date", "color", "shape", "technique", "salon", "price", "rating", "note"}, rows, nil
	case model.KeyWardrobe:
		for _, w := range ctx.Wardrobe.All() {
			rows = append(rows, []string{
				w.ID, w.Name, w.Category, string(w.Status), w.Season, w.Color,
				strconv.FormatFloat(w.Price, 'f', 2, 64), w.Note,
			})
		}
		return []string{"id", "name", "category", "status", "season", "color", "price", "note"}, rows, nil
	case model.KeyWords:
		for _, w := range ctx.Words.All() {
			rows = append(rows, []string{
				w.ID, w.Term, w.Translation, w.Language, w.Example, strconv.FormatBool(w.Learned), csvDate(w.CreatedAt),
			})
		}
		return []string{"id", "term", "translation", "language", "example", "learned", "created"}, rows, nil
	case model.KeyIdeas:
		for _, i := range ctx.Ideas.All() {
			rows = append(rows, []string{
				i.ID, i.Title, i.Category, strconv.FormatBool(i.Favorite), strconv.FormatBool(i.Done), i.Note,
			})
		}
		return []string{"id", "title", "category", "favorite", "done", "note"}, rows, nil
	default:
		return nil, nil, fmt.Errorf("unknown collection %q (use one of %v)", kind, statsApps)
	}
}

func csvDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

func csvTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return output.FormatDate(*t)
}
