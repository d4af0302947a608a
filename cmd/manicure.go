package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/pocketlog/internal/model"
	"github.com/manav03panchal/pocketlog/internal/output"
	"github.com/manav03panchal/pocketlog/internal/validate"
)

// manicureCmd represents the manicure command.
var manicureCmd = &cobra.Command{
	Use:     "manicure",
	Aliases: []string{"manicures", "nails", "m"},
	Short:   "Keep a manicure history",
	Long: `Log manicure visits and see what you keep coming back to. Without a
subcommand the history is listed, newest first.

Examples:
  pocketlog manicure add --color red --technique gel --price 30 --rating 5
  pocketlog manicure add --date yesterday --color "#C21E56" --salon "Nail Bar"
  pocketlog manicure list --period "last month"
  pocketlog manicure stats`,
	RunE: runManicureList,
}

// Manicure subcommand flags.
var (
	manicureFlagDate      string
	manicureFlagColor     string
	manicureFlagShape     string
	manicureFlagTechnique string
	manicureFlagSalon     string
	manicureFlagPrice     float64
	manicureFlagRating    int
	manicureFlagNote      string

	manicureListFlagPeriod string
)

// manicureAddCmd logs a visit.
var manicureAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a manicure",
	Args:  cobra.NoArgs,
	RunE:  runManicureAdd,
}

// manicureListCmd lists the history.
var manicureListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "history"},
	Short:   "List manicures, newest first",
	Args:    cobra.NoArgs,
	RunE:    runManicureList,
}

// manicureStatsCmd shows statistics.
var manicureStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show manicure statistics",
	Args:  cobra.NoArgs,
	RunE:  runManicureStats,
}

// manicureDeleteCmd deletes entries.
var manicureDeleteCmd = &cobra.Command{
	Use:               "delete ID...",
	Aliases:           []string{"rm"},
	Short:             "Delete manicure entries",
	Args:              cobra.MinimumNArgs(1),
	ValidArgsFunction: completeManicureIDs,
	RunE:              runManicureDelete,
}

func init() {
	manicureAddCmd.Flags().StringVarP(&manicureFlagDate, "date", "d", "today", "Day of the visit")
	manicureAddCmd.Flags().StringVarP(&manicureFlagColor, "color", "c", "", "Color name or hex code")
	manicureAddCmd.Flags().StringVar(&manicureFlagShape, "shape", "", "Nail shape (e.g. almond, square)")
	manicureAddCmd.Flags().StringVarP(&manicureFlagTechnique, "technique", "t", "", "Technique: classic, gel, acrylic, polish, other")
	manicureAddCmd.Flags().StringVarP(&manicureFlagSalon, "salon", "s", "", "Salon or artist")
	manicureAddCmd.Flags().Float64VarP(&manicureFlagPrice, "price", "p", 0, "Price paid")
	manicureAddCmd.Flags().IntVarP(&manicureFlagRating, "rating", "r", 0, "Rating from 1 to 5")
	manicureAddCmd.Flags().StringVarP(&manicureFlagNote, "note", "n", "", "Note")
	manicureAddCmd.RegisterFlagCompletionFunc("technique", completeValues(stringsOf(model.Techniques)...))

	for _, c := range []*cobra.Command{manicureCmd, manicureListCmd} {
		c.Flags().StringVar(&manicureListFlagPeriod, "period", "all", "Only this period (e.g. this month, 2026-03)")
		c.RegisterFlagCompletionFunc("period", completePeriods)
	}

	manicureCmd.AddCommand(manicureAddCmd)
	manicureCmd.AddCommand(manicureListCmd)
	manicureCmd.AddCommand(manicureStatsCmd)
	manicureCmd.AddCommand(manicureDeleteCmd)
	rootCmd.AddCommand(manicureCmd)
}

func runManicureAdd(cmd *cobra.Command, args []string) error {
	date, err := parseDay("date", manicureFlagDate)
	if err != nil {
		return err
	}
	if err := validate.Color(manicureFlagColor); err != nil {
		return err
	}
	technique, err := validate.Technique(manicureFlagTechnique)
	if err != nil {
		return err
	}
	if err := validate.Price(manicureFlagPrice); err != nil {
		return err
	}
	if err := validate.Rating(manicureFlagRating); err != nil {
		return err
	}
	note := validate.SanitizeNote(manicureFlagNote)
	if err := validate.Note(note); err != nil {
		return err
	}

	m := model.NewManicure(date, validate.SanitizeTitle(manicureFlagColor), technique)
	m.Shape = validate.SanitizeLabel(manicureFlagShape)
	m.Salon = validate.SanitizeTitle(manicureFlagSalon)
	m.Price = manicureFlagPrice
	m.Rating = manicureFlagRating
	m.Note = note

	err = ctx.Manicures.Add(m)
	if err := saved("add", ctx.Manicures.Key(), err); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintRecord("created", "manicure", m)
	}

	cli := ctx.CLIFormatter()
	cli.Success(fmt.Sprintf("Logged %s manicure on %s", m.Technique, output.FormatDate(m.Date)))
	cli.Muted("  id " + m.ID)
	return nil
}

func runManicureList(cmd *cobra.Command, args []string) error {
	period, err := parsePeriod(manicureListFlagPeriod)
	if err != nil {
		return err
	}

	items := ctx.Manicures.History()
	if !period.IsAll() {
		items = ctx.Manicures.InRange(period.Start, period.End)
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintList("manicures", items, len(items))
	}

	cli := ctx.CLIFormatter()
	cli.Title(fmt.Sprintf("Manicures (%d)", len(items)))
	cli.PrintManicures(items)
	return nil
}

func runManicureStats(cmd *cobra.Command, args []string) error {
	stats := ctx.Manicures.Stats()
	resp := output.StatsResponse{Manicures: &stats}

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(resp)
	}
	ctx.CLIFormatter().PrintStats(resp)
	return nil
}

func runManicureDelete(cmd *cobra.Command, args []string) error {
	ids := make([]string, 0, len(args))
	for _, arg := range args {
		m, err := ctx.Manicures.Resolve(arg)
		if err != nil {
			return err
		}
		ids = append(ids, m.ID)
	}

	err := ctx.Manicures.DeleteMany(ids...)
	if err := saved("delete", ctx.Manicures.Key(), err); err != nil {
		return err
	}
	return printDeleted("manicures", ids, fmt.Sprintf("%d manicure(s)", len(ids)))
}
