package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/pocketlog/internal/model"
	"github.com/manav03panchal/pocketlog/internal/output"
	"github.com/manav03panchal/pocketlog/internal/validate"
)

// wardrobeCmd represents the wardrobe command.
var wardrobeCmd = &cobra.Command{
	Use:     "wardrobe",
	Aliases: []string{"clothes", "w"},
	Short:   "Keep a wardrobe inventory",
	Long: `Track what you wear, what is packed away and what you want to buy.
Without a subcommand every item is listed.

Examples:
  pocketlog wardrobe add "Linen shirt" --category tops --season summer
  pocketlog wardrobe add "Rain boots" --status buy --price 60
  pocketlog wardrobe status 9c1e store
  pocketlog wardrobe list --status buy
  pocketlog wardrobe shopping`,
	RunE: runWardrobeList,
}

// Wardrobe subcommand flags.
var (
	wardrobeFlagCategory string
	wardrobeFlagStatus   string
	wardrobeFlagSeason   string
	wardrobeFlagColor    string
	wardrobeFlagPrice    float64
	wardrobeFlagNote     string

	wardrobeListFlagSearch   string
	wardrobeListFlagCategory string
	wardrobeListFlagStatus   string
)

// wardrobeAddCmd adds an item.
var wardrobeAddCmd = &cobra.Command{
	Use:   "add NAME...",
	Short: "Add a wardrobe item",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runWardrobeAdd,
}

// wardrobeListCmd lists items.
var wardrobeListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List wardrobe items",
	Args:    cobra.NoArgs,
	RunE:    runWardrobeList,
}

// wardrobeStatusCmd moves an item between statuses.
var wardrobeStatusCmd = &cobra.Command{
	Use:               "status ID STATUS",
	Aliases:           []string{"move", "mv"},
	Short:             "Change an item's status (in_use, store, buy)",
	Args:              cobra.ExactArgs(2),
	ValidArgsFunction: completeWardrobeStatusArgs,
	RunE:              runWardrobeStatus,
}

// wardrobeShoppingCmd shows the shopping list.
var wardrobeShoppingCmd = &cobra.Command{
	Use:     "shopping",
	Aliases: []string{"buy", "wishlist"},
	Short:   "Show items to buy and what they cost",
	Args:    cobra.NoArgs,
	RunE:    runWardrobeShopping,
}

// wardrobeDeleteCmd deletes items.
var wardrobeDeleteCmd = &cobra.Command{
	Use:               "delete ID...",
	Aliases:           []string{"rm"},
	Short:             "Delete wardrobe items",
	Args:              cobra.MinimumNArgs(1),
	ValidArgsFunction: completeWardrobeIDs,
	RunE:              runWardrobeDelete,
}

func init() {
	wardrobeAddCmd.Flags().StringVarP(&wardrobeFlagCategory, "category", "c", "", "Category (e.g. tops, shoes)")
	wardrobeAddCmd.Flags().StringVarP(&wardrobeFlagStatus, "status", "s", string(model.ItemInUse), "Status: in_use, store, buy")
	wardrobeAddCmd.Flags().StringVar(&wardrobeFlagSeason, "season", "", "Season")
	wardrobeAddCmd.Flags().StringVar(&wardrobeFlagColor, "color", "", "Color name or hex code")
	wardrobeAddCmd.Flags().Float64VarP(&wardrobeFlagPrice, "price", "p", 0, "Price")
	wardrobeAddCmd.Flags().StringVarP(&wardrobeFlagNote, "note", "n", "", "Note")
	wardrobeAddCmd.RegisterFlagCompletionFunc("status", completeValues(stringsOf(model.ItemStatuses)...))

	for _, c := range []*cobra.Command{wardrobeCmd, wardrobeListCmd} {
		c.Flags().StringVar(&wardrobeListFlagSearch, "search", "", "Search name, category, color and note")
		c.Flags().StringVarP(&wardrobeListFlagCategory, "category", "c", "", "Only this category")
		c.Flags().StringVarP(&wardrobeListFlagStatus, "status", "s", "", "Only this status")
		c.RegisterFlagCompletionFunc("status", completeValues(stringsOf(model.ItemStatuses)...))
	}

	wardrobeCmd.AddCommand(wardrobeAddCmd)
	wardrobeCmd.AddCommand(wardrobeListCmd)
	wardrobeCmd.AddCommand(wardrobeStatusCmd)
	wardrobeCmd.AddCommand(wardrobeShoppingCmd)
	wardrobeCmd.AddCommand(wardrobeDeleteCmd)
	rootCmd.AddCommand(wardrobeCmd)
}

func runWardrobeAdd(cmd *cobra.Command, args []string) error {
	name := validate.SanitizeTitle(strings.Join(args, " "))
	if err := validate.Title("name", name); err != nil {
		return err
	}
	category := validate.SanitizeLabel(wardrobeFlagCategory)
	if err := validate.Category("category", category); err != nil {
		return err
	}
	status, err := validate.ItemStatus(wardrobeFlagStatus)
	if err != nil {
		return err
	}
	season := validate.SanitizeLabel(wardrobeFlagSeason)
	if err := validate.Category("season", season); err != nil {
		return err
	}
	if err := validate.Color(wardrobeFlagColor); err != nil {
		return err
	}
	if err := validate.Price(wardrobeFlagPrice); err != nil {
		return err
	}
	note := validate.SanitizeNote(wardrobeFlagNote)
	if err := validate.Note(note); err != nil {
		return err
	}

	item := model.NewWardrobeItem(name, category, status)
	item.Season = season
	item.Color = wardrobeFlagColor
	item.Price = wardrobeFlagPrice
	item.Note = note

	err = ctx.Wardrobe.Add(item)
	if err := saved("add", ctx.Wardrobe.Key(), err); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintRecord("created", "wardrobe_item", item)
	}

	cli := ctx.CLIFormatter()
	cli.Success(fmt.Sprintf("Added %s (%s)", item.Name, item.Status.Label()))
	cli.Muted("  id " + item.ID)
	return nil
}

func runWardrobeList(cmd *cobra.Command, args []string) error {
	var status model.ItemStatus
	if wardrobeListFlagStatus != "" {
		var err error
		if status, err = validate.ItemStatus(wardrobeListFlagStatus); err != nil {
			return err
		}
	}

	items := ctx.Wardrobe.Search(wardrobeListFlagSearch, wardrobeListFlagCategory, status)

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintList("wardrobe", items, len(items))
	}

	cli := ctx.CLIFormatter()
	cli.Title(fmt.Sprintf("Wardrobe (%d)", len(items)))
	cli.PrintWardrobe(items)
	return nil
}

func runWardrobeStatus(cmd *cobra.Command, args []string) error {
	item, err := ctx.Wardrobe.Resolve(args[0])
	if err != nil {
		return err
	}
	status, err := validate.ItemStatus(args[1])
	if err != nil {
		return err
	}

	_, err = ctx.Wardrobe.ChangeStatus(item.ID, status)
	if err := saved("status", ctx.Wardrobe.Key(), err); err != nil {
		return err
	}
	item, _ = ctx.Wardrobe.Get(item.ID)

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintRecord("updated", "wardrobe_item", item)
	}
	ctx.CLIFormatter().Success(fmt.Sprintf("%s is now %s", item.Name, strings.ToLower(item.Status.Label())))
	return nil
}

func runWardrobeShopping(cmd *cobra.Command, args []string) error {
	items, total := ctx.Wardrobe.ShoppingList()

	if ctx.IsJSON() {
		return ctx.Formatter.JSON(struct {
			output.ListResponse
			Total float64 `json:"total"`
		}{
			ListResponse: output.ListResponse{Kind: "wardrobe", Count: len(items), Items: items},
			Total:        total,
		})
	}

	cli := ctx.CLIFormatter()
	cli.Title(fmt.Sprintf("Shopping list (%d)", len(items)))
	cli.PrintWardrobe(items)
	if total > 0 {
		cli.Println()
		cli.PrintKeyValue("Total", output.FormatMoney(total))
	}
	return nil
}

func runWardrobeDelete(cmd *cobra.Command, args []string) error {
	ids := make([]string, 0, len(args))
	for _, arg := range args {
		item, err := ctx.Wardrobe.Resolve(arg)
		if err != nil {
			return err
		}
		ids = append(ids, item.ID)
	}

	err := ctx.Wardrobe.DeleteMany(ids...)
	if err := saved("delete", ctx.Wardrobe.Key(), err); err != nil {
		return err
	}
	return printDeleted("wardrobe", ids, fmt.Sprintf("%d item(s)", len(ids)))
}
