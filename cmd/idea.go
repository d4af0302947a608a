package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/pocketlog/internal/model"
	"github.com/manav03panchal/pocketlog/internal/validate"
)

// ideaCmd represents the idea command.
var ideaCmd = &cobra.Command{
	Use:     "idea",
	Aliases: []string{"ideas", "i"},
	Short:   "Keep a jar of leisure ideas",
	Long: `Collect things to do on a free afternoon and let pocketlog pick one.
Without a subcommand every idea is listed, favorites first.

Examples:
  pocketlog idea add "Visit the botanical garden" --category outdoors
  pocketlog idea random
  pocketlog idea random --category outdoors
  pocketlog idea fav 51aa
  pocketlog idea done 51aa`,
	RunE: runIdeaList,
}

// Idea subcommand flags.
var (
	ideaFlagCategory string
	ideaFlagNote     string

	ideaListFlagCategory  string
	ideaListFlagFavorites bool

	ideaRandomFlagCategory string

	ideaDoneFlagUndo bool
)

// ideaAddCmd adds an idea.
var ideaAddCmd = &cobra.Command{
	Use:   "add TITLE...",
	Short: "Add an idea",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runIdeaAdd,
}

// ideaListCmd lists ideas.
var ideaListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List ideas, favorites first",
	Args:    cobra.NoArgs,
	RunE:    runIdeaList,
}

// ideaRandomCmd picks an idea.
var ideaRandomCmd = &cobra.Command{
	Use:     "random",
	Aliases: []string{"pick", "surprise"},
	Short:   "Pick a random idea that is not done yet",
	Args:    cobra.NoArgs,
	RunE:    runIdeaRandom,
}

// ideaFavCmd toggles the favorite mark.
var ideaFavCmd = &cobra.Command{
	Use:               "fav ID",
	Aliases:           []string{"favorite", "star"},
	Short:             "Mark an idea as favorite, or not",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeIdeaIDs,
	RunE:              runIdeaFav,
}

// ideaDoneCmd marks an idea done.
var ideaDoneCmd = &cobra.Command{
	Use:               "done ID",
	Short:             "Mark an idea done so it is not picked again",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeIdeaIDs,
	RunE:              runIdeaDone,
}

// ideaDeleteCmd deletes ideas.
var ideaDeleteCmd = &cobra.Command{
	Use:               "delete ID...",
	Aliases:           []string{"rm"},
	Short:             "Delete ideas",
	Args:              cobra.MinimumNArgs(1),
	ValidArgsFunction: completeIdeaIDs,
	RunE:              runIdeaDelete,
}

func init() {
	ideaAddCmd.Flags().StringVarP(&ideaFlagCategory, "category", "c", "", "Category")
	ideaAddCmd.Flags().StringVarP(&ideaFlagNote, "note", "n", "", "Note")
	ideaAddCmd.RegisterFlagCompletionFunc("category", completeIdeaCategories)

	for _, c := range []*cobra.Command{ideaCmd, ideaListCmd} {
		c.Flags().StringVarP(&ideaListFlagCategory, "category", "c", "", "Only this category")
		c.Flags().BoolVar(&ideaListFlagFavorites, "favorites", false, "Only favorites")
		c.RegisterFlagCompletionFunc("category", completeIdeaCategories)
	}

	ideaRandomCmd.Flags().StringVarP(&ideaRandomFlagCategory, "category", "c", "", "Pick within this category")
	ideaRandomCmd.RegisterFlagCompletionFunc("category", completeIdeaCategories)

	ideaDoneCmd.Flags().BoolVar(&ideaDoneFlagUndo, "undo", false, "Put the idea back in the jar")

	ideaCmd.AddCommand(ideaAddCmd)
	ideaCmd.AddCommand(ideaListCmd)
	ideaCmd.AddCommand(ideaRandomCmd)
	ideaCmd.AddCommand(ideaFavCmd)
	ideaCmd.AddCommand(ideaDoneCmd)
	ideaCmd.AddCommand(ideaDeleteCmd)
	rootCmd.AddCommand(ideaCmd)
}

func runIdeaAdd(cmd *cobra.Command, args []string) error {
	title := validate.SanitizeTitle(strings.Join(args, " "))
	if err := validate.Title("title", title); err != nil {
		return err
	}
	category := validate.SanitizeLabel(ideaFlagCategory)
	if err := validate.Category("category", category); err != nil {
		return err
	}
	note := validate.SanitizeNote(ideaFlagNote)
	if err := validate.Note(note); err != nil {
		return err
	}

	idea := model.NewIdea(title, category)
	idea.Note = note

	err := ctx.Ideas.Add(idea)
	if err := saved("add", ctx.Ideas.Key(), err); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintRecord("created", "idea", idea)
	}

	cli := ctx.CLIFormatter()
	cli.Success("Added idea " + idea.Title)
	cli.Muted("  id " + idea.ID)
	return nil
}

func runIdeaList(cmd *cobra.Command, args []string) error {
	ideas := ctx.Ideas.List(ideaListFlagCategory, ideaListFlagFavorites)

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintList("ideas", ideas, len(ideas))
	}

	cli := ctx.CLIFormatter()
	cli.Title(fmt.Sprintf("Ideas (%d)", len(ideas)))
	cli.PrintIdeas(ideas)
	return nil
}

func runIdeaRandom(cmd *cobra.Command, args []string) error {
	idea, err := ctx.Ideas.Random(ideaRandomFlagCategory)
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintRecord("picked", "idea", idea)
	}
	ctx.CLIFormatter().PrintIdea(idea)
	return nil
}

func runIdeaFav(cmd *cobra.Command, args []string) error {
	idea, err := ctx.Ideas.Resolve(args[0])
	if err != nil {
		return err
	}

	_, err = ctx.Ideas.ToggleFavorite(idea.ID)
	if err := saved("favorite", ctx.Ideas.Key(), err); err != nil {
		return err
	}
	idea, _ = ctx.Ideas.Get(idea.ID)

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintRecord("updated", "idea", idea)
	}

	cli := ctx.CLIFormatter()
	if idea.Favorite {
		cli.Success("♥ " + idea.Title)
	} else {
		cli.Success("Unfavorited " + idea.Title)
	}
	return nil
}

func runIdeaDone(cmd *cobra.Command, args []string) error {
	idea, err := ctx.Ideas.Resolve(args[0])
	if err != nil {
		return err
	}

	_, err = ctx.Ideas.MarkDone(idea.ID, !ideaDoneFlagUndo)
	if err := saved("done", ctx.Ideas.Key(), err); err != nil {
		return err
	}
	idea, _ = ctx.Ideas.Get(idea.ID)

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintRecord("updated", "idea", idea)
	}

	cli := ctx.CLIFormatter()
	if idea.Done {
		cli.Success("Done: " + idea.Title)
	} else {
		cli.Success(idea.Title + " is back in the jar")
	}
	return nil
}

func runIdeaDelete(cmd *cobra.Command, args []string) error {
	ids := make([]string, 0, len(args))
	for _, arg := range args {
		idea, err := ctx.Ideas.Resolve(arg)
		if err != nil {
			return err
		}
		ids = append(ids, idea.ID)
	}

	err := ctx.Ideas.DeleteMany(ids...)
	if err := saved("delete", ctx.Ideas.Key(), err); err != nil {
		return err
	}
	return printDeleted("ideas", ids, fmt.Sprintf("%d idea(s)", len(ids)))
}
