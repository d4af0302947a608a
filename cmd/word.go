package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/pocketlog/internal/model"
	"github.com/manav03panchal/pocketlog/internal/output"
	"github.com/manav03panchal/pocketlog/internal/validate"
)

// wordCmd represents the word command.
var wordCmd = &cobra.Command{
	Use:     "word",
	Aliases: []string{"words", "vocab"},
	Short:   "Keep a vocabulary journal",
	Long: `Collect new words with their translation and tick them off once
learned. Without a subcommand every word is listed, newest first.

Examples:
  pocketlog word add hola hello --lang es
  pocketlog word add "la mariposa" butterfly --lang es --example "Mira la mariposa"
  pocketlog word list --lang es --unlearned
  pocketlog word learned 7b0d`,
	RunE: runWordList,
}

// Word subcommand flags.
var (
	wordFlagLang    string
	wordFlagExample string
	wordFlagNote    string

	wordListFlagSearch    string
	wordListFlagLang      string
	wordListFlagUnlearned bool
)

// wordAddCmd adds a word.
var wordAddCmd = &cobra.Command{
	Use:   "add TERM [TRANSLATION]",
	Short: "Add a word",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runWordAdd,
}

// wordListCmd lists words.
var wordListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List words, newest first",
	Args:    cobra.NoArgs,
	RunE:    runWordList,
}

// wordLearnedCmd toggles the learned mark.
var wordLearnedCmd = &cobra.Command{
	Use:               "learned ID",
	Aliases:           []string{"learn", "toggle"},
	Short:             "Mark a word learned, or not learned again",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeWordIDs,
	RunE:              runWordLearned,
}

// wordDeleteCmd deletes words.
var wordDeleteCmd = &cobra.Command{
	Use:               "delete ID...",
	Aliases:           []string{"rm"},
	Short:             "Delete words",
	Args:              cobra.MinimumNArgs(1),
	ValidArgsFunction: completeWordIDs,
	RunE:              runWordDelete,
}

func init() {
	wordAddCmd.Flags().StringVarP(&wordFlagLang, "lang", "l", "", "Language code or name")
	wordAddCmd.Flags().StringVarP(&wordFlagExample, "example", "e", "", "Example sentence")
	wordAddCmd.Flags().StringVarP(&wordFlagNote, "note", "n", "", "Note")
	wordAddCmd.RegisterFlagCompletionFunc("lang", completeLanguages)

	for _, c := range []*cobra.Command{wordCmd, wordListCmd} {
		c.Flags().StringVarP(&wordListFlagSearch, "search", "s", "", "Search term, translation and example")
		c.Flags().StringVarP(&wordListFlagLang, "lang", "l", "", "Only this language")
		c.Flags().BoolVarP(&wordListFlagUnlearned, "unlearned", "u", false, "Only words not learned yet")
		c.RegisterFlagCompletionFunc("lang", completeLanguages)
	}

	wordCmd.AddCommand(wordAddCmd)
	wordCmd.AddCommand(wordListCmd)
	wordCmd.AddCommand(wordLearnedCmd)
	wordCmd.AddCommand(wordDeleteCmd)
	rootCmd.AddCommand(wordCmd)
}

func runWordAdd(cmd *cobra.Command, args []string) error {
	term := validate.SanitizeTitle(args[0])
	if err := validate.Title("term", term); err != nil {
		return err
	}
	var translation string
	if len(args) > 1 {
		translation = validate.SanitizeTitle(args[1])
		if err := validate.Category("translation", translation); err != nil {
			return err
		}
	}
	lang := validate.SanitizeLabel(wordFlagLang)
	if err := validate.Category("language", lang); err != nil {
		return err
	}
	example := validate.SanitizeNote(wordFlagExample)
	note := validate.SanitizeNote(wordFlagNote)
	for _, s := range []string{example, note} {
		if err := validate.Note(s); err != nil {
			return err
		}
	}

	word := model.NewWord(term, translation, lang)
	word.Example = example
	word.Note = note

	err := ctx.Words.Add(word)
	if err := saved("add", ctx.Words.Key(), err); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintRecord("created", "word", word)
	}

	cli := ctx.CLIFormatter()
	cli.Success("Added " + word.Term)
	cli.Muted("  id " + word.ID)
	return nil
}

func runWordList(cmd *cobra.Command, args []string) error {
	words := ctx.Words.Search(wordListFlagSearch, wordListFlagLang, wordListFlagUnlearned)

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintList("words", words, len(words))
	}

	learned, total := ctx.Words.Progress()
	cli := ctx.CLIFormatter()
	cli.Title(fmt.Sprintf("Words (%d)", len(words)))
	cli.PrintWords(words)
	if total > 0 {
		cli.Println()
		cli.Printf("%s %d/%d learned\n", output.ProgressBar(float64(learned)/float64(total)*100, 20), learned, total)
	}
	return nil
}

func runWordLearned(cmd *cobra.Command, args []string) error {
	word, err := ctx.Words.Resolve(args[0])
	if err != nil {
		return err
	}

	_, err = ctx.Words.ToggleLearned(word.ID)
	if err := saved("learned", ctx.Words.Key(), err); err != nil {
		return err
	}
	word, _ = ctx.Words.Get(word.ID)

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintRecord("updated", "word", word)
	}

	cli := ctx.CLIFormatter()
	if word.Learned {
		cli.Success("Learned " + word.Term)
	} else {
		cli.Success(word.Term + " is back on the list")
	}
	return nil
}

func runWordDelete(cmd *cobra.Command, args []string) error {
	ids := make([]string, 0, len(args))
	for _, arg := range args {
		word, err := ctx.Words.Resolve(arg)
		if err != nil {
			return err
		}
		ids = append(ids, word.ID)
	}

	err := ctx.Words.DeleteMany(ids...)
	if err := saved("delete", ctx.Words.Key(), err); err != nil {
		return err
	}
	return printDeleted("words", ids, fmt.Sprintf("%d word(s)", len(ids)))
}
