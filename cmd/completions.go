package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/pocketlog/internal/config"
	"github.com/manav03panchal/pocketlog/internal/model"
	"github.com/manav03panchal/pocketlog/internal/output"
	"github.com/manav03panchal/pocketlog/internal/store"
)

// completeValues returns a completion function for a fixed set of values.
func completeValues(values ...string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		var out []string
		for _, v := range values {
			if strings.HasPrefix(v, toComplete) {
				out = append(out, v)
			}
		}
		return out, cobra.ShellCompDirectiveNoFileComp
	}
}

func stringsOf[S ~string](values []S) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

// completeIDs offers short ids with a description, skipping ids already on
// the command line.
func completeIDs[T model.Record[T]](items []T, describe func(T) string, args []string, toComplete string) []string {
	var completions []string
	for _, r := range items {
		id := output.ShortID(r.GetID())
		if !strings.HasPrefix(id, toComplete) || containsPrefixOf(args, r.GetID()) {
			continue
		}
		completions = append(completions, id+"\t"+describe(r))
	}
	return completions
}

func containsPrefixOf(args []string, id string) bool {
	for _, a := range args {
		if strings.HasPrefix(id, a) {
			return true
		}
	}
	return false
}

// completeTaskIDs returns a completion function for task ids.
func completeTaskIDs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if ctx == nil || ctx.Tasks == nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	tasks := ctx.Tasks.Active()
	if cmd.Name() == "restore" {
		tasks = ctx.Tasks.Archived()
	}
	return completeIDs(tasks, func(t *model.Task) string { return t.Title }, args, toComplete), cobra.ShellCompDirectiveNoFileComp
}

func completeManicureIDs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if ctx == nil || ctx.Manicures == nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return completeIDs(ctx.Manicures.History(), func(m *model.Manicure) string {
		return output.FormatDate(m.Date) + " " + m.Color
	}, args, toComplete), cobra.ShellCompDirectiveNoFileComp
}

func completeWardrobeIDs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if ctx == nil || ctx.Wardrobe == nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return completeIDs(ctx.Wardrobe.All(), func(w *model.WardrobeItem) string { return w.Name }, args, toComplete), cobra.ShellCompDirectiveNoFileComp
}

// completeWardrobeStatusArgs completes the item id, then the new status.
func completeWardrobeStatusArgs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	switch len(args) {
	case 0:
		return completeWardrobeIDs(cmd, args, toComplete)
	case 1:
		return completeValues(stringsOf(model.ItemStatuses)...)(cmd, args, toComplete)
	}
	return nil, cobra.ShellCompDirectiveNoFileComp
}

func completeWordIDs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if ctx == nil || ctx.Words == nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return completeIDs(ctx.Words.All(), func(w *model.Word) string { return w.Term }, args, toComplete), cobra.ShellCompDirectiveNoFileComp
}

func completeIdeaIDs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if ctx == nil || ctx.Ideas == nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return completeIDs(ctx.Ideas.All(), func(i *model.Idea) string { return i.Title }, args, toComplete), cobra.ShellCompDirectiveNoFileComp
}

// completeBuckets offers the non-empty keys of a grouping.
func completeBuckets(buckets []store.Bucket[string], toComplete string) []string {
	var out []string
	for _, b := range buckets {
		if b.Key != "" && strings.HasPrefix(b.Key, toComplete) {
			out = append(out, b.Key)
		}
	}
	return out
}

func completeTaskCategories(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if ctx == nil || ctx.Tasks == nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return completeBuckets(ctx.Tasks.ByCategory(), toComplete), cobra.ShellCompDirectiveNoFileComp
}

func completeIdeaCategories(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if ctx == nil || ctx.Ideas == nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return completeBuckets(ctx.Ideas.Categories(), toComplete), cobra.ShellCompDirectiveNoFileComp
}

func completeLanguages(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if ctx == nil || ctx.Words == nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return completeBuckets(ctx.Words.Languages(), toComplete), cobra.ShellCompDirectiveNoFileComp
}

// completePeriods suggests listing periods.
func completePeriods(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	periods := []string{
		"all\teverything",
		"today\ttoday only",
		"this week\tsince Monday",
		"last week\tprevious Monday to Sunday",
		"this month\tthis calendar month",
		"last month\tprevious calendar month",
		"this year\tthis calendar year",
	}

	var filtered []string
	for _, p := range periods {
		if strings.HasPrefix(strings.Split(p, "\t")[0], toComplete) {
			filtered = append(filtered, p)
		}
	}
	return filtered, cobra.ShellCompDirectiveNoFileComp
}

// completeConfigKeys completes the key argument of config get/set.
func completeConfigKeys(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return completeValues(config.Keys...)(cmd, args, toComplete)
}
