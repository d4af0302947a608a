package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/pocketlog/internal/model"
	"github.com/manav03panchal/pocketlog/internal/records"
	"github.com/manav03panchal/pocketlog/internal/validate"
)

// taskCmd represents the task command.
var taskCmd = &cobra.Command{
	Use:     "task",
	Aliases: []string{"tasks", "todo", "t"},
	Short:   "Manage the to-do list",
	Long: `Add, complete, archive and search tasks. Without a subcommand the open
and completed tasks are listed.

Examples:
  pocketlog task add "Buy milk" --category shopping --priority high
  pocketlog task add "File taxes" --due "+2w"
  pocketlog task list --search milk
  pocketlog task done 3f2a
  pocketlog task archive 3f2a
  pocketlog task list --archived
  pocketlog task purge`,
	RunE: runTaskList,
}

// Task subcommand flags.
var (
	taskFlagCategory string
	taskFlagPriority string
	taskFlagDue      string
	taskFlagNote     string
	taskFlagTitle    string

	taskListFlagSearch        string
	taskListFlagCategory      string
	taskListFlagStatus        string
	taskListFlagArchived      bool
	taskListFlagHideCompleted bool
	taskListFlagOverdue       bool
	taskListFlagSort          string
	taskListFlagDesc          bool
	taskListFlagLimit         int
)

// taskAddCmd adds a task.
var taskAddCmd = &cobra.Command{
	Use:   "add TITLE...",
	Short: "Add a task",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTaskAdd,
}

// taskListCmd lists tasks.
var taskListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List tasks",
	Args:    cobra.NoArgs,
	RunE:    runTaskList,
}

// taskShowCmd shows one task.
var taskShowCmd = &cobra.Command{
	Use:               "show ID",
	Short:             "Show a task in detail",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeTaskIDs,
	RunE:              runTaskShow,
}

// taskDoneCmd toggles completion.
var taskDoneCmd = &cobra.Command{
	Use:               "done ID",
	Aliases:           []string{"toggle", "check"},
	Short:             "Mark a task completed, or open again",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeTaskIDs,
	RunE:              runTaskDone,
}

// taskEditCmd edits a task.
var taskEditCmd = &cobra.Command{
	Use:               "edit ID",
	Short:             "Edit a task",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeTaskIDs,
	RunE:              runTaskEdit,
}

// taskArchiveCmd archives a task.
var taskArchiveCmd = &cobra.Command{
	Use:               "archive ID",
	Short:             "Move a task to the archive",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeTaskIDs,
	RunE:              runTaskArchive,
}

// taskRestoreCmd restores an archived task.
var taskRestoreCmd = &cobra.Command{
	Use:               "restore ID",
	Aliases:           []string{"unarchive"},
	Short:             "Bring a task back from the archive",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeTaskIDs,
	RunE:              runTaskRestore,
}

// taskDeleteCmd deletes tasks for good.
var taskDeleteCmd = &cobra.Command{
	Use:               "delete ID...",
	Aliases:           []string{"rm"},
	Short:             "Delete tasks permanently",
	Args:              cobra.MinimumNArgs(1),
	ValidArgsFunction: completeTaskIDs,
	RunE:              runTaskDelete,
}

// taskPurgeCmd empties the archive.
var taskPurgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Permanently delete every archived task",
	Args:  cobra.NoArgs,
	RunE:  runTaskPurge,
}

func init() {
	for _, c := range []*cobra.Command{taskAddCmd, taskEditCmd} {
		c.Flags().StringVarP(&taskFlagCategory, "category", "c", "", "Category")
		c.Flags().StringVarP(&taskFlagPriority, "priority", "p", "", "Priority: low, medium, high")
		c.Flags().StringVarP(&taskFlagDue, "due", "d", "", "Due date (e.g. tomorrow, +3d, 2026-03-14)")
		c.Flags().StringVarP(&taskFlagNote, "note", "n", "", "Note")
		c.RegisterFlagCompletionFunc("priority", completeValues("low", "medium", "high"))
		c.RegisterFlagCompletionFunc("category", completeTaskCategories)
	}
	taskEditCmd.Flags().StringVarP(&taskFlagTitle, "title", "t", "", "New title")

	for _, c := range []*cobra.Command{taskCmd, taskListCmd} {
		c.Flags().StringVarP(&taskListFlagSearch, "search", "s", "", "Search title, note and category")
		c.Flags().StringVarP(&taskListFlagCategory, "category", "c", "", "Only this category")
		c.Flags().StringVar(&taskListFlagStatus, "status", "", "Only this status: active, completed")
		c.Flags().BoolVarP(&taskListFlagArchived, "archived", "a", false, "List the archive instead")
		c.Flags().BoolVar(&taskListFlagHideCompleted, "hide-completed", false, "Hide completed tasks")
		c.Flags().BoolVar(&taskListFlagOverdue, "overdue", false, "Only overdue tasks")
		c.Flags().StringVar(&taskListFlagSort, "sort", "", "Sort by: created, title, priority, due")
		c.Flags().BoolVar(&taskListFlagDesc, "desc", false, "Reverse the sort order")
		c.Flags().IntVarP(&taskListFlagLimit, "limit", "l", 0, "Show at most this many tasks")
		c.RegisterFlagCompletionFunc("sort", completeValues("created", "title", "priority", "due"))
		c.RegisterFlagCompletionFunc("status", completeValues("active", "completed"))
		c.RegisterFlagCompletionFunc("category", completeTaskCategories)
	}

	taskCmd.AddCommand(taskAddCmd)
	taskCmd.AddCommand(taskListCmd)
	taskCmd.AddCommand(taskShowCmd)
	taskCmd.AddCommand(taskDoneCmd)
	taskCmd.AddCommand(taskEditCmd)
	taskCmd.AddCommand(taskArchiveCmd)
	taskCmd.AddCommand(taskRestoreCmd)
	taskCmd.AddCommand(taskDeleteCmd)
	taskCmd.AddCommand(taskPurgeCmd)
	rootCmd.AddCommand(taskCmd)
}

func runTaskAdd(cmd *cobra.Command, args []string) error {
	title := validate.SanitizeTitle(strings.Join(args, " "))
	if err := validate.Title("title", title); err != nil {
		return err
	}
	category := validate.SanitizeLabel(taskFlagCategory)
	if err := validate.Category("category", category); err != nil {
		return err
	}
	priority, err := validate.Priority(taskFlagPriority)
	if err != nil {
		return err
	}
	note := validate.SanitizeNote(taskFlagNote)
	if err := validate.Note(note); err != nil {
		return err
	}

	task := model.NewTask(title, category, priority)
	task.Note = note
	if taskFlagDue != "" {
		due, err := parseDay("due", taskFlagDue)
		if err != nil {
			return err
		}
		task.DueDate = &due
	}

	err = ctx.Tasks.Add(task)
	if err := saved("add", ctx.Tasks.Key(), err); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintRecord("created", "task", task)
	}

	cli := ctx.CLIFormatter()
	cli.Success(fmt.Sprintf("Added task %s", task.Title))
	cli.Muted("  id " + task.ID)
	return nil
}

func runTaskList(cmd *cobra.Command, args []string) error {
	var status model.TaskStatus
	switch taskListFlagStatus {
	case "":
	case string(model.TaskActive), string(model.TaskCompleted):
		status = model.TaskStatus(taskListFlagStatus)
	default:
		return fmt.Errorf("unknown status %q (use active or completed; --archived lists the archive)", taskListFlagStatus)
	}

	var tasks []*model.Task
	if taskListFlagOverdue {
		tasks = ctx.Tasks.Overdue(ctx.Now())
	} else {
		tasks = ctx.Tasks.List(records.TaskFilter{
			Text:          taskListFlagSearch,
			Category:      taskListFlagCategory,
			Status:        status,
			Archived:      taskListFlagArchived,
			HideCompleted: taskListFlagHideCompleted,
			SortBy:        taskListFlagSort,
			Descending:    taskListFlagDesc,
			Limit:         taskListFlagLimit,
		})
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintList("tasks", tasks, len(tasks))
	}

	cli := ctx.CLIFormatter()
	title := "Tasks"
	if taskListFlagArchived {
		title = "Archive"
	}
	cli.Title(fmt.Sprintf("%s (%d)", title, len(tasks)))
	cli.PrintTasks(tasks, ctx.Now())
	return nil
}

func runTaskShow(cmd *cobra.Command, args []string) error {
	task, err := ctx.Tasks.Resolve(args[0])
	if err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintRecord("ok", "task", task)
	}
	ctx.CLIFormatter().PrintTask(task)
	return nil
}

func runTaskDone(cmd *cobra.Command, args []string) error {
	task, err := ctx.Tasks.Resolve(args[0])
	if err != nil {
		return err
	}

	_, err = ctx.Tasks.ToggleComplete(task.ID)
	if err := saved("complete", ctx.Tasks.Key(), err); err != nil {
		return err
	}
	task, _ = ctx.Tasks.Get(task.ID)

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintRecord("updated", "task", task)
	}

	cli := ctx.CLIFormatter()
	if task.Completed {
		cli.Success("Completed " + task.Title)
	} else {
		cli.Success("Reopened " + task.Title)
	}
	return nil
}

func runTaskEdit(cmd *cobra.Command, args []string) error {
	task, err := ctx.Tasks.Resolve(args[0])
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	updated := false

	if flags.Changed("title") {
		title := validate.SanitizeTitle(taskFlagTitle)
		if err := validate.Title("title", title); err != nil {
			return err
		}
		task.Title = title
		updated = true
	}
	if flags.Changed("category") {
		category := validate.SanitizeLabel(taskFlagCategory)
		if err := validate.Category("category", category); err != nil {
			return err
		}
		task.Category = category
		updated = true
	}
	if flags.Changed("priority") {
		priority, err := validate.Priority(taskFlagPriority)
		if err != nil {
			return err
		}
		task.Priority = priority
		updated = true
	}
	if flags.Changed("due") {
		// An empty or "none" due date clears it
		if taskFlagDue == "" || strings.EqualFold(taskFlagDue, "none") {
			task.DueDate = nil
		} else {
			due, err := parseDay("due", taskFlagDue)
			if err != nil {
				return err
			}
			task.DueDate = &due
		}
		updated = true
	}
	if flags.Changed("note") {
		note := validate.SanitizeNote(taskFlagNote)
		if err := validate.Note(note); err != nil {
			return err
		}
		task.Note = note
		updated = true
	}

	if !updated {
		return fmt.Errorf("no updates specified (use --title, --category, --priority, --due or --note)")
	}

	err = ctx.Tasks.Update(task)
	if err := saved("update", ctx.Tasks.Key(), err); err != nil {
		return err
	}

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintRecord("updated", "task", task)
	}

	cli := ctx.CLIFormatter()
	cli.Success("Updated task")
	cli.PrintTask(task)
	return nil
}

func runTaskArchive(cmd *cobra.Command, args []string) error {
	task, err := ctx.Tasks.Resolve(args[0])
	if err != nil {
		return err
	}

	_, err = ctx.Tasks.Archive(task.ID)
	if err := saved("archive", ctx.Tasks.Key(), err); err != nil {
		return err
	}
	task, _ = ctx.Tasks.Get(task.ID)

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintRecord("archived", "task", task)
	}
	ctx.CLIFormatter().Success("Archived " + task.Title)
	return nil
}

func runTaskRestore(cmd *cobra.Command, args []string) error {
	task, err := ctx.Tasks.Resolve(args[0])
	if err != nil {
		return err
	}

	_, err = ctx.Tasks.Restore(task.ID)
	if err := saved("restore", ctx.Tasks.Key(), err); err != nil {
		return err
	}
	task, _ = ctx.Tasks.Get(task.ID)

	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintRecord("restored", "task", task)
	}
	ctx.CLIFormatter().Success("Restored " + task.Title)
	return nil
}

func runTaskDelete(cmd *cobra.Command, args []string) error {
	ids := make([]string, 0, len(args))
	for _, arg := range args {
		task, err := ctx.Tasks.Resolve(arg)
		if err != nil {
			return err
		}
		ids = append(ids, task.ID)
	}

	err := ctx.Tasks.DeleteMany(ids...)
	if err := saved("delete", ctx.Tasks.Key(), err); err != nil {
		return err
	}
	return printDeleted("tasks", ids, fmt.Sprintf("%d task(s)", len(ids)))
}

func runTaskPurge(cmd *cobra.Command, args []string) error {
	archived := ctx.Tasks.Archived()
	ids := make([]string, len(archived))
	for i, t := range archived {
		ids[i] = t.ID
	}

	_, err := ctx.Tasks.DeleteArchived()
	if err := saved("purge", ctx.Tasks.Key(), err); err != nil {
		return err
	}
	return printDeleted("tasks", ids, fmt.Sprintf("%d archived task(s)", len(ids)))
}
