// Package records holds the typed record stores behind each pocketlog app.
// Each type embeds a generic store and adds the status helpers and
// statistics its screens need.
package records

import (
	"time"

	"github.com/manav03panchal/pocketlog/internal/model"
	"github.com/manav03panchal/pocketlog/internal/store"
)

// Tasks is the to-do list store.
type Tasks struct {
	*store.Store[*model.Task]
}

// NewTasks opens the task store.
func NewTasks(s store.Storage, opts ...store.Option) *Tasks {
	return &Tasks{Store: store.New(s, model.KeyTasks, func() *model.Task { return &model.Task{} }, opts...)}
}

func taskTitle(t *model.Task) string { return t.Title }
func taskNote(t *model.Task) string { return t.Note }
func taskCategory(t *model.Task) string { return t.Category }
func taskCreated(t *model.Task) time.Time { return t.CreatedAt }
func taskPriority(t *model.Task) int { return t.Priority.Rank() }
func taskIsArchived(t *model.Task) bool { return t.Archived }
func taskIsCompleted(t *model.Task) bool { return t.Completed }

// TaskFilter narrows a task listing. Zero values mean "any".
type TaskFilter struct {
	Text          string
	Category      string
	Status        model.TaskStatus
	Archived      bool // list the archive instead of the default view
	HideCompleted bool
	SortBy        string // created, title, priority, due
	Descending    bool
	Limit         int
}

// ToggleComplete flips a task between open and completed.
func (t *Tasks) ToggleComplete(id string) (bool, error) {
	now := t.Now()
	return t.Modify(id, func(task *model.Task) {
		task.SetCompleted(!task.Completed, now)
	})
}

// Archive moves a task into the archive without deleting it.
func (t *Tasks) Archive(id string) (bool, error) {
	now := t.Now()
	return t.Modify(id, func(task *model.Task) {
		task.SetArchived(true, now)
	})
}

// Restore brings an archived task back into the default view and clears
// its archive timestamp.
func (t *Tasks) Restore(id string) (bool, error) {
	return t.Modify(id, func(task *model.Task) {
		task.SetArchived(false, time.Time{})
	})
}

// Active returns the default view: every task not in the archive.
func (t *Tasks) Active() []*model.Task {
	return t.Query(store.Query[*model.Task]{Where: store.Not(taskIsArchived)})
}

// Archived returns archived tasks, most recently archived first.
func (t *Tasks) Archived() []*model.Task {
	return t.Query(store.Query[*model.Task]{
		Where:      taskIsArchived,
		Sort:       store.ByTime(archivedAt),
		Descending: true,
	})
}

func archivedAt(t *model.Task) time.Time {
	if t.ArchivedAt == nil {
		return time.Time{}
	}
	return *t.ArchivedAt
}

func dueDate(t *model.Task) time.Time {
	if t.DueDate == nil {
		// undated tasks sort after dated ones
		return time.Date(9999, 1, 1, 0, 0, 0, 0, time.UTC)
	}
	return *t.DueDate
}

// List runs a filtered listing.
func (t *Tasks) List(f TaskFilter) []*model.Task {
	preds := []store.Predicate[*model.Task]{
		store.Contains(f.Text, taskTitle, taskNote, taskCategory),
		store.EqualFold(taskCategory, f.Category),
	}
	if f.Archived {
		preds = append(preds, taskIsArchived)
	} else {
		preds = append(preds, store.Not(taskIsArchived))
	}
	if f.Status != "" {
		preds = append(preds, func(task *model.Task) bool { return task.Status() == f.Status })
	}
	if f.HideCompleted {
		preds = append(preds, store.Not(taskIsCompleted))
	}

	return t.Query(store.Query[*model.Task]{
		Where:      store.And(preds...),
		Sort:       taskSort(f.SortBy),
		Descending: f.Descending,
		Limit:      f.Limit,
	})
}

func taskSort(key string) store.Compare[*model.Task] {
	switch key {
	case "title":
		return store.ByString(taskTitle)
	case "priority":
		return store.ByInt(taskPriority)
	case "due":
		return store.ByTime(dueDate)
	case "created":
		return store.ByTime(taskCreated)
	default:
		return nil
	}
}

// Search matches title, note and category text among non-archived tasks,
// optionally within one category.
func (t *Tasks) Search(text, category string) []*model.Task {
	return t.List(TaskFilter{Text: text, Category: category})
}

// ByCategory groups non-archived tasks by category, largest first.
func (t *Tasks) ByCategory() []store.Bucket[string] {
	return store.GroupCounts(t.Active(), taskCategory)
}

// CompletedPerWeekday counts completions by the weekday they happened on.
func (t *Tasks) CompletedPerWeekday() store.WeekdayCounts {
	return store.CountByWeekday(t.All(), func(task *model.Task) time.Time {
		if task.CompletedAt == nil {
			return time.Time{}
		}
		return *task.CompletedAt
	})
}

// Overdue returns open, non-archived tasks past their due date, soonest due first.
func (t *Tasks) Overdue(now time.Time) []*model.Task {
	return t.Query(store.Query[*model.Task]{
		Where: store.And(store.Not(taskIsArchived), func(task *model.Task) bool { return task.IsOverdue(now) }),
		Sort:  store.ByTime(dueDate),
	})
}

// DeleteArchived hard-deletes everything in the archive and reports how
// many tasks went.
func (t *Tasks) DeleteArchived() (int, error) {
	archived := t.Archived()
	if len(archived) == 0 {
		return 0, nil
	}
	ids := make([]string, len(archived))
	for i, task := range archived {
		ids[i] = task.ID
	}
	return len(ids), t.DeleteMany(ids...)
}
