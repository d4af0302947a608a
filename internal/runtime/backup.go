package runtime

import (
	"fmt"
	"time"

	"github.com/manav03panchal/pocketlog/internal/logging"
	"github.com/manav03panchal/pocketlog/internal/model"
	"github.com/manav03panchal/pocketlog/internal/store"
)

// BackupVersion is the current backup file format.
const BackupVersion = "1"

// Backup is a full copy of every collection.
type Backup struct {
	Version    string                `json:"version"`
	ExportedAt time.Time             `json:"exported_at"`
	Tasks      []*model.Task         `json:"tasks"`
	Manicures  []*model.Manicure     `json:"manicures"`
	Wardrobe   []*model.WardrobeItem `json:"wardrobe"`
	Words      []*model.Word         `json:"words"`
	Ideas      []*model.Idea         `json:"ideas"`
}

// ImportCount summarizes one collection's import.
type ImportCount struct {
	Added      int `json:"added"`
	Updated    int `json:"updated"`
	Duplicates int `json:"duplicates"`
	Rejected   int `json:"rejected"`
}

// ImportResult summarizes a whole import, by store key.
type ImportResult struct {
	DryRun bool                   `json:"dry_run"`
	Counts map[string]ImportCount `json:"counts"`
}

// Backup snapshots every store.
func (c *Context) Backup() *Backup {
	return &Backup{
		Version:    BackupVersion,
		ExportedAt: c.Now(),
		Tasks:      c.Tasks.All(),
		Manicures:  c.Manicures.All(),
		Wardrobe:   c.Wardrobe.All(),
		Words:      c.Words.All(),
		Ideas:      c.Ideas.All(),
	}
}

// Import merges a backup into the stores. Records whose id already exists
// are skipped as duplicates, or replaced when force is set. A dry run only
// counts.
func (c *Context) Import(b *Backup, force, dryRun bool) (*ImportResult, error) {
	if b.Version != "" && b.Version != BackupVersion {
		return nil, fmt.Errorf("unsupported backup version %q", b.Version)
	}

	res := &ImportResult{DryRun: dryRun, Counts: make(map[string]ImportCount)}
	steps := []struct {
		key string
		run func() (ImportCount, error)
	}{
		{c.Tasks.Key(), func() (ImportCount, error) { return importInto(c.Tasks.Store, b.Tasks, force, dryRun) }},
		{c.Manicures.Key(), func() (ImportCount, error) { return importInto(c.Manicures.Store, b.Manicures, force, dryRun) }},
		{c.Wardrobe.Key(), func() (ImportCount, error) { return importInto(c.Wardrobe.Store, b.Wardrobe, force, dryRun) }},
		{c.Words.Key(), func() (ImportCount, error) { return importInto(c.Words.Store, b.Words, force, dryRun) }},
		{c.Ideas.Key(), func() (ImportCount, error) { return importInto(c.Ideas.Store, b.Ideas, force, dryRun) }},
	}
	for _, step := range steps {
		count, err := step.run()
		res.Counts[step.key] = count
		if err != nil {
			return res, StorageError("import", step.key, err)
		}
		logging.DebugLog("imported",
			logging.KeyStore, step.key,
			logging.KeyCount, count.Added+count.Updated,
		)
	}
	return res, nil
}

func importInto[T model.Record[T]](s *store.Store[T], items []T, force, dryRun bool) (ImportCount, error) {
	var count ImportCount
	var zero T
	for _, r := range items {
		// null elements decode to nil pointers
		if any(r) == any(zero) {
			count.Rejected++
			continue
		}
		_, exists := s.Get(r.GetID())
		switch {
		case exists && !force:
			count.Duplicates++
		case exists:
			count.Updated++
			if !dryRun {
				if err := s.Update(r); err != nil {
					return count, err
				}
			}
		default:
			count.Added++
			if !dryRun {
				if err := s.Add(r); err != nil {
					return count, err
				}
			}
		}
	}
	return count, nil
}
