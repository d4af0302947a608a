package output

import (
	"fmt"

	"github.com/manav03panchal/pocketlog/internal/records"
)

func counts(labels []records.Label) []Count {
	out := make([]Count, len(labels))
	for i, l := range labels {
		key := l.Key
		if key == "" {
			key = "(none)"
		}
		out[i] = Count{Label: key, Count: l.Count}
	}
	return out
}

// PrintStats prints every section present in resp.
func (c *CLIFormatter) PrintStats(resp StatsResponse) {
	first := true
	section := func() {
		if !first {
			c.Println()
		}
		first = false
	}

	if s := resp.Tasks; s != nil {
		section()
		c.Title("Tasks")
		c.PrintKeyValue("Total", s.Total)
		c.PrintKeyValue("Open", s.Active)
		c.PrintKeyValue("Completed", s.Completed)
		c.PrintKeyValue("Archived", s.Archived)
		if s.Overdue > 0 {
			c.PrintKeyValue("Overdue", c.render(styleError, fmt.Sprint(s.Overdue)))
		}
		c.PrintCounts("By category", counts(s.ByCategory))
		c.PrintCounts("Completed by weekday", counts(s.CompletedByWeekday))
	}

	if s := resp.Manicures; s != nil {
		section()
		c.Title("Manicures")
		c.PrintKeyValue("Visits", s.Total)
		c.PrintKeyValue("Spent", fmt.Sprintf("%.2f", s.TotalSpent))
		if s.AverageRating > 0 {
			c.PrintKeyValue("Avg rating", fmt.Sprintf("%.1f", s.AverageRating))
		}
		if s.FavoriteColor != "" {
			c.PrintKeyValue("Favorite", s.FavoriteColor)
		}
		if s.LastVisit != "" {
			c.PrintKeyValue("Last visit", s.LastVisit)
		}
		c.PrintCounts("Per month", counts(s.PerMonth))
		c.PrintCounts("Per weekday", counts(s.PerWeekday))
	}

	if s := resp.Wardrobe; s != nil {
		section()
		c.Title("Wardrobe")
		c.PrintKeyValue("Items", s.Total)
		c.PrintKeyValue("To buy", fmt.Sprintf("%.2f", s.ShoppingTotal))
		c.PrintCounts("By status", counts(s.ByStatus))
		c.PrintCounts("By category", counts(s.ByCategory))
	}

	if s := resp.Words; s != nil {
		section()
		c.Title("Words")
		pct := 0.0
		if s.Total > 0 {
			pct = float64(s.Learned) / float64(s.Total) * 100
		}
		c.PrintKeyValue("Learned", fmt.Sprintf("%d/%d %s", s.Learned, s.Total, ProgressBar(pct, 20)))
		c.PrintCounts("Languages", counts(s.Languages))
		c.PrintCounts("Added by weekday", counts(s.AddedByWeekday))
	}

	if s := resp.Ideas; s != nil {
		section()
		c.Title("Ideas")
		c.PrintKeyValue("Total", s.Total)
		c.PrintKeyValue("Favorites", s.Favorites)
		c.PrintKeyValue("Done", s.Done)
		c.PrintCounts("Categories", counts(s.Categories))
	}
}

// PrintInfo prints storage details.
func (c *CLIFormatter) PrintInfo(info InfoResponse) {
	c.Title("pocketlog " + info.Version)
	c.PrintKeyValue("Backend", info.Backend)
	if info.Path != "" {
		c.PrintKeyValue("Path", info.Path)
	}
	c.PrintKeyValue("Config", info.ConfigPath)
	c.Println()

	rows := make([]TableRow, len(info.Keys))
	for i, k := range info.Keys {
		rows[i] = TableRow{Columns: []string{k.Key, fmt.Sprint(info.Counts[k.Key]), fmt.Sprint(k.Bytes)}}
	}
	if len(rows) == 0 {
		c.Muted("Nothing stored yet.")
		return
	}
	c.PrintTable([]string{"KEY", "RECORDS", "BYTES"}, rows)
}
