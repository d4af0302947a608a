// Package runtime provides application runtime context for pocketlog.
package runtime

import (
	"math/rand/v2"
	"time"

	"github.com/manav03panchal/pocketlog/internal/config"
	"github.com/manav03panchal/pocketlog/internal/logging"
	"github.com/manav03panchal/pocketlog/internal/output"
	"github.com/manav03panchal/pocketlog/internal/records"
	"github.com/manav03panchal/pocketlog/internal/storage"
	"github.com/manav03panchal/pocketlog/internal/store"
)

// Context holds the application runtime context.
type Context struct {
	Backend   storage.Backend
	Kind      storage.Kind
	Path      string
	Formatter *output.Formatter

	// Record stores
	Tasks     *records.Tasks
	Manicures *records.Manicures
	Wardrobe  *records.Wardrobe
	Words     *records.Words
	Ideas     *records.Ideas

	now func() time.Time
}

// Options configures the runtime context.
type Options struct {
	Backend   storage.Kind
	DBPath    string
	InMemory  bool
	Format    output.Format
	ColorMode output.ColorMode

	// Now and Rand are test hooks. Nil means wall clock and a random seed.
	Now  func() time.Time
	Rand *rand.Rand
}

// DefaultOptions returns default runtime options.
func DefaultOptions() Options {
	return Options{
		Backend:   storage.KindBadger,
		DBPath:    storage.DefaultPath(storage.KindBadger),
		Format:    output.FormatCLI,
		ColorMode: output.ColorAuto,
	}
}

// OptionsFromConfig maps a loaded configuration onto runtime options.
// ":memory:" as the path selects in-memory mode for the configured backend.
func OptionsFromConfig(cfg *config.RuntimeConfig) Options {
	kind := storage.Kind(cfg.Storage.Backend)
	opts := Options{
		Backend:   kind,
		DBPath:    cfg.Storage.Path,
		Format:    output.Format(cfg.Output.Format),
		ColorMode: output.ColorMode(cfg.Output.Color),
	}
	if cfg.Storage.InMemory() {
		opts.InMemory = true
		opts.DBPath = ""
	} else if opts.DBPath == "" {
		opts.DBPath = storage.DefaultPath(kind)
	}
	return opts
}

// New creates a new runtime context.
func New(opts Options) (*Context, error) {
	if opts.Backend == "" {
		opts.Backend = storage.KindBadger
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	backend, err := storage.Open(storage.Options{
		Kind:     opts.Backend,
		Path:     opts.DBPath,
		InMemory: opts.InMemory,
	})
	if err != nil {
		return nil, err
	}

	path := opts.DBPath
	if opts.InMemory || opts.Backend == storage.KindMemory {
		path = ""
	}
	logging.DebugLog("opened storage",
		logging.KeyBackend, string(opts.Backend),
		logging.KeyPath, path,
	)

	storeOpts := []store.Option{store.WithClock(opts.Now)}

	formatter := output.NewFormatter()
	if opts.Format != "" {
		formatter.Format = opts.Format
	}
	if opts.ColorMode != "" {
		formatter.ColorMode = opts.ColorMode
	}

	return &Context{
		Backend:   backend,
		Kind:      opts.Backend,
		Path:      path,
		Formatter: formatter,
		Tasks:     records.NewTasks(backend, storeOpts...),
		Manicures: records.NewManicures(backend, storeOpts...),
		Wardrobe:  records.NewWardrobe(backend, storeOpts...),
		Words:     records.NewWords(backend, storeOpts...),
		Ideas:     records.NewIdeas(backend, opts.Rand, storeOpts...),
		now:       opts.Now,
	}, nil
}

// Close closes the runtime context.
func (c *Context) Close() error {
	if c.Backend != nil {
		return c.Backend.Close()
	}
	return nil
}

// Now returns the context clock's current time.
func (c *Context) Now() time.Time {
	return c.now()
}

// LoadErrors reports stores that failed to load and started empty.
func (c *Context) LoadErrors() map[string]error {
	out := make(map[string]error)
	for key, err := range map[string]error{
		c.Tasks.Key():     c.Tasks.LastError(),
		c.Manicures.Key(): c.Manicures.LastError(),
		c.Wardrobe.Key():  c.Wardrobe.LastError(),
		c.Words.Key():     c.Words.LastError(),
		c.Ideas.Key():     c.Ideas.LastError(),
	} {
		if err != nil {
			out[key] = err
		}
	}
	return out
}

// Counts returns the number of records per store key.
func (c *Context) Counts() map[string]int {
	return map[string]int{
		c.Tasks.Key():     c.Tasks.Len(),
		c.Manicures.Key(): c.Manicures.Len(),
		c.Wardrobe.Key():  c.Wardrobe.Len(),
		c.Words.Key():     c.Words.Len(),
		c.Ideas.Key():     c.Ideas.Len(),
	}
}

// CLIFormatter returns a CLI formatter.
func (c *Context) CLIFormatter() *output.CLIFormatter {
	return output.NewCLIFormatter(c.Formatter)
}

// JSONFormatter returns a JSON formatter.
func (c *Context) JSONFormatter() *output.JSONFormatter {
	return output.NewJSONFormatter(c.Formatter)
}

// IsJSON returns true if output format is JSON.
func (c *Context) IsJSON() bool {
	return c.Formatter.Format == output.FormatJSON
}
