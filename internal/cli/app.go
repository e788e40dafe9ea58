// Package cli implements the operations behind the pipeconf
// subcommands on top of a loaded registry.
package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/framewright/pipeconf/internal/hookpath"
	"github.com/framewright/pipeconf/internal/launch"
	"github.com/framewright/pipeconf/internal/location"
	"github.com/framewright/pipeconf/internal/registry"
	"github.com/framewright/pipeconf/internal/storage"
)

// App holds one invocation's dependencies. There is no singleton: the
// registry is constructed here and passed by reference to whatever
// needs it.
type App struct {
	fs      afero.Fs
	envPath string
	reg     *registry.Registry
}

// NewApp creates an App reading envPath from the OS filesystem.
func NewApp(envPath string) *App {
	return NewAppWithFs(envPath, afero.NewOsFs())
}

// NewAppWithFs creates an App with an injected filesystem.
func NewAppWithFs(envPath string, fs afero.Fs) *App {
	return &App{fs: fs, envPath: envPath}
}

// Registry loads the environment on first use and returns the merged
// namespace.
func (a *App) Registry() (*registry.Registry, error) {
	if a.reg != nil {
		return a.reg, nil
	}
	reg, err := registry.Load(a.fs, a.envPath)
	if err != nil {
		return nil, err
	}
	a.reg = reg
	return reg, nil
}

// GetRecord returns the resolved record at path rendered as YAML.
func (a *App) GetRecord(path string) (string, error) {
	reg, err := a.Registry()
	if err != nil {
		return "", err
	}
	value, err := reg.Get(path)
	if err != nil {
		return "", err
	}
	out, err := yaml.Marshal(value)
	if err != nil {
		return "", fmt.Errorf("failed to render record %s: %w", path, err)
	}
	return string(out), nil
}

// Paths returns the merged namespace listing, one "path  (document)"
// line per record.
func (a *App) Paths() (string, error) {
	reg, err := a.Registry()
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for _, path := range reg.Paths() {
		doc, line, _ := reg.Source(path)
		fmt.Fprintf(&b, "%s\t%s:%d\n", path, doc, line)
	}
	return b.String(), nil
}

// KnownPaths returns the sorted dotted paths for prompt completion.
func (a *App) KnownPaths() ([]string, error) {
	reg, err := a.Registry()
	if err != nil {
		return nil, err
	}
	return reg.Paths(), nil
}

// ResolveHook resolves the hook chain held in the named field of the
// record at path, against the given hook directories.
func (a *App) ResolveHook(path, field, selfDir, engineDir string) (string, error) {
	reg, err := a.Registry()
	if err != nil {
		return "", err
	}
	record, err := reg.Record(path)
	if err != nil {
		return "", err
	}
	raw, ok := record[field]
	if !ok {
		return "", fmt.Errorf("record %s has no field %q", path, field)
	}
	expr, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("record %s field %q is not a hook expression (got %T)", path, field, raw)
	}
	chain, err := hookpath.Parse(expr)
	if err != nil {
		return "", err
	}
	resolved, err := chain.Resolve(a.fs, map[hookpath.Placeholder]string{
		hookpath.Self:   selfDir,
		hookpath.Engine: engineDir,
	})
	if err != nil {
		return "", fmt.Errorf("record %s field %q: %w", path, field, err)
	}
	return resolved, nil
}

// CacheLocations resolves every record carrying location fields and
// upserts them into the cache database at dbPath. An empty dbPath
// uses the XDG default.
func (a *App) CacheLocations(ctx context.Context, dbPath string) (string, error) {
	reg, err := a.Registry()
	if err != nil {
		return "", err
	}
	if err := reg.Resolve(); err != nil {
		return "", err
	}

	if dbPath == "" {
		manager := storage.New(a.fs)
		dbPath, err = manager.GetCachePath()
		if err != nil {
			return "", err
		}
	}

	cache, err := storage.OpenCache(dbPath)
	if err != nil {
		return "", err
	}
	defer func() { _ = cache.Close() }()

	environment := filepath.Clean(a.envPath)
	locations, err := a.collectLocations(reg)
	if err != nil {
		return "", err
	}
	for _, found := range locations {
		if err := cache.Put(ctx, environment, found.path, found.record); err != nil {
			return "", err
		}
		log.Debug().Str("path", found.path).Str("descriptor", found.record.String()).
			Msg("cached location")
	}
	return fmt.Sprintf("Cached %d locations to %s\n", len(locations), dbPath), nil
}

// LaunchEnv renders the launcher environment contract.
func (a *App) LaunchEnv(opts launch.Options) (string, error) {
	env, err := launch.Build(opts)
	if err != nil {
		return "", err
	}
	return launch.Format(env), nil
}

type foundLocation struct {
	path   string
	record location.Record
}

// collectLocations walks every resolved record for location fields.
// Only mappings directly under a "location" key count; a location
// referenced via @ has already been substituted by resolution.
func (a *App) collectLocations(reg *registry.Registry) ([]foundLocation, error) {
	var out []foundLocation
	for _, path := range reg.Paths() {
		value, err := reg.Get(path)
		if err != nil {
			return nil, err
		}
		record, ok := value.(map[string]any)
		if !ok {
			continue
		}
		raw, ok := record["location"]
		if !ok {
			// A record may itself be a location declaration, e.g.
			// apps.tk-multi-workfiles2.location.
			if looksLikeLocation(record) {
				rec, err := location.FromValue(value)
				if err != nil {
					return nil, fmt.Errorf("%s: %w", path, err)
				}
				out = append(out, foundLocation{path: path, record: rec})
			}
			continue
		}
		rec, err := location.FromValue(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: location: %w", path, err)
		}
		out = append(out, foundLocation{path: path, record: rec})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].path < out[j].path })
	return out, nil
}

func looksLikeLocation(record map[string]any) bool {
	_, hasType := record["type"]
	if !hasType {
		return false
	}
	for key := range record {
		switch key {
		case "type", "name", "version", "path":
		default:
			return false
		}
	}
	return true
}
