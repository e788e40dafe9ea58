// Package launch assembles the environment contract the host
// application's launcher injects so the engine bootstraps itself on
// startup. The registry supplies configuration; this package only
// produces the variable assignments, it never launches anything.
package launch

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Environment variable names consumed by the host process launcher
// and the engine's startup script.
const (
	EnvEngine        = "SGTK_ENGINE"
	EnvContext       = "SGTK_CONTEXT"
	EnvFileToOpen    = "SGTK_FILE_TO_OPEN"
	EnvStartupScript = "CLARISSE_STARTUP_SCRIPT"
	EnvPythonHome    = "PYTHONHOME"
	EnvPythonPath    = "PYTHONPATH"
	EnvLibraryPath   = "LD_LIBRARY_PATH"
)

// Options describe one launch.
type Options struct {
	Engine     string // engine instance name, e.g. tk-clarisse
	Context    string // serialized context handed through verbatim
	FileToOpen string // optional scene file opened after startup

	ConfigRoot  string // this configuration's install root
	PythonHome  string // scripting runtime home bundled with the host
	PythonPath  []string
	LibraryPath []string
}

// Build returns the env-var assignments for opts. Engine and Context
// are mandatory; the startup script path derives from ConfigRoot.
func Build(opts Options) (map[string]string, error) {
	if opts.Engine == "" {
		return nil, fmt.Errorf("engine name is required")
	}
	if opts.Context == "" {
		return nil, fmt.Errorf("serialized context is required")
	}

	env := map[string]string{
		EnvEngine:  opts.Engine,
		EnvContext: opts.Context,
	}
	if opts.FileToOpen != "" {
		env[EnvFileToOpen] = opts.FileToOpen
	}
	if opts.ConfigRoot != "" {
		env[EnvStartupScript] = filepath.Join(opts.ConfigRoot, "startup", "userSetup.py")
	}
	if opts.PythonHome != "" {
		env[EnvPythonHome] = opts.PythonHome
	}
	if len(opts.PythonPath) > 0 {
		env[EnvPythonPath] = strings.Join(opts.PythonPath, string(os.PathListSeparator))
	}
	if len(opts.LibraryPath) > 0 {
		env[EnvLibraryPath] = strings.Join(opts.LibraryPath, string(os.PathListSeparator))
	}
	return env, nil
}

// Format renders env as sorted KEY=value lines for display.
func Format(env map[string]string) string {
	keys := make([]string, 0, len(env))
	for k := range env {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, "%s=%s\n", k, env[k])
	}
	return b.String()
}
