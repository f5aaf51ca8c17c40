// Package experimentlogger is the embedded entry point to the experiment run
// harness: call Start from inside an already-running program to snapshot the
// source directory, capture the environment, stage external code, load the
// data-path registry, and tee this process's own output into the run's
// results directory. The CLI rendition of the same lifecycle lives in
// cmd/explog and runs the entry script as a child process instead.
package experimentlogger

import (
    "context"

    "github.com/SalmaDammak/experiment-logger/internal/config"
    "github.com/SalmaDammak/experiment-logger/internal/run"
)

// Run is a handle on a started embedded run.
type Run struct {
    session *run.Session
}

// Start performs the full embedded lifecycle for sourceDir. The returned
// handle is valid until process exit; the output tee it installs is never
// removed.
func Start(sourceDir string) (*Run, error) {
    cfg, err := config.Load(sourceDir)
    if err != nil { return nil, err }
    s, err := run.Start(context.Background(), cfg, sourceDir)
    if err != nil { return nil, err }
    return &Run{session: s}, nil
}

// DataPath returns the verified absolute path registered under key in the
// source directory's datapaths file.
func (r *Run) DataPath(key string) (string, bool) {
    return r.session.Registry.Get(key)
}

func (r *Run) RunDir() string { return r.session.Dirs.Root }

func (r *Run) CodeDir() string { return r.session.Dirs.Code }

// ResultsDir is where the experiment should write its outputs; the captured
// terminal log already lives there.
func (r *Run) ResultsDir() string { return r.session.Dirs.Results }
