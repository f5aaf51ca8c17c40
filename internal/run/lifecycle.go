package run

import (
    "context"
    "path/filepath"
    "time"

    "github.com/rs/zerolog/log"

    "github.com/SalmaDammak/experiment-logger/internal/config"
    "github.com/SalmaDammak/experiment-logger/internal/datapath"
    "github.com/SalmaDammak/experiment-logger/internal/envinfo"
    "github.com/SalmaDammak/experiment-logger/internal/execentry"
    "github.com/SalmaDammak/experiment-logger/internal/stage"
    "github.com/SalmaDammak/experiment-logger/internal/store"
    "github.com/SalmaDammak/experiment-logger/internal/teesink"
)

// Execute drives the full child-process lifecycle: snapshot, environment
// capture, staging, entry execution. It returns the entry script's exit code
// so the caller can propagate it as its own status. A fatal error leaves any
// partially written run directory on disk for inspection.
func Execute(ctx context.Context, cfg *config.Config, sourceDir string) (int, error) {
    started := time.Now()
    id := NewID(started)
    dirs, err := CreateRun(cfg, sourceDir, id)
    if err != nil { return 0, err }
    log.Info().Str("stage", "snapshot").Str("dir", dirs.Root).Msg("run directory created")

    if err := envinfo.Capture(ctx, cfg, dirs.Code); err != nil { return 0, err }
    log.Info().Str("stage", "environment").Msg("environment report written")

    staged, err := stage.Stage(cfg, sourceDir, dirs.Root, dirs.Code)
    if err != nil { return 0, err }
    log.Info().Str("stage", "staging").Int("staged", len(staged)).Msg("external code staged")

    entry, code, err := execentry.Run(ctx, cfg, dirs.Root, dirs.Results)
    if err != nil { return 0, err }
    log.Info().Str("stage", "execute").Int("exit_code", code).Msg("entry script finished")

    finished := time.Now()
    _ = writeMeta(filepath.Join(dirs.Root, metaFileName), runMeta{
        RunID:       id,
        GeneratedAt: finished,
        SourceDir:   sourceDir,
        Entry:       filepath.Base(entry.Path),
        ExitCode:    &code,
        Mode:        "child",
    })
    record(ctx, cfg, sourceDir, store.Run{
        ID:         id,
        Source:     sourceDir,
        RunDir:     dirs.Root,
        Entry:      filepath.Base(entry.Path),
        ExitCode:   code,
        StartedAt:  started,
        FinishedAt: finished,
    })
    return code, nil
}

// Session is the state handed back to an embedded caller.
type Session struct {
    Dirs     *Dirs
    Registry *datapath.Registry
    Tee      *teesink.Tee
}

// Start is the embedded entry point, called from inside an already-running
// program rather than spawning one: snapshot, environment capture, staging,
// data-path load, then redirect this process's own output into the results
// directory. The tee stays active until process exit.
func Start(ctx context.Context, cfg *config.Config, sourceDir string) (*Session, error) {
    started := time.Now()
    id := NewID(started)
    dirs, err := CreateRun(cfg, sourceDir, id)
    if err != nil { return nil, err }
    if err := envinfo.Capture(ctx, cfg, dirs.Code); err != nil { return nil, err }
    if _, err := stage.Stage(cfg, sourceDir, dirs.Root, dirs.Code); err != nil { return nil, err }
    reg, err := datapath.Load(sourceDir, cfg.DataPathsFile)
    if err != nil { return nil, err }
    tee, err := teesink.Begin(dirs.Results, cfg.OutputFile)
    if err != nil { return nil, err }
    _ = writeMeta(filepath.Join(dirs.Root, metaFileName), runMeta{
        RunID:       id,
        GeneratedAt: started,
        SourceDir:   sourceDir,
        Mode:        "embedded",
    })
    return &Session{Dirs: dirs, Registry: reg, Tee: tee}, nil
}

// record stores the completed run in the run index. Best-effort: a broken
// index never fails a run that already produced its artifacts.
func record(ctx context.Context, cfg *config.Config, sourceDir string, r store.Run) {
    db, err := store.Open(cfg.DatabasePath(sourceDir))
    if err != nil {
        log.Warn().Err(err).Msg("run index unavailable, not recording run")
        return
    }
    defer db.Close()
    if err := db.Record(ctx, r); err != nil {
        log.Warn().Err(err).Msg("failed to record run")
    }
}
