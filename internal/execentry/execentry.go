package execentry

import (
    "context"
    "errors"
    "fmt"
    "os"
    "path/filepath"

    "github.com/rs/zerolog/log"

    "github.com/SalmaDammak/experiment-logger/internal/config"
    "github.com/SalmaDammak/experiment-logger/internal/executil"
    "github.com/SalmaDammak/experiment-logger/internal/teesink"
)

var ErrEntryNotFound = errors.New("no entry script found")

// Entry is a resolved entry script.
type Entry struct {
    Path  string
    Shell bool
}

// Resolve locates the entry script at the run root. When both kinds are
// present the shell entry wins and a warning is emitted.
func Resolve(cfg *config.Config, runRoot string) (Entry, error) {
    scriptPath := filepath.Join(runRoot, cfg.Entry.Script)
    shellPath := filepath.Join(runRoot, cfg.Entry.Shell)
    hasScript := exists(scriptPath)
    hasShell := exists(shellPath)
    switch {
    case hasShell && hasScript:
        log.Warn().Str("script", cfg.Entry.Script).Str("shell", cfg.Entry.Shell).
            Msg("both entry kinds present, preferring the shell entry")
        return Entry{Path: shellPath, Shell: true}, nil
    case hasShell:
        return Entry{Path: shellPath, Shell: true}, nil
    case hasScript:
        return Entry{Path: scriptPath}, nil
    default:
        return Entry{}, fmt.Errorf("%w: neither %s nor %s in %s",
            ErrEntryNotFound, cfg.Entry.Script, cfg.Entry.Shell, runRoot)
    }
}

// Run resolves and executes the entry script as a child process, teeing each
// line of its combined stdout/stderr to the terminal and to the
// captured-output file in resultsDir. It blocks until the child exits and
// returns the resolved entry and the child's exit code uninterpreted;
// deciding whether a non-zero exit is fatal belongs to the caller.
func Run(ctx context.Context, cfg *config.Config, runRoot, resultsDir string) (Entry, int, error) {
    entry, err := Resolve(cfg, runRoot)
    if err != nil { return Entry{}, 0, err }

    logf, err := os.Create(filepath.Join(resultsDir, cfg.OutputFile))
    if err != nil { return entry, 0, err }
    defer logf.Close()
    sink := teesink.New(os.Stdout, logf)

    bin := cfg.Entry.Interpreter
    if entry.Shell { bin = cfg.Entry.ShellBin }
    log.Info().Str("stage", "execute").Str("entry", entry.Path).Str("bin", bin).Msg("running entry script")

    spec := executil.CmdSpec{Path: bin, Args: []string{entry.Path}, Dir: runRoot}
    code, err := executil.RunCombined(ctx, spec, func(b []byte) error {
        _, werr := sink.Write(append(b, '\n'))
        return werr
    })
    if err != nil { return entry, 0, err }
    return entry, code, nil
}

func exists(p string) bool { _, err := os.Stat(p); return err == nil }
