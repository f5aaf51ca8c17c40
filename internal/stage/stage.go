package stage

import (
    "os"
    "path/filepath"
    "strings"

    "github.com/rs/zerolog/log"

    "github.com/SalmaDammak/experiment-logger/internal/config"
    "github.com/SalmaDammak/experiment-logger/internal/fscopy"
)

// Stage copies every existing path listed in the source codepaths file into
// codeDir under its own base name, merging into any same-named tree already
// there (matching files are replaced, last copy wins). Paths that do not
// exist are skipped with a warning. It then rewrites the codepaths file at
// the run root with the run-relative location of each staged entry and
// prepends codeDir to the interpreter search path. The original source tree
// is never touched.
func Stage(cfg *config.Config, sourceDir, runRoot, codeDir string) ([]string, error) {
    var staged []string
    b, err := os.ReadFile(filepath.Join(sourceDir, cfg.CodePathsFile))
    if err != nil && !os.IsNotExist(err) { return nil, err }
    for _, line := range strings.Split(string(b), "\n") {
        p := strings.TrimSpace(line)
        if p == "" { continue }
        if _, serr := os.Stat(p); serr != nil {
            log.Warn().Str("path", p).Msg("code path does not exist, skipping")
            continue
        }
        dst := filepath.Join(codeDir, filepath.Base(p))
        if err := fscopy.CopyEntry(p, dst); err != nil { return nil, err }
        rel, err := filepath.Rel(runRoot, dst)
        if err != nil { return nil, err }
        staged = append(staged, rel)
        log.Debug().Str("path", p).Str("dest", rel).Msg("staged external code")
    }
    // Newline-terminated even when nothing was staged (a single empty line).
    out := strings.Join(staged, "\n") + "\n"
    if err := os.WriteFile(filepath.Join(runRoot, cfg.CodePathsFile), []byte(out), 0o644); err != nil {
        return nil, err
    }
    ExtendSearchPath(codeDir)
    return staged, nil
}

// ExtendSearchPath prepends dir to PYTHONPATH for the remainder of the
// process, so the entry script can import staged code. Added once per run,
// never removed.
func ExtendSearchPath(dir string) {
    if cur := os.Getenv("PYTHONPATH"); cur != "" {
        os.Setenv("PYTHONPATH", dir+string(os.PathListSeparator)+cur)
    } else {
        os.Setenv("PYTHONPATH", dir)
    }
}
