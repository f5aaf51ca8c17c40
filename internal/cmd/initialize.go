package cmd

import (
    "os"
    "path/filepath"

    "github.com/SalmaDammak/experiment-logger/internal/config"
    "github.com/rs/zerolog/log"
)

// initializeSource scaffolds an empty experiment source directory: both entry
// script kinds plus empty codepaths and datapaths files. Existing files are
// left alone.
func initializeSource(cfg *config.Config, dir string) error {
    if err := os.MkdirAll(dir, 0o755); err != nil { return err }
    names := []string{cfg.Entry.Script, cfg.Entry.Shell, cfg.CodePathsFile, cfg.DataPathsFile}
    for _, name := range names {
        p := filepath.Join(dir, name)
        if _, err := os.Stat(p); err == nil { continue }
        if err := os.WriteFile(p, nil, 0o644); err != nil { return err }
    }
    log.Info().Str("dir", dir).Msg("initialized experiment folder")
    return nil
}
