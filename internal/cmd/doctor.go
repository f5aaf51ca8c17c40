package cmd

import (
    "context"
    "fmt"
    "os/exec"
    "strings"

    "github.com/Masterminds/semver/v3"
    "github.com/SalmaDammak/experiment-logger/internal/config"
    "github.com/SalmaDammak/experiment-logger/internal/executil"
    "github.com/rs/zerolog/log"
    "github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
    Use:   "doctor",
    Short: "Pre-flight checks for the interpreter and shell",
    RunE: func(cmd *cobra.Command, args []string) error {
        cfg, err := config.Load(sourceDir)
        if err != nil {
            return err
        }
        for _, bin := range []string{cfg.Entry.Interpreter, cfg.Entry.ShellBin} {
            path, err := exec.LookPath(bin)
            if err != nil {
                return fmt.Errorf("%s not found on PATH", bin)
            }
            log.Info().Str("bin", bin).Str("path", path).Msg("ok")
        }
        if min := cfg.Doctor.MinInterpreterVersion; min != "" {
            out, err := executil.Capture(context.Background(), cfg.Entry.Interpreter, "--version")
            if err != nil {
                return fmt.Errorf("%s version check failed: %w", cfg.Entry.Interpreter, err)
            }
            parsed, perr := parseSemver(out)
            if perr != nil {
                log.Warn().Str("raw", out).Msg("could not parse version; skipping strict compare")
            } else {
                constraint, cErr := semver.NewConstraint(min)
                if cErr != nil {
                    return cErr
                }
                if !constraint.Check(parsed) {
                    return fmt.Errorf("%s version %s does not satisfy %s", cfg.Entry.Interpreter, parsed.String(), min)
                }
            }
        }
        log.Info().Msg("doctor checks passed")
        return nil
    },
}

func parseSemver(s string) (*semver.Version, error) {
    // Version banners vary ("Python 3.11.4"); take the first field that parses.
    fields := strings.Fields(s)
    for _, f := range fields {
        f = strings.TrimPrefix(f, "v")
        if v, err := semver.NewVersion(f); err == nil {
            return v, nil
        }
    }
    return semver.NewVersion(strings.TrimPrefix(s, "v"))
}
