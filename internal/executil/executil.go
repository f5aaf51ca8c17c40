package executil

import (
    "bufio"
    "context"
    "errors"
    "os"
    "os/exec"
    "strings"
    "time"
)

type LineHandler func([]byte) error

type CmdSpec struct {
    Path string
    Args []string
    Timeout time.Duration
    Env []string
    Dir string
}

// RunCombined runs the command with stdout and stderr merged into a single
// interleaved stream and invokes onLine for each line as it arrives. It
// blocks until the child exits and returns the child's exit code; a non-zero
// exit is not treated as an error.
func RunCombined(ctx context.Context, spec CmdSpec, onLine LineHandler) (int, error) {
    cctx := ctx
    var cancel context.CancelFunc
    if spec.Timeout > 0 {
        cctx, cancel = context.WithTimeout(ctx, spec.Timeout)
        defer cancel()
    }
    cmd := exec.CommandContext(cctx, spec.Path, spec.Args...)
    if spec.Env != nil { cmd.Env = append(os.Environ(), spec.Env...) }
    if spec.Dir != "" { cmd.Dir = spec.Dir }

    pr, pw, err := os.Pipe()
    if err != nil { return 0, err }
    cmd.Stdout = pw
    cmd.Stderr = pw
    if err := cmd.Start(); err != nil {
        pr.Close()
        pw.Close()
        return 0, err
    }
    // The parent's copy of the write end must close so the scanner sees EOF
    // when the child exits.
    pw.Close()

    scanner := bufio.NewScanner(pr)
    for scanner.Scan() {
        if err := onLine(scanner.Bytes()); err != nil {
            pr.Close()
            _ = cmd.Wait()
            return 0, err
        }
    }
    scanErr := scanner.Err()
    pr.Close()

    if err := cmd.Wait(); err != nil {
        var ee *exec.ExitError
        if errors.As(err, &ee) { return ee.ExitCode(), nil }
        return 0, err
    }
    if scanErr != nil { return 0, scanErr }
    return 0, nil
}

// Capture runs a short command and returns its trimmed combined output.
func Capture(ctx context.Context, path string, args ...string) (string, error) {
    out, err := exec.CommandContext(ctx, path, args...).CombinedOutput()
    if err != nil { return "", err }
    return strings.TrimSpace(string(out)), nil
}
