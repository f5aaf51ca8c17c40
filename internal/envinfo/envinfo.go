package envinfo

import (
    "context"
    "fmt"
    "os"
    "path/filepath"
    "sort"
    "strings"
    "time"

    "github.com/SalmaDammak/experiment-logger/internal/config"
    "github.com/SalmaDammak/experiment-logger/internal/executil"
)

const captureTimeout = 30 * time.Second

// lookup runs one environment probe and degrades to the placeholder on any
// failure or empty result. No probe failure ever aborts the whole capture.
func lookup(placeholder string, fn func() (string, error)) string {
    v, err := fn()
    v = strings.TrimSpace(v)
    if err != nil || v == "" { return placeholder }
    return v
}

// Capture gathers the interpreter version, installed package inventory,
// scheduler metadata, container image identity, and node name, and writes
// them as a single report into codeDir. Every fact is best-effort; only a
// failure to write the report itself is an error.
func Capture(ctx context.Context, cfg *config.Config, codeDir string) error {
    cctx, cancel := context.WithTimeout(ctx, captureTimeout)
    defer cancel()

    version := lookup("unknown", func() (string, error) {
        return executil.Capture(cctx, cfg.Entry.Interpreter, "--version")
    })
    packages := lookup("Could not list installed packages", func() (string, error) {
        out, err := executil.Capture(cctx, cfg.Entry.Interpreter, "-m", "pip", "freeze")
        if err != nil { return "", err }
        lines := strings.Fields(out)
        sort.Strings(lines)
        return strings.Join(lines, "\n"), nil
    })
    jobID := os.Getenv(cfg.Scheduler.JobIDVar)
    if jobID == "" { jobID = "Not running under Slurm" }
    node := os.Getenv(cfg.Scheduler.NodeVar)
    if node == "" {
        node = lookup("unknown", os.Hostname)
    }
    image := lookup("Could not retrieve Docker image", func() (string, error) {
        return dockerImage(cctx)
    })

    var b strings.Builder
    fmt.Fprintf(&b, "Interpreter Version:\n%s\n\n", version)
    fmt.Fprintf(&b, "Docker Image: %s\n", image)
    fmt.Fprintf(&b, "Slurm Job ID: %s\n", jobID)
    fmt.Fprintf(&b, "Node Name: %s\n\n", node)
    fmt.Fprintf(&b, "Installed Packages:\n%s\n", packages)
    return os.WriteFile(filepath.Join(codeDir, cfg.EnvironmentFile), []byte(b.String()), 0o644)
}

// dockerImage resolves the image of the container this process runs in: the
// container id is the content of /etc/hostname, which docker inspect maps
// back to the image name.
func dockerImage(ctx context.Context) (string, error) {
    id, err := os.ReadFile("/etc/hostname")
    if err != nil { return "", err }
    containerID := strings.TrimSpace(string(id))
    if containerID == "" { return "", fmt.Errorf("empty /etc/hostname") }
    return executil.Capture(ctx, "docker", "inspect", "--format", "{{.Config.Image}}", containerID)
}
