package execentry

import (
    "context"
    "errors"
    "os"
    "path/filepath"
    "testing"

    "github.com/SalmaDammak/experiment-logger/internal/config"
)

func testConfig() *config.Config {
    cfg := config.Default()
    cfg.Entry.ShellBin = "sh"
    return cfg
}

func writeEntry(t *testing.T, dir, name, content string) {
    t.Helper()
    if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o755); err != nil {
        t.Fatal(err)
    }
}

func TestResolvePrefersShellWhenBothExist(t *testing.T) {
    cfg := testConfig()
    dir := t.TempDir()
    writeEntry(t, dir, cfg.Entry.Script, "print('py')\n")
    writeEntry(t, dir, cfg.Entry.Shell, "echo sh\n")

    entry, err := Resolve(cfg, dir)
    if err != nil {
        t.Fatalf("Resolve: %v", err)
    }
    if !entry.Shell {
        t.Error("expected the shell entry to win")
    }
}

func TestResolveSingleKinds(t *testing.T) {
    cfg := testConfig()

    dir := t.TempDir()
    writeEntry(t, dir, cfg.Entry.Script, "")
    entry, err := Resolve(cfg, dir)
    if err != nil {
        t.Fatalf("Resolve: %v", err)
    }
    if entry.Shell {
        t.Error("expected the interpreted entry")
    }

    dir = t.TempDir()
    writeEntry(t, dir, cfg.Entry.Shell, "")
    entry, err = Resolve(cfg, dir)
    if err != nil {
        t.Fatalf("Resolve: %v", err)
    }
    if !entry.Shell {
        t.Error("expected the shell entry")
    }
}

func TestResolveNeitherKind(t *testing.T) {
    _, err := Resolve(testConfig(), t.TempDir())
    if !errors.Is(err, ErrEntryNotFound) {
        t.Fatalf("expected ErrEntryNotFound, got %v", err)
    }
}

func TestRunTeesOutputAndReturnsExitCode(t *testing.T) {
    cfg := testConfig()
    runRoot := t.TempDir()
    resultsDir := t.TempDir()
    writeEntry(t, runRoot, cfg.Entry.Shell, "echo hello\nexit 3\n")

    entry, code, err := Run(context.Background(), cfg, runRoot, resultsDir)
    if err != nil {
        t.Fatalf("Run: %v", err)
    }
    if !entry.Shell {
        t.Error("expected shell entry")
    }
    if code != 3 {
        t.Errorf("expected exit 3, got %d", code)
    }
    b, err := os.ReadFile(filepath.Join(resultsDir, cfg.OutputFile))
    if err != nil {
        t.Fatal(err)
    }
    if string(b) != "hello\n" {
        t.Errorf("captured output = %q, want %q", string(b), "hello\n")
    }
}

func TestRunWithoutEntryFailsBeforeSpawning(t *testing.T) {
    cfg := testConfig()
    resultsDir := t.TempDir()
    _, _, err := Run(context.Background(), cfg, t.TempDir(), resultsDir)
    if !errors.Is(err, ErrEntryNotFound) {
        t.Fatalf("expected ErrEntryNotFound, got %v", err)
    }
    if _, serr := os.Stat(filepath.Join(resultsDir, cfg.OutputFile)); serr == nil {
        t.Error("no output file should be created when resolution fails")
    }
}
